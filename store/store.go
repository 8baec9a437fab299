// Package store là lớp lưu trữ của rooms, assets, users và asset types.
// Mọi implementation trả về errors.ErrNotFound khi không có bản ghi.
package store

import (
	"context"

	"assetflow/models"
)

// Store là các thao tác lưu trữ mà tầng service cần.
// Các collection độc lập, quan hệ chỉ qua id. Store chỉ kiểm tra quan hệ phòng–tài sản
// ở hai chỗ: tạo tài sản và xóa phòng.
type Store interface {
	CreateRoom(ctx context.Context, room *models.Room) error
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
	UpdateRoom(ctx context.Context, id string, fields map[string]interface{}) error
	// DeleteRoom kiểm tra và xóa trong cùng một giao dịch:
	// errors.ErrNotFound khi không có phòng, errors.ErrRoomNotEmpty khi còn tài sản.
	DeleteRoom(ctx context.Context, id string) error

	// CreateAssets ghi toàn bộ batch trong một giao dịch: hoặc tất cả, hoặc không bản ghi nào.
	// Trả về errors.ErrNotFound nếu phòng của một tài sản không tồn tại.
	CreateAssets(ctx context.Context, assets []models.Asset) error
	GetAsset(ctx context.Context, id string) (*models.Asset, error)
	ListAssets(ctx context.Context) ([]models.Asset, error)
	ListAssetsByField(ctx context.Context, field AssetField, value string) ([]models.Asset, error)
	UpdateAsset(ctx context.Context, id string, fields map[string]interface{}) error

	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	CreateAssetType(ctx context.Context, assetType *models.AssetType) error
	GetAssetType(ctx context.Context, id string) (*models.AssetType, error)
	ListAssetTypes(ctx context.Context) ([]models.AssetType, error)
}

// AssetField là cột dùng cho truy vấn lọc bằng
type AssetField string

const (
	AssetFieldRoomID      AssetField = "room_id"
	AssetFieldAssetTypeID AssetField = "asset_type_id"
	AssetFieldStatus      AssetField = "status"
)
