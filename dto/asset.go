package dto

import (
	"strings"

	"assetflow/models"
)

// CreateAssetRequest tạo quantity tài sản cùng tên gốc, phòng và loại
type CreateAssetRequest struct {
	Name        string `json:"name" validate:"required"`
	Quantity    int    `json:"quantity" validate:"min=1,max=500"`
	RoomID      string `json:"roomId" validate:"required"`
	AssetTypeID string `json:"assetTypeId"`
}

func (r *CreateAssetRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.RoomID = strings.TrimSpace(r.RoomID)
	r.AssetTypeID = strings.TrimSpace(r.AssetTypeID)
}

type UpdateAssetStatusRequest struct {
	AssetID string `json:"assetId" validate:"required"`
	Status  string `json:"status" validate:"required,assetstatus"`
}

func (r *UpdateAssetStatusRequest) Normalize() {
	r.AssetID = strings.TrimSpace(r.AssetID)
}

type MoveAssetRequest struct {
	AssetID   string `json:"assetId" validate:"required"`
	NewRoomID string `json:"newRoomId" validate:"required"`
}

func (r *MoveAssetRequest) Normalize() {
	r.AssetID = strings.TrimSpace(r.AssetID)
	r.NewRoomID = strings.TrimSpace(r.NewRoomID)
}

// CreatedAsset là phần tử trả về sau khi tạo hàng loạt, dùng để in mã QR ngay
type CreatedAsset struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	QRValue string `json:"qrValue,omitempty"`
}

// AssetFilter lọc danh sách tài sản
type AssetFilter struct {
	Q           string `form:"q"`
	Status      string `form:"status" validate:"omitempty,assetstatus"`
	RoomID      string `form:"roomId"`
	AssetTypeID string `form:"assetTypeId"`
}

func (f *AssetFilter) Normalize() {
	f.Q = strings.TrimSpace(f.Q)
	f.Status = strings.TrimSpace(f.Status)
	f.RoomID = strings.TrimSpace(f.RoomID)
	f.AssetTypeID = strings.TrimSpace(f.AssetTypeID)
}

// PublicAsset là thông tin hiển thị trên trang tra cứu công khai
type PublicAsset struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	DateAdded   string `json:"dateAdded"`
	RoomID      string `json:"roomId"`
	RoomName    string `json:"roomName,omitempty"`
	ManagerName string `json:"managerName,omitempty"`
	AssetType   string `json:"assetType,omitempty"`
}

// ScanResult là kết quả giải mã QR
type ScanResult struct {
	Asset models.Asset `json:"asset"`
	Path  string       `json:"path"`
}
