package store

import (
	"context"
	stderrors "errors"
	"fmt"

	"assetflow/errors"
	"assetflow/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ Store = (*GormStore)(nil)

// bulkBatchSize là số bản ghi mỗi câu INSERT khi tạo tài sản hàng loạt
const bulkBatchSize = 100

// GormStore lưu dữ liệu qua gorm (Postgres hoặc MySQL)
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate tạo bảng cho các model
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(models.AllModels()...)
}

func notFound(err error) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.ErrNotFound
	}
	return err
}

func (s *GormStore) CreateRoom(ctx context.Context, room *models.Room) error {
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Create(room).Error
}

func (s *GormStore) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&room).Error; err != nil {
		return nil, notFound(err)
	}
	return &room, nil
}

func (s *GormStore) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.WithContext(ctx).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// UpdateRoom kiểm tra tồn tại rồi cập nhật trong cùng giao dịch
func (s *GormStore) UpdateRoom(ctx context.Context, id string, fields map[string]interface{}) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Select("id").Where("id = ?", id).First(&room).Error; err != nil {
			return notFound(err)
		}
		return tx.Model(&room).Updates(fields).Error
	})
}

// DeleteRoom khóa dòng phòng rồi mới kiểm tra tài sản, CreateAssets giữ khóa chia sẻ trên
// cùng dòng nên hai thao tác không xen vào nhau
func (s *GormStore) DeleteRoom(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").Where("id = ?", id).First(&room).Error; err != nil {
			return notFound(err)
		}

		var ids []string
		if err := tx.Model(&models.Asset{}).Where("room_id = ?", id).Limit(1).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) > 0 {
			return errors.ErrRoomNotEmpty
		}
		return tx.Where("id = ?", id).Delete(&models.Room{}).Error
	})
}

func (s *GormStore) CreateAssets(ctx context.Context, assets []models.Asset) error {
	if len(assets) == 0 {
		return nil
	}
	roomIDs := make([]string, 0, 1)
	seen := make(map[string]bool)
	for i := range assets {
		if assets[i].ID == "" {
			assets[i].ID = uuid.NewString()
		}
		if !seen[assets[i].RoomID] {
			seen[assets[i].RoomID] = true
			roomIDs = append(roomIDs, assets[i].RoomID)
		}
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, roomID := range roomIDs {
			var room models.Room
			if err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
				Select("id").Where("id = ?", roomID).First(&room).Error; err != nil {
				return notFound(err)
			}
		}
		return tx.CreateInBatches(assets, bulkBatchSize).Error
	})
}

func (s *GormStore) GetAsset(ctx context.Context, id string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&asset).Error; err != nil {
		return nil, notFound(err)
	}
	return &asset, nil
}

func (s *GormStore) ListAssets(ctx context.Context) ([]models.Asset, error) {
	var assets []models.Asset
	if err := s.db.WithContext(ctx).Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (s *GormStore) ListAssetsByField(ctx context.Context, field AssetField, value string) ([]models.Asset, error) {
	switch field {
	case AssetFieldRoomID, AssetFieldAssetTypeID, AssetFieldStatus:
	default:
		return nil, fmt.Errorf("unknown asset field %s", field)
	}
	var assets []models.Asset
	if err := s.db.WithContext(ctx).Where(fmt.Sprintf("%s = ?", field), value).Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (s *GormStore) UpdateAsset(ctx context.Context, id string, fields map[string]interface{}) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var asset models.Asset
		if err := tx.Select("id").Where("id = ?", id).First(&asset).Error; err != nil {
			return notFound(err)
		}
		return tx.Model(&asset).Updates(fields).Error
	})
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *GormStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *GormStore) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) CreateAssetType(ctx context.Context, assetType *models.AssetType) error {
	if assetType.ID == "" {
		assetType.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Create(assetType).Error
}

func (s *GormStore) GetAssetType(ctx context.Context, id string) (*models.AssetType, error) {
	var t models.AssetType
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (s *GormStore) ListAssetTypes(ctx context.Context) ([]models.AssetType, error) {
	var types []models.AssetType
	if err := s.db.WithContext(ctx).Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
