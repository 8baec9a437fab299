package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"assetflow/errors"
	"assetflow/models"

	"github.com/google/uuid"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore giữ dữ liệu trong bộ nhớ, dùng cho test và môi trường dev.
// Thứ tự trả về của các hàm List là thứ tự ghi.
type MemoryStore struct {
	mu sync.RWMutex

	rooms      map[string]models.Room
	roomOrder  []string
	assets     map[string]models.Asset
	assetOrder []string
	users      map[string]models.User
	userOrder  []string
	types      map[string]models.AssetType
	typeOrder  []string

	// failNext, khi khác nil, được trả về ở lần ghi kế tiếp (mô phỏng lỗi lưu trữ trong test)
	failNext error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:  make(map[string]models.Room),
		assets: make(map[string]models.Asset),
		users:  make(map[string]models.User),
		types:  make(map[string]models.AssetType),
	}
}

// FailNextWrite làm lần ghi kế tiếp thất bại với err
func (s *MemoryStore) FailNextWrite(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = err
}

func (s *MemoryStore) takeFailure() error {
	err := s.failNext
	s.failNext = nil
	return err
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func (s *MemoryStore) CreateRoom(ctx context.Context, room *models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	room.ID = newID(room.ID)
	if _, exists := s.rooms[room.ID]; exists {
		return fmt.Errorf("room %s already exists", room.ID)
	}
	now := time.Now()
	room.CreatedAt, room.UpdatedAt = now, now
	s.rooms[room.ID] = *room
	s.roomOrder = append(s.roomOrder, room.ID)
	return nil
}

func (s *MemoryStore) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	return &room, nil
}

func (s *MemoryStore) ListRooms(ctx context.Context) ([]models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rooms := make([]models.Room, 0, len(s.roomOrder))
	for _, id := range s.roomOrder {
		rooms = append(rooms, s.rooms[id])
	}
	return rooms, nil
}

func (s *MemoryStore) UpdateRoom(ctx context.Context, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	room, ok := s.rooms[id]
	if !ok {
		return errors.ErrNotFound
	}
	for column, value := range fields {
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("room column %s: unexpected value type %T", column, value)
		}
		switch column {
		case "name":
			room.Name = v
		case "manager_id":
			room.ManagerID = v
		default:
			return fmt.Errorf("unknown room column %s", column)
		}
	}
	room.UpdatedAt = time.Now()
	s.rooms[id] = room
	return nil
}

func (s *MemoryStore) DeleteRoom(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	if _, ok := s.rooms[id]; !ok {
		return errors.ErrNotFound
	}
	for _, a := range s.assets {
		if a.RoomID == id {
			return errors.ErrRoomNotEmpty
		}
	}
	delete(s.rooms, id)
	s.roomOrder = removeID(s.roomOrder, id)
	return nil
}

// CreateAssets kiểm tra toàn bộ batch trước khi ghi bản ghi đầu tiên
func (s *MemoryStore) CreateAssets(ctx context.Context, assets []models.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}

	now := time.Now()
	seen := make(map[string]bool, len(assets))
	for i := range assets {
		if _, ok := s.rooms[assets[i].RoomID]; !ok {
			return errors.ErrNotFound
		}
		assets[i].ID = newID(assets[i].ID)
		if _, exists := s.assets[assets[i].ID]; exists || seen[assets[i].ID] {
			return fmt.Errorf("asset %s already exists", assets[i].ID)
		}
		seen[assets[i].ID] = true
		assets[i].CreatedAt, assets[i].UpdatedAt = now, now
	}
	for _, a := range assets {
		s.assets[a.ID] = a
		s.assetOrder = append(s.assetOrder, a.ID)
	}
	return nil
}

func (s *MemoryStore) GetAsset(ctx context.Context, id string) (*models.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	asset, ok := s.assets[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	return &asset, nil
}

func (s *MemoryStore) ListAssets(ctx context.Context) ([]models.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assets := make([]models.Asset, 0, len(s.assetOrder))
	for _, id := range s.assetOrder {
		assets = append(assets, s.assets[id])
	}
	return assets, nil
}

func (s *MemoryStore) ListAssetsByField(ctx context.Context, field AssetField, value string) ([]models.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assets := make([]models.Asset, 0)
	for _, id := range s.assetOrder {
		a := s.assets[id]
		var got string
		switch field {
		case AssetFieldRoomID:
			got = a.RoomID
		case AssetFieldAssetTypeID:
			got = a.AssetTypeID
		case AssetFieldStatus:
			got = a.Status
		default:
			return nil, fmt.Errorf("unknown asset field %s", field)
		}
		if got == value {
			assets = append(assets, a)
		}
	}
	return assets, nil
}

func (s *MemoryStore) UpdateAsset(ctx context.Context, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	asset, ok := s.assets[id]
	if !ok {
		return errors.ErrNotFound
	}
	for column, value := range fields {
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("asset column %s: unexpected value type %T", column, value)
		}
		switch column {
		case "status":
			asset.Status = v
		case "room_id":
			asset.RoomID = v
		case "name":
			asset.Name = v
		default:
			return fmt.Errorf("unknown asset column %s", column)
		}
	}
	asset.UpdatedAt = time.Now()
	s.assets[id] = asset
	return nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	user.ID = newID(user.ID)
	if _, exists := s.users[user.ID]; exists {
		return fmt.Errorf("user %s already exists", user.ID)
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	s.users[user.ID] = *user
	s.userOrder = append(s.userOrder, user.ID)
	return nil
}

func (s *MemoryStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, s.users[id])
	}
	return users, nil
}

func (s *MemoryStore) CreateAssetType(ctx context.Context, assetType *models.AssetType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	assetType.ID = newID(assetType.ID)
	if _, exists := s.types[assetType.ID]; exists {
		return fmt.Errorf("asset type %s already exists", assetType.ID)
	}
	now := time.Now()
	assetType.CreatedAt, assetType.UpdatedAt = now, now
	s.types[assetType.ID] = *assetType
	s.typeOrder = append(s.typeOrder, assetType.ID)
	return nil
}

func (s *MemoryStore) GetAssetType(ctx context.Context, id string) (*models.AssetType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.types[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	return &t, nil
}

func (s *MemoryStore) ListAssetTypes(ctx context.Context) ([]models.AssetType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	types := make([]models.AssetType, 0, len(s.typeOrder))
	for _, id := range s.typeOrder {
		types = append(types, s.types[id])
	}
	return types, nil
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
