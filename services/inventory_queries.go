package services

import (
	"context"
	stderrors "errors"
	"net/url"
	"strings"

	"assetflow/constants"
	"assetflow/dto"
	"assetflow/errors"
	"assetflow/models"
	"assetflow/store"
	"assetflow/validator"
)

// cachedSortedList đọc danh sách từ cache theo thế hệ hiện tại, nếu không có thì tải từ store,
// sắp xếp theo tên rồi lưu lại dưới key của thế hệ đã đọc trước khi tải
func cachedSortedList[T any](ctx context.Context, s *InventoryService, key string, load func(context.Context) ([]T, error), name func(T) string) ([]T, error) {
	gen, genErr := s.cache.Generation(ctx, key)
	if genErr != nil {
		s.logger.Warn("read cache generation %s: %v", key, genErr)
	}

	versioned := VersionedKey(key, gen)
	if genErr == nil {
		var cached []T
		found, err := s.cache.Get(ctx, versioned, &cached)
		if err != nil {
			s.logger.Warn("read cache %s: %v", versioned, err)
		}
		if found && err == nil {
			return cached, nil
		}
	}

	items, err := load(ctx)
	if err != nil {
		return nil, s.storeError("list "+key, err)
	}
	sortByName(items, name)

	// không biết thế hệ thì không ghi, tránh đè dữ liệu cũ lên thế hệ mới
	if genErr == nil {
		if err := s.cache.Set(ctx, versioned, items, constants.ListCacheTTL); err != nil {
			s.logger.Warn("write cache %s: %v", versioned, err)
		}
	}
	return items, nil
}

// GetRooms trả về mọi phòng, sắp theo tên tiếng Việt
func (s *InventoryService) GetRooms(ctx context.Context) ([]models.Room, error) {
	return cachedSortedList(ctx, s, constants.CacheKeyRooms, s.store.ListRooms, func(r models.Room) string { return r.Name })
}

// GetRoomByID trả về (nil, nil) khi không có phòng
func (s *InventoryService) GetRoomByID(ctx context.Context, id string) (*models.Room, error) {
	room, err := s.store.GetRoom(ctx, id)
	if stderrors.Is(err, errors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, s.storeError("get room", err)
	}
	return room, nil
}

// GetAssets trả về tài sản theo bộ lọc, filter rỗng là toàn bộ
func (s *InventoryService) GetAssets(ctx context.Context, filter dto.AssetFilter) ([]models.Asset, error) {
	if err := validator.Struct(&filter); err != nil {
		return nil, err
	}

	var (
		assets []models.Asset
		err    error
	)
	switch {
	case filter.RoomID != "":
		assets, err = s.store.ListAssetsByField(ctx, store.AssetFieldRoomID, filter.RoomID)
	case filter.AssetTypeID != "":
		assets, err = s.store.ListAssetsByField(ctx, store.AssetFieldAssetTypeID, filter.AssetTypeID)
	default:
		assets, err = s.store.ListAssets(ctx)
	}
	if err != nil {
		return nil, s.storeError("list assets", err)
	}
	return filterAssets(assets, filter), nil
}

func (s *InventoryService) GetAssetsByRoomID(ctx context.Context, roomID string) ([]models.Asset, error) {
	assets, err := s.store.ListAssetsByField(ctx, store.AssetFieldRoomID, roomID)
	if err != nil {
		return nil, s.storeError("list assets by room", err)
	}
	return assets, nil
}

func (s *InventoryService) GetAssetsByTypeID(ctx context.Context, typeID string) ([]models.Asset, error) {
	assets, err := s.store.ListAssetsByField(ctx, store.AssetFieldAssetTypeID, typeID)
	if err != nil {
		return nil, s.storeError("list assets by type", err)
	}
	return assets, nil
}

func (s *InventoryService) GetAssetByID(ctx context.Context, id string) (*models.Asset, error) {
	asset, err := s.store.GetAsset(ctx, id)
	if stderrors.Is(err, errors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, s.storeError("get asset", err)
	}
	return asset, nil
}

func (s *InventoryService) GetUsers(ctx context.Context) ([]models.User, error) {
	return cachedSortedList(ctx, s, constants.CacheKeyUsers, s.store.ListUsers, func(u models.User) string { return u.Name })
}

func (s *InventoryService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if stderrors.Is(err, errors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, s.storeError("get user", err)
	}
	return user, nil
}

func (s *InventoryService) GetAssetTypes(ctx context.Context) ([]models.AssetType, error) {
	return cachedSortedList(ctx, s, constants.CacheKeyAssetTypes, s.store.ListAssetTypes, func(t models.AssetType) string { return t.Name })
}

func (s *InventoryService) GetAssetTypeByID(ctx context.Context, id string) (*models.AssetType, error) {
	assetType, err := s.store.GetAssetType(ctx, id)
	if stderrors.Is(err, errors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, s.storeError("get asset type", err)
	}
	return assetType, nil
}

// RoomReport tổng hợp tài sản của phòng theo trạng thái, tính lại mỗi lần gọi
func (s *InventoryService) RoomReport(ctx context.Context, roomID string) (*dto.RoomReport, error) {
	room, err := s.store.GetRoom(ctx, roomID)
	if err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			return nil, errors.NotFound(errors.ErrCodeRoomNotFound, constants.MsgRoomNotFound)
		}
		return nil, s.storeError("get room", err)
	}

	manager, err := s.GetUserByID(ctx, room.ManagerID)
	if err != nil {
		return nil, err
	}

	assets, err := s.GetAssetsByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(constants.AssetStatuses))
	for _, status := range constants.AssetStatuses {
		counts[status] = 0
	}
	for _, a := range assets {
		counts[a.Status]++
	}

	return &dto.RoomReport{
		Room:          *room,
		Manager:       manager,
		Assets:        assets,
		Total:         len(assets),
		CountByStatus: counts,
	}, nil
}

// AssetTypeSummary đếm số tài sản của từng loại, theo thứ tự tên loại
func (s *InventoryService) AssetTypeSummary(ctx context.Context) ([]dto.AssetTypeSummary, error) {
	types, err := s.GetAssetTypes(ctx)
	if err != nil {
		return nil, err
	}
	assets, err := s.store.ListAssets(ctx)
	if err != nil {
		return nil, s.storeError("list assets", err)
	}

	counts := make(map[string]int)
	for _, a := range assets {
		if a.AssetTypeID != "" {
			counts[a.AssetTypeID]++
		}
	}

	summary := make([]dto.AssetTypeSummary, 0, len(types))
	for _, t := range types {
		summary = append(summary, dto.AssetTypeSummary{ID: t.ID, Name: t.Name, AssetCount: counts[t.ID]})
	}
	return summary, nil
}

// PublicAsset trả về thông tin hiển thị khi quét QR mà không cần đăng nhập
func (s *InventoryService) PublicAsset(ctx context.Context, id string) (*dto.PublicAsset, error) {
	asset, err := s.getAssetOrNotFound(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &dto.PublicAsset{
		ID:        asset.ID,
		Name:      asset.Name,
		Status:    asset.Status,
		DateAdded: asset.DateAdded,
		RoomID:    asset.RoomID,
	}

	room, err := s.GetRoomByID(ctx, asset.RoomID)
	if err != nil {
		return nil, err
	}
	if room != nil {
		result.RoomName = room.Name
		manager, err := s.GetUserByID(ctx, room.ManagerID)
		if err != nil {
			return nil, err
		}
		if manager != nil {
			result.ManagerName = manager.Name
		}
	}

	if asset.AssetTypeID != "" {
		assetType, err := s.GetAssetTypeByID(ctx, asset.AssetTypeID)
		if err != nil {
			return nil, err
		}
		if assetType != nil {
			result.AssetType = assetType.Name
		}
	}
	return result, nil
}

// ResolveScan nhận nội dung QR (id hoặc URL) và trả về tài sản tương ứng
func (s *InventoryService) ResolveScan(ctx context.Context, code string) (*dto.ScanResult, error) {
	id, ok := parseScanCode(code)
	if !ok {
		return nil, errors.DomainRule(errors.ErrCodeInvalidScan, constants.MsgInvalidScan)
	}

	asset, err := s.getAssetOrNotFound(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ScanResult{Asset: *asset, Path: "/" + constants.ResourceAssets + "/" + asset.ID}, nil
}

// scanPrefixes là các đường dẫn có thể chứa id tài sản trong mã QR
var scanPrefixes = [][]string{
	{"assets"},
	{"public", "asset"},
	{"public", "assets"},
}

// parseScanCode lấy id từ mã QR: một id trần, hoặc URL/đường dẫn dạng /assets/{id} hay /public/asset/{id}
func parseScanCode(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	if !strings.Contains(code, "/") {
		return code, true
	}

	u, err := url.Parse(code)
	if err != nil {
		return "", false
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for _, prefix := range scanPrefixes {
		if len(segments) != len(prefix)+1 {
			continue
		}
		matched := true
		for i, p := range prefix {
			if segments[i] != p {
				matched = false
				break
			}
		}
		if matched && segments[len(prefix)] != "" {
			return segments[len(prefix)], true
		}
	}
	return "", false
}
