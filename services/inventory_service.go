package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"assetflow/constants"
	"assetflow/dto"
	"assetflow/errors"
	"assetflow/models"
	"assetflow/services/logger"
	"assetflow/services/notification"
	"assetflow/store"
	"assetflow/validator"
)

// DefaultTimezone là múi giờ dùng để tính dateAdded khi không cấu hình
const DefaultTimezone = "Asia/Ho_Chi_Minh"

// InventoryServiceOptions chứa các phụ thuộc của InventoryService
type InventoryServiceOptions struct {
	Store         store.Store
	Cache         ListCache
	Notifier      notification.Service
	Logger        logger.Logger
	Location      *time.Location
	PublicBaseURL string
	Now           func() time.Time
}

// InventoryService xử lý các thao tác ghi và đọc trên kho tài sản
type InventoryService struct {
	store         store.Store
	cache         ListCache
	notifier      notification.Service
	logger        logger.Logger
	location      *time.Location
	publicBaseURL string
	now           func() time.Time
}

func NewInventoryService(opts InventoryServiceOptions) *InventoryService {
	s := &InventoryService{
		store:         opts.Store,
		cache:         opts.Cache,
		notifier:      opts.Notifier,
		logger:        opts.Logger,
		location:      opts.Location,
		publicBaseURL: strings.TrimRight(opts.PublicBaseURL, "/"),
		now:           opts.Now,
	}
	if s.cache == nil {
		s.cache = NopCache{}
	}
	if s.notifier == nil {
		s.notifier = notification.NopService{}
	}
	if s.logger == nil {
		s.logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if s.location == nil {
		s.location = LoadLocation(DefaultTimezone)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// LoadLocation nạp múi giờ theo tên, lỗi thì dùng UTC+7
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}
	return loc
}

// QRValue là chuỗi mã hóa trong QR của tài sản: đường dẫn trang tra cứu công khai
func (s *InventoryService) QRValue(assetID string) string {
	return s.publicBaseURL + "/public/asset/" + assetID
}

// AddRoom tạo phòng mới, người quản lý phải tồn tại
func (s *InventoryService) AddRoom(ctx context.Context, req dto.CreateRoomRequest) (string, error) {
	if err := validator.Struct(&req); err != nil {
		return "", err
	}
	if err := s.ensureManager(ctx, req.ManagerID); err != nil {
		return "", err
	}

	room := &models.Room{Name: req.Name, ManagerID: req.ManagerID}
	if err := s.store.CreateRoom(ctx, room); err != nil {
		return "", s.storeError("create room", err)
	}

	s.afterMutation(ctx, notification.NewEventBuilder(constants.EventRoomCreated).
		WithRoom(room.ID).
		WithMessage(constants.MsgRoomCreated))
	return room.ID, nil
}

// UpdateRoom ghi các trường được gửi lên, bỏ qua trường không có
func (s *InventoryService) UpdateRoom(ctx context.Context, id string, req dto.UpdateRoomRequest) error {
	if err := validator.Struct(&req); err != nil {
		return err
	}
	if req.IsEmpty() {
		return errors.NewAppError(errors.ErrCodeEmptyUpdate, constants.MsgEmptyUpdate, nil)
	}
	if req.ManagerID != nil {
		if err := s.ensureManager(ctx, *req.ManagerID); err != nil {
			return err
		}
	}

	if err := s.store.UpdateRoom(ctx, id, req.Fields()); err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			return errors.NotFound(errors.ErrCodeRoomNotFound, constants.MsgRoomNotFound)
		}
		return s.storeError("update room", err)
	}

	s.afterMutation(ctx, notification.NewEventBuilder(constants.EventRoomUpdated).
		WithRoom(id).
		WithMessage(constants.MsgRoomUpdated))
	return nil
}

// DeleteRoom chỉ xóa phòng không còn tài sản nào; store kiểm tra và xóa trong một giao dịch
func (s *InventoryService) DeleteRoom(ctx context.Context, id string) error {
	if err := s.store.DeleteRoom(ctx, id); err != nil {
		switch {
		case stderrors.Is(err, errors.ErrNotFound):
			return errors.NotFound(errors.ErrCodeRoomNotFound, constants.MsgRoomNotFound)
		case stderrors.Is(err, errors.ErrRoomNotEmpty):
			return errors.DomainRule(errors.ErrCodeRoomNotEmpty, constants.MsgRoomNotEmpty)
		}
		return s.storeError("delete room", err)
	}

	s.afterMutation(ctx, notification.NewEventBuilder(constants.EventRoomDeleted).
		WithRoom(id).
		WithMessage(constants.MsgRoomDeleted))
	return nil
}

// AddAsset tạo đúng quantity tài sản trong một giao dịch.
// Khi quantity > 1, tên thứ i là "name #i" (i bắt đầu từ 1).
func (s *InventoryService) AddAsset(ctx context.Context, req dto.CreateAssetRequest) ([]dto.CreatedAsset, error) {
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}

	if _, err := s.store.GetRoom(ctx, req.RoomID); err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			return nil, errors.DomainRule(errors.ErrCodeRoomNotFound, constants.MsgRoomNotExist)
		}
		return nil, s.storeError("get room", err)
	}
	if req.AssetTypeID != "" {
		if _, err := s.store.GetAssetType(ctx, req.AssetTypeID); err != nil {
			if stderrors.Is(err, errors.ErrNotFound) {
				return nil, errors.DomainRule(errors.ErrCodeAssetTypeNotFound, constants.MsgAssetTypeNotExist)
			}
			return nil, s.storeError("get asset type", err)
		}
	}

	dateAdded := s.now().In(s.location).Format(constants.DateLayout)
	assets := make([]models.Asset, req.Quantity)
	for i := range assets {
		assets[i] = models.Asset{
			Name:        assetName(req.Name, i, req.Quantity),
			RoomID:      req.RoomID,
			Status:      constants.AssetStatusDefault,
			DateAdded:   dateAdded,
			AssetTypeID: req.AssetTypeID,
		}
	}

	if err := s.store.CreateAssets(ctx, assets); err != nil {
		// phòng bị xóa sau lần kiểm tra ở trên
		if stderrors.Is(err, errors.ErrNotFound) {
			return nil, errors.DomainRule(errors.ErrCodeRoomNotFound, constants.MsgRoomNotExist)
		}
		return nil, s.storeError("create assets", err)
	}

	created := make([]dto.CreatedAsset, 0, len(assets))
	ids := make([]string, 0, len(assets))
	for _, a := range assets {
		created = append(created, dto.CreatedAsset{ID: a.ID, Name: a.Name, QRValue: s.QRValue(a.ID)})
		ids = append(ids, a.ID)
	}

	s.afterMutation(ctx, notification.NewEventBuilder(constants.EventAssetsCreated).
		WithRoom(req.RoomID).
		WithAssets(ids...).
		WithMessage(fmt.Sprintf(constants.MsgAssetsCreatedFmt, len(created))))
	return created, nil
}

func assetName(base string, index, quantity int) string {
	if quantity <= 1 {
		return base
	}
	return fmt.Sprintf("%s #%d", base, index+1)
}

// UpdateAssetStatus cho phép chuyển giữa mọi trạng thái hợp lệ
func (s *InventoryService) UpdateAssetStatus(ctx context.Context, req dto.UpdateAssetStatusRequest) error {
	if err := validator.Struct(&req); err != nil {
		return err
	}

	asset, err := s.getAssetOrNotFound(ctx, req.AssetID)
	if err != nil {
		return err
	}

	if err := s.store.UpdateAsset(ctx, req.AssetID, map[string]interface{}{"status": req.Status}); err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			return errors.NotFound(errors.ErrCodeAssetNotFound, constants.MsgAssetNotFound)
		}
		return s.storeError("update asset status", err)
	}

	s.afterMutation(ctx, notification.NewEventBuilder(constants.EventAssetStatusUpdated).
		WithRoom(asset.RoomID).
		WithAssets(asset.ID).
		WithMessage(constants.MsgAssetStatusUpdated))
	return nil
}

// MoveAsset chuyển tài sản sang phòng khác. Phòng đích không được kiểm tra,
// chỉ ghi cảnh báo khi không tìm thấy.
func (s *InventoryService) MoveAsset(ctx context.Context, req dto.MoveAssetRequest) error {
	if err := validator.Struct(&req); err != nil {
		return err
	}

	asset, err := s.getAssetOrNotFound(ctx, req.AssetID)
	if err != nil {
		return err
	}

	if _, err := s.store.GetRoom(ctx, req.NewRoomID); err != nil {
		s.logger.Warn("move asset %s: target room %s not found: %v", req.AssetID, req.NewRoomID, err)
	}

	if err := s.store.UpdateAsset(ctx, req.AssetID, map[string]interface{}{"room_id": req.NewRoomID}); err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			return errors.NotFound(errors.ErrCodeAssetNotFound, constants.MsgAssetNotFound)
		}
		return s.storeError("move asset", err)
	}

	s.afterMutation(ctx, notification.NewEventBuilder(constants.EventAssetMoved).
		WithRoom(asset.RoomID, req.NewRoomID).
		WithAssets(asset.ID).
		WithMessage(constants.MsgAssetMoved))
	return nil
}

func (s *InventoryService) AddAssetType(ctx context.Context, req dto.CreateAssetTypeRequest) (string, error) {
	if err := validator.Struct(&req); err != nil {
		return "", err
	}

	assetType := &models.AssetType{Name: req.Name}
	if err := s.store.CreateAssetType(ctx, assetType); err != nil {
		return "", s.storeError("create asset type", err)
	}

	s.afterMutation(ctx, notification.NewEventBuilder(constants.EventAssetTypeCreated).
		WithMessage(constants.MsgAssetTypeCreated))
	return assetType.ID, nil
}

func (s *InventoryService) AddUser(ctx context.Context, req dto.CreateUserRequest) (string, error) {
	if err := validator.Struct(&req); err != nil {
		return "", err
	}

	user := &models.User{Name: req.Name}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return "", s.storeError("create user", err)
	}

	s.afterMutation(ctx, notification.NewEventBuilder(constants.EventUserCreated).
		WithMessage(constants.MsgUserCreated))
	return user.ID, nil
}

func (s *InventoryService) ensureManager(ctx context.Context, managerID string) error {
	if _, err := s.store.GetUser(ctx, managerID); err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			return errors.DomainRule(errors.ErrCodeManagerNotFound, constants.MsgManagerNotFound)
		}
		return s.storeError("get manager", err)
	}
	return nil
}

func (s *InventoryService) getAssetOrNotFound(ctx context.Context, id string) (*models.Asset, error) {
	asset, err := s.store.GetAsset(ctx, id)
	if err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			return nil, errors.NotFound(errors.ErrCodeAssetNotFound, constants.MsgAssetNotFound)
		}
		return nil, s.storeError("get asset", err)
	}
	return asset, nil
}

// storeError ghi log lỗi gốc và trả về lỗi chung cho client
func (s *InventoryService) storeError(op string, err error) error {
	s.logger.Error("%s: %v", op, err)
	return errors.Store(constants.MsgServerError, err)
}

// afterMutation làm mất hiệu lực cache danh sách và phát sự kiện. Lỗi ở đây không làm hỏng thao tác đã ghi.
func (s *InventoryService) afterMutation(ctx context.Context, event *notification.EventBuilder) {
	if err := s.cache.Invalidate(ctx, constants.CacheKeyRooms, constants.CacheKeyUsers, constants.CacheKeyAssetTypes); err != nil {
		s.logger.Warn("invalidate list cache: %v", err)
	}

	message, err := event.Build()
	if err != nil {
		s.logger.Warn("build inventory event: %v", err)
		return
	}
	if err := s.notifier.SendMessage(message); err != nil {
		s.logger.Warn("broadcast inventory event: %v", err)
	}
}
