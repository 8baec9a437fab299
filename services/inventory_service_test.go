package services

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"sync"
	"testing"
	"time"

	"assetflow/constants"
	"assetflow/dto"
	"assetflow/errors"
	"assetflow/models"
	"assetflow/services/logger"
	"assetflow/store"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	mu            sync.Mutex
	data          map[string][]byte
	gens          map[string]int64
	invalidations int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte), gens: make(map[string]int64)}
}

func (c *memoryCache) Get(_ context.Context, key string, target interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, target)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	return nil
}

func (c *memoryCache) Generation(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[key], nil
}

func (c *memoryCache) Invalidate(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		c.gens[k]++
	}
	c.invalidations++
	return nil
}

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) SendMessage(message string) error {
	n.messages = append(n.messages, message)
	return nil
}

type fixture struct {
	svc      *InventoryService
	store    *store.MemoryStore
	cache    *memoryCache
	notifier *recordingNotifier
	logs     *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:    store.NewMemoryStore(),
		cache:    newMemoryCache(),
		notifier: &recordingNotifier{},
		logs:     &bytes.Buffer{},
	}
	f.svc = NewInventoryService(InventoryServiceOptions{
		Store:         f.store,
		Cache:         f.cache,
		Notifier:      f.notifier,
		Logger:        logger.NewLogger(f.logs, logger.DebugLevel),
		Location:      LoadLocation(DefaultTimezone),
		PublicBaseURL: "https://assetflow.example/",
		Now: func() time.Time {
			return time.Date(2026, 10, 19, 18, 30, 0, 0, time.UTC)
		},
	})
	return f
}

func (f *fixture) manager(t *testing.T, name string) string {
	t.Helper()
	id, err := f.svc.AddUser(context.Background(), dto.CreateUserRequest{Name: name})
	require.NoError(t, err)
	return id
}

func (f *fixture) room(t *testing.T, name string) string {
	t.Helper()
	id, err := f.svc.AddRoom(context.Background(), dto.CreateRoomRequest{Name: name, ManagerID: f.manager(t, "Quản lý "+name)})
	require.NoError(t, err)
	return id
}

func requireKind(t *testing.T, err error, kind errors.Kind) *errors.AppError {
	t.Helper()
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr, "expected AppError, got %v", err)
	assert.Equal(t, kind, appErr.Kind)
	return appErr
}

func TestAddRoom_RoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	managerID := f.manager(t, "Nguyễn Văn An")

	id, err := f.svc.AddRoom(ctx, dto.CreateRoomRequest{Name: "  Phòng 101 ", ManagerID: managerID})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	room, err := f.svc.GetRoomByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, room)
	assert.Equal(t, "Phòng 101", room.Name)
	assert.Equal(t, managerID, room.ManagerID)
}

func TestAddRoom_Validation(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.AddRoom(context.Background(), dto.CreateRoomRequest{Name: "   ", ManagerID: ""})
	appErr := requireKind(t, err, errors.KindValidation)
	assert.Len(t, appErr.Details, 2)

	rooms, err := f.store.ListRooms(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestAddRoom_UnknownManager(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.AddRoom(context.Background(), dto.CreateRoomRequest{Name: "Phòng 1", ManagerID: "ghost"})
	appErr := requireKind(t, err, errors.KindDomainRule)
	assert.Equal(t, constants.MsgManagerNotFound, appErr.Message)
}

func TestGetByID_MissReturnsNil(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room, err := f.svc.GetRoomByID(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, room)

	asset, err := f.svc.GetAssetByID(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, asset)

	user, err := f.svc.GetUserByID(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, user)

	assetType, err := f.svc.GetAssetTypeByID(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, assetType)
}

func TestUpdateRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	roomID := f.room(t, "Phòng A")
	room, _ := f.svc.GetRoomByID(ctx, roomID)

	t.Run("empty update is rejected", func(t *testing.T) {
		err := f.svc.UpdateRoom(ctx, roomID, dto.UpdateRoomRequest{})
		appErr := requireKind(t, err, errors.KindValidation)
		assert.Equal(t, errors.ErrCodeEmptyUpdate, appErr.Code)
		assert.Equal(t, constants.MsgEmptyUpdate, appErr.Message)

		got, _ := f.svc.GetRoomByID(ctx, roomID)
		assert.Equal(t, room.Name, got.Name)
		assert.Equal(t, room.ManagerID, got.ManagerID)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		name := "Phòng B"
		require.NoError(t, f.svc.UpdateRoom(ctx, roomID, dto.UpdateRoomRequest{Name: &name}))

		got, _ := f.svc.GetRoomByID(ctx, roomID)
		assert.Equal(t, "Phòng B", got.Name)
		assert.Equal(t, room.ManagerID, got.ManagerID)
	})

	t.Run("blank name is invalid", func(t *testing.T) {
		blank := "  "
		err := f.svc.UpdateRoom(ctx, roomID, dto.UpdateRoomRequest{Name: &blank})
		requireKind(t, err, errors.KindValidation)
	})

	t.Run("unknown manager", func(t *testing.T) {
		ghost := "ghost"
		err := f.svc.UpdateRoom(ctx, roomID, dto.UpdateRoomRequest{ManagerID: &ghost})
		requireKind(t, err, errors.KindDomainRule)
	})

	t.Run("missing room", func(t *testing.T) {
		name := "X"
		err := f.svc.UpdateRoom(ctx, "missing", dto.UpdateRoomRequest{Name: &name})
		requireKind(t, err, errors.KindNotFound)
	})
}

func TestDeleteRoom_Guard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	roomID := f.room(t, "Phòng có đồ")

	_, err := f.svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Ghế", Quantity: 1, RoomID: roomID})
	require.NoError(t, err)

	err = f.svc.DeleteRoom(ctx, roomID)
	appErr := requireKind(t, err, errors.KindDomainRule)
	assert.Equal(t, constants.MsgRoomNotEmpty, appErr.Message)

	room, err := f.svc.GetRoomByID(ctx, roomID)
	require.NoError(t, err)
	assert.NotNil(t, room)

	emptyID := f.room(t, "Phòng trống")
	require.NoError(t, f.svc.DeleteRoom(ctx, emptyID))
	room, err = f.svc.GetRoomByID(ctx, emptyID)
	require.NoError(t, err)
	assert.Nil(t, room)

	requireKind(t, f.svc.DeleteRoom(ctx, emptyID), errors.KindNotFound)
}

// vanishingRoomStore báo phòng vẫn tồn tại dù đã bị xóa, giống một DeleteRoom chen vào sau lần kiểm tra
type vanishingRoomStore struct {
	store.Store
}

func (s *vanishingRoomStore) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	return &models.Room{ID: id, Name: "Phòng cũ"}, nil
}

func TestAddAsset_RoomDeletedConcurrently(t *testing.T) {
	ctx := context.Background()
	inner := store.NewMemoryStore()
	svc := NewInventoryService(InventoryServiceOptions{
		Store:  &vanishingRoomStore{Store: inner},
		Logger: logger.NewLogger(io.Discard, logger.ErrorLevel),
	})

	_, err := svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Ghế", Quantity: 2, RoomID: "deleted-room"})
	appErr := requireKind(t, err, errors.KindDomainRule)
	assert.Equal(t, constants.MsgRoomNotExist, appErr.Message)

	assets, err := inner.ListAssets(ctx)
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestAddAsset_Naming(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	roomID := f.room(t, "Phòng 1")

	created, err := f.svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Ghế", Quantity: 3, RoomID: roomID})
	require.NoError(t, err)
	require.Len(t, created, 3)
	assert.Equal(t, "Ghế #1", created[0].Name)
	assert.Equal(t, "Ghế #2", created[1].Name)
	assert.Equal(t, "Ghế #3", created[2].Name)

	single, err := f.svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Bảng", Quantity: 1, RoomID: roomID})
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, "Bảng", single[0].Name)
	assert.Equal(t, "https://assetflow.example/public/asset/"+single[0].ID, single[0].QRValue)

	asset, err := f.svc.GetAssetByID(ctx, single[0].ID)
	require.NoError(t, err)
	require.NotNil(t, asset)
	assert.Equal(t, constants.AssetStatusDefault, asset.Status)
	assert.Equal(t, roomID, asset.RoomID)
	// 18:30 UTC ngày 19 là ngày 20 theo giờ Việt Nam
	assert.Equal(t, "2026-10-20", asset.DateAdded)
}

func TestAddAsset_BulkAtomicity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	roomID := f.room(t, "Phòng 1")

	f.store.FailNextWrite(stderrors.New("disk full"))
	_, err := f.svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Máy tính", Quantity: 5, RoomID: roomID})
	appErr := requireKind(t, err, errors.KindStore)
	assert.Equal(t, constants.MsgServerError, appErr.Message)
	assert.Contains(t, f.logs.String(), "disk full")

	assets, err := f.svc.GetAssets(ctx, dto.AssetFilter{})
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestAddAsset_Rules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	roomID := f.room(t, "Phòng 1")

	_, err := f.svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Ghế", Quantity: 0, RoomID: roomID})
	requireKind(t, err, errors.KindValidation)

	_, err = f.svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Ghế", Quantity: 1, RoomID: "ghost"})
	appErr := requireKind(t, err, errors.KindDomainRule)
	assert.Equal(t, constants.MsgRoomNotExist, appErr.Message)

	_, err = f.svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Ghế", Quantity: 1, RoomID: roomID, AssetTypeID: "ghost"})
	requireKind(t, err, errors.KindDomainRule)

	typeID, err := f.svc.AddAssetType(ctx, dto.CreateAssetTypeRequest{Name: "Nội thất"})
	require.NoError(t, err)
	created, err := f.svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Ghế", Quantity: 2, RoomID: roomID, AssetTypeID: typeID})
	require.NoError(t, err)

	byType, err := f.svc.GetAssetsByTypeID(ctx, typeID)
	require.NoError(t, err)
	assert.Len(t, byType, len(created))
}

func TestUpdateAssetStatus_AnyTransition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	roomID := f.room(t, "Kho")
	created, err := f.svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Máy in", Quantity: 1, RoomID: roomID})
	require.NoError(t, err)
	id := created[0].ID

	for _, from := range constants.AssetStatuses {
		for _, to := range constants.AssetStatuses {
			require.NoError(t, f.svc.UpdateAssetStatus(ctx, dto.UpdateAssetStatusRequest{AssetID: id, Status: from}))
			require.NoError(t, f.svc.UpdateAssetStatus(ctx, dto.UpdateAssetStatusRequest{AssetID: id, Status: to}))
			asset, err := f.svc.GetAssetByID(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, to, asset.Status, "%s -> %s", from, to)
		}
	}

	err = f.svc.UpdateAssetStatus(ctx, dto.UpdateAssetStatusRequest{AssetID: id, Status: "Mất"})
	requireKind(t, err, errors.KindValidation)

	err = f.svc.UpdateAssetStatus(ctx, dto.UpdateAssetStatusRequest{AssetID: "missing", Status: constants.AssetStatusBroken})
	appErr := requireKind(t, err, errors.KindNotFound)
	assert.Equal(t, constants.MsgAssetNotFound, appErr.Message)
}

func TestMoveAsset_DoesNotValidateTarget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	roomID := f.room(t, "Phòng 1")
	created, err := f.svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Tủ", Quantity: 1, RoomID: roomID})
	require.NoError(t, err)

	require.NoError(t, f.svc.MoveAsset(ctx, dto.MoveAssetRequest{AssetID: created[0].ID, NewRoomID: "room-nowhere"}))

	asset, err := f.svc.GetAssetByID(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "room-nowhere", asset.RoomID)
	assert.Contains(t, f.logs.String(), "[WARN]")
	assert.Contains(t, f.logs.String(), "room-nowhere")

	err = f.svc.MoveAsset(ctx, dto.MoveAssetRequest{AssetID: "missing", NewRoomID: roomID})
	requireKind(t, err, errors.KindNotFound)
}

func TestGetRooms_VietnameseOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, name := range []string{"Bàn", "Ác", "Ảnh", "An", "B"} {
		f.room(t, name)
	}

	rooms, err := f.svc.GetRooms(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(rooms))
	for _, r := range rooms {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Ác", "An", "Ảnh", "B", "Bàn"}, names)
}

func TestGetUsers_VietnameseOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, name := range []string{"Em", "Đức", "Dũng", "An"} {
		f.manager(t, name)
	}

	users, err := f.svc.GetUsers(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Name)
	}
	assert.Equal(t, []string{"An", "Dũng", "Đức", "Em"}, names)
}

func TestGetAssets_NumberedNameMatchesOnlyItself(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	roomID := f.room(t, "Phòng Lab")
	_, err := f.svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Laptop", Quantity: 3, RoomID: roomID})
	require.NoError(t, err)

	assets, err := f.svc.GetAssets(ctx, dto.AssetFilter{Q: "Laptop #1"})
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "Laptop #1", assets[0].Name)

	assets, err = f.svc.GetAssets(ctx, dto.AssetFilter{Q: "laptp"})
	require.NoError(t, err)
	assert.Len(t, assets, 3)
}

func TestListCache_InvalidatedOnMutation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.room(t, "Phòng 1")

	rooms, err := f.svc.GetRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	// ghi thẳng vào store: danh sách vẫn lấy từ cache
	require.NoError(t, f.store.CreateRoom(ctx, &models.Room{Name: "Phòng ngoài", ManagerID: "x"}))
	rooms, err = f.svc.GetRooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 1)

	f.room(t, "Phòng 2")
	rooms, err = f.svc.GetRooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 3)
}

// slowListStore chạy hook ngay sau khi ListRooms đã chụp dữ liệu, mô phỏng thao tác ghi xen giữa
type slowListStore struct {
	store.Store
	afterList func()
}

func (s *slowListStore) ListRooms(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.Store.ListRooms(ctx)
	if hook := s.afterList; hook != nil {
		s.afterList = nil
		hook()
	}
	return rooms, err
}

func TestListCache_WriteDuringLoadIsNotHidden(t *testing.T) {
	ctx := context.Background()
	cache := newMemoryCache()
	st := &slowListStore{Store: store.NewMemoryStore()}
	svc := NewInventoryService(InventoryServiceOptions{
		Store:  st,
		Cache:  cache,
		Logger: logger.NewLogger(io.Discard, logger.ErrorLevel),
	})

	managerID, err := svc.AddUser(ctx, dto.CreateUserRequest{Name: "Lan"})
	require.NoError(t, err)

	var addedID string
	st.afterList = func() {
		id, err := svc.AddRoom(ctx, dto.CreateRoomRequest{Name: "Phòng mới", ManagerID: managerID})
		require.NoError(t, err)
		addedID = id
	}

	rooms, err := svc.GetRooms(ctx)
	require.NoError(t, err)
	assert.Empty(t, rooms)
	require.NotEmpty(t, addedID)

	rooms, err = svc.GetRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, addedID, rooms[0].ID)

	require.NoError(t, svc.DeleteRoom(ctx, addedID))
	rooms, err = svc.GetRooms(ctx)
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestMutations_BroadcastEvents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	roomID := f.room(t, "Phòng 1")
	_, err := f.svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Quạt", Quantity: 2, RoomID: roomID})
	require.NoError(t, err)

	// user.created, room.created, assets.created
	require.Len(t, f.notifier.messages, 3)

	var event struct {
		Type     string   `json:"type"`
		RoomIDs  []string `json:"roomIds"`
		AssetIDs []string `json:"assetIds"`
		Message  string   `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(f.notifier.messages[2]), &event))
	assert.Equal(t, constants.EventAssetsCreated, event.Type)
	assert.Equal(t, []string{roomID}, event.RoomIDs)
	assert.Len(t, event.AssetIDs, 2)
	assert.Equal(t, "Đã thêm 2 tài sản thành công.", event.Message)
}

func TestGetAssets_Filter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r1 := f.room(t, "Phòng 1")
	r2 := f.room(t, "Phòng 2")
	_, err := f.svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Máy chiếu", Quantity: 2, RoomID: r1})
	require.NoError(t, err)
	_, err = f.svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Điều hòa", Quantity: 1, RoomID: r2})
	require.NoError(t, err)

	all, err := f.svc.GetAssets(ctx, dto.AssetFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	found, err := f.svc.GetAssets(ctx, dto.AssetFilter{Q: "dieu hoa"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Điều hòa", found[0].Name)

	inRoom, err := f.svc.GetAssets(ctx, dto.AssetFilter{RoomID: r1})
	require.NoError(t, err)
	assert.Len(t, inRoom, 2)

	_, err = f.svc.GetAssets(ctx, dto.AssetFilter{Status: "Mất"})
	requireKind(t, err, errors.KindValidation)
}

func TestRoomReport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	roomID := f.room(t, "Phòng 1")
	created, err := f.svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Ghế", Quantity: 3, RoomID: roomID})
	require.NoError(t, err)
	require.NoError(t, f.svc.UpdateAssetStatus(ctx, dto.UpdateAssetStatusRequest{AssetID: created[0].ID, Status: constants.AssetStatusBroken}))

	report, err := f.svc.RoomReport(ctx, roomID)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Total)
	require.NotNil(t, report.Manager)
	assert.Equal(t, "Quản lý Phòng 1", report.Manager.Name)
	assert.Equal(t, 2, report.CountByStatus[constants.AssetStatusInUse])
	assert.Equal(t, 1, report.CountByStatus[constants.AssetStatusBroken])
	assert.Equal(t, 0, report.CountByStatus[constants.AssetStatusDisposed])

	_, err = f.svc.RoomReport(ctx, "missing")
	requireKind(t, err, errors.KindNotFound)
}

func TestAssetTypeSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	roomID := f.room(t, "Phòng 1")
	furniture, err := f.svc.AddAssetType(ctx, dto.CreateAssetTypeRequest{Name: "Nội thất"})
	require.NoError(t, err)
	_, err = f.svc.AddAssetType(ctx, dto.CreateAssetTypeRequest{Name: "Điện tử"})
	require.NoError(t, err)
	_, err = f.svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Bàn", Quantity: 4, RoomID: roomID, AssetTypeID: furniture})
	require.NoError(t, err)

	summary, err := f.svc.AssetTypeSummary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, "Điện tử", summary[0].Name)
	assert.Equal(t, 0, summary[0].AssetCount)
	assert.Equal(t, "Nội thất", summary[1].Name)
	assert.Equal(t, 4, summary[1].AssetCount)
}

func TestPublicAsset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	roomID := f.room(t, "Phòng 1")
	typeID, err := f.svc.AddAssetType(ctx, dto.CreateAssetTypeRequest{Name: "Điện tử"})
	require.NoError(t, err)
	created, err := f.svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Tivi", Quantity: 1, RoomID: roomID, AssetTypeID: typeID})
	require.NoError(t, err)

	view, err := f.svc.PublicAsset(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Tivi", view.Name)
	assert.Equal(t, "Phòng 1", view.RoomName)
	assert.Equal(t, "Quản lý Phòng 1", view.ManagerName)
	assert.Equal(t, "Điện tử", view.AssetType)

	_, err = f.svc.PublicAsset(ctx, "missing")
	requireKind(t, err, errors.KindNotFound)
}

func TestResolveScan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	roomID := f.room(t, "Phòng 1")
	created, err := f.svc.AddAsset(ctx, dto.CreateAssetRequest{Name: "Loa", Quantity: 1, RoomID: roomID})
	require.NoError(t, err)
	id := created[0].ID

	for _, code := range []string{
		id,
		"  " + id + " ",
		created[0].QRValue,
		"https://other.host/assets/" + id,
		"/assets/" + id,
		"https://assetflow.example/public/asset/" + id + "?src=qr",
	} {
		result, err := f.svc.ResolveScan(ctx, code)
		require.NoError(t, err, code)
		assert.Equal(t, id, result.Asset.ID, code)
		assert.Equal(t, "/assets/"+id, result.Path)
	}

	for _, code := range []string{"", "https://x/rooms/" + id, "https://x/assets/"} {
		_, err := f.svc.ResolveScan(ctx, code)
		requireKind(t, err, errors.KindDomainRule)
	}

	_, err = f.svc.ResolveScan(ctx, "missing")
	requireKind(t, err, errors.KindNotFound)
}

func TestNewInventoryService_Defaults(t *testing.T) {
	svc := NewInventoryService(InventoryServiceOptions{Store: store.NewMemoryStore(), Logger: logger.NewLogger(io.Discard, logger.SilentLevel)})
	assert.NotNil(t, svc.cache)
	assert.NotNil(t, svc.notifier)
	assert.NotNil(t, svc.location)
	assert.Equal(t, "/public/asset/a1", svc.QRValue("a1"))
}
