package store

import (
	"context"
	"testing"

	"assetflow/constants"
	"assetflow/errors"
	"assetflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract kiểm tra hành vi chung mà mọi Store phải có
func runContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("room round trip", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		room := &models.Room{Name: "Phòng 101", ManagerID: "u1"}
		require.NoError(t, s.CreateRoom(ctx, room))
		require.NotEmpty(t, room.ID)

		got, err := s.GetRoom(ctx, room.ID)
		require.NoError(t, err)
		assert.Equal(t, "Phòng 101", got.Name)
		assert.Equal(t, "u1", got.ManagerID)

		require.NoError(t, s.UpdateRoom(ctx, room.ID, map[string]interface{}{"name": "Phòng 102"}))
		got, err = s.GetRoom(ctx, room.ID)
		require.NoError(t, err)
		assert.Equal(t, "Phòng 102", got.Name)
		assert.Equal(t, "u1", got.ManagerID)

		require.NoError(t, s.DeleteRoom(ctx, room.ID))
		_, err = s.GetRoom(ctx, room.ID)
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("missing ids", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, err := s.GetRoom(ctx, "missing")
		assert.ErrorIs(t, err, errors.ErrNotFound)
		_, err = s.GetAsset(ctx, "missing")
		assert.ErrorIs(t, err, errors.ErrNotFound)
		_, err = s.GetUser(ctx, "missing")
		assert.ErrorIs(t, err, errors.ErrNotFound)
		_, err = s.GetAssetType(ctx, "missing")
		assert.ErrorIs(t, err, errors.ErrNotFound)

		assert.ErrorIs(t, s.UpdateRoom(ctx, "missing", map[string]interface{}{"name": "x"}), errors.ErrNotFound)
		assert.ErrorIs(t, s.DeleteRoom(ctx, "missing"), errors.ErrNotFound)
		assert.ErrorIs(t, s.UpdateAsset(ctx, "missing", map[string]interface{}{"status": constants.AssetStatusBroken}), errors.ErrNotFound)
	})

	t.Run("bulk assets and filters", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		createRooms(t, s, "r1", "r2", "r3")

		batch := []models.Asset{
			{Name: "Ghế #1", RoomID: "r1", Status: constants.AssetStatusDefault, DateAdded: "2026-10-19", AssetTypeID: "t1"},
			{Name: "Ghế #2", RoomID: "r1", Status: constants.AssetStatusDefault, DateAdded: "2026-10-19", AssetTypeID: "t1"},
			{Name: "Bàn", RoomID: "r2", Status: constants.AssetStatusBroken, DateAdded: "2026-10-19"},
		}
		require.NoError(t, s.CreateAssets(ctx, batch))
		for _, a := range batch {
			assert.NotEmpty(t, a.ID)
		}

		all, err := s.ListAssets(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		inR1, err := s.ListAssetsByField(ctx, AssetFieldRoomID, "r1")
		require.NoError(t, err)
		assert.Len(t, inR1, 2)

		ofT1, err := s.ListAssetsByField(ctx, AssetFieldAssetTypeID, "t1")
		require.NoError(t, err)
		assert.Len(t, ofT1, 2)

		require.NoError(t, s.UpdateAsset(ctx, batch[2].ID, map[string]interface{}{"room_id": "r3"}))
		got, err := s.GetAsset(ctx, batch[2].ID)
		require.NoError(t, err)
		assert.Equal(t, "r3", got.RoomID)
		assert.Equal(t, constants.AssetStatusBroken, got.Status)
	})

	t.Run("assets need an existing room", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		createRooms(t, s, "r1")

		err := s.CreateAssets(ctx, []models.Asset{
			{Name: "Ghế #1", RoomID: "r1", Status: constants.AssetStatusDefault},
			{Name: "Ghế #2", RoomID: "ghost", Status: constants.AssetStatusDefault},
		})
		assert.ErrorIs(t, err, errors.ErrNotFound)

		all, err := s.ListAssets(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("delete room guard", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		createRooms(t, s, "r1", "r2")
		require.NoError(t, s.CreateAssets(ctx, []models.Asset{{Name: "Bàn", RoomID: "r1", Status: constants.AssetStatusDefault}}))

		assert.ErrorIs(t, s.DeleteRoom(ctx, "r1"), errors.ErrRoomNotEmpty)
		_, err := s.GetRoom(ctx, "r1")
		require.NoError(t, err)

		require.NoError(t, s.DeleteRoom(ctx, "r2"))
		_, err = s.GetRoom(ctx, "r2")
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("users and asset types", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		u := &models.User{Name: "Nguyễn Văn An"}
		require.NoError(t, s.CreateUser(ctx, u))
		gotU, err := s.GetUser(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.Name, gotU.Name)

		at := &models.AssetType{Name: "Máy tính"}
		require.NoError(t, s.CreateAssetType(ctx, at))
		gotT, err := s.GetAssetType(ctx, at.ID)
		require.NoError(t, err)
		assert.Equal(t, at.Name, gotT.Name)

		users, err := s.ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
		types, err := s.ListAssetTypes(ctx)
		require.NoError(t, err)
		assert.Len(t, types, 1)
	})
}

func createRooms(t *testing.T, s Store, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, s.CreateRoom(context.Background(), &models.Room{ID: id, Name: "Phòng " + id, ManagerID: "u1"}))
	}
}
