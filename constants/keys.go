package constants

import "time"

// Cache keys
const (
	CacheKeyPrefix     = "assetflow:"
	CacheKeyRooms      = CacheKeyPrefix + "rooms:all"
	CacheKeyUsers      = CacheKeyPrefix + "users:all"
	CacheKeyAssetTypes = CacheKeyPrefix + "asset-types:all"

	ListCacheTTL = 10 * time.Minute
)

// Resource names dùng trong đường dẫn HTTP
const (
	ResourceRooms      = "rooms"
	ResourceAssets     = "assets"
	ResourceAssetTypes = "asset-types"
	ResourceUsers      = "users"
)

// Inventory events phát qua websocket
const (
	EventRoomCreated        = "room.created"
	EventRoomUpdated        = "room.updated"
	EventRoomDeleted        = "room.deleted"
	EventAssetsCreated      = "assets.created"
	EventAssetStatusUpdated = "asset.status_updated"
	EventAssetMoved         = "asset.moved"
	EventAssetTypeCreated   = "asset_type.created"
	EventUserCreated        = "user.created"
)

// MaxBulkQuantity giới hạn số tài sản tạo trong một yêu cầu
const MaxBulkQuantity = 500
