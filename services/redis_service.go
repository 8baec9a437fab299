package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// ListCache lưu kết quả các truy vấn danh sách đã sắp xếp.
// Mỗi danh sách có một thế hệ; Invalidate tăng thế hệ nên bản ghi cũ không còn được đọc,
// kể cả khi một request đọc chậm ghi lại dữ liệu cũ sau thao tác ghi.
type ListCache interface {
	Get(ctx context.Context, key string, target interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Generation(ctx context.Context, key string) (int64, error)
	Invalidate(ctx context.Context, keys ...string) error
}

// GenerationKey là key lưu thế hệ của một danh sách
func GenerationKey(key string) string {
	return key + ":gen"
}

// VersionedKey là key chứa dữ liệu của danh sách ở thế hệ gen
func VersionedKey(key string, gen int64) string {
	return fmt.Sprintf("%s:v%d", key, gen)
}

// Hàm lấy data từ Redis, found=false khi key không tồn tại
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) (bool, error) {
	cachedData, err := rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	// Parse JSON thành object
	if err := json.Unmarshal(cachedData, target); err != nil {
		return false, err
	}
	return true, nil
}

// Hàm lưu dữ liệu vào Redis
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, dataJSON, ttl).Err()
}

// Hàm đọc thế hệ của danh sách, chưa có thì là 0
func GetGenerationFromRedis(ctx context.Context, rdb *redis.Client, key string) (int64, error) {
	gen, err := rdb.Get(ctx, GenerationKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Hàm tăng thế hệ của các danh sách trong một pipeline
func BumpGenerationInRedis(ctx context.Context, rdb *redis.Client, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range keys {
			pipe.Incr(ctx, GenerationKey(key))
		}
		return nil
	})
	return err
}

// RedisCache là ListCache dùng Redis
type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string, target interface{}) (bool, error) {
	return GetFromRedis(ctx, c.rdb, key, target)
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return SetToRedis(ctx, c.rdb, key, value, ttl)
}

func (c *RedisCache) Generation(ctx context.Context, key string) (int64, error) {
	return GetGenerationFromRedis(ctx, c.rdb, key)
}

func (c *RedisCache) Invalidate(ctx context.Context, keys ...string) error {
	return BumpGenerationInRedis(ctx, c.rdb, keys...)
}

// NopCache không lưu gì, dùng khi chưa cấu hình Redis
type NopCache struct{}

func (NopCache) Get(context.Context, string, interface{}) (bool, error)        { return false, nil }
func (NopCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (NopCache) Generation(context.Context, string) (int64, error)             { return 0, nil }
func (NopCache) Invalidate(context.Context, ...string) error                   { return nil }
