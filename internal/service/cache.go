package service

import (
	"context"
	"encoding/json"
	"exam_prep_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	subjectListCacheKey = "exam_prep:subjects:list"
	platformStatsKey    = "exam_prep:admin:stats"

	subjectListTTL   = 10 * time.Minute
	platformStatsTTL = 60 * time.Second
)

// Cache 对 Redis 的薄封装；Client 为 nil 时所有操作都是空操作，
// 读写失败只记日志，不影响主流程。
type Cache struct {
	Client *redis.Client
}

func NewCache(rdb *redis.Client) Cache {
	return Cache{Client: rdb}
}

func (c Cache) get(ctx context.Context, key string, dst interface{}) bool {
	if c.Client == nil {
		return false
	}
	val, err := c.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	} else if err != nil {
		logger.Log.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal(val, dst); err != nil {
		logger.Log.Warn("redis cache entry corrupted", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c Cache) set(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	if c.Client == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, key, raw, ttl).Err(); err != nil {
		logger.Log.Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c Cache) del(ctx context.Context, keys ...string) {
	if c.Client == nil {
		return
	}
	if err := c.Client.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("redis del failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
