package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"shoplist-generator/internal/infrastructure/config"
	"shoplist-generator/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisStore Redis 後端的分類結果快取
type RedisStore struct {
	client *redis.Client
	config *config.Config
}

// NewRedisStore 創建 Redis 快取後端
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Cache.RedisAddr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("Redis 快取已初始化",
		zap.String("addr", cfg.Cache.RedisAddr),
		zap.Duration("存活時間", cfg.Cache.TTL),
	)

	return &RedisStore{
		client: client,
		config: cfg,
	}, nil
}

// Get 取得快取值
func (s *RedisStore) Get(ctx context.Context, text string) (string, error) {
	key := s.generateKey(text)

	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		common.LogCacheMiss("classification", key)
		return "", common.ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("failed to get from Redis: %w", err)
	}

	common.LogCacheHit("classification", key)
	return val, nil
}

// Set 設置快取值
func (s *RedisStore) Set(ctx context.Context, text, value string) error {
	key := s.generateKey(text)

	if err := s.client.Set(ctx, key, value, s.config.Cache.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}
	return nil
}

// generateKey 生成快取鍵
func (s *RedisStore) generateKey(text string) string {
	hash := sha256.Sum256([]byte(text))
	return fmt.Sprintf("shoplist:classification:%s", hex.EncodeToString(hash[:]))
}

// Close 關閉 Redis 連接
func (s *RedisStore) Close() error {
	return s.client.Close()
}
