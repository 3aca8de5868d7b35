// Package cache 快取分類服務的擷取結果，鍵為來源文字的 SHA-256。
// 預設使用進程內的 TTL 快取，亦可透過設定切換到 Redis 後端。
package cache

import (
	"context"

	"shoplist-generator/internal/infrastructure/config"
	"shoplist-generator/internal/pkg/common"
)

// Store 分類結果快取的統一介面
type Store interface {
	// Get 取得快取值，未命中時回傳錯誤
	Get(ctx context.Context, text string) (string, error)
	// Set 寫入快取值
	Set(ctx context.Context, text, value string) error
	// Close 釋放資源
	Close() error
}

// New 依設定建立快取後端；快取停用時回傳 nil
func New(cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		common.LogInfo("Cache disabled")
		return nil, nil
	}

	if cfg.Cache.Backend == "redis" {
		return NewRedisStore(cfg)
	}
	return NewManager(cfg), nil
}
