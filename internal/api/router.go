package api

import (
	"context"
	"net/http"
	"time"

	"shoplist-generator/internal/api/handlers/health"
	"shoplist-generator/internal/api/handlers/shoppinglist"
	"shoplist-generator/internal/api/middleware"
	"shoplist-generator/internal/core/ai/cache"
	"shoplist-generator/internal/core/ai/classifier"
	"shoplist-generator/internal/core/extract"
	"shoplist-generator/internal/core/lexicon"
	"shoplist-generator/internal/core/list"
	"shoplist-generator/internal/infrastructure/config"
	"shoplist-generator/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 60 * time.Second
	// 請求體大小限制 (1MB，純文字輸入用不到更多)
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, cacheStore cache.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制與重複請求過濾
	router.Use(middleware.BodySizeLimit(maxBodySize))
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("classifier_enabled", cfg.Classifier.Enabled),
		zap.Int("pipeline_workers", cfg.Pipeline.Workers),
		zap.String("model", cfg.Classifier.Model),
	)

	// 詞彙表在進程啟動時建立一次，之後唯讀共用
	tables := lexicon.Default()

	// 初始化分類服務客戶端與擷取服務
	classifierClient := classifier.NewClient(cfg)
	extractService := extract.NewService(cfg, tables, classifierClient, cacheStore)

	// 初始化購物清單建構器
	builder := list.NewBuilder(extractService, tables, cfg.Pipeline.Workers)

	// 全局中間件：設置超時和服務
	router.Use(func(c *gin.Context) {
		// 設置請求超時
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		// 設置配置與快取（健康檢查用）
		c.Set("config", cfg)
		c.Set("cache_store", cacheStore)

		// 處理請求
		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
			})
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		handler := shoppinglist.NewHandler(cfg, builder, extractService)

		api.POST("/shopping-list/generate", handler.HandleGenerate)
		api.POST("/extract", handler.HandleExtract)
	}

	common.LogInfo("Router setup completed")

	return router, nil
}
