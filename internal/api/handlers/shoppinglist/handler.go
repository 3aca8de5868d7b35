package shoppinglist

import (
	"errors"
	"net/http"

	"shoplist-generator/internal/core/extract"
	"shoplist-generator/internal/core/list"
	"shoplist-generator/internal/infrastructure/config"
	"shoplist-generator/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateRequest 產生購物清單的請求
type GenerateRequest struct {
	Sources   []common.SourceText    `json:"sources" binding:"required"` // 來源文字列表
	Inventory []common.InventoryItem `json:"inventory"`                  // 家庭庫存快照，可省略
}

// ExtractRequest 單篇文字擷取的請求
type ExtractRequest struct {
	Text string `json:"text" binding:"required"`
}

// Handler 購物清單處理程序
type Handler struct {
	config         *config.Config
	builder        *list.Builder
	extractService *extract.Service
}

// NewHandler 創建購物清單處理程序
func NewHandler(cfg *config.Config, builder *list.Builder, extractService *extract.Service) *Handler {
	return &Handler{
		config:         cfg,
		builder:        builder,
		extractService: extractService,
	}
}

// HandleGenerate 從來源文字與庫存建構購物清單
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	common.LogInfo("開始處理購物清單請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	if len(req.Sources) > h.config.Pipeline.MaxSources {
		common.LogWarn("來源數量超出上限",
			zap.Int("sources", len(req.Sources)),
			zap.Int("max_sources", h.config.Pipeline.MaxSources),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Too many sources",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	result, err := h.builder.Build(c.Request.Context(), req.Sources, req.Inventory)
	if err != nil {
		h.writeBuildError(c, requestID, err)
		return
	}

	common.LogInfo("購物清單請求完成",
		zap.String("request_id", requestID),
		zap.String("list_id", result.ID),
		zap.Int("total_items", result.TotalItems),
	)
	c.JSON(http.StatusOK, result)
}

// HandleExtract 對單篇文字執行擷取，供自行管理清單的客戶端使用
func (h *Handler) HandleExtract(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	analysis := h.extractService.Extract(c.Request.Context(), req.Text)

	common.LogInfo("擷取請求完成",
		zap.String("request_id", requestID),
		zap.Int("ingredients", len(analysis.Ingredients)),
		zap.Float64("confidence", analysis.Confidence),
	)
	c.JSON(http.StatusOK, analysis)
}

// writeBuildError 把建構錯誤轉成 API 響應；
// 只有兩個終端錯誤會以 422 回報，其餘視為內部錯誤。
func (h *Handler) writeBuildError(c *gin.Context, requestID string, err error) {
	var customErr *common.CustomError
	if errors.As(err, &customErr) &&
		(customErr.Code == common.ErrCodeNoSourceData || customErr.Code == common.ErrCodeNoIngredientsExtracted) {
		common.LogWarn("購物清單建構失敗",
			zap.String("request_id", requestID),
			zap.String("code", customErr.Code),
		)
		c.JSON(customErr.Status, gin.H{
			"error": customErr.Message,
			"code":  customErr.Code,
		})
		return
	}

	common.LogError("購物清單建構發生內部錯誤",
		zap.Error(err),
		zap.String("request_id", requestID),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
		"code":  common.ErrCodeInternalError,
	})
}
