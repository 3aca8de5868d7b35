package extract

import (
	"context"
	"strings"

	"shoplist-generator/internal/core/ai/cache"
	"shoplist-generator/internal/core/ai/classifier"
	"shoplist-generator/internal/core/lexicon"
	"shoplist-generator/internal/infrastructure/config"
	"shoplist-generator/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 食材擷取服務。先嘗試外部分類服務，
// 任何失敗類別（逾時、網路錯誤、格式不符）都落回本地規則，
// 分類失敗永遠不會傳給呼叫方。
type Service struct {
	config     *config.Config
	classifier classifier.Classifier
	cache      cache.Store
	extractor  *Extractor
	normalizer *Normalizer
}

// NewService 創建擷取服務；classifier 與 store 可為 nil（直接走本地路徑）
func NewService(cfg *config.Config, tables *lexicon.Tables, cls classifier.Classifier, store cache.Store) *Service {
	normalizer := NewNormalizer(tables)
	return &Service{
		config:     cfg,
		classifier: cls,
		cache:      store,
		extractor:  NewExtractor(tables, normalizer),
		normalizer: normalizer,
	}
}

// Normalizer 供上層共用名稱標準化邏輯
func (s *Service) Normalizer() *Normalizer {
	return s.normalizer
}

// Extract 從單一來源文字擷取 RecipeAnalysis。
// 空輸入回傳空結果、信心 0；其餘情況必有結果，不回傳錯誤。
func (s *Service) Extract(ctx context.Context, text string) *common.RecipeAnalysis {
	if strings.TrimSpace(text) == "" {
		return &common.RecipeAnalysis{
			Ingredients: []common.ExtractedIngredient{},
			Confidence:  0,
		}
	}

	remote, err := s.classifyWithCache(ctx, text)
	return s.selectAnalysis(remote, err, text)
}

// classifyWithCache 先查快取再呼叫分類服務，單次嘗試
func (s *Service) classifyWithCache(ctx context.Context, text string) (*common.RecipeAnalysis, error) {
	if s.classifier == nil {
		return nil, classifier.NewError(classifier.ReasonDisabled, nil)
	}

	if s.cache != nil {
		if val, err := s.cache.Get(ctx, text); err == nil && val != "" {
			var analysis common.RecipeAnalysis
			if err := common.ParseJSON(val, &analysis); err == nil && len(analysis.Ingredients) > 0 {
				return &analysis, nil
			}
		}
	}

	analysis, err := s.classifier.Classify(ctx, text)
	if err != nil {
		return nil, err
	}

	s.finalizeRemote(analysis)

	if s.cache != nil {
		if data, err := common.ToJSON(analysis); err == nil {
			_ = s.cache.Set(ctx, text, data)
		}
	}

	return analysis, nil
}

// selectAnalysis 明確的退回選擇器：遠端結果可用就用，否則走本地規則
func (s *Service) selectAnalysis(remote *common.RecipeAnalysis, remoteErr error, text string) *common.RecipeAnalysis {
	if remoteErr == nil && remote != nil && len(remote.Ingredients) > 0 {
		return remote
	}

	if remoteErr != nil {
		common.LogWarn("分類服務結果不可用，改用本地規則擷取",
			zap.Error(remoteErr),
		)
	}

	return s.extractor.Extract(text)
}

// finalizeRemote 把遠端結果的每個名稱過一次標準化，補上缺少的分類，並夾緊信心值
func (s *Service) finalizeRemote(analysis *common.RecipeAnalysis) {
	for i := range analysis.Ingredients {
		ing := &analysis.Ingredients[i]
		std := s.normalizer.Standardize(ing.Name)
		ing.StandardizedName = std
		if ing.Category == "" {
			ing.Category = s.normalizer.Categorize(std)
		}
	}
	analysis.Confidence = common.ClampConfidence(analysis.Confidence)
}
