package classifier

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shoplist-generator/internal/infrastructure/config"
	"shoplist-generator/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// extractionInstruction 固定的擷取指令，隨來源文字一起送出
const extractionInstruction = `Extract the ingredients from the following recipe text. ` +
	`Return compact JSON only, no explanations, in this exact shape: ` +
	`{"ingredients":[{"name":"","quantity":"","unit":"","category":""}],` +
	`"servings":"","cook_time":"","difficulty":"","cuisine":"","confidence":0.0}. ` +
	`Every ingredient must have a name. Preserve fractions like "1/2" in quantity. ` +
	`Leave unknown fields empty. Confidence is a number between 0 and 1.`

// Client 透過 OpenRouter 相容端點呼叫分類模型
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewClient 創建分類服務客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.Classifier.BaseURL).
		SetTimeout(cfg.Classifier.Timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.Classifier.APIKey)).
		SetHeader("HTTP-Referer", "https://shoplist-generator.app").
		SetHeader("X-Title", "Shoplist Generator")

	return &Client{
		config: cfg,
		client: client,
	}
}

// Classify 將來源文字送交分類模型，回傳解析後的擷取結果。
// 單次嘗試、有界逾時；所有失敗都包成 *Error。
func (c *Client) Classify(ctx context.Context, text string) (*common.RecipeAnalysis, error) {
	if !c.config.Classifier.Enabled {
		return nil, NewError(ReasonDisabled, nil)
	}

	req := map[string]interface{}{
		"model": c.config.Classifier.Model,
		"messages": []map[string]interface{}{
			{
				"role":    "system",
				"content": extractionInstruction,
			},
			{
				"role":    "user",
				"content": text,
			},
		},
		"max_tokens": c.config.Classifier.MaxTokens,
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	common.LogClassifierCall(time.Since(start), err, "")

	if err != nil {
		return nil, NewError(ReasonUnavailable, fmt.Errorf("failed to send request: %w", err))
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogWarn("分類服務回傳錯誤狀態",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", c.config.Classifier.Model),
		)
		return nil, NewError(ReasonUnavailable, fmt.Errorf("classifier returned status %d", resp.StatusCode()))
	}

	// 解析回應外層
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := common.ParseJSON(string(resp.Body()), &result); err != nil {
		return nil, NewError(ReasonMalformed, fmt.Errorf("failed to parse response: %w", err))
	}
	if len(result.Choices) == 0 {
		return nil, NewError(ReasonMalformed, fmt.Errorf("no choices in response"))
	}

	return ParseContent(result.Choices[0].Message.Content)
}

// wireIngredient 模型回傳的食材欄位
type wireIngredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
}

// wireAnalysis 模型回傳的完整結構
type wireAnalysis struct {
	Ingredients []wireIngredient `json:"ingredients"`
	Servings    string           `json:"servings"`
	CookTime    string           `json:"cook_time"`
	Difficulty  string           `json:"difficulty"`
	Cuisine     string           `json:"cuisine"`
	Confidence  float64          `json:"confidence"`
}

// ParseContent 防禦性地解析模型輸出的 JSON 內容。
// 缺少 ingredients 視為格式不符而非崩潰；confidence 一律夾到 [0,1]。
func ParseContent(content string) (*common.RecipeAnalysis, error) {
	content = common.ExtractJSONObject(content)
	content = common.QuoteJSONKeys(content)

	var wire wireAnalysis
	if err := common.ParseJSON(content, &wire); err != nil {
		return nil, NewError(ReasonMalformed, fmt.Errorf("failed to parse classification content: %w", err))
	}

	if len(wire.Ingredients) == 0 {
		return nil, NewError(ReasonMalformed, fmt.Errorf("classification response has no ingredients"))
	}

	analysis := &common.RecipeAnalysis{
		Servings:   wire.Servings,
		CookTime:   wire.CookTime,
		Difficulty: wire.Difficulty,
		Cuisine:    wire.Cuisine,
		Confidence: common.ClampConfidence(wire.Confidence),
	}
	for _, ing := range wire.Ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		analysis.Ingredients = append(analysis.Ingredients, common.ExtractedIngredient{
			Name:     name,
			Quantity: strings.TrimSpace(ing.Quantity),
			Unit:     strings.TrimSpace(ing.Unit),
			Category: strings.TrimSpace(ing.Category),
		})
	}
	if len(analysis.Ingredients) == 0 {
		return nil, NewError(ReasonMalformed, fmt.Errorf("classification response has no named ingredients"))
	}

	return analysis, nil
}

// Close 關閉客戶端
func (c *Client) Close() error {
	return nil
}
