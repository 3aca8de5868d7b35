package common

import (
	"strings"
	"time"
)

// ExtractedIngredient 從來源文字擷取出的食材
type ExtractedIngredient struct {
	Name             string `json:"name"`
	Quantity         string `json:"quantity,omitempty"` // 保留分數格式，如 "1/2"
	Unit             string `json:"unit,omitempty"`
	Category         string `json:"category,omitempty"`
	StandardizedName string `json:"standardized_name,omitempty"`
}

// HasQuantity 是否帶有數量資訊
func (i ExtractedIngredient) HasQuantity() bool {
	return i.Quantity != ""
}

// DedupKey 去重與庫存比對用的鍵（標準化名稱優先，一律小寫）
func (i ExtractedIngredient) DedupKey() string {
	if i.StandardizedName != "" {
		return strings.ToLower(i.StandardizedName)
	}
	return strings.ToLower(i.Name)
}

// ShoppingListItem 購物清單項目
type ShoppingListItem struct {
	ID string `json:"id"`
	ExtractedIngredient
	Checked      bool   `json:"checked"` // 由外部 UI 持有，這裡只保留欄位
	StoreSection string `json:"store_section"`
	Price        string `json:"price,omitempty"`
	Notes        string `json:"notes,omitempty"`
	RecipeSource string `json:"recipe_source,omitempty"`
}

// RecipeAnalysis 單一來源文字的擷取結果
type RecipeAnalysis struct {
	Ingredients []ExtractedIngredient `json:"ingredients"`
	Servings    string                `json:"servings,omitempty"`
	CookTime    string                `json:"cook_time,omitempty"`
	Difficulty  string                `json:"difficulty,omitempty"`
	Cuisine     string                `json:"cuisine,omitempty"`
	Confidence  float64               `json:"confidence"`
}

// InventoryItem 家庭庫存項目（唯讀，由呼叫方提供）
type InventoryItem struct {
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit,omitempty"`
	ExpiryDate string  `json:"expiry_date,omitempty"`
}

// SourceText 待分析的來源文字（社群貼文、食譜描述等）
type SourceText struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Creator string `json:"creator"`
	Text    string `json:"text"`
}

// SourceProvenance 來源溯源紀錄
type SourceProvenance struct {
	SourceID string          `json:"source_id"`
	Title    string          `json:"title"`
	Creator  string          `json:"creator"`
	Analysis *RecipeAnalysis `json:"analysis"`
}

// SectionGroup 依賣場區域分組後的項目（維持固定走道順序）
type SectionGroup struct {
	Section string             `json:"section"`
	Emoji   string             `json:"emoji,omitempty"`
	Items   []ShoppingListItem `json:"items"`
}

// GeneratedShoppingList 一次建構的完整結果快照
type GeneratedShoppingList struct {
	ID                   string             `json:"id"`
	Items                []ShoppingListItem `json:"items"`
	OrganizedItems       []SectionGroup     `json:"organized_items"` // 恆等於 Items 的重新分組
	Sources              []SourceProvenance `json:"sources"`
	TotalItems           int                `json:"total_items"`
	Confidence           float64            `json:"confidence"`
	TotalExtracted       int                `json:"total_extracted"`
	RemovedFromInventory int                `json:"removed_from_inventory"`
	RemovedItems         []string           `json:"removed_items"`
	CreatedAt            time.Time          `json:"created_at"`
}

// ClampConfidence 把信心值限制在 [0,1]
func ClampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
