package extract

import (
	"regexp"
	"strings"

	"shoplist-generator/internal/core/lexicon"
	"shoplist-generator/internal/pkg/common"
)

// Extractor 本地規則擷取器。純函數、無副作用，
// 相同輸入與詞彙表必定產生相同結果。
type Extractor struct {
	tables     *lexicon.Tables
	normalizer *Normalizer

	// 三組樣式依序嘗試，單行內先命中的樣式家族勝出
	quantityPattern *regexp.Regexp
	verbPattern     *regexp.Regexp
}

// NewExtractor 創建本地擷取器，正則由詞彙表組出
func NewExtractor(tables *lexicon.Tables, normalizer *Normalizer) *Extractor {
	units := make([]string, len(tables.Units))
	for i, u := range tables.Units {
		units[i] = regexp.QuoteMeta(u)
	}
	unitAlt := strings.Join(units, "|")
	verbAlt := strings.Join(tables.ActionVerbs, "|")

	// 數量支援小數（1.5）、分數（1/2）、帶分數（1 1/2）與分數字符（½）
	quantity := regexp.MustCompile(`(?i)(\d+\s+\d+/\d+|\d+/\d+|\d+(?:\.\d+)?|[¼½¾⅓⅔⅛⅜⅝⅞])\s*(` + unitAlt + `)\b\s+(?:of\s+)?([a-zA-Z][a-zA-Z '\-]*)`)
	verb := regexp.MustCompile(`(?i)\b(?:` + verbAlt + `)\s+([a-zA-Z][a-zA-Z '\-]*)`)

	return &Extractor{
		tables:          tables,
		normalizer:      normalizer,
		quantityPattern: quantity,
		verbPattern:     verb,
	}
}

// Extract 以本地規則從文字擷取食材。空輸入回傳空結果、信心 0。
func (e *Extractor) Extract(text string) *common.RecipeAnalysis {
	if strings.TrimSpace(text) == "" {
		return &common.RecipeAnalysis{
			Ingredients: []common.ExtractedIngredient{},
			Confidence:  0,
		}
	}

	var ingredients []common.ExtractedIngredient
	index := make(map[string]int) // 去重鍵 → ingredients 位置

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// 家族 (a)：<數量><單位><名稱>，整行內所有命中都收
		if matches := e.quantityPattern.FindAllStringSubmatch(line, -1); len(matches) > 0 {
			for _, m := range matches {
				e.addCandidate(&ingredients, index, m[3], m[1], m[2])
			}
			continue
		}

		// 家族 (b)：動詞引導的名稱
		if matches := e.verbPattern.FindAllStringSubmatch(line, -1); len(matches) > 0 {
			for _, m := range matches {
				e.addCandidate(&ingredients, index, m[1], "", "")
			}
			continue
		}

		// 家族 (c)：逗號連接的清單
		if strings.Contains(line, ",") {
			for _, part := range strings.Split(line, ",") {
				e.addCandidate(&ingredients, index, part, "", "")
			}
		}
	}

	// 常被省略的基本食材：整篇文字掃描補入
	lowerText := strings.ToLower(text)
	for _, staple := range e.tables.Staples {
		if !strings.Contains(lowerText, staple) {
			continue
		}
		std := e.normalizer.Standardize(staple)
		key := strings.ToLower(std)
		if _, exists := index[key]; exists {
			continue
		}
		index[key] = len(ingredients)
		ingredients = append(ingredients, common.ExtractedIngredient{
			Name:             staple,
			StandardizedName: std,
			Category:         e.normalizer.Categorize(std),
		})
	}

	if ingredients == nil {
		ingredients = []common.ExtractedIngredient{}
	}

	return &common.RecipeAnalysis{
		Ingredients: ingredients,
		Confidence:  e.confidence(text, len(ingredients)),
	}
}

// conjunctionCuts 名稱擷取常把後續子句一併吃進來，在這些詞處截斷
var conjunctionCuts = []string{" and ", " or ", " to ", " for ", " on ", " in "}

// addCandidate 清理並驗證候選名稱，通過者併入結果。
// 同一文字內以標準化名稱去重；後到者帶數量而先到者沒有時替換之。
func (e *Extractor) addCandidate(ingredients *[]common.ExtractedIngredient, index map[string]int, rawName, quantity, unit string) {
	name := strings.TrimSpace(rawName)
	lower := strings.ToLower(name)
	for _, cut := range conjunctionCuts {
		if i := strings.Index(lower, cut); i != -1 {
			name = name[:i]
			lower = lower[:i]
		}
	}

	cleaned := e.normalizer.CleanName(name)
	if !e.normalizer.ValidateName(cleaned) {
		return
	}

	std := e.normalizer.Standardize(cleaned)
	candidate := common.ExtractedIngredient{
		Name:             cleaned,
		Quantity:         strings.TrimSpace(quantity),
		Unit:             strings.ToLower(strings.TrimSpace(unit)),
		StandardizedName: std,
		Category:         e.normalizer.Categorize(std),
	}

	key := strings.ToLower(std)
	if pos, exists := index[key]; exists {
		// 先到者優先，除非後到者補上了缺少的數量資訊
		if !(*ingredients)[pos].HasQuantity() && candidate.HasQuantity() {
			(*ingredients)[pos] = candidate
		}
		return
	}
	index[key] = len(*ingredients)
	*ingredients = append(*ingredients, candidate)
}

// confidence 本地路徑的信心估算：
// 基礎 0.5；食材數 >5 加 0.2、>2 加 0.1；每個出現的食譜指示詞加 0.05；
// 原始文字中每個數量樣式命中加 0.1；最後夾到 [0,1]。
func (e *Extractor) confidence(text string, count int) float64 {
	score := 0.5

	if count > 5 {
		score += 0.2
	} else if count > 2 {
		score += 0.1
	}

	lower := strings.ToLower(text)
	for _, ind := range e.tables.RecipeIndicators {
		if strings.Contains(lower, ind) {
			score += 0.05
		}
	}

	score += 0.1 * float64(len(e.quantityPattern.FindAllString(text, -1)))

	return common.ClampConfidence(score)
}
