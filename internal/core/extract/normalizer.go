package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"shoplist-generator/internal/core/lexicon"
)

var (
	// 保留連字號，其餘標點一律換成空白
	punctPattern = regexp.MustCompile(`[^\p{L}\p{N}\s-]`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// Normalizer 負責名稱清理、同義詞標準化與分類
type Normalizer struct {
	tables        *lexicon.Tables
	leadingTokens map[string]struct{}
}

// NewNormalizer 創建 Normalizer
func NewNormalizer(tables *lexicon.Tables) *Normalizer {
	leading := make(map[string]struct{}, len(tables.LeadingTokens))
	for _, t := range tables.LeadingTokens {
		leading[t] = struct{}{}
	}
	return &Normalizer{
		tables:        tables,
		leadingTokens: leading,
	}
}

// CleanName 清理原始食材名稱：
// 去頭尾空白、轉小寫、剝除標點（連字號除外）、壓縮空白、剝除開頭的冠詞與連接詞。
func (n *Normalizer) CleanName(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = punctPattern.ReplaceAllString(s, " ")
	s = spacePattern.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	words := strings.Fields(s)
	for len(words) > 0 {
		if _, ok := n.leadingTokens[words[0]]; !ok {
			break
		}
		words = words[1:]
	}
	return strings.Join(words, " ")
}

// Standardize 以同義詞表做完全比對標準化；未命中時原樣回傳。
func (n *Normalizer) Standardize(name string) string {
	if std, ok := n.tables.Synonyms[strings.ToLower(strings.TrimSpace(name))]; ok {
		return std
	}
	return name
}

// Categorize 對（已標準化的）名稱做分類：
// 依表格順序逐一比對關鍵字子字串，先命中者勝；都未命中時回傳預設分類。
// 表格順序不可變動，否則同名多關鍵字的結果會不確定。
func (n *Normalizer) Categorize(name string) string {
	lower := strings.ToLower(name)
	for _, entry := range n.tables.Categories {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Name
			}
		}
	}
	return lexicon.DefaultCategory
}

// ValidateName 檢查清理後的名稱是否可作為食材候選：
// 長度需在 [2,30]，且不得包含烹飪動作、器具等排除詞彙。
func (n *Normalizer) ValidateName(name string) bool {
	length := utf8.RuneCountInString(name)
	if length < 2 || length > 30 {
		return false
	}
	for _, ex := range n.tables.Exclusions {
		if strings.Contains(name, ex) {
			return false
		}
	}
	return true
}
