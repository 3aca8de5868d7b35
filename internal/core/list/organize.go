package list

import (
	"sort"
	"strings"

	"shoplist-generator/internal/core/lexicon"
	"shoplist-generator/internal/pkg/common"
)

// Organizer 依賣場走道順序把項目分組
type Organizer struct {
	tables *lexicon.Tables
}

// NewOrganizer 創建 Organizer
func NewOrganizer(tables *lexicon.Tables) *Organizer {
	return &Organizer{tables: tables}
}

// ResolveSection 以區域關鍵字表解析項目所屬的賣場區域；
// 區域表與分類表相似但各自獨立，都未命中時回傳預設區域。
func (o *Organizer) ResolveSection(name string) string {
	lower := strings.ToLower(name)
	for _, entry := range o.tables.Sections {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Name
			}
		}
	}
	return lexicon.DefaultSection
}

// Organize 依固定走道順序分組。
// 區域內以名稱做字典序排序，沒有項目的區域整個省略。
func (o *Organizer) Organize(items []common.ShoppingListItem) []common.SectionGroup {
	known := make(map[string]struct{}, len(o.tables.Sections))
	for _, entry := range o.tables.Sections {
		known[entry.Name] = struct{}{}
	}

	bySection := make(map[string][]common.ShoppingListItem, len(o.tables.Sections))
	for _, item := range items {
		section := item.StoreSection
		if section == "" {
			section = o.ResolveSection(item.DedupKey())
		}
		if _, ok := known[section]; !ok {
			section = lexicon.DefaultSection
		}
		bySection[section] = append(bySection[section], item)
	}

	groups := make([]common.SectionGroup, 0, len(bySection))
	for _, entry := range o.tables.Sections {
		sectionItems, ok := bySection[entry.Name]
		if !ok {
			continue
		}
		sort.Slice(sectionItems, func(i, j int) bool {
			return sectionItems[i].Name < sectionItems[j].Name
		})
		groups = append(groups, common.SectionGroup{
			Section: entry.Name,
			Emoji:   entry.Emoji,
			Items:   sectionItems,
		})
	}

	return groups
}

// SectionEmoji 取得區域的顯示符號
func (o *Organizer) SectionEmoji(section string) string {
	for _, entry := range o.tables.Sections {
		if entry.Name == section {
			return entry.Emoji
		}
	}
	return ""
}
