package list

import (
	"shoplist-generator/internal/pkg/common"
)

// Merge 跨來源合併購物項目為唯一集合。
// 鍵為標準化名稱（大小寫不敏感），沒有標準化名稱時退用小寫原名。
// 每個鍵保留先到的項目，除非後到者帶有先到者缺少的數量資訊；
// 這是「帶更多資訊的後寫者勝」，不是任意覆寫。
// 輸出順序就是各鍵首次出現的順序，重複執行結果不變。
func Merge(items []common.ShoppingListItem) []common.ShoppingListItem {
	merged := make([]common.ShoppingListItem, 0, len(items))
	index := make(map[string]int, len(items))

	for _, item := range items {
		key := item.DedupKey()
		if pos, exists := index[key]; exists {
			if !merged[pos].HasQuantity() && item.HasQuantity() {
				merged[pos] = item
			}
			continue
		}
		index[key] = len(merged)
		merged = append(merged, item)
	}

	return merged
}
