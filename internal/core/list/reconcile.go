package list

import (
	"strings"

	"shoplist-generator/internal/pkg/common"
)

// ReconcileResult 庫存核對結果。
// RemovedItems 與 RemovedCount 是必要輸出，供使用者確認哪些項目被濾掉。
type ReconcileResult struct {
	FilteredItems []common.ShoppingListItem
	RemovedCount  int
	RemovedItems  []string
}

// FilterAgainstInventory 移除家中已有的項目。
// 比對規則採雙向子字串包含：庫存名稱包含購物項目的標準化名稱，
// 或購物項目名稱包含庫存名稱，皆視為已持有。
// 這是刻意為之（"tomato" 對上 "tomatoes"、"roma tomato" 對上 "tomato"），
// 已知代價是 "onion" 會誤殺 "green onion" 這類不同食材。
func FilterAgainstInventory(items []common.ShoppingListItem, inventory []common.InventoryItem) ReconcileResult {
	ownedNames := make([]string, 0, len(inventory))
	for _, inv := range inventory {
		name := strings.ToLower(strings.TrimSpace(inv.Name))
		if name != "" {
			ownedNames = append(ownedNames, name)
		}
	}

	result := ReconcileResult{
		FilteredItems: make([]common.ShoppingListItem, 0, len(items)),
		RemovedItems:  []string{},
	}

	for _, item := range items {
		key := item.DedupKey()
		owned := false
		for _, inv := range ownedNames {
			if strings.Contains(inv, key) || strings.Contains(key, inv) {
				owned = true
				break
			}
		}
		if owned {
			result.RemovedCount++
			result.RemovedItems = append(result.RemovedItems, item.Name)
			continue
		}
		result.FilteredItems = append(result.FilteredItems, item)
	}

	return result
}
