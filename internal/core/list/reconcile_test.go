package list

import (
	"testing"

	"shoplist-generator/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterAgainstInventoryExactMatch(t *testing.T) {
	t.Parallel()

	items := []common.ShoppingListItem{
		item("milk", "milk", "1", "gallon"),
		item("bread", "bread", "", ""),
	}
	inventory := []common.InventoryItem{{Name: "Milk", Quantity: 1}}

	result := FilterAgainstInventory(items, inventory)
	require.Len(t, result.FilteredItems, 1)
	assert.Equal(t, "bread", result.FilteredItems[0].Name)
	assert.Equal(t, 1, result.RemovedCount)
	assert.Equal(t, []string{"milk"}, result.RemovedItems)
}

func TestFilterAgainstInventoryBidirectionalSubstring(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		itemStd   string
		inventory string
		removed   bool
	}{
		{name: "inventory contains item", itemStd: "tomato", inventory: "roma tomatoes", removed: true},
		{name: "item contains inventory", itemStd: "roma tomato", inventory: "tomato", removed: true},
		{name: "no overlap", itemStd: "chicken", inventory: "beef", removed: false},
		// 子字串規則的已知代價：不同食材也會被視為持有
		{name: "onion swallows green onion", itemStd: "green onion", inventory: "onion", removed: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			items := []common.ShoppingListItem{item(tc.itemStd, tc.itemStd, "", "")}
			inventory := []common.InventoryItem{{Name: tc.inventory}}

			result := FilterAgainstInventory(items, inventory)
			if tc.removed {
				assert.Empty(t, result.FilteredItems)
				assert.Equal(t, 1, result.RemovedCount)
			} else {
				assert.Len(t, result.FilteredItems, 1)
				assert.Zero(t, result.RemovedCount)
			}
		})
	}
}

func TestFilterAgainstInventoryEmptyInventory(t *testing.T) {
	t.Parallel()

	items := []common.ShoppingListItem{
		item("milk", "milk", "", ""),
		item("eggs", "eggs", "12", ""),
	}

	result := FilterAgainstInventory(items, nil)
	assert.Equal(t, items, result.FilteredItems)
	assert.Zero(t, result.RemovedCount)
	assert.Empty(t, result.RemovedItems)
}

func TestFilterAgainstInventoryIgnoresBlankNames(t *testing.T) {
	t.Parallel()

	items := []common.ShoppingListItem{item("milk", "milk", "", "")}
	inventory := []common.InventoryItem{{Name: "   "}}

	result := FilterAgainstInventory(items, inventory)
	assert.Len(t, result.FilteredItems, 1)
	assert.Zero(t, result.RemovedCount)
}

func TestFilterAgainstInventoryRemovedItemsUseOriginalName(t *testing.T) {
	t.Parallel()

	items := []common.ShoppingListItem{item("roma tomatoes", "tomatoes", "", "")}
	inventory := []common.InventoryItem{{Name: "tomatoes"}}

	result := FilterAgainstInventory(items, inventory)
	assert.Equal(t, []string{"roma tomatoes"}, result.RemovedItems)
}
