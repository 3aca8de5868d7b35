package list

import (
	"testing"

	"shoplist-generator/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(name, std, quantity, unit string) common.ShoppingListItem {
	return common.ShoppingListItem{
		ID: common.GenerateUUID(),
		ExtractedIngredient: common.ExtractedIngredient{
			Name:             name,
			StandardizedName: std,
			Quantity:         quantity,
			Unit:             unit,
		},
	}
}

func TestMergeKeepsFirstSeen(t *testing.T) {
	t.Parallel()

	first := item("tomatoes", "tomatoes", "2", "")
	second := item("roma tomatoes", "tomatoes", "4", "")

	merged := Merge([]common.ShoppingListItem{first, second})
	require.Len(t, merged, 1)
	assert.Equal(t, "tomatoes", merged[0].Name)
	assert.Equal(t, "2", merged[0].Quantity)
}

func TestMergeQuantityUpgrade(t *testing.T) {
	t.Parallel()

	bare := item("garlic", "garlic", "", "")
	quantified := item("garlic", "garlic", "3", "cloves")

	merged := Merge([]common.ShoppingListItem{bare, quantified})
	require.Len(t, merged, 1)
	assert.Equal(t, "3", merged[0].Quantity)
	assert.Equal(t, "cloves", merged[0].Unit)
}

func TestMergeKeyFallsBackToName(t *testing.T) {
	t.Parallel()

	// 沒有標準化名稱時以小寫原名為鍵
	a := item("Feta", "", "", "")
	b := item("feta", "", "1", "block")

	merged := Merge([]common.ShoppingListItem{a, b})
	require.Len(t, merged, 1)
	assert.Equal(t, "1", merged[0].Quantity)
}

func TestMergePreservesFirstSeenOrder(t *testing.T) {
	t.Parallel()

	items := []common.ShoppingListItem{
		item("flour", "flour", "2", "cups"),
		item("sugar", "sugar", "1", "cup"),
		item("flour", "flour", "5", "cups"),
		item("eggs", "eggs", "3", ""),
	}

	merged := Merge(items)
	require.Len(t, merged, 3)
	assert.Equal(t, "flour", merged[0].StandardizedName)
	assert.Equal(t, "sugar", merged[1].StandardizedName)
	assert.Equal(t, "eggs", merged[2].StandardizedName)
}

func TestMergeIdempotent(t *testing.T) {
	t.Parallel()

	items := []common.ShoppingListItem{
		item("garlic", "garlic", "", ""),
		item("garlic", "garlic", "3", "cloves"),
		item("basil", "basil", "", ""),
	}

	once := Merge(items)
	twice := Merge(once)
	assert.Equal(t, once, twice)
}

func TestMergeEmptyInput(t *testing.T) {
	t.Parallel()

	merged := Merge(nil)
	assert.NotNil(t, merged)
	assert.Empty(t, merged)
}
