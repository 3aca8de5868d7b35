package list

import (
	"testing"

	"shoplist-generator/internal/core/lexicon"
	"shoplist-generator/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectioned(name, std, section string) common.ShoppingListItem {
	it := item(name, std, "", "")
	it.StoreSection = section
	return it
}

func TestResolveSection(t *testing.T) {
	t.Parallel()
	o := NewOrganizer(lexicon.Default())

	tests := []struct {
		name string
		want string
	}{
		{name: "apple", want: "Produce"},
		{name: "chicken", want: "Meat & Seafood"},
		{name: "milk", want: "Dairy"},
		{name: "bread", want: "Bakery"},
		{name: "black beans", want: "Canned Goods"},
		{name: "flour", want: "Pantry"},
		{name: "orange juice", want: "Produce"}, // orange 先於 juice 命中
		{name: "mystery item", want: "Other"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, o.ResolveSection(tc.name))
		})
	}
}

func TestOrganizeGroupsInAisleOrder(t *testing.T) {
	t.Parallel()
	o := NewOrganizer(lexicon.Default())

	items := []common.ShoppingListItem{
		sectioned("bread", "bread", "Bakery"),
		sectioned("apple", "apple", "Produce"),
		sectioned("flour", "flour", "Pantry"),
	}

	groups := o.Organize(items)
	require.Len(t, groups, 3)
	assert.Equal(t, "Produce", groups[0].Section)
	assert.Equal(t, "Bakery", groups[1].Section)
	assert.Equal(t, "Pantry", groups[2].Section)

	// 沒有項目的區域不出現
	for _, g := range groups {
		assert.NotEmpty(t, g.Items)
		assert.NotEqual(t, "Other", g.Section)
	}
}

func TestOrganizeSortsWithinSection(t *testing.T) {
	t.Parallel()
	o := NewOrganizer(lexicon.Default())

	items := []common.ShoppingListItem{
		sectioned("zucchini", "zucchini", "Produce"),
		sectioned("apple", "apple", "Produce"),
		sectioned("mango", "mango", "Produce"),
	}

	groups := o.Organize(items)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Items, 3)
	assert.Equal(t, "apple", groups[0].Items[0].Name)
	assert.Equal(t, "mango", groups[0].Items[1].Name)
	assert.Equal(t, "zucchini", groups[0].Items[2].Name)
}

func TestOrganizeResolvesMissingSection(t *testing.T) {
	t.Parallel()
	o := NewOrganizer(lexicon.Default())

	groups := o.Organize([]common.ShoppingListItem{item("salmon", "salmon", "", "")})
	require.Len(t, groups, 1)
	assert.Equal(t, "Meat & Seafood", groups[0].Section)
}

func TestOrganizeMapsUnknownSectionToOther(t *testing.T) {
	t.Parallel()
	o := NewOrganizer(lexicon.Default())

	groups := o.Organize([]common.ShoppingListItem{sectioned("gadget", "gadget", "Hardware")})
	require.Len(t, groups, 1)
	assert.Equal(t, "Other", groups[0].Section)
	require.Len(t, groups[0].Items, 1)
}

func TestOrganizeCoversEveryItem(t *testing.T) {
	t.Parallel()
	o := NewOrganizer(lexicon.Default())

	items := []common.ShoppingListItem{
		sectioned("apple", "apple", "Produce"),
		sectioned("widget", "widget", ""),
		sectioned("milk", "milk", "Dairy"),
	}

	groups := o.Organize(items)
	total := 0
	for _, g := range groups {
		total += len(g.Items)
	}
	assert.Equal(t, len(items), total)
}

func TestSectionEmoji(t *testing.T) {
	t.Parallel()
	o := NewOrganizer(lexicon.Default())

	assert.Equal(t, "🥬", o.SectionEmoji("Produce"))
	assert.Equal(t, "🛒", o.SectionEmoji("Other"))
	assert.Empty(t, o.SectionEmoji("Nonexistent"))
}
