package list

import (
	"context"
	"os"
	"sort"
	"testing"

	"shoplist-generator/internal/core/extract"
	"shoplist-generator/internal/core/lexicon"
	"shoplist-generator/internal/infrastructure/config"
	"shoplist-generator/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func newTestBuilder(workers int) *Builder {
	tables := lexicon.Default()
	svc := extract.NewService(&config.Config{}, tables, nil, nil)
	return NewBuilder(svc, tables, workers)
}

func TestBuildFromSingleSource(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(2)

	sources := []common.SourceText{
		{ID: "post-1", Title: "Weeknight Chicken", Creator: "chef", Text: "2 cups flour, 1 lb chicken breast, salt to taste"},
	}

	result, err := b.Build(context.Background(), sources, nil)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, len(result.Items), result.TotalItems)
	assert.GreaterOrEqual(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 1.0)
	assert.False(t, result.CreatedAt.IsZero())

	stds := make([]string, 0, len(result.Items))
	for _, it := range result.Items {
		stds = append(stds, it.StandardizedName)
		assert.NotEmpty(t, it.ID)
		assert.False(t, it.Checked)
		assert.Equal(t, "Weeknight Chicken", it.RecipeSource)
		assert.NotEmpty(t, it.StoreSection)
	}
	assert.Contains(t, stds, "flour")
	assert.Contains(t, stds, "chicken")
	assert.Contains(t, stds, "salt")

	require.Len(t, result.Sources, 1)
	assert.Equal(t, "post-1", result.Sources[0].SourceID)
	assert.Equal(t, "chef", result.Sources[0].Creator)
	require.NotNil(t, result.Sources[0].Analysis)
}

func TestBuildDeduplicatesAcrossSources(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(4)

	sources := []common.SourceText{
		{ID: "a", Text: "add garlic to the sauce"},
		{ID: "b", Text: "3 cloves garlic"},
	}

	result, err := b.Build(context.Background(), sources, nil)
	require.NoError(t, err)

	garlicCount := 0
	for _, it := range result.Items {
		if it.StandardizedName == "garlic" {
			garlicCount++
			assert.Equal(t, "3", it.Quantity)
		}
	}
	assert.Equal(t, 1, garlicCount)
	require.Len(t, result.Sources, 2)
}

func TestBuildReconcilesInventory(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(2)

	sources := []common.SourceText{
		{ID: "a", Text: "milk, bread, eggs"},
	}
	inventory := []common.InventoryItem{{Name: "milk", Quantity: 1}}

	result, err := b.Build(context.Background(), sources, inventory)
	require.NoError(t, err)

	for _, it := range result.Items {
		assert.NotEqual(t, "milk", it.StandardizedName)
	}
	assert.Equal(t, 1, result.RemovedFromInventory)
	assert.Contains(t, result.RemovedItems, "milk")
	assert.Equal(t, result.TotalExtracted, result.TotalItems+result.RemovedFromInventory)
}

func TestBuildOrganizedItemsMatchFlatItems(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(2)

	sources := []common.SourceText{
		{ID: "a", Text: "apples, bread, chicken breast, rice"},
	}

	result, err := b.Build(context.Background(), sources, nil)
	require.NoError(t, err)

	var organizedIDs []string
	for _, g := range result.OrganizedItems {
		assert.NotEmpty(t, g.Items)
		for _, it := range g.Items {
			organizedIDs = append(organizedIDs, it.ID)
		}
	}
	flatIDs := make([]string, 0, len(result.Items))
	for _, it := range result.Items {
		flatIDs = append(flatIDs, it.ID)
	}

	sort.Strings(organizedIDs)
	sort.Strings(flatIDs)
	assert.Equal(t, flatIDs, organizedIDs)
}

func TestBuildNoSourceData(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(2)

	tests := []struct {
		name    string
		sources []common.SourceText
	}{
		{name: "empty slice", sources: []common.SourceText{}},
		{name: "nil slice", sources: nil},
		{name: "whitespace only", sources: []common.SourceText{{ID: "a", Text: "   \n  "}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result, err := b.Build(context.Background(), tc.sources, nil)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, common.ErrNoSourceData)
		})
	}
}

func TestBuildNoIngredientsExtracted(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(2)

	sources := []common.SourceText{
		{ID: "a", Text: "heat the pan, serve hot"},
		{ID: "b", Text: "preheat the oven"},
	}

	result, err := b.Build(context.Background(), sources, nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, common.ErrNoIngredientsExtracted)
}

func TestBuildSkipsEmptySourcesButKeepsOthers(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(2)

	sources := []common.SourceText{
		{ID: "empty", Text: "  "},
		{ID: "real", Title: "Salad", Text: "tomatoes, cucumber, feta"},
	}

	result, err := b.Build(context.Background(), sources, nil)
	require.NoError(t, err)
	require.Len(t, result.Sources, 1)
	assert.Equal(t, "real", result.Sources[0].SourceID)
}

func TestBuildSourceLabelFallsBackToID(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(2)

	sources := []common.SourceText{
		{ID: "post-9", Text: "2 cups flour"},
	}

	result, err := b.Build(context.Background(), sources, nil)
	require.NoError(t, err)
	require.NotEmpty(t, result.Items)
	assert.Equal(t, "post-9", result.Items[0].RecipeSource)
}

func TestBuildManySourcesBoundedWorkers(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(3)

	texts := []string{
		"2 cups flour", "1 cup sugar", "2 tbsp butter", "1 lb chicken breast",
		"3 cloves garlic", "1 kg beef", "2 tsp vanilla", "2 cups rice",
	}
	sources := make([]common.SourceText, len(texts))
	for i, text := range texts {
		sources[i] = common.SourceText{ID: common.GenerateUUID(), Text: text}
	}

	result, err := b.Build(context.Background(), sources, nil)
	require.NoError(t, err)
	assert.Len(t, result.Sources, len(sources))
	assert.NotEmpty(t, result.Items)
	assert.GreaterOrEqual(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 1.0)
}
