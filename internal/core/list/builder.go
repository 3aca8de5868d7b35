package list

import (
	"context"
	"strings"
	"sync"
	"time"

	"shoplist-generator/internal/core/extract"
	"shoplist-generator/internal/core/lexicon"
	"shoplist-generator/internal/pkg/common"

	"go.uber.org/zap"
)

// stage 單次建構的管線階段
type stage string

const (
	stageCollecting  stage = "collecting"
	stageDeduping    stage = "deduping"
	stageReconciling stage = "reconciling"
	stageOrganizing  stage = "organizing"
	stageDone        stage = "done"
)

// Builder 購物清單建構器（編排器）。
// 每次呼叫各自獨立、不保留狀態，可安全併發使用；
// 唯一的外部副作用是擷取服務觸發的分類呼叫。
type Builder struct {
	extractor *extract.Service
	organizer *Organizer
	workers   int
}

// NewBuilder 創建 Builder；workers 控制來源文字擷取的併發上限
func NewBuilder(extractor *extract.Service, tables *lexicon.Tables, workers int) *Builder {
	if workers <= 0 {
		workers = 1
	}
	return &Builder{
		extractor: extractor,
		organizer: NewOrganizer(tables),
		workers:   workers,
	}
}

// Build 從 N 個來源文字與庫存快照建構購物清單。
// 失敗條件：沒有非空來源 → ErrNoSourceData；
// 全部來源都未擷取到食材 → ErrNoIngredientsExtracted。
func (b *Builder) Build(ctx context.Context, sources []common.SourceText, inventory []common.InventoryItem) (*common.GeneratedShoppingList, error) {
	current := stageCollecting

	// 只處理內容非空的來源
	usable := make([]common.SourceText, 0, len(sources))
	for _, src := range sources {
		if strings.TrimSpace(src.Text) != "" {
			usable = append(usable, src)
		}
	}
	if len(usable) == 0 {
		return nil, common.ErrNoSourceData
	}

	common.LogDebug("管線階段",
		zap.String("stage", string(current)),
		zap.Int("sources", len(usable)),
	)

	// 各來源的擷取彼此獨立，有界併發展開；
	// 以索引收集結果，溯源順序跟隨輸入順序。
	analyses := make([]*common.RecipeAnalysis, len(usable))
	sem := make(chan struct{}, b.workers)
	var wg sync.WaitGroup
	for i := range usable {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			analyses[i] = b.extractor.Extract(ctx, usable[i].Text)
		}(i)
	}
	wg.Wait()

	// 轉成購物項目並記錄溯源；未擷取到食材的來源整個跳過
	var allItems []common.ShoppingListItem
	var provenance []common.SourceProvenance
	var confidenceSum float64
	for i, analysis := range analyses {
		if analysis == nil || len(analysis.Ingredients) == 0 {
			continue
		}
		src := usable[i]
		sourceLabel := src.Title
		if sourceLabel == "" {
			sourceLabel = src.ID
		}
		for _, ing := range analysis.Ingredients {
			allItems = append(allItems, common.ShoppingListItem{
				ID:                  common.GenerateUUID(),
				ExtractedIngredient: ing,
				Checked:             false,
				StoreSection:        b.organizer.ResolveSection(ing.DedupKey()),
				RecipeSource:        sourceLabel,
			})
		}
		provenance = append(provenance, common.SourceProvenance{
			SourceID: src.ID,
			Title:    src.Title,
			Creator:  src.Creator,
			Analysis: analysis,
		})
		confidenceSum += analysis.Confidence
	}

	if len(allItems) == 0 {
		return nil, common.ErrNoIngredientsExtracted
	}

	current = stageDeduping
	common.LogDebug("管線階段", zap.String("stage", string(current)), zap.Int("items", len(allItems)))
	merged := Merge(allItems)

	current = stageReconciling
	common.LogDebug("管線階段", zap.String("stage", string(current)), zap.Int("items", len(merged)))
	reconciled := FilterAgainstInventory(merged, inventory)

	current = stageOrganizing
	common.LogDebug("管線階段", zap.String("stage", string(current)), zap.Int("items", len(reconciled.FilteredItems)))
	organized := b.organizer.Organize(reconciled.FilteredItems)

	result := &common.GeneratedShoppingList{
		ID:                   common.GenerateUUID(),
		Items:                reconciled.FilteredItems,
		OrganizedItems:       organized,
		Sources:              provenance,
		TotalItems:           len(reconciled.FilteredItems),
		Confidence:           common.ClampConfidence(confidenceSum / float64(len(provenance))),
		TotalExtracted:       len(merged),
		RemovedFromInventory: reconciled.RemovedCount,
		RemovedItems:         reconciled.RemovedItems,
		CreatedAt:            time.Now().UTC(),
	}

	current = stageDone
	common.LogInfo("購物清單建構完成",
		zap.String("stage", string(current)),
		zap.String("list_id", result.ID),
		zap.Int("total_items", result.TotalItems),
		zap.Int("removed_from_inventory", result.RemovedFromInventory),
		zap.Float64("confidence", result.Confidence),
	)

	return result, nil
}
