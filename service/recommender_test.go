package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rushteam/mediarec/core"
	"github.com/rushteam/mediarec/store"
)

// fakeCatalog 记录请求并返回固定结果。
type fakeCatalog struct {
	summaries []core.ItemSummary
	err       error
	gotIDs    []string
	calls     int
}

func (c *fakeCatalog) FetchItemsBatch(_ context.Context, itemIDs []string) ([]core.ItemSummary, error) {
	c.calls++
	c.gotIDs = append([]string(nil), itemIDs...)
	if c.err != nil {
		return nil, c.err
	}
	return c.summaries, nil
}

func TestRecommender_GetRecommendations(t *testing.T) {
	ctx := context.Background()
	features := store.NewMemoryFeatureStore()
	profiles := store.NewMemoryProfileStore()
	seedCatalog(t, features)

	catalog := &fakeCatalog{
		// 目录乱序返回，且缺失一条
		summaries: []core.ItemSummary{
			{ItemID: "scifi-1", Title: "Scifi One"},
			{ItemID: "romance-1", Title: "Romance One"},
		},
	}
	rec := NewRecommender(NewRanker(features, profiles), catalog)

	got, err := rec.GetRecommendations(ctx, "stranger", 3, 0)
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}

	// 冷启动兜底榜前三：romance-1, horror-2, scifi-1
	wantIDs := []string{"romance-1", "horror-2", "scifi-1"}
	if len(catalog.gotIDs) != len(wantIDs) {
		t.Fatalf("catalog asked for %v, want %v", catalog.gotIDs, wantIDs)
	}
	for i := range wantIDs {
		if catalog.gotIDs[i] != wantIDs[i] {
			t.Fatalf("catalog asked for %v, want %v", catalog.gotIDs, wantIDs)
		}
	}
	if catalog.calls != 1 {
		t.Errorf("catalog calls = %d, want a single batch", catalog.calls)
	}

	// 排序顺序优先于目录返回顺序，缺失的 horror-2 被跳过
	if len(got) != 2 || got[0].ItemID != "romance-1" || got[1].ItemID != "scifi-1" {
		t.Fatalf("got %+v, want [romance-1 scifi-1]", got)
	}
}

func TestRecommender_EmptyRankSkipsCatalog(t *testing.T) {
	ctx := context.Background()
	catalog := &fakeCatalog{}
	rec := NewRecommender(NewRanker(store.NewMemoryFeatureStore(), store.NewMemoryProfileStore()), catalog)

	got, err := rec.GetRecommendations(ctx, "anyone", 10, 0)
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("got %v, want empty non-nil list", got)
	}
	if catalog.calls != 0 {
		t.Errorf("catalog called %d times on empty rank, want 0", catalog.calls)
	}
}

func TestRecommender_CatalogFailureFailsRequest(t *testing.T) {
	ctx := context.Background()
	features := store.NewMemoryFeatureStore()
	seedCatalog(t, features)

	catalog := &fakeCatalog{err: errors.New("catalog down")}
	rec := NewRecommender(NewRanker(features, store.NewMemoryProfileStore()), catalog)

	if _, err := rec.GetRecommendations(ctx, "stranger", 3, 0); err == nil {
		t.Fatal("catalog failure must fail the whole request")
	}
}
