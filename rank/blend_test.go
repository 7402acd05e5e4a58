package rank

import (
	"context"
	"math"
	"testing"

	"github.com/rushteam/mediarec/core"
	"github.com/rushteam/mediarec/recall"
)

func candidate(id string, distance, popularity float64) *core.Item {
	it := core.NewItem(id)
	it.Features[recall.FeatureDistance] = distance
	it.Features[recall.FeaturePopularity] = popularity
	return it
}

func TestBlend_Process(t *testing.T) {
	tests := []struct {
		name  string
		node  *Blend
		items []*core.Item
		want  []string
	}{
		{
			name: "closer item wins at equal popularity",
			node: &Blend{},
			items: []*core.Item{
				candidate("far", 0.9, 0.5),
				candidate("near", 0.1, 0.5),
			},
			want: []string{"near", "far"},
		},
		{
			name: "popularity breaks a distance gap",
			node: &Blend{},
			items: []*core.Item{
				// 0.7*0.50 + 0.3*(1-0.0) = 0.65
				candidate("obscure", 0.50, 0.0),
				// 0.7*0.55 + 0.3*(1-0.9) = 0.415
				candidate("hot", 0.55, 0.9),
			},
			want: []string{"hot", "obscure"},
		},
		{
			name: "equal scores break by id",
			node: &Blend{},
			items: []*core.Item{
				candidate("b", 0.4, 0.5),
				candidate("a", 0.4, 0.5),
			},
			want: []string{"a", "b"},
		},
		{
			name: "unscored items keep order after scored ones",
			node: &Blend{},
			items: []*core.Item{
				core.NewItem("pop-1"),
				candidate("cand", 0.2, 0.5),
				core.NewItem("pop-2"),
			},
			want: []string{"cand", "pop-1", "pop-2"},
		},
		{
			name: "custom weights flip the outcome",
			node: &Blend{DistanceWeight: 0.1, PopularityWeight: 0.9},
			items: []*core.Item{
				// 0.1*0.50 + 0.9*(1-0.0) = 0.95
				candidate("obscure", 0.50, 0.0),
				// 0.1*0.90 + 0.9*(1-0.9) = 0.18
				candidate("hot", 0.90, 0.9),
			},
			want: []string{"hot", "obscure"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.node.Process(context.Background(), &core.RecommendContext{}, tt.items)
			if err != nil {
				t.Fatalf("Process: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d items, want %d", len(got), len(tt.want))
			}
			for i, want := range tt.want {
				if got[i].ID != want {
					t.Errorf("got[%d] = %s, want %s", i, got[i].ID, want)
				}
			}
		})
	}
}

func TestBlend_ScoreFormula(t *testing.T) {
	node := &Blend{}
	items := []*core.Item{
		candidate("a", 0.25, 0.6),
		candidate("b", 0.10, 0.1),
	}
	if _, err := node.Process(context.Background(), &core.RecommendContext{}, items); err != nil {
		t.Fatalf("Process: %v", err)
	}

	byID := map[string]float64{}
	for _, it := range items {
		byID[it.ID] = it.Score
	}
	// 0.7*0.25 + 0.3*(1-0.6) = 0.295
	if math.Abs(byID["a"]-0.295) > 1e-9 {
		t.Errorf("score(a) = %v, want 0.295", byID["a"])
	}
	// 0.7*0.10 + 0.3*(1-0.1) = 0.34
	if math.Abs(byID["b"]-0.34) > 1e-9 {
		t.Errorf("score(b) = %v, want 0.34", byID["b"])
	}
}
