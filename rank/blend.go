// Package rank 提供候选打分与排序。
package rank

import (
	"context"
	"sort"

	"github.com/rushteam/mediarec/core"
	"github.com/rushteam/mediarec/pipeline"
	"github.com/rushteam/mediarec/recall"
)

// 混合打分的默认权重。固定常量：目录规模变化只调候选池大小，不调权重。
const (
	DefaultDistanceWeight   = 0.7
	DefaultPopularityWeight = 0.3
)

// Blend 是混合打分节点：对携带距离特征的候选计算
//
//	score = distanceWeight*distance + popularityWeight*(1 - popularity)
//
// 并按 score 升序排序（越小越好：口味越近、热度越高）。
//
// 不携带距离特征的物品（热门兜底结果）不打分，保持原有相对顺序，
// 排在已打分物品之后。score 相同按 ID 升序，保证分页的确定性。
type Blend struct {
	// DistanceWeight/PopularityWeight 为 0 时取默认值 0.7/0.3。
	DistanceWeight   float64
	PopularityWeight float64
}

func (n *Blend) Name() string        { return "rank.blend" }
func (n *Blend) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *Blend) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if len(items) <= 1 {
		return items, nil
	}

	dw := n.DistanceWeight
	pw := n.PopularityWeight
	if dw == 0 && pw == 0 {
		dw = DefaultDistanceWeight
		pw = DefaultPopularityWeight
	}

	scored := make(map[string]bool, len(items))
	for _, it := range items {
		dist, ok := it.Features[recall.FeatureDistance]
		if !ok {
			continue
		}
		it.Score = dw*dist + pw*(1-it.Features[recall.FeaturePopularity])
		scored[it.ID] = true
	}

	sort.SliceStable(items, func(i, j int) bool {
		si, sj := scored[items[i].ID], scored[items[j].ID]
		switch {
		case si && sj:
			if items[i].Score != items[j].Score {
				return items[i].Score < items[j].Score
			}
			return items[i].ID < items[j].ID
		case si != sj:
			return si
		default:
			return false
		}
	})
	return items, nil
}
