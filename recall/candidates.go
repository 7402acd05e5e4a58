package recall

import (
	"context"

	"github.com/rushteam/mediarec/core"
	"github.com/rushteam/mediarec/pipeline"
)

// 召回结果在 Item.Features 上携带的键，供混合打分节点消费。
const (
	FeatureDistance   = "distance"   // 到画像向量的余弦距离
	FeaturePopularity = "popularity" // 归一化热度分 [0,1]
)

// Candidates 是个性化候选召回源：按画像向量到物品向量的距离检索候选，
// 排除用户已交互过的物品。
//
//   - 画像缺失（rctx.User == nil）时返回空结果，不报错——
//     “无个性化可用”由后续兜底源接管
//   - 返回完整候选池：混合打分会在池内重排（距离近的物品可能因热度
//     排到后面），池内任何提前截断都会让分页窗口随 offset 漂移。
//     分页窗口只在重排阶段裁剪一次
//   - 预排序候选池大小由 Pool 控制，0 取 core.DefaultCandidatePool
//
// Candidates 同时实现了 Source 和 Node 接口，可以直接在 Pipeline 中使用。
type Candidates struct {
	Store core.FeatureStore
	Pool  int
}

func (r *Candidates) Name() string        { return "recall.candidates" }
func (r *Candidates) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall。
func (r *Candidates) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return r.Recall(ctx, rctx)
}

// Recall 实现 Source 接口。
func (r *Candidates) Recall(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Store == nil || rctx == nil || rctx.User == nil {
		return nil, nil
	}

	cands, err := r.Store.FindCandidates(ctx, rctx.User.Vector, rctx.User.InteractedItemIDs, r.Pool, 0)
	if err != nil {
		return nil, err
	}

	out := make([]*core.Item, 0, len(cands))
	for _, c := range cands {
		it := core.NewItem(c.ItemID)
		it.Features[FeatureDistance] = c.Distance
		it.Features[FeaturePopularity] = c.PopularityScore
		out = append(out, it)
	}
	return out, nil
}
