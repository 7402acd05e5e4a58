package recall

import (
	"context"

	"github.com/rushteam/mediarec/core"
	"github.com/rushteam/mediarec/pipeline"
	"github.com/rushteam/mediarec/pkg/utils"
)

// LabelFallback 标记物品来自热门兜底路径。过滤阶段据此豁免
// 已交互排除（兜底契约：与热门榜逐条一致）。
const LabelFallback = "fallback"

// Popular 是热门兜底召回源：按热度分降序返回物品。
// 用于无个性化可用（新用户、全部看完、目录冷启动）时的兜底路径。
//
// 结果保持热度序，不参与距离打分；混合打分节点对无距离特征的物品
// 保持原有顺序。Popular 同时实现了 Source 和 Node 接口。
type Popular struct {
	Store core.FeatureStore
}

func (r *Popular) Name() string        { return "recall.popular" }
func (r *Popular) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall。
func (r *Popular) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return r.Recall(ctx, rctx)
}

// Recall 实现 Source 接口。检索窗口取 limit+offset，从 0 起，
// 分页窗口由重排阶段统一裁剪。
func (r *Popular) Recall(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Store == nil || rctx == nil || rctxWindow(rctx) <= 0 {
		return nil, nil
	}

	ids, err := r.Store.FindMostPopular(ctx, rctxWindow(rctx), 0)
	if err != nil {
		return nil, err
	}

	out := make([]*core.Item, 0, len(ids))
	for _, id := range ids {
		it := core.NewItem(id)
		it.PutLabel(LabelFallback, utils.Label{Value: "true", Source: r.Name()})
		out = append(out, it)
	}
	return out, nil
}

func rctxWindow(rctx *core.RecommendContext) int {
	return rctx.Limit + rctx.Offset
}
