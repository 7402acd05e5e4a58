package filter

import (
	"context"

	"github.com/rushteam/mediarec/core"
	"github.com/rushteam/mediarec/recall"
)

// Interacted 过滤用户已交互过的物品。
//
// 存储层的候选检索已经带排除集，这里是链路上的防御性复查：
// 召回与画像更新并发时可能读到略旧的排除集。对个性化结果的
// 不变量是——返回结果绝不包含已交互物品。
//
// 热门兜底结果不做此过滤：兜底路径的契约是与热门榜逐条一致
// （“看完了全部目录”的用户仍应拿到热门榜而不是空列表）。
type Interacted struct{}

func (f *Interacted) Name() string { return "filter.interacted" }

func (f *Interacted) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if item == nil || rctx == nil {
		return false, nil
	}
	if lbl, ok := item.Labels[recall.LabelFallback]; ok && lbl.Value == "true" {
		return false, nil
	}
	return rctx.Interacted(item.ID), nil
}
