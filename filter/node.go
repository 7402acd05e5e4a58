package filter

import (
	"context"

	"github.com/rushteam/mediarec/core"
	"github.com/rushteam/mediarec/pipeline"
	"github.com/rushteam/mediarec/pkg/utils"
)

// Node 是过滤 Node，可以组合多个过滤器。
// 任何一个过滤器返回 true，该物品就会被移除，且在保留链路上
// 打上 filtered 标签记录原因（调试/观测用）。
type Node struct {
	Filters []Filter
}

func (n *Node) Name() string        { return "filter.node" }
func (n *Node) Kind() pipeline.Kind { return pipeline.KindFilter }

func (n *Node) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if len(n.Filters) == 0 || len(items) == 0 {
		return items, nil
	}

	out := make([]*core.Item, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}

		remove := false
		for _, f := range n.Filters {
			ok, err := f.ShouldFilter(ctx, rctx, item)
			if err != nil {
				// 过滤器错误不中断流程，该过滤器按放行处理
				continue
			}
			if ok {
				remove = true
				item.PutLabel("filtered", utils.Label{Value: "true", Source: f.Name()})
				break
			}
		}
		if !remove {
			out = append(out, item)
		}
	}
	return out, nil
}
