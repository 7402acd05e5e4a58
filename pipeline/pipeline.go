package pipeline

import (
	"context"
	"fmt"

	"github.com/rushteam/mediarec/core"
)

// Pipeline 是 mediarec 的核心抽象：把推荐逻辑拆成可组合的 Node 链。
// 候选排序链路的标准形态是 召回(含兜底) → 过滤 → 混合打分 → 分页。
type Pipeline struct {
	Nodes []Node
}

// Run 依次执行所有 Node。任一 Node 出错即中断，错误信息携带 Node 名称。
func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	cur := items
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, rctx, cur)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", node.Name(), err)
		}
		cur = next
	}
	return cur, nil
}
