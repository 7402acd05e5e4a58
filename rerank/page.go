// Package rerank 提供排序结果上的重排/截断。
package rerank

import (
	"context"

	"github.com/rushteam/mediarec/core"
	"github.com/rushteam/mediarec/pipeline"
)

// Page 是分页截断节点：在排序后的列表上取 [offset, offset+limit) 窗口。
// 召回阶段统一按 limit+offset 检索，分页窗口只在这里裁剪一次，
// 避免各阶段重复做偏移。
//
// Limit/Offset 默认取请求上下文（rctx）的值；显式设置字段可覆盖
// （配置驱动的固定窗口场景）。limit <= 0 表示不限制条数。
type Page struct {
	Limit  int
	Offset int
}

func (n *Page) Name() string        { return "rerank.page" }
func (n *Page) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *Page) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	limit, offset := n.Limit, n.Offset
	if limit == 0 && offset == 0 && rctx != nil {
		limit, offset = rctx.Limit, rctx.Offset
	}

	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil, nil
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
