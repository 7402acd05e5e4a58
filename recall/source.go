// Package recall 提供候选生成：个性化向量召回与热门兜底，
// 以及并发执行多个召回源的 Fanout。
package recall

import (
	"context"

	"github.com/rushteam/mediarec/core"
)

// Source 表示一个可复用的召回源（向量候选/热门/...）。
// 你可以把它理解为“可并发 fan-out 的策略单元”。
type Source interface {
	Name() string
	Recall(ctx context.Context, rctx *core.RecommendContext) ([]*core.Item, error)
}
