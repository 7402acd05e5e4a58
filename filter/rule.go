package filter

import (
	"context"

	"github.com/rushteam/mediarec/core"
	"github.com/rushteam/mediarec/pkg/dsl"
)

// Rule 是配置驱动的规则过滤器：表达式求值为 true 的物品被过滤掉。
// 用于运营策略（例如屏蔽热度过低的长尾物品），无需改代码发版。
//
// 示例表达式：
//   - `"popularity" in item.features && item.features.popularity < 0.05`
//   - `item.labels.recall_source.value == "recall.candidates" && item.features.distance > 1.5`
type Rule struct {
	expr *dsl.Expr
}

// NewRule 编译表达式并创建规则过滤器，表达式非法时返回错误。
func NewRule(expr string) (*Rule, error) {
	compiled, err := dsl.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &Rule{expr: compiled}, nil
}

func (f *Rule) Name() string { return "filter.rule(" + f.expr.Source() + ")" }

func (f *Rule) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if item == nil {
		return false, nil
	}
	return f.expr.EvalBool(item, rctx)
}
