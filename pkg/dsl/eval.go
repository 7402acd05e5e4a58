// Package dsl 提供过滤规则的表达式求值，使用 CEL (Common Expression Language) 实现。
// CEL 是 Google 开发的表达式语言，具有类型安全、高性能、线程安全等特性。
package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/mediarec/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvErr  error
	celEnvOnce sync.Once
)

func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("item", cel.DynType),
			cel.Variable("user", cel.DynType),
			cel.Variable("params", cel.DynType),
		)
	})
	return celEnv, celEnvErr
}

// Expr 是一条编译后的过滤规则表达式，可安全地被多个 goroutine 复用。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：item.features.distance > 0.9 / item.features.popularity < 0.1
//   - 标签：item.labels.recall_source.value == "recall.popular"
//   - 用户：user.engagement_score < 0.0
//   - 逻辑：item.features.popularity < 0.05 && user.interacted_count == 0.0
//
// 注意：不存在的 key 会导致求值错误，应使用 has(item.features.distance)
// 或 "distance" in item.features 先判断存在性。
type Expr struct {
	src string
	prg cel.Program
}

// Compile 编译表达式。编译一次、多次求值。
func Compile(src string) (*Expr, error) {
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(src)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %w", issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Expr{src: src, prg: prg}, nil
}

// Source 返回表达式原文（用于日志/错误提示）。
func (e *Expr) Source() string { return e.src }

// EvalBool 对单个 item 求值，返回布尔结果。
func (e *Expr) EvalBool(item *core.Item, rctx *core.RecommendContext) (bool, error) {
	out, _, err := e.prg.Eval(buildInput(item, rctx))
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据。
func buildInput(item *core.Item, rctx *core.RecommendContext) map[string]any {
	labels := make(map[string]any, len(item.Labels))
	for k, v := range item.Labels {
		labels[k] = map[string]any{
			"value":  v.Value,
			"source": v.Source,
		}
	}

	itemMap := map[string]any{
		"id":       item.ID,
		"score":    item.Score,
		"features": item.Features,
		"meta":     item.Meta,
		"labels":   labels,
	}

	userMap := map[string]any{
		"user_id":          "",
		"engagement_score": 0.0,
		"interacted_count": 0.0,
	}
	var params map[string]any
	if rctx != nil {
		userMap["user_id"] = rctx.UserID
		if rctx.User != nil {
			userMap["engagement_score"] = rctx.User.EngagementScore
			userMap["interacted_count"] = float64(len(rctx.User.InteractedItemIDs))
		}
		params = rctx.Params
	}
	if params == nil {
		params = map[string]any{}
	}

	return map[string]any{
		"item":   itemMap,
		"user":   userMap,
		"params": params,
	}
}
