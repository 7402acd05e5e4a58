package recall

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/mediarec/core"
	"github.com/rushteam/mediarec/pipeline"
	"github.com/rushteam/mediarec/pkg/utils"
)

// 合并策略。
const (
	// MergeFallback 按声明顺序取第一个非空召回源的结果（个性化→兜底的
	// 标准链路：候选为空才落到热门）。
	MergeFallback = "fallback"

	// MergeFirst 合并所有来源并按 ID 去重，保留先出现的。
	MergeFirst = "first"

	// MergeUnion 合并所有来源，不去重。
	MergeUnion = "union"
)

// Fanout 是一个 Recall Node：并发执行多个召回源，并按策略合并结果。
// 支持超时与并发上限。召回源的结果带上 recall_source 标签，方便 explain。
//
// 错误语义：单个召回源失败按空结果处理（其余源照常合并）；
// 所有源都失败时返回第一个错误。
type Fanout struct {
	Sources       []Source
	Timeout       time.Duration // 每个召回源的超时时间（0 不限）
	MaxConcurrent int           // 最大并发数（0 表示无限制）
	MergeStrategy string        // fallback / first / union，默认 fallback
}

func (n *Fanout) Name() string        { return "recall.fanout" }
func (n *Fanout) Kind() pipeline.Kind { return pipeline.KindRecall }

func (n *Fanout) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	if len(n.Sources) == 0 {
		return nil, nil
	}

	// 结果按声明顺序落槽，合并阶段不依赖并发完成顺序
	results := make([][]*core.Item, len(n.Sources))
	errs := make([]error, len(n.Sources))

	eg, egCtx := errgroup.WithContext(ctx)
	if n.MaxConcurrent > 0 {
		eg.SetLimit(n.MaxConcurrent)
	}

	for i, src := range n.Sources {
		i, src := i, src
		eg.Go(func() error {
			recallCtx := egCtx
			if n.Timeout > 0 {
				var cancel context.CancelFunc
				recallCtx, cancel = context.WithTimeout(egCtx, n.Timeout)
				defer cancel()
			}

			items, err := src.Recall(recallCtx, rctx)
			if err != nil {
				errs[i] = err
				return nil
			}

			for _, it := range items {
				it.PutLabel("recall_source", utils.Label{Value: src.Name(), Source: "recall"})
			}
			results[i] = items
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	allFailed := true
	for _, err := range errs {
		if err == nil {
			allFailed = false
			break
		}
	}
	if allFailed {
		return nil, errs[0]
	}

	switch n.MergeStrategy {
	case MergeFirst:
		return mergeFirst(results), nil
	case MergeUnion:
		return mergeUnion(results), nil
	default:
		return mergeFallback(results), nil
	}
}

// mergeFallback 按声明顺序返回第一个非空来源的结果。
func mergeFallback(results [][]*core.Item) []*core.Item {
	for _, items := range results {
		if len(items) > 0 {
			return items
		}
	}
	return nil
}

// mergeFirst 按声明顺序合并所有来源，按 ID 去重保留先出现的，
// 重复物品的标签合并到保留条目上。
func mergeFirst(results [][]*core.Item) []*core.Item {
	seen := make(map[string]*core.Item)
	var out []*core.Item
	for _, items := range results {
		for _, it := range items {
			if it == nil {
				continue
			}
			if old, ok := seen[it.ID]; ok {
				for k, v := range it.Labels {
					old.PutLabel(k, v)
				}
				continue
			}
			seen[it.ID] = it
			out = append(out, it)
		}
	}
	return out
}

// mergeUnion 合并所有结果，不去重（用于需要保留所有来源的场景）。
func mergeUnion(results [][]*core.Item) []*core.Item {
	var out []*core.Item
	for _, items := range results {
		out = append(out, items...)
	}
	return out
}
