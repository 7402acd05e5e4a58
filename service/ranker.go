// Package service 提供推荐服务的组装层：候选排序器与对外门面。
package service

import (
	"context"

	"github.com/rushteam/mediarec/core"
	"github.com/rushteam/mediarec/filter"
	"github.com/rushteam/mediarec/pipeline"
	"github.com/rushteam/mediarec/rank"
	"github.com/rushteam/mediarec/recall"
	"github.com/rushteam/mediarec/rerank"
)

// Ranker 是候选排序器：给定用户与分页窗口，产出有序的推荐物品 ID 列表。
//
// 标准链路：
//
//	召回 fanout（个性化候选 → 热门兜底） → 过滤 → 混合打分 → 分页
//
// 排序是纯读路径，不加锁，允许与画像更新并发——排序用到的画像
// 可以比最新状态旧几毫秒（最终一致）。
type Ranker struct {
	Profiles core.ProfileStore
	Pipeline *pipeline.Pipeline
}

// NewRanker 按标准链路组装排序器。
func NewRanker(features core.FeatureStore, profiles core.ProfileStore) *Ranker {
	return &Ranker{
		Profiles: profiles,
		Pipeline: &pipeline.Pipeline{
			Nodes: []pipeline.Node{
				&recall.Fanout{
					Sources: []recall.Source{
						&recall.Candidates{Store: features},
						&recall.Popular{Store: features},
					},
					MergeStrategy: recall.MergeFallback,
				},
				&filter.Node{Filters: []filter.Filter{&filter.Interacted{}}},
				&rank.Blend{},
				&rerank.Page{},
			},
		},
	}
}

// NewRankerWithPipeline 使用外部（例如配置驱动）组装好的 Pipeline。
func NewRankerWithPipeline(profiles core.ProfileStore, p *pipeline.Pipeline) *Ranker {
	return &Ranker{Profiles: profiles, Pipeline: p}
}

// Rank 返回分页后的有序推荐物品 ID。
// 画像缺失视为“无个性化可用”，链路自动落到热门兜底；两头都为空
// （冷启动叠加空目录）时返回空列表，不是错误。
func (r *Ranker) Rank(ctx context.Context, userID string, limit, offset int) ([]string, error) {
	user, err := r.Profiles.FindByUserID(ctx, userID)
	switch {
	case core.IsNotFound(err):
		user = nil
	case err != nil:
		return nil, err
	}

	rctx := &core.RecommendContext{
		UserID: userID,
		User:   user,
		Limit:  limit,
		Offset: offset,
	}

	items, err := r.Pipeline.Run(ctx, rctx, nil)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids, nil
}
