package service

import (
	"context"

	"github.com/rushteam/mediarec/core"
)

// Recommender 是推荐门面：排序出物品 ID 后，向外部目录服务做一次
// 批量查询补齐展示数据（标题、封面等），绝不逐个查询（N+1）。
//
// 错误语义：
//   - 排序为空（冷启动叠加空目录）→ 空列表 + nil，不是错误
//   - 目录批量查询失败 → 整个推荐请求失败，不做部分降级
type Recommender struct {
	Ranker  *Ranker
	Catalog core.CatalogClient
}

func NewRecommender(ranker *Ranker, catalog core.CatalogClient) *Recommender {
	return &Recommender{Ranker: ranker, Catalog: catalog}
}

// GetRecommendations 返回带展示数据的有序推荐列表。
// 目录返回顺序不可信，按排序产出的 ID 顺序重排；目录侧缺失的 ID 跳过。
func (s *Recommender) GetRecommendations(ctx context.Context, userID string, limit, offset int) ([]core.ItemSummary, error) {
	ids, err := s.Ranker.Rank(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []core.ItemSummary{}, nil
	}

	summaries, err := s.Catalog.FetchItemsBatch(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]core.ItemSummary, len(summaries))
	for _, sum := range summaries {
		byID[sum.ItemID] = sum
	}

	out := make([]core.ItemSummary, 0, len(ids))
	for _, id := range ids {
		if sum, ok := byID[id]; ok {
			out = append(out, sum)
		}
	}
	return out, nil
}
