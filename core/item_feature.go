package core

import "time"

// ItemFeature 是物品的特征记录：一条定长向量加一个热度分。
//
// 约定：
//   - Vector 长度为 GenreCount，默认按题材 one-hot（每个关联题材置 1.0）
//   - PopularityScore 由上游单一数据源维护并归一化到 [0,1]，本核心只读不算
//   - 生命周期跟随目录：物品发布时创建、题材变更时覆盖、下架时删除
//
// ItemFeature 由 FeatureStore 独占持有，其他组件不得修改。
type ItemFeature struct {
	ItemID          string
	Vector          []float64
	PopularityScore float64
	UpdatedAt       time.Time
}

// NewItemFeature 创建一条物品特征记录。
func NewItemFeature(itemID string, vector []float64) *ItemFeature {
	return &ItemFeature{
		ItemID:    itemID,
		Vector:    vector,
		UpdatedAt: time.Now(),
	}
}
