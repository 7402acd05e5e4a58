package core

// 本文件定义核心消费的入站事件形态。事件的传输与重试策略由调用方
// （消息消费者、HTTP handler）负责，核心只定义载荷语义。

// InteractionEvent 是一次用户交互（点赞/点踩/观看）。
// Value 是交互强度（例如观看进度），符号与归一化由上游约定。
type InteractionEvent struct {
	UserID string          `json:"user_id"`
	ItemID string          `json:"item_id"`
	Type   InteractionType `json:"interaction_type"`
	Value  float64         `json:"interaction_value"`
}

// RatingEvent 是一次评分迁移：从 OldStars 变为 NewStars。
// IsNew 为 true 时表示首次评分，旧档位权重按 0 计。
type RatingEvent struct {
	UserID   string `json:"user_id"`
	ItemID   string `json:"item_id"`
	OldStars int    `json:"old_stars"`
	NewStars int    `json:"new_stars"`
	IsNew    bool   `json:"is_new_rating"`
}

// ItemEvent 是物品生命周期事件（发布/题材变更），核心据此编码特征向量。
type ItemEvent struct {
	ItemID          string   `json:"item_id"`
	Genres          []string `json:"genres"`
	PopularityScore float64  `json:"popularity_score"`
}
