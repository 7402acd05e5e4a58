package core

// RecommendContext 承载用户/分页/实时信息，贯穿整个 Pipeline 透传。
type RecommendContext struct {
	UserID string

	// User 是已加载的用户画像；为 nil 表示无个性化可用（冷启动），
	// 链路应退化到热门兜底。
	User *UserProfile

	// Limit/Offset 是最终返回窗口。边界校验（默认值、上限钳制）由
	// 外层接口负责，核心按原值执行。
	Limit  int
	Offset int

	// Params 请求级上下文参数（设备、场景等），供过滤规则引用。
	Params map[string]any
}

// Interacted 判断物品是否已在当前用户的排除集内。
// 画像缺失时视为未交互。
func (rctx *RecommendContext) Interacted(itemID string) bool {
	if rctx == nil || rctx.User == nil {
		return false
	}
	return rctx.User.HasInteracted(itemID)
}
