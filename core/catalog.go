package core

import "context"

// ItemSummary 是目录侧的展示数据（标题、封面等），核心只透传不加工。
type ItemSummary struct {
	ItemID   string   `json:"item_id"`
	Title    string   `json:"title"`
	CoverURL string   `json:"cover_url"`
	Genres   []string `json:"genres"`
}

// CatalogClient 是外部目录服务的领域接口：按 ID 列表单次批量取回展示数据。
//
// 约定：
//   - 一次批量调用取回全部 ID，禁止 N+1 逐个查询
//   - 尽量保持请求顺序返回；目录侧缺失的 ID 允许缺省
//   - 调用失败时整个推荐请求失败，核心不做部分降级
//     （不返回只有 ID 没有元数据的残缺结果）
type CatalogClient interface {
	FetchItemsBatch(ctx context.Context, itemIDs []string) ([]ItemSummary, error)
}
