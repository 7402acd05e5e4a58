package core

import "context"

// Candidate 是候选检索的结果条目：物品 ID、热度分与到画像向量的距离。
type Candidate struct {
	ItemID          string
	PopularityScore float64
	Distance        float64
}

// DefaultCandidatePool 是混合排序前的预排序候选池大小。
// 先按原始距离取池内 TopN，再做混合打分，保证检索成本对目录规模亚线性。
// 目录规模变化只需调池子大小，算法本身不动。
const DefaultCandidatePool = 200

// FeatureStore 是物品特征存储的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（store）实现
//   - 遵循依赖倒置原则：领域层定义接口，基础设施层实现接口
//
// 实现：
//   - store.MemoryFeatureStore（测试/开发/原型）
//   - store.RedisFeatureStore（生产）
type FeatureStore interface {
	// Name 返回存储后端名称（用于日志/监控）
	Name() string

	// Save 写入物品特征，upsert 语义：不存在则创建，存在则覆盖。幂等。
	Save(ctx context.Context, feat *ItemFeature) error

	// Get 读取单个物品特征，不存在返回 ErrItemFeatureNotFound。
	Get(ctx context.Context, itemID string) (*ItemFeature, error)

	// Delete 删除物品特征。幂等：删除不存在的物品是 no-op，不是错误。
	Delete(ctx context.Context, itemID string) error

	// FindCandidates 检索候选：排除 excluding 中的物品，按到 profileVec 的
	// 余弦距离升序，先截断到 pool 大小（pool <= 0 时取 DefaultCandidatePool），
	// 再返回前 n 条（n <= 0 时返回整个池）。结果携带原始距离与热度分，
	// 供混合打分。混合打分要在整个池上做，调用方不应在打分前用 n 截断。
	FindCandidates(ctx context.Context, profileVec []float64, excluding map[string]struct{}, pool, n int) ([]Candidate, error)

	// FindMostPopular 兜底检索：按热度分降序分页返回物品 ID。
	// limit <= 0 时返回空结果。
	FindMostPopular(ctx context.Context, limit, offset int) ([]string, error)

	// Close 关闭连接/释放资源
	Close() error
}

// ProfileStore 是用户画像存储的领域接口。
//
// 画像是本核心唯一的可变共享资源：Save 采用乐观并发
// （Version 比对，冲突返回 ErrProfileConflict），调用方负责有界重试。
// 核心不提供删除操作（画像删除是外部数据生命周期问题）。
type ProfileStore interface {
	// Name 返回存储后端名称（用于日志/监控）
	Name() string

	// FindByUserID 读取画像，不存在返回 ErrProfileNotFound。
	FindByUserID(ctx context.Context, userID string) (*UserProfile, error)

	// Save 保存画像。p.Version 必须等于存储中的当前版本
	// （新画像为 0），否则返回 ErrProfileConflict；成功后版本加一。
	Save(ctx context.Context, p *UserProfile) error

	// Close 关闭连接/释放资源
	Close() error
}
