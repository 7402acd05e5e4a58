package core

import "time"

// UserProfile 是用户兴趣画像：一条持续演进的数值状态。
//
// 两条独立的更新通道（见 profile.Updater）：
//   - 交互事件：按物品向量对画像向量做加权 nudge
//   - 评分事件：按评分档位迁移调整参与度分
//
// 不变量：
//   - Vector 的每个分量永远非负（每次更新后钳制到 0，负反馈直接丢弃，
//     避免负向信号自我放大）
//   - Version 驱动乐观并发：Save 时版本不匹配即冲突，整段读-改-写重试
//
// 画像在首次交互/评分时惰性创建，本核心从不删除画像。
type UserProfile struct {
	UserID            string
	Vector            []float64
	InteractedItemIDs map[string]struct{}
	EngagementScore   float64
	Version           int64
	CreatedAt         time.Time
	LastUpdated       time.Time
}

// NewUserProfile 创建一个空画像，向量维度与题材目录一致。
func NewUserProfile(userID string) *UserProfile {
	now := time.Now()
	return &UserProfile{
		UserID:            userID,
		Vector:            make([]float64, GenreCount),
		InteractedItemIDs: make(map[string]struct{}),
		CreatedAt:         now,
		LastUpdated:       now,
	}
}

// NudgeVector 按物品向量对画像向量做一次加权 nudge：
//
//	Vector[i] += itemVec[i] * adjustment * learningRate
//
// 维度不一致时按较短的一侧截断；更新后逐维钳制到非负。
func (p *UserProfile) NudgeVector(itemVec []float64, adjustment, learningRate float64) {
	n := len(p.Vector)
	if len(itemVec) < n {
		n = len(itemVec)
	}
	for i := 0; i < n; i++ {
		p.Vector[i] += itemVec[i] * adjustment * learningRate
		if p.Vector[i] < 0 {
			p.Vector[i] = 0
		}
	}
	p.LastUpdated = time.Now()
}

// StepEngagement 按档位迁移的权重差调整参与度分。
func (p *UserProfile) StepEngagement(delta float64) {
	p.EngagementScore += delta
	p.LastUpdated = time.Now()
}

// MarkInteracted 将物品记入去重排除集（推荐时不再返回）。
func (p *UserProfile) MarkInteracted(itemID string) {
	if p.InteractedItemIDs == nil {
		p.InteractedItemIDs = make(map[string]struct{})
	}
	p.InteractedItemIDs[itemID] = struct{}{}
}

// HasInteracted 判断物品是否已在排除集内。
func (p *UserProfile) HasInteracted(itemID string) bool {
	_, ok := p.InteractedItemIDs[itemID]
	return ok
}

// Clone 返回画像的深拷贝，供存储层做读-改-写隔离。
func (p *UserProfile) Clone() *UserProfile {
	cp := *p
	cp.Vector = make([]float64, len(p.Vector))
	copy(cp.Vector, p.Vector)
	cp.InteractedItemIDs = make(map[string]struct{}, len(p.InteractedItemIDs))
	for id := range p.InteractedItemIDs {
		cp.InteractedItemIDs[id] = struct{}{}
	}
	return &cp
}
