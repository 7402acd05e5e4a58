// Package profile 实现用户画像的两条更新通道：交互驱动的向量 nudge
// 与评分驱动的参与度分迁移。Updater 是 UserProfile 的唯一写入方。
package profile

import (
	"context"

	"github.com/rushteam/mediarec/core"
)

const (
	// DefaultLearningRate 是向量 nudge 的固定学习率。
	// 超参数而非推导值，与混合权重一样按配置对待。
	DefaultLearningRate = 0.1

	// DefaultMaxRetries 是乐观并发冲突时整段读-改-写的最大重试次数。
	DefaultMaxRetries = 3
)

// Updater 将交互/评分事件落到用户画像上。
//
// 并发模型：同一用户的更新通过存储层的版本 CAS 串行化——读-改-写整段
// 在冲突时重试，重试耗尽后以 ErrProfileConflict 上抛（瞬态失败，调用方
// 可按自身策略再投递）。不同用户的更新完全并行，互不影响。
type Updater struct {
	Features core.FeatureStore
	Profiles core.ProfileStore

	// LearningRate 为 0 时取 DefaultLearningRate。
	LearningRate float64

	// MaxRetries 为 0 时取 DefaultMaxRetries。
	MaxRetries int
}

func NewUpdater(features core.FeatureStore, profiles core.ProfileStore) *Updater {
	return &Updater{Features: features, Profiles: profiles}
}

func (u *Updater) learningRate() float64 {
	if u.LearningRate != 0 {
		return u.LearningRate
	}
	return DefaultLearningRate
}

func (u *Updater) maxRetries() int {
	if u.MaxRetries > 0 {
		return u.MaxRetries
	}
	return DefaultMaxRetries
}

// ApplyInteraction 处理一次交互事件：
//
//  1. 查物品特征向量，缺失即拒绝（ErrItemFeatureNotFound，交由调用方
//     记录/重试，核心不无限重试也不伪造向量）
//  2. 读或惰性创建用户画像
//  3. adjustment = 交互权重 × 交互强度
//  4. 画像向量逐维 nudge（学习率缩放）并钳制非负
//  5. 物品记入排除集，带版本保存；冲突则整段重试
func (u *Updater) ApplyInteraction(ctx context.Context, ev core.InteractionEvent) error {
	if !ev.Type.Valid() {
		return core.NewDomainError(core.ModuleProfile, core.ErrorCodeInvalidInput, "profile: unknown interaction type: "+string(ev.Type))
	}

	feat, err := u.Features.Get(ctx, ev.ItemID)
	if err != nil {
		return err
	}

	adjustment := ev.Type.Weight() * ev.Value

	return u.updateWithRetry(ctx, ev.UserID, func(p *core.UserProfile) {
		p.NudgeVector(feat.Vector, adjustment, u.learningRate())
		p.MarkInteracted(ev.ItemID)
	})
}

// ApplyRating 处理一次评分迁移事件：
//
//  1. 事件引用的物品必须有特征记录，否则拒绝（与交互通道同一策略）
//  2. 新旧星级分别分档；首次评分时旧档位权重按 0 计
//  3. 档位未变且非首次评分：严格 no-op——分数、时间戳、版本都不动，
//     也不产生存储写入
//  4. 否则 engagementScore += 新档权重 − 旧档权重，物品记入排除集并保存
func (u *Updater) ApplyRating(ctx context.Context, ev core.RatingEvent) error {
	if _, err := u.Features.Get(ctx, ev.ItemID); err != nil {
		return err
	}

	newCat := core.RatingCategoryFromStars(ev.NewStars)
	if !ev.IsNew && core.RatingCategoryFromStars(ev.OldStars) == newCat {
		return nil
	}

	oldWeight := 0
	if !ev.IsNew {
		oldWeight = core.RatingCategoryFromStars(ev.OldStars).Weight()
	}
	delta := float64(newCat.Weight() - oldWeight)

	return u.updateWithRetry(ctx, ev.UserID, func(p *core.UserProfile) {
		p.StepEngagement(delta)
		p.MarkInteracted(ev.ItemID)
	})
}

// updateWithRetry 执行带版本重试的读-改-写：每次冲突都重新读取最新画像、
// 重新套用 mutate，绝不基于过期状态覆盖写。
func (u *Updater) updateWithRetry(ctx context.Context, userID string, mutate func(*core.UserProfile)) error {
	var err error
	for attempt := 0; attempt < u.maxRetries(); attempt++ {
		var p *core.UserProfile
		p, err = u.Profiles.FindByUserID(ctx, userID)
		switch {
		case core.IsNotFound(err):
			// 画像缺失不是错误：首次触达时惰性创建
			p = core.NewUserProfile(userID)
		case err != nil:
			return err
		}

		mutate(p)

		err = u.Profiles.Save(ctx, p)
		if err == nil {
			return nil
		}
		if !core.IsConflict(err) {
			return err
		}
	}
	return err
}
