package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rushteam/mediarec/core"
)

// MemoryFeatureStore 是内存实现的 core.FeatureStore，用于测试/开发/原型。
// 线程安全，进程重启后数据丢失。
type MemoryFeatureStore struct {
	mu       sync.RWMutex
	features map[string]*core.ItemFeature
}

func NewMemoryFeatureStore() *MemoryFeatureStore {
	return &MemoryFeatureStore{
		features: make(map[string]*core.ItemFeature),
	}
}

func (m *MemoryFeatureStore) Name() string { return "memory_feature" }

func (m *MemoryFeatureStore) Save(ctx context.Context, feat *core.ItemFeature) error {
	if feat == nil || feat.ItemID == "" {
		return core.NewDomainError(core.ModuleStore, core.ErrorCodeInvalidInput, "store: item feature is nil or has empty id")
	}
	cp := *feat
	cp.Vector = append([]float64(nil), feat.Vector...)
	if cp.UpdatedAt.IsZero() {
		cp.UpdatedAt = time.Now()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.features[cp.ItemID] = &cp
	return nil
}

func (m *MemoryFeatureStore) Get(ctx context.Context, itemID string) (*core.ItemFeature, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	feat, ok := m.features[itemID]
	if !ok {
		return nil, core.ErrItemFeatureNotFound
	}
	cp := *feat
	cp.Vector = append([]float64(nil), feat.Vector...)
	return &cp, nil
}

func (m *MemoryFeatureStore) Delete(ctx context.Context, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	// 删除不存在的物品是 no-op
	delete(m.features, itemID)
	return nil
}

func (m *MemoryFeatureStore) FindCandidates(ctx context.Context, profileVec []float64, excluding map[string]struct{}, pool, n int) ([]core.Candidate, error) {
	if len(profileVec) == 0 {
		return nil, nil
	}

	m.mu.RLock()
	cands := make([]core.Candidate, 0, len(m.features))
	for id, feat := range m.features {
		if _, ok := excluding[id]; ok {
			continue
		}
		cands = append(cands, core.Candidate{
			ItemID:          id,
			PopularityScore: feat.PopularityScore,
			Distance:        cosineDistance(profileVec, feat.Vector),
		})
	}
	m.mu.RUnlock()

	return sortCandidates(cands, pool, n), nil
}

func (m *MemoryFeatureStore) FindMostPopular(ctx context.Context, limit, offset int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	m.mu.RLock()
	type popular struct {
		id    string
		score float64
	}
	all := make([]popular, 0, len(m.features))
	for id, feat := range m.features {
		all = append(all, popular{id: id, score: feat.PopularityScore})
	}
	m.mu.RUnlock()

	// 热度相同按 ID 降序，与 Redis ZREVRANGE 对同分 member 的字典序回退
	// 保持一致，两个后端的分页结果逐条相同
	sort.Slice(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		return all[i].id > all[j].id
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}

	ids := make([]string, len(all))
	for i, p := range all {
		ids[i] = p.id
	}
	return ids, nil
}

func (m *MemoryFeatureStore) Close() error { return nil }

// MemoryProfileStore 是内存实现的 core.ProfileStore。
// Save 在互斥锁内做版本 CAS，与 Redis 实现的 WATCH 语义保持一致。
type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]*core.UserProfile
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{
		profiles: make(map[string]*core.UserProfile),
	}
}

func (m *MemoryProfileStore) Name() string { return "memory_profile" }

func (m *MemoryProfileStore) FindByUserID(ctx context.Context, userID string) (*core.UserProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[userID]
	if !ok {
		return nil, core.ErrProfileNotFound
	}
	return p.Clone(), nil
}

func (m *MemoryProfileStore) Save(ctx context.Context, p *core.UserProfile) error {
	if p == nil || p.UserID == "" {
		return core.NewDomainError(core.ModuleStore, core.ErrorCodeInvalidInput, "store: user profile is nil or has empty id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.profiles[p.UserID]
	if ok {
		if cur.Version != p.Version {
			return core.ErrProfileConflict
		}
	} else if p.Version != 0 {
		return core.ErrProfileConflict
	}

	cp := p.Clone()
	cp.Version = p.Version + 1
	m.profiles[p.UserID] = cp
	return nil
}

func (m *MemoryProfileStore) Close() error { return nil }
