package store

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/rushteam/mediarec/core"
)

// Redis key 布局：
//   - {prefix}:features          Hash：itemID -> 特征 JSON
//   - {prefix}:popular           ZSet：member=itemID，score=热度分
//   - {prefix}:profile:{userID}  String：画像 JSON（含版本号）
const defaultKeyPrefix = "mediarec"

// RedisFeatureStore 是 Redis 实现的 core.FeatureStore。
// 生产环境常用，支持持久化、集群、哨兵等。
//
// 候选检索在进程内计算距离（HGetAll 全量特征后本地排序）。前提是
// 特征目录有界（题材 one-hot 向量很小），候选池截断保证排序成本可控。
type RedisFeatureStore struct {
	client *redis.Client
	prefix string
}

func NewRedisFeatureStore(addr string, db int) (*RedisFeatureStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisFeatureStore{client: client, prefix: defaultKeyPrefix}, nil
}

func (r *RedisFeatureStore) Name() string { return "redis_feature" }

func (r *RedisFeatureStore) featuresKey() string { return r.prefix + ":features" }
func (r *RedisFeatureStore) popularKey() string  { return r.prefix + ":popular" }

func (r *RedisFeatureStore) Save(ctx context.Context, feat *core.ItemFeature) error {
	if feat == nil || feat.ItemID == "" {
		return core.NewDomainError(core.ModuleStore, core.ErrorCodeInvalidInput, "store: item feature is nil or has empty id")
	}
	data, err := encodeFeature(feat)
	if err != nil {
		return err
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.featuresKey(), feat.ItemID, data)
		pipe.ZAdd(ctx, r.popularKey(), redis.Z{Score: feat.PopularityScore, Member: feat.ItemID})
		return nil
	})
	return err
}

func (r *RedisFeatureStore) Get(ctx context.Context, itemID string) (*core.ItemFeature, error) {
	data, err := r.client.HGet(ctx, r.featuresKey(), itemID).Bytes()
	if err == redis.Nil {
		return nil, core.ErrItemFeatureNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeFeature(data)
}

func (r *RedisFeatureStore) Delete(ctx context.Context, itemID string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, r.featuresKey(), itemID)
		pipe.ZRem(ctx, r.popularKey(), itemID)
		return nil
	})
	return err
}

func (r *RedisFeatureStore) FindCandidates(ctx context.Context, profileVec []float64, excluding map[string]struct{}, pool, n int) ([]core.Candidate, error) {
	if len(profileVec) == 0 {
		return nil, nil
	}

	all, err := r.client.HGetAll(ctx, r.featuresKey()).Result()
	if err != nil {
		return nil, err
	}

	cands := make([]core.Candidate, 0, len(all))
	for id, raw := range all {
		if _, ok := excluding[id]; ok {
			continue
		}
		feat, err := decodeFeature([]byte(raw))
		if err != nil {
			// 损坏的记录跳过，不拖垮整个检索
			continue
		}
		cands = append(cands, core.Candidate{
			ItemID:          id,
			PopularityScore: feat.PopularityScore,
			Distance:        cosineDistance(profileVec, feat.Vector),
		})
	}
	return sortCandidates(cands, pool, n), nil
}

// FindMostPopular 读热度 ZSet。ZREVRANGE 对同分 member 按字典序降序返回，
// 内存实现的平局回退与此对齐。
func (r *RedisFeatureStore) FindMostPopular(ctx context.Context, limit, offset int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	if offset < 0 {
		offset = 0
	}
	start := int64(offset)
	stop := int64(offset + limit - 1)
	return r.client.ZRevRange(ctx, r.popularKey(), start, stop).Result()
}

func (r *RedisFeatureStore) Close() error { return r.client.Close() }

// RedisProfileStore 是 Redis 实现的 core.ProfileStore。
// Save 通过 WATCH + 事务实现版本 CAS：WATCH 画像 key，校验版本后在事务内
// 写入新版本；事务被并发写打断时返回 ErrProfileConflict，由调用方重试。
type RedisProfileStore struct {
	client *redis.Client
	prefix string
}

func NewRedisProfileStore(addr string, db int) (*RedisProfileStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisProfileStore{client: client, prefix: defaultKeyPrefix}, nil
}

func (r *RedisProfileStore) Name() string { return "redis_profile" }

func (r *RedisProfileStore) profileKey(userID string) string {
	return r.prefix + ":profile:" + userID
}

func (r *RedisProfileStore) FindByUserID(ctx context.Context, userID string) (*core.UserProfile, error) {
	data, err := r.client.Get(ctx, r.profileKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, core.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeProfile(data)
}

func (r *RedisProfileStore) Save(ctx context.Context, p *core.UserProfile) error {
	if p == nil || p.UserID == "" {
		return core.NewDomainError(core.ModuleStore, core.ErrorCodeInvalidInput, "store: user profile is nil or has empty id")
	}
	key := r.profileKey(p.UserID)

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		switch {
		case err == redis.Nil:
			if p.Version != 0 {
				return core.ErrProfileConflict
			}
		case err != nil:
			return err
		default:
			cur, err := decodeProfile(data)
			if err != nil {
				return err
			}
			if cur.Version != p.Version {
				return core.ErrProfileConflict
			}
		}

		next := p.Clone()
		next.Version = p.Version + 1
		buf, err := encodeProfile(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, buf, 0)
			return nil
		})
		return err
	}, key)

	if err == redis.TxFailedErr {
		return core.ErrProfileConflict
	}
	return err
}

func (r *RedisProfileStore) Close() error { return r.client.Close() }
