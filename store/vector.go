// Package store 提供特征/画像存储的具体实现：内存版用于测试与原型，
// Redis 版用于生产。领域接口定义在 core 包（依赖倒置）。
package store

import (
	"math"
	"sort"

	"github.com/rushteam/mediarec/core"
)

// cosineDistance 计算两条向量的余弦距离（1 - 余弦相似度），范围 [0, 2]。
// 任一向量为零向量时相似度按 0 计（距离 1），避免除零。
func cosineDistance(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}

// sortCandidates 按原始距离升序排序并依次截断到 pool、n。
// 距离相同时按 ItemID 升序，保证分页的确定性。
func sortCandidates(cands []core.Candidate, pool, n int) []core.Candidate {
	if pool <= 0 {
		pool = core.DefaultCandidatePool
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Distance != cands[j].Distance {
			return cands[i].Distance < cands[j].Distance
		}
		return cands[i].ItemID < cands[j].ItemID
	})
	if len(cands) > pool {
		cands = cands[:pool]
	}
	if n > 0 && len(cands) > n {
		cands = cands[:n]
	}
	return cands
}
