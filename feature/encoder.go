// Package feature 提供物品特征编码：把题材（标签）集合编码为定长数值向量。
package feature

import "github.com/rushteam/mediarec/core"

// GenreEncoder 是题材 One-Hot 编码器。
//
// 契约：
//   - 输出向量长度恒为 core.GenreCount，所有槽位初始为 0
//   - 每个有效题材在自身索引处置 1.0
//   - 索引越界的题材（过期/未知标签）不会越界写入：直接跳过，
//     并通过返回值回传给调用方作为告警信号，绝不 panic
//
// 纯函数，无副作用，同一输入的两次编码结果逐位一致。
type GenreEncoder struct{}

// Encode 将题材集合编码为 one-hot 向量，同时返回被跳过的无效题材。
func (GenreEncoder) Encode(genres []core.Genre) (vec []float64, skipped []core.Genre) {
	vec = make([]float64, core.GenreCount)
	for _, g := range genres {
		if !g.Valid() {
			skipped = append(skipped, g)
			continue
		}
		vec[g] = 1.0
	}
	return vec, skipped
}

// EncodeNames 按题材名称编码（入站事件携带的是名称而非索引）。
// 未知名称同样跳过并回传。
func (e GenreEncoder) EncodeNames(names []string) (vec []float64, unknown []string) {
	vec = make([]float64, core.GenreCount)
	for _, name := range names {
		g, ok := core.ParseGenre(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		vec[g] = 1.0
	}
	return vec, unknown
}
