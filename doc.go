// Package mediarec 是一个个性化媒体推荐引擎（Media Recommender）。
//
// 设计要点：
// - Profile-first: 用户画像向量由交互/评分事件增量演进，存储层版本 CAS 保证同用户串行
// - Pipeline-first: 排序链路通过 Node 串联（召回(含兜底) → 过滤 → 混合打分 → 分页）
// - Node 可扩展: 自定义 Node 即可插拔扩展，支持 YAML 配置驱动组装
package mediarec

import "github.com/rushteam/mediarec/pipeline"

// 轻量 facade：便于用户直接 import "mediarec" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecall      = pipeline.KindRecall
	KindFilter      = pipeline.KindFilter
	KindRank        = pipeline.KindRank
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
