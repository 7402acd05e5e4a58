// Package config 提供配置驱动的 Pipeline 组装：内置 Node 的构建器注册表，
// 以及把 YAML 配置变成可运行 Pipeline 的工厂。
package config

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rushteam/mediarec/core"
	"github.com/rushteam/mediarec/pipeline"
)

// Deps 是构建 Node 所需的运行时依赖。召回节点需要特征存储，
// 配置文件里只描述策略，依赖在组装时注入。
type Deps struct {
	Features core.FeatureStore
}

// NodeBuilder 根据依赖与配置构建 Node。
// 各组件在 init 中调用 Register(typeName, builder) 即可被配置驱动。
type NodeBuilder func(deps Deps, config map[string]any) (pipeline.Node, error)

var (
	defaultBuilders   = make(map[string]NodeBuilder)
	defaultBuildersMu sync.RWMutex
)

// Register 注册一种 Node 的构建逻辑。
func Register(typeName string, builder NodeBuilder) {
	if typeName == "" || builder == nil {
		return
	}
	defaultBuildersMu.Lock()
	defer defaultBuildersMu.Unlock()
	defaultBuilders[typeName] = builder
}

// SupportedTypes 返回当前已注册的 Node 类型列表（排序），用于错误提示与校验。
func SupportedTypes() []string {
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	types := make([]string, 0, len(defaultBuilders))
	for t := range defaultBuilders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// NewFactory 返回基于当前注册表的 NodeFactory，依赖通过闭包注入。
func NewFactory(deps Deps) *pipeline.NodeFactory {
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	f := pipeline.NewNodeFactory()
	for typeName, builder := range defaultBuilders {
		builder := builder
		f.Register(typeName, func(cfg map[string]any) (pipeline.Node, error) {
			return builder(deps, cfg)
		})
	}
	return f
}

// ValidatePipelineConfig 校验 pipeline 配置中所有 node 类型均已注册；
// 若有未支持类型则返回包含已支持列表的错误。
func ValidatePipelineConfig(cfg *pipeline.Config) error {
	if cfg == nil {
		return nil
	}
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	for _, nc := range cfg.Pipeline.Nodes {
		if _, ok := defaultBuilders[nc.Type]; !ok {
			return fmt.Errorf("unknown node type %q, supported: %v", nc.Type, SupportedTypes())
		}
	}
	return nil
}
