package config

import (
	"fmt"
	"time"

	"github.com/rushteam/mediarec/filter"
	"github.com/rushteam/mediarec/pipeline"
	"github.com/rushteam/mediarec/pkg/conv"
	"github.com/rushteam/mediarec/rank"
	"github.com/rushteam/mediarec/recall"
	"github.com/rushteam/mediarec/rerank"
)

func init() {
	Register("recall.candidates", buildCandidatesNode)
	Register("recall.popular", buildPopularNode)
	Register("recall.fanout", buildFanoutNode)
	Register("filter", buildFilterNode)
	Register("rank.blend", buildBlendNode)
	Register("rerank.page", buildPageNode)
}

func buildCandidatesNode(deps Deps, config map[string]any) (pipeline.Node, error) {
	return &recall.Candidates{
		Store: deps.Features,
		Pool:  conv.ConfigGetInt(config, "pool", 0),
	}, nil
}

func buildPopularNode(deps Deps, _ map[string]any) (pipeline.Node, error) {
	return &recall.Popular{Store: deps.Features}, nil
}

func buildFanoutNode(deps Deps, config map[string]any) (pipeline.Node, error) {
	sourcesConfig, ok := config["sources"].([]any)
	if !ok {
		return nil, fmt.Errorf("sources not found or invalid")
	}

	sources := make([]recall.Source, 0, len(sourcesConfig))
	for _, sc := range sourcesConfig {
		sourceMap, ok := sc.(map[string]any)
		if !ok {
			continue
		}
		switch sourceType := conv.ConfigGet[string](sourceMap, "type", ""); sourceType {
		case "candidates":
			sources = append(sources, &recall.Candidates{
				Store: deps.Features,
				Pool:  conv.ConfigGetInt(sourceMap, "pool", 0),
			})
		case "popular":
			sources = append(sources, &recall.Popular{Store: deps.Features})
		default:
			return nil, fmt.Errorf("unknown source type: %s", sourceType)
		}
	}

	fanout := &recall.Fanout{
		Sources:       sources,
		MaxConcurrent: conv.ConfigGetInt(config, "max_concurrent", 0),
		MergeStrategy: conv.ConfigGet[string](config, "merge_strategy", recall.MergeFallback),
	}
	if sec := conv.ConfigGetInt(config, "timeout", 0); sec > 0 {
		fanout.Timeout = time.Duration(sec) * time.Second
	}
	return fanout, nil
}

func buildFilterNode(_ Deps, config map[string]any) (pipeline.Node, error) {
	node := &filter.Node{}

	if conv.ConfigGet(config, "interacted", true) {
		node.Filters = append(node.Filters, &filter.Interacted{})
	}
	for _, expr := range conv.SliceAnyToString(config["rules"]) {
		rule, err := filter.NewRule(expr)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", expr, err)
		}
		node.Filters = append(node.Filters, rule)
	}
	return node, nil
}

func buildBlendNode(_ Deps, config map[string]any) (pipeline.Node, error) {
	return &rank.Blend{
		DistanceWeight:   conv.ConfigGetFloat64(config, "distance_weight", 0),
		PopularityWeight: conv.ConfigGetFloat64(config, "popularity_weight", 0),
	}, nil
}

func buildPageNode(_ Deps, config map[string]any) (pipeline.Node, error) {
	return &rerank.Page{
		Limit:  conv.ConfigGetInt(config, "limit", 0),
		Offset: conv.ConfigGetInt(config, "offset", 0),
	}, nil
}
