package config

import (
	"context"
	"testing"

	"github.com/rushteam/mediarec/core"
	"github.com/rushteam/mediarec/pipeline"
	"github.com/rushteam/mediarec/store"
)

const rankingYAML = `
pipeline:
  name: ranking
  nodes:
    - type: recall.fanout
      config:
        merge_strategy: fallback
        timeout: 2
        sources:
          - type: candidates
            pool: 100
          - type: popular
    - type: filter
      config:
        interacted: true
        rules:
          - '"popularity" in item.features && item.features.popularity < 0.01'
    - type: rank.blend
      config:
        distance_weight: 0.7
        popularity_weight: 0.3
    - type: rerank.page
`

func TestBuildPipelineFromYAML(t *testing.T) {
	cfg, err := pipeline.ParseYAML([]byte(rankingYAML))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if cfg.Pipeline.Name != "ranking" {
		t.Errorf("name = %s, want ranking", cfg.Pipeline.Name)
	}
	if err := ValidatePipelineConfig(cfg); err != nil {
		t.Fatalf("ValidatePipelineConfig: %v", err)
	}

	features := store.NewMemoryFeatureStore()
	p, err := cfg.BuildPipeline(NewFactory(Deps{Features: features}))
	if err != nil {
		t.Fatalf("BuildPipeline: %v", err)
	}
	if len(p.Nodes) != 4 {
		t.Fatalf("built %d nodes, want 4", len(p.Nodes))
	}

	wantKinds := []pipeline.Kind{
		pipeline.KindRecall,
		pipeline.KindFilter,
		pipeline.KindRank,
		pipeline.KindReRank,
	}
	for i, k := range wantKinds {
		if p.Nodes[i].Kind() != k {
			t.Errorf("node[%d].Kind() = %s, want %s", i, p.Nodes[i].Kind(), k)
		}
	}

	// 组装出的链路可以直接跑（空目录 → 空结果）
	got, err := p.Run(context.Background(), &core.RecommendContext{UserID: "u1", Limit: 5}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty catalog run = %d items, want 0", len(got))
	}
}

func TestBuildPipelineErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown node type",
			yaml: `
pipeline:
  nodes:
    - type: rank.magic
`,
		},
		{
			name: "fanout without sources",
			yaml: `
pipeline:
  nodes:
    - type: recall.fanout
`,
		},
		{
			name: "fanout with unknown source type",
			yaml: `
pipeline:
  nodes:
    - type: recall.fanout
      config:
        sources:
          - type: magic
`,
		},
		{
			name: "filter with malformed rule",
			yaml: `
pipeline:
  nodes:
    - type: filter
      config:
        rules:
          - 'item.features..bad <'
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := pipeline.ParseYAML([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("ParseYAML: %v", err)
			}
			if _, err := cfg.BuildPipeline(NewFactory(Deps{Features: store.NewMemoryFeatureStore()})); err == nil {
				t.Fatal("expected build error")
			}
		})
	}
}

func TestValidatePipelineConfig_UnknownType(t *testing.T) {
	cfg, err := pipeline.ParseYAML([]byte("pipeline:\n  nodes:\n    - type: nope\n"))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if err := ValidatePipelineConfig(cfg); err == nil {
		t.Fatal("expected validation error for unknown type")
	}
}

func TestSupportedTypes(t *testing.T) {
	types := SupportedTypes()
	want := map[string]bool{
		"recall.fanout": true, "recall.candidates": true, "recall.popular": true,
		"filter": true, "rank.blend": true, "rerank.page": true,
	}
	for name := range want {
		found := false
		for _, typ := range types {
			if typ == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("type %s not registered, have %v", name, types)
		}
	}
}
