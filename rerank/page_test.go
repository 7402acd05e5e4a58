package rerank

import (
	"context"
	"testing"

	"github.com/rushteam/mediarec/core"
)

func ids(items []*core.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func itemList(n int) []*core.Item {
	items := make([]*core.Item, n)
	for i := range items {
		items[i] = core.NewItem(string(rune('a' + i)))
	}
	return items
}

func TestPage_Process(t *testing.T) {
	tests := []struct {
		name  string
		node  *Page
		rctx  *core.RecommendContext
		total int
		want  []string
	}{
		{
			name:  "window from context",
			node:  &Page{},
			rctx:  &core.RecommendContext{Limit: 2, Offset: 1},
			total: 5,
			want:  []string{"b", "c"},
		},
		{
			name:  "explicit fields override context",
			node:  &Page{Limit: 1, Offset: 0},
			rctx:  &core.RecommendContext{Limit: 5, Offset: 3},
			total: 5,
			want:  []string{"a"},
		},
		{
			name:  "offset past end yields empty",
			node:  &Page{},
			rctx:  &core.RecommendContext{Limit: 2, Offset: 10},
			total: 3,
			want:  nil,
		},
		{
			name:  "negative offset treated as zero",
			node:  &Page{Limit: 2, Offset: -1},
			total: 3,
			want:  []string{"a", "b"},
		},
		{
			name:  "short tail page",
			node:  &Page{},
			rctx:  &core.RecommendContext{Limit: 10, Offset: 2},
			total: 3,
			want:  []string{"c"},
		},
		{
			name:  "zero window passes everything",
			node:  &Page{},
			rctx:  &core.RecommendContext{},
			total: 3,
			want:  []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.node.Process(context.Background(), tt.rctx, itemList(tt.total))
			if err != nil {
				t.Fatalf("Process: %v", err)
			}
			gotIDs := ids(got)
			if len(gotIDs) != len(tt.want) {
				t.Fatalf("got %v, want %v", gotIDs, tt.want)
			}
			for i := range tt.want {
				if gotIDs[i] != tt.want[i] {
					t.Errorf("got %v, want %v", gotIDs, tt.want)
					break
				}
			}
		})
	}
}

func TestPage_ConsecutivePagesConcatenate(t *testing.T) {
	node := &Page{}
	full := itemList(7)

	var pages []string
	for offset := 0; offset < len(full); offset += 3 {
		window := append([]*core.Item(nil), full...)
		got, err := node.Process(context.Background(), &core.RecommendContext{Limit: 3, Offset: offset}, window)
		if err != nil {
			t.Fatalf("Process offset=%d: %v", offset, err)
		}
		pages = append(pages, ids(got)...)
	}

	want := ids(full)
	if len(pages) != len(want) {
		t.Fatalf("concatenated pages = %v, want %v", pages, want)
	}
	for i := range want {
		if pages[i] != want[i] {
			t.Fatalf("concatenated pages = %v, want %v", pages, want)
		}
	}
}
