package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rushteam/mediarec/core"
)

func TestHTTPCatalogClient_FetchItemsBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/items/bulk" {
			t.Errorf("path = %s, want /api/items/bulk", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s, want application/json", ct)
		}

		var ids []string
		if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
			t.Errorf("decode request: %v", err)
		}

		out := make([]core.ItemSummary, 0, len(ids))
		for _, id := range ids {
			out = append(out, core.ItemSummary{ItemID: id, Title: "Title of " + id, Genres: []string{"HORROR"}})
		}
		json.NewEncoder(w).Encode(out)
	}))
	defer srv.Close()

	client := NewHTTPCatalogClient(srv.URL)
	got, err := client.FetchItemsBatch(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("FetchItemsBatch: %v", err)
	}
	if len(got) != 2 || got[0].ItemID != "a" || got[1].Title != "Title of b" {
		t.Fatalf("got %+v", got)
	}
}

func TestHTTPCatalogClient_CustomPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := NewHTTPCatalogClient(srv.URL, WithCatalogPath("/v2/bulk"))
	if _, err := client.FetchItemsBatch(context.Background(), []string{"a"}); err != nil {
		t.Fatalf("FetchItemsBatch: %v", err)
	}
	if gotPath != "/v2/bulk" {
		t.Errorf("path = %s, want /v2/bulk", gotPath)
	}
}

func TestHTTPCatalogClient_Errors(t *testing.T) {
	t.Run("non 200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewHTTPCatalogClient(srv.URL)
		_, err := client.FetchItemsBatch(context.Background(), []string{"a"})
		if !core.IsUnavailable(err) {
			t.Fatalf("err = %v, want unavailable", err)
		}
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client := NewHTTPCatalogClient(srv.URL)
		_, err := client.FetchItemsBatch(context.Background(), []string{"a"})
		if !core.IsUnavailable(err) {
			t.Fatalf("err = %v, want unavailable", err)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		client := NewHTTPCatalogClient(srv.URL)
		if _, err := client.FetchItemsBatch(context.Background(), []string{"a"}); err == nil {
			t.Fatal("expected decode error")
		}
	})
}
