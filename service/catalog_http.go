package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rushteam/mediarec/core"
)

// HTTPCatalogClient 是目录服务的 HTTP 客户端实现（core.CatalogClient）。
//
// 协议：POST {endpoint}{path}，请求体为 ID 的 JSON 数组，
// 响应体为 ItemSummary 的 JSON 数组。
type HTTPCatalogClient struct {
	// Endpoint 服务端点，例如 "http://catalog:8080"
	Endpoint string

	// Path 批量查询路径（默认 "/api/items/bulk"）
	Path string

	// Timeout 超时时间
	Timeout time.Duration

	httpClient *http.Client
}

// HTTPCatalogOption 目录客户端配置选项
type HTTPCatalogOption func(*HTTPCatalogClient)

// WithCatalogPath 设置批量查询路径。
func WithCatalogPath(path string) HTTPCatalogOption {
	return func(c *HTTPCatalogClient) { c.Path = path }
}

// WithCatalogTimeout 设置超时时间。
func WithCatalogTimeout(timeout time.Duration) HTTPCatalogOption {
	return func(c *HTTPCatalogClient) { c.Timeout = timeout }
}

// NewHTTPCatalogClient 创建一个新的目录客户端。
func NewHTTPCatalogClient(endpoint string, opts ...HTTPCatalogOption) *HTTPCatalogClient {
	client := &HTTPCatalogClient{
		Endpoint: endpoint,
		Path:     "/api/items/bulk",
		Timeout:  10 * time.Second,
	}
	for _, opt := range opts {
		opt(client)
	}
	client.httpClient = &http.Client{Timeout: client.Timeout}
	return client
}

// FetchItemsBatch 实现 core.CatalogClient：一次批量取回全部 ID 的展示数据。
func (c *HTTPCatalogClient) FetchItemsBatch(ctx context.Context, itemIDs []string) ([]core.ItemSummary, error) {
	body, err := json.Marshal(itemIDs)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint+c.Path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeUnavailable,
			fmt.Sprintf("catalog: batch fetch failed: %v", err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeUnavailable,
			fmt.Sprintf("catalog: batch fetch returned status %d", resp.StatusCode))
	}

	var summaries []core.ItemSummary
	if err := json.Unmarshal(data, &summaries); err != nil {
		return nil, fmt.Errorf("catalog: decode response: %w", err)
	}
	return summaries, nil
}
