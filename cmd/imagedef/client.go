package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/osimagekit/image-definitions/internal/modules/model"
)

// client is a thin typed wrapper over the REST API.
type client struct {
	base string
	http *http.Client
}

func newClient(addr, prefix string) *client {
	if prefix != "" && !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	prefix = strings.TrimSuffix(prefix, "/")
	return &client{
		base: strings.TrimSuffix(addr, "/") + prefix,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

type apiError struct {
	Status int    `json:"-"`
	Detail string `json:"detail"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Detail)
}

func (c *client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := sonic.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		apiErr := &apiError{Status: resp.StatusCode, Detail: string(raw)}
		var parsed struct {
			Detail string `json:"detail"`
		}
		if sonic.Unmarshal(raw, &parsed) == nil && parsed.Detail != "" {
			apiErr.Detail = parsed.Detail
		}
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		return sonic.Unmarshal(raw, out)
	}
	return nil
}

func (c *client) listGroups(ctx context.Context) ([]*model.ProductGroup, error) {
	var groups []*model.ProductGroup
	err := c.do(ctx, http.MethodGet, "/product-groups", nil, nil, &groups)
	return groups, err
}

func (c *client) createGroup(ctx context.Context, name string, description *string) (*model.ProductGroup, error) {
	body := map[string]any{"name": name}
	if description != nil {
		body["description"] = *description
	}
	group := &model.ProductGroup{}
	err := c.do(ctx, http.MethodPost, "/product-groups", nil, body, group)
	return group, err
}

func (c *client) deleteGroup(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/product-groups/"+id, nil, nil, nil)
}

func (c *client) listProducts(ctx context.Context, groupID string) ([]*model.Product, error) {
	query := url.Values{}
	if groupID != "" {
		query.Set("product_group_id", groupID)
	}
	var products []*model.Product
	err := c.do(ctx, http.MethodGet, "/products", query, nil, &products)
	return products, err
}

func (c *client) createProduct(ctx context.Context, name, groupID string, version *string) (*model.Product, error) {
	body := map[string]any{"name": name, "product_group_id": groupID}
	if version != nil {
		body["version"] = *version
	}
	product := &model.Product{}
	err := c.do(ctx, http.MethodPost, "/products", nil, body, product)
	return product, err
}

func (c *client) listVariants(ctx context.Context, architectureID string) ([]*model.Variant, error) {
	query := url.Values{}
	if architectureID != "" {
		query.Set("architecture_id", architectureID)
	}
	var variants []*model.Variant
	err := c.do(ctx, http.MethodGet, "/variants", query, nil, &variants)
	return variants, err
}

func (c *client) listArtifacts(ctx context.Context, variantID, artifactType, status string) ([]*model.Artifact, error) {
	query := url.Values{}
	if variantID != "" {
		query.Set("variant_id", variantID)
	}
	if artifactType != "" {
		query.Set("artifact_type", artifactType)
	}
	if status != "" {
		query.Set("status", status)
	}
	var artifacts []*model.Artifact
	err := c.do(ctx, http.MethodGet, "/artifacts", query, nil, &artifacts)
	return artifacts, err
}

func (c *client) artifactStats(ctx context.Context) (*model.ArtifactStats, error) {
	stats := &model.ArtifactStats{}
	err := c.do(ctx, http.MethodGet, "/artifacts/stats/summary", nil, nil, stats)
	return stats, err
}
