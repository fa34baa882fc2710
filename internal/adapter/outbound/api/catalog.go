package api

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/hqh-mall/mallclient/internal/domain/product"
)

// HomeProducts lists the public catalog for the home page. Category and
// search share the one endpoint. Never errors; anomalies degrade to an
// empty slice so the home page renders empty instead of crashing.
func (c *Client) HomeProducts(ctx context.Context, params product.BrowseParams) []product.Product {
	const path = "/api/product/home/list"

	q := url.Values{}
	if params.CategoryID != 0 {
		q.Set("categoryId", strconv.FormatInt(params.CategoryID, 10))
	}
	if params.ProductName != "" {
		q.Set("productName", params.ProductName)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}

	v, err := c.get(ctx, path, q)
	if err != nil {
		c.fallback(path, err)
		return []product.Product{}
	}

	list := listOf(dataOf(v))
	out := make([]product.Product, 0, len(list))
	for _, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, buildProduct(m))
	}
	return out
}

// ProductDetail fetches one product with its SKUs. Strict: the buyer acts
// on this data (prices, stock), so a malformed payload is an error rather
// than a silently empty product.
func (c *Client) ProductDetail(ctx context.Context, id int64) (*product.Product, error) {
	v, err := c.get(ctx, "/api/product/detail/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}

	m := objectOf(v)
	if m == nil {
		return nil, errors.New("malformed product detail payload")
	}

	p := buildProduct(m)
	if p.ProductID == 0 {
		p.ProductID = id
	}
	return &p, nil
}
