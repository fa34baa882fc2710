package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hqh-mall/mallclient/internal/domain/page"
	"github.com/hqh-mall/mallclient/internal/domain/product"
)

func buildSKU(m map[string]any) product.SKU {
	return product.SKU{
		SkuID:      integer(m, "skuId"),
		ProductID:  integer(m, "productId"),
		SkuName:    str(m, "skuName"),
		SkuType:    str(m, "skuType"),
		Price:      num(m, "price"),
		Stock:      integer(m, "stock"),
		SoldCount:  integer(m, "soldCount"),
		SkuImage:   str(m, "skuImage"),
		Status:     strOr(m, "status", product.StatusOnSale),
		CreateTime: str(m, "createTime"),
		UpdateTime: str(m, "updateTime"),
	}
}

func buildProduct(m map[string]any) product.Product {
	p := product.Product{
		ProductID:    integer(m, "productId"),
		ProductName:  str(m, "productName"),
		Description:  str(m, "description"),
		CategoryID:   integer(m, "categoryId"),
		Status:       strOr(m, "status", product.StatusOffSale),
		Price:        nullableNum(m, "price"),
		MainImages:   str(m, "mainImages"),
		DetailImages: str(m, "detailImages"),
		CreateTime:   str(m, "createTime"),
		UpdateTime:   str(m, "updateTime"),
	}

	if skus, ok := m["skus"].([]any); ok {
		for _, el := range skus {
			sm, ok := el.(map[string]any)
			if !ok {
				continue
			}
			p.Skus = append(p.Skus, buildSKU(sm))
		}
	}

	return p
}

func productListQuery(params product.ListParams) url.Values {
	q := url.Values{}
	q.Set("pageNum", strconv.Itoa(orDefault(params.PageNum, page.DefaultPageNum)))
	q.Set("pageSize", strconv.Itoa(orDefault(params.PageSize, page.DefaultPageSize)))
	if params.ProductName != "" {
		q.Set("productName", params.ProductName)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.CategoryID != 0 {
		q.Set("categoryId", strconv.FormatInt(params.CategoryID, 10))
	}
	return q
}

// ShopProducts lists the authenticated merchant's products. Never errors;
// anomalies degrade to an empty page.
func (c *Client) ShopProducts(ctx context.Context, params product.ListParams) page.ListPage[product.Product] {
	const path = "/api/shop/product/list"
	v, err := c.get(ctx, path, productListQuery(params))
	if err != nil {
		c.fallback(path, err)
		return page.Empty[product.Product]()
	}
	return pageOf(dataOf(v), buildProduct)
}

// AddProduct creates a product, optionally with its initial SKUs.
func (c *Client) AddProduct(ctx context.Context, params product.AddParams) error {
	_, err := c.send(ctx, http.MethodPost, "/api/shop/product/add", nil, params)
	return err
}

// UpdateProduct replaces a product's editable fields.
func (c *Client) UpdateProduct(ctx context.Context, id int64, params product.UpdateParams) error {
	_, err := c.send(ctx, http.MethodPut, "/api/shop/product/update/"+strconv.FormatInt(id, 10), nil, params)
	return err
}

// DeleteProduct removes a product and its SKUs.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	_, err := c.send(ctx, http.MethodDelete, "/api/shop/product/"+strconv.FormatInt(id, 10), nil, nil)
	return err
}

// AddSKU attaches a new SKU to an existing product.
func (c *Client) AddSKU(ctx context.Context, params product.AddSkuParams) error {
	_, err := c.send(ctx, http.MethodPost, "/api/shop/sku/add", nil, params)
	return err
}

// UpdateSKU replaces an SKU's editable fields.
func (c *Client) UpdateSKU(ctx context.Context, id int64, params product.UpdateSkuParams) error {
	_, err := c.send(ctx, http.MethodPut, "/api/shop/sku/update/"+strconv.FormatInt(id, 10), nil, params)
	return err
}

// DeleteSKU removes an SKU.
func (c *Client) DeleteSKU(ctx context.Context, id int64) error {
	_, err := c.send(ctx, http.MethodDelete, "/api/shop/sku/"+strconv.FormatInt(id, 10), nil, nil)
	return err
}
