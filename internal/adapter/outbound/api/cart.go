package api

import (
	"context"

	"github.com/hqh-mall/mallclient/internal/domain/cart"
)

// buildCartItem rebuilds one cart row, including its nested SKU. A row
// whose sku member is missing or malformed keeps a zero SKU; the skuId on
// the row itself still identifies it.
func buildCartItem(m map[string]any) cart.Item {
	it := cart.Item{
		CartItemID: integer(m, "cartItemId"),
		UserID:     integer(m, "userId"),
		SkuID:      integer(m, "skuId"),
		Quantity:   integer(m, "quantity"),
		Checked:    boolean(m, "checked"),
		CreateTime: str(m, "createTime"),
		UpdateTime: str(m, "updateTime"),
	}
	if sm, ok := m["sku"].(map[string]any); ok {
		it.Sku = buildSKU(sm)
	}
	return it
}

// CartItems lists the authenticated customer's server-side cart. Never
// errors; anomalies degrade to an empty cart.
func (c *Client) CartItems(ctx context.Context) []cart.Item {
	const path = "/api/cart/list"

	v, err := c.get(ctx, path, nil)
	if err != nil {
		c.fallback(path, err)
		return []cart.Item{}
	}

	list := listOf(dataOf(v))
	out := make([]cart.Item, 0, len(list))
	for _, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, buildCartItem(m))
	}
	return out
}
