package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/hqh-mall/mallclient/internal/domain/order"
	"github.com/hqh-mall/mallclient/internal/domain/page"
)

// MyOrders lists the authenticated customer's own orders. Never errors;
// anomalies degrade to an empty page.
func (c *Client) MyOrders(ctx context.Context, params order.ListParams) page.ListPage[order.Order] {
	const path = "/api/order/list"
	v, err := c.get(ctx, path, orderListQuery(params))
	if err != nil {
		c.fallback(path, err)
		return page.Empty[order.Order]()
	}
	return pageOf(dataOf(v), buildOrder)
}

// CreateOrder places an order from the checkout selection and returns the
// new order's id. Strict: checkout must know whether the order exists, so
// a response without a usable id is an error.
func (c *Client) CreateOrder(ctx context.Context, params order.CreateParams) (int64, error) {
	v, err := c.send(ctx, http.MethodPost, "/api/order/create", nil, params)
	if err != nil {
		return 0, err
	}

	// The payload is the bare numeric order id.
	id := int64(toNumber(dataOf(v)))
	if id <= 0 {
		return 0, errors.New("malformed create order response")
	}
	return id, nil
}
