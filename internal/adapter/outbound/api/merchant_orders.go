package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hqh-mall/mallclient/internal/domain/order"
	"github.com/hqh-mall/mallclient/internal/domain/page"
)

// ShopOrders lists the authenticated merchant's orders. Never errors;
// anomalies degrade to an empty page.
func (c *Client) ShopOrders(ctx context.Context, params order.ListParams) page.ListPage[order.Order] {
	const path = "/api/shop/order/list"
	v, err := c.get(ctx, path, orderListQuery(params))
	if err != nil {
		c.fallback(path, err)
		return page.Empty[order.Order]()
	}
	return pageOf(dataOf(v), buildOrder)
}

// ShopOrderDetail fetches one of the merchant's orders. Strict: the
// merchant acts on this data (shipping, refunds), so a malformed payload
// is an error rather than a placeholder.
func (c *Client) ShopOrderDetail(ctx context.Context, id int64) (*order.Order, error) {
	path := "/api/shop/order/" + strconv.FormatInt(id, 10)
	v, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	data := objectOf(v)
	if data == nil {
		return nil, errors.New("malformed order payload")
	}

	o := buildOrder(data)
	if o.OrderID == 0 {
		o.OrderID = id
	}
	return &o, nil
}

// UpdateOrderStatus advances an order through its lifecycle, for example
// marking it shipped. The status travels in the query string.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	q := url.Values{}
	q.Set("status", status)
	_, err := c.send(ctx, http.MethodPut, "/api/order/status/"+strconv.FormatInt(id, 10), q, nil)
	return err
}
