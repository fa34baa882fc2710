package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hqh-mall/mallclient/internal/domain/admin"
	"github.com/hqh-mall/mallclient/internal/domain/apierr"
	"github.com/hqh-mall/mallclient/internal/domain/order"
	"github.com/hqh-mall/mallclient/internal/domain/page"
)

func buildOrderItem(m map[string]any) order.Item {
	return order.Item{
		ItemID:      integer(m, "itemId"),
		OrderID:     integer(m, "orderId"),
		SkuID:       integer(m, "skuId"),
		ProductName: str(m, "productName"),
		SkuName:     str(m, "skuName"),
		SkuType:     str(m, "skuType"),
		Price:       num(m, "price"),
		Quantity:    integer(m, "quantity"),
		TotalPrice:  num(m, "totalPrice"),
		CreateTime:  str(m, "createTime"),
		SkuImage:    str(m, "skuImage"),
	}
}

func buildOrder(m map[string]any) order.Order {
	o := order.Order{
		OrderID:         integer(m, "orderId"),
		OrderNo:         str(m, "orderNo"),
		UserID:          integer(m, "userId"),
		TotalAmount:     num(m, "totalAmount"),
		Status:          strOr(m, "status", order.StatusPending),
		ShippingAddress: str(m, "shippingAddress"),
		ConsigneeName:   nullableStr(m, "consigneeName"),
		Phone:           nullableStr(m, "phone"),
		PaymentTime:     nullableStr(m, "paymentTime"),
		CreateTime:      str(m, "createTime"),
		UpdateTime:      str(m, "updateTime"),
		Items:           []order.Item{},
	}

	if items, ok := m["orderItems"].([]any); ok {
		for _, el := range items {
			im, ok := el.(map[string]any)
			if !ok {
				continue
			}
			o.Items = append(o.Items, buildOrderItem(im))
		}
	}

	return o
}

func orderListQuery(params order.ListParams) url.Values {
	q := url.Values{}
	q.Set("pageNum", strconv.Itoa(orDefault(params.PageNum, page.DefaultPageNum)))
	q.Set("pageSize", strconv.Itoa(orDefault(params.PageSize, page.DefaultPageSize)))
	if params.OrderNo != "" {
		q.Set("orderNo", params.OrderNo)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	return q
}

// AdminOrders lists all orders across shops. Never errors; anomalies
// degrade to an empty page.
func (c *Client) AdminOrders(ctx context.Context, params order.ListParams) page.ListPage[order.Order] {
	const path = "/api/admin/order/list"
	v, err := c.get(ctx, path, orderListQuery(params))
	if err != nil {
		c.fallback(path, err)
		return page.Empty[order.Order]()
	}
	return pageOf(dataOf(v), buildOrder)
}

// AdminOrderDetail fetches one order. The route is missing on some
// deployments; compensation synthesizes a placeholder so the detail page
// renders instead of erroring.
func (c *Client) AdminOrderDetail(ctx context.Context, id int64) (*order.Order, error) {
	path := "/api/admin/order/detail/" + strconv.FormatInt(id, 10)
	v, err := c.get(ctx, path, nil)
	if err != nil {
		if c.compensateRoutes && apierr.IsRouteNotFound(err) {
			c.logger.Warn("order detail route missing, synthesizing placeholder", "orderId", id)
			return &order.Order{
				OrderID: id,
				OrderNo: "ORDER_" + strconv.FormatInt(id, 10),
				Status:  order.StatusPending,
				Items:   []order.Item{},
			}, nil
		}
		return nil, err
	}

	data := objectOf(v)
	if data == nil {
		c.fallback(path, errors.New("malformed order detail payload"))
		return &order.Order{OrderID: id, Status: order.StatusPending, Items: []order.Item{}}, nil
	}

	o := buildOrder(data)
	if o.OrderID == 0 {
		o.OrderID = id
	}
	return &o, nil
}

// CancelOrder cancels an order on a customer's behalf. The parameters
// travel in the query string, not the body; the backend ignores bodies on
// this route.
func (c *Client) CancelOrder(ctx context.Context, params admin.CancelParams) (*admin.WriteResult, error) {
	q := url.Values{}
	q.Set("id", strconv.FormatInt(params.ID, 10))
	q.Set("status", params.Status)

	v, err := c.send(ctx, http.MethodPut, "/api/admin/order/cancel", q, nil)
	if err != nil {
		if c.compensateRoutes && apierr.IsRouteNotFound(err) {
			c.logger.Warn("order cancel route missing, simulating success", "orderId", params.ID)
			return &admin.WriteResult{Message: "Order cancelled", Simulated: true}, nil
		}
		return nil, err
	}

	return writeResult(v, "Order cancelled"), nil
}
