// Package order defines order types shared by the shopper, merchant, and
// admin surfaces.
package order

import "github.com/hqh-mall/mallclient/internal/domain/page"

// Order statuses.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Item is a single line of an order.
type Item struct {
	ItemID      int64   `json:"itemId"`
	OrderID     int64   `json:"orderId"`
	SkuID       int64   `json:"skuId"`
	ProductName string  `json:"productName"`
	SkuName     string  `json:"skuName"`
	SkuType     string  `json:"skuType"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	TotalPrice  float64 `json:"totalPrice"`
	CreateTime  string  `json:"createTime"`
	SkuImage    string  `json:"skuImage"`
}

// Order is an order as the listings and detail endpoints report it.
// ConsigneeName, Phone, and PaymentTime are nil when the backend did not
// supply them (an unpaid order has no payment time).
type Order struct {
	OrderID         int64   `json:"orderId"`
	OrderNo         string  `json:"orderNo"`
	UserID          int64   `json:"userId"`
	TotalAmount     float64 `json:"totalAmount"`
	Status          string  `json:"status"`
	ShippingAddress string  `json:"shippingAddress"`
	ConsigneeName   *string `json:"consigneeName"`
	Phone           *string `json:"phone"`
	PaymentTime     *string `json:"paymentTime"`
	CreateTime      string  `json:"createTime"`
	UpdateTime      string  `json:"updateTime"`
	Items           []Item  `json:"orderItems"`
}

// ListParams filter order listings.
type ListParams struct {
	page.Query
	OrderNo string
	Status  string
}

// CreateItem is one line of a new order, priced at selection time.
type CreateItem struct {
	ProductID int64   `json:"productId"`
	SkuID     int64   `json:"skuId"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

// CreateParams place a new order from the checkout selection.
type CreateParams struct {
	Consignee  string       `json:"consignee"`
	Phone      string       `json:"phone"`
	Address    string       `json:"address"`
	OrderItems []CreateItem `json:"orderItems"`
}
