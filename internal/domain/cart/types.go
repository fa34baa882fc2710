// Package cart defines the server-side cart rows and the checkout
// selection carried from the cart page to order confirmation.
package cart

import "github.com/hqh-mall/mallclient/internal/domain/product"

// Item is one row of the server-side cart as the cart listing reports
// it, with its SKU attached.
type Item struct {
	CartItemID int64       `json:"cartItemId"`
	UserID     int64       `json:"userId"`
	SkuID      int64       `json:"skuId"`
	Quantity   int64       `json:"quantity"`
	Checked    bool        `json:"checked"`
	CreateTime string      `json:"createTime"`
	UpdateTime string      `json:"updateTime"`
	Sku        product.SKU `json:"sku"`
}

// Selection is one chosen SKU heading into checkout. The selection is
// ephemeral: it lives only for the duration of the checkout flow and is
// never written to durable storage.
type Selection struct {
	ProductID   int64   `json:"productId"`
	SkuID       int64   `json:"skuId"`
	Quantity    int64   `json:"quantity"`
	Price       float64 `json:"price"`
	ProductName string  `json:"productName"`
	SkuName     string  `json:"skuName"`
}
