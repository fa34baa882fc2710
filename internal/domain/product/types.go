// Package product defines product and SKU types shared by the shopper
// catalog and the merchant management surface.
package product

import "github.com/hqh-mall/mallclient/internal/domain/page"

// Product sale statuses.
const (
	StatusOnSale  = "on_sale"
	StatusOffSale = "off_sale"
)

// SKU is a sellable variant of a product.
type SKU struct {
	SkuID      int64   `json:"skuId"`
	ProductID  int64   `json:"productId"`
	SkuName    string  `json:"skuName"`
	SkuType    string  `json:"skuType"`
	Price      float64 `json:"price"`
	Stock      int64   `json:"stock"`
	SoldCount  int64   `json:"soldCount"`
	SkuImage   string  `json:"skuImage"`
	Status     string  `json:"status"`
	CreateTime string  `json:"createTime"`
	UpdateTime string  `json:"updateTime"`
}

// Product is a merchant product as the listing endpoint reports it.
// Price is nil when the backend supplies no aggregate price (it is often
// derived from SKUs and simply missing from the row).
type Product struct {
	ProductID    int64    `json:"productId"`
	ProductName  string   `json:"productName"`
	Description  string   `json:"description"`
	CategoryID   int64    `json:"categoryId"`
	Status       string   `json:"status"`
	Price        *float64 `json:"price"`
	MainImages   string   `json:"mainImages"`
	DetailImages string   `json:"detailImages"`
	CreateTime   string   `json:"createTime"`
	UpdateTime   string   `json:"updateTime"`
	Skus         []SKU    `json:"skus,omitempty"`
}

// AddParams creates a product, optionally with initial SKUs.
type AddParams struct {
	ProductName  string     `json:"productName"`
	Description  string     `json:"description"`
	CategoryID   int64      `json:"categoryId"`
	MainImages   string     `json:"mainImages"`
	DetailImages string     `json:"detailImages"`
	Status       string     `json:"status"`
	Skus         []SkuInput `json:"skus,omitempty"`
}

// SkuInput is an SKU definition inside an AddParams.
type SkuInput struct {
	SkuName  string  `json:"skuName"`
	SkuType  string  `json:"skuType"`
	Price    float64 `json:"price"`
	Stock    int64   `json:"stock"`
	SkuImage string  `json:"skuImage"`
}

// UpdateParams replaces a product's editable fields.
type UpdateParams struct {
	ProductName  string `json:"productName"`
	Description  string `json:"description"`
	CategoryID   int64  `json:"categoryId"`
	MainImages   string `json:"mainImages"`
	DetailImages string `json:"detailImages"`
	Status       string `json:"status"`
}

// AddSkuParams attaches a new SKU to an existing product.
type AddSkuParams struct {
	ProductID int64   `json:"productId"`
	SkuName   string  `json:"skuName"`
	SkuType   string  `json:"skuType"`
	Price     float64 `json:"price"`
	Stock     int64   `json:"stock"`
	SkuImage  string  `json:"skuImage"`
	Status    string  `json:"status"`
}

// UpdateSkuParams replaces an SKU's editable fields.
type UpdateSkuParams struct {
	SkuName  string  `json:"skuName"`
	SkuType  string  `json:"skuType"`
	Price    float64 `json:"price"`
	Stock    int64   `json:"stock"`
	SkuImage string  `json:"skuImage"`
	Status   string  `json:"status"`
}

// ListParams filter the merchant product listing.
type ListParams struct {
	page.Query
	ProductName string
	Status      string
	CategoryID  int64
}

// BrowseParams filter the public catalog listing. Limit caps the number
// of returned products; the backend defaults it to 18.
type BrowseParams struct {
	CategoryID  int64
	ProductName string
	Limit       int
}
