package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/hqh-mall/mallclient/internal/domain/address"
	"github.com/hqh-mall/mallclient/internal/domain/admin"
	"github.com/hqh-mall/mallclient/internal/domain/order"
	"github.com/hqh-mall/mallclient/internal/domain/product"
)

func TestHomeProducts_NormalizesAndDegrades(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"documented shape", `{"code":200,"data":{"list":[{"productId":1,"productName":"Phone"},{"productId":2}]}}`, 2},
		{"bare data array", `{"code":200,"data":[{"productId":1}]}`, 1},
		{"no envelope", `[{"productId":1}]`, 1},
		{"null data", `{"code":200,"data":null}`, 0},
		{"business failure", `{"code":500,"msg":"boom"}`, 0},
		{"junk body", `not json at all`, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))

			got := c.HomeProducts(context.Background(), product.BrowseParams{})
			if got == nil {
				t.Fatal("HomeProducts returned nil, want a non-nil slice")
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestHomeProducts_SendsBrowseQuery(t *testing.T) {
	t.Parallel()

	var gotQuery string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"code":200,"data":[]}`))
	}))

	c.HomeProducts(context.Background(), product.BrowseParams{CategoryID: 3, ProductName: "cat food", Limit: 6})

	for _, want := range []string{"categoryId=3", "limit=6"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query = %q, missing %q", gotQuery, want)
		}
	}
}

func TestProductDetail_StrictOnMalformedPayload(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":200,"data":"not an object"}`))
	}))

	if _, err := c.ProductDetail(context.Background(), 7); err == nil {
		t.Error("ProductDetail() error = nil, want malformed-payload error")
	}
}

func TestCartItems_CoercesNestedSku(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":200,"data":[
			{"cartItemId":"9","skuId":5,"quantity":"2","checked":1,
			 "sku":{"skuId":5,"productId":3,"skuName":"Red / L","price":"19.90","stock":7}},
			"junk element",
			{"cartItemId":10,"skuId":6,"quantity":1,"checked":false}
		]}`))
	}))

	items := c.CartItems(context.Background())
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2 with the junk element dropped", len(items))
	}

	first := items[0]
	if first.CartItemID != 9 || first.Quantity != 2 || !first.Checked {
		t.Errorf("first item = %+v, want coerced id/quantity/checked", first)
	}
	if first.Sku.Price != 19.90 || first.Sku.ProductID != 3 {
		t.Errorf("nested sku = %+v, want coerced price and productId", first.Sku)
	}
	if items[1].Sku.SkuID != 0 {
		t.Errorf("missing sku member should stay zero, got %+v", items[1].Sku)
	}
}

func TestCreateOrder_ReturnsOrderID(t *testing.T) {
	t.Parallel()

	var gotBody order.CreateParams
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"code":200,"data":12345}`))
	}))

	id, err := c.CreateOrder(context.Background(), order.CreateParams{
		Consignee:  "A",
		Phone:      "123",
		Address:    "1 Main St",
		OrderItems: []order.CreateItem{{ProductID: 3, SkuID: 5, Quantity: 2, Price: 19.90}},
	})
	if err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}
	if id != 12345 {
		t.Errorf("id = %d, want 12345", id)
	}
	if len(gotBody.OrderItems) != 1 || gotBody.OrderItems[0].SkuID != 5 {
		t.Errorf("request body = %+v, want the selection lines", gotBody)
	}
}

func TestCreateOrder_RejectsUnusableID(t *testing.T) {
	t.Parallel()

	for _, body := range []string{
		`{"code":200,"data":null}`,
		`{"code":200,"data":"soon"}`,
		`{"code":200,"data":{"unexpected":"object"}}`,
	} {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))
		if _, err := c.CreateOrder(context.Background(), order.CreateParams{}); err == nil {
			t.Errorf("CreateOrder() with body %s: error = nil, want unusable-id error", body)
		}
	}
}

func TestAddresses_DegradesToEmptyBook(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	book := c.Addresses(context.Background())
	if book == nil || len(book) != 0 {
		t.Errorf("Addresses() = %v, want empty non-nil slice", book)
	}
}

func TestAddresses_CoercesRows(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":200,"data":[
			{"addressId":"4","recipientName":"A","phone":13800001111,"fullAddress":"1 Main St","isDefault":1}
		]}`))
	}))

	book := c.Addresses(context.Background())
	if len(book) != 1 {
		t.Fatalf("len = %d, want 1", len(book))
	}
	got := book[0]
	want := address.Address{AddressID: 4, RecipientName: "A", Phone: "13800001111", FullAddress: "1 Main St", IsDefault: true}
	if got != want {
		t.Errorf("address = %+v, want %+v", got, want)
	}
}

func TestDefaultAddress_NoneSetIsNotAnError(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":200,"data":null}`))
	}))

	addr, err := c.DefaultAddress(context.Background())
	if err != nil {
		t.Fatalf("DefaultAddress() error: %v", err)
	}
	if addr != nil {
		t.Errorf("addr = %+v, want nil when no default exists", addr)
	}
}

func TestAuditMerchant_SendsIDAndStatus(t *testing.T) {
	t.Parallel()

	var gotMethod, gotQuery string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"code":200,"msg":"approved"}`))
	}))

	res, err := c.AuditMerchant(context.Background(), admin.AuditParams{ID: 8, Status: "active"})
	if err != nil {
		t.Fatalf("AuditMerchant() error: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Errorf("method = %q, want PUT", gotMethod)
	}
	for _, want := range []string{"id=8", "status=active"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query = %q, missing %q", gotQuery, want)
		}
	}
	if res.Message != "approved" || res.Simulated {
		t.Errorf("result = %+v, want the backend message and Simulated false", res)
	}
}

func TestAuditMerchant_CompensatesMissingRoute(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	res, err := c.AuditMerchant(context.Background(), admin.AuditParams{ID: 8, Status: "active"})
	if err != nil {
		t.Fatalf("AuditMerchant() error: %v", err)
	}
	if !res.Simulated {
		t.Error("Simulated = false, want a synthesized result for the missing route")
	}
}
