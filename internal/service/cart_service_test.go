package service

import (
	"testing"

	"github.com/hqh-mall/mallclient/internal/domain/cart"
)

func TestCartService_OneEntryPerSKU(t *testing.T) {
	t.Parallel()

	s := NewCartService(testLogger())
	s.Select(cart.Selection{SkuID: 1, ProductID: 10, Quantity: 2, Price: 5})
	s.Select(cart.Selection{SkuID: 2, ProductID: 10, Quantity: 1, Price: 3})

	// Re-selecting SKU 1 replaces it, never duplicates.
	s.Select(cart.Selection{SkuID: 1, ProductID: 10, Quantity: 4, Price: 5})

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(items))
	}
	if items[0].SkuID != 1 || items[0].Quantity != 4 {
		t.Errorf("Items[0] = %+v, want replaced in place", items[0])
	}
	if got, want := s.Total(), 4*5.0+1*3.0; got != want {
		t.Errorf("Total() = %v, want %v", got, want)
	}
}

func TestCartService_Deselect(t *testing.T) {
	t.Parallel()

	s := NewCartService(testLogger())
	s.Select(cart.Selection{SkuID: 1, Quantity: 1, Price: 2})
	s.Deselect(1)
	s.Deselect(99) // unknown SKU is a no-op

	if got := s.Items(); len(got) != 0 {
		t.Errorf("Items = %+v, want empty", got)
	}
}

func TestCartService_Clear(t *testing.T) {
	t.Parallel()

	s := NewCartService(testLogger())
	s.Select(cart.Selection{SkuID: 1, Quantity: 1, Price: 2})
	s.Clear()

	if s.Total() != 0 {
		t.Errorf("Total() = %v after Clear, want 0", s.Total())
	}
	if len(s.Items()) != 0 {
		t.Error("Items survived Clear")
	}
}
