package service

import (
	"log/slog"
	"sync"

	"github.com/hqh-mall/mallclient/internal/domain/cart"
)

// CartService holds the customer's current cart selection. The selection
// is ephemeral on purpose: it lives only as long as the process and is
// never written to durable storage, so a restart always starts from an
// empty cart instead of resurrecting stale prices.
type CartService struct {
	logger *slog.Logger

	mu    sync.RWMutex
	items []cart.Selection
}

// NewCartService creates an empty cart.
func NewCartService(logger *slog.Logger) *CartService {
	return &CartService{logger: logger}
}

// Select adds or replaces a selection. At most one entry exists per SKU:
// selecting an already-selected SKU replaces its quantity and price
// rather than appending a duplicate line.
func (s *CartService) Select(sel cart.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].SkuID == sel.SkuID {
			s.items[i] = sel
			return
		}
	}
	s.items = append(s.items, sel)
}

// Deselect removes the selection for a SKU. Removing an unselected SKU
// is a no-op.
func (s *CartService) Deselect(skuID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].SkuID == skuID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the current selection in insertion order.
func (s *CartService) Items() []cart.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]cart.Selection, len(s.items))
	copy(out, s.items)
	return out
}

// Total returns the selection's total price.
func (s *CartService) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, it := range s.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Clear empties the selection, typically after checkout or logout.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) > 0 {
		s.logger.Info("cart cleared", "items", len(s.items))
	}
	s.items = nil
}
