package services

import (
	"sync"

	"BoucheriePos/app/models"
)

// CartService holds the in-progress transaction of the terminal. The cart
// lives in memory only: it starts empty, is never persisted, and is emptied
// when a sale is finalized from it. It never writes to the ledger or to
// storage itself.
type CartService struct {
	mu      sync.Mutex
	items   []models.CartItem
	display DisplayNotifier
}

// NewCartService creates a new cart service
func NewCartService() *CartService {
	return &CartService{}
}

// SetDisplayNotifier attaches a customer display feed. Optional.
func (s *CartService) SetDisplayNotifier(d DisplayNotifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.display = d
}

// AddToCart adds quantity units of a product to the cart. If the product
// is already in the cart its quantity is incremented instead of a second
// line being created, so there is at most one line per product id.
func (s *CartService) AddToCart(product models.Product, quantity float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity += quantity
			s.notifyLocked()
			return
		}
	}
	s.items = append(s.items, models.CartItem{Product: product, Quantity: quantity})
	s.notifyLocked()
}

// RemoveFromCart removes the line for the given product. Removing a
// product that is not in the cart is a no-op, not an error.
func (s *CartService) RemoveFromCart(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLineLocked(productID)
	s.notifyLocked()
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero
// or less removes the line entirely; "reduce to zero" is an implicit
// remove. Unknown product ids are a no-op.
func (s *CartService) UpdateQuantity(productID uint, quantity float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLineLocked(productID)
		s.notifyLocked()
		return
	}
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.notifyLocked()
}

// ClearCart empties the cart unconditionally.
func (s *CartService) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.notifyLocked()
}

// GetCartTotal returns the amount due for the current cart contents.
func (s *CartService) GetCartTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

// Items returns a copy of the cart lines in insertion order.
func (s *CartService) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsLocked()
}

// removeLineLocked is the single removal code path, shared by
// RemoveFromCart and the quantity<=0 branch of UpdateQuantity.
func (s *CartService) removeLineLocked(productID uint) {
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *CartService) totalLocked() int64 {
	var total int64
	for _, item := range s.items {
		total += item.LineTotal()
	}
	return total
}

func (s *CartService) itemsLocked() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CartService) clearLocked() {
	s.items = nil
	s.notifyLocked()
}

// WithLock runs fn while holding the cart mutex, so a caller can read the
// cart and clear it as one atomic unit.
func (s *CartService) WithLock(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

func (s *CartService) notifyLocked() {
	if s.display != nil {
		s.display.BroadcastCartUpdate(s.itemsLocked(), s.totalLocked())
	}
}
