package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"BoucheriePos/app/models"

	"github.com/google/uuid"
)

// Validation failures of the payment flow. Callers recover by re-prompting
// the operator; neither aborts the session.
var (
	ErrEmptyCart           = errors.New("cannot complete a sale with an empty cart")
	ErrInsufficientPayment = errors.New("amount received is less than the total due")
)

// SaleStore is the persistence port of the ledger. The production
// implementation is the local SQLite database; tests inject an in-memory
// fake.
type SaleStore interface {
	Load() ([]models.Sale, error)
	Save(sales []models.Sale) error
}

// SalesService owns the sales ledger and the finalization of carts into
// sales. The in-memory ledger, newest first, is the authoritative copy;
// the store is written after every completed sale and a write failure only
// degrades durability, never the running session.
type SalesService struct {
	mu      sync.Mutex
	sales   []models.Sale
	cart    *CartService
	store   SaleStore
	display DisplayNotifier
	now     func() time.Time
}

// NewSalesService creates a new sales service over the given cart and
// store. The ledger is loaded from the store; a missing or unreadable
// store starts an empty ledger, which is the normal fresh-install case.
func NewSalesService(cart *CartService, store SaleStore) *SalesService {
	s := &SalesService{
		cart:  cart,
		store: store,
		now:   time.Now,
	}
	if store != nil {
		sales, err := store.Load()
		if err != nil {
			log.Printf("Warning: could not load sales history, starting empty: %v", err)
		} else {
			s.sales = sales
		}
	}
	return s
}

// SetDisplayNotifier attaches a customer display feed. Optional.
func (s *SalesService) SetDisplayNotifier(d DisplayNotifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.display = d
}

// CompleteSale finalizes the current cart as a cash sale: it re-derives
// the total from the live cart, records the payment and change, appends
// the sale to the ledger, persists, and empties the cart. Ledger append
// and cart clear happen under both locks, so no caller can observe one
// without the other. On any error nothing changes.
func (s *SalesService) CompleteSale(amountReceived int64, employeeID uint, employeeName string) (*models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sale *models.Sale
	var err error

	s.cart.WithLock(func() {
		items := s.cart.itemsLocked()
		if len(items) == 0 {
			err = ErrEmptyCart
			return
		}
		total := s.cart.totalLocked()
		if amountReceived < total {
			err = fmt.Errorf("%w: received %d, due %d", ErrInsufficientPayment, amountReceived, total)
			return
		}

		now := s.now()
		sale = &models.Sale{
			ID:             uuid.NewString(),
			Items:          items,
			Total:          total,
			AmountReceived: amountReceived,
			Change:         amountReceived - total,
			EmployeeID:     employeeID,
			EmployeeName:   employeeName,
			Date:           now.Format(time.RFC3339),
			Timestamp:      now.UnixMilli(),
		}

		s.sales = append([]models.Sale{*sale}, s.sales...)
		s.persistLocked()
		s.cart.clearLocked()
	})
	if err != nil {
		return nil, err
	}

	if s.display != nil {
		s.display.BroadcastSaleCompleted(sale)
	}
	return sale, nil
}

// persistLocked writes the ledger through the store. Failure is reported
// but not fatal: the in-memory ledger stays authoritative for the session
// and the next successful save catches the store up.
func (s *SalesService) persistLocked() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.sales); err != nil {
		log.Printf("Warning: could not persist sales ledger, continuing in memory: %v", err)
	}
}

// GetSales returns the full sales history, newest first.
func (s *SalesService) GetSales() []models.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// GetSalesByDate returns the sales of one calendar day. dateKey is an ISO
// date ("2006-01-02") matched as a prefix of the sale date, which carries
// the local wall clock, so day boundaries are local.
func (s *SalesService) GetSalesByDate(dateKey string) []models.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Sale
	for _, sale := range s.sales {
		if strings.HasPrefix(sale.Date, dateKey) {
			out = append(out, sale)
		}
	}
	return out
}

// GetTodaySales returns the sales of the current local day.
func (s *SalesService) GetTodaySales() []models.Sale {
	return s.GetSalesByDate(s.now().Format("2006-01-02"))
}

// GetTodayTotal sums the stored totals of today's sales. It trusts the
// recorded totals rather than recomputing from the catalog, so historical
// sales keep their value when prices change.
func (s *SalesService) GetTodayTotal() int64 {
	var total int64
	for _, sale := range s.GetTodaySales() {
		total += sale.Total
	}
	return total
}
