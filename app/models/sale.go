package models

import "strings"

// CartItem pairs a product with the quantity being bought.
// The product is embedded by value: once a cart line ends up inside a
// Sale, later catalog or cart changes cannot reach it.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity float64 `json:"quantity"` // weight in kg or piece count
}

// LineTotal returns the rounded amount for this line.
func (i CartItem) LineTotal() int64 {
	return LineTotal(i.Product.Price, i.Quantity)
}

// Sale represents a completed cash transaction. Sales are immutable once
// created; the ledger only ever appends.
type Sale struct {
	ID             string     `json:"id"`
	Items          []CartItem `json:"items"`
	Total          int64      `json:"total"`
	AmountReceived int64      `json:"amountReceived"`
	Change         int64      `json:"change"`
	EmployeeID     uint       `json:"employeeId"`
	EmployeeName   string     `json:"employeeName"`
	Date           string     `json:"date"`      // RFC3339, local wall clock
	Timestamp      int64      `json:"timestamp"` // epoch milliseconds, for sorting
}

// TicketNumber returns the short reference printed on receipts.
func (s *Sale) TicketNumber() string {
	id := s.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}
