package models

import (
	"github.com/shopspring/decimal"
)

// Unit of measure a product is sold by
const (
	UnitKg    = "kg"
	UnitPiece = "pièce"
)

// Product categories shown on the sales screen
const (
	CategoryAll     = "Tous"
	CategoryBeef    = "Bœuf"
	CategoryPoultry = "Poulet"
	CategoryOther   = "Autres"
)

// Product represents a sellable item from the catalog.
// Prices are in CFA francs, which have no fractional subdivision,
// so all money values in the system are plain integers.
type Product struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"` // per kg or per piece depending on Unit
	Unit     string `json:"unit"`  // "kg" or "pièce"
	Category string `json:"category"`
	Image    string `json:"image,omitempty"`
}

// LineTotal computes the amount charged for quantity units of a product
// priced at price, rounded half-up to the nearest franc. Every place that
// turns a price and a quantity into money must go through this function so
// the total quoted on screen is exactly the total recorded on the ticket.
func LineTotal(price int64, quantity float64) int64 {
	return decimal.NewFromInt(price).
		Mul(decimal.NewFromFloat(quantity)).
		Round(0).
		IntPart()
}
