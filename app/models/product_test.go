package models

import "testing"

func TestLineTotal(t *testing.T) {
	testCases := []struct {
		name     string
		price    int64
		quantity float64
		want     int64
	}{
		{name: "whole kilos", price: 1500, quantity: 2.0, want: 3000},
		{name: "single piece", price: 3500, quantity: 1, want: 3500},
		{name: "fractional weight", price: 1500, quantity: 1.25, want: 1875},
		{name: "rounds half up", price: 333, quantity: 0.5, want: 167},
		{name: "rounds down below half", price: 1000, quantity: 0.1234, want: 123},
		{name: "two decimal weight", price: 1800, quantity: 0.75, want: 1350},
		{name: "zero quantity", price: 1500, quantity: 0, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LineTotal(tc.price, tc.quantity); got != tc.want {
				t.Errorf("LineTotal(%d, %v) = %d, want %d", tc.price, tc.quantity, got, tc.want)
			}
		})
	}
}

func TestCartItemLineTotal(t *testing.T) {
	item := CartItem{
		Product:  Product{ID: 1, Name: "Viande de bœuf", Price: 1500, Unit: UnitKg, Category: CategoryBeef},
		Quantity: 2.5,
	}
	if got := item.LineTotal(); got != 3750 {
		t.Errorf("LineTotal() = %d, want 3750", got)
	}
}

func TestSaleTicketNumber(t *testing.T) {
	testCases := []struct {
		name string
		id   string
		want string
	}{
		{name: "uuid truncated and uppercased", id: "a1b2c3d4-e5f6-7890-abcd-ef1234567890", want: "A1B2C3D4"},
		{name: "short id kept whole", id: "ab12", want: "AB12"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sale := Sale{ID: tc.id}
			if got := sale.TicketNumber(); got != tc.want {
				t.Errorf("TicketNumber() = %q, want %q", got, tc.want)
			}
		})
	}
}
