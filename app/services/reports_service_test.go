package services

import (
	"testing"
	"time"

	"BoucheriePos/app/models"
)

func saleAt(hour int, items ...models.CartItem) models.Sale {
	var total int64
	for _, item := range items {
		total += item.LineTotal()
	}
	date := time.Date(2026, time.August, 30, hour, 15, 0, 0, time.Local)
	return models.Sale{
		ID:        "sale-" + date.Format("15-04"),
		Items:     items,
		Total:     total,
		Date:      date.Format(time.RFC3339),
		Timestamp: date.UnixMilli(),
	}
}

func TestTopProducts(t *testing.T) {
	sales := []models.Sale{
		saleAt(9,
			models.CartItem{Product: beef, Quantity: 2.0}, // 3000
			models.CartItem{Product: hen, Quantity: 1},    // 3500
		),
		saleAt(11,
			models.CartItem{Product: beef, Quantity: 1.0}, // 1500
			models.CartItem{Product: ribs, Quantity: 0.5}, // 900
		),
	}

	got := TopProducts(sales, 0)
	want := []ProductSalesData{
		{Name: "Viande de bœuf", Category: models.CategoryBeef, Quantity: 3.0, Revenue: 4500},
		{Name: "Poulet entier", Category: models.CategoryPoultry, Quantity: 1, Revenue: 3500},
		{Name: "Côtes de bœuf", Category: models.CategoryBeef, Quantity: 0.5, Revenue: 900},
	}

	if len(got) != len(want) {
		t.Fatalf("len(TopProducts()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TopProducts()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if limited := TopProducts(sales, 2); len(limited) != 2 || limited[0].Name != "Viande de bœuf" {
		t.Errorf("TopProducts(limit=2) = %+v, want the top 2 by revenue", limited)
	}

	if empty := TopProducts(nil, 6); len(empty) != 0 {
		t.Errorf("TopProducts(nil) = %+v, want empty", empty)
	}
}

func TestCategoryRevenue(t *testing.T) {
	sales := []models.Sale{
		saleAt(9,
			models.CartItem{Product: beef, Quantity: 1.0}, // Bœuf 1500
			models.CartItem{Product: hen, Quantity: 2},    // Poulet 7000
		),
		saleAt(15,
			models.CartItem{Product: ribs, Quantity: 1.0}, // Bœuf 1800
		),
	}

	got := CategoryRevenue(sales)
	want := []CategorySalesData{
		{Category: models.CategoryPoultry, Revenue: 7000},
		{Category: models.CategoryBeef, Revenue: 3300},
	}

	if len(got) != len(want) {
		t.Fatalf("len(CategoryRevenue()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CategoryRevenue()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestHourlySales(t *testing.T) {
	sales := []models.Sale{
		saleAt(9, models.CartItem{Product: beef, Quantity: 1.0}),  // 1500
		saleAt(9, models.CartItem{Product: hen, Quantity: 1}),     // 3500
		saleAt(18, models.CartItem{Product: ribs, Quantity: 1.0}), // 1800
		saleAt(22, models.CartItem{Product: beef, Quantity: 1.0}), // outside range
	}

	got := HourlySales(sales, OpeningHour, ClosingHour)
	if len(got) != ClosingHour-OpeningHour+1 {
		t.Fatalf("len(HourlySales()) = %d, want %d buckets", len(got), ClosingHour-OpeningHour+1)
	}

	totals := make(map[int]int64)
	for _, bucket := range got {
		totals[bucket.Hour] = bucket.Total
	}
	if totals[9] != 5000 {
		t.Errorf("hour 9 total = %d, want 5000", totals[9])
	}
	if totals[18] != 1800 {
		t.Errorf("hour 18 total = %d, want 1800", totals[18])
	}
	// Hours without sales report zero, not absence.
	if total, ok := totals[12]; !ok || total != 0 {
		t.Errorf("hour 12 total = %d (present=%v), want explicit 0", total, ok)
	}
	if _, ok := totals[22]; ok {
		t.Error("hour 22 bucket present, want range capped at closing hour")
	}
}

func TestReportsDoNotMutateLedger(t *testing.T) {
	cart, salesSvc := newTestSales(t, &memStore{})
	cart.AddToCart(beef, 2.0)
	if _, err := salesSvc.CompleteSale(3000, 1, "Aïcha"); err != nil {
		t.Fatal(err)
	}

	before := salesSvc.GetSales()[0]

	reports := NewReportsService(salesSvc)
	reports.GetDashboardStats()
	reports.GetTopProducts(6)
	reports.GetCategoryRevenue()
	reports.GetHourlySales()

	after := salesSvc.GetSales()[0]
	if after.ID != before.ID || after.Total != before.Total ||
		len(after.Items) != len(before.Items) || after.Items[0].Quantity != before.Items[0].Quantity {
		t.Errorf("ledger sale changed by reporting: before=%+v after=%+v", before, after)
	}
}

func TestGetDashboardStats(t *testing.T) {
	cart, salesSvc := newTestSales(t, &memStore{})

	// Yesterday's sale counts in the lifetime total only.
	yesterday := time.Date(2026, time.August, 29, 17, 0, 0, 0, time.Local)
	today := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.Local)

	salesSvc.now = func() time.Time { return yesterday }
	cart.AddToCart(hen, 1)
	if _, err := salesSvc.CompleteSale(3500, 1, "Aïcha"); err != nil {
		t.Fatal(err)
	}

	salesSvc.now = func() time.Time { return today }
	cart.AddToCart(beef, 1.0)
	if _, err := salesSvc.CompleteSale(1500, 1, "Aïcha"); err != nil {
		t.Fatal(err)
	}
	cart.AddToCart(ribs, 1.0)
	if _, err := salesSvc.CompleteSale(2000, 2, "Moussa"); err != nil {
		t.Fatal(err)
	}

	stats := NewReportsService(salesSvc).GetDashboardStats()
	if stats.TodaySalesCount != 2 {
		t.Errorf("TodaySalesCount = %d, want 2", stats.TodaySalesCount)
	}
	if stats.TodayTotal != 3300 {
		t.Errorf("TodayTotal = %d, want 3300", stats.TodayTotal)
	}
	if stats.AverageTicket != 1650 {
		t.Errorf("AverageTicket = %d, want 1650", stats.AverageTicket)
	}
	if stats.LifetimeTotal != 6800 {
		t.Errorf("LifetimeTotal = %d, want 6800", stats.LifetimeTotal)
	}
}
