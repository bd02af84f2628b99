package database

import (
	"path/filepath"
	"testing"
	"time"

	"BoucheriePos/app/models"
)

func openTestDB(t *testing.T) *LocalDB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "boucherie.db")
	if err := InitializeLocalDB(dbPath); err != nil {
		t.Fatalf("InitializeLocalDB() error = %v", err)
	}
	db := GetLocalDB()
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleSales() []models.Sale {
	base := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.Local)
	mk := func(id string, offset time.Duration, total int64) models.Sale {
		ts := base.Add(offset)
		return models.Sale{
			ID: id,
			Items: []models.CartItem{
				{
					Product:  models.Product{ID: 1, Name: "Viande de bœuf", Price: 1500, Unit: models.UnitKg, Category: models.CategoryBeef},
					Quantity: float64(total) / 1500,
				},
			},
			Total:          total,
			AmountReceived: total + 500,
			Change:         500,
			EmployeeID:     1,
			EmployeeName:   "Aïcha",
			Date:           ts.Format(time.RFC3339),
			Timestamp:      ts.UnixMilli(),
		}
	}
	// Stored newest first, like the in-memory ledger.
	return []models.Sale{
		mk("sale-3", 2*time.Hour, 4500),
		mk("sale-2", time.Hour, 3000),
		mk("sale-1", 0, 1500),
	}
}

func TestLocalDBFreshDatabaseIsEmpty(t *testing.T) {
	db := openTestDB(t)
	sales, err := db.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(sales) != 0 {
		t.Errorf("Load() on fresh database = %+v, want empty", sales)
	}
}

func TestLocalDBSaveLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)
	want := sampleSales()

	if err := db.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := db.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("len(Load()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Errorf("Load()[%d].ID = %s, want %s (newest first)", i, got[i].ID, want[i].ID)
		}
		if got[i].Total != want[i].Total ||
			got[i].AmountReceived != want[i].AmountReceived ||
			got[i].Change != want[i].Change ||
			got[i].EmployeeID != want[i].EmployeeID ||
			got[i].EmployeeName != want[i].EmployeeName ||
			got[i].Date != want[i].Date ||
			got[i].Timestamp != want[i].Timestamp {
			t.Errorf("Load()[%d] = %+v, want %+v", i, got[i], want[i])
		}
		if len(got[i].Items) != 1 || got[i].Items[0].Product != want[i].Items[0].Product {
			t.Errorf("Load()[%d].Items = %+v, want embedded product snapshot %+v", i, got[i].Items, want[i].Items)
		}
	}
}

func TestLocalDBSaveIsIdempotentRewrite(t *testing.T) {
	db := openTestDB(t)
	sales := sampleSales()

	if err := db.Save(sales); err != nil {
		t.Fatal(err)
	}
	if err := db.Save(sales); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, err := db.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(sales) {
		t.Errorf("len(Load()) after double save = %d, want %d", len(got), len(sales))
	}
}

func TestLocalDBLoadSkipsCorruptRows(t *testing.T) {
	db := openTestDB(t)
	if err := db.Save(sampleSales()[:1]); err != nil {
		t.Fatal(err)
	}

	corrupt := SaleRecord{SaleID: "broken", SaleData: "{not json", Timestamp: 99}
	if err := db.db.Create(&corrupt).Error; err != nil {
		t.Fatal(err)
	}

	got, err := db.Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want corrupt rows skipped", err)
	}
	if len(got) != 1 || got[0].ID != "sale-3" {
		t.Errorf("Load() = %+v, want only the valid sale", got)
	}
}
