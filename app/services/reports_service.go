package services

import (
	"math"
	"sort"
	"time"

	"BoucheriePos/app/models"
)

// Business hours of the counter, used for the hourly sales chart.
const (
	OpeningHour = 8
	ClosingHour = 20
)

// ProductSalesData represents aggregated sales of one product
type ProductSalesData struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity float64 `json:"quantity"`
	Revenue  int64   `json:"revenue"`
}

// CategorySalesData represents aggregated revenue of one category
type CategorySalesData struct {
	Category string `json:"category"`
	Revenue  int64  `json:"revenue"`
}

// HourlySalesData represents the sales total of one hour of the day
type HourlySalesData struct {
	Hour  int   `json:"hour"`
	Total int64 `json:"total"`
}

// DashboardStats represents the headline figures of the dashboard
type DashboardStats struct {
	TodayTotal      int64 `json:"today_total"`
	TodaySalesCount int   `json:"today_sales_count"`
	AverageTicket   int64 `json:"average_ticket"`
	LifetimeTotal   int64 `json:"lifetime_total"`
}

// TopProducts groups the lines of the given sales by product name, summing
// quantity and revenue, and returns up to limit products ranked by revenue.
// Pure: recomputable from any ledger snapshot.
func TopProducts(sales []models.Sale, limit int) []ProductSalesData {
	byName := make(map[string]*ProductSalesData)
	for _, sale := range sales {
		for _, item := range sale.Items {
			entry, ok := byName[item.Product.Name]
			if !ok {
				entry = &ProductSalesData{
					Name:     item.Product.Name,
					Category: item.Product.Category,
				}
				byName[item.Product.Name] = entry
			}
			entry.Quantity += item.Quantity
			entry.Revenue += item.LineTotal()
		}
	}

	out := make([]ProductSalesData, 0, len(byName))
	for _, entry := range byName {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CategoryRevenue sums revenue per product category across the given
// sales, ranked by revenue.
func CategoryRevenue(sales []models.Sale) []CategorySalesData {
	byCategory := make(map[string]int64)
	for _, sale := range sales {
		for _, item := range sale.Items {
			byCategory[item.Product.Category] += item.LineTotal()
		}
	}

	out := make([]CategorySalesData, 0, len(byCategory))
	for category, revenue := range byCategory {
		out = append(out, CategorySalesData{Category: category, Revenue: revenue})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// HourlySales buckets sale totals by local hour of day over the inclusive
// range [firstHour, lastHour]. Hours without sales report zero; sales
// outside the range are ignored.
func HourlySales(sales []models.Sale, firstHour, lastHour int) []HourlySalesData {
	totals := make(map[int]int64, lastHour-firstHour+1)
	for h := firstHour; h <= lastHour; h++ {
		totals[h] = 0
	}
	for _, sale := range sales {
		t, err := time.Parse(time.RFC3339, sale.Date)
		if err != nil {
			continue
		}
		if _, ok := totals[t.Hour()]; ok {
			totals[t.Hour()] += sale.Total
		}
	}

	out := make([]HourlySalesData, 0, len(totals))
	for h := firstHour; h <= lastHour; h++ {
		out = append(out, HourlySalesData{Hour: h, Total: totals[h]})
	}
	return out
}

// ReportsService exposes the dashboard aggregations over the live ledger.
// It reads through the sales service only and never caches results, so
// nothing here can diverge from the ledger.
type ReportsService struct {
	sales *SalesService
}

// NewReportsService creates a new reports service
func NewReportsService(sales *SalesService) *ReportsService {
	return &ReportsService{sales: sales}
}

// GetDashboardStats retrieves the headline figures for the dashboard
func (s *ReportsService) GetDashboardStats() *DashboardStats {
	today := s.sales.GetTodaySales()
	stats := &DashboardStats{
		TodaySalesCount: len(today),
	}
	for _, sale := range today {
		stats.TodayTotal += sale.Total
	}
	if len(today) > 0 {
		stats.AverageTicket = int64(math.Round(float64(stats.TodayTotal) / float64(len(today))))
	}
	for _, sale := range s.sales.GetSales() {
		stats.LifetimeTotal += sale.Total
	}
	return stats
}

// GetTopProducts ranks today's products by revenue
func (s *ReportsService) GetTopProducts(limit int) []ProductSalesData {
	return TopProducts(s.sales.GetTodaySales(), limit)
}

// GetCategoryRevenue aggregates today's revenue per category
func (s *ReportsService) GetCategoryRevenue() []CategorySalesData {
	return CategoryRevenue(s.sales.GetTodaySales())
}

// GetHourlySales buckets today's sales over business hours
func (s *ReportsService) GetHourlySales() []HourlySalesData {
	return HourlySales(s.sales.GetTodaySales(), OpeningHour, ClosingHour)
}
