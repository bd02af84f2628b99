package services

import (
	"BoucheriePos/app/data"
	"BoucheriePos/app/models"
)

// CatalogService serves the fixed product catalog to the sales screen.
// Read-only: the catalog never changes at runtime.
type CatalogService struct {
	products []models.Product
}

// NewCatalogService creates a new catalog service
func NewCatalogService() *CatalogService {
	return &CatalogService{
		products: data.Products(),
	}
}

// GetProducts returns the full catalog.
func (s *CatalogService) GetProducts() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetProductsByCategory filters the catalog by category. The "Tous"
// pseudo-category returns everything.
func (s *CatalogService) GetProductsByCategory(category string) []models.Product {
	if category == "" || category == models.CategoryAll {
		return s.GetProducts()
	}
	var out []models.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// GetProduct looks a product up by id.
func (s *CatalogService) GetProduct(id uint) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// GetCategories returns the category tabs of the sales screen, the
// "Tous" filter first.
func (s *CatalogService) GetCategories() []string {
	return []string{
		models.CategoryAll,
		models.CategoryBeef,
		models.CategoryPoultry,
		models.CategoryOther,
	}
}
