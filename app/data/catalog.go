package data

import (
	"BoucheriePos/app/models"
)

// products is the fixed catalog of the counter. It is loaded once at
// compile time and never mutated; accessors hand out copies.
var products = []models.Product{
	// Bœuf
	{ID: 1, Name: "Viande de bœuf", Price: 1500, Unit: models.UnitKg, Category: models.CategoryBeef, Image: "/images/products/beef.png"},
	{ID: 2, Name: "Côtes de bœuf", Price: 1800, Unit: models.UnitKg, Category: models.CategoryBeef, Image: "/images/products/beef.png"},
	{ID: 3, Name: "Foie de bœuf", Price: 1200, Unit: models.UnitKg, Category: models.CategoryBeef, Image: "/images/products/beef.png"},
	{ID: 4, Name: "Rognons de bœuf", Price: 1000, Unit: models.UnitKg, Category: models.CategoryBeef, Image: "/images/products/beef.png"},
	{ID: 5, Name: "Tripes de bœuf", Price: 800, Unit: models.UnitKg, Category: models.CategoryBeef, Image: "/images/products/beef.png"},
	{ID: 6, Name: "Queue de bœuf", Price: 1600, Unit: models.UnitKg, Category: models.CategoryBeef, Image: "/images/products/beef.png"},

	// Poulet
	{ID: 7, Name: "Cuisse de poulet", Price: 750, Unit: models.UnitPiece, Category: models.CategoryPoultry, Image: "/images/products/chicken.png"},
	{ID: 8, Name: "Poulet entier", Price: 3500, Unit: models.UnitPiece, Category: models.CategoryPoultry, Image: "/images/products/chicken.png"},
	{ID: 9, Name: "Ailes de poulet", Price: 500, Unit: models.UnitPiece, Category: models.CategoryPoultry, Image: "/images/products/chicken.png"},
	{ID: 10, Name: "Blanc de poulet", Price: 600, Unit: models.UnitPiece, Category: models.CategoryPoultry, Image: "/images/products/chicken.png"},
	{ID: 11, Name: "Gésiers de poulet", Price: 400, Unit: models.UnitPiece, Category: models.CategoryPoultry, Image: "/images/products/chicken.png"},

	// Autres
	{ID: 12, Name: "Viande de mouton", Price: 2000, Unit: models.UnitKg, Category: models.CategoryOther, Image: "/images/products/beef.png"},
	{ID: 13, Name: "Viande de chèvre", Price: 1800, Unit: models.UnitKg, Category: models.CategoryOther, Image: "/images/products/beef.png"},
	{ID: 14, Name: "Saucisses", Price: 1200, Unit: models.UnitKg, Category: models.CategoryOther, Image: "/images/products/sausages.png"},
	{ID: 15, Name: "Merguez", Price: 1400, Unit: models.UnitKg, Category: models.CategoryOther, Image: "/images/products/sausages.png"},
}

// employees is the staff directory. Fixed list, edited with the source
// when staff changes.
var employees = []models.Employee{
	{ID: 1, Name: "Aïcha", PIN: "1234"},
	{ID: 2, Name: "Moussa", PIN: "5678"},
	{ID: 3, Name: "Fatou", PIN: "4321"},
}

// Products returns a copy of the catalog.
func Products() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// Employees returns a copy of the staff directory.
func Employees() []models.Employee {
	out := make([]models.Employee, len(employees))
	copy(out, employees)
	return out
}
