package usecase

import "pristol/internal/domain/entity"

// CatalogUsecase provides the read-side projections over the product
// collection. Results are recomputed from current state on every call.
type CatalogUsecase interface {
	// FilterProducts returns products whose name or description contains the
	// search term (case-insensitive) and whose category matches. Empty search
	// and the "all" category match everything.
	FilterProducts(search, category string) []entity.Product

	// Categories returns the distinct product categories with "all" first.
	Categories() []string

	// ProductByID returns the product or ErrProductNotFound.
	ProductByID(id string) (*entity.Product, error)

	// LowStockCount counts products below the low-stock threshold.
	LowStockCount() int
}
