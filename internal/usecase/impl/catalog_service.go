package impl

import (
	"log/slog"
	"strings"

	"pristol/internal/domain/constants"
	"pristol/internal/domain/entity"
	domainerrors "pristol/internal/domain/errors"
	"pristol/internal/usecase"
)

// catalogService implements the CatalogUsecase interface as pure projections
// over the synchronized product collection.
type catalogService struct {
	sync   usecase.SyncUsecase
	logger *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(sync usecase.SyncUsecase, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		sync:   sync,
		logger: logger,
	}
}

// FilterProducts applies the search and category filters. Search matches
// name or description, case-insensitive.
func (srv *catalogService) FilterProducts(search, category string) []entity.Product {
	needle := strings.ToLower(search)

	products := srv.sync.Products()
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		matchesSearch := needle == "" ||
			strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle)
		matchesCategory := category == "" ||
			category == constants.CategoryAll ||
			p.Category == category

		if matchesSearch && matchesCategory {
			out = append(out, p)
		}
	}

	return out
}

// Categories returns "all" followed by the distinct categories in collection
// order.
func (srv *catalogService) Categories() []string {
	categories := []string{constants.CategoryAll}
	seen := map[string]bool{constants.CategoryAll: true}

	for _, p := range srv.sync.Products() {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}

	return categories
}

// ProductByID returns the product or ErrProductNotFound.
func (srv *catalogService) ProductByID(id string) (*entity.Product, error) {
	for _, p := range srv.sync.Products() {
		if p.ID == id {
			return &p, nil
		}
	}

	return nil, domainerrors.ErrProductNotFound
}

// LowStockCount counts products with stock below the fixed threshold.
func (srv *catalogService) LowStockCount() int {
	count := 0
	for _, p := range srv.sync.Products() {
		if p.Stock < constants.LowStockThreshold {
			count++
		}
	}

	return count
}
