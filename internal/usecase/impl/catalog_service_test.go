package impl

import (
	"context"
	"testing"

	"pristol/internal/domain/constants"
	domainerrors "pristol/internal/domain/errors"
	"pristol/internal/domain/repository"
	"pristol/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) usecase.CatalogUsecase {
	t.Helper()

	store := newFakeStore()
	store.seed(constants.CollectionProducts,
		repository.Document{ID: "p1", Data: map[string]any{"name": "Espresso Machine", "description": "Compact brewer", "category": "kitchen", "stock": 4}},
		repository.Document{ID: "p2", Data: map[string]any{"name": "Desk Lamp", "description": "Warm light", "category": "office", "stock": 25}},
		repository.Document{ID: "p3", Data: map[string]any{"name": "Notebook", "description": "Ruled paper for notes", "category": "office", "stock": 9}},
	)

	sync, _ := newTestSync(store)
	sync.Refresh(context.Background())

	return NewCatalogService(sync, discardLogger())
}

func TestCatalogService_FilterProducts(t *testing.T) {
	catalog := newTestCatalog(t)

	tests := []struct {
		name     string
		search   string
		category string
		wantIDs  []string
	}{
		{"no filters", "", "", []string{"p1", "p2", "p3"}},
		{"all category", "", "all", []string{"p1", "p2", "p3"}},
		{"category only", "", "office", []string{"p2", "p3"}},
		{"search name case-insensitive", "LAMP", "", []string{"p2"}},
		{"search description", "paper", "", []string{"p3"}},
		{"search and category", "notes", "office", []string{"p3"}},
		{"search excluded by category", "lamp", "kitchen", []string{}},
		{"no match", "teapot", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.FilterProducts(tt.search, tt.category)

			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}

func TestCatalogService_Categories(t *testing.T) {
	catalog := newTestCatalog(t)

	categories := catalog.Categories()
	require.NotEmpty(t, categories)
	assert.Equal(t, "all", categories[0], "the synthetic all category comes first")
	assert.Equal(t, []string{"all", "kitchen", "office"}, categories)
}

func TestCatalogService_ProductByID(t *testing.T) {
	catalog := newTestCatalog(t)

	product, err := catalog.ProductByID("p2")
	require.NoError(t, err)
	assert.Equal(t, "Desk Lamp", product.Name)

	_, err = catalog.ProductByID("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_LowStockCount(t *testing.T) {
	catalog := newTestCatalog(t)

	// p1 (4) and p3 (9) are below the threshold of 10.
	assert.Equal(t, 2, catalog.LowStockCount())
}
