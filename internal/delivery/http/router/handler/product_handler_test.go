package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pristol/internal/delivery/http/validator"
	"pristol/internal/domain/entity"
	domainerrors "pristol/internal/domain/errors"
	"pristol/internal/infra/qrcode"
	"pristol/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSync implements usecase.SyncUsecase for handler tests.
type stubSync struct {
	products []entity.Product
	added    *usecase.AddProductInput
}

func (s *stubSync) Refresh(ctx context.Context)                        {}
func (s *stubSync) Loading() bool                                      { return false }
func (s *stubSync) Products() []entity.Product                         { return s.products }
func (s *stubSync) Orders() []entity.Order                             { return nil }
func (s *stubSync) Messages() []entity.ContactMessage                  { return nil }
func (s *stubSync) DeleteProduct(ctx context.Context, id string) error { return nil }
func (s *stubSync) DeleteMessage(ctx context.Context, id string) error { return nil }

func (s *stubSync) AddProduct(ctx context.Context, input *usecase.AddProductInput) (*entity.Product, error) {
	s.added = input

	return &entity.Product{ID: "gen-1", Name: input.Name}, nil
}

func (s *stubSync) UpdateProduct(ctx context.Context, id string, patch *usecase.ProductPatch) error {
	return nil
}

func (s *stubSync) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	return nil
}

func (s *stubSync) UpdateMessageStatus(ctx context.Context, id string, status entity.MessageStatus) error {
	return nil
}

func (s *stubSync) WatchOrders(ctx context.Context) (func(), error) { return func() {}, nil }

// stubCatalog implements usecase.CatalogUsecase over a fixed product list.
type stubCatalog struct {
	products []entity.Product
}

func (s *stubCatalog) FilterProducts(search, category string) []entity.Product { return s.products }
func (s *stubCatalog) Categories() []string                                    { return []string{"all"} }
func (s *stubCatalog) LowStockCount() int                                      { return 0 }

func (s *stubCatalog) ProductByID(id string) (*entity.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}

	return nil, domainerrors.ErrProductNotFound
}

func newTestProductHandler(products []entity.Product) (*ProductHandler, *stubSync) {
	sync := &stubSync{products: products}
	catalog := &stubCatalog{products: products}
	qrSvc := qrcode.NewQRCodeService(128, "M", "https://shop.example.com")

	return NewProductHandler(sync, catalog, qrSvc, slog.Default()), sync
}

func newTestContext(e *echo.Echo, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestProductHandler_ListProducts(t *testing.T) {
	handler, _ := newTestProductHandler([]entity.Product{
		{ID: "p1", Name: "Coffee"},
		{ID: "p2", Name: "Tea"},
	})

	e := echo.New()
	c, rec := newTestContext(e, http.MethodGet, "/admin/products", "")

	require.NoError(t, handler.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Coffee")
	assert.Contains(t, rec.Body.String(), "Tea")
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	handler, _ := newTestProductHandler(nil)

	e := echo.New()
	c, _ := newTestContext(e, http.MethodGet, "/admin/products/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.GetProduct(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductHandler_CreateProduct(t *testing.T) {
	handler, sync := newTestProductHandler(nil)

	e := echo.New()
	e.Validator = validator.New()
	body := `{"name":"Mug","price":15,"imageUrl":"https://cdn.example.com/mug.png","category":"kitchen","stock":7}`
	c, rec := newTestContext(e, http.MethodPost, "/admin/products", body)

	require.NoError(t, handler.CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, sync.added)
	assert.Equal(t, "Mug", sync.added.Name)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "gen-1", envelope.Data.ID)
}

func TestProductHandler_CreateProduct_ValidationFailure(t *testing.T) {
	handler, sync := newTestProductHandler(nil)

	e := echo.New()
	e.Validator = validator.New()
	// Missing required name and imageUrl.
	c, _ := newTestContext(e, http.MethodPost, "/admin/products", `{"price":15}`)

	err := handler.CreateProduct(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Nil(t, sync.added)
}

func TestProductHandler_ProductQRCode(t *testing.T) {
	handler, _ := newTestProductHandler([]entity.Product{{ID: "p1", Name: "Coffee"}})

	e := echo.New()
	c, rec := newTestContext(e, http.MethodGet, "/admin/products/p1/qrcode", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, handler.ProductQRCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, byte(0x89), rec.Body.Bytes()[0])
}
