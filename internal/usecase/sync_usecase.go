// Package usecase defines the application-level interfaces and their
// input/output types.
package usecase

import (
	"context"

	"pristol/internal/domain/entity"
)

// AddProductInput carries the fields of a new catalog product. The store
// assigns the identifier and the service stamps the creation time.
type AddProductInput struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"gte=0"`
	OriginalPrice float64 `json:"originalPrice" validate:"gte=0"`
	ImageURL      string  `json:"imageUrl" validate:"required"`
	Category      string  `json:"category" validate:"required"`
	Stock         int     `json:"stock" validate:"gte=0"`
	Rating        float64 `json:"rating" validate:"gte=0,lte=5"`
	Discount      float64 `json:"discount" validate:"gte=0,lte=100"`
	IsNew         bool    `json:"isNew"`
}

// ProductPatch is a partial product update. Nil fields are left untouched,
// both remotely and in the local collection.
type ProductPatch struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	OriginalPrice *float64 `json:"originalPrice" validate:"omitempty,gte=0"`
	ImageURL      *string  `json:"imageUrl"`
	Category      *string  `json:"category"`
	Stock         *int     `json:"stock" validate:"omitempty,gte=0"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Discount      *float64 `json:"discount" validate:"omitempty,gte=0,lte=100"`
	IsNew         *bool    `json:"isNew"`
}

// SyncUsecase owns the canonical in-memory collections and keeps them
// consistent with the remote store. It is the only component allowed to
// mutate them: every write goes through the store first, and local state is
// only touched after the remote write succeeds.
type SyncUsecase interface {
	// Refresh re-fetches all three collections concurrently and replaces the
	// local state wholesale. Per-collection failures are logged and swallowed;
	// whatever loaded is kept.
	Refresh(ctx context.Context)

	// Loading reports whether a refresh or the initial subscription snapshot
	// is still in flight.
	Loading() bool

	// Products returns a copy of the current product collection, newest first.
	Products() []entity.Product

	// Orders returns a copy of the current order collection, newest first.
	Orders() []entity.Order

	// Messages returns a copy of the current message collection, newest first.
	Messages() []entity.ContactMessage

	// AddProduct writes the product through to the store and prepends the
	// resulting record to the local collection.
	AddProduct(ctx context.Context, input *AddProductInput) (*entity.Product, error)

	// UpdateProduct shallow-merges the set fields of the patch into the
	// remote document and the matching local record.
	UpdateProduct(ctx context.Context, id string, patch *ProductPatch) error

	// DeleteProduct removes the product remotely, then locally.
	DeleteProduct(ctx context.Context, id string) error

	// UpdateOrderStatus sets the fulfillment status of an order. The status
	// must be one of the known states.
	UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error

	// UpdateMessageStatus sets the handling status of a contact message.
	UpdateMessageStatus(ctx context.Context, id string, status entity.MessageStatus) error

	// DeleteMessage removes the message remotely, then locally.
	DeleteMessage(ctx context.Context, id string) error

	// WatchOrders subscribes to the order collection; every pushed snapshot
	// replaces the local orders wholesale. The returned stop function ends
	// the subscription.
	WatchOrders(ctx context.Context) (func(), error)
}
