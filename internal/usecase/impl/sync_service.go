// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "pristol/internal/delivery/context"
	"pristol/internal/domain/constants"
	"pristol/internal/domain/entity"
	domainerrors "pristol/internal/domain/errors"
	"pristol/internal/domain/normalizer"
	"pristol/internal/domain/repository"
	"pristol/internal/domain/service"
	"pristol/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// syncService implements the SyncUsecase interface. It is the single owner
// of the canonical in-memory collections; readers always see a consistent
// slice because replacements swap the slice reference under the lock rather
// than mutating in place.
type syncService struct {
	store  repository.Store
	events service.EventPublisher
	logger *slog.Logger

	mu       sync.RWMutex
	products []entity.Product
	orders   []entity.Order
	messages []entity.ContactMessage
	loading  bool
}

// NewSyncService is the constructor for syncService.
func NewSyncService(
	store repository.Store,
	events service.EventPublisher,
	logger *slog.Logger,
) usecase.SyncUsecase {
	return &syncService{
		store:   store,
		events:  events,
		logger:  logger,
		loading: true,
	}
}

// Refresh fetches all three collections concurrently and replaces the local
// state wholesale. A failed fetch is logged and leaves that collection's
// previous contents in place; the other fetches and the loading flag are
// unaffected.
func (srv *syncService) Refresh(ctx context.Context) {
	srv.setLoading(true)
	defer srv.setLoading(false)

	var wg sync.WaitGroup

	wg.Go(func() {
		if err := srv.fetchProducts(ctx); err != nil {
			srv.logger.Error("failed to fetch products", "error", err)
		}
	})
	wg.Go(func() {
		if err := srv.fetchOrders(ctx); err != nil {
			srv.logger.Error("failed to fetch orders", "error", err)
		}
	})
	wg.Go(func() {
		if err := srv.fetchMessages(ctx); err != nil {
			srv.logger.Error("failed to fetch messages", "error", err)
		}
	})

	wg.Wait()
}

func (srv *syncService) fetchProducts(ctx context.Context) error {
	docs, err := srv.store.List(ctx, constants.CollectionProducts, constants.FieldCreatedAt, repository.Descending)
	if err != nil {
		return errors.Wrap(err, "list products")
	}

	products := make([]entity.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, normalizer.Product(doc.ID, doc.Data))
	}

	srv.mu.Lock()
	srv.products = products
	srv.mu.Unlock()

	return nil
}

func (srv *syncService) fetchOrders(ctx context.Context) error {
	docs, err := srv.store.List(ctx, constants.CollectionOrders, constants.FieldCreatedAt, repository.Descending)
	if err != nil {
		return errors.Wrap(err, "list orders")
	}

	srv.replaceOrders(docs)

	return nil
}

func (srv *syncService) fetchMessages(ctx context.Context) error {
	docs, err := srv.store.List(ctx, constants.CollectionMessages, constants.FieldCreatedAt, repository.Descending)
	if err != nil {
		return errors.Wrap(err, "list messages")
	}

	messages := make([]entity.ContactMessage, 0, len(docs))
	for _, doc := range docs {
		messages = append(messages, normalizer.Message(doc.ID, doc.Data))
	}

	srv.mu.Lock()
	srv.messages = messages
	srv.mu.Unlock()

	return nil
}

// replaceOrders normalizes a full document listing and swaps it in as the
// new order collection.
func (srv *syncService) replaceOrders(docs []repository.Document) {
	orders := make([]entity.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, normalizer.Order(doc.ID, doc.Data))
	}

	srv.mu.Lock()
	srv.orders = orders
	srv.mu.Unlock()
}

// WatchOrders subscribes to the order collection. Every pushed snapshot
// replaces the local orders wholesale and clears the loading flag.
func (srv *syncService) WatchOrders(ctx context.Context) (func(), error) {
	stop, err := srv.store.Subscribe(ctx, constants.CollectionOrders, constants.FieldCreatedAt, repository.Descending,
		func(docs []repository.Document) {
			srv.replaceOrders(docs)
			srv.setLoading(false)
		})
	if err != nil {
		return nil, errors.Wrap(err, "subscribe to orders")
	}

	srv.logger.Info("watching order collection")

	return stop, nil
}

// AddProduct writes the product through to the store, then prepends an
// optimistic local record. The local creation time is the client clock and
// may differ slightly from the value the store recorded.
func (srv *syncService) AddProduct(ctx context.Context, input *usecase.AddProductInput) (*entity.Product, error) {
	createdAt := time.Now().UnixMilli()

	id, err := srv.store.Create(ctx, constants.CollectionProducts, map[string]any{
		"name":          input.Name,
		"description":   input.Description,
		"price":         input.Price,
		"originalPrice": input.OriginalPrice,
		"imageUrl":      input.ImageURL,
		"category":      input.Category,
		"stock":         input.Stock,
		"rating":        input.Rating,
		"discount":      input.Discount,
		"isNew":         input.IsNew,
		"createdAt":     createdAt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create product")
	}

	product := entity.Product{
		ID:            id,
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		ImageURL:      input.ImageURL,
		Category:      input.Category,
		Stock:         input.Stock,
		Rating:        input.Rating,
		Discount:      input.Discount,
		IsNew:         input.IsNew,
		CreatedAt:     createdAt,
	}

	srv.mu.Lock()
	srv.products = append([]entity.Product{product}, srv.products...)
	srv.mu.Unlock()

	srv.publish(ctx, service.EventProductCreated, constants.CollectionProducts, id)

	return &product, nil
}

// UpdateProduct shallow-merges the set fields of the patch into the remote
// document, then into the matching local record. Other records are untouched.
func (srv *syncService) UpdateProduct(ctx context.Context, id string, patch *usecase.ProductPatch) error {
	fields := productPatchFields(patch)
	if len(fields) == 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "empty product patch")
	}

	if err := srv.store.UpdateFields(ctx, constants.CollectionProducts, id, fields); err != nil {
		return errors.Wrap(err, "update product")
	}

	srv.mu.Lock()
	for i := range srv.products {
		if srv.products[i].ID == id {
			applyProductPatch(&srv.products[i], patch)

			break
		}
	}
	srv.mu.Unlock()

	srv.publish(ctx, service.EventProductUpdated, constants.CollectionProducts, id)

	return nil
}

// DeleteProduct deletes remotely first; on failure the local collection is
// left unchanged and the error propagates.
func (srv *syncService) DeleteProduct(ctx context.Context, id string) error {
	if err := srv.store.Delete(ctx, constants.CollectionProducts, id); err != nil {
		return errors.Wrap(err, "delete product")
	}

	srv.mu.Lock()
	srv.products = removeProduct(srv.products, id)
	srv.mu.Unlock()

	srv.publish(ctx, service.EventProductDeleted, constants.CollectionProducts, id)

	return nil
}

// UpdateOrderStatus validates the status at the write boundary; unknown
// states read from the store pass through, but they cannot be written.
func (srv *syncService) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	if !status.Valid() {
		return errors.Wrapf(domainerrors.ErrInvalidOrderStatus, "status %q", status)
	}

	if err := srv.store.UpdateFields(ctx, constants.CollectionOrders, id, map[string]any{"status": string(status)}); err != nil {
		return errors.Wrap(err, "update order status")
	}

	srv.mu.Lock()
	for i := range srv.orders {
		if srv.orders[i].ID == id {
			srv.orders[i].Status = status

			break
		}
	}
	srv.mu.Unlock()

	srv.publish(ctx, service.EventOrderStatusUpdated, constants.CollectionOrders, id)

	return nil
}

// UpdateMessageStatus sets the handling status. Transitions are not
// enforced; any known status can be set directly.
func (srv *syncService) UpdateMessageStatus(ctx context.Context, id string, status entity.MessageStatus) error {
	if !status.Valid() {
		return errors.Wrapf(domainerrors.ErrInvalidMessageStatus, "status %q", status)
	}

	if err := srv.store.UpdateFields(ctx, constants.CollectionMessages, id, map[string]any{"status": string(status)}); err != nil {
		return errors.Wrap(err, "update message status")
	}

	srv.mu.Lock()
	for i := range srv.messages {
		if srv.messages[i].ID == id {
			srv.messages[i].Status = status

			break
		}
	}
	srv.mu.Unlock()

	srv.publish(ctx, service.EventMessageStatusUpdated, constants.CollectionMessages, id)

	return nil
}

// DeleteMessage deletes remotely first; on failure the local collection is
// left unchanged and the error propagates.
func (srv *syncService) DeleteMessage(ctx context.Context, id string) error {
	if err := srv.store.Delete(ctx, constants.CollectionMessages, id); err != nil {
		return errors.Wrap(err, "delete message")
	}

	srv.mu.Lock()
	messages := make([]entity.ContactMessage, 0, len(srv.messages))
	for _, m := range srv.messages {
		if m.ID != id {
			messages = append(messages, m)
		}
	}
	srv.messages = messages
	srv.mu.Unlock()

	srv.publish(ctx, service.EventMessageDeleted, constants.CollectionMessages, id)

	return nil
}

// Products returns a copy of the current product collection.
func (srv *syncService) Products() []entity.Product {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	out := make([]entity.Product, len(srv.products))
	copy(out, srv.products)

	return out
}

// Orders returns a copy of the current order collection.
func (srv *syncService) Orders() []entity.Order {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	out := make([]entity.Order, len(srv.orders))
	copy(out, srv.orders)

	return out
}

// Messages returns a copy of the current message collection.
func (srv *syncService) Messages() []entity.ContactMessage {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	out := make([]entity.ContactMessage, len(srv.messages))
	copy(out, srv.messages)

	return out
}

// Loading reports whether initial data is still in flight.
func (srv *syncService) Loading() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.loading
}

func (srv *syncService) setLoading(loading bool) {
	srv.mu.Lock()
	srv.loading = loading
	srv.mu.Unlock()
}

// publish emits a mutation event, best effort. A publish failure never fails
// the mutation that triggered it.
func (srv *syncService) publish(ctx context.Context, kind, collection, documentID string) {
	event := &service.MutationEvent{
		EventID:    uuid.New().String(),
		Kind:       kind,
		Collection: collection,
		DocumentID: documentID,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: time.Now().UnixMilli(),
	}

	if err := srv.events.PublishMutationEvent(ctx, event); err != nil {
		srv.logger.Error("failed to publish mutation event",
			slog.String("kind", kind),
			slog.String("document_id", documentID),
			slog.Any("error", err),
		)
	}
}

func productPatchFields(patch *usecase.ProductPatch) map[string]any {
	fields := make(map[string]any)
	if patch == nil {
		return fields
	}

	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Price != nil {
		fields["price"] = *patch.Price
	}
	if patch.OriginalPrice != nil {
		fields["originalPrice"] = *patch.OriginalPrice
	}
	if patch.ImageURL != nil {
		fields["imageUrl"] = *patch.ImageURL
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}
	if patch.Stock != nil {
		fields["stock"] = *patch.Stock
	}
	if patch.Rating != nil {
		fields["rating"] = *patch.Rating
	}
	if patch.Discount != nil {
		fields["discount"] = *patch.Discount
	}
	if patch.IsNew != nil {
		fields["isNew"] = *patch.IsNew
	}

	return fields
}

func applyProductPatch(product *entity.Product, patch *usecase.ProductPatch) {
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.OriginalPrice != nil {
		product.OriginalPrice = *patch.OriginalPrice
	}
	if patch.ImageURL != nil {
		product.ImageURL = *patch.ImageURL
	}
	if patch.Category != nil {
		product.Category = *patch.Category
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if patch.Rating != nil {
		product.Rating = *patch.Rating
	}
	if patch.Discount != nil {
		product.Discount = *patch.Discount
	}
	if patch.IsNew != nil {
		product.IsNew = *patch.IsNew
	}
}

func removeProduct(products []entity.Product, id string) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			out = append(out, p)
		}
	}

	return out
}
