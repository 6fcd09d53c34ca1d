package normalizer

import (
	"fmt"
	"time"

	"pristol/internal/domain/entity"
)

// Order maps a raw order document into the canonical entity.Order. Orders
// written by different storefront revisions disagree on field names
// (customerName vs fullName, totalAmount vs total, products vs items,
// createdAt vs orderDate); both spellings are read and both alias fields end
// up populated with the same value.
//
// Status-like fields are defaulted when empty but otherwise passed through
// unchanged, so a record read from the store survives a read-modify-write
// cycle byte for byte. Writes validate against the enums instead.
func Order(id string, raw map[string]any) entity.Order {
	name := firstNonEmpty(toString(raw["customerName"]), toString(raw["fullName"]))
	email := firstNonEmpty(toString(raw["customerEmail"]), toString(raw["email"]))
	phone := firstNonEmpty(toString(raw["customerPhone"]), toString(raw["phone"]))

	// totalAmount is authoritative when both spellings are present and non-zero.
	total := toMoney(raw["totalAmount"])
	if total == 0 {
		total = toMoney(raw["total"])
	}

	createdAt := toMillis(raw["createdAt"])
	if createdAt == 0 {
		createdAt = toMillis(raw["orderDate"])
	}
	if createdAt == 0 {
		createdAt = time.Now().UnixMilli()
	}

	return entity.Order{
		ID:            id,
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: phone,
		FullName:      name,
		Email:         email,
		Phone:         phone,
		Address:       toString(raw["address"]),
		City:          toString(raw["city"]),
		PostalCode:    toString(raw["postalCode"]),
		Products:      orderItems(raw),
		TotalAmount:   total,
		Total:         total,
		Subtotal:      toMoney(raw["subtotal"]),
		Shipping:      toMoney(raw["shipping"]),
		Tax:           toMoney(raw["tax"]),
		Status:        entity.OrderStatus(firstNonEmpty(toString(raw["status"]), string(entity.OrderStatusPending))),
		PaymentMethod: firstNonEmpty(toString(raw["paymentMethod"]), "N/A"),
		PaymentStatus: entity.PaymentStatus(firstNonEmpty(toString(raw["paymentStatus"]), string(entity.PaymentStatusUnpaid))),
		OrderType:     firstNonEmpty(toString(raw["orderType"]), "product"),
		CreatedAt:     createdAt,
		OrderDate:     createdAt,
	}
}

// orderItems reads the line items from the primary "products" field, falling
// back to the legacy "items" field when the primary is absent or not a
// sequence.
func orderItems(raw map[string]any) []entity.OrderItem {
	rawItems, ok := raw["products"].([]any)
	if !ok {
		rawItems, _ = raw["items"].([]any)
	}

	items := make([]entity.OrderItem, 0, len(rawItems))
	for index, rawItem := range rawItems {
		fields, _ := rawItem.(map[string]any)

		quantity := int(toNumber(fields["quantity"]))
		if quantity < 1 {
			quantity = 1
		}

		items = append(items, entity.OrderItem{
			ProductID: firstNonEmpty(toString(fields["productId"]), fmt.Sprintf("unknown-%d", index)),
			Name:      firstNonEmpty(toString(fields["name"]), "Unnamed Product"),
			Price:     toMoney(fields["price"]),
			Quantity:  quantity,
			ImageURL:  toString(fields["imageUrl"]),
		})
	}

	return items
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
