package normalizer

import (
	"time"

	"pristol/internal/domain/entity"
)

// Product maps a raw product document into the canonical entity.Product.
// Products have a single historical shape, so this is an identity-style
// decoder: coerce types, clamp the numeric ranges, default the timestamp.
func Product(id string, raw map[string]any) entity.Product {
	createdAt := toMillis(raw["createdAt"])
	if createdAt == 0 {
		createdAt = time.Now().UnixMilli()
	}

	rating := toNumber(raw["rating"])
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}

	discount := toNumber(raw["discount"])
	if discount < 0 {
		discount = 0
	}
	if discount > 100 {
		discount = 100
	}

	stock := int(toNumber(raw["stock"]))
	if stock < 0 {
		stock = 0
	}

	isNew, _ := raw["isNew"].(bool)

	return entity.Product{
		ID:            id,
		Name:          toString(raw["name"]),
		Description:   toString(raw["description"]),
		Price:         toMoney(raw["price"]),
		OriginalPrice: toMoney(raw["originalPrice"]),
		ImageURL:      toString(raw["imageUrl"]),
		Category:      toString(raw["category"]),
		Stock:         stock,
		Rating:        rating,
		Discount:      discount,
		IsNew:         isNew,
		CreatedAt:     createdAt,
	}
}
