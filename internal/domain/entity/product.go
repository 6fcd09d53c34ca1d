// Package entity contains the core business objects of the project.
package entity

// Product represents a catalog item managed through the admin dashboard.
type Product struct {
	ID            string  `json:"id"`            // The store-assigned document identifier.
	Name          string  `json:"name"`          // Display name shown in the storefront and admin tables.
	Description   string  `json:"description"`   // Free-text product description.
	Price         float64 `json:"price"`         // Current unit price, never negative.
	OriginalPrice float64 `json:"originalPrice,omitempty"` // Pre-discount price, used for strikethrough display.
	ImageURL      string  `json:"imageUrl"`      // Publicly addressable product image.
	Category      string  `json:"category"`      // Free-text category label.
	Stock         int     `json:"stock"`         // Units on hand, never negative.
	Rating        float64 `json:"rating"`        // Customer rating, 0 to 5.
	Discount      float64 `json:"discount,omitempty"` // Discount percentage, 0 to 100.
	IsNew         bool    `json:"isNew,omitempty"`    // Marks recently added products in the storefront.
	CreatedAt     int64   `json:"createdAt"`     // Creation time in epoch milliseconds.
}
