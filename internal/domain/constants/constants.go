// Package constants holds shared domain-level constants.
package constants

// Firestore collection names. The contact message collection appeared as both
// "messages" and "contactMessages" in earlier revisions of the storefront;
// "messages" is the canonical name and the only one supported.
const (
	CollectionProducts = "products"
	CollectionOrders   = "orders"
	CollectionMessages = "messages"
)

// FieldCreatedAt is the document field all collections are ordered by.
const FieldCreatedAt = "createdAt"

// CategoryAll is the wildcard value accepted by category and status filters.
const CategoryAll = "all"

// LowStockThreshold is the stock level below which a product counts as low
// stock on the dashboard.
const LowStockThreshold = 10

// Pub/Sub provider names.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// RoleAdmin is the role required for all dashboard operations.
const RoleAdmin = "admin"
