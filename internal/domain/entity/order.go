package entity

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

// Order fulfillment states. Pending is the initial state.
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known fulfillment states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}

	return false
}

// PaymentStatus is the payment state of an order. Unpaid is the initial state.
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Valid reports whether the status is one of the known payment states.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusUnpaid, PaymentStatusRefunded:
		return true
	}

	return false
}

// OrderItem is a single line item on an order.
type OrderItem struct {
	ProductID string  `json:"productId"` // Reference to the ordered product, synthesized when missing.
	Name      string  `json:"name"`      // Display name captured at order time.
	Price     float64 `json:"price"`     // Unit price at order time, never negative.
	Quantity  int     `json:"quantity"`  // Ordered quantity, always at least 1.
	ImageURL  string  `json:"imageUrl"`  // Optional product image reference.
}

// Order is the canonical, fully populated order record. Orders arrive from the
// store in several historical shapes; the normalizer guarantees every field
// below is populated and the legacy alias pairs (CustomerName/FullName,
// CustomerEmail/Email, CustomerPhone/Phone, TotalAmount/Total,
// CreatedAt/OrderDate) hold equal values.
type Order struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	CustomerPhone string        `json:"customerPhone"`
	FullName      string        `json:"fullName"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	PostalCode    string        `json:"postalCode"`
	Products      []OrderItem   `json:"products"`
	TotalAmount   float64       `json:"totalAmount"` // Authoritative order total, never negative.
	Total         float64       `json:"total"`       // Legacy alias of TotalAmount.
	Subtotal      float64       `json:"subtotal"`
	Shipping      float64       `json:"shipping"`
	Tax           float64       `json:"tax"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod string        `json:"paymentMethod"` // Free text, "N/A" when absent.
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	OrderType     string        `json:"orderType"`
	CreatedAt     int64         `json:"createdAt"` // Epoch milliseconds, always positive.
	OrderDate     int64         `json:"orderDate"` // Legacy alias of CreatedAt.
}
