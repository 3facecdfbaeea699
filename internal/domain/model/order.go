package model

import "time"

// OrderStatus describes order processing lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// ShipmentStatus describes delivery lifecycle.
type ShipmentStatus string

const (
	ShipmentStatusPending ShipmentStatus = "PENDING"
	ShipmentStatusShipped ShipmentStatus = "SHIPPED"
)

// PaymentMethodWebpay is the only payment method handled by this backend.
const PaymentMethodWebpay = "webpay"

// Order describes a purchase materialized from an authorized payment.
// BuyOrder is unique and serves as the idempotency key: a buy order
// confirmed twice resolves to the same row.
type Order struct {
	ID             string
	BuyOrder       string
	CustomerID     *int64
	PaymentMethod  string
	OrderStatus    OrderStatus
	ShipmentStatus ShipmentStatus
	CreatedAt      time.Time
	Lines          []OrderLine
}

// OrderLine describes a single product position within an order.
type OrderLine struct {
	ProductID int64
	Quantity  int
	UnitPrice int64
	Subtotal  int64
}
