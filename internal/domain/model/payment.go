package model

import "time"

// CartItem is a product position staged with a pending transaction.
type CartItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unit_price"`
}

// PendingTransaction is the durable staging record of an in-flight payment
// attempt, kept between initiate and confirm. UserID is nil for guest checkout.
type PendingTransaction struct {
	BuyOrder  string
	SessionID string
	Amount    int64
	Items     []CartItem
	UserID    *int64
	CreatedAt time.Time
}

// GatewayStatus enumerates transaction states reported by the payment gateway.
type GatewayStatus string

const (
	GatewayStatusInitialized GatewayStatus = "INITIALIZED"
	GatewayStatusAuthorized  GatewayStatus = "AUTHORIZED"
	GatewayStatusRejected    GatewayStatus = "REJECTED"
	GatewayStatusFailed      GatewayStatus = "FAILED"
)

// GatewayTransaction mirrors the gateway's view of a transaction.
type GatewayTransaction struct {
	Token    string
	URL      string
	Status   GatewayStatus
	BuyOrder string
	Amount   int64
}

// PaymentRedirect is returned by initiate: where to send the payer.
type PaymentRedirect struct {
	URL   string
	Token string
}

// ConfirmResult is the outcome of a payment confirmation. Success reflects the
// gateway's authorization verdict only; bookkeeping failures are collected in
// Reconciliation and never flip Success.
type ConfirmResult struct {
	Success        bool
	Message        string
	Transaction    *GatewayTransaction
	OrderID        string
	Reconciliation []ReconciliationIssue
}

// ReconciliationIssue records a bookkeeping step that failed after the gateway
// had already authorized payment. Resolved out-of-band.
type ReconciliationIssue struct {
	Step   string
	Reason string
}
