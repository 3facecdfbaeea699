package dto

// CartItem is a cart position submitted with payment initiation.
type CartItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"`
}

// InitiateRequest starts a payment transaction.
type InitiateRequest struct {
	BuyOrder  string     `json:"buyOrder"`
	SessionID string     `json:"sessionId"`
	Amount    int64      `json:"amount"`
	ReturnURL string     `json:"returnUrl"`
	Items     []CartItem `json:"items"`
	UserID    *int64     `json:"userId"`
}

// InitiateResponse carries the gateway redirect.
type InitiateResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Token   string `json:"token"`
}

// ConfirmRequest finalizes a payment with the token the gateway redirected
// back with.
type ConfirmRequest struct {
	Token string `json:"token"`
}

// TransactionPayload mirrors the gateway transaction in responses.
type TransactionPayload struct {
	Token    string `json:"token,omitempty"`
	BuyOrder string `json:"buyOrder"`
	Amount   int64  `json:"amount"`
	Status   string `json:"status"`
}

// ReconciliationIssue reports a bookkeeping step that failed after payment
// was authorized.
type ReconciliationIssue struct {
	Step   string `json:"step"`
	Reason string `json:"reason"`
}

// ConfirmResponse reports the payment outcome. Success mirrors the gateway
// verdict; callers must inspect it rather than the HTTP status.
type ConfirmResponse struct {
	Success        bool                  `json:"success"`
	Message        string                `json:"message"`
	Transaction    *TransactionPayload   `json:"transaction,omitempty"`
	OrderID        string                `json:"orderId,omitempty"`
	Reconciliation []ReconciliationIssue `json:"reconciliation,omitempty"`
}

// AbortRequest notifies about a payer-cancelled transaction.
type AbortRequest struct {
	Token     string `json:"token"`
	OrderCode string `json:"orderCode"`
	SessionID string `json:"sessionId"`
}

// TimeoutRequest notifies about an expired gateway session.
type TimeoutRequest struct {
	SessionID string `json:"sessionId"`
	OrderCode string `json:"orderCode"`
}

// CancellationResponse acknowledges an aborted or timed out checkout.
type CancellationResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	OrderCode string `json:"orderCode"`
	SessionID string `json:"sessionId"`
}

// ErrorResponse is the generic failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
