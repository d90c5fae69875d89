package models

// CreateOrderItemRequest is one line item as submitted by the ordering UI.
// Totals are recomputed and verified server-side before anything is persisted.
type CreateOrderItemRequest struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName" validate:"required"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
	Total       float64 `json:"total"`
}

// CreateOrderRequest is the order-submission payload: one header plus a
// non-empty list of line items.
type CreateOrderRequest struct {
	OrderNumber      string                   `json:"orderNumber"`
	OrderDate        string                   `json:"orderDate"`
	CustomerName     string                   `json:"customerName" validate:"required"`
	CustomerAddress  string                   `json:"customerAddress" validate:"required"`
	CustomerPhone    string                   `json:"customerPhone" validate:"required"`
	CustomerEmail    string                   `json:"customerEmail" validate:"required,email"`
	ShipToAddress    string                   `json:"shipToAddress"`
	BillingName      string                   `json:"billingName"`
	BillingAddress   string                   `json:"billingAddress"`
	BillingTaxNumber string                   `json:"billingTaxNumber"`
	Subtotal         float64                  `json:"subtotal"`
	Items            []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// BatchStatusItem is one {id, status} pair in a batch status update.
type BatchStatusItem struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// UpdateStatusRequest carries either explicit {id, status} pairs (CSV import
// and per-row edits) or a list of order ids with one target status (bulk
// checkbox selection). Exactly one form must be present.
type UpdateStatusRequest struct {
	BatchUpdates []BatchStatusItem `json:"batchUpdates,omitempty"`
	OrderIDs     []uint            `json:"orderIds,omitempty"`
	Status       string            `json:"status,omitempty"`
}

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}
