package models

import "time"

// OrderItem is a single product line within an order. Product name and unit
// price are snapshots taken at order time so they survive catalog changes.
type OrderItem struct {
	ID          uint    `json:"-" gorm:"primaryKey"`
	OrderID     uint    `json:"order_id" gorm:"index"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name" gorm:"type:varchar(255)"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Order is a customer purchase request together with its line items.
type Order struct {
	ID               uint        `json:"id" gorm:"primaryKey"`
	OrderNumber      string      `json:"order_number" gorm:"uniqueIndex;type:varchar(64)"`
	OrderDate        string      `json:"order_date" gorm:"type:varchar(32)"`
	CustomerName     string      `json:"customer_name" gorm:"type:varchar(255)"`
	CustomerAddress  string      `json:"customer_address" gorm:"type:varchar(512)"`
	CustomerPhone    string      `json:"customer_phone" gorm:"type:varchar(32)"`
	CustomerEmail    string      `json:"customer_email" gorm:"type:varchar(255)"`
	ShipToAddress    string      `json:"ship_to_address" gorm:"type:varchar(512)"`
	BillingName      string      `json:"billing_name" gorm:"type:varchar(255)"`
	BillingAddress   string      `json:"billing_address" gorm:"type:varchar(512)"`
	BillingTaxNumber string      `json:"billing_tax_number" gorm:"type:varchar(64)"`
	Subtotal         float64     `json:"subtotal"`
	Status           OrderStatus `json:"status" gorm:"type:varchar(16);default:PENDING"`
	Items            []OrderItem `json:"items" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
