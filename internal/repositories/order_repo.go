package repositories

import (
	"errors"

	"orderdesk/internal/models"
)

// ErrNotFound is returned when an order id does not exist.
var ErrNotFound = errors.New("order not found")

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Create persists the order header and all of its line items atomically.
	Create(order *models.Order) error
	// GetAll returns every order with its line items, newest first.
	GetAll() ([]models.Order, error)
	GetByID(id uint) (*models.Order, error)
	// UpdateStatus sets the status of one order. Returns ErrNotFound (wrapped)
	// when the id does not exist.
	UpdateStatus(id uint, status models.OrderStatus) error
}
