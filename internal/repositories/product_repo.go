package repositories

import (
	"orderdesk/internal/models"
)

// ProductRepository defines the interface for catalog data access. The
// catalog is maintained elsewhere; this system only reads it and seeds a
// starter set when the table is empty.
type ProductRepository interface {
	// GetActive returns all active products ordered by name.
	GetActive() ([]models.Product, error)
	Create(product *models.Product) error
	Count() (int64, error)
}
