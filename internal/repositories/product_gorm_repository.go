package repositories

import (
	"gorm.io/gorm"

	"orderdesk/internal/apperrors"
	"orderdesk/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetActive retrieves all active products ordered by name.
func (r *GORMProductRepository) GetActive() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("is_active = ?", true).Order("name").Find(&products).Error; err != nil {
		return nil, apperrors.Storef("list products", err)
	}
	return products, nil
}

// Create inserts a new product.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return apperrors.Storef("create product", err)
	}
	return nil
}

// Count returns the number of products in the catalog.
func (r *GORMProductRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Product{}).Count(&n).Error; err != nil {
		return 0, apperrors.Storef("count products", err)
	}
	return n, nil
}
