package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"orderdesk/internal/apperrors"
	"orderdesk/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create writes the order header and its line items inside one transaction.
// Any failure rolls the whole order back, so a header row can never be left
// behind without its lines.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		items := order.Items
		order.Items = nil

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("insert order header: %w", err)
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("insert order items: %w", err)
			}
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return apperrors.Storef("create order", err)
	}
	return nil
}

// GetAll retrieves all orders with their line items, newest first.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, apperrors.Storef("list orders", err)
	}
	return orders, nil
}

// GetByID retrieves a single order with its line items.
func (r *GORMOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
		}
		return nil, apperrors.Storef("get order", err)
	}
	return &order, nil
}

// UpdateStatus sets the status of one order by id.
func (r *GORMOrderRepository) UpdateStatus(id uint, status models.OrderStatus) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return apperrors.Storef("update order status", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	return nil
}
