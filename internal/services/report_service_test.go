package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orderdesk/internal/models"
	"orderdesk/internal/reports"
	"orderdesk/internal/repositories"
	"orderdesk/internal/services"
)

func seedReportOrders(t *testing.T, repo *repositories.MockOrderRepository) {
	t.Helper()

	assert.NoError(t, repo.Create(&models.Order{
		OrderNumber:   "ORD-1",
		OrderDate:     "2024-01-01",
		CustomerName:  "Alice Nguyen",
		CustomerPhone: "0900000000",
		Subtotal:      200,
		Status:        models.StatusPending,
		Items: []models.OrderItem{
			{ProductID: 1, ProductName: "Mouse", Quantity: 2, UnitPrice: 100, Total: 200},
		},
	}))
	assert.NoError(t, repo.Create(&models.Order{
		OrderNumber:   "ORD-2",
		OrderDate:     "2024-01-02",
		CustomerName:  "Alice Nguyen",
		CustomerPhone: "0900000000",
		Subtotal:      300,
		Status:        models.StatusDelivered,
		Items: []models.OrderItem{
			{ProductID: 1, ProductName: "Mouse", Quantity: 3, UnitPrice: 100, Total: 300},
		},
	}))
}

func TestReportService_ProjectionsOverStore(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	service := services.NewReportService(repo)
	seedReportOrders(t, repo)

	detail, err := service.Detail("", "")
	assert.NoError(t, err)
	assert.Len(t, detail, 2)
	// Default ordering is descending by order number.
	assert.Equal(t, "ORD-2", detail[0].OrderNumber)

	productRows, err := service.ByProduct("", reports.SortNone, "")
	assert.NoError(t, err)
	assert.Len(t, productRows, 1)
	assert.Equal(t, 5, productRows[0].Quantity)
	assert.Equal(t, 500.0, productRows[0].Total)

	phoneRows, err := service.ByPhoneProduct("", reports.SortNone, "")
	assert.NoError(t, err)
	assert.Len(t, phoneRows, 1)
	assert.Equal(t, "0900000000", phoneRows[0].CustomerPhone)
	assert.Equal(t, 5, phoneRows[0].Quantity)

	items, err := service.Items("", reports.SortOrderNumber, reports.Ascending)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "ORD-1", items[0].OrderNumber)
}

func TestReportService_StatusLookup(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	service := services.NewReportService(repo)
	seedReportOrders(t, repo)

	rows, err := service.StatusLookup("ORD-2")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, models.StatusDelivered, rows[0].Status)
	assert.Equal(t, 300.0, rows[0].Subtotal)
}
