package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"orderdesk/internal/apperrors"
	"orderdesk/internal/models"
	"orderdesk/internal/services"
	"orderdesk/pkg/rabbitmq"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(id uint, status models.OrderStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// MockNotifier is a mock order-created notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyOrderCreated(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// MockPublisher is a mock order-event publisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishOrderCreated(event rabbitmq.OrderCreatedEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func validRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		OrderNumber:     "ORD-1700000000000-ABC123",
		OrderDate:       "2024-01-15",
		CustomerName:    "Alice Nguyen",
		CustomerAddress: "1 Main St",
		CustomerPhone:   "0900000000",
		CustomerEmail:   "alice@example.com",
		Subtotal:        250,
		Items: []models.CreateOrderItemRequest{
			{ProductID: 1, ProductName: "A", Quantity: 2, UnitPrice: 100, Total: 200},
			{ProductID: 2, ProductName: "B", Quantity: 1, UnitPrice: 50, Total: 50},
		},
	}
}

func TestCreateOrder_Success(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockNotifier := new(MockNotifier)
	mockPublisher := new(MockPublisher)
	service := services.NewOrderService(mockRepo, mockNotifier, mockPublisher)

	var notified *models.Order
	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
		order := args.Get(0).(*models.Order)
		order.ID = 42
	}).Return(nil).Once()
	mockNotifier.On("NotifyOrderCreated", mock.Anything, mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
		notified = args.Get(1).(*models.Order)
	}).Return(nil).Once()
	mockPublisher.On("PublishOrderCreated", mock.AnythingOfType("rabbitmq.OrderCreatedEvent")).Return(nil).Once()

	order, err := service.CreateOrder(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, uint(42), order.ID)
	assert.Equal(t, 250.0, order.Subtotal)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Len(t, order.Items, 2)

	// The notification carries both product names.
	assert.NotNil(t, notified)
	names := []string{notified.Items[0].ProductName, notified.Items[1].ProductName}
	assert.Contains(t, names, "A")
	assert.Contains(t, names, "B")

	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestCreateOrder_MissingRequiredFields(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, nil)

	req := validRequest()
	req.CustomerName = "   " // blank after trimming

	_, err := service.CreateOrder(context.Background(), req)

	assert.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateOrder_EmptyItemList(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, nil)

	req := validRequest()
	req.Items = nil

	_, err := service.CreateOrder(context.Background(), req)

	assert.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateOrder_LineTotalMismatchRejected(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, nil)

	req := validRequest()
	req.Items[0].Total = 199 // 2 x 100 != 199

	_, err := service.CreateOrder(context.Background(), req)

	assert.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "line total mismatch")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateOrder_SubtotalMismatchRejected(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, nil)

	req := validRequest()
	req.Subtotal = 300

	_, err := service.CreateOrder(context.Background(), req)

	assert.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "subtotal mismatch")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateOrder_StoreFailureSkipsNotification(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockNotifier := new(MockNotifier)
	service := services.NewOrderService(mockRepo, mockNotifier, nil)

	mockRepo.On("Create", mock.Anything).Return(apperrors.Storef("create order", fmt.Errorf("connection refused"))).Once()

	_, err := service.CreateOrder(context.Background(), validRequest())

	assert.Error(t, err)
	assert.True(t, apperrors.IsStore(err))
	mockNotifier.AssertNotCalled(t, "NotifyOrderCreated", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestCreateOrder_NotificationFailureIsSwallowed(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockNotifier := new(MockNotifier)
	service := services.NewOrderService(mockRepo, mockNotifier, nil)

	mockRepo.On("Create", mock.Anything).Return(nil).Once()
	mockNotifier.On("NotifyOrderCreated", mock.Anything, mock.Anything).
		Return(apperrors.WrapNotification(fmt.Errorf("webhook unreachable"))).Once()

	order, err := service.CreateOrder(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.NotNil(t, order)
	mockNotifier.AssertExpectations(t)
}

func TestCreateOrder_DefaultsBillingAndShippingFromCustomer(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, nil)

	mockRepo.On("Create", mock.Anything).Return(nil).Once()

	req := validRequest()
	req.ShipToAddress = ""
	req.BillingName = ""
	req.BillingAddress = ""

	order, err := service.CreateOrder(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "1 Main St", order.ShipToAddress)
	assert.Equal(t, "Alice Nguyen", order.BillingName)
	assert.Equal(t, "1 Main St", order.BillingAddress)
}

func TestCreateOrder_GeneratesOrderNumberWhenBlank(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, nil)

	mockRepo.On("Create", mock.Anything).Return(nil).Once()

	req := validRequest()
	req.OrderNumber = ""

	order, err := service.CreateOrder(context.Background(), req)

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	assert.Len(t, strings.Split(order.OrderNumber, "-"), 3)
}
