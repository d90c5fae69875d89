package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"orderdesk/internal/apperrors"
	"orderdesk/internal/models"
	"orderdesk/internal/money"
	"orderdesk/internal/repositories"
	"orderdesk/pkg/rabbitmq"
)

// OrderNotifier delivers the order-created notification. Failures are logged
// and never fail the order.
type OrderNotifier interface {
	NotifyOrderCreated(ctx context.Context, order *models.Order) error
}

// EventPublisher publishes order lifecycle events to the message broker.
type EventPublisher interface {
	PublishOrderCreated(event rabbitmq.OrderCreatedEvent) error
}

// OrderService handles order submission and retrieval.
type OrderService struct {
	orderRepo repositories.OrderRepository
	notifier  OrderNotifier
	events    EventPublisher
	validate  *validator.Validate
}

// NewOrderService creates a new OrderService. notifier and events may be nil,
// in which case the corresponding dispatch is skipped.
func NewOrderService(orderRepo repositories.OrderRepository, notifier OrderNotifier, events EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		notifier:  notifier,
		events:    events,
		validate:  validator.New(),
	}
}

// GetAllOrders retrieves all orders with their line items, newest first.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder validates and persists a new order plus its line items in one
// transaction, then dispatches the best-effort notification and event.
//
// Client-computed line totals and the subtotal are recomputed here with exact
// arithmetic; any mismatch rejects the whole request before a write is
// attempted.
func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	trimRequest(&req)

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := lo.Map(verrs, func(e validator.FieldError, _ int) string { return e.Field() })
			return nil, apperrors.Validationf("missing or invalid fields: %s", strings.Join(fields, ", "))
		}
		return nil, apperrors.Validationf("invalid request: %v", err)
	}

	subtotal := decimal.Zero
	for _, it := range req.Items {
		expected := money.LineTotal(it.UnitPrice, it.Quantity)
		if !money.Equal(expected, it.Total) {
			return nil, apperrors.Validationf(
				"line total mismatch for product %q: got %v, expected %s",
				it.ProductName, it.Total, expected)
		}
		subtotal = subtotal.Add(expected)
	}
	if !money.Equal(subtotal, req.Subtotal) {
		return nil, apperrors.Validationf("subtotal mismatch: got %v, expected %s", req.Subtotal, subtotal)
	}

	order := buildOrder(req)
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyOrderCreated(ctx, order); err != nil {
			log.Printf("Warning: order %s created but notification failed: %v", order.OrderNumber, err)
		}
	}
	if s.events != nil {
		event := rabbitmq.OrderCreatedEvent{
			OrderID:      order.ID,
			OrderNumber:  order.OrderNumber,
			CustomerName: order.CustomerName,
			Subtotal:     order.Subtotal,
			Status:       string(order.Status),
		}
		if err := s.events.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: failed to publish order created event for %s: %v", order.OrderNumber, err)
		}
	}

	return order, nil
}

func trimRequest(req *models.CreateOrderRequest) {
	req.OrderNumber = strings.TrimSpace(req.OrderNumber)
	req.OrderDate = strings.TrimSpace(req.OrderDate)
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerAddress = strings.TrimSpace(req.CustomerAddress)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	req.ShipToAddress = strings.TrimSpace(req.ShipToAddress)
	req.BillingName = strings.TrimSpace(req.BillingName)
	req.BillingAddress = strings.TrimSpace(req.BillingAddress)
	req.BillingTaxNumber = strings.TrimSpace(req.BillingTaxNumber)
}

// buildOrder maps the request onto a persistable order, defaulting blank
// shipping and billing fields from the customer fields and generating the
// order number and date when the client left them out.
func buildOrder(req models.CreateOrderRequest) *models.Order {
	orderNumber := req.OrderNumber
	if orderNumber == "" {
		orderNumber = generateOrderNumber()
	}
	orderDate := req.OrderDate
	if orderDate == "" {
		orderDate = time.Now().Format("2006-01-02")
	}
	shipTo := req.ShipToAddress
	if shipTo == "" {
		shipTo = req.CustomerAddress
	}
	billingName := req.BillingName
	if billingName == "" {
		billingName = req.CustomerName
	}
	billingAddress := req.BillingAddress
	if billingAddress == "" {
		billingAddress = req.CustomerAddress
	}

	items := lo.Map(req.Items, func(it models.CreateOrderItemRequest, _ int) models.OrderItem {
		return models.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		}
	})

	return &models.Order{
		OrderNumber:      orderNumber,
		OrderDate:        orderDate,
		CustomerName:     req.CustomerName,
		CustomerAddress:  req.CustomerAddress,
		CustomerPhone:    req.CustomerPhone,
		CustomerEmail:    req.CustomerEmail,
		ShipToAddress:    shipTo,
		BillingName:      billingName,
		BillingAddress:   billingAddress,
		BillingTaxNumber: req.BillingTaxNumber,
		Subtotal:         req.Subtotal,
		Status:           models.StatusPending,
		Items:            items,
	}
}

func generateOrderNumber() string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
