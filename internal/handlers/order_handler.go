package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"orderdesk/internal/apperrors"
	"orderdesk/internal/models"
	"orderdesk/internal/services"
)

// OrderHandler handles HTTP requests for order submission and retrieval.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app. The :id
// wildcard would swallow the static /orders/status lookup, so callers must
// register the status routes first.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/orders", h.HandleCreateOrder)
	router.Get("/orders", h.HandleGetOrders)
	router.Get("/orders/:id", h.HandleGetOrder)
}

// HandleCreateOrder validates and persists a new order with its line items.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req models.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return writeError(c, apperrors.Validationf("invalid request body: %v", err))
	}

	order, err := h.service.CreateOrder(c.UserContext(), req)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":     true,
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
	})
}

// HandleGetOrder returns one order with its line items.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return writeError(c, apperrors.Validationf("invalid order id %q", c.Params("id")))
	}

	order, err := h.service.GetOrderByID(uint(id))
	if err != nil {
		log.Printf("Error getting order %d: %v", id, err)
		return writeError(c, err)
	}
	return c.JSON(order)
}

// HandleGetOrders returns all orders with nested line items, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return writeError(c, err)
	}
	return c.JSON(orders)
}
