package handlers

import (
	"github.com/gofiber/fiber/v2"

	"orderdesk/internal/services"
)

// ProductHandler serves the read-only product catalog.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleGetProducts)
}

// HandleGetProducts lists active products. When the store is down the
// built-in fallback catalog is served and flagged as such.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, fallback := h.service.ListActive()
	return c.JSON(fiber.Map{
		"products": products,
		"fallback": fallback,
	})
}
