package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"orderdesk/internal/reports"
	"orderdesk/internal/services"
)

// ReportHandler exposes the four reporting projections. All routes are
// admin-only.
type ReportHandler struct {
	service *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

// RegisterRoutes registers the report routes with the Fiber app.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	reportRoutes := router.Group("/reports")
	reportRoutes.Get("/detail", h.HandleDetail)
	reportRoutes.Get("/by-product", h.HandleByProduct)
	reportRoutes.Get("/by-phone-product", h.HandleByPhoneProduct)
	reportRoutes.Get("/items", h.HandleItems)
}

func queryParams(c *fiber.Ctx) (string, reports.SortField, reports.Direction) {
	return c.Query("search"), reports.SortField(c.Query("sort")), reports.Direction(c.Query("dir"))
}

// HandleDetail serves the per-order detail projection.
func (h *ReportHandler) HandleDetail(c *fiber.Ctx) error {
	search, _, dir := queryParams(c)
	rows, err := h.service.Detail(search, dir)
	if err != nil {
		log.Printf("Error building detail report: %v", err)
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// HandleByProduct serves the per-product totals projection.
func (h *ReportHandler) HandleByProduct(c *fiber.Ctx) error {
	search, sortField, dir := queryParams(c)
	rows, err := h.service.ByProduct(search, sortField, dir)
	if err != nil {
		log.Printf("Error building by-product report: %v", err)
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// HandleByPhoneProduct serves the per-(phone, product) totals projection.
func (h *ReportHandler) HandleByPhoneProduct(c *fiber.Ctx) error {
	search, sortField, dir := queryParams(c)
	rows, err := h.service.ByPhoneProduct(search, sortField, dir)
	if err != nil {
		log.Printf("Error building by-phone-product report: %v", err)
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// HandleItems serves the flattened per-line-item projection.
func (h *ReportHandler) HandleItems(c *fiber.Ctx) error {
	search, sortField, dir := queryParams(c)
	rows, err := h.service.Items(search, sortField, dir)
	if err != nil {
		log.Printf("Error building items report: %v", err)
		return writeError(c, err)
	}
	return c.JSON(rows)
}
