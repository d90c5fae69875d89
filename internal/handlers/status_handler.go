package handlers

import (
	"bytes"
	"log"

	"github.com/gofiber/fiber/v2"

	"orderdesk/internal/apperrors"
	"orderdesk/internal/models"
	"orderdesk/internal/services"
)

// StatusHandler handles the public status lookup plus the admin status
// management surface (batch updates, CSV export/import).
type StatusHandler struct {
	statusService *services.StatusService
	reportService *services.ReportService
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(statusService *services.StatusService, reportService *services.ReportService) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
		reportService: reportService,
	}
}

// RegisterPublicRoutes registers the customer-facing lookup route.
func (h *StatusHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/orders/status", h.HandleStatusLookup)
}

// RegisterAdminRoutes registers the status-mutation routes; the caller is
// expected to wrap router in the admin auth middleware.
func (h *StatusHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/orders/status", h.HandleUpdateStatus)
	router.Get("/orders/status/export", h.HandleExportCSV)
	router.Post("/orders/status/import", h.HandleImportCSV)
}

// HandleStatusLookup returns per-order status rows matching the search term
// (order number or phone substring).
func (h *StatusHandler) HandleStatusLookup(c *fiber.Ctx) error {
	rows, err := h.reportService.StatusLookup(c.Query("search"))
	if err != nil {
		log.Printf("Error building status lookup: %v", err)
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// HandleUpdateStatus applies a batch of status transitions. The body carries
// either explicit {id, status} pairs or a list of ids plus one status.
func (h *StatusHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req models.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing status update body: %v", err)
		return writeError(c, apperrors.Validationf("invalid request body: %v", err))
	}

	updates, err := h.statusService.Normalize(req)
	if err != nil {
		return writeError(c, err)
	}

	results := h.statusService.Apply(updates)
	return c.JSON(fiber.Map{
		"success": true,
		"results": results,
	})
}

// HandleExportCSV streams all orders as id, order_number, status rows.
func (h *StatusHandler) HandleExportCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.statusService.ExportCSV(&buf); err != nil {
		log.Printf("Error exporting status CSV: %v", err)
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="order_status.csv"`)
	return c.Send(buf.Bytes())
}

// HandleImportCSV parses an exported-format CSV from the request body and
// applies the contained status updates.
func (h *StatusHandler) HandleImportCSV(c *fiber.Ctx) error {
	updates, rejected, err := h.statusService.ParseCSV(bytes.NewReader(c.Body()))
	if err != nil {
		return writeError(c, err)
	}

	results := h.statusService.Apply(updates)
	results = append(results, rejected...)

	applied := 0
	for _, r := range results {
		if r.OK {
			applied++
		}
	}
	return c.JSON(fiber.Map{
		"success": true,
		"applied": applied,
		"results": results,
	})
}
