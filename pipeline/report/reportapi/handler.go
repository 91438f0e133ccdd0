package reportapi

import (
	"fmt"

	"github.com/Abraxas-365/insightshub/pkg/kernel"
	"github.com/Abraxas-365/insightshub/pipeline/report"
	"github.com/Abraxas-365/insightshub/pipeline/report/reportsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for report operations
type Handlers struct {
	service *reportsrv.Service
}

// NewHandlers creates a new report handlers instance
func NewHandlers(service *reportsrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GenerateReport queues a summary-report render
// POST /api/reports
func (h *Handlers) GenerateReport(c *fiber.Ctx) error {
	var req report.GenerateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return report.ErrInvalidRequest().WithDetail("parse_error", err.Error())
		}
	}

	resp, err := h.service.GenerateAsync(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(resp)
}

// GetReportStatus returns the state of a queued render
// GET /api/reports/:id
func (h *Handlers) GetReportStatus(c *fiber.Ctx) error {
	id := kernel.ReportID(c.Params("id"))

	resp, err := h.service.GetJobStatus(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// DownloadSummary renders the summary PDF in-request
// GET /api/reports/summary.pdf?days_threshold=14
func (h *Handlers) DownloadSummary(c *fiber.Ctx) error {
	threshold := c.QueryInt("days_threshold", 0)

	data, err := h.service.Render(c.Context(), threshold)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "pipeline_summary.pdf"))
	return c.Send(data)
}

// RegisterRoutes registers all report routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/reports")

	api.Post("/", handlers.GenerateReport)
	api.Get("/summary.pdf", handlers.DownloadSummary)
	api.Get("/:id", handlers.GetReportStatus)
}
