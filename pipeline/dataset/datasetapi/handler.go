package datasetapi

import (
	"github.com/Abraxas-365/insightshub/pipeline/dataset"
	"github.com/Abraxas-365/insightshub/pipeline/dataset/datasetsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for dataset operations
type Handlers struct {
	service *datasetsrv.Service
}

// NewHandlers creates a new dataset handlers instance
func NewHandlers(service *datasetsrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListCandidates returns the candidate table, optionally filtered
// GET /api/dataset?role=&stage=
func (h *Handlers) ListCandidates(c *fiber.Ctx) error {
	role := c.Query("role")
	stage := dataset.Stage(c.Query("stage"))
	if stage != "" && !stage.IsCanonical() {
		return dataset.ErrInvalidStage().WithDetail("stage", string(stage))
	}

	resp, err := h.service.List(c.Context(), role, stage)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetSummary describes the loaded dataset
// GET /api/dataset/summary
func (h *Handlers) GetSummary(c *fiber.Ctx) error {
	resp, err := h.service.Summary(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Reload re-reads the configured source
// POST /api/dataset/reload
func (h *Handlers) Reload(c *fiber.Ctx) error {
	resp, err := h.service.Reload(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers all dataset routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/dataset")

	api.Get("/", handlers.ListCandidates)
	api.Get("/summary", handlers.GetSummary)
	api.Post("/reload", handlers.Reload)
}
