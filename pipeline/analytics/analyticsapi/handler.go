package analyticsapi

import (
	"github.com/Abraxas-365/insightshub/pipeline/analytics/analyticssrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for analytics operations
type Handlers struct {
	service *analyticssrv.Service
}

// NewHandlers creates a new analytics handlers instance
func NewHandlers(service *analyticssrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetKPIs returns the scalar summary statistics
// GET /api/analytics/kpis
func (h *Handlers) GetKPIs(c *fiber.Ctx) error {
	kpis, err := h.service.KPIs(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(kpis)
}

// GetStageCounts returns the six-stage breakdown
// GET /api/analytics/stages
func (h *Handlers) GetStageCounts(c *fiber.Ctx) error {
	counts, err := h.service.StageCounts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(counts)
}

// GetWeeklyTrends returns the weekly application-volume series
// GET /api/analytics/trends
func (h *Handlers) GetWeeklyTrends(c *fiber.Ctx) error {
	trends, err := h.service.WeeklyTrends(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(trends)
}

// GetSourceEffectiveness returns the per-source breakdown and success rates
// GET /api/analytics/sources
func (h *Handlers) GetSourceEffectiveness(c *fiber.Ctx) error {
	rows, err := h.service.SourceEffectiveness(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

// GetFunnel returns the candidate journey flow edges
// GET /api/analytics/funnel
func (h *Handlers) GetFunnel(c *fiber.Ctx) error {
	links, err := h.service.FunnelLinks(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(links)
}

// RegisterRoutes registers all analytics routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/analytics")

	api.Get("/kpis", handlers.GetKPIs)
	api.Get("/stages", handlers.GetStageCounts)
	api.Get("/trends", handlers.GetWeeklyTrends)
	api.Get("/sources", handlers.GetSourceEffectiveness)
	api.Get("/funnel", handlers.GetFunnel)
}
