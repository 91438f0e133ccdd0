package bottleneckapi

import (
	"github.com/Abraxas-365/insightshub/pipeline/bottleneck"
	"github.com/Abraxas-365/insightshub/pipeline/bottleneck/bottlenecksrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for bottleneck operations
type Handlers struct {
	service *bottlenecksrv.Service
}

// NewHandlers creates a new bottleneck handlers instance
func NewHandlers(service *bottlenecksrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetBottlenecks lists candidates stalled beyond the threshold
// GET /api/bottlenecks?days_threshold=14
func (h *Handlers) GetBottlenecks(c *fiber.Ctx) error {
	threshold := c.QueryInt("days_threshold", bottleneck.DefaultDaysThreshold)

	stalled, err := h.service.Detect(c.Context(), threshold)
	if err != nil {
		return err
	}

	return c.JSON(bottleneck.DetectResponse{
		DaysThreshold: threshold,
		Items:         stalled,
		Total:         len(stalled),
	})
}

// SendAlerts runs detection and dispatches simulated alerts
// POST /api/bottlenecks/alerts
func (h *Handlers) SendAlerts(c *fiber.Ctx) error {
	var req bottleneck.SendAlertsRequest
	if err := c.BodyParser(&req); err != nil {
		return bottleneck.ErrInvalidRecipient().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.SendAlerts(c.Context(), req.DaysThreshold, req.Recipients)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers all bottleneck routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/bottlenecks")

	api.Get("/", handlers.GetBottlenecks)
	api.Post("/alerts", handlers.SendAlerts)
}
