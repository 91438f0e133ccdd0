package skillsapi

import (
	"github.com/Abraxas-365/insightshub/pipeline/skills"
	"github.com/Abraxas-365/insightshub/pipeline/skills/skillssrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for skill scoring
type Handlers struct {
	service *skillssrv.Service
}

// NewHandlers creates a new skills handlers instance
func NewHandlers(service *skillssrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetJD returns the pre-seeded job description
// GET /api/skills/jd
func (h *Handlers) GetJD(c *fiber.Ctx) error {
	resp, err := h.service.JD(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ScoreCandidates scores candidates against a job description
// POST /api/skills/score
func (h *Handlers) ScoreCandidates(c *fiber.Ctx) error {
	var req skills.ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return skills.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.Score(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RegisterRoutes registers all skills routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/skills")

	api.Get("/jd", handlers.GetJD)
	api.Post("/score", handlers.ScoreCandidates)
}
