package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/netpulse/netpulse-api/internal/application/analytics"
	"github.com/netpulse/netpulse-api/internal/application/dto"
)

// AnalyticsHandler the super-admin platform dashboard.
type AnalyticsHandler struct {
	uc *analytics.DashboardUseCase
}

// NewAnalyticsHandler builds the handler.
func NewAnalyticsHandler(uc *analytics.DashboardUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Summary returns the cross-tenant platform summary. Routing restricts this
// to the superadmin role.
// GET /api/analytics/summary
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}
