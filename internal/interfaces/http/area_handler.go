package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/netpulse/netpulse-api/internal/application/dto"
	"github.com/netpulse/netpulse-api/internal/application/usecase"
)

// AreaHandler CRUD over the tenant's coverage areas.
type AreaHandler struct {
	uc *usecase.AreaUseCase
}

// NewAreaHandler builds the handler.
func NewAreaHandler(uc *usecase.AreaUseCase) *AreaHandler {
	return &AreaHandler{uc: uc}
}

// Create adds an area.
// POST /api/areas
func (h *AreaHandler) Create(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.AreaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	area, err := h.uc.Create(tenantID, in)
	if err != nil {
		return catalogError(c, err, "area")
	}
	return c.Status(fiber.StatusCreated).JSON(area)
}

// List returns the tenant's areas.
// GET /api/areas
func (h *AreaHandler) List(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	areas, err := h.uc.List(tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(areas)
}

// Update rewrites an area.
// PUT /api/areas/:id
func (h *AreaHandler) Update(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.AreaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	area, err := h.uc.Update(tenantID, c.Params("id"), in)
	if err != nil {
		return catalogError(c, err, "area")
	}
	return c.JSON(area)
}
