package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/netpulse/netpulse-api/internal/application/dto"
	"github.com/netpulse/netpulse-api/internal/application/usecase"
)

// RouterDeviceHandler CRUD over the tenant's MikroTik references.
type RouterDeviceHandler struct {
	uc *usecase.RouterUseCase
}

// NewRouterDeviceHandler builds the handler.
func NewRouterDeviceHandler(uc *usecase.RouterUseCase) *RouterDeviceHandler {
	return &RouterDeviceHandler{uc: uc}
}

// Create registers a router.
// POST /api/routers
func (h *RouterDeviceHandler) Create(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.RouterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	router, err := h.uc.Create(tenantID, in)
	if err != nil {
		return catalogError(c, err, "router")
	}
	return c.Status(fiber.StatusCreated).JSON(router)
}

// List returns the tenant's routers.
// GET /api/routers
func (h *RouterDeviceHandler) List(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	routers, err := h.uc.List(tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(routers)
}
