package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appcampaign "github.com/netpulse/netpulse-api/internal/application/campaign"
	"github.com/netpulse/netpulse-api/internal/application/dto"
	"github.com/netpulse/netpulse-api/internal/domain"
)

// CampaignHandler SMS campaigns and the tenant's gateway settings.
type CampaignHandler struct {
	campaignUC *appcampaign.UseCase
	gatewayUC  *appcampaign.GatewayUseCase
}

// NewCampaignHandler builds the handler.
func NewCampaignHandler(campaignUC *appcampaign.UseCase, gatewayUC *appcampaign.GatewayUseCase) *CampaignHandler {
	return &CampaignHandler{campaignUC: campaignUC, gatewayUC: gatewayUC}
}

// Send creates and dispatches a campaign synchronously, returning the final
// counters.
// POST /api/campaigns
func (h *CampaignHandler) Send(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.CreateCampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	campaign, err := h.campaignUC.Send(c.Context(), tenantID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, template and a valid audience are required"})
		}
		if errors.Is(err, domain.ErrGatewayUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "GATEWAY_UNAVAILABLE", Message: "no active SMS gateway configured"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(campaign)
}

// List pages through the tenant's campaigns.
// GET /api/campaigns
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	page.DefaultPage()
	campaigns, err := h.campaignUC.List(tenantID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(campaigns)
}

// GetGateway returns the tenant's SMS gateway settings.
// GET /api/sms-gateway
func (h *CampaignHandler) GetGateway(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	gw, err := h.gatewayUC.Get(tenantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no gateway configured"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(gw)
}

// SaveGateway replaces the tenant's SMS gateway settings.
// PUT /api/sms-gateway
func (h *CampaignHandler) SaveGateway(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.GatewayConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	gw, err := h.gatewayUC.Save(tenantID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "provider, api_key and sender_id are required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(gw)
}
