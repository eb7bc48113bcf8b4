package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appbilling "github.com/netpulse/netpulse-api/internal/application/billing"
	"github.com/netpulse/netpulse-api/internal/application/dto"
	"github.com/netpulse/netpulse-api/internal/domain"
)

// BillingHandler pro-rata adjustments, payments and the statement PDF.
type BillingHandler struct {
	adjustmentUC *appbilling.AdjustmentUseCase
	paymentUC    *appbilling.PaymentUseCase
	pdfUC        *appbilling.PDFUseCase
}

// NewBillingHandler builds the handler.
func NewBillingHandler(
	adjustmentUC *appbilling.AdjustmentUseCase,
	paymentUC *appbilling.PaymentUseCase,
	pdfUC *appbilling.PDFUseCase,
) *BillingHandler {
	return &BillingHandler{adjustmentUC: adjustmentUC, paymentUC: paymentUC, pdfUC: pdfUC}
}

// CreateAdjustment records a pro-rata bill line.
// POST /api/billing/adjustments
func (h *BillingHandler) CreateAdjustment(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	adj, err := h.adjustmentUC.Create(c.Context(), tenantID, in)
	if err != nil {
		return billingError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(adj)
}

// ListAdjustments returns a customer's pro-rata lines.
// GET /api/customers/:id/adjustments
func (h *BillingHandler) ListAdjustments(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	list, err := h.adjustmentUC.ListByCustomer(tenantID, c.Params("id"))
	if err != nil {
		return billingError(c, err)
	}
	return c.JSON(list)
}

// RecordPayment collects a payment against a customer's balance.
// POST /api/billing/payments
func (h *BillingHandler) RecordPayment(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.PaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	payment, err := h.paymentUC.Record(c.Context(), tenantID, in)
	if err != nil {
		return billingError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// DownloadStatement streams the customer's billing statement PDF.
// GET /api/customers/:id/statement.pdf
func (h *BillingHandler) DownloadStatement(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	pdfBytes, filename, err := h.pdfUC.DownloadStatementPDF(c.Context(), tenantID, c.Params("id"))
	if err != nil {
		return billingError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// billingError shared status mapping for the billing endpoints.
func billingError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid billing data"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "customer not found"})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "access denied"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
