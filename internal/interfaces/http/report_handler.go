package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/netpulse/netpulse-api/internal/application/dto"
	"github.com/netpulse/netpulse-api/internal/application/reports"
	"github.com/netpulse/netpulse-api/internal/domain"
)

// ReportHandler serves the tabular report projections.
type ReportHandler struct {
	svc *reports.Service
}

// NewReportHandler builds the handler.
func NewReportHandler(svc *reports.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// reportResponse is the JSON shape of one rendered report.
type reportResponse struct {
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle,omitempty"`
	Columns  []string          `json:"columns"`
	Rows     [][]string        `json:"rows"`
	Summary  map[string]string `json:"summary,omitempty"`
}

// Generate runs one report for the tenant.
// GET /api/reports/:type?area_id=&from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}

	typ := reports.Type(c.Params("type"))
	areaID := c.Query("area_id")

	var from, to time.Time
	if typ == reports.TypePaymentsInRange {
		var err error
		from, err = time.Parse(dateLayout, c.Query("from"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from must be YYYY-MM-DD"})
		}
		to, err = time.Parse(dateLayout, c.Query("to"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to must be YYYY-MM-DD"})
		}
		// The range is inclusive of the whole end day.
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	data, err := h.svc.Generate(tenantID, typ, areaID, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unknown report type"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(reportResponse{
		Title:    data.Title,
		Subtitle: data.Subtitle,
		Columns:  data.Columns,
		Rows:     data.Rows,
		Summary:  data.Summary,
	})
}
