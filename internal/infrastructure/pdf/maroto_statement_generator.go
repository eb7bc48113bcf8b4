// Package pdf renders the customer billing statement.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: ISP name + contact  │  Statement date              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUSTOMER: name, PPPoE login, phone, package, expiry         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ADJUSTMENTS: Period | Days | Rate | Amount                  │
//	│  PAYMENTS: Date | Method | TrxID | Amount                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Monthly bill / Adjustments / Paid / CURRENT DUE     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/netpulse/netpulse-api/internal/application/billing"
	"github.com/netpulse/netpulse-api/internal/domain/entity"
)

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const dateLayout = "02/01/2006"

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appbilling.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// MarotoStatementGenerator implements billing.StatementPDFGenerator with Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator builds the generator.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatementPDF renders the statement and returns its bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	_ context.Context,
	tenant *entity.Tenant,
	customer *entity.Customer,
	pkg *entity.Package,
	adjustments []*entity.BillAdjustment,
	payments []*entity.Payment,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Billing Statement", true).
		WithAuthor(tenant.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(tenant, customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer, pkg))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(adjustments) > 0 {
		m.AddRows(sectionTitleRow("BILL ADJUSTMENTS"))
		m.AddRows(adjustmentHeaderRow())
		for _, r := range adjustmentRows(adjustments) {
			m.AddRows(r)
		}
	}

	if len(payments) > 0 {
		m.AddRows(sectionTitleRow("PAYMENTS"))
		m.AddRows(paymentHeaderRow())
		for _, r := range paymentRows(payments) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(customer, adjustments, payments))

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Generated by "+tenant.Name+". Keep this statement for your records.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow: ISP name + contact (left) and statement label + date (right).
func headerRow(tenant *entity.Tenant, customer *entity.Customer) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(tenant.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Contact: %s   |   %s",
				nonEmpty(tenant.ContactPhone, "—"),
				nonEmpty(tenant.Email, "—"),
			), props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("BILLING STATEMENT", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("As of "+customer.UpdatedAt.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// customerRow: subscriber identity and subscription details.
func customerRow(customer *entity.Customer, pkg *entity.Package) core.Row {
	pkgName := "—"
	if pkg != nil {
		pkgName = fmt.Sprintf("%s (%d Mbps)", pkg.Name, pkg.BandwidthMbps)
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("SUBSCRIBER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("PPPoE: %s   |   Phone: %s   |   Package: %s   |   Expires: %s",
				customer.PPPoEUsername,
				nonEmpty(customer.Phone, "—"),
				pkgName,
				customer.ExpiryDate.Format(dateLayout),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

func adjustmentHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Period", 4, align.Left),
		h("Days", 1, align.Center),
		h("Rate", 2, align.Right),
		h("Description", 3, align.Left),
		h("Amount", 2, align.Right),
	)
}

func adjustmentRows(adjustments []*entity.BillAdjustment) []core.Row {
	result := make([]core.Row, 0, len(adjustments))
	for _, a := range adjustments {
		period := a.FromDate.Format(dateLayout) + " – " + a.ToDate.Format(dateLayout)
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(period, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", a.Days), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(a.Rate.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New(a.Description, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(a.Amount.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}

func paymentHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Date", 3, align.Left),
		h("Method", 2, align.Left),
		h("Trx ID", 4, align.Left),
		h("Amount", 3, align.Right),
	)
}

func paymentRows(payments []*entity.Payment) []core.Row {
	result := make([]core.Row, 0, len(payments))
	for _, p := range payments {
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(p.PaidAt.Format(dateLayout), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(p.Method, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(nonEmpty(p.TrxID, "—"), props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(p.Amount.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}

// totalsRow: right-aligned totals block ending in the current due balance.
func totalsRow(customer *entity.Customer, adjustments []*entity.BillAdjustment, payments []*entity.Payment) core.Row {
	adjTotal := decimal.Zero
	for _, a := range adjustments {
		adjTotal = adjTotal.Add(a.Amount)
	}
	paidTotal := decimal.Zero
	for _, p := range payments {
		paidTotal = paidTotal.Add(p.Amount)
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(30).Add(
		col.New(3),
		col.New(4).Add(
			label("Monthly bill:"),
			label("Adjustments:"),
			label("Total paid:"),
			grandLabel("CURRENT DUE:"),
		),
		col.New(3).Add(
			value(customer.MonthlyBill.StringFixed(2)),
			value(adjTotal.StringFixed(2)),
			value(paidTotal.StringFixed(2)),
			grandValue(customer.DueAmount.StringFixed(2)),
		),
		col.New(2),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
