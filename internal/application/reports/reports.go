// Package reports builds tabular report projections from in-memory
// collections. Every report type is an independent, order-preserving filter:
// output rows correspond 1:1 and in order to the filtered input.
package reports

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/netpulse/netpulse-api/internal/domain"
	"github.com/netpulse/netpulse-api/internal/domain/entity"
)

// Report types.
type Type string

const (
	TypeDueCustomers     Type = "due_customers"
	TypeExpiredCustomers Type = "expired_customers"
	TypeTodaysPayments   Type = "todays_payments"
	TypePaymentsInRange  Type = "payments"
	TypeAreaCustomers    Type = "area_customers"
)

const dateLayout = "2006-01-02"

// Data is the rendered projection handed to the presentation layer.
type Data struct {
	Title    string
	Subtitle string
	Columns  []string
	Rows     [][]string
	Summary  map[string]string
}

// Input carries the full collections plus the report parameters. Now is
// injectable so "today" is testable.
type Input struct {
	Customers []*entity.Customer
	Payments  []*entity.Payment
	Areas     []*entity.Area
	AreaID    string    // for TypeAreaCustomers
	From, To  time.Time // for TypePaymentsInRange
	Now       time.Time // zero means time.Now()
}

// Build produces the projection for the requested report type.
func Build(typ Type, in Input) (*Data, error) {
	if in.Now.IsZero() {
		in.Now = time.Now()
	}
	switch typ {
	case TypeDueCustomers:
		return dueCustomers(in), nil
	case TypeExpiredCustomers:
		return expiredCustomers(in), nil
	case TypeTodaysPayments:
		day := truncateDay(in.Now)
		return paymentsBetween(in, day, day.Add(24*time.Hour-time.Nanosecond), "Today's Collection"), nil
	case TypePaymentsInRange:
		return paymentsBetween(in, in.From, in.To, "Collection Report"), nil
	case TypeAreaCustomers:
		return areaCustomers(in), nil
	default:
		return nil, domain.ErrInvalidInput
	}
}

func dueCustomers(in Input) *Data {
	d := &Data{
		Title:   "Due Customers",
		Columns: []string{"Name", "Phone", "PPPoE", "Expiry", "Due"},
	}
	total := decimal.Zero
	for _, c := range in.Customers {
		if !c.DueAmount.IsPositive() {
			continue
		}
		d.Rows = append(d.Rows, []string{
			c.Name, c.Phone, c.PPPoEUsername, c.ExpiryDate.Format(dateLayout), c.DueAmount.StringFixed(2),
		})
		total = total.Add(c.DueAmount)
	}
	d.Subtitle = fmt.Sprintf("%d customers with outstanding balance", len(d.Rows))
	d.Summary = map[string]string{"total_due": total.StringFixed(2)}
	return d
}

func expiredCustomers(in Input) *Data {
	today := truncateDay(in.Now)
	d := &Data{
		Title:   "Expired Customers",
		Columns: []string{"Name", "Phone", "PPPoE", "Expired On", "Due"},
	}
	for _, c := range in.Customers {
		if !c.ExpiryDate.Before(today) {
			continue
		}
		d.Rows = append(d.Rows, []string{
			c.Name, c.Phone, c.PPPoEUsername, c.ExpiryDate.Format(dateLayout), c.DueAmount.StringFixed(2),
		})
	}
	d.Subtitle = fmt.Sprintf("%d connections past expiry as of %s", len(d.Rows), today.Format(dateLayout))
	return d
}

func paymentsBetween(in Input, from, to time.Time, title string) *Data {
	names := customerNames(in.Customers)
	d := &Data{
		Title:    title,
		Subtitle: fmt.Sprintf("%s to %s", from.Format(dateLayout), to.Format(dateLayout)),
		Columns:  []string{"Date", "Customer", "Method", "TrxID", "Amount"},
	}
	total := decimal.Zero
	for _, p := range in.Payments {
		if p.PaidAt.Before(from) || p.PaidAt.After(to) {
			continue
		}
		d.Rows = append(d.Rows, []string{
			p.PaidAt.Format(dateLayout), names[p.CustomerID], p.Method, p.TrxID, p.Amount.StringFixed(2),
		})
		total = total.Add(p.Amount)
	}
	d.Summary = map[string]string{
		"count":           fmt.Sprintf("%d", len(d.Rows)),
		"total_collected": total.StringFixed(2),
	}
	return d
}

func areaCustomers(in Input) *Data {
	areaName := in.AreaID
	for _, a := range in.Areas {
		if a.ID == in.AreaID {
			areaName = a.Name
			break
		}
	}
	d := &Data{
		Title:    "Customers by Area",
		Subtitle: areaName,
		Columns:  []string{"Name", "Phone", "PPPoE", "Status", "Monthly Bill"},
	}
	for _, c := range in.Customers {
		if c.AreaID == nil || *c.AreaID != in.AreaID {
			continue
		}
		d.Rows = append(d.Rows, []string{
			c.Name, c.Phone, c.PPPoEUsername, c.Status, c.MonthlyBill.StringFixed(2),
		})
	}
	return d
}

func customerNames(customers []*entity.Customer) map[string]string {
	m := make(map[string]string, len(customers))
	for _, c := range customers {
		m[c.ID] = c.Name
	}
	return m
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
