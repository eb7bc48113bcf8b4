package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods.
const (
	PaymentMethodCash   = "cash"
	PaymentMethodBkash  = "bkash"
	PaymentMethodNagad  = "nagad"
	PaymentMethodRocket = "rocket"
	PaymentMethodBank   = "bank"
)

// Payment records money collected from a customer.
type Payment struct {
	ID         string
	TenantID   string
	CustomerID string
	Amount     decimal.Decimal
	Method     string
	TrxID      string // mobile-banking transaction reference, empty for cash
	Note       string
	PaidAt     time.Time
	CreatedAt  time.Time
}
