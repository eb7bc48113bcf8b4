package dto

import "github.com/shopspring/decimal"

// AdjustmentRequest body for POST /api/billing/adjustments: a pro-rata charge
// for a partial period. Dates are inclusive calendar days (YYYY-MM-DD).
type AdjustmentRequest struct {
	CustomerID  string          `json:"customer_id"`
	Description string          `json:"description,omitempty"`
	Rate        decimal.Decimal `json:"rate"`
	FromDate    string          `json:"from_date"`
	ToDate      string          `json:"to_date"`
}

// AdjustmentResponse the computed pro-rata line.
type AdjustmentResponse struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	Description string          `json:"description,omitempty"`
	Rate        decimal.Decimal `json:"rate"`
	FromDate    string          `json:"from_date"`
	ToDate      string          `json:"to_date"`
	Days        int             `json:"days"`
	Amount      decimal.Decimal `json:"amount"`
}

// PaymentRequest body for POST /api/billing/payments.
type PaymentRequest struct {
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	TrxID      string          `json:"trx_id,omitempty"`
	Note       string          `json:"note,omitempty"`
}

// PaymentResponse recorded payment plus the customer's resulting balance.
type PaymentResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	Amount       decimal.Decimal `json:"amount"`
	Method       string          `json:"method"`
	TrxID        string          `json:"trx_id,omitempty"`
	PaidAt       string          `json:"paid_at"`
	RemainingDue decimal.Decimal `json:"remaining_due"`
	ExpiryDate   string          `json:"expiry_date"`
}
