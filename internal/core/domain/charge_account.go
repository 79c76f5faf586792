package domain

import "github.com/shopspring/decimal"

// PayerType identifies who owes the charge.
type PayerType string

const (
	PayerStudent  PayerType = "STUDENT"
	PayerSupplier PayerType = "SUPPLIER"
)

// ChargeAccount is the amount owed by one payer for one fee head (e.g. one term's bus fee).
// It is fixed when the fee head is assigned and never mutated afterwards.
type ChargeAccount struct {
	ChargeAccountID string          `json:"chargeAccountID"`
	PayerID         string          `json:"payerID"`
	PayerType       PayerType       `json:"payerType"`
	FeeHead         string          `json:"feeHead"` // e.g. "Bus Fee", "1st Term"
	AcademicYear    string          `json:"academicYear"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	AuditFields
}
