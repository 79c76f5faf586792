package domain

import "github.com/shopspring/decimal"

// BalanceStatus is derived from the remaining balance of a charge account.
type BalanceStatus string

const (
	Pending BalanceStatus = "PENDING"
	Settled BalanceStatus = "SETTLED"
)

// ReconciliationResult is the derived state of a charge account. It is never persisted.
type ReconciliationResult struct {
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	TotalConcession  decimal.Decimal `json:"totalConcession"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	// Overapplied is how far the history exceeds the original amount, zero when consistent.
	Overapplied      decimal.Decimal `json:"overapplied"`
	IntegrityWarning bool            `json:"integrityWarning"`
	Status           BalanceStatus   `json:"status"`
}

// DiscountResult is the outcome of applying a percentage discount to a settlement amount.
type DiscountResult struct {
	SettlementAmount decimal.Decimal `json:"settlementAmount"`
	DiscountPercent  decimal.Decimal `json:"discountPercent"`
	DiscountAmount   decimal.Decimal `json:"discountAmount"`
	NetPayable       decimal.Decimal `json:"netPayable"`
}

// PaymentProposal is a payment/concession pair a cashier wants to apply.
type PaymentProposal struct {
	PaidAmount       decimal.Decimal
	ConcessionAmount decimal.Decimal
}
