package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine is one payment event with the balance left after it.
type StatementLine struct {
	PaymentEventID   string          `json:"paymentEventID"`
	PaidAt           time.Time       `json:"paidAt"`
	ReferenceNo      string          `json:"referenceNo"`
	PaymentMode      PaymentMode     `json:"paymentMode"`
	PaidAmount       decimal.Decimal `json:"paidAmount"`
	ConcessionAmount decimal.Decimal `json:"concessionAmount"`
	RunningBalance   decimal.Decimal `json:"runningBalance"`
}

// Statement is the ledger of one charge account.
type Statement struct {
	Account ChargeAccount        `json:"account"`
	Lines   []StatementLine      `json:"lines"`
	Result  ReconciliationResult `json:"result"`
}

// CollectionGroup aggregates the events of one fee head.
type CollectionGroup struct {
	FeeHead         string          `json:"feeHead"`
	Events          []PaymentEvent  `json:"events"`
	EventCount      int             `json:"eventCount"`
	TotalPaid       decimal.Decimal `json:"totalPaid"`
	TotalConcession decimal.Decimal `json:"totalConcession"`
}

// CollectionReport lists collections in a date range grouped by fee head.
type CollectionReport struct {
	From            time.Time         `json:"from"`
	To              time.Time         `json:"to"`
	Groups          []CollectionGroup `json:"groups"`
	TotalPaid       decimal.Decimal   `json:"totalPaid"`
	TotalConcession decimal.Decimal   `json:"totalConcession"`
}

// AccountBalance pairs a charge account with its reconciled state.
type AccountBalance struct {
	Account ChargeAccount        `json:"account"`
	Result  ReconciliationResult `json:"result"`
}

// BalanceGroup aggregates outstanding balances of one fee head.
type BalanceGroup struct {
	FeeHead          string           `json:"feeHead"`
	Accounts         []AccountBalance `json:"accounts"`
	TotalOriginal    decimal.Decimal  `json:"totalOriginal"`
	TotalOutstanding decimal.Decimal  `json:"totalOutstanding"`
}

// BalanceReport lists outstanding balances grouped by fee head.
type BalanceReport struct {
	PayerType        PayerType       `json:"payerType"`
	Groups           []BalanceGroup  `json:"groups"`
	TotalOriginal    decimal.Decimal `json:"totalOriginal"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
}
