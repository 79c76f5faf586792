package dto

import (
	"time"

	"github.com/SscSPs/school_fee_app/internal/core/domain"
	"github.com/SscSPs/school_fee_app/internal/utils"
)

// StatementLineResponse is one row of a charge account ledger.
type StatementLineResponse struct {
	PaymentEventID   string             `json:"paymentEventID"`
	PaidAt           time.Time          `json:"paidAt"`
	ReferenceNo      string             `json:"referenceNo"`
	PaymentMode      domain.PaymentMode `json:"paymentMode"`
	PaidAmount       string             `json:"paidAmount"`
	ConcessionAmount string             `json:"concessionAmount"`
	RunningBalance   string             `json:"runningBalance"`
}

// StatementResponse is the ledger of one charge account.
type StatementResponse struct {
	Account ChargeAccountResponse   `json:"account"`
	Lines   []StatementLineResponse `json:"lines"`
	Balance BalanceResponse         `json:"balance"`
}

// CollectionGroupResponse is the subtotal of one fee head.
type CollectionGroupResponse struct {
	FeeHead         string                 `json:"feeHead"`
	Payments        []PaymentEventResponse `json:"payments"`
	EventCount      int                    `json:"eventCount"`
	TotalPaid       string                 `json:"totalPaid"`
	TotalConcession string                 `json:"totalConcession"`
}

// CollectionReportResponse represents the collection report response
type CollectionReportResponse struct {
	// From and To bound the half-open range from <= paidAt < to.
	From    time.Time                 `json:"from"`
	To      time.Time                 `json:"to"`
	Groups  []CollectionGroupResponse `json:"groups"`
	Summary struct {
		TotalPaid       string `json:"totalPaid"`
		TotalConcession string `json:"totalConcession"`
		TotalCollected  string `json:"totalCollected"`
	} `json:"summary"`
}

// AccountBalanceResponse is one charge account in the balance report.
type AccountBalanceResponse struct {
	Account ChargeAccountResponse `json:"account"`
	Balance BalanceResponse       `json:"balance"`
}

// BalanceGroupResponse is the subtotal of one fee head.
type BalanceGroupResponse struct {
	FeeHead          string                   `json:"feeHead"`
	Accounts         []AccountBalanceResponse `json:"accounts"`
	TotalOriginal    string                   `json:"totalOriginal"`
	TotalOutstanding string                   `json:"totalOutstanding"`
}

// BalanceReportResponse represents the balance report response
type BalanceReportResponse struct {
	PayerType domain.PayerType       `json:"payerType,omitempty"`
	Groups    []BalanceGroupResponse `json:"groups"`
	Summary   struct {
		TotalOriginal    string `json:"totalOriginal"`
		TotalOutstanding string `json:"totalOutstanding"`
	} `json:"summary"`
}

// ToStatementResponse converts a domain.Statement to its DTO.
func ToStatementResponse(s *domain.Statement) StatementResponse {
	lines := make([]StatementLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = StatementLineResponse{
			PaymentEventID:   l.PaymentEventID,
			PaidAt:           l.PaidAt,
			ReferenceNo:      l.ReferenceNo,
			PaymentMode:      l.PaymentMode,
			PaidAmount:       utils.FormatMoney(l.PaidAmount),
			ConcessionAmount: utils.FormatMoney(l.ConcessionAmount),
			RunningBalance:   utils.FormatMoney(l.RunningBalance),
		}
	}
	return StatementResponse{
		Account: ToChargeAccountResponse(&s.Account),
		Lines:   lines,
		Balance: ToBalanceResponse(s.Account.ChargeAccountID, &s.Result),
	}
}

// ToCollectionReportResponse converts a domain.CollectionReport to its DTO.
func ToCollectionReportResponse(r *domain.CollectionReport) CollectionReportResponse {
	resp := CollectionReportResponse{
		From:   r.From,
		To:     r.To,
		Groups: make([]CollectionGroupResponse, len(r.Groups)),
	}
	for i, g := range r.Groups {
		resp.Groups[i] = CollectionGroupResponse{
			FeeHead:         g.FeeHead,
			Payments:        ToPaymentEventResponses(g.Events),
			EventCount:      g.EventCount,
			TotalPaid:       utils.FormatMoney(g.TotalPaid),
			TotalConcession: utils.FormatMoney(g.TotalConcession),
		}
	}
	resp.Summary.TotalPaid = utils.FormatMoney(r.TotalPaid)
	resp.Summary.TotalConcession = utils.FormatMoney(r.TotalConcession)
	resp.Summary.TotalCollected = utils.FormatMoney(r.TotalPaid.Add(r.TotalConcession))
	return resp
}

// ToBalanceReportResponse converts a domain.BalanceReport to its DTO.
func ToBalanceReportResponse(r *domain.BalanceReport) BalanceReportResponse {
	resp := BalanceReportResponse{
		PayerType: r.PayerType,
		Groups:    make([]BalanceGroupResponse, len(r.Groups)),
	}
	for i, g := range r.Groups {
		accounts := make([]AccountBalanceResponse, len(g.Accounts))
		for j := range g.Accounts {
			ab := &g.Accounts[j]
			accounts[j] = AccountBalanceResponse{
				Account: ToChargeAccountResponse(&ab.Account),
				Balance: ToBalanceResponse(ab.Account.ChargeAccountID, &ab.Result),
			}
		}
		resp.Groups[i] = BalanceGroupResponse{
			FeeHead:          g.FeeHead,
			Accounts:         accounts,
			TotalOriginal:    utils.FormatMoney(g.TotalOriginal),
			TotalOutstanding: utils.FormatMoney(g.TotalOutstanding),
		}
	}
	resp.Summary.TotalOriginal = utils.FormatMoney(r.TotalOriginal)
	resp.Summary.TotalOutstanding = utils.FormatMoney(r.TotalOutstanding)
	return resp
}

// CollectionReportParams defines query parameters for the collection report.
// Dates are YYYY-MM-DD (to is inclusive) or RFC3339 timestamps (to is exclusive).
type CollectionReportParams struct {
	From   string `form:"from" binding:"required"`
	To     string `form:"to" binding:"required"`
	Format string `form:"format"`
}

// BalanceReportParams defines query parameters for the balance report.
type BalanceReportParams struct {
	PayerType domain.PayerType `form:"payerType" binding:"omitempty,oneof=STUDENT SUPPLIER"`
	Format    string           `form:"format"`
}
