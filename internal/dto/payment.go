package dto

import (
	"time"

	"github.com/SscSPs/school_fee_app/internal/core/domain"
	"github.com/SscSPs/school_fee_app/internal/utils"
	"github.com/shopspring/decimal"
)

// PaymentProposalRequest is a payment/concession pair to validate.
type PaymentProposalRequest struct {
	PaidAmount       decimal.Decimal `json:"paidAmount" binding:"gte=0"`
	ConcessionAmount decimal.Decimal `json:"concessionAmount" binding:"gte=0"`
}

// ToDomain converts the request into a domain.PaymentProposal.
func (r PaymentProposalRequest) ToDomain() domain.PaymentProposal {
	return domain.PaymentProposal{PaidAmount: r.PaidAmount, ConcessionAmount: r.ConcessionAmount}
}

// RecordPaymentRequest defines the data needed to record a payment.
type RecordPaymentRequest struct {
	PaymentProposalRequest
	ReferenceNo string             `json:"referenceNo" binding:"required,notblank,max=64"`
	PaymentMode domain.PaymentMode `json:"paymentMode" binding:"omitempty,oneof=CASH CHEQUE ONLINE OTHER"`
	PaidAt      *time.Time         `json:"paidAt"` // Optional, defaults to now
	Notes       string             `json:"notes" binding:"max=500"`
}

// PaymentEventResponse defines the data returned for a payment event.
type PaymentEventResponse struct {
	PaymentEventID   string             `json:"paymentEventID"`
	ChargeAccountID  string             `json:"chargeAccountID"`
	PaidAmount       string             `json:"paidAmount"`
	ConcessionAmount string             `json:"concessionAmount"`
	PaidAt           time.Time          `json:"paidAt"`
	ReferenceNo      string             `json:"referenceNo"`
	PaymentMode      domain.PaymentMode `json:"paymentMode"`
	Notes            string             `json:"notes"`
	CreatedBy        string             `json:"createdBy"`
}

// BalanceResponse defines the reconciled state returned to clients.
type BalanceResponse struct {
	ChargeAccountID  string               `json:"chargeAccountID,omitempty"`
	OriginalAmount   string               `json:"originalAmount"`
	TotalPaid        string               `json:"totalPaid"`
	TotalConcession  string               `json:"totalConcession"`
	RemainingBalance string               `json:"remainingBalance"`
	Status           domain.BalanceStatus `json:"status"`
	IntegrityWarning bool                 `json:"integrityWarning,omitempty"`
	Overapplied      string               `json:"overapplied,omitempty"`
}

// RecordPaymentResponse is returned after a payment is accepted.
type RecordPaymentResponse struct {
	Payment PaymentEventResponse `json:"payment"`
	Balance BalanceResponse      `json:"balance"`
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListPaymentsResponse wraps one page of payment history.
type ListPaymentsResponse struct {
	Payments  []PaymentEventResponse `json:"payments"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// DiscountQuoteRequest asks for a discount on a settlement amount.
type DiscountQuoteRequest struct {
	SettlementAmount decimal.Decimal `json:"settlementAmount" binding:"gte=0"`
	DiscountPercent  decimal.Decimal `json:"discountPercent"`
}

// DiscountQuoteResponse is the computed discount.
type DiscountQuoteResponse struct {
	SettlementAmount string `json:"settlementAmount"`
	DiscountPercent  string `json:"discountPercent"`
	DiscountAmount   string `json:"discountAmount"`
	NetPayable       string `json:"netPayable"`
}

// ToPaymentEventResponse converts a domain.PaymentEvent to its DTO.
func ToPaymentEventResponse(e *domain.PaymentEvent) PaymentEventResponse {
	return PaymentEventResponse{
		PaymentEventID:   e.PaymentEventID,
		ChargeAccountID:  e.ChargeAccountID,
		PaidAmount:       utils.FormatMoney(e.PaidAmount),
		ConcessionAmount: utils.FormatMoney(e.ConcessionAmount),
		PaidAt:           e.PaidAt,
		ReferenceNo:      e.ReferenceNo,
		PaymentMode:      e.PaymentMode,
		Notes:            e.Notes,
		CreatedBy:        e.CreatedBy,
	}
}

// ToPaymentEventResponses converts a slice of domain.PaymentEvent.
func ToPaymentEventResponses(events []domain.PaymentEvent) []PaymentEventResponse {
	res := make([]PaymentEventResponse, len(events))
	for i := range events {
		res[i] = ToPaymentEventResponse(&events[i])
	}
	return res
}

// ToBalanceResponse converts a domain.ReconciliationResult to its DTO.
func ToBalanceResponse(chargeAccountID string, r *domain.ReconciliationResult) BalanceResponse {
	resp := BalanceResponse{
		ChargeAccountID:  chargeAccountID,
		OriginalAmount:   utils.FormatMoney(r.OriginalAmount),
		TotalPaid:        utils.FormatMoney(r.TotalPaid),
		TotalConcession:  utils.FormatMoney(r.TotalConcession),
		RemainingBalance: utils.FormatMoney(r.RemainingBalance),
		Status:           r.Status,
		IntegrityWarning: r.IntegrityWarning,
	}
	if r.IntegrityWarning {
		resp.Overapplied = utils.FormatMoney(r.Overapplied)
	}
	return resp
}

// ToDiscountQuoteResponse converts a domain.DiscountResult to its DTO.
func ToDiscountQuoteResponse(r *domain.DiscountResult) DiscountQuoteResponse {
	return DiscountQuoteResponse{
		SettlementAmount: utils.FormatMoney(r.SettlementAmount),
		DiscountPercent:  r.DiscountPercent.String(),
		DiscountAmount:   utils.FormatMoney(r.DiscountAmount),
		NetPayable:       utils.FormatMoney(r.NetPayable),
	}
}
