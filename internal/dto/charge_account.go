package dto

import (
	"time"

	"github.com/SscSPs/school_fee_app/internal/core/domain"
	"github.com/SscSPs/school_fee_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateChargeAccountRequest defines the data needed to assign a fee head to a payer.
type CreateChargeAccountRequest struct {
	PayerID        string           `json:"payerID" binding:"required,notblank"`
	PayerType      domain.PayerType `json:"payerType" binding:"required,oneof=STUDENT SUPPLIER"`
	FeeHead        string           `json:"feeHead" binding:"required,notblank,max=100"`
	AcademicYear   string           `json:"academicYear" binding:"max=20"`
	OriginalAmount decimal.Decimal  `json:"originalAmount" binding:"gte=0"`
}

// ChargeAccountResponse defines the data returned for a charge account.
type ChargeAccountResponse struct {
	ChargeAccountID string           `json:"chargeAccountID"`
	PayerID         string           `json:"payerID"`
	PayerType       domain.PayerType `json:"payerType"`
	FeeHead         string           `json:"feeHead"`
	AcademicYear    string           `json:"academicYear"`
	OriginalAmount  string           `json:"originalAmount"`
	CreatedAt       time.Time        `json:"createdAt"`
	CreatedBy       string           `json:"createdBy"`
}

// ListChargeAccountsResponse wraps a list of charge accounts.
type ListChargeAccountsResponse struct {
	ChargeAccounts []ChargeAccountResponse `json:"chargeAccounts"`
}

// ToChargeAccountResponse converts a domain.ChargeAccount to its DTO.
func ToChargeAccountResponse(acc *domain.ChargeAccount) ChargeAccountResponse {
	return ChargeAccountResponse{
		ChargeAccountID: acc.ChargeAccountID,
		PayerID:         acc.PayerID,
		PayerType:       acc.PayerType,
		FeeHead:         acc.FeeHead,
		AcademicYear:    acc.AcademicYear,
		OriginalAmount:  utils.FormatMoney(acc.OriginalAmount),
		CreatedAt:       acc.CreatedAt,
		CreatedBy:       acc.CreatedBy,
	}
}

// ToListChargeAccountsResponse converts a slice of domain.ChargeAccount.
func ToListChargeAccountsResponse(accounts []domain.ChargeAccount) ListChargeAccountsResponse {
	res := make([]ChargeAccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToChargeAccountResponse(&accounts[i])
	}
	return ListChargeAccountsResponse{ChargeAccounts: res}
}
