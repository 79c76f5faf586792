package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/school_fee_app/internal/apperrors"
	"github.com/SscSPs/school_fee_app/internal/core/domain"
	mock_repositories "github.com/SscSPs/school_fee_app/internal/core/ports/repositories/mocks"
	portssvc "github.com/SscSPs/school_fee_app/internal/core/ports/services"
	"github.com/SscSPs/school_fee_app/internal/core/services"
	"github.com/SscSPs/school_fee_app/internal/dto"
	"github.com/SscSPs/school_fee_app/internal/utils/accounting"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type ReconciliationServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	accountRepo  *mock_repositories.MockChargeAccountRepositoryFacade
	eventRepo    *mock_repositories.MockPaymentEventRepositoryFacade
	service      portssvc.ReconciliationSvcFacade
	fixedNow     time.Time
	busFee       *domain.ChargeAccount
	busFeeEvents []domain.PaymentEvent
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.accountRepo = mock_repositories.NewMockChargeAccountRepositoryFacade(suite.ctrl)
	suite.eventRepo = mock_repositories.NewMockPaymentEventRepositoryFacade(suite.ctrl)
	suite.fixedNow = time.Date(2024, 7, 15, 9, 30, 0, 0, time.UTC)
	suite.service = services.NewReconciliationService(suite.accountRepo, suite.eventRepo,
		services.WithClock(func() time.Time { return suite.fixedNow }))

	suite.busFee = &domain.ChargeAccount{
		ChargeAccountID: "ca-bus",
		PayerID:         "STU-001",
		PayerType:       domain.PayerStudent,
		FeeHead:         "Bus Fee",
		OriginalAmount:  money("500"),
	}
	suite.busFeeEvents = []domain.PaymentEvent{{
		PaymentEventID:   "ev-1",
		ChargeAccountID:  "ca-bus",
		PaidAmount:       money("200"),
		ConcessionAmount: decimal.Zero,
		PaidAt:           time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		ReferenceNo:      "R-1",
		PaymentMode:      domain.PaymentCash,
	}}
}

func (suite *ReconciliationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReconciliationServiceTestSuite) expectSnapshot() {
	suite.accountRepo.EXPECT().FindChargeAccountByID(gomock.Any(), "ca-bus").Return(suite.busFee, nil)
	suite.eventRepo.EXPECT().ListPaymentEventsByChargeAccount(gomock.Any(), "ca-bus").Return(suite.busFeeEvents, nil)
}

func recordRequest(paid, concession string) dto.RecordPaymentRequest {
	return dto.RecordPaymentRequest{
		PaymentProposalRequest: dto.PaymentProposalRequest{
			PaidAmount:       money(paid),
			ConcessionAmount: money(concession),
		},
		ReferenceNo: "RCPT-42",
	}
}

func (suite *ReconciliationServiceTestSuite) TestGetBalance_Pending() {
	suite.expectSnapshot()

	result, err := suite.service.GetBalance(context.Background(), "ca-bus")

	suite.Require().NoError(err)
	suite.Equal("300.00", result.RemainingBalance.StringFixed(2))
	suite.Equal(domain.Pending, result.Status)
	suite.False(result.IntegrityWarning)
}

func (suite *ReconciliationServiceTestSuite) TestGetBalance_OverappliedIsClampedNotFatal() {
	suite.busFeeEvents = append(suite.busFeeEvents, domain.PaymentEvent{PaidAmount: money("350"), ConcessionAmount: decimal.Zero})
	suite.expectSnapshot()

	result, err := suite.service.GetBalance(context.Background(), "ca-bus")

	suite.Require().NoError(err)
	suite.True(result.RemainingBalance.IsZero())
	suite.True(result.IntegrityWarning)
	suite.Equal("50.00", result.Overapplied.StringFixed(2))
	suite.Equal(domain.Settled, result.Status)
}

func (suite *ReconciliationServiceTestSuite) TestGetBalance_NegativeHistoryIsFlagged() {
	suite.busFeeEvents = append(suite.busFeeEvents, domain.PaymentEvent{PaidAmount: money("-50"), ConcessionAmount: decimal.Zero})
	suite.expectSnapshot()

	result, err := suite.service.GetBalance(context.Background(), "ca-bus")

	suite.Require().NoError(err)
	suite.Equal("350.00", result.RemainingBalance.StringFixed(2))
	suite.True(result.IntegrityWarning)
	suite.True(result.Overapplied.IsZero())
	suite.Equal(domain.Pending, result.Status)
}

func (suite *ReconciliationServiceTestSuite) TestGetBalance_NotFound() {
	suite.accountRepo.EXPECT().FindChargeAccountByID(gomock.Any(), "nope").Return(nil, apperrors.ErrNotFound)

	result, err := suite.service.GetBalance(context.Background(), "nope")

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReconciliationServiceTestSuite) TestGetBalance_HistoryUnavailable() {
	remoteErr := apperrors.NewRemoteError("billing api unavailable", errors.New("connection refused"))
	suite.accountRepo.EXPECT().FindChargeAccountByID(gomock.Any(), "ca-bus").Return(suite.busFee, nil)
	suite.eventRepo.EXPECT().ListPaymentEventsByChargeAccount(gomock.Any(), "ca-bus").Return(nil, remoteErr)

	_, err := suite.service.GetBalance(context.Background(), "ca-bus")

	suite.ErrorIs(err, apperrors.ErrRemote)
}

func (suite *ReconciliationServiceTestSuite) TestPreviewPayment() {
	tests := []struct {
		name       string
		paid       string
		concession string
		wantErr    error
		wantRemain string
		wantStatus domain.BalanceStatus
	}{
		{name: "exact settlement", paid: "300", concession: "0", wantRemain: "0.00", wantStatus: domain.Settled},
		{name: "partial with concession", paid: "100", concession: "50", wantRemain: "150.00", wantStatus: domain.Pending},
		{name: "one over", paid: "301", concession: "0", wantErr: accounting.ErrExceedsBalance},
		{name: "nothing", paid: "0", concession: "0", wantErr: accounting.ErrNothingToApply},
		{name: "sub-cent", paid: "10.005", concession: "0", wantErr: accounting.ErrPrecision},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.expectSnapshot()

			result, err := suite.service.PreviewPayment(context.Background(), "ca-bus", domain.PaymentProposal{
				PaidAmount:       money(tt.paid),
				ConcessionAmount: money(tt.concession),
			})

			if tt.wantErr != nil {
				suite.ErrorIs(err, tt.wantErr)
				suite.Nil(result)
				return
			}
			suite.Require().NoError(err)
			suite.Equal(tt.wantRemain, result.RemainingBalance.StringFixed(2))
			suite.Equal(tt.wantStatus, result.Status)
		})
	}
}

func (suite *ReconciliationServiceTestSuite) TestRecordPayment_Success() {
	suite.expectSnapshot()
	var stored domain.PaymentEvent
	suite.eventRepo.EXPECT().AppendPaymentEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event domain.PaymentEvent) error {
			stored = event
			return nil
		})

	event, result, err := suite.service.RecordPayment(context.Background(), "ca-bus", recordRequest("300", "0"), "cashier-1")

	suite.Require().NoError(err)
	suite.Equal(stored, *event)
	suite.Equal("ca-bus", event.ChargeAccountID)
	suite.Equal("RCPT-42", event.ReferenceNo)
	suite.Equal(domain.PaymentCash, event.PaymentMode)
	suite.Equal(suite.fixedNow, event.PaidAt)
	suite.Equal("cashier-1", event.CreatedBy)
	suite.NotEmpty(event.PaymentEventID)
	suite.True(result.RemainingBalance.IsZero())
	suite.Equal(domain.Settled, result.Status)
}

func (suite *ReconciliationServiceTestSuite) TestRecordPayment_ExplicitPaidAt() {
	suite.expectSnapshot()
	paidAt := time.Date(2024, 7, 1, 12, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
	req := recordRequest("50", "0")
	req.PaidAt = &paidAt
	req.PaymentMode = domain.PaymentCheque
	suite.eventRepo.EXPECT().AppendPaymentEvent(gomock.Any(), gomock.Any()).Return(nil)

	event, _, err := suite.service.RecordPayment(context.Background(), "ca-bus", req, "cashier-1")

	suite.Require().NoError(err)
	suite.True(paidAt.Equal(event.PaidAt))
	suite.Equal(time.UTC, event.PaidAt.Location())
	suite.Equal(domain.PaymentCheque, event.PaymentMode)
}

func (suite *ReconciliationServiceTestSuite) TestRecordPayment_ExceedsBalanceNeverReachesStore() {
	suite.expectSnapshot()

	event, result, err := suite.service.RecordPayment(context.Background(), "ca-bus", recordRequest("301", "0"), "cashier-1")

	suite.Nil(event)
	suite.Nil(result)
	suite.ErrorIs(err, accounting.ErrExceedsBalance)
}

func (suite *ReconciliationServiceTestSuite) TestRecordPayment_StoreRejectsConcurrentPayment() {
	suite.expectSnapshot()
	suite.eventRepo.EXPECT().AppendPaymentEvent(gomock.Any(), gomock.Any()).Return(accounting.ErrExceedsBalance)

	_, _, err := suite.service.RecordPayment(context.Background(), "ca-bus", recordRequest("300", "0"), "cashier-1")

	suite.ErrorIs(err, accounting.ErrExceedsBalance)
}

func (suite *ReconciliationServiceTestSuite) TestRecordPayment_StoreFailureIsRemote() {
	suite.expectSnapshot()
	suite.eventRepo.EXPECT().AppendPaymentEvent(gomock.Any(), gomock.Any()).Return(errors.New("broken pipe"))

	_, _, err := suite.service.RecordPayment(context.Background(), "ca-bus", recordRequest("10", "0"), "cashier-1")

	suite.ErrorIs(err, apperrors.ErrRemote)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(502, appErr.Code)
}

func (suite *ReconciliationServiceTestSuite) TestListPayments_ClampsLimit() {
	token := "next"
	suite.accountRepo.EXPECT().FindChargeAccountByID(gomock.Any(), "ca-bus").Return(suite.busFee, nil)
	suite.eventRepo.EXPECT().ListPaymentEventsPage(gomock.Any(), "ca-bus", 20, nil).Return(suite.busFeeEvents, &token, nil)

	resp, err := suite.service.ListPayments(context.Background(), "ca-bus", dto.ListPaymentsParams{Limit: 0})

	suite.Require().NoError(err)
	suite.Len(resp.Payments, 1)
	suite.Equal("200.00", resp.Payments[0].PaidAmount)
	suite.Equal(&token, resp.NextToken)
}

func (suite *ReconciliationServiceTestSuite) TestListPayments_UnknownAccount() {
	suite.accountRepo.EXPECT().FindChargeAccountByID(gomock.Any(), "nope").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.ListPayments(context.Background(), "nope", dto.ListPaymentsParams{Limit: 10})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReconciliationServiceTestSuite) TestGetStatement() {
	suite.busFeeEvents = append(suite.busFeeEvents, domain.PaymentEvent{
		PaymentEventID:   "ev-2",
		PaidAmount:       money("250"),
		ConcessionAmount: money("50"),
	})
	suite.expectSnapshot()

	statement, err := suite.service.GetStatement(context.Background(), "ca-bus")

	suite.Require().NoError(err)
	suite.Equal("ca-bus", statement.Account.ChargeAccountID)
	suite.Require().Len(statement.Lines, 2)
	suite.Equal("300.00", statement.Lines[0].RunningBalance.StringFixed(2))
	suite.Equal("0.00", statement.Lines[1].RunningBalance.StringFixed(2))
	suite.Equal(domain.Settled, statement.Result.Status)
}

func (suite *ReconciliationServiceTestSuite) TestQuoteDiscount() {
	result, err := suite.service.QuoteDiscount(context.Background(), money("33.33"), money("50"))
	suite.Require().NoError(err)
	suite.Equal("16.67", result.DiscountAmount.StringFixed(2))
	suite.Equal("16.66", result.NetPayable.StringFixed(2))

	_, err = suite.service.QuoteDiscount(context.Background(), money("100"), money("101"))
	suite.ErrorIs(err, accounting.ErrInvalidDiscount)

	_, err = suite.service.QuoteDiscount(context.Background(), money("100.001"), money("10"))
	suite.ErrorIs(err, accounting.ErrPrecision)
}

func TestReconciliationService(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
