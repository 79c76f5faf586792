package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/school_fee_app/internal/apperrors"
	"github.com/SscSPs/school_fee_app/internal/core/domain"
	mock_repositories "github.com/SscSPs/school_fee_app/internal/core/ports/repositories/mocks"
	"github.com/SscSPs/school_fee_app/internal/core/services"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionReport_GroupsByFeeHead(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountRepo := mock_repositories.NewMockChargeAccountReader(ctrl)
	eventRepo := mock_repositories.NewMockPaymentEventReader(ctrl)
	svc := services.NewReportingService(accountRepo, eventRepo)

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	events := []domain.PaymentEvent{
		{PaymentEventID: "e1", ChargeAccountID: "bus-1", PaidAmount: money("0.10"), ConcessionAmount: decimal.Zero},
		{PaymentEventID: "e2", ChargeAccountID: "tuition-1", PaidAmount: money("1000"), ConcessionAmount: money("100")},
		{PaymentEventID: "e3", ChargeAccountID: "bus-2", PaidAmount: money("0.20"), ConcessionAmount: decimal.Zero},
		{PaymentEventID: "e4", ChargeAccountID: "ghost", PaidAmount: money("5"), ConcessionAmount: decimal.Zero},
	}
	eventRepo.EXPECT().ListPaymentEventsBetween(gomock.Any(), from, to).Return(events, nil)
	accountRepo.EXPECT().FindChargeAccountsByIDs(gomock.Any(), []string{"bus-1", "tuition-1", "bus-2", "ghost"}).
		Return(map[string]domain.ChargeAccount{
			"bus-1":     {ChargeAccountID: "bus-1", FeeHead: "Bus Fee"},
			"bus-2":     {ChargeAccountID: "bus-2", FeeHead: "Bus Fee"},
			"tuition-1": {ChargeAccountID: "tuition-1", FeeHead: "Tuition"},
		}, nil)

	report, err := svc.CollectionReport(context.Background(), from, to)

	require.NoError(t, err)
	require.Len(t, report.Groups, 3)
	assert.Equal(t, "Bus Fee", report.Groups[0].FeeHead)
	assert.Equal(t, 2, report.Groups[0].EventCount)
	assert.Equal(t, "0.30", report.Groups[0].TotalPaid.StringFixed(2))
	assert.Equal(t, "Tuition", report.Groups[1].FeeHead)
	assert.Equal(t, "100.00", report.Groups[1].TotalConcession.StringFixed(2))
	assert.Equal(t, services.UnknownFeeHead, report.Groups[2].FeeHead)

	assert.Equal(t, "1005.30", report.TotalPaid.StringFixed(2))
	assert.Equal(t, "100.00", report.TotalConcession.StringFixed(2))

	sum := decimal.Zero
	for _, g := range report.Groups {
		sum = sum.Add(g.TotalPaid)
	}
	assert.True(t, sum.Equal(report.TotalPaid))
}

func TestCollectionReport_RejectsInvertedRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := services.NewReportingService(mock_repositories.NewMockChargeAccountReader(ctrl), mock_repositories.NewMockPaymentEventReader(ctrl))
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.CollectionReport(context.Background(), day, day)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestBalanceReport_OutstandingByFeeHead(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountRepo := mock_repositories.NewMockChargeAccountReader(ctrl)
	eventRepo := mock_repositories.NewMockPaymentEventReader(ctrl)
	svc := services.NewReportingService(accountRepo, eventRepo)

	accounts := []domain.ChargeAccount{
		{ChargeAccountID: "t-2", PayerID: "STU-002", FeeHead: "Tuition", OriginalAmount: money("1000")},
		{ChargeAccountID: "b-1", PayerID: "STU-001", FeeHead: "Bus Fee", OriginalAmount: money("500")},
		{ChargeAccountID: "t-1", PayerID: "STU-001", FeeHead: "Tuition", OriginalAmount: money("1000")},
	}
	accountRepo.EXPECT().ListChargeAccounts(gomock.Any(), domain.PayerStudent).Return(accounts, nil)
	eventRepo.EXPECT().ListPaymentEventsByChargeAccounts(gomock.Any(), []string{"t-2", "b-1", "t-1"}).
		Return(map[string][]domain.PaymentEvent{
			"b-1": {{PaidAmount: money("200"), ConcessionAmount: decimal.Zero}},
			"t-1": {{PaidAmount: money("900"), ConcessionAmount: money("100")}},
			// over-applied history is clamped, never negative
			"t-2": {{PaidAmount: money("1200"), ConcessionAmount: decimal.Zero}},
		}, nil)

	report, err := svc.BalanceReport(context.Background(), domain.PayerStudent)

	require.NoError(t, err)
	require.Len(t, report.Groups, 2)

	bus := report.Groups[0]
	assert.Equal(t, "Bus Fee", bus.FeeHead)
	assert.Equal(t, "300.00", bus.TotalOutstanding.StringFixed(2))

	tuition := report.Groups[1]
	require.Len(t, tuition.Accounts, 2)
	assert.Equal(t, "STU-001", tuition.Accounts[0].Account.PayerID)
	assert.Equal(t, "0.00", tuition.TotalOutstanding.StringFixed(2))
	assert.True(t, tuition.Accounts[1].Result.IntegrityWarning)

	assert.Equal(t, "2500.00", report.TotalOriginal.StringFixed(2))
	assert.Equal(t, "300.00", report.TotalOutstanding.StringFixed(2))
}

func TestBalanceReport_UnknownPayerType(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := services.NewReportingService(mock_repositories.NewMockChargeAccountReader(ctrl), mock_repositories.NewMockPaymentEventReader(ctrl))

	_, err := svc.BalanceReport(context.Background(), domain.PayerType("PARENT"))

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
