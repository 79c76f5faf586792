package billingapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/school_fee_app/internal/apperrors"
	"github.com/SscSPs/school_fee_app/internal/core/domain"
	portsrepo "github.com/SscSPs/school_fee_app/internal/core/ports/repositories"
	"github.com/SscSPs/school_fee_app/internal/utils/accounting"
)

var (
	_ portsrepo.ChargeAccountRepositoryFacade = (*Client)(nil)
	_ portsrepo.PaymentEventRepositoryFacade  = (*Client)(nil)
)

// NewRepositoryProvider exposes the client as both history store ports.
func NewRepositoryProvider(c *Client) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ChargeAccountRepo: c,
		PaymentEventRepo:  c,
	}
}

func (c *Client) FindChargeAccountByID(ctx context.Context, chargeAccountID string) (*domain.ChargeAccount, error) {
	var payload chargeAccountPayload
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, "charge-accounts", chargeAccountID), nil, &payload, apperrors.ErrDuplicate); err != nil {
		return nil, err
	}
	account := payload.toDomain()
	return &account, nil
}

func (c *Client) FindChargeAccountsByIDs(ctx context.Context, chargeAccountIDs []string) (map[string]domain.ChargeAccount, error) {
	result := make(map[string]domain.ChargeAccount, len(chargeAccountIDs))
	if len(chargeAccountIDs) == 0 {
		return result, nil
	}
	accounts, err := c.listChargeAccounts(ctx, url.Values{"ids": {strings.Join(chargeAccountIDs, ",")}})
	if err != nil {
		return nil, err
	}
	for _, account := range accounts {
		result[account.ChargeAccountID] = account
	}
	return result, nil
}

func (c *Client) ListChargeAccountsByPayer(ctx context.Context, payerID string) ([]domain.ChargeAccount, error) {
	return c.listChargeAccounts(ctx, url.Values{"payerId": {payerID}})
}

func (c *Client) ListChargeAccounts(ctx context.Context, payerType domain.PayerType) ([]domain.ChargeAccount, error) {
	query := url.Values{}
	if payerType != "" {
		query.Set("payerType", string(payerType))
	}
	return c.listChargeAccounts(ctx, query)
}

func (c *Client) listChargeAccounts(ctx context.Context, query url.Values) ([]domain.ChargeAccount, error) {
	var list chargeAccountList
	if err := c.do(ctx, http.MethodGet, c.endpoint(query, "charge-accounts"), nil, &list, apperrors.ErrDuplicate); err != nil {
		return nil, err
	}
	accounts := make([]domain.ChargeAccount, len(list.ChargeAccounts))
	for i, p := range list.ChargeAccounts {
		accounts[i] = p.toDomain()
	}
	return accounts, nil
}

func (c *Client) SaveChargeAccount(ctx context.Context, account domain.ChargeAccount) error {
	return c.do(ctx, http.MethodPost, c.endpoint(nil, "charge-accounts"), fromDomainChargeAccount(account), nil, apperrors.ErrDuplicate)
}

func (c *Client) ListPaymentEventsByChargeAccount(ctx context.Context, chargeAccountID string) ([]domain.PaymentEvent, error) {
	var list paymentEventList
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, "charge-accounts", chargeAccountID, "payments"), nil, &list, apperrors.ErrDuplicate); err != nil {
		return nil, err
	}
	events := toDomainPaymentEvents(list.Payments)
	sortChronologically(events)
	return events, nil
}

func (c *Client) ListPaymentEventsByChargeAccounts(ctx context.Context, chargeAccountIDs []string) (map[string][]domain.PaymentEvent, error) {
	result := make(map[string][]domain.PaymentEvent, len(chargeAccountIDs))
	if len(chargeAccountIDs) == 0 {
		return result, nil
	}
	events, err := c.listPayments(ctx, url.Values{"chargeAccountIds": {strings.Join(chargeAccountIDs, ",")}})
	if err != nil {
		return nil, err
	}
	for _, event := range events {
		result[event.ChargeAccountID] = append(result[event.ChargeAccountID], event)
	}
	return result, nil
}

func (c *Client) ListPaymentEventsBetween(ctx context.Context, from, to time.Time) ([]domain.PaymentEvent, error) {
	events, err := c.listPayments(ctx, url.Values{
		"from": {from.UTC().Format(time.RFC3339Nano)},
		"to":   {to.UTC().Format(time.RFC3339Nano)},
	})
	if err != nil {
		return nil, err
	}
	// The range is half-open here even if the remote side treats "to" as inclusive.
	filtered := events[:0]
	for _, event := range events {
		if !event.PaidAt.Before(from) && event.PaidAt.Before(to) {
			filtered = append(filtered, event)
		}
	}
	return filtered, nil
}

func (c *Client) listPayments(ctx context.Context, query url.Values) ([]domain.PaymentEvent, error) {
	var list paymentEventList
	if err := c.do(ctx, http.MethodGet, c.endpoint(query, "payments"), nil, &list, apperrors.ErrDuplicate); err != nil {
		return nil, err
	}
	events := toDomainPaymentEvents(list.Payments)
	sortChronologically(events)
	return events, nil
}

func (c *Client) ListPaymentEventsPage(ctx context.Context, chargeAccountID string, limit int, nextToken *string) ([]domain.PaymentEvent, *string, error) {
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	if nextToken != nil && *nextToken != "" {
		query.Set("nextToken", *nextToken)
	}
	var list paymentEventList
	if err := c.do(ctx, http.MethodGet, c.endpoint(query, "charge-accounts", chargeAccountID, "payments"), nil, &list, apperrors.ErrDuplicate); err != nil {
		return nil, nil, err
	}
	if list.NextToken != nil && *list.NextToken == "" {
		list.NextToken = nil
	}
	return toDomainPaymentEvents(list.Payments), list.NextToken, nil
}

// AppendPaymentEvent posts the event. The Billing API owns the balance check for its
// histories; it answers 409 when the event would exceed the remaining balance.
func (c *Client) AppendPaymentEvent(ctx context.Context, event domain.PaymentEvent) error {
	target := c.endpoint(nil, "charge-accounts", event.ChargeAccountID, "payments")
	err := c.do(ctx, http.MethodPost, target, fromDomainPaymentEvent(event), nil, accounting.ErrExceedsBalance)
	if err != nil {
		return fmt.Errorf("append payment event %s: %w", event.PaymentEventID, err)
	}
	return nil
}

func sortChronologically(events []domain.PaymentEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].PaidAt.Equal(events[j].PaidAt) {
			return events[i].PaidAt.Before(events[j].PaidAt)
		}
		return events[i].PaymentEventID < events[j].PaymentEventID
	})
}
