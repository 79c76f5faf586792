package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/school_fee_app/internal/apperrors"
	"github.com/SscSPs/school_fee_app/internal/core/domain"
	portsrepo "github.com/SscSPs/school_fee_app/internal/core/ports/repositories"
	"github.com/SscSPs/school_fee_app/internal/models"
	"github.com/SscSPs/school_fee_app/internal/utils/accounting"
	"github.com/SscSPs/school_fee_app/internal/utils/mapping"
	"github.com/SscSPs/school_fee_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const paymentEventColumns = `payment_event_id, charge_account_id, paid_amount, concession_amount, paid_at,
	reference_no, payment_mode, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentEventRepository struct {
	BaseRepository
}

func newPgxPaymentEventRepository(pool *pgxpool.Pool) *PgxPaymentEventRepository {
	return &PgxPaymentEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentEventRepositoryFacade = (*PgxPaymentEventRepository)(nil)

func scanPaymentEvent(row pgx.CollectableRow) (models.PaymentEvent, error) {
	var m models.PaymentEvent
	err := row.Scan(
		&m.PaymentEventID,
		&m.ChargeAccountID,
		&m.PaidAmount,
		&m.ConcessionAmount,
		&m.PaidAt,
		&m.ReferenceNo,
		&m.PaymentMode,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxPaymentEventRepository) collect(ctx context.Context, what string, query string, args ...any) ([]domain.PaymentEvent, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewRemoteError("failed to query "+what, err)
	}
	modelEvents, err := pgx.CollectRows(rows, scanPaymentEvent)
	if err != nil {
		return nil, apperrors.NewRemoteError("failed to scan "+what, err)
	}
	return mapping.ToDomainPaymentEvents(modelEvents), nil
}

// ListPaymentEventsByChargeAccount returns the full history in chronological order.
func (r *PgxPaymentEventRepository) ListPaymentEventsByChargeAccount(ctx context.Context, chargeAccountID string) ([]domain.PaymentEvent, error) {
	query := `
		SELECT ` + paymentEventColumns + `
		FROM payment_events
		WHERE charge_account_id = $1
		ORDER BY paid_at, payment_event_id;
	`
	return r.collect(ctx, "payment events for "+chargeAccountID, query, chargeAccountID)
}

// ListPaymentEventsByChargeAccounts returns several histories keyed by charge account ID.
func (r *PgxPaymentEventRepository) ListPaymentEventsByChargeAccounts(ctx context.Context, chargeAccountIDs []string) (map[string][]domain.PaymentEvent, error) {
	result := make(map[string][]domain.PaymentEvent, len(chargeAccountIDs))
	if len(chargeAccountIDs) == 0 {
		return result, nil
	}
	query := `
		SELECT ` + paymentEventColumns + `
		FROM payment_events
		WHERE charge_account_id = ANY($1)
		ORDER BY charge_account_id, paid_at, payment_event_id;
	`
	events, err := r.collect(ctx, "payment events by charge accounts", query, chargeAccountIDs)
	if err != nil {
		return nil, err
	}
	for _, event := range events {
		result[event.ChargeAccountID] = append(result[event.ChargeAccountID], event)
	}
	return result, nil
}

// ListPaymentEventsBetween returns every event with from <= paid_at < to.
func (r *PgxPaymentEventRepository) ListPaymentEventsBetween(ctx context.Context, from, to time.Time) ([]domain.PaymentEvent, error) {
	query := `
		SELECT ` + paymentEventColumns + `
		FROM payment_events
		WHERE paid_at >= $1 AND paid_at < $2
		ORDER BY paid_at, payment_event_id;
	`
	return r.collect(ctx, "payment events in range", query, from, to)
}

// ListPaymentEventsPage returns one chronological page of a charge account's history.
// The token points at the last event of the previous page.
func (r *PgxPaymentEventRepository) ListPaymentEventsPage(ctx context.Context, chargeAccountID string, limit int, nextToken *string) ([]domain.PaymentEvent, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells us whether another page exists.
	fetchLimit := limit + 1

	var (
		query string
		args  []any
	)
	if nextToken != nil && *nextToken != "" {
		lastPaidAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %w", apperrors.ErrValidation, decodeErr))
		}
		query = `
			SELECT ` + paymentEventColumns + `
			FROM payment_events
			WHERE charge_account_id = $1 AND (paid_at, payment_event_id) > ($2, $3)
			ORDER BY paid_at, payment_event_id
			LIMIT $4;
		`
		args = []any{chargeAccountID, lastPaidAt, lastID, fetchLimit}
	} else {
		query = `
			SELECT ` + paymentEventColumns + `
			FROM payment_events
			WHERE charge_account_id = $1
			ORDER BY paid_at, payment_event_id
			LIMIT $2;
		`
		args = []any{chargeAccountID, fetchLimit}
	}

	events, err := r.collect(ctx, "payment event page for "+chargeAccountID, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(events) > limit {
		events = events[:limit]
		last := events[limit-1]
		token := pagination.EncodeToken(last.PaidAt, last.PaymentEventID)
		nextTokenVal = &token
	}
	return events, nextTokenVal, nil
}

// AppendPaymentEvent inserts event after re-checking the balance with the charge account
// row locked, so concurrent payments against one account are serialized.
func (r *PgxPaymentEventRepository) AppendPaymentEvent(ctx context.Context, event domain.PaymentEvent) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	var originalAmount decimal.Decimal
	err = tx.QueryRow(ctx, `
		SELECT original_amount FROM charge_accounts WHERE charge_account_id = $1 FOR UPDATE;
	`, event.ChargeAccountID).Scan(&originalAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: charge account %s", apperrors.ErrNotFound, event.ChargeAccountID)
		}
		return apperrors.NewRemoteError("failed to lock charge account "+event.ChargeAccountID, err)
	}

	var applied domain.PaymentEvent
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(paid_amount), 0), COALESCE(SUM(concession_amount), 0)
		FROM payment_events
		WHERE charge_account_id = $1;
	`, event.ChargeAccountID).Scan(&applied.PaidAmount, &applied.ConcessionAmount)
	if err != nil {
		return apperrors.NewRemoteError("failed to sum payment history for "+event.ChargeAccountID, err)
	}

	if err = checkAgainstStoredHistory(originalAmount, applied, event); err != nil {
		return err
	}

	m := mapping.ToModelPaymentEvent(event)
	_, err = tx.Exec(ctx, `
		INSERT INTO payment_events (`+paymentEventColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`,
		m.PaymentEventID,
		m.ChargeAccountID,
		m.PaidAmount,
		m.ConcessionAmount,
		m.PaidAt,
		m.ReferenceNo,
		m.PaymentMode,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("%w: payment event %s", apperrors.ErrDuplicate, m.PaymentEventID)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: charge account %s", apperrors.ErrNotFound, m.ChargeAccountID)
		case pgCheckViolation:
			return fmt.Errorf("%w: payment event rejected by database: %v", apperrors.ErrValidation, err)
		}
		return apperrors.NewRemoteError("failed to insert payment event", err)
	}

	return r.Commit(ctx, tx)
}

// checkAgainstStoredHistory validates event against the totals read under the row lock.
// applied carries the summed paid and concession amounts of the stored history.
func checkAgainstStoredHistory(originalAmount decimal.Decimal, applied, event domain.PaymentEvent) error {
	current, err := accounting.ComputeBalance(originalAmount, []domain.PaymentEvent{applied})
	if err != nil {
		return err
	}
	return accounting.ValidateProposedEvent(current.RemainingBalance, event.PaidAmount, event.ConcessionAmount)
}
