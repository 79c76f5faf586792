package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/school_fee_app/internal/apperrors"
	"github.com/SscSPs/school_fee_app/internal/core/domain"
	portsrepo "github.com/SscSPs/school_fee_app/internal/core/ports/repositories"
	"github.com/SscSPs/school_fee_app/internal/models"
	"github.com/SscSPs/school_fee_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const chargeAccountColumns = `charge_account_id, payer_id, payer_type, fee_head, academic_year, original_amount,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxChargeAccountRepository struct {
	BaseRepository
}

func newPgxChargeAccountRepository(pool *pgxpool.Pool) *PgxChargeAccountRepository {
	return &PgxChargeAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ChargeAccountRepositoryFacade = (*PgxChargeAccountRepository)(nil)

func scanChargeAccount(row pgx.CollectableRow) (models.ChargeAccount, error) {
	var m models.ChargeAccount
	err := row.Scan(
		&m.ChargeAccountID,
		&m.PayerID,
		&m.PayerType,
		&m.FeeHead,
		&m.AcademicYear,
		&m.OriginalAmount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxChargeAccountRepository) collect(ctx context.Context, what string, query string, args ...any) ([]domain.ChargeAccount, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewRemoteError("failed to query "+what, err)
	}
	modelAccounts, err := pgx.CollectRows(rows, scanChargeAccount)
	if err != nil {
		return nil, apperrors.NewRemoteError("failed to scan "+what, err)
	}

	accounts := make([]domain.ChargeAccount, len(modelAccounts))
	for i, m := range modelAccounts {
		accounts[i] = mapping.ToDomainChargeAccount(m)
	}
	return accounts, nil
}

// SaveChargeAccount inserts a new charge account.
func (r *PgxChargeAccountRepository) SaveChargeAccount(ctx context.Context, account domain.ChargeAccount) error {
	m := mapping.ToModelChargeAccount(account)
	query := `
		INSERT INTO charge_accounts (` + chargeAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ChargeAccountID,
		m.PayerID,
		m.PayerType,
		m.FeeHead,
		m.AcademicYear,
		m.OriginalAmount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("%w: payer %s already has fee head %q for %q", apperrors.ErrDuplicate, m.PayerID, m.FeeHead, m.AcademicYear)
		case pgCheckViolation:
			return fmt.Errorf("%w: charge account rejected by database: %v", apperrors.ErrValidation, err)
		}
		return apperrors.NewRemoteError("failed to save charge account "+m.ChargeAccountID, err)
	}
	return nil
}

// FindChargeAccountByID retrieves one charge account.
func (r *PgxChargeAccountRepository) FindChargeAccountByID(ctx context.Context, chargeAccountID string) (*domain.ChargeAccount, error) {
	query := `SELECT ` + chargeAccountColumns + ` FROM charge_accounts WHERE charge_account_id = $1;`
	rows, err := r.Pool.Query(ctx, query, chargeAccountID)
	if err != nil {
		return nil, apperrors.NewRemoteError("failed to query charge account "+chargeAccountID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanChargeAccount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: charge account %s", apperrors.ErrNotFound, chargeAccountID)
		}
		return nil, apperrors.NewRemoteError("failed to scan charge account "+chargeAccountID, err)
	}
	account := mapping.ToDomainChargeAccount(m)
	return &account, nil
}

// FindChargeAccountsByIDs retrieves several charge accounts keyed by ID.
func (r *PgxChargeAccountRepository) FindChargeAccountsByIDs(ctx context.Context, chargeAccountIDs []string) (map[string]domain.ChargeAccount, error) {
	result := make(map[string]domain.ChargeAccount, len(chargeAccountIDs))
	if len(chargeAccountIDs) == 0 {
		return result, nil
	}
	query := `SELECT ` + chargeAccountColumns + ` FROM charge_accounts WHERE charge_account_id = ANY($1);`
	accounts, err := r.collect(ctx, "charge accounts by ids", query, chargeAccountIDs)
	if err != nil {
		return nil, err
	}
	for _, account := range accounts {
		result[account.ChargeAccountID] = account
	}
	return result, nil
}

// ListChargeAccountsByPayer lists the fee heads assigned to a payer.
func (r *PgxChargeAccountRepository) ListChargeAccountsByPayer(ctx context.Context, payerID string) ([]domain.ChargeAccount, error) {
	query := `
		SELECT ` + chargeAccountColumns + `
		FROM charge_accounts
		WHERE payer_id = $1
		ORDER BY academic_year DESC, fee_head;
	`
	return r.collect(ctx, "charge accounts for payer "+payerID, query, payerID)
}

// ListChargeAccounts lists charge accounts of one payer type, or all of them.
func (r *PgxChargeAccountRepository) ListChargeAccounts(ctx context.Context, payerType domain.PayerType) ([]domain.ChargeAccount, error) {
	query := `
		SELECT ` + chargeAccountColumns + `
		FROM charge_accounts
		WHERE ($1::text = '' OR payer_type = $1::text)
		ORDER BY fee_head, payer_id, academic_year;
	`
	return r.collect(ctx, "charge accounts", query, string(payerType))
}
