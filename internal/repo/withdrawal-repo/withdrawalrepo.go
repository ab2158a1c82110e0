package withdrawalrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zearn/internal/domain"
	"github.com/GlebRadaev/zearn/internal/pg"
)

const withdrawalColumns = `id, account_id, amount, method, details, status, requested_at, updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	var (
		w      domain.Withdrawal
		status string
	)
	if err := row.Scan(&w.ID, &w.AccountID, &w.Amount, &w.Method, &w.Details, &status, &w.RequestedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	w.Status = domain.WithdrawalStatus(status)
	return &w, nil
}

// Create holds the amount on the account balance and stores the request in one transaction.
func (r *Repository) Create(ctx context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
	debit := `
		UPDATE accounts
		SET balance = balance - $1
		WHERE id = $2 AND balance >= $1
	`
	insert := `
		INSERT INTO withdrawals (id, account_id, amount, method, details, status, requested_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, debit, w.Amount, w.AccountID)
		if err != nil {
			zap.L().Error("failed to hold withdrawal amount", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return r.debitFailure(ctx, w.AccountID)
		}

		_, err = r.db.Exec(ctx, insert, w.ID, w.AccountID, w.Amount, w.Method, w.Details, string(w.Status), w.RequestedAt, w.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to create withdrawal", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *Repository) FindByAccount(ctx context.Context, accountID string) ([]domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE account_id = $1 ORDER BY requested_at DESC`
	return r.list(ctx, query, accountID)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals ORDER BY requested_at DESC`
	return r.list(ctx, query)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Withdrawal, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to get withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *w)
	}
	return withdrawals, rows.Err()
}

// Transition locks the request, asks decide what to do with it and applies
// the answer (status change and optional refund) in the same transaction.
func (r *Repository) Transition(
	ctx context.Context,
	id string,
	now time.Time,
	decide func(current domain.Withdrawal) (domain.Transition, error),
) (*domain.Withdrawal, error) {
	lock := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1 FOR UPDATE`
	setStatus := `UPDATE withdrawals SET status = $1, updated_at = $2 WHERE id = $3`
	refund := `UPDATE accounts SET balance = balance + $1 WHERE id = $2`

	var result *domain.Withdrawal
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := scanWithdrawal(r.db.QueryRow(ctx, lock, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrWithdrawalNotFound
			}
			zap.L().Error("failed to lock withdrawal", zap.Error(err))
			return err
		}

		tr, err := decide(*current)
		if err != nil {
			return err
		}
		if tr.To == "" {
			result = current
			return nil
		}

		if _, err := r.db.Exec(ctx, setStatus, string(tr.To), now, id); err != nil {
			zap.L().Error("failed to update withdrawal status", zap.Error(err))
			return err
		}
		if tr.Refund {
			if _, err := r.db.Exec(ctx, refund, current.Amount, current.AccountID); err != nil {
				zap.L().Error("failed to refund withdrawal", zap.Error(err))
				return err
			}
		}

		current.Status = tr.To
		current.UpdatedAt = now
		result = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repository) debitFailure(ctx context.Context, accountID string) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, accountID).Scan(&exists)
	if err != nil {
		zap.L().Error("failed to check account", zap.Error(err))
		return err
	}
	if !exists {
		return domain.ErrAccountNotFound
	}
	return domain.ErrInsufficientBalance
}
