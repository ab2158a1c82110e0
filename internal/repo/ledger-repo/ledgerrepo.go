package ledgerrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zearn/internal/domain"
	"github.com/GlebRadaev/zearn/internal/pg"
)

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

// GrantReward marks the completion record COMPLETED and credits the account in
// one transaction. It reports false without touching any counter when the
// record was already COMPLETED.
func (r *Repository) GrantReward(ctx context.Context, grant domain.Grant, now time.Time) (bool, error) {
	lockAccount := `SELECT id FROM accounts WHERE id = $1 FOR UPDATE`
	complete := `
		INSERT INTO task_completions (account_id, task_id, task_title, status, started_at, completed_at)
		VALUES ($1, $2, $3, 'COMPLETED', $4, $4)
		ON CONFLICT (account_id, task_id) DO UPDATE
		SET status = 'COMPLETED', completed_at = EXCLUDED.completed_at
		WHERE task_completions.status <> 'COMPLETED'
		RETURNING task_id
	`
	credit := `
		UPDATE accounts
		SET balance = balance + $1,
			diamonds = diamonds + $2,
			lifetime_earnings = lifetime_earnings + $1,
			lifetime_diamond_earnings = lifetime_diamond_earnings + $2,
			total_tasks = total_tasks + 1,
			total_special_tasks = total_special_tasks + $3
		WHERE id = $4
	`
	special := 0
	if grant.Special {
		special = 1
	}

	var granted bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var id string
		if err := r.db.QueryRow(ctx, lockAccount, grant.AccountID).Scan(&id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrAccountNotFound
			}
			zap.L().Error("failed to lock account", zap.Error(err))
			return err
		}

		var taskID string
		err := r.db.QueryRow(ctx, complete, grant.AccountID, grant.TaskID, grant.TaskTitle, now).Scan(&taskID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			zap.L().Error("failed to complete task record", zap.Error(err))
			return err
		}

		if _, err := r.db.Exec(ctx, credit, grant.Reward, grant.DiamondReward, special, grant.AccountID); err != nil {
			zap.L().Error("failed to credit reward", zap.Error(err))
			return err
		}
		granted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return granted, nil
}

// MarkFailed never downgrades a COMPLETED record.
func (r *Repository) MarkFailed(ctx context.Context, accountID, taskID, taskTitle string, now time.Time) error {
	query := `
		INSERT INTO task_completions (account_id, task_id, task_title, status, started_at)
		VALUES ($1, $2, $3, 'FAILED', $4)
		ON CONFLICT (account_id, task_id) DO UPDATE
		SET status = 'FAILED'
		WHERE task_completions.status <> 'COMPLETED'
	`
	if _, err := r.db.Exec(ctx, query, accountID, taskID, taskTitle, now); err != nil {
		if refErr := completionRefError(err); refErr != nil {
			return refErr
		}
		zap.L().Error("failed to mark task failed", zap.Error(err))
		return err
	}
	return nil
}

// ClaimDaily credits amount unless the account already claimed at or after dayStart.
func (r *Repository) ClaimDaily(ctx context.Context, accountID string, amount int64, now, dayStart time.Time) (bool, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $1, last_daily_claim = $2
		WHERE id = $3 AND (last_daily_claim IS NULL OR last_daily_claim < $4)
	`
	tag, err := r.db.Exec(ctx, query, amount, now, accountID, dayStart)
	if err != nil {
		zap.L().Error("failed to claim daily bonus", zap.Error(err))
		return false, err
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	exists, err := r.accountExists(ctx, accountID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, domain.ErrAccountNotFound
	}
	return false, nil
}

// EnterJackpot debits the entry fee and records the entry in one transaction.
// entry.Name is filled from the account.
func (r *Repository) EnterJackpot(ctx context.Context, entry *domain.JackpotEntry) error {
	debit := `
		UPDATE accounts
		SET balance = balance - $1
		WHERE id = $2 AND balance >= $1
		RETURNING name
	`
	insert := `
		INSERT INTO jackpot_entries (id, account_id, name, amount_spent, month, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, debit, entry.AmountSpent, entry.AccountID).Scan(&entry.Name)
		if errors.Is(err, pgx.ErrNoRows) {
			return r.debitFailure(ctx, entry.AccountID)
		}
		if err != nil {
			zap.L().Error("failed to debit jackpot fee", zap.Error(err))
			return err
		}

		_, err = r.db.Exec(ctx, insert, entry.ID, entry.AccountID, entry.Name, entry.AmountSpent, entry.Month, entry.CreatedAt)
		if err != nil {
			zap.L().Error("failed to create jackpot entry", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) JackpotEntries(ctx context.Context, month string) ([]domain.JackpotEntry, error) {
	query := `
		SELECT id, account_id, name, amount_spent, month, created_at
		FROM jackpot_entries
		WHERE month = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, month)
	if err != nil {
		zap.L().Error("failed to get jackpot entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.JackpotEntry
	for rows.Next() {
		var e domain.JackpotEntry
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Name, &e.AmountSpent, &e.Month, &e.CreatedAt); err != nil {
			zap.L().Error("failed to scan jackpot entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *Repository) debitFailure(ctx context.Context, accountID string) error {
	exists, err := r.accountExists(ctx, accountID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrAccountNotFound
	}
	return domain.ErrInsufficientBalance
}

func (r *Repository) accountExists(ctx context.Context, accountID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, accountID).Scan(&exists)
	if err != nil {
		zap.L().Error("failed to check account", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// completionRefError maps a foreign key violation on task_completions to the
// missing side, or returns nil for any other error.
func completionRefError(err error) error {
	switch pg.ForeignKeyViolation(err) {
	case "":
		return nil
	case pg.CompletionTaskFK:
		return domain.ErrTaskNotFound
	default:
		return domain.ErrAccountNotFound
	}
}
