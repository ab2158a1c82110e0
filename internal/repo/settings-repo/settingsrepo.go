package settingsrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zearn/internal/domain"
	"github.com/GlebRadaev/zearn/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	query := `
		SELECT tap_count, admin_password_hash, daily_claim_amount, min_withdrawal, jackpot_entry_fee, updated_at
		FROM settings
		WHERE id = 1
	`
	var s domain.Settings
	err := r.db.QueryRow(ctx, query).Scan(&s.TapCount, &s.AdminPasswordHash, &s.DailyClaimAmount,
		&s.MinWithdrawal, &s.JackpotEntryFee, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get settings", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Save(ctx context.Context, s domain.Settings) error {
	query := `
		INSERT INTO settings (id, tap_count, admin_password_hash, daily_claim_amount, min_withdrawal, jackpot_entry_fee, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET tap_count = EXCLUDED.tap_count,
			admin_password_hash = EXCLUDED.admin_password_hash,
			daily_claim_amount = EXCLUDED.daily_claim_amount,
			min_withdrawal = EXCLUDED.min_withdrawal,
			jackpot_entry_fee = EXCLUDED.jackpot_entry_fee,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(ctx, query, s.TapCount, s.AdminPasswordHash, s.DailyClaimAmount, s.MinWithdrawal, s.JackpotEntryFee, s.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save settings", zap.Error(err))
		return err
	}
	return nil
}
