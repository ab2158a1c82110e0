package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zearn/internal/domain"
	"github.com/GlebRadaev/zearn/internal/pg"
)

const accountColumns = `id, email, password_hash, name, mobile, gender, dob, district, state, country,
	referral_code, referred_by, balance, diamonds, lifetime_earnings, lifetime_diamond_earnings,
	total_tasks, total_special_tasks, level, is_admin, is_banned, last_daily_claim, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Mobile, &a.Gender, &a.DOB, &a.District, &a.State, &a.Country,
		&a.ReferralCode, &a.ReferredBy, &a.Balance, &a.Diamonds, &a.LifetimeEarnings, &a.LifetimeDiamondEarnings,
		&a.TotalTasks, &a.TotalSpecialTasks, &a.Level, &a.IsAdmin, &a.IsBanned, &a.LastDailyClaim, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) findOne(ctx context.Context, where string, arg any) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + where
	account, err := scanAccount(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.String("by", where), zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, "email = $1", email)
}

func (r *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.Account, error) {
	return r.findOne(ctx, "referral_code = $1", code)
}

func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (id, email, password_hash, name, mobile, gender, dob, district, state, country,
			referral_code, referred_by, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING level, created_at
	`
	err := r.db.QueryRow(ctx, query,
		account.ID, account.Email, account.PasswordHash, account.Name, account.Mobile, account.Gender,
		account.DOB, account.District, account.State, account.Country, account.ReferralCode,
		account.ReferredBy, account.IsAdmin,
	).Scan(&account.Level, &account.CreatedAt)
	if err != nil {
		switch pg.UniqueViolation(err) {
		case "accounts_email_key":
			return nil, domain.ErrEmailTaken
		case "accounts_referral_code_key":
			return nil, domain.ErrReferralCodeTaken
		}
		zap.L().Error("can't create account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("can't scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, rows.Err()
}

func (r *Repository) TopByBalance(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT id, name, balance, level
		FROM accounts
		WHERE is_banned = FALSE AND is_admin = FALSE
		ORDER BY balance DESC, created_at
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get leaderboard", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.AccountID, &e.Name, &e.Balance, &e.Level); err != nil {
			zap.L().Error("can't scan leaderboard row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *Repository) ToggleBan(ctx context.Context, id string) (bool, error) {
	query := `UPDATE accounts SET is_banned = NOT is_banned WHERE id = $1 RETURNING is_banned`
	var banned bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&banned); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, domain.ErrAccountNotFound
		}
		zap.L().Error("can't toggle ban", zap.Error(err))
		return false, err
	}
	return banned, nil
}
