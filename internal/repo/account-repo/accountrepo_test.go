package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/zearn/internal/domain"
)

var columns = []string{
	"id", "email", "password_hash", "name", "mobile", "gender", "dob", "district", "state", "country",
	"referral_code", "referred_by", "balance", "diamonds", "lifetime_earnings", "lifetime_diamond_earnings",
	"total_tasks", "total_special_tasks", "level", "is_admin", "is_banned", "last_daily_claim", "created_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func accountRow(a domain.Account) []any {
	return []any{
		a.ID, a.Email, a.PasswordHash, a.Name, a.Mobile, a.Gender, a.DOB, a.District, a.State, a.Country,
		a.ReferralCode, a.ReferredBy, a.Balance, a.Diamonds, a.LifetimeEarnings, a.LifetimeDiamondEarnings,
		a.TotalTasks, a.TotalSpecialTasks, a.Level, a.IsAdmin, a.IsBanned, a.LastDailyClaim, a.CreatedAt,
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	claimed := time.Date(2024, 12, 2, 8, 0, 0, 0, time.UTC)
	account := domain.Account{
		ID:             "acc-1",
		Email:          "ravi@zearn.app",
		PasswordHash:   "hash",
		Name:           "Ravi",
		ReferralCode:   "Z12344",
		Balance:        150,
		Diamonds:       5,
		TotalTasks:     1,
		Level:          1,
		LastDailyClaim: &claimed,
		CreatedAt:      created,
	}

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name: "Existing account",
			id:   "acc-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE id = $1`)).
					WithArgs("acc-1").
					WillReturnRows(pgxmock.NewRows(columns).AddRow(accountRow(account)...))
			},
			result: &account,
		},
		{
			name: "Missing account returns nil",
			id:   "acc-404",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE id = $1`)).
					WithArgs("acc-404").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   "acc-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE id = $1`)).
					WithArgs("acc-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE email = $1`)).
		WithArgs("nobody@zearn.app").
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.FindByEmail(context.Background(), "nobody@zearn.app")
	assert.NoError(t, err)
	assert.Nil(t, result)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE referral_code = $1`)).
		WithArgs("Z12344").
		WillReturnRows(pgxmock.NewRows(columns).AddRow(accountRow(domain.Account{ID: "acc-9", ReferralCode: "Z12344"})...))

	result, err = repo.FindByReferralCode(context.Background(), "Z12344")
	assert.NoError(t, err)
	assert.Equal(t, "acc-9", result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	insert := regexp.QuoteMeta(`INSERT INTO accounts (id, email, password_hash, name, mobile, gender, dob, district, state, country, referral_code, referred_by, is_admin)`)

	newAccount := func() *domain.Account {
		return &domain.Account{
			ID:           "acc-1",
			Email:        "ravi@zearn.app",
			PasswordHash: "hash",
			Name:         "Ravi",
			ReferralCode: "Z12344",
		}
	}

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		expectErr   bool
	}{
		{
			name: "Creates account",
			mockSetup: func() {
				mock.ExpectQuery(insert).
					WithArgs("acc-1", "ravi@zearn.app", "hash", "Ravi", "", "", "", "", "", "", "Z12344", "", false).
					WillReturnRows(pgxmock.NewRows([]string{"level", "created_at"}).AddRow(1, created))
			},
		},
		{
			name: "Email already registered",
			mockSetup: func() {
				mock.ExpectQuery(insert).
					WithArgs("acc-1", "ravi@zearn.app", "hash", "Ravi", "", "", "", "", "", "", "Z12344", "", false).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"})
			},
			expectedErr: domain.ErrEmailTaken,
		},
		{
			name: "Referral code collision",
			mockSetup: func() {
				mock.ExpectQuery(insert).
					WithArgs("acc-1", "ravi@zearn.app", "hash", "Ravi", "", "", "", "", "", "", "Z12344", "", false).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_referral_code_key"})
			},
			expectedErr: domain.ErrReferralCodeTaken,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(insert).
					WithArgs("acc-1", "ravi@zearn.app", "hash", "Ravi", "", "", "", "", "", "", "Z12344", "", false).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), newAccount())

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			case tt.expectErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, 1, result.Level)
				assert.Equal(t, created, result.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts ORDER BY created_at DESC`)).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(accountRow(domain.Account{ID: "acc-2", Name: "Asha", Level: 1})...).
			AddRow(accountRow(domain.Account{ID: "acc-1", Name: "Ravi", Level: 1, IsBanned: true})...))

	accounts, err := repo.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, "acc-2", accounts[0].ID)
	assert.True(t, accounts[1].IsBanned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TopByBalance(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT id, name, balance, level FROM accounts WHERE is_banned = FALSE AND is_admin = FALSE ORDER BY balance DESC, created_at LIMIT $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.LeaderboardEntry
	}{
		{
			name: "Returns ranked entries",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(50).
					WillReturnRows(pgxmock.NewRows([]string{"id", "name", "balance", "level"}).
						AddRow("acc-1", "Ravi", int64(900), 3).
						AddRow("acc-2", "Asha", int64(150), 1))
			},
			result: []domain.LeaderboardEntry{
				{AccountID: "acc-1", Name: "Ravi", Balance: 900, Level: 3},
				{AccountID: "acc-2", Name: "Asha", Balance: 150, Level: 1},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(50).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.TopByBalance(context.Background(), 50)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ToggleBan(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE accounts SET is_banned = NOT is_banned WHERE id = $1 RETURNING is_banned`)

	mock.ExpectQuery(query).WithArgs("acc-1").WillReturnRows(pgxmock.NewRows([]string{"is_banned"}).AddRow(true))
	banned, err := repo.ToggleBan(context.Background(), "acc-1")
	assert.NoError(t, err)
	assert.True(t, banned)

	mock.ExpectQuery(query).WithArgs("acc-404").WillReturnError(pgx.ErrNoRows)
	_, err = repo.ToggleBan(context.Background(), "acc-404")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
