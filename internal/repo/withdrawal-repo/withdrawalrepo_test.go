package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/zearn/internal/domain"
	"github.com/GlebRadaev/zearn/internal/pg"
)

var (
	columns     = []string{"id", "account_id", "amount", "method", "details", "status", "requested_at", "updated_at"}
	debitQuery  = regexp.QuoteMeta(`UPDATE accounts SET balance = balance - $1 WHERE id = $2 AND balance >= $1`)
	insertQuery = regexp.QuoteMeta(`INSERT INTO withdrawals (id, account_id, amount, method, details, status, requested_at, updated_at)`)
	existsQuery = regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`)
	lockQuery   = regexp.QuoteMeta(`FROM withdrawals WHERE id = $1 FOR UPDATE`)
	statusQuery = regexp.QuoteMeta(`UPDATE withdrawals SET status = $1, updated_at = $2 WHERE id = $3`)
	refundQuery = regexp.QuoteMeta(`UPDATE accounts SET balance = balance + $1 WHERE id = $2`)
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB, mockTxManager
}

func inTx(tx *pg.MockTXManager, expect func()) {
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		expect()
		return fn(ctx)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Date(2024, 12, 9, 12, 0, 0, 0, time.UTC)

	newWithdrawal := func() *domain.Withdrawal {
		return &domain.Withdrawal{
			ID: "wd-1", AccountID: "acc-1", Amount: 150, Method: "UPI", Details: "ravi@upi",
			Status: domain.WithdrawalPending, RequestedAt: now, UpdatedAt: now,
		}
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		anyErr    bool
	}{
		{
			name: "Holds amount and stores request",
			mockSetup: func() {
				inTx(tx, func() {
					mock.ExpectExec(debitQuery).WithArgs(int64(150), "acc-1").
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					mock.ExpectExec(insertQuery).WithArgs("wd-1", "acc-1", int64(150), "UPI", "ravi@upi", "PENDING", now, now).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
				})
			},
		},
		{
			name: "Insufficient balance",
			mockSetup: func() {
				inTx(tx, func() {
					mock.ExpectExec(debitQuery).WithArgs(int64(150), "acc-1").
						WillReturnResult(pgxmock.NewResult("UPDATE", 0))
					mock.ExpectQuery(existsQuery).WithArgs("acc-1").
						WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
				})
			},
			expectErr: domain.ErrInsufficientBalance,
		},
		{
			name: "Unknown account",
			mockSetup: func() {
				inTx(tx, func() {
					mock.ExpectExec(debitQuery).WithArgs(int64(150), "acc-1").
						WillReturnResult(pgxmock.NewResult("UPDATE", 0))
					mock.ExpectQuery(existsQuery).WithArgs("acc-1").
						WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
				})
			},
			expectErr: domain.ErrAccountNotFound,
		},
		{
			name: "Insert fails",
			mockSetup: func() {
				inTx(tx, func() {
					mock.ExpectExec(debitQuery).WithArgs(int64(150), "acc-1").
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					mock.ExpectExec(insertQuery).WithArgs("wd-1", "acc-1", int64(150), "UPI", "ravi@upi", "PENDING", now, now).
						WillReturnError(errors.New("database error"))
				})
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), newWithdrawal())

			switch {
			case tt.expectErr != nil:
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, result)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, newWithdrawal(), result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByAccount(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Date(2024, 12, 9, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Withdrawal
	}{
		{
			name: "Lists account requests",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawals WHERE account_id = $1 ORDER BY requested_at DESC`)).
					WithArgs("acc-1").
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow("wd-1", "acc-1", int64(150), "UPI", "ravi@upi", "PENDING", now, now))
			},
			result: []domain.Withdrawal{
				{ID: "wd-1", AccountID: "acc-1", Amount: 150, Method: "UPI", Details: "ravi@upi", Status: domain.WithdrawalPending, RequestedAt: now, UpdatedAt: now},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawals WHERE account_id = $1`)).
					WithArgs("acc-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByAccount(context.Background(), "acc-1")

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

func TestRepository_FindAll(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Date(2024, 12, 9, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawals ORDER BY requested_at DESC`)).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("wd-2", "acc-2", int64(60), "WhatsApp Pay", "9876543210", "PAID_BY_ADMIN", now, now).
			AddRow("wd-1", "acc-1", int64(150), "UPI", "ravi@upi", "REJECTED", now, now))

	result, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, domain.WithdrawalPaidByAdmin, result[0].Status)
	assert.Equal(t, domain.WithdrawalRejected, result[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Transition(t *testing.T) {
	repo, mock, tx := NewMock(t)
	requested := time.Date(2024, 12, 9, 12, 0, 0, 0, time.UTC)
	now := requested.Add(time.Hour)
	pendingRow := func() *pgxmock.Rows {
		return pgxmock.NewRows(columns).AddRow("wd-1", "acc-1", int64(150), "UPI", "ravi@upi", "PENDING", requested, requested)
	}

	tests := []struct {
		name       string
		decide     func(domain.Withdrawal) (domain.Transition, error)
		mockSetup  func()
		expectErr  error
		wantStatus domain.WithdrawalStatus
	}{
		{
			name: "Reject refunds the held amount",
			decide: func(domain.Withdrawal) (domain.Transition, error) {
				return domain.Transition{To: domain.WithdrawalRejected, Refund: true}, nil
			},
			mockSetup: func() {
				inTx(tx, func() {
					mock.ExpectQuery(lockQuery).WithArgs("wd-1").WillReturnRows(pendingRow())
					mock.ExpectExec(statusQuery).WithArgs("REJECTED", now, "wd-1").
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					mock.ExpectExec(refundQuery).WithArgs(int64(150), "acc-1").
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				})
			},
			wantStatus: domain.WithdrawalRejected,
		},
		{
			name: "Status change without refund",
			decide: func(domain.Withdrawal) (domain.Transition, error) {
				return domain.Transition{To: domain.WithdrawalPaidByAdmin}, nil
			},
			mockSetup: func() {
				inTx(tx, func() {
					mock.ExpectQuery(lockQuery).WithArgs("wd-1").WillReturnRows(pendingRow())
					mock.ExpectExec(statusQuery).WithArgs("PAID_BY_ADMIN", now, "wd-1").
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				})
			},
			wantStatus: domain.WithdrawalPaidByAdmin,
		},
		{
			name: "No-op leaves the row alone",
			decide: func(domain.Withdrawal) (domain.Transition, error) {
				return domain.Transition{}, nil
			},
			mockSetup: func() {
				inTx(tx, func() {
					mock.ExpectQuery(lockQuery).WithArgs("wd-1").WillReturnRows(pendingRow())
				})
			},
			wantStatus: domain.WithdrawalPending,
		},
		{
			name: "Rejected by decide",
			decide: func(domain.Withdrawal) (domain.Transition, error) {
				return domain.Transition{}, domain.ErrInvalidTransition
			},
			mockSetup: func() {
				inTx(tx, func() {
					mock.ExpectQuery(lockQuery).WithArgs("wd-1").WillReturnRows(pendingRow())
				})
			},
			expectErr: domain.ErrInvalidTransition,
		},
		{
			name: "Unknown request",
			decide: func(domain.Withdrawal) (domain.Transition, error) {
				return domain.Transition{To: domain.WithdrawalRejected, Refund: true}, nil
			},
			mockSetup: func() {
				inTx(tx, func() {
					mock.ExpectQuery(lockQuery).WithArgs("wd-1").WillReturnError(pgx.ErrNoRows)
				})
			},
			expectErr: domain.ErrWithdrawalNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Transition(context.Background(), "wd-1", now, tt.decide)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, result.Status)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
