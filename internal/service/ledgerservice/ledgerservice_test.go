package ledgerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/zearn/internal/domain"
)

var fixedNow = time.Date(2024, 12, 9, 15, 30, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockAccountFinder, *MockSettingsProvider) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	accounts := NewMockAccountFinder(ctrl)
	settings := NewMockSettingsProvider(ctrl)
	service := New(repo, accounts, settings)
	service.now = func() time.Time { return fixedNow }
	return service, repo, accounts, settings
}

func TestGrantReward(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	grant := domain.Grant{AccountID: "acc-1", TaskID: "task-1", TaskTitle: "Install Cred App", Reward: 150, DiamondReward: 5}

	tests := []struct {
		name          string
		grant         domain.Grant
		prepareMock   func()
		expectedOK    bool
		expectedError error
	}{
		{
			name:  "First completion is granted",
			grant: grant,
			prepareMock: func() {
				repo.EXPECT().GrantReward(gomock.Any(), grant, fixedNow).Return(true, nil)
			},
			expectedOK: true,
		},
		{
			name:  "Replay is a successful no-op",
			grant: grant,
			prepareMock: func() {
				repo.EXPECT().GrantReward(gomock.Any(), grant, fixedNow).Return(false, nil)
			},
			expectedOK: false,
		},
		{
			name:  "Missing account",
			grant: grant,
			prepareMock: func() {
				repo.EXPECT().GrantReward(gomock.Any(), grant, fixedNow).Return(false, domain.ErrAccountNotFound)
			},
			expectedError: domain.ErrAccountNotFound,
		},
		{
			name:          "Negative reward is rejected before the store",
			grant:         domain.Grant{AccountID: "acc-1", TaskID: "task-1", Reward: -1},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			granted, err := service.GrantReward(context.Background(), tt.grant)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedOK, granted)
		})
	}
}

func TestMarkFailed(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	repo.EXPECT().MarkFailed(gomock.Any(), "acc-1", "task-1", "Install Cred App", fixedNow).Return(nil)
	assert.NoError(t, service.MarkFailed(context.Background(), "acc-1", "task-1", "Install Cred App"))

	repo.EXPECT().MarkFailed(gomock.Any(), "acc-1", "task-1", "Install Cred App", fixedNow).Return(errors.New("db error"))
	assert.Error(t, service.MarkFailed(context.Background(), "acc-1", "task-1", "Install Cred App"))
}

func TestClaimDaily(t *testing.T) {
	service, repo, _, settings := NewMock(t)
	dayStart := time.Date(2024, 12, 9, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedResult domain.Result
		expectedError  error
	}{
		{
			name: "First claim of the day",
			prepareMock: func() {
				settings.EXPECT().Current().Return(domain.Settings{DailyClaimAmount: 10})
				repo.EXPECT().ClaimDaily(gomock.Any(), "acc-1", int64(10), fixedNow, dayStart).Return(true, nil)
			},
			expectedResult: domain.Result{Success: true, Message: "Claimed 10 Coins!"},
		},
		{
			name: "Second claim on the same day",
			prepareMock: func() {
				settings.EXPECT().Current().Return(domain.Settings{DailyClaimAmount: 10})
				repo.EXPECT().ClaimDaily(gomock.Any(), "acc-1", int64(10), fixedNow, dayStart).Return(false, nil)
			},
			expectedResult: domain.Result{Success: false, Message: "Already claimed today"},
		},
		{
			name: "Missing account",
			prepareMock: func() {
				settings.EXPECT().Current().Return(domain.Settings{DailyClaimAmount: 10})
				repo.EXPECT().ClaimDaily(gomock.Any(), "acc-1", int64(10), fixedNow, dayStart).Return(false, domain.ErrAccountNotFound)
			},
			expectedError: domain.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.ClaimDaily(context.Background(), "acc-1")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
		})
	}
}

func TestClaimDaily_NextDayUsesNewBoundary(t *testing.T) {
	service, repo, _, settings := NewMock(t)
	settings.EXPECT().Current().Return(domain.Settings{DailyClaimAmount: 10}).Times(2)

	gomock.InOrder(
		repo.EXPECT().ClaimDaily(gomock.Any(), "acc-1", int64(10), fixedNow, time.Date(2024, 12, 9, 0, 0, 0, 0, time.UTC)).Return(true, nil),
		repo.EXPECT().ClaimDaily(gomock.Any(), "acc-1", int64(10), fixedNow.Add(24*time.Hour), time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)).Return(true, nil),
	)

	first, err := service.ClaimDaily(context.Background(), "acc-1")
	assert.NoError(t, err)
	assert.True(t, first.Success)

	service.now = func() time.Time { return fixedNow.Add(24 * time.Hour) }
	second, err := service.ClaimDaily(context.Background(), "acc-1")
	assert.NoError(t, err)
	assert.True(t, second.Success)
}

func TestDailyClaimed(t *testing.T) {
	service, _, accounts, settings := NewMock(t)
	today := time.Date(2024, 12, 9, 0, 5, 0, 0, time.UTC)
	yesterday := time.Date(2024, 12, 8, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      bool
		expectedError error
	}{
		{
			name: "Never claimed",
			prepareMock: func() {
				accounts.EXPECT().FindByID(gomock.Any(), "acc-1").Return(&domain.Account{ID: "acc-1"}, nil)
				settings.EXPECT().Current().Return(domain.Settings{DailyClaimAmount: 10})
			},
		},
		{
			name: "Claimed yesterday",
			prepareMock: func() {
				accounts.EXPECT().FindByID(gomock.Any(), "acc-1").Return(&domain.Account{ID: "acc-1", LastDailyClaim: &yesterday}, nil)
				settings.EXPECT().Current().Return(domain.Settings{DailyClaimAmount: 10})
			},
		},
		{
			name: "Claimed today",
			prepareMock: func() {
				accounts.EXPECT().FindByID(gomock.Any(), "acc-1").Return(&domain.Account{ID: "acc-1", LastDailyClaim: &today}, nil)
				settings.EXPECT().Current().Return(domain.Settings{DailyClaimAmount: 10})
			},
			expected: true,
		},
		{
			name: "Missing account",
			prepareMock: func() {
				accounts.EXPECT().FindByID(gomock.Any(), "acc-1").Return(nil, nil)
			},
			expectedError: domain.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			claimed, amount, err := service.DailyClaimed(context.Background(), "acc-1")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, claimed)
			assert.Equal(t, int64(10), amount)
		})
	}
}

func TestEnterJackpot(t *testing.T) {
	service, repo, _, settings := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Entry recorded",
			prepareMock: func() {
				settings.EXPECT().Current().Return(domain.Settings{JackpotEntryFee: 20})
				repo.EXPECT().EnterJackpot(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.JackpotEntry) error {
					assert.Equal(t, "acc-1", e.AccountID)
					assert.Equal(t, int64(20), e.AmountSpent)
					assert.Equal(t, "2024-12", e.Month)
					assert.NotEmpty(t, e.ID)
					e.Name = "Ravi"
					return nil
				})
			},
		},
		{
			name: "Insufficient balance",
			prepareMock: func() {
				settings.EXPECT().Current().Return(domain.Settings{JackpotEntryFee: 20})
				repo.EXPECT().EnterJackpot(gomock.Any(), gomock.Any()).Return(domain.ErrInsufficientBalance)
			},
			expectedError: domain.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			entry, err := service.EnterJackpot(context.Background(), "acc-1")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, entry)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Ravi", entry.Name)
			}
		})
	}
}

func TestJackpotEntries(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	entries := []domain.JackpotEntry{{ID: "entry-1", Name: "Ravi", AmountSpent: 20, Month: "2024-12"}}

	repo.EXPECT().JackpotEntries(gomock.Any(), "2024-12").Return(entries, nil)
	result, err := service.JackpotEntries(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, entries, result)
}
