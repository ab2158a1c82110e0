package accountservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/zearn/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockCache) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	cache := NewMockCache(ctrl)
	return New(repo, cache), repo, cache
}

func TestProfile(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *domain.Account
		expectedError error
	}{
		{
			name: "Existing account",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "acc-1").Return(&domain.Account{ID: "acc-1", Balance: 150}, nil)
			},
			expected: &domain.Account{ID: "acc-1", Balance: 150},
		},
		{
			name: "Missing account",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "acc-1").Return(nil, nil)
			},
			expectedError: domain.ErrAccountNotFound,
		},
		{
			name: "Store failure",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "acc-1").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			account, err := service.Profile(context.Background(), "acc-1")

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, account)
			}
		})
	}
}

func TestLeaderboard(t *testing.T) {
	service, repo, cache := NewMock(t)
	entries := []domain.LeaderboardEntry{{AccountID: "acc-1", Name: "Asha", Balance: 900}}

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.LeaderboardEntry
		expectedError bool
	}{
		{
			name: "Served from cache",
			prepareMock: func() {
				cache.EXPECT().Get(gomock.Any()).Return(entries, true)
			},
			expected: entries,
		},
		{
			name: "Cache miss reads the store and fills the cache",
			prepareMock: func() {
				cache.EXPECT().Get(gomock.Any()).Return(nil, false)
				repo.EXPECT().TopByBalance(gomock.Any(), LeaderboardSize).Return(entries, nil)
				cache.EXPECT().Set(gomock.Any(), entries)
			},
			expected: entries,
		},
		{
			name: "Store failure is not cached",
			prepareMock: func() {
				cache.EXPECT().Get(gomock.Any()).Return(nil, false)
				repo.EXPECT().TopByBalance(gomock.Any(), LeaderboardSize).Return(nil, errors.New("db error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.Leaderboard(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestList(t *testing.T) {
	service, repo, _ := NewMock(t)

	accounts := []domain.Account{{ID: "acc-1"}, {ID: "acc-2"}}
	repo.EXPECT().List(gomock.Any()).Return(accounts, nil)
	result, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, accounts, result)

	repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))
	_, err = service.List(context.Background())
	assert.Error(t, err)
}

func TestToggleBan(t *testing.T) {
	service, repo, cache := NewMock(t)
	const bannedID = "2b1c6c1e-8d7a-4d0e-9f43-0e0b7a9c5f11"

	tests := []struct {
		name          string
		prepareMock   func()
		expected      bool
		expectedError error
	}{
		{
			name: "Ban invalidates the leaderboard",
			prepareMock: func() {
				repo.EXPECT().ToggleBan(gomock.Any(), bannedID).Return(true, nil)
				cache.EXPECT().Invalidate(gomock.Any())
			},
			expected: true,
		},
		{
			name: "Unban invalidates the leaderboard",
			prepareMock: func() {
				repo.EXPECT().ToggleBan(gomock.Any(), bannedID).Return(false, nil)
				cache.EXPECT().Invalidate(gomock.Any())
			},
		},
		{
			name: "Missing account",
			prepareMock: func() {
				repo.EXPECT().ToggleBan(gomock.Any(), bannedID).Return(false, domain.ErrAccountNotFound)
			},
			expectedError: domain.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			banned, err := service.ToggleBan(context.Background(), bannedID)

			assert.ErrorIs(t, err, tt.expectedError)
			assert.Equal(t, tt.expected, banned)
		})
	}
}

func TestToggleBan_MalformedID(t *testing.T) {
	service, _, _ := NewMock(t)

	for _, id := range []string{"acc-1", "abc", ""} {
		banned, err := service.ToggleBan(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound, id)
		assert.False(t, banned)
	}
}
