package settingsservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/zearn/internal/domain"
	"github.com/GlebRadaev/zearn/pkg/auth"
)

var fixedNow = time.Date(2024, 12, 9, 15, 30, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hasher := auth.NewMockHashServiceInterface(ctrl)
	service := New(repo, hasher)
	service.now = func() time.Time { return fixedNow }
	return service, repo, hasher
}

func TestNew_ServesDefaultsBeforeLoad(t *testing.T) {
	service, _, _ := NewMock(t)
	assert.Equal(t, domain.DefaultSettings(), service.Current())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(repo *MockRepo, hasher *auth.MockHashServiceInterface)
		expected      domain.Settings
		expectedError bool
	}{
		{
			name: "Stored settings are used as is",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().Get(gomock.Any()).Return(&domain.Settings{TapCount: 7, AdminPasswordHash: "hash", DailyClaimAmount: 15, MinWithdrawal: 100, JackpotEntryFee: 25}, nil)
			},
			expected: domain.Settings{TapCount: 7, AdminPasswordHash: "hash", DailyClaimAmount: 15, MinWithdrawal: 100, JackpotEntryFee: 25},
		},
		{
			name: "Seeded row without admin hash gets the default password",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().Get(gomock.Any()).Return(&domain.Settings{TapCount: 5, DailyClaimAmount: 10, MinWithdrawal: 50, JackpotEntryFee: 20}, nil)
				hasher.EXPECT().HashPassword("admin").Return("admin-hash", nil)
				repo.EXPECT().Save(gomock.Any(), domain.Settings{
					TapCount: 5, AdminPasswordHash: "admin-hash", DailyClaimAmount: 10, MinWithdrawal: 50, JackpotEntryFee: 20, UpdatedAt: fixedNow,
				}).Return(nil)
			},
			expected: domain.Settings{TapCount: 5, AdminPasswordHash: "admin-hash", DailyClaimAmount: 10, MinWithdrawal: 50, JackpotEntryFee: 20, UpdatedAt: fixedNow},
		},
		{
			name: "Missing row is created from defaults",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().Get(gomock.Any()).Return(nil, nil)
				hasher.EXPECT().HashPassword("admin").Return("admin-hash", nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expected: domain.Settings{TapCount: 5, AdminPasswordHash: "admin-hash", DailyClaimAmount: 10, MinWithdrawal: 50, JackpotEntryFee: 20, UpdatedAt: fixedNow},
		},
		{
			name: "Database error keeps defaults",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().Get(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expected:      domain.DefaultSettings(),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, hasher := NewMock(t)
			tt.prepareMock(repo, hasher)

			err := service.Load(context.Background())
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, service.Current())
		})
	}
}

func TestRefresh(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().Get(gomock.Any()).Return(&domain.Settings{TapCount: 9, MinWithdrawal: 75}, nil)
	require.NoError(t, service.Refresh(context.Background()))
	assert.Equal(t, int64(75), service.Current().MinWithdrawal)

	repo.EXPECT().Get(gomock.Any()).Return(nil, errors.New("db error"))
	assert.Error(t, service.Refresh(context.Background()))
	assert.Equal(t, 9, service.Current().TapCount)
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name          string
		update        domain.SettingsUpdate
		prepareMock   func(repo *MockRepo, hasher *auth.MockHashServiceInterface)
		expectedHash  string
		expectedError bool
	}{
		{
			name:   "Numbers only",
			update: domain.SettingsUpdate{TapCount: 8, DailyClaimAmount: 25, MinWithdrawal: 100, JackpotEntryFee: 30},
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "New admin password is hashed",
			update: domain.SettingsUpdate{TapCount: 5, DailyClaimAmount: 10, MinWithdrawal: 50, JackpotEntryFee: 20, AdminPassword: "s3cret"},
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				hasher.EXPECT().HashPassword("s3cret").Return("new-hash", nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedHash: "new-hash",
		},
		{
			name:   "Save error leaves snapshot untouched",
			update: domain.SettingsUpdate{TapCount: 8},
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, hasher := NewMock(t)
			tt.prepareMock(repo, hasher)

			result, err := service.Update(context.Background(), tt.update)
			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, domain.DefaultSettings(), service.Current())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.update.TapCount, result.TapCount)
			assert.Equal(t, tt.update.MinWithdrawal, result.MinWithdrawal)
			assert.Equal(t, tt.expectedHash, result.AdminPasswordHash)
			assert.Equal(t, result, service.Current())
		})
	}
}

func TestVerifyAdminPassword(t *testing.T) {
	service, repo, hasher := NewMock(t)
	repo.EXPECT().Get(gomock.Any()).Return(&domain.Settings{AdminPasswordHash: "hash"}, nil)
	require.NoError(t, service.Load(context.Background()))

	hasher.EXPECT().ComparePassword("hash", "admin").Return(true)
	hasher.EXPECT().ComparePassword("hash", "guess").Return(false)

	assert.True(t, service.VerifyAdminPassword("admin"))
	assert.False(t, service.VerifyAdminPassword("guess"))
}

func TestCurrent_ConcurrentReaders(t *testing.T) {
	service, repo, _ := NewMock(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = service.Current()
		}()
		go func(n int) {
			defer wg.Done()
			_, _ = service.Update(context.Background(), domain.SettingsUpdate{TapCount: n + 1, MinWithdrawal: 50})
		}(i)
	}
	wg.Wait()

	assert.Positive(t, service.Current().TapCount)
}
