package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/zearn/internal/pg"
	accountrepo "github.com/GlebRadaev/zearn/internal/repo/account-repo"
	ledgerrepo "github.com/GlebRadaev/zearn/internal/repo/ledger-repo"
	settingsrepo "github.com/GlebRadaev/zearn/internal/repo/settings-repo"
	taskrepo "github.com/GlebRadaev/zearn/internal/repo/task-repo"
	withdrawalrepo "github.com/GlebRadaev/zearn/internal/repo/withdrawal-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	mockTxManager := pg.NewMockTXManager(ctrl)

	return New(mockDB, mockTxManager), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &accountrepo.Repository{}, repo.AccountRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &taskrepo.Repository{}, repo.TaskRepo)
	assert.IsType(t, &withdrawalrepo.Repository{}, repo.WithdrawalRepo)
	assert.IsType(t, &settingsrepo.Repository{}, repo.SettingsRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
