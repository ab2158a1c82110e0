package repo

import (
	"github.com/GlebRadaev/zearn/internal/pg"
	accountrepo "github.com/GlebRadaev/zearn/internal/repo/account-repo"
	ledgerrepo "github.com/GlebRadaev/zearn/internal/repo/ledger-repo"
	settingsrepo "github.com/GlebRadaev/zearn/internal/repo/settings-repo"
	taskrepo "github.com/GlebRadaev/zearn/internal/repo/task-repo"
	withdrawalrepo "github.com/GlebRadaev/zearn/internal/repo/withdrawal-repo"
	"github.com/GlebRadaev/zearn/internal/service/accountservice"
	"github.com/GlebRadaev/zearn/internal/service/authservice"
	"github.com/GlebRadaev/zearn/internal/service/ledgerservice"
	"github.com/GlebRadaev/zearn/internal/service/settingsservice"
	"github.com/GlebRadaev/zearn/internal/service/taskservice"
	"github.com/GlebRadaev/zearn/internal/service/withdrawalservice"
)

// AccountRepo serves both sign-in and account management.
type AccountRepo interface {
	authservice.Repo
	accountservice.Repo
}

type Repositories struct {
	AccountRepo    AccountRepo
	LedgerRepo     ledgerservice.Repo
	TaskRepo       taskservice.Repo
	WithdrawalRepo withdrawalservice.Repo
	SettingsRepo   settingsservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		AccountRepo:    accountrepo.New(conn),
		LedgerRepo:     ledgerrepo.New(conn, txManager),
		TaskRepo:       taskrepo.New(conn),
		WithdrawalRepo: withdrawalrepo.New(conn, txManager),
		SettingsRepo:   settingsrepo.New(conn),
	}
}
