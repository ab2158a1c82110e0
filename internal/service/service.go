package service

import (
	"context"

	"github.com/GlebRadaev/zearn/internal/config"
	"github.com/GlebRadaev/zearn/internal/domain"
	"github.com/GlebRadaev/zearn/internal/handlers/admin"
	"github.com/GlebRadaev/zearn/internal/handlers/auth"
	"github.com/GlebRadaev/zearn/internal/handlers/settings"
	"github.com/GlebRadaev/zearn/internal/handlers/tasks"
	"github.com/GlebRadaev/zearn/internal/handlers/user"
	"github.com/GlebRadaev/zearn/internal/handlers/withdrawals"
	"github.com/GlebRadaev/zearn/internal/verify"

	pkgauth "github.com/GlebRadaev/zearn/pkg/auth"

	"github.com/GlebRadaev/zearn/internal/repo"
	"github.com/GlebRadaev/zearn/internal/service/accountservice"
	"github.com/GlebRadaev/zearn/internal/service/adminservice"
	"github.com/GlebRadaev/zearn/internal/service/authservice"
	"github.com/GlebRadaev/zearn/internal/service/ledgerservice"
	"github.com/GlebRadaev/zearn/internal/service/settingsservice"
	"github.com/GlebRadaev/zearn/internal/service/taskservice"
	"github.com/GlebRadaev/zearn/internal/service/withdrawalservice"
)

type AccountService interface {
	user.AccountService
	admin.AccountService
	RefreshLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type TaskService interface {
	tasks.Service
	admin.TaskService
}

type WithdrawalService interface {
	withdrawals.Service
	admin.WithdrawalService
}

type SettingsService interface {
	settings.Service
	Load(ctx context.Context) error
	Refresh(ctx context.Context) error
}

type Services struct {
	AuthService       auth.Service
	AccountService    AccountService
	LedgerService     user.LedgerService
	TaskService       TaskService
	WithdrawalService WithdrawalService
	DashboardService  admin.DashboardService
	SettingsService   SettingsService
	TokenValidator    pkgauth.TokenValidator
}

func New(repo *repo.Repositories, cfg *config.Config, leaderboard accountservice.Cache) *Services {
	hashService := &pkgauth.HashService{}
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)

	settingsService := settingsservice.New(repo.SettingsRepo, hashService)
	ledgerService := ledgerservice.New(repo.LedgerRepo, repo.AccountRepo, settingsService)
	taskService := taskservice.New(repo.TaskRepo, ledgerService, verify.NewGate(cfg.DemoBypassEnabled))
	withdrawalService := withdrawalservice.New(repo.WithdrawalRepo, settingsService)
	accountService := accountservice.New(repo.AccountRepo, leaderboard)
	authService := authservice.New(repo.AccountRepo, settingsService, hashService, jwtService, cfg.TokenTTL)
	dashboardService := adminservice.New(accountService, taskService, withdrawalService, settingsService)

	return &Services{
		AuthService:       authService,
		AccountService:    accountService,
		LedgerService:     ledgerService,
		TaskService:       taskService,
		WithdrawalService: withdrawalService,
		DashboardService:  dashboardService,
		SettingsService:   settingsService,
		TokenValidator:    jwtService,
	}
}
