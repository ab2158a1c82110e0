package adminservice

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/zearn/internal/domain"
)

type Accounts interface {
	List(ctx context.Context) ([]domain.Account, error)
}

type Tasks interface {
	All(ctx context.Context) ([]domain.Task, error)
	Stats(ctx context.Context) ([]domain.TaskStats, error)
}

type Withdrawals interface {
	All(ctx context.Context) ([]domain.Withdrawal, error)
}

type SettingsProvider interface {
	Current() domain.Settings
}

type Service struct {
	accounts    Accounts
	tasks       Tasks
	withdrawals Withdrawals
	settings    SettingsProvider
}

func New(accounts Accounts, tasks Tasks, withdrawals Withdrawals, settings SettingsProvider) *Service {
	return &Service{
		accounts:    accounts,
		tasks:       tasks,
		withdrawals: withdrawals,
		settings:    settings,
	}
}

// Dashboard loads everything the operator console shows in one round.
// The first failing read cancels the others.
func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	d := &domain.Dashboard{Settings: s.settings.Current()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		d.Accounts, err = s.accounts.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.Tasks, err = s.tasks.All(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.Withdrawals, err = s.withdrawals.All(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.Stats, err = s.tasks.Stats(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to load dashboard", zap.Error(err))
		return nil, err
	}
	return d, nil
}
