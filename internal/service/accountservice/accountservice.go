package accountservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zearn/internal/domain"
)

const LeaderboardSize = 50

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	TopByBalance(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	ToggleBan(ctx context.Context, id string) (bool, error)
}

type Cache interface {
	Get(ctx context.Context) ([]domain.LeaderboardEntry, bool)
	Set(ctx context.Context, entries []domain.LeaderboardEntry)
	Invalidate(ctx context.Context)
}

type Service struct {
	repo  Repo
	cache Cache
}

func New(repo Repo, cache Cache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

func (s *Service) Profile(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get account", zap.String("account_id", accountID), zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	if entries, ok := s.cache.Get(ctx); ok {
		return entries, nil
	}
	return s.RefreshLeaderboard(ctx)
}

// RefreshLeaderboard reads the board from the store and replaces the cached copy.
func (s *Service) RefreshLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	entries, err := s.repo.TopByBalance(ctx, LeaderboardSize)
	if err != nil {
		zap.L().Error("failed to build leaderboard", zap.Error(err))
		return nil, err
	}
	s.cache.Set(ctx, entries)
	return entries, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

// ToggleBan flips the ban flag and returns the new value. Banned accounts
// drop off the leaderboard, so the cached board is discarded.
func (s *Service) ToggleBan(ctx context.Context, accountID string) (bool, error) {
	if _, err := uuid.Parse(accountID); err != nil {
		return false, domain.ErrAccountNotFound
	}
	banned, err := s.repo.ToggleBan(ctx, accountID)
	if err != nil {
		if !errors.Is(err, domain.ErrAccountNotFound) {
			zap.L().Error("failed to toggle ban", zap.String("account_id", accountID), zap.Error(err))
		}
		return false, err
	}
	s.cache.Invalidate(ctx)
	zap.L().Info("account ban toggled", zap.String("account_id", accountID), zap.Bool("banned", banned))
	return banned, nil
}
