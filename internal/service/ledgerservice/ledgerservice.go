package ledgerservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zearn/internal/domain"
)

const (
	MsgAlreadyClaimed = "Already claimed today"
	msgClaimed        = "Claimed %d Coins!"
)

type Repo interface {
	GrantReward(ctx context.Context, grant domain.Grant, now time.Time) (bool, error)
	MarkFailed(ctx context.Context, accountID, taskID, taskTitle string, now time.Time) error
	ClaimDaily(ctx context.Context, accountID string, amount int64, now, dayStart time.Time) (bool, error)
	EnterJackpot(ctx context.Context, entry *domain.JackpotEntry) error
	JackpotEntries(ctx context.Context, month string) ([]domain.JackpotEntry, error)
}

type AccountFinder interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
}

type SettingsProvider interface {
	Current() domain.Settings
}

// Service is the single writer of account counters and terminal task completion states.
type Service struct {
	repo     Repo
	accounts AccountFinder
	settings SettingsProvider
	now      func() time.Time
}

func New(repo Repo, accounts AccountFinder, settings SettingsProvider) *Service {
	return &Service{
		repo:     repo,
		accounts: accounts,
		settings: settings,
		now:      time.Now,
	}
}

func startOfDayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func monthOf(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// GrantReward credits the grant once per (account, task). It reports false
// when the task was already completed; that outcome is still a success.
func (s *Service) GrantReward(ctx context.Context, grant domain.Grant) (bool, error) {
	if grant.Reward < 0 || grant.DiamondReward < 0 {
		return false, domain.ErrInvalidAmount
	}
	granted, err := s.repo.GrantReward(ctx, grant, s.now().UTC())
	if err != nil {
		zap.L().Error("failed to grant reward", zap.String("account_id", grant.AccountID), zap.String("task_id", grant.TaskID), zap.Error(err))
		return false, err
	}
	if granted {
		zap.L().Info("reward granted",
			zap.String("account_id", grant.AccountID),
			zap.String("task_id", grant.TaskID),
			zap.Int64("reward", grant.Reward),
			zap.Int64("diamonds", grant.DiamondReward),
		)
	}
	return granted, nil
}

func (s *Service) MarkFailed(ctx context.Context, accountID, taskID, taskTitle string) error {
	if err := s.repo.MarkFailed(ctx, accountID, taskID, taskTitle, s.now().UTC()); err != nil {
		zap.L().Error("failed to mark task failed", zap.String("account_id", accountID), zap.String("task_id", taskID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) ClaimDaily(ctx context.Context, accountID string) (domain.Result, error) {
	now := s.now().UTC()
	amount := s.settings.Current().DailyClaimAmount

	claimed, err := s.repo.ClaimDaily(ctx, accountID, amount, now, startOfDayUTC(now))
	if err != nil {
		zap.L().Error("failed to claim daily bonus", zap.String("account_id", accountID), zap.Error(err))
		return domain.Result{}, err
	}
	if !claimed {
		return domain.Result{Success: false, Message: MsgAlreadyClaimed}, nil
	}
	return domain.Result{Success: true, Message: fmt.Sprintf(msgClaimed, amount)}, nil
}

// DailyClaimed reports whether the account has already taken today's bonus.
func (s *Service) DailyClaimed(ctx context.Context, accountID string) (bool, int64, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return false, 0, err
	}
	if account == nil {
		return false, 0, domain.ErrAccountNotFound
	}
	amount := s.settings.Current().DailyClaimAmount
	if account.LastDailyClaim == nil {
		return false, amount, nil
	}
	return !account.LastDailyClaim.Before(startOfDayUTC(s.now())), amount, nil
}

func (s *Service) EnterJackpot(ctx context.Context, accountID string) (*domain.JackpotEntry, error) {
	now := s.now().UTC()
	entry := &domain.JackpotEntry{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		AmountSpent: s.settings.Current().JackpotEntryFee,
		Month:       monthOf(now),
		CreatedAt:   now,
	}
	if err := s.repo.EnterJackpot(ctx, entry); err != nil {
		zap.L().Error("failed to enter jackpot", zap.String("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// JackpotEntries lists the entries of the current month.
func (s *Service) JackpotEntries(ctx context.Context) ([]domain.JackpotEntry, error) {
	entries, err := s.repo.JackpotEntries(ctx, monthOf(s.now()))
	if err != nil {
		zap.L().Error("failed to get jackpot entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
