package withdrawalservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zearn/internal/domain"
)

var (
	ErrBelowMinimum   = errors.New("amount is below the minimum withdrawal")
	ErrInvalidMethod  = errors.New("unsupported payout method")
	ErrMissingDetails = errors.New("payout details are required")
)

type Repo interface {
	Create(ctx context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error)
	FindByAccount(ctx context.Context, accountID string) ([]domain.Withdrawal, error)
	FindAll(ctx context.Context) ([]domain.Withdrawal, error)
	Transition(ctx context.Context, id string, now time.Time, decide func(current domain.Withdrawal) (domain.Transition, error)) (*domain.Withdrawal, error)
}

type SettingsProvider interface {
	Current() domain.Settings
}

type Service struct {
	repo     Repo
	settings SettingsProvider
	now      func() time.Time
}

func New(repo Repo, settings SettingsProvider) *Service {
	return &Service{
		repo:     repo,
		settings: settings,
		now:      time.Now,
	}
}

// Request holds amount on the balance and opens a PENDING request.
func (s *Service) Request(ctx context.Context, accountID string, amount int64, method, details string) (*domain.Withdrawal, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if minimum := s.settings.Current().MinWithdrawal; amount < minimum {
		return nil, fmt.Errorf("%w: %d", ErrBelowMinimum, minimum)
	}
	if !domain.IsPayoutMethod(method) {
		return nil, ErrInvalidMethod
	}
	if strings.TrimSpace(details) == "" {
		return nil, ErrMissingDetails
	}

	now := s.now().UTC()
	w, err := s.repo.Create(ctx, &domain.Withdrawal{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		Amount:      amount,
		Method:      method,
		Details:     details,
		Status:      domain.WithdrawalPending,
		RequestedAt: now,
		UpdatedAt:   now,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInsufficientBalance) && !errors.Is(err, domain.ErrAccountNotFound) {
			zap.L().Error("failed to create withdrawal", zap.String("account_id", accountID), zap.Error(err))
		}
		return nil, err
	}
	zap.L().Info("withdrawal requested", zap.String("withdrawal_id", w.ID), zap.Int64("amount", amount))
	return w, nil
}

// adminDecision is the transition an operator may apply to a request.
// Rejected requests are final and stay untouched, completed ones can not be
// reopened, and only the participant may confirm receipt.
func adminDecision(to domain.WithdrawalStatus) func(domain.Withdrawal) (domain.Transition, error) {
	return func(current domain.Withdrawal) (domain.Transition, error) {
		switch {
		case current.Status == domain.WithdrawalRejected, current.Status == to:
			return domain.Transition{}, nil
		case current.Status == domain.WithdrawalCompleted:
			return domain.Transition{}, domain.ErrInvalidTransition
		}

		switch to {
		case domain.WithdrawalRejected:
			return domain.Transition{To: to, Refund: true}, nil
		case domain.WithdrawalPending, domain.WithdrawalPaidByAdmin:
			return domain.Transition{To: to}, nil
		default:
			return domain.Transition{}, domain.ErrInvalidTransition
		}
	}
}

func confirmDecision(accountID string, received bool) func(domain.Withdrawal) (domain.Transition, error) {
	return func(current domain.Withdrawal) (domain.Transition, error) {
		if current.AccountID != accountID {
			return domain.Transition{}, domain.ErrWithdrawalNotFound
		}
		if current.Status != domain.WithdrawalPaidByAdmin {
			return domain.Transition{}, domain.ErrInvalidTransition
		}
		if received {
			return domain.Transition{To: domain.WithdrawalCompleted}, nil
		}
		return domain.Transition{To: domain.WithdrawalPending}, nil
	}
}

func (s *Service) SetStatus(ctx context.Context, id string, to domain.WithdrawalStatus) (*domain.Withdrawal, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrWithdrawalNotFound
	}
	w, err := s.repo.Transition(ctx, id, s.now().UTC(), adminDecision(to))
	if err != nil {
		zap.L().Warn("withdrawal status not changed", zap.String("withdrawal_id", id), zap.String("to", string(to)), zap.Error(err))
		return nil, err
	}
	zap.L().Info("withdrawal status set", zap.String("withdrawal_id", id), zap.String("status", string(w.Status)))
	return w, nil
}

// Confirm lets the owner acknowledge a payout. A denied receipt sends the
// request back to PENDING.
func (s *Service) Confirm(ctx context.Context, accountID, id string, received bool) (*domain.Withdrawal, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrWithdrawalNotFound
	}
	w, err := s.repo.Transition(ctx, id, s.now().UTC(), confirmDecision(accountID, received))
	if err != nil {
		return nil, err
	}
	zap.L().Info("withdrawal confirmed", zap.String("withdrawal_id", id), zap.Bool("received", received))
	return w, nil
}

func (s *Service) ByAccount(ctx context.Context, accountID string) ([]domain.Withdrawal, error) {
	withdrawals, err := s.repo.FindByAccount(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get withdrawals", zap.String("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) All(ctx context.Context) ([]domain.Withdrawal, error) {
	withdrawals, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
