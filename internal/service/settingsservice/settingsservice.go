package settingsservice

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/zearn/internal/domain"
	"github.com/GlebRadaev/zearn/pkg/auth"
)

const defaultAdminPassword = "admin"

type Repo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}

// Service keeps the last known settings in memory so readers on hot paths
// never touch the database.
type Service struct {
	repo     Repo
	hasher   auth.HashServiceInterface
	snapshot atomic.Pointer[domain.Settings]
	now      func() time.Time
}

func New(repo Repo, hasher auth.HashServiceInterface) *Service {
	s := &Service{
		repo:   repo,
		hasher: hasher,
		now:    time.Now,
	}
	defaults := domain.DefaultSettings()
	s.snapshot.Store(&defaults)
	return s
}

// Load reads the stored settings, installing defaults and the default admin
// password on first start.
func (s *Service) Load(ctx context.Context) error {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		zap.L().Error("failed to load settings", zap.Error(err))
		return err
	}

	settings := domain.DefaultSettings()
	if stored != nil {
		settings = *stored
	}
	if settings.AdminPasswordHash == "" {
		hash, err := s.hasher.HashPassword(defaultAdminPassword)
		if err != nil {
			zap.L().Error("failed to hash default admin password", zap.Error(err))
			return err
		}
		settings.AdminPasswordHash = hash
		settings.UpdatedAt = s.now().UTC()
		if err := s.repo.Save(ctx, settings); err != nil {
			zap.L().Error("failed to save settings", zap.Error(err))
			return err
		}
		zap.L().Info("default admin password installed")
	}

	s.snapshot.Store(&settings)
	return nil
}

// Refresh picks up changes written by other instances.
func (s *Service) Refresh(ctx context.Context) error {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		zap.L().Error("failed to refresh settings", zap.Error(err))
		return err
	}
	if stored != nil {
		s.snapshot.Store(stored)
	}
	return nil
}

func (s *Service) Current() domain.Settings {
	return *s.snapshot.Load()
}

func (s *Service) VerifyAdminPassword(password string) bool {
	return s.hasher.ComparePassword(s.Current().AdminPasswordHash, password)
}

func (s *Service) Update(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error) {
	settings := s.Current()
	settings.TapCount = upd.TapCount
	settings.DailyClaimAmount = upd.DailyClaimAmount
	settings.MinWithdrawal = upd.MinWithdrawal
	settings.JackpotEntryFee = upd.JackpotEntryFee
	settings.UpdatedAt = s.now().UTC()

	if upd.AdminPassword != "" {
		hash, err := s.hasher.HashPassword(upd.AdminPassword)
		if err != nil {
			zap.L().Error("failed to hash admin password", zap.Error(err))
			return domain.Settings{}, err
		}
		settings.AdminPasswordHash = hash
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		zap.L().Error("failed to save settings", zap.Error(err))
		return domain.Settings{}, err
	}
	s.snapshot.Store(&settings)
	zap.L().Info("settings updated")
	return settings, nil
}
