package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zearn/internal/domain"
	"github.com/GlebRadaev/zearn/pkg/auth"
	"github.com/GlebRadaev/zearn/pkg/validate"
)

// AdminEmail is the address that owns the operator account.
const AdminEmail = "admin@zearn.app"

const referralAttempts = 5

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountBanned      = errors.New("account is banned")
	ErrInvalidReferral    = errors.New("referral code is not valid")
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

type AdminVerifier interface {
	VerifyAdminPassword(password string) bool
}

type Service struct {
	accountRepo Repo
	admin       AdminVerifier
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
	now         func() time.Time
	newCode     func() string
}

func New(repo Repo, admin AdminVerifier, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		accountRepo: repo,
		admin:       admin,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
		now:         time.Now,
		newCode:     validate.NewReferralCode,
	}
}

func (s *Service) Register(ctx context.Context, reg domain.Registration) (*domain.Account, error) {
	email := strings.TrimSpace(reg.Email)
	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("account already exists", zap.String("email", email))
		return nil, domain.ErrEmailTaken
	}

	if reg.ReferredBy != "" {
		if err := s.checkReferral(ctx, reg.ReferredBy); err != nil {
			return nil, err
		}
	}

	hashedPassword, err := s.hashService.HashPassword(reg.Password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	account := &domain.Account{
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         reg.Name,
		Mobile:       reg.Mobile,
		Gender:       reg.Gender,
		DOB:          reg.DOB,
		District:     reg.District,
		State:        reg.State,
		Country:      reg.Country,
		ReferredBy:   reg.ReferredBy,
		IsAdmin:      email == AdminEmail,
	}
	created, err := s.create(ctx, account)
	if err != nil {
		return nil, err
	}

	zap.L().Info("account successfully registered", zap.String("email", email))
	return created, nil
}

func (s *Service) checkReferral(ctx context.Context, code string) error {
	if !validate.IsReferralCode(code) {
		return ErrInvalidReferral
	}
	referrer, err := s.accountRepo.FindByReferralCode(ctx, code)
	if err != nil {
		zap.L().Error("can't find referrer", zap.Error(err))
		return err
	}
	if referrer == nil {
		return ErrInvalidReferral
	}
	return nil
}

// create stores the account, drawing a fresh referral code whenever the
// generated one is already taken.
func (s *Service) create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	var err error
	for i := 0; i < referralAttempts; i++ {
		account.ID = uuid.NewString()
		account.ReferralCode = s.newCode()

		var created *domain.Account
		created, err = s.accountRepo.Create(ctx, account)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, domain.ErrReferralCodeTaken) {
			if !errors.Is(err, domain.ErrEmailTaken) {
				zap.L().Error("can't create account", zap.Error(err))
			}
			return nil, err
		}
	}
	zap.L().Error("can't allocate referral code", zap.Error(err))
	return nil, err
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	email = strings.TrimSpace(email)
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find account", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if account == nil || !s.hashService.ComparePassword(account.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if account.IsBanned {
		zap.L().Info("banned account tried to log in", zap.String("account_id", account.ID))
		return nil, ErrAccountBanned
	}
	zap.L().Info("account successfully authenticated", zap.String("account_id", account.ID))
	return account, nil
}

// AdminLogin checks the operator password from settings and returns the
// operator account, creating it on first use.
func (s *Service) AdminLogin(ctx context.Context, password string) (*domain.Account, error) {
	if !s.admin.VerifyAdminPassword(password) {
		zap.L().Info("invalid admin password")
		return nil, ErrInvalidCredentials
	}

	account, err := s.accountRepo.FindByEmail(ctx, AdminEmail)
	if err != nil {
		zap.L().Error("can't find admin account", zap.Error(err))
		return nil, err
	}
	if account != nil {
		return account, nil
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	account, err = s.create(ctx, &domain.Account{
		Email:        AdminEmail,
		PasswordHash: hashedPassword,
		Name:         "Admin",
		IsAdmin:      true,
	})
	if errors.Is(err, domain.ErrEmailTaken) {
		return s.accountRepo.FindByEmail(ctx, AdminEmail)
	}
	if err != nil {
		return nil, err
	}
	zap.L().Info("admin account created", zap.String("account_id", account.ID))
	return account, nil
}

func (s *Service) GenerateToken(account *domain.Account) (string, error) {
	expirationTime := s.now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(account.ID, account.IsAdmin, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
