package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/pkg/auth"
	"github.com/GlebRadaev/rentvest/pkg/validate"
	"github.com/dchest/uniuri"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mock.go -package=authservice

type Repo interface {
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

var (
	ErrPhoneTaken          = errors.New("phone number already registered")
	ErrInvalidPhone        = errors.New("invalid phone number")
	ErrUnknownReferralCode = errors.New("referral code does not exist")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrCodeExhausted       = errors.New("can't allocate a referral code")
)

const (
	referralCodeLength   = 8
	referralCodeAttempts = 5
)

// Ambiguous characters (0/O, 1/I) are left out of referral codes.
var referralAlphabet = []byte("ABCDEFGHJKLMNPQRSTUVWXYZ23456789")

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, phone, password, referralCode string) (*domain.User, error) {
	phone = validate.NormalizePhone(phone)
	if phone == "" {
		return nil, ErrInvalidPhone
	}
	existingUser, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("phone", phone))
		return nil, ErrPhoneTaken
	}

	var referredBy *string
	if referralCode = strings.ToUpper(strings.TrimSpace(referralCode)); referralCode != "" {
		sponsor, err := s.userRepo.FindByReferralCode(ctx, referralCode)
		if err != nil {
			zap.L().Error("can't find sponsor", zap.Error(err))
			return nil, err
		}
		if sponsor == nil {
			return nil, ErrUnknownReferralCode
		}
		referredBy = &sponsor.ReferralCode
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	code, err := s.newReferralCode(ctx)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Phone:        phone,
		PasswordHash: hashedPassword,
		Role:         domain.RoleUser,
		ReferralCode: code,
		ReferredBy:   referredBy,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// a concurrent registration can win the race past FindByPhone
		if isUniqueViolation(err, phoneConstraint) {
			return nil, ErrPhoneTaken
		}
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.Int("user_id", newUser.ID), zap.Bool("referred", referredBy != nil))
	return newUser, nil
}

const (
	uniqueViolation = "23505"
	phoneConstraint = "users_phone_key"
)

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraint
}

func (s *Service) newReferralCode(ctx context.Context) (string, error) {
	for i := 0; i < referralCodeAttempts; i++ {
		code := uniuri.NewLenChars(referralCodeLength, referralAlphabet)
		owner, err := s.userRepo.FindByReferralCode(ctx, code)
		if err != nil {
			zap.L().Error("can't check referral code", zap.Error(err))
			return "", err
		}
		if owner == nil {
			return code, nil
		}
	}
	zap.L().Error("referral code space exhausted", zap.Int("attempts", referralCodeAttempts))
	return "", ErrCodeExhausted
}

func (s *Service) Authenticate(ctx context.Context, phone, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByPhone(ctx, validate.NormalizePhone(phone))
	if err != nil || user == nil {
		zap.L().Warn("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Warn("invalid credentials", zap.Int("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.Int("user_id", user.ID))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(user.ID, user.Role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
