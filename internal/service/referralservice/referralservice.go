package referralservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/internal/pg"
	"github.com/GlebRadaev/rentvest/internal/rules"
	"github.com/GlebRadaev/rentvest/pkg/metrics"
	"go.uber.org/zap"
)

//go:generate mockgen -source=referralservice.go -destination=mock.go -package=referralservice

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
}

type BalanceRepo interface {
	CreditEarnings(ctx context.Context, userID int, amount int64) error
}

type CommissionRepo interface {
	CreateCommission(ctx context.Context, c *domain.ReferralCommission) (*domain.ReferralCommission, error)
	FindCommissions(ctx context.Context, sponsorID, limit int) ([]domain.ReferralCommission, error)
	TotalEarned(ctx context.Context, sponsorID int) (int64, error)
	TeamCounts(ctx context.Context, code string) (*domain.TeamStats, error)
}

var ErrUserNotFound = errors.New("user not found")

const recentEarningsLimit = 20

type Service struct {
	userRepo       UserRepo
	balanceRepo    BalanceRepo
	commissionRepo CommissionRepo
	txManager      pg.TXManager
}

func New(userRepo UserRepo, balanceRepo BalanceRepo, commissionRepo CommissionRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:       userRepo,
		balanceRepo:    balanceRepo,
		commissionRepo: commissionRepo,
		txManager:      txManager,
	}
}

// PayCommissions walks up to three sponsors above the investor and pays each
// its share of amount. Each level commits on its own; the walk stops at the
// first missing sponsor or failure and returns what was paid so far.
func (s *Service) PayCommissions(ctx context.Context, investor *domain.User, rentalID int, amount int64) ([]domain.ReferralCommission, error) {
	var paid []domain.ReferralCommission
	code := investor.ReferredBy

	for _, level := range rules.Commissions(amount) {
		if code == nil {
			break
		}
		sponsor, err := s.userRepo.FindByReferralCode(ctx, *code)
		if err != nil {
			return paid, err
		}
		if sponsor == nil {
			zap.L().Warn("sponsor not found", zap.String("code", *code), zap.Int("level", level.Level))
			break
		}

		if level.Amount > 0 {
			commission := &domain.ReferralCommission{
				SponsorID:        sponsor.ID,
				ReferredUserID:   investor.ID,
				RentalID:         rentalID,
				InvestmentAmount: amount,
				Tier:             level.Tier,
				Rate:             level.Rate.StringFixed(2),
				Amount:           level.Amount,
			}
			err := s.txManager.Begin(ctx, func(ctx context.Context) error {
				if err := s.balanceRepo.CreditEarnings(ctx, sponsor.ID, level.Amount); err != nil {
					return err
				}
				saved, err := s.commissionRepo.CreateCommission(ctx, commission)
				if err != nil {
					return err
				}
				commission = saved
				return nil
			})
			if err != nil {
				zap.L().Error("failed to pay commission",
					zap.Int("sponsor_id", sponsor.ID), zap.String("tier", level.Tier), zap.Error(err))
				return paid, err
			}
			metrics.CommissionsPaid.WithLabelValues(level.Tier).Add(float64(level.Amount))
			paid = append(paid, *commission)
		}
		code = sponsor.ReferredBy
	}

	if len(paid) > 0 {
		zap.L().Info("commissions paid", zap.Int("investor_id", investor.ID), zap.Int("rental_id", rentalID), zap.Int("levels", len(paid)))
	}
	return paid, nil
}

func (s *Service) Team(ctx context.Context, userID int) (*domain.TeamStats, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	stats, err := s.commissionRepo.TeamCounts(ctx, user.ReferralCode)
	if err != nil {
		return nil, err
	}
	if stats.TotalEarned, err = s.commissionRepo.TotalEarned(ctx, userID); err != nil {
		return nil, err
	}
	if stats.RecentEarnings, err = s.commissionRepo.FindCommissions(ctx, userID, recentEarningsLimit); err != nil {
		return nil, err
	}
	return stats, nil
}
