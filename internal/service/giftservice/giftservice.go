package giftservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/internal/pg"
	"github.com/GlebRadaev/rentvest/internal/rules"
	"github.com/GlebRadaev/rentvest/pkg/metrics"
	"go.uber.org/zap"
)

//go:generate mockgen -source=giftservice.go -destination=mock.go -package=giftservice

type GiftRepo interface {
	Get(ctx context.Context, userID int) (*domain.UserGift, error)
	GetForUpdate(ctx context.Context, userID int) (*domain.UserGift, error)
	Save(ctx context.Context, g *domain.UserGift) error
	AddSpin(ctx context.Context, spin *domain.SpinRecord) (*domain.SpinRecord, error)
	FindSpins(ctx context.Context, userID, limit int) ([]domain.SpinRecord, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type BalanceRepo interface {
	CreditEarnings(ctx context.Context, userID int, amount int64) error
}

type ReferralCounter interface {
	CountValidReferrals(ctx context.Context, code string) (int, error)
}

var ErrUserNotFound = errors.New("user not found")

const spinHistoryLimit = 20

type Status struct {
	domain.UserGift
	ValidReferrals int
	SpinUnlocked   bool
	NextCheckInAt  time.Time
	NextSpinAt     time.Time
}

type CheckInResult struct {
	Reward     int64
	Streak     int
	TotalBonus int64
}

type SpinResult struct {
	Segment    rules.WheelSegment
	Prize      int64
	TotalBonus int64
}

type Service struct {
	giftRepo    GiftRepo
	userRepo    UserRepo
	balanceRepo BalanceRepo
	referrals   ReferralCounter
	txManager   pg.TXManager
	wheel       *rules.Wheel
	now         func() time.Time
}

func New(giftRepo GiftRepo, userRepo UserRepo, balanceRepo BalanceRepo, referrals ReferralCounter, txManager pg.TXManager, wheel *rules.Wheel) *Service {
	return &Service{
		giftRepo:    giftRepo,
		userRepo:    userRepo,
		balanceRepo: balanceRepo,
		referrals:   referrals,
		txManager:   txManager,
		wheel:       wheel,
		now:         time.Now,
	}
}

func (s *Service) validReferrals(ctx context.Context, userID int) (int, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}
	return s.referrals.CountValidReferrals(ctx, user.ReferralCode)
}

func (s *Service) Status(ctx context.Context, userID int) (*Status, error) {
	gift, err := s.giftRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	count, err := s.validReferrals(ctx, userID)
	if err != nil {
		zap.L().Error("failed to count referrals", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &Status{
		UserGift:       *gift,
		ValidReferrals: count,
		SpinUnlocked:   count >= rules.MinSpinReferrals,
		NextCheckInAt:  rules.NextCheckInAt(gift.LastCheckinAt),
		NextSpinAt:     rules.NextSpinAt(gift.LastSpinAt, count),
	}, nil
}

// CheckIn grants the daily reward for the user's streak.
func (s *Service) CheckIn(ctx context.Context, userID int) (*CheckInResult, error) {
	var result CheckInResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		gift, err := s.giftRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		now := s.now()
		streak, err := rules.NextStreak(gift.LastCheckinAt, gift.CheckinStreak, now)
		if err != nil {
			return err
		}
		reward, err := rules.CapBonus(gift.TotalBonus, rules.CheckInReward(streak), rules.BonusCap)
		if err != nil {
			return err
		}

		gift.CheckinStreak = streak
		gift.LastCheckinAt = &now
		gift.TotalBonus += reward
		if err := s.giftRepo.Save(ctx, gift); err != nil {
			return err
		}
		if err := s.balanceRepo.CreditEarnings(ctx, userID, reward); err != nil {
			return err
		}
		result = CheckInResult{Reward: reward, Streak: streak, TotalBonus: gift.TotalBonus}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.BonusGranted.WithLabelValues("checkin").Add(float64(result.Reward))
	zap.L().Info("check-in", zap.Int("user_id", userID), zap.Int("streak", result.Streak), zap.Int64("reward", result.Reward))
	return &result, nil
}

// Spin draws a wheel segment and credits its prize, capped by the bonus limit.
func (s *Service) Spin(ctx context.Context, userID int) (*SpinResult, error) {
	count, err := s.validReferrals(ctx, userID)
	if err != nil {
		return nil, err
	}

	var result SpinResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		gift, err := s.giftRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		now := s.now()
		if err := rules.CanSpin(gift.LastSpinAt, count, now); err != nil {
			return err
		}

		segment := s.wheel.Spin()
		prize, err := rules.CapBonus(gift.TotalBonus, segment.Prize, rules.BonusCap)
		if err != nil {
			return err
		}

		gift.LastSpinAt = &now
		gift.TotalBonus += prize
		if err := s.giftRepo.Save(ctx, gift); err != nil {
			return err
		}
		if _, err := s.giftRepo.AddSpin(ctx, &domain.SpinRecord{UserID: userID, Prize: prize, CreatedAt: now}); err != nil {
			return err
		}
		if err := s.balanceRepo.CreditEarnings(ctx, userID, prize); err != nil {
			return err
		}
		result = SpinResult{Segment: segment, Prize: prize, TotalBonus: gift.TotalBonus}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.BonusGranted.WithLabelValues("spin").Add(float64(result.Prize))
	zap.L().Info("wheel spun", zap.Int("user_id", userID), zap.Int("segment", result.Segment.ID), zap.Int64("prize", result.Prize))
	return &result, nil
}

func (s *Service) SpinHistory(ctx context.Context, userID int) ([]domain.SpinRecord, error) {
	spins, err := s.giftRepo.FindSpins(ctx, userID, spinHistoryLimit)
	if err != nil {
		zap.L().Error("failed to load spin history", zap.Error(err))
		return nil, err
	}
	return spins, nil
}
