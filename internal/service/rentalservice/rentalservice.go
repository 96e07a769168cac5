package rentalservice

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

//go:generate mockgen -source=rentalservice.go -destination=mock.go -package=rentalservice

type UserRepo interface {
	GetForUpdate(ctx context.Context, id int) (*domain.User, error)
}

type BalanceRepo interface {
	ApplyInvestment(ctx context.Context, userID int, amount int64) (bool, error)
	CreditEarnings(ctx context.Context, userID int, amount int64) error
}

type RentalRepo interface {
	Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Rental, error)
	FindByUserIDForUpdate(ctx context.Context, userID int) ([]domain.Rental, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Rental, error)
	AddCollected(ctx context.Context, id int, amount int64, at time.Time) error
}

type CommissionPayer interface {
	PayCommissions(ctx context.Context, investor *domain.User, rentalID int, amount int64) ([]domain.ReferralCommission, error)
}

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrRentalNotFound   = errors.New("rental not found")
	ErrNothingToCollect = errors.New("nothing to collect yet")
)

// Offer is a catalog product as seen by one user.
type Offer struct {
	rules.Product
	Owned     bool
	Available bool
}

// Position is a rental with its earnings evaluated at a point in time.
type Position struct {
	domain.Rental
	Accrued     int64
	Collectable int64
	Progress    int
	Finished    bool
}

type Service struct {
	userRepo    UserRepo
	balanceRepo BalanceRepo
	rentalRepo  RentalRepo
	commissions CommissionPayer
	txManager   pg.TXManager
	now         func() time.Time
}

func New(userRepo UserRepo, balanceRepo BalanceRepo, rentalRepo RentalRepo, commissions CommissionPayer, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:    userRepo,
		balanceRepo: balanceRepo,
		rentalRepo:  rentalRepo,
		commissions: commissions,
		txManager:   txManager,
		now:         time.Now,
	}
}

func (s *Service) Products(ctx context.Context, userID int) ([]Offer, error) {
	held, err := s.rentalRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load rentals", zap.Error(err))
		return nil, err
	}
	owned := make(map[int]bool, len(held))
	for _, r := range held {
		owned[r.ProductID] = true
	}
	highest := rules.HighestTier(held)

	offers := make([]Offer, 0, len(rules.Products))
	for _, p := range rules.Products {
		offers = append(offers, Offer{
			Product:   p,
			Owned:     owned[p.ID],
			Available: p.ID > highest,
		})
	}
	return offers, nil
}

// Purchase debits the deposit balance and opens a rental in one transaction.
// Commissions are paid after commit; a failure there does not undo the
// purchase.
func (s *Service) Purchase(ctx context.Context, userID, productID, quantity int) (*domain.Rental, error) {
	product, amount, err := rules.Quote(productID, quantity)
	if err != nil {
		return nil, err
	}

	var (
		investor *domain.User
		rental   *domain.Rental
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		held, err := s.rentalRepo.FindByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if err := rules.ValidateInvestment(held, product.ID, amount, user.DepositBalance); err != nil {
			return err
		}

		applied, err := s.balanceRepo.ApplyInvestment(ctx, userID, amount)
		if err != nil {
			return err
		}
		if !applied {
			return rules.ErrDepositRequired
		}

		start := s.now()
		rental, err = s.rentalRepo.Create(ctx, &domain.Rental{
			UserID:       userID,
			ProductID:    product.ID,
			Quantity:     quantity,
			UnitPrice:    product.Price,
			DailyRevenue: product.DailyRevenue * int64(quantity),
			DurationDays: product.DurationDays,
			TotalRevenue: product.TotalRevenue(quantity),
			StartedAt:    start,
			EndsAt:       start.Add(time.Duration(product.DurationDays) * 24 * time.Hour),
		})
		investor = user
		return err
	})
	if err != nil {
		zap.L().Warn("purchase failed", zap.Int("user_id", userID), zap.Int("product_id", productID), zap.Error(err))
		return nil, err
	}

	metrics.Investments.WithLabelValues(product.Name).Add(float64(amount))
	zap.L().Info("rental purchased", zap.Int("user_id", userID), zap.Int("rental_id", rental.ID), zap.Int64("amount", amount))

	if _, err := s.commissions.PayCommissions(ctx, investor, rental.ID, amount); err != nil {
		zap.L().Error("commission payout incomplete", zap.Int("rental_id", rental.ID), zap.Error(err))
	}
	return rental, nil
}

func (s *Service) Positions(ctx context.Context, userID int) ([]Position, error) {
	rentals, err := s.rentalRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load rentals", zap.Error(err))
		return nil, err
	}
	now := s.now()
	positions := make([]Position, 0, len(rentals))
	for _, r := range rentals {
		positions = append(positions, Position{
			Rental:      r,
			Accrued:     rules.Accrued(r, now),
			Collectable: rules.Collectable(r, now),
			Progress:    rules.Progress(r, now),
			Finished:    rules.Finished(r, now),
		})
	}
	return positions, nil
}

// Collect moves the accrued but uncollected revenue of one rental to the
// withdrawable balance.
func (s *Service) Collect(ctx context.Context, userID, rentalID int) (int64, error) {
	var amount int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		r, err := s.rentalRepo.GetForUpdate(ctx, rentalID)
		if err != nil {
			return err
		}
		if r == nil || r.UserID != userID {
			return ErrRentalNotFound
		}
		now := s.now()
		amount = rules.Collectable(*r, now)
		if amount <= 0 {
			return ErrNothingToCollect
		}
		if err := s.rentalRepo.AddCollected(ctx, r.ID, amount, now); err != nil {
			return err
		}
		return s.balanceRepo.CreditEarnings(ctx, userID, amount)
	})
	if err != nil {
		return 0, err
	}
	metrics.RevenueCollected.Add(float64(amount))
	zap.L().Info("revenue collected", zap.Int("user_id", userID), zap.Int("rental_id", rentalID), zap.Int64("amount", amount))
	return amount, nil
}

// CollectAll collects every rental of the user in one transaction.
func (s *Service) CollectAll(ctx context.Context, userID int) (int64, error) {
	var total int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		rentals, err := s.rentalRepo.FindByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		now := s.now()
		for _, r := range rentals {
			amount := rules.Collectable(r, now)
			if amount <= 0 {
				continue
			}
			if err := s.rentalRepo.AddCollected(ctx, r.ID, amount, now); err != nil {
				return err
			}
			total += amount
		}
		if total == 0 {
			return ErrNothingToCollect
		}
		return s.balanceRepo.CreditEarnings(ctx, userID, total)
	})
	if err != nil {
		return 0, err
	}
	metrics.RevenueCollected.Add(float64(total))
	zap.L().Info("revenue collected", zap.Int("user_id", userID), zap.Int64("amount", total))
	return total, nil
}
