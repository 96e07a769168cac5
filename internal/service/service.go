package service

import (
	"github.com/GlebRadaev/rentvest/internal/config"
	"github.com/GlebRadaev/rentvest/internal/handlers/admin"
	"github.com/GlebRadaev/rentvest/internal/handlers/auth"
	"github.com/GlebRadaev/rentvest/internal/handlers/balance"
	"github.com/GlebRadaev/rentvest/internal/handlers/gifts"
	"github.com/GlebRadaev/rentvest/internal/handlers/market"
	"github.com/GlebRadaev/rentvest/internal/handlers/rentals"
	"github.com/GlebRadaev/rentvest/internal/handlers/team"
	"github.com/GlebRadaev/rentvest/internal/pg"
	"github.com/GlebRadaev/rentvest/internal/rules"

	pkgauth "github.com/GlebRadaev/rentvest/pkg/auth"

	"github.com/GlebRadaev/rentvest/internal/repo"
	authservice "github.com/GlebRadaev/rentvest/internal/service/authservice"
	balanceservice "github.com/GlebRadaev/rentvest/internal/service/balanceservice"
	giftservice "github.com/GlebRadaev/rentvest/internal/service/giftservice"
	referralservice "github.com/GlebRadaev/rentvest/internal/service/referralservice"
	rentalservice "github.com/GlebRadaev/rentvest/internal/service/rentalservice"
)

type Services struct {
	AuthService     auth.Service
	BalanceService  balance.Service
	AdminService    admin.Service
	RentalService   rentals.Service
	ReferralService team.Service
	GiftService     gifts.Service
	MarketService   market.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, jwtService pkgauth.JWTServiceInterface, priceFeed market.Service, cfg *config.Config) *Services {
	balanceService := balanceservice.New(repo.UserRepo, repo.BalanceRepo, repo.TransactionRepo, txManager, cfg.MinWithdrawal)
	referralService := referralservice.New(repo.UserRepo, repo.BalanceRepo, repo.ReferralRepo, txManager)
	rentalService := rentalservice.New(repo.UserRepo, repo.BalanceRepo, repo.RentalRepo, referralService, txManager)
	giftService := giftservice.New(repo.GiftRepo, repo.UserRepo, repo.BalanceRepo, repo.ReferralRepo, txManager, rules.NewWheel())
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService, cfg.TokenTTL)

	return &Services{
		AuthService:     authService,
		BalanceService:  balanceService,
		AdminService:    balanceService,
		RentalService:   rentalService,
		ReferralService: referralService,
		GiftService:     giftService,
		MarketService:   priceFeed,
	}
}
