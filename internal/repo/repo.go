package repo

import (
	"github.com/GlebRadaev/rentvest/internal/pg"
	balancerepo "github.com/GlebRadaev/rentvest/internal/repo/balance-repo"
	giftrepo "github.com/GlebRadaev/rentvest/internal/repo/gift-repo"
	referralrepo "github.com/GlebRadaev/rentvest/internal/repo/referral-repo"
	rentalrepo "github.com/GlebRadaev/rentvest/internal/repo/rental-repo"
	transactionrepo "github.com/GlebRadaev/rentvest/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/rentvest/internal/repo/user-repo"
	"github.com/GlebRadaev/rentvest/internal/service/authservice"
	"github.com/GlebRadaev/rentvest/internal/service/balanceservice"
	"github.com/GlebRadaev/rentvest/internal/service/giftservice"
	"github.com/GlebRadaev/rentvest/internal/service/referralservice"
	"github.com/GlebRadaev/rentvest/internal/service/rentalservice"
)

// UserRepo is every view the services take of the users table.
type UserRepo interface {
	authservice.Repo
	balanceservice.UserRepo
	rentalservice.UserRepo
	referralservice.UserRepo
	giftservice.UserRepo
}

type BalanceRepo interface {
	balanceservice.BalanceRepo
	rentalservice.BalanceRepo
	referralservice.BalanceRepo
	giftservice.BalanceRepo
}

type ReferralRepo interface {
	referralservice.CommissionRepo
	giftservice.ReferralCounter
}

type Repositories struct {
	UserRepo        UserRepo
	BalanceRepo     BalanceRepo
	TransactionRepo balanceservice.TransactionRepo
	RentalRepo      rentalservice.RentalRepo
	ReferralRepo    ReferralRepo
	GiftRepo        giftservice.GiftRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		BalanceRepo:     balancerepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		RentalRepo:      rentalrepo.New(conn),
		ReferralRepo:    referralrepo.New(conn),
		GiftRepo:        giftrepo.New(conn),
	}
}
