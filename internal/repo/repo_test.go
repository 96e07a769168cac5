package repo

import (
	"testing"

	balancerepo "github.com/GlebRadaev/rentvest/internal/repo/balance-repo"
	giftrepo "github.com/GlebRadaev/rentvest/internal/repo/gift-repo"
	referralrepo "github.com/GlebRadaev/rentvest/internal/repo/referral-repo"
	rentalrepo "github.com/GlebRadaev/rentvest/internal/repo/rental-repo"
	transactionrepo "github.com/GlebRadaev/rentvest/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/rentvest/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.BalanceRepo)
	assert.NotNil(t, repo.TransactionRepo)
	assert.NotNil(t, repo.RentalRepo)
	assert.NotNil(t, repo.ReferralRepo)
	assert.NotNil(t, repo.GiftRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &balancerepo.Repository{}, repo.BalanceRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &rentalrepo.Repository{}, repo.RentalRepo)
	assert.IsType(t, &referralrepo.Repository{}, repo.ReferralRepo)
	assert.IsType(t, &giftrepo.Repository{}, repo.GiftRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
