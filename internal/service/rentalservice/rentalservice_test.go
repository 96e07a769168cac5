package rentalservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/internal/pg"
	"github.com/GlebRadaev/rentvest/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	userRepo    *MockUserRepo
	balanceRepo *MockBalanceRepo
	rentalRepo  *MockRentalRepo
	commissions *MockCommissionPayer
	txManager   *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		userRepo:    NewMockUserRepo(ctrl),
		balanceRepo: NewMockBalanceRepo(ctrl),
		rentalRepo:  NewMockRentalRepo(ctrl),
		commissions: NewMockCommissionPayer(ctrl),
		txManager:   pg.NewMockTXManager(ctrl),
	}
	service := New(m.userRepo, m.balanceRepo, m.rentalRepo, m.commissions, m.txManager)
	service.now = func() time.Time { return fixedNow }
	defer ctrl.Finish()
	return service, m
}

func runInTx(m mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func started(productID int, daysAgo int, collected int64) domain.Rental {
	p, _ := rules.ProductByID(productID)
	start := fixedNow.Add(-time.Duration(daysAgo) * 24 * time.Hour)
	return domain.Rental{
		ID:              productID * 10,
		UserID:          1,
		ProductID:       productID,
		Quantity:        1,
		UnitPrice:       p.Price,
		DailyRevenue:    p.DailyRevenue,
		DurationDays:    p.DurationDays,
		TotalRevenue:    p.TotalRevenue(1),
		Collected:       collected,
		StartedAt:       start,
		EndsAt:          start.Add(time.Duration(p.DurationDays) * 24 * time.Hour),
		LastCollectedAt: start,
	}
}

func TestProducts(t *testing.T) {
	service, m := NewMock(t)

	m.rentalRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Rental{started(1, 1, 0), started(3, 1, 0)}, nil)

	offers, err := service.Products(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, offers, len(rules.Products))

	assert.True(t, offers[0].Owned)
	assert.False(t, offers[0].Available)
	assert.False(t, offers[1].Owned)
	assert.False(t, offers[1].Available)
	assert.True(t, offers[2].Owned)
	assert.True(t, offers[3].Available)
	assert.True(t, offers[6].Available)
}

func TestPurchase(t *testing.T) {
	service, m := NewMock(t)
	sponsor := "SPONSOR1"
	investor := &domain.User{ID: 1, DepositBalance: 20_000, Balance: 20_000, ReferredBy: &sponsor}

	tests := []struct {
		name          string
		productID     int
		quantity      int
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "First purchase pays commissions after commit",
			productID: 2,
			quantity:  1,
			prepareMock: func() {
				runInTx(m)
				m.userRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(investor, nil)
				m.rentalRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, nil)
				m.balanceRepo.EXPECT().ApplyInvestment(gomock.Any(), 1, int64(10_000)).Return(true, nil)
				m.rentalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *domain.Rental) (*domain.Rental, error) {
					assert.Equal(t, int64(950), r.DailyRevenue)
					assert.Equal(t, int64(57_000), r.TotalRevenue)
					assert.Equal(t, fixedNow, r.StartedAt)
					assert.Equal(t, fixedNow.Add(60*24*time.Hour), r.EndsAt)
					r.ID = 99
					return r, nil
				})
				m.commissions.EXPECT().PayCommissions(gomock.Any(), investor, 99, int64(10_000)).Return(nil, nil)
			},
		},
		{
			name:      "Commission failure keeps the purchase",
			productID: 1,
			quantity:  2,
			prepareMock: func() {
				runInTx(m)
				m.userRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(investor, nil)
				m.rentalRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, nil)
				m.balanceRepo.EXPECT().ApplyInvestment(gomock.Any(), 1, int64(10_000)).Return(true, nil)
				m.rentalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *domain.Rental) (*domain.Rental, error) {
					r.ID = 100
					return r, nil
				})
				m.commissions.EXPECT().PayCommissions(gomock.Any(), investor, 100, int64(10_000)).Return(nil, errors.New("db error"))
			},
		},
		{
			name:          "Unknown product",
			productID:     42,
			quantity:      1,
			prepareMock:   func() {},
			expectedError: rules.ErrUnknownProduct,
		},
		{
			name:          "Quantity out of range",
			productID:     1,
			quantity:      0,
			prepareMock:   func() {},
			expectedError: rules.ErrInvalidQuantity,
		},
		{
			name:      "Lower tier than held",
			productID: 2,
			quantity:  1,
			prepareMock: func() {
				runInTx(m)
				m.userRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(investor, nil)
				m.rentalRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Rental{started(3, 1, 0)}, nil)
			},
			expectedError: rules.ErrTierNotAscending,
		},
		{
			name:      "Deposit balance too low",
			productID: 4,
			quantity:  1,
			prepareMock: func() {
				runInTx(m)
				m.userRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(investor, nil)
				m.rentalRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: rules.ErrDepositRequired,
		},
		{
			name:      "Guarded debit refused",
			productID: 1,
			quantity:  1,
			prepareMock: func() {
				runInTx(m)
				m.userRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(investor, nil)
				m.rentalRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, nil)
				m.balanceRepo.EXPECT().ApplyInvestment(gomock.Any(), 1, int64(5_000)).Return(false, nil)
			},
			expectedError: rules.ErrDepositRequired,
		},
		{
			name:      "User missing",
			productID: 1,
			quantity:  1,
			prepareMock: func() {
				runInTx(m)
				m.userRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rental, err := service.Purchase(context.Background(), 1, tt.productID, tt.quantity)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, rental)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.productID, rental.ProductID)
			assert.Equal(t, tt.quantity, rental.Quantity)
		})
	}
}

func TestPositions(t *testing.T) {
	service, m := NewMock(t)

	m.rentalRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Rental{started(1, 2, 450)}, nil)

	positions, err := service.Positions(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, int64(900), positions[0].Accrued)
	assert.Equal(t, int64(450), positions[0].Collectable)
	assert.Equal(t, 3, positions[0].Progress)
	assert.False(t, positions[0].Finished)
}

func TestCollect(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		rentalID      int
		prepareMock   func()
		expected      int64
		expectedError error
	}{
		{
			name:     "Collect accrued revenue",
			rentalID: 10,
			prepareMock: func() {
				runInTx(m)
				r := started(1, 2, 450)
				m.rentalRepo.EXPECT().GetForUpdate(gomock.Any(), 10).Return(&r, nil)
				m.rentalRepo.EXPECT().AddCollected(gomock.Any(), 10, int64(450), fixedNow).Return(nil)
				m.balanceRepo.EXPECT().CreditEarnings(gomock.Any(), 1, int64(450)).Return(nil)
			},
			expected: 450,
		},
		{
			name:     "Nothing accrued since last collection",
			rentalID: 10,
			prepareMock: func() {
				runInTx(m)
				r := started(1, 2, 900)
				m.rentalRepo.EXPECT().GetForUpdate(gomock.Any(), 10).Return(&r, nil)
			},
			expectedError: ErrNothingToCollect,
		},
		{
			name:     "Rental of another user",
			rentalID: 10,
			prepareMock: func() {
				runInTx(m)
				r := started(1, 2, 0)
				r.UserID = 2
				m.rentalRepo.EXPECT().GetForUpdate(gomock.Any(), 10).Return(&r, nil)
			},
			expectedError: ErrRentalNotFound,
		},
		{
			name:     "Unknown rental",
			rentalID: 11,
			prepareMock: func() {
				runInTx(m)
				m.rentalRepo.EXPECT().GetForUpdate(gomock.Any(), 11).Return(nil, nil)
			},
			expectedError: ErrRentalNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			amount, err := service.Collect(context.Background(), 1, tt.rentalID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, amount)
		})
	}
}

func TestCollectAll(t *testing.T) {
	service, m := NewMock(t)

	runInTx(m)
	m.rentalRepo.EXPECT().FindByUserIDForUpdate(gomock.Any(), 1).
		Return([]domain.Rental{started(1, 2, 450), started(2, 1, 0), started(3, 0, 0)}, nil)
	m.rentalRepo.EXPECT().AddCollected(gomock.Any(), 10, int64(450), fixedNow).Return(nil)
	m.rentalRepo.EXPECT().AddCollected(gomock.Any(), 20, int64(950), fixedNow).Return(nil)
	m.balanceRepo.EXPECT().CreditEarnings(gomock.Any(), 1, int64(1_400)).Return(nil)

	total, err := service.CollectAll(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1_400), total)

	runInTx(m)
	m.rentalRepo.EXPECT().FindByUserIDForUpdate(gomock.Any(), 1).Return(nil, nil)
	_, err = service.CollectAll(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNothingToCollect)
}
