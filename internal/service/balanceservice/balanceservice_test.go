package balanceservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/internal/pg"
	"github.com/GlebRadaev/rentvest/pkg/validate"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

type mocks struct {
	userRepo        *MockUserRepo
	balanceRepo     *MockBalanceRepo
	transactionRepo *MockTransactionRepo
	txManager       *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		userRepo:        NewMockUserRepo(ctrl),
		balanceRepo:     NewMockBalanceRepo(ctrl),
		transactionRepo: NewMockTransactionRepo(ctrl),
		txManager:       pg.NewMockTXManager(ctrl),
	}
	service := New(m.userRepo, m.balanceRepo, m.transactionRepo, m.txManager, 1000)
	service.now = func() time.Time { return fixedNow }
	defer ctrl.Finish()
	return service, m
}

func runInTx(m mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestGetBalance(t *testing.T) {
	service, m := NewMock(t)
	user := &domain.User{ID: 1, Balance: 1500, DepositBalance: 1000, WithdrawableBalance: 500}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name: "Retrieve balance successfully",
			prepareMock: func() {
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(user, nil)
			},
			expectedUser: user,
		},
		{
			name: "User missing",
			prepareMock: func() {
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "Error retrieving balance",
			prepareMock: func() {
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			got, err := service.GetBalance(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, got)
			}
		})
	}
}

func TestCreateDeposit(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		amount        int64
		method        string
		proofURL      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Deposit recorded as pending",
			amount:   5000,
			method:   domain.MethodMobileMoney,
			proofURL: "https://proof.example/p.png",
			prepareMock: func() {
				m.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
					tx.ID = 1
					return tx, nil
				})
			},
		},
		{
			name:          "Zero amount",
			amount:        0,
			method:        domain.MethodCrypto,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Unknown method",
			amount:        5000,
			method:        "cash",
			prepareMock:   func() {},
			expectedError: ErrInvalidMethod,
		},
		{
			name:          "Missing proof",
			amount:        5000,
			method:        domain.MethodCrypto,
			proofURL:      "  ",
			prepareMock:   func() {},
			expectedError: ErrProofRequired,
		},
		{
			name:     "Repository error",
			amount:   5000,
			method:   domain.MethodCrypto,
			proofURL: "https://proof.example/p.png",
			prepareMock: func() {
				m.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			tx, err := service.CreateDeposit(context.Background(), 1, tt.amount, tt.method, tt.proofURL)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.TransactionDeposit, tx.Type)
			assert.Equal(t, domain.TransactionPending, tx.Status)
			assert.Equal(t, tt.amount, tx.Amount)
			assert.Equal(t, tt.proofURL, tx.ProofURL)
			assert.True(t, validate.IsLuhn(tx.Reference))
		})
	}
}

func TestCreateWithdrawal(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		amount        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Withdrawal recorded as pending",
			amount: 1500,
			prepareMock: func() {
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, WithdrawableBalance: 2000}, nil)
				m.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
					return tx, nil
				})
			},
		},
		{
			name:          "Below minimum",
			amount:        999,
			prepareMock:   func() {},
			expectedError: ErrBelowMinimum,
		},
		{
			name:   "Not enough withdrawable funds",
			amount: 1500,
			prepareMock: func() {
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, DepositBalance: 10000, WithdrawableBalance: 1499}, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			tx, err := service.CreateWithdrawal(context.Background(), 1, tt.amount, domain.MethodMobileMoney, "Jane Doe", "+237650000000")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.TransactionWithdrawal, tx.Type)
			assert.Equal(t, domain.TransactionPending, tx.Status)
			assert.Equal(t, "Jane Doe", tx.BeneficiaryName)
			assert.Equal(t, "+237650000000", tx.BeneficiaryAccount)
		})
	}
}

func TestApprove(t *testing.T) {
	service, m := NewMock(t)
	const ref = "4539578763621486"

	pending := func(kind string) *domain.Transaction {
		return &domain.Transaction{ID: 5, Reference: ref, UserID: 1, Type: kind, Amount: 3000, Status: domain.TransactionPending}
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Deposit credits balances",
			prepareMock: func() {
				runInTx(m)
				m.transactionRepo.EXPECT().GetByReferenceForUpdate(gomock.Any(), ref).Return(pending(domain.TransactionDeposit), nil)
				m.balanceRepo.EXPECT().ApplyDeposit(gomock.Any(), 1, int64(3000)).Return(nil)
				m.transactionRepo.EXPECT().Resolve(gomock.Any(), 5, domain.TransactionSuccess, "", fixedNow).Return(true, nil)
			},
		},
		{
			name: "Withdrawal debits balances",
			prepareMock: func() {
				runInTx(m)
				m.transactionRepo.EXPECT().GetByReferenceForUpdate(gomock.Any(), ref).Return(pending(domain.TransactionWithdrawal), nil)
				m.balanceRepo.EXPECT().ApplyWithdrawal(gomock.Any(), 1, int64(3000)).Return(true, nil)
				m.transactionRepo.EXPECT().Resolve(gomock.Any(), 5, domain.TransactionSuccess, "", fixedNow).Return(true, nil)
			},
		},
		{
			name: "Withdrawal exceeds balance at approval",
			prepareMock: func() {
				runInTx(m)
				m.transactionRepo.EXPECT().GetByReferenceForUpdate(gomock.Any(), ref).Return(pending(domain.TransactionWithdrawal), nil)
				m.balanceRepo.EXPECT().ApplyWithdrawal(gomock.Any(), 1, int64(3000)).Return(false, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name: "Unknown reference",
			prepareMock: func() {
				runInTx(m)
				m.transactionRepo.EXPECT().GetByReferenceForUpdate(gomock.Any(), ref).Return(nil, nil)
			},
			expectedError: ErrTransactionNotFound,
		},
		{
			name: "Already approved",
			prepareMock: func() {
				runInTx(m)
				done := pending(domain.TransactionDeposit)
				done.Status = domain.TransactionSuccess
				m.transactionRepo.EXPECT().GetByReferenceForUpdate(gomock.Any(), ref).Return(done, nil)
			},
			expectedError: ErrAlreadyProcessed,
		},
		{
			name: "Lost the status race",
			prepareMock: func() {
				runInTx(m)
				m.transactionRepo.EXPECT().GetByReferenceForUpdate(gomock.Any(), ref).Return(pending(domain.TransactionDeposit), nil)
				m.balanceRepo.EXPECT().ApplyDeposit(gomock.Any(), 1, int64(3000)).Return(nil)
				m.transactionRepo.EXPECT().Resolve(gomock.Any(), 5, domain.TransactionSuccess, "", fixedNow).Return(false, nil)
			},
			expectedError: ErrAlreadyProcessed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			tx, err := service.Approve(context.Background(), ref)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, tx)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.TransactionSuccess, tx.Status)
			if assert.NotNil(t, tx.ProcessedAt) {
				assert.Equal(t, fixedNow, *tx.ProcessedAt)
			}
		})
	}
}

func TestReject(t *testing.T) {
	service, m := NewMock(t)
	const ref = "4539578763621486"

	runInTx(m)
	m.transactionRepo.EXPECT().GetByReferenceForUpdate(gomock.Any(), ref).
		Return(&domain.Transaction{ID: 5, Reference: ref, Type: domain.TransactionDeposit, Status: domain.TransactionPending}, nil)
	m.transactionRepo.EXPECT().Resolve(gomock.Any(), 5, domain.TransactionRejected, "blurry proof", fixedNow).Return(true, nil)

	tx, err := service.Reject(context.Background(), ref, "blurry proof")
	assert.NoError(t, err)
	assert.Equal(t, domain.TransactionRejected, tx.Status)
	assert.Equal(t, "blurry proof", tx.AdminNote)

	runInTx(m)
	m.transactionRepo.EXPECT().GetByReferenceForUpdate(gomock.Any(), ref).
		Return(&domain.Transaction{ID: 5, Reference: ref, Status: domain.TransactionRejected}, nil)
	_, err = service.Reject(context.Background(), ref, "again")
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestPendingAndStats(t *testing.T) {
	service, m := NewMock(t)
	pending := []domain.Transaction{{ID: 1, Status: domain.TransactionPending}}
	stats := &domain.AdminStats{TotalUsers: 3}

	m.transactionRepo.EXPECT().FindPending(gomock.Any(), pendingLimit).Return(pending, nil)
	got, err := service.PendingTransactions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, pending, got)

	m.balanceRepo.EXPECT().Stats(gomock.Any()).Return(stats, nil)
	gotStats, err := service.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, stats, gotStats)

	m.balanceRepo.EXPECT().Stats(gomock.Any()).Return(nil, errors.New("db error"))
	_, err = service.Stats(context.Background())
	assert.Error(t, err)
}
