package balanceservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/internal/pg"
	"github.com/GlebRadaev/rentvest/pkg/metrics"
	"github.com/GlebRadaev/rentvest/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=balanceservice.go -destination=mock.go -package=balanceservice

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type BalanceRepo interface {
	ApplyDeposit(ctx context.Context, userID int, amount int64) error
	ApplyWithdrawal(ctx context.Context, userID int, amount int64) (bool, error)
	Stats(ctx context.Context) (*domain.AdminStats, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
	FindPending(ctx context.Context, limit int) ([]domain.Transaction, error)
	GetByReferenceForUpdate(ctx context.Context, reference string) (*domain.Transaction, error)
	Resolve(ctx context.Context, id int, status, note string, processedAt time.Time) (bool, error)
}

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidMethod       = errors.New("unsupported payment method")
	ErrProofRequired       = errors.New("deposit proof is required")
	ErrBelowMinimum        = errors.New("amount is below the minimum withdrawal")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlreadyProcessed    = errors.New("transaction already processed")
)

const pendingLimit = 100

type Service struct {
	userRepo        UserRepo
	balanceRepo     BalanceRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
	minWithdrawal   int64
	now             func() time.Time
}

func New(userRepo UserRepo, balanceRepo BalanceRepo, transactionRepo TransactionRepo, txManager pg.TXManager, minWithdrawal int64) *Service {
	return &Service{
		userRepo:        userRepo,
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		minWithdrawal:   minWithdrawal,
		now:             time.Now,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	txs, err := s.transactionRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

func validMethod(method string) bool {
	return method == domain.MethodMobileMoney || method == domain.MethodCrypto
}

func (s *Service) newTransaction(userID int, kind string, amount int64, method string) (*domain.Transaction, error) {
	reference, err := validate.NewReference()
	if err != nil {
		zap.L().Error("failed to generate reference", zap.Error(err))
		return nil, err
	}
	return &domain.Transaction{
		Reference: reference,
		UserID:    userID,
		Type:      kind,
		Amount:    amount,
		Method:    method,
		Status:    domain.TransactionPending,
	}, nil
}

// CreateDeposit records a deposit claim. Funds are credited on approval.
func (s *Service) CreateDeposit(ctx context.Context, userID int, amount int64, method, proofURL string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !validMethod(method) {
		return nil, ErrInvalidMethod
	}
	if strings.TrimSpace(proofURL) == "" {
		return nil, ErrProofRequired
	}
	tx, err := s.newTransaction(userID, domain.TransactionDeposit, amount, method)
	if err != nil {
		return nil, err
	}
	tx.ProofURL = proofURL

	created, err := s.transactionRepo.Create(ctx, tx)
	if err != nil {
		zap.L().Error("failed to create deposit", zap.Error(err))
		return nil, err
	}
	zap.L().Info("deposit requested", zap.Int("user_id", userID), zap.String("reference", created.Reference), zap.Int64("amount", amount))
	return created, nil
}

// CreateWithdrawal records a payout request. The balance is checked now and
// debited on approval.
func (s *Service) CreateWithdrawal(ctx context.Context, userID int, amount int64, method, beneficiaryName, beneficiaryAccount string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount < s.minWithdrawal {
		return nil, ErrBelowMinimum
	}
	if !validMethod(method) {
		return nil, ErrInvalidMethod
	}

	user, err := s.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.WithdrawableBalance < amount {
		return nil, ErrInsufficientBalance
	}

	tx, err := s.newTransaction(userID, domain.TransactionWithdrawal, amount, method)
	if err != nil {
		return nil, err
	}
	tx.BeneficiaryName = beneficiaryName
	tx.BeneficiaryAccount = beneficiaryAccount

	created, err := s.transactionRepo.Create(ctx, tx)
	if err != nil {
		zap.L().Error("failed to create withdrawal", zap.Error(err))
		return nil, err
	}
	zap.L().Info("withdrawal requested", zap.Int("user_id", userID), zap.String("reference", created.Reference), zap.Int64("amount", amount))
	return created, nil
}

func (s *Service) PendingTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txs, err := s.transactionRepo.FindPending(ctx, pendingLimit)
	if err != nil {
		zap.L().Error("failed to fetch pending transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

// Approve applies a pending transaction to the user's balances. The lookup,
// the balance change and the status change share one database transaction.
func (s *Service) Approve(ctx context.Context, reference string) (*domain.Transaction, error) {
	var result *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		tx, err := s.lockPending(ctx, reference)
		if err != nil {
			return err
		}

		switch tx.Type {
		case domain.TransactionDeposit:
			if err := s.balanceRepo.ApplyDeposit(ctx, tx.UserID, tx.Amount); err != nil {
				return err
			}
		case domain.TransactionWithdrawal:
			applied, err := s.balanceRepo.ApplyWithdrawal(ctx, tx.UserID, tx.Amount)
			if err != nil {
				return err
			}
			if !applied {
				return ErrInsufficientBalance
			}
		}

		result, err = s.resolve(ctx, tx, domain.TransactionSuccess, "")
		return err
	})
	if err != nil {
		zap.L().Warn("approval failed", zap.String("reference", reference), zap.Error(err))
		return nil, err
	}
	metrics.TransactionsResolved.WithLabelValues(result.Type, result.Status).Inc()
	zap.L().Info("transaction approved", zap.String("reference", reference), zap.String("type", result.Type))
	return result, nil
}

// Reject closes a pending transaction without touching balances.
func (s *Service) Reject(ctx context.Context, reference, note string) (*domain.Transaction, error) {
	var result *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		tx, err := s.lockPending(ctx, reference)
		if err != nil {
			return err
		}
		result, err = s.resolve(ctx, tx, domain.TransactionRejected, note)
		return err
	})
	if err != nil {
		zap.L().Warn("rejection failed", zap.String("reference", reference), zap.Error(err))
		return nil, err
	}
	metrics.TransactionsResolved.WithLabelValues(result.Type, result.Status).Inc()
	zap.L().Info("transaction rejected", zap.String("reference", reference), zap.String("type", result.Type))
	return result, nil
}

func (s *Service) lockPending(ctx context.Context, reference string) (*domain.Transaction, error) {
	tx, err := s.transactionRepo.GetByReferenceForUpdate(ctx, reference)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrTransactionNotFound
	}
	if tx.Status != domain.TransactionPending {
		return nil, ErrAlreadyProcessed
	}
	return tx, nil
}

func (s *Service) resolve(ctx context.Context, tx *domain.Transaction, status, note string) (*domain.Transaction, error) {
	processedAt := s.now()
	ok, err := s.transactionRepo.Resolve(ctx, tx.ID, status, note, processedAt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAlreadyProcessed
	}
	tx.Status = status
	tx.AdminNote = note
	tx.ProcessedAt = &processedAt
	return tx, nil
}

func (s *Service) Stats(ctx context.Context) (*domain.AdminStats, error) {
	stats, err := s.balanceRepo.Stats(ctx)
	if err != nil {
		zap.L().Error("failed to load stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}
