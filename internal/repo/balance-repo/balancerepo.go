package balancerepo

import (
	"context"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/internal/pg"
	"go.uber.org/zap"
)

// Repository moves money between the balance buckets of a user row. Every
// debit is guarded in SQL so that a bucket can never go below zero; a guarded
// statement that touched no rows reports applied == false.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) ApplyDeposit(ctx context.Context, userID int, amount int64) error {
	query := `
		UPDATE users
		SET balance = balance + $1,
			deposit_balance = deposit_balance + $1,
			total_deposited = total_deposited + $1
		WHERE id = $2
	`
	if _, err := r.db.Exec(ctx, query, amount, userID); err != nil {
		zap.L().Error("failed to apply deposit", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ApplyWithdrawal(ctx context.Context, userID int, amount int64) (bool, error) {
	query := `
		UPDATE users
		SET balance = balance - $1,
			withdrawable_balance = withdrawable_balance - $1,
			total_withdrawn = total_withdrawn + $1
		WHERE id = $2 AND withdrawable_balance >= $1
	`
	tag, err := r.db.Exec(ctx, query, amount, userID)
	if err != nil {
		zap.L().Error("failed to apply withdrawal", zap.Int("user_id", userID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ApplyInvestment(ctx context.Context, userID int, amount int64) (bool, error) {
	query := `
		UPDATE users
		SET balance = balance - $1,
			deposit_balance = deposit_balance - $1,
			total_invested = total_invested + $1
		WHERE id = $2 AND deposit_balance >= $1
	`
	tag, err := r.db.Exec(ctx, query, amount, userID)
	if err != nil {
		zap.L().Error("failed to apply investment", zap.Int("user_id", userID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// CreditEarnings adds rental revenue, commissions or bonuses to the
// withdrawable bucket.
func (r *Repository) CreditEarnings(ctx context.Context, userID int, amount int64) error {
	query := `
		UPDATE users
		SET balance = balance + $1,
			withdrawable_balance = withdrawable_balance + $1
		WHERE id = $2
	`
	if _, err := r.db.Exec(ctx, query, amount, userID); err != nil {
		zap.L().Error("failed to credit earnings", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Stats(ctx context.Context) (*domain.AdminStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM transactions WHERE type = 'deposit' AND status = 'pending'),
			(SELECT COUNT(*) FROM transactions WHERE type = 'withdrawal' AND status = 'pending'),
			(SELECT COALESCE(SUM(total_deposited), 0) FROM users),
			(SELECT COALESCE(SUM(total_withdrawn), 0) FROM users),
			(SELECT COALESCE(SUM(total_invested), 0) FROM users),
			(SELECT COUNT(*) FROM rentals WHERE collected < total_revenue)
	`
	var stats domain.AdminStats
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalUsers, &stats.PendingDeposits, &stats.PendingWithdrawals,
		&stats.TotalDeposited, &stats.TotalWithdrawn, &stats.TotalInvested, &stats.ActiveRentals,
	)
	if err != nil {
		zap.L().Error("failed to load platform stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
