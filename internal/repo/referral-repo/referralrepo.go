package referralrepo

import (
	"context"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateCommission(ctx context.Context, c *domain.ReferralCommission) (*domain.ReferralCommission, error) {
	query := `
		INSERT INTO referral_commissions (sponsor_id, referred_user_id, rental_id, investment_amount, tier, rate, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		c.SponsorID, c.ReferredUserID, c.RentalID, c.InvestmentAmount, c.Tier, c.Rate, c.Amount,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		zap.L().Error("failed to save commission",
			zap.Int("sponsor_id", c.SponsorID), zap.Int("rental_id", c.RentalID), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) FindCommissions(ctx context.Context, sponsorID, limit int) ([]domain.ReferralCommission, error) {
	query := `
		SELECT id, sponsor_id, referred_user_id, rental_id, investment_amount, tier, rate, amount, created_at
		FROM referral_commissions
		WHERE sponsor_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, sponsorID, limit)
	if err != nil {
		zap.L().Error("failed to list commissions", zap.Int("sponsor_id", sponsorID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var commissions []domain.ReferralCommission
	for rows.Next() {
		var c domain.ReferralCommission
		if err := rows.Scan(&c.ID, &c.SponsorID, &c.ReferredUserID, &c.RentalID, &c.InvestmentAmount,
			&c.Tier, &c.Rate, &c.Amount, &c.CreatedAt); err != nil {
			zap.L().Error("failed to scan commission", zap.Error(err))
			return nil, err
		}
		commissions = append(commissions, c)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating over commissions", zap.Error(err))
		return nil, err
	}
	return commissions, nil
}

func (r *Repository) TotalEarned(ctx context.Context, sponsorID int) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, "SELECT COALESCE(SUM(amount), 0) FROM referral_commissions WHERE sponsor_id = $1", sponsorID).
		Scan(&total)
	if err != nil {
		zap.L().Error("failed to sum commissions", zap.Int("sponsor_id", sponsorID), zap.Error(err))
		return 0, err
	}
	return total, nil
}

// TeamCounts counts members on each of the three levels below code, and the
// direct members who have invested.
func (r *Repository) TeamCounts(ctx context.Context, code string) (*domain.TeamStats, error) {
	query := `
		WITH a AS (SELECT referral_code, total_invested FROM users WHERE referred_by = $1),
			b AS (SELECT referral_code FROM users WHERE referred_by IN (SELECT referral_code FROM a)),
			c AS (SELECT referral_code FROM users WHERE referred_by IN (SELECT referral_code FROM b))
		SELECT
			(SELECT COUNT(*) FROM a),
			(SELECT COUNT(*) FROM b),
			(SELECT COUNT(*) FROM c),
			(SELECT COUNT(*) FROM a WHERE total_invested > 0)
	`
	stats := domain.TeamStats{ReferralCode: code}
	err := r.db.QueryRow(ctx, query, code).Scan(&stats.TierA, &stats.TierB, &stats.TierC, &stats.ValidMembers)
	if err != nil {
		zap.L().Error("failed to count team", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

// CountValidReferrals counts direct referrals with at least one investment.
func (r *Repository) CountValidReferrals(ctx context.Context, code string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE referred_by = $1 AND total_invested > 0", code).
		Scan(&count)
	if err != nil {
		zap.L().Error("failed to count referrals", zap.String("code", code), zap.Error(err))
		return 0, err
	}
	return count, nil
}
