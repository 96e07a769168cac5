package giftrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/internal/pg"
	"github.com/jackc/pgx/v5"
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

const giftQuery = `
	SELECT user_id, total_bonus, checkin_streak, last_checkin_at, last_spin_at
	FROM user_gifts
	WHERE user_id = $1
`

func (r *Repository) scan(ctx context.Context, query string, userID int) (*domain.UserGift, error) {
	var g domain.UserGift
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&g.UserID, &g.TotalBonus, &g.CheckinStreak, &g.LastCheckinAt, &g.LastSpinAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Get returns an empty record for users who never claimed a gift.
func (r *Repository) Get(ctx context.Context, userID int) (*domain.UserGift, error) {
	g, err := r.scan(ctx, giftQuery, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.UserGift{UserID: userID}, nil
		}
		zap.L().Error("failed to get gift state", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return g, nil
}

// GetForUpdate creates the gift row when missing and locks it.
func (r *Repository) GetForUpdate(ctx context.Context, userID int) (*domain.UserGift, error) {
	if _, err := r.db.Exec(ctx, "INSERT INTO user_gifts (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING", userID); err != nil {
		zap.L().Error("failed to init gift state", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	g, err := r.scan(ctx, giftQuery+" FOR UPDATE", userID)
	if err != nil {
		zap.L().Error("failed to lock gift state", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return g, nil
}

func (r *Repository) Save(ctx context.Context, g *domain.UserGift) error {
	query := `
		UPDATE user_gifts
		SET total_bonus = $1, checkin_streak = $2, last_checkin_at = $3, last_spin_at = $4
		WHERE user_id = $5
	`
	if _, err := r.db.Exec(ctx, query, g.TotalBonus, g.CheckinStreak, g.LastCheckinAt, g.LastSpinAt, g.UserID); err != nil {
		zap.L().Error("failed to save gift state", zap.Int("user_id", g.UserID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddSpin(ctx context.Context, spin *domain.SpinRecord) (*domain.SpinRecord, error) {
	query := `
		INSERT INTO spin_history (user_id, prize, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, spin.UserID, spin.Prize, spin.CreatedAt).Scan(&spin.ID); err != nil {
		zap.L().Error("failed to save spin", zap.Int("user_id", spin.UserID), zap.Error(err))
		return nil, err
	}
	return spin, nil
}

func (r *Repository) FindSpins(ctx context.Context, userID, limit int) ([]domain.SpinRecord, error) {
	query := `
		SELECT id, user_id, prize, created_at
		FROM spin_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to list spins", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var spins []domain.SpinRecord
	for rows.Next() {
		var s domain.SpinRecord
		if err := rows.Scan(&s.ID, &s.UserID, &s.Prize, &s.CreatedAt); err != nil {
			zap.L().Error("failed to scan spin", zap.Error(err))
			return nil, err
		}
		spins = append(spins, s)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating over spins", zap.Error(err))
		return nil, err
	}
	return spins, nil
}
