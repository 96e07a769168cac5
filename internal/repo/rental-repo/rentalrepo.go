package rentalrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var ErrOverCollected = errors.New("collected amount exceeds rental revenue")

const rentalColumns = `id, user_id, product_id, quantity, unit_price, daily_revenue, duration_days,
	total_revenue, collected, started_at, ends_at, last_collected_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanRental(row pgx.Row) (domain.Rental, error) {
	var r domain.Rental
	err := row.Scan(
		&r.ID, &r.UserID, &r.ProductID, &r.Quantity, &r.UnitPrice, &r.DailyRevenue, &r.DurationDays,
		&r.TotalRevenue, &r.Collected, &r.StartedAt, &r.EndsAt, &r.LastCollectedAt,
	)
	return r, err
}

func (repo *Repository) Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	query := `
		INSERT INTO rentals (user_id, product_id, quantity, unit_price, daily_revenue, duration_days,
			total_revenue, collected, started_at, ends_at, last_collected_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9, $8)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query,
		rental.UserID, rental.ProductID, rental.Quantity, rental.UnitPrice, rental.DailyRevenue,
		rental.DurationDays, rental.TotalRevenue, rental.StartedAt, rental.EndsAt,
	).Scan(&rental.ID)
	if err != nil {
		zap.L().Error("failed to create rental", zap.Int("user_id", rental.UserID), zap.Error(err))
		return nil, err
	}
	rental.Collected = 0
	rental.LastCollectedAt = rental.StartedAt
	return rental, nil
}

func (repo *Repository) list(ctx context.Context, query string, userID int) ([]domain.Rental, error) {
	rows, err := repo.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list rentals", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		r, err := scanRental(rows)
		if err != nil {
			zap.L().Error("failed to scan rental", zap.Error(err))
			return nil, err
		}
		rentals = append(rentals, r)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating over rentals", zap.Error(err))
		return nil, err
	}
	return rentals, nil
}

func (repo *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Rental, error) {
	return repo.list(ctx, "SELECT "+rentalColumns+" FROM rentals WHERE user_id = $1 ORDER BY product_id", userID)
}

func (repo *Repository) FindByUserIDForUpdate(ctx context.Context, userID int) ([]domain.Rental, error) {
	return repo.list(ctx, "SELECT "+rentalColumns+" FROM rentals WHERE user_id = $1 ORDER BY product_id FOR UPDATE", userID)
}

func (repo *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Rental, error) {
	r, err := scanRental(repo.db.QueryRow(ctx, "SELECT "+rentalColumns+" FROM rentals WHERE id = $1 FOR UPDATE", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get rental", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &r, nil
}

// AddCollected records a payout. The collected total is bounded by the
// rental's total revenue in SQL as well.
func (repo *Repository) AddCollected(ctx context.Context, id int, amount int64, at time.Time) error {
	query := `
		UPDATE rentals
		SET collected = collected + $1, last_collected_at = $2
		WHERE id = $3 AND collected + $1 <= total_revenue
	`
	tag, err := repo.db.Exec(ctx, query, amount, at, id)
	if err != nil {
		zap.L().Error("failed to update rental", zap.Int("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() != 1 {
		return ErrOverCollected
	}
	return nil
}
