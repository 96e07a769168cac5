package rules

import (
	"time"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/shopspring/decimal"
)

// Accrued is floor(min(elapsed, D)/D * R) for a rental of duration D and
// total revenue R. It never exceeds R.
func Accrued(r domain.Rental, now time.Time) int64 {
	duration := r.EndsAt.Sub(r.StartedAt)
	if duration <= 0 || r.TotalRevenue <= 0 {
		return 0
	}
	elapsed := now.Sub(r.StartedAt)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= duration {
		return r.TotalRevenue
	}

	q, _ := decimal.NewFromInt(r.TotalRevenue).
		Mul(decimal.NewFromInt(int64(elapsed))).
		QuoRem(decimal.NewFromInt(int64(duration)), 0)
	return q.IntPart()
}

// Collectable is the accrued revenue not yet moved to the withdrawable balance.
func Collectable(r domain.Rental, now time.Time) int64 {
	left := Accrued(r, now) - r.Collected
	if left < 0 {
		return 0
	}
	return left
}

// Progress is the elapsed fraction of the rental term in percent, 0..100.
func Progress(r domain.Rental, now time.Time) int {
	duration := r.EndsAt.Sub(r.StartedAt)
	if duration <= 0 {
		return 100
	}
	elapsed := now.Sub(r.StartedAt)
	switch {
	case elapsed <= 0:
		return 0
	case elapsed >= duration:
		return 100
	}
	return int(elapsed * 100 / duration)
}

func Finished(r domain.Rental, now time.Time) bool {
	return !now.Before(r.EndsAt) && r.Collected >= r.TotalRevenue
}
