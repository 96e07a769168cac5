package rules

import (
	"errors"

	"github.com/GlebRadaev/rentvest/internal/domain"
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrTierAlreadyHeld  = errors.New("product tier already held")
	ErrTierNotAscending = errors.New("product tier must be higher than the highest tier held")
	ErrDepositRequired  = errors.New("deposit required before investing")
)

// HighestTier returns the highest product id among held rentals, 0 when none.
func HighestTier(held []domain.Rental) int {
	highest := 0
	for _, r := range held {
		if r.ProductID > highest {
			highest = r.ProductID
		}
	}
	return highest
}

// ValidateInvestment checks that tier can be bought for amount by a user who
// holds the given rentals and has depositBalance of deposited, uninvested funds.
func ValidateInvestment(held []domain.Rental, tier int, amount, depositBalance int64) error {
	if _, err := ProductByID(tier); err != nil {
		return err
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	for _, r := range held {
		if r.ProductID == tier {
			return ErrTierAlreadyHeld
		}
	}
	if tier <= HighestTier(held) {
		return ErrTierNotAscending
	}
	if depositBalance < amount {
		return ErrDepositRequired
	}
	return nil
}
