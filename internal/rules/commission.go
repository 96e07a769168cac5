package rules

import (
	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/shopspring/decimal"
)

type Commission struct {
	Level  int
	Tier   string
	Rate   decimal.Decimal
	Amount int64
}

// CommissionLevels is the depth of the referral chain that gets paid.
const CommissionLevels = 3

var commissionRates = [CommissionLevels]struct {
	tier string
	rate decimal.Decimal
}{
	{domain.TierA, decimal.RequireFromString("0.10")},
	{domain.TierB, decimal.RequireFromString("0.05")},
	{domain.TierC, decimal.RequireFromString("0.03")},
}

// Commissions returns the payout for every level of the chain, A first.
// Amounts are rounded half away from zero.
func Commissions(amount int64) []Commission {
	out := make([]Commission, 0, CommissionLevels)
	for i, r := range commissionRates {
		out = append(out, Commission{
			Level:  i + 1,
			Tier:   r.tier,
			Rate:   r.rate,
			Amount: decimal.NewFromInt(amount).Mul(r.rate).Round(0).IntPart(),
		})
	}
	return out
}
