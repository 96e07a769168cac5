package dto

type CommissionResponseDTO struct {
	Tier             string `json:"tier" example:"A"`
	Rate             string `json:"rate" example:"0.10"`
	Amount           int64  `json:"amount" example:"500"`
	InvestmentAmount int64  `json:"investment_amount" example:"5000"`
	CreatedAt        string `json:"created_at" example:"2024-01-01T12:00:00Z"`
}

type TeamResponseDTO struct {
	ReferralCode   string                  `json:"referral_code" example:"K3M9QX2A"`
	TierA          int                     `json:"tier_a" example:"4"`
	TierB          int                     `json:"tier_b" example:"9"`
	TierC          int                     `json:"tier_c" example:"2"`
	ValidMembers   int                     `json:"valid_members" example:"3"`
	TotalEarned    int64                   `json:"total_earned" example:"1500"`
	RecentEarnings []CommissionResponseDTO `json:"recent_earnings"`
}
