package dto

type RejectRequestDTO struct {
	Note string `json:"note" validate:"max=500" example:"Proof of payment is unreadable"`
}

type AdminStatsResponseDTO struct {
	TotalUsers         int64 `json:"total_users" example:"120"`
	PendingDeposits    int64 `json:"pending_deposits" example:"4"`
	PendingWithdrawals int64 `json:"pending_withdrawals" example:"2"`
	TotalDeposited     int64 `json:"total_deposited" example:"2500000"`
	TotalWithdrawn     int64 `json:"total_withdrawn" example:"300000"`
	TotalInvested      int64 `json:"total_invested" example:"1900000"`
	ActiveRentals      int64 `json:"active_rentals" example:"87"`
}
