package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID                  int       `db:"id"`
	Phone               string    `db:"phone"`
	PasswordHash        string    `db:"password_hash"`
	Role                string    `db:"role"`
	ReferralCode        string    `db:"referral_code"`
	ReferredBy          *string   `db:"referred_by"`
	Balance             int64     `db:"balance"`
	DepositBalance      int64     `db:"deposit_balance"`
	WithdrawableBalance int64     `db:"withdrawable_balance"`
	TotalDeposited      int64     `db:"total_deposited"`
	TotalInvested       int64     `db:"total_invested"`
	TotalWithdrawn      int64     `db:"total_withdrawn"`
	CreatedAt           time.Time `db:"created_at"`
}

const (
	TransactionDeposit    = "deposit"
	TransactionWithdrawal = "withdrawal"

	TransactionPending  = "pending"
	TransactionSuccess  = "success"
	TransactionRejected = "rejected"

	MethodMobileMoney = "mobile_money"
	MethodCrypto      = "crypto"
)

type Transaction struct {
	ID                 int        `db:"id"`
	Reference          string     `db:"reference"`
	UserID             int        `db:"user_id"`
	Type               string     `db:"type"`
	Amount             int64      `db:"amount"`
	Method             string     `db:"method"`
	Status             string     `db:"status"`
	ProofURL           string     `db:"proof_url"`
	BeneficiaryName    string     `db:"beneficiary_name"`
	BeneficiaryAccount string     `db:"beneficiary_account"`
	AdminNote          string     `db:"admin_note"`
	CreatedAt          time.Time  `db:"created_at"`
	ProcessedAt        *time.Time `db:"processed_at"`
}

type Rental struct {
	ID              int       `db:"id"`
	UserID          int       `db:"user_id"`
	ProductID       int       `db:"product_id"`
	Quantity        int       `db:"quantity"`
	UnitPrice       int64     `db:"unit_price"`
	DailyRevenue    int64     `db:"daily_revenue"`
	DurationDays    int       `db:"duration_days"`
	TotalRevenue    int64     `db:"total_revenue"`
	Collected       int64     `db:"collected"`
	StartedAt       time.Time `db:"started_at"`
	EndsAt          time.Time `db:"ends_at"`
	LastCollectedAt time.Time `db:"last_collected_at"`
}

// Amount is what the user paid for the rental.
func (r Rental) Amount() int64 {
	return r.UnitPrice * int64(r.Quantity)
}

const (
	TierA = "A"
	TierB = "B"
	TierC = "C"
)

type ReferralCommission struct {
	ID               int       `db:"id"`
	SponsorID        int       `db:"sponsor_id"`
	ReferredUserID   int       `db:"referred_user_id"`
	RentalID         int       `db:"rental_id"`
	InvestmentAmount int64     `db:"investment_amount"`
	Tier             string    `db:"tier"`
	Rate             string    `db:"rate"`
	Amount           int64     `db:"amount"`
	CreatedAt        time.Time `db:"created_at"`
}

type UserGift struct {
	UserID        int        `db:"user_id"`
	TotalBonus    int64      `db:"total_bonus"`
	CheckinStreak int        `db:"checkin_streak"`
	LastCheckinAt *time.Time `db:"last_checkin_at"`
	LastSpinAt    *time.Time `db:"last_spin_at"`
}

type SpinRecord struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Prize     int64     `db:"prize"`
	CreatedAt time.Time `db:"created_at"`
}

// TeamStats aggregates the three referral tiers below a sponsor.
type TeamStats struct {
	ReferralCode   string
	TierA          int
	TierB          int
	TierC          int
	ValidMembers   int
	TotalEarned    int64
	RecentEarnings []ReferralCommission
}

type AdminStats struct {
	TotalUsers         int64
	PendingDeposits    int64
	PendingWithdrawals int64
	TotalDeposited     int64
	TotalWithdrawn     int64
	TotalInvested      int64
	ActiveRentals      int64
}

type Ticker struct {
	Symbol    string    `json:"symbol"`
	LastPrice string    `json:"last_price"`
	ChangePct string    `json:"change_percent"`
	HighPrice string    `json:"high_price"`
	LowPrice  string    `json:"low_price"`
	Volume    string    `json:"volume"`
	UpdatedAt time.Time `json:"updated_at"`
}
