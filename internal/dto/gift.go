package dto

type GiftStatusResponseDTO struct {
	TotalBonus     int64  `json:"total_bonus" example:"350"`
	BonusCap       int64  `json:"bonus_cap" example:"10000"`
	CheckinStreak  int    `json:"checkin_streak" example:"3"`
	NextCheckInAt  string `json:"next_checkin_at,omitempty" example:"2024-01-02T12:00:00Z"`
	ValidReferrals int    `json:"valid_referrals" example:"2"`
	SpinUnlocked   bool   `json:"spin_unlocked"`
	NextSpinAt     string `json:"next_spin_at,omitempty" example:"2024-01-02T12:00:00Z"`
}

type CheckInResponseDTO struct {
	Reward     int64 `json:"reward" example:"100"`
	Streak     int   `json:"streak" example:"2"`
	TotalBonus int64 `json:"total_bonus" example:"150"`
}

type SpinResponseDTO struct {
	SegmentID  int    `json:"segment_id" example:"3"`
	Label      string `json:"label" example:"50"`
	Prize      int64  `json:"prize" example:"50"`
	TotalBonus int64  `json:"total_bonus" example:"200"`
}

type SpinRecordResponseDTO struct {
	Prize     int64  `json:"prize" example:"50"`
	CreatedAt string `json:"created_at" example:"2024-01-01T12:00:00Z"`
}
