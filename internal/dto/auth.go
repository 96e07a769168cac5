package dto

type RegisterRequestDTO struct {
	Phone        string `json:"phone" validate:"required,max=20" example:"+237650000000"`
	Password     string `json:"password" validate:"required,min=6,max=72" example:"secret123"`
	ReferralCode string `json:"referral_code,omitempty" validate:"omitempty,len=8,alphanum" example:"K3M9QX2A"`
}

type RegisterResponseDTO struct {
	Message      string `json:"message"`
	ReferralCode string `json:"referral_code" example:"Q2W3E4R5"`
}

type LoginRequestDTO struct {
	Phone    string `json:"phone" validate:"required,max=20" example:"+237650000000"`
	Password string `json:"password" validate:"required,min=6,max=72" example:"secret123"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
	Role    string `json:"role" example:"user"`
}
