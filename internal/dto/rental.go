package dto

type ProductResponseDTO struct {
	ID           int    `json:"id" example:"1"`
	Name         string `json:"name" example:"lv1"`
	Price        int64  `json:"price" example:"5000"`
	DailyRevenue int64  `json:"daily_revenue" example:"450"`
	DurationDays int    `json:"duration_days" example:"60"`
	TotalRevenue int64  `json:"total_revenue" example:"27000"`
	Owned        bool   `json:"owned,omitempty"`
	Available    bool   `json:"available"`
}

type PurchaseRequestDTO struct {
	ProductID int `json:"product_id" validate:"required,gt=0" example:"1"`
	Quantity  int `json:"quantity" validate:"required,gt=0" example:"1"`
}

type RentalResponseDTO struct {
	ID           int    `json:"id" example:"7"`
	ProductID    int    `json:"product_id" example:"1"`
	Quantity     int    `json:"quantity" example:"1"`
	Amount       int64  `json:"amount" example:"5000"`
	DailyRevenue int64  `json:"daily_revenue" example:"450"`
	TotalRevenue int64  `json:"total_revenue" example:"27000"`
	Accrued      int64  `json:"accrued" example:"900"`
	Collected    int64  `json:"collected" example:"450"`
	Collectable  int64  `json:"collectable" example:"450"`
	Progress     int    `json:"progress" example:"3"`
	Finished     bool   `json:"finished"`
	StartedAt    string `json:"started_at" example:"2024-01-01T12:00:00Z"`
	EndsAt       string `json:"ends_at" example:"2024-03-01T12:00:00Z"`
}

type CollectResponseDTO struct {
	Collected int64 `json:"collected" example:"450"`
}
