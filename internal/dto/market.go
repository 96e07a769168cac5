package dto

type TickerResponseDTO struct {
	Symbol    string `json:"symbol" example:"BTCUSDT"`
	LastPrice string `json:"last_price" example:"67321.45000000"`
	ChangePct string `json:"change_percent" example:"1.254"`
	HighPrice string `json:"high_price" example:"68010.00000000"`
	LowPrice  string `json:"low_price" example:"66002.10000000"`
	Volume    string `json:"volume" example:"18234.55120000"`
	UpdatedAt string `json:"updated_at" example:"2024-01-01T12:00:00Z"`
}
