package dto

import (
	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/pkg/utils"
)

type BalanceResponseDTO struct {
	Balance        int64 `json:"balance" example:"15000"`
	Deposit        int64 `json:"deposit_balance" example:"10000"`
	Withdrawable   int64 `json:"withdrawable_balance" example:"5000"`
	TotalDeposited int64 `json:"total_deposited" example:"20000"`
	TotalInvested  int64 `json:"total_invested" example:"10000"`
	TotalWithdrawn int64 `json:"total_withdrawn" example:"0"`
}

type DepositRequestDTO struct {
	Amount   int64  `json:"amount" validate:"required,gt=0" example:"5000"`
	Method   string `json:"method" validate:"required,oneof=mobile_money crypto" example:"mobile_money"`
	ProofURL string `json:"proof_url" validate:"required,url" example:"https://files.example.com/proof.png"`
}

type WithdrawalRequestDTO struct {
	Amount             int64  `json:"amount" validate:"required,gt=0" example:"2000"`
	Method             string `json:"method" validate:"required,oneof=mobile_money crypto" example:"mobile_money"`
	BeneficiaryName    string `json:"beneficiary_name" validate:"required,max=128" example:"Jane Doe"`
	BeneficiaryAccount string `json:"beneficiary_account" validate:"required,max=128" example:"+237650000000"`
}

type TransactionResponseDTO struct {
	Reference          string `json:"reference" example:"4539578763621486"`
	Type               string `json:"type" example:"deposit"`
	Amount             int64  `json:"amount" example:"5000"`
	Method             string `json:"method" example:"mobile_money"`
	Status             string `json:"status" example:"pending"`
	ProofURL           string `json:"proof_url,omitempty"`
	BeneficiaryName    string `json:"beneficiary_name,omitempty"`
	BeneficiaryAccount string `json:"beneficiary_account,omitempty"`
	AdminNote          string `json:"admin_note,omitempty"`
	CreatedAt          string `json:"created_at" example:"2024-01-01T12:00:00Z"`
	ProcessedAt        string `json:"processed_at,omitempty" example:"2024-01-01T13:00:00Z"`
}

func NewTransactionResponse(tx domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		Reference:          tx.Reference,
		Type:               tx.Type,
		Amount:             tx.Amount,
		Method:             tx.Method,
		Status:             tx.Status,
		ProofURL:           tx.ProofURL,
		BeneficiaryName:    tx.BeneficiaryName,
		BeneficiaryAccount: tx.BeneficiaryAccount,
		AdminNote:          tx.AdminNote,
		CreatedAt:          utils.FormatTime(tx.CreatedAt),
		ProcessedAt:        utils.FormatTimePtr(tx.ProcessedAt),
	}
}
