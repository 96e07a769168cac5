package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/internal/dto"
	balanceservice "github.com/GlebRadaev/rentvest/internal/service/balanceservice"
	"github.com/GlebRadaev/rentvest/pkg/auth"
	"github.com/GlebRadaev/rentvest/pkg/utils"
	"github.com/GlebRadaev/rentvest/pkg/validate"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.User, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
	CreateDeposit(ctx context.Context, userID int, amount int64, method, proofURL string) (*domain.Transaction, error)
	CreateWithdrawal(ctx context.Context, userID int, amount int64, method, beneficiaryName, beneficiaryAccount string) (*domain.Transaction, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Total balance split into the deposit bucket (investable) and the withdrawable bucket, plus lifetime totals.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"User not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	user, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, balanceservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance:        user.Balance,
		Deposit:        user.DepositBalance,
		Withdrawable:   user.WithdrawableBalance,
		TotalDeposited: user.TotalDeposited,
		TotalInvested:  user.TotalInvested,
		TotalWithdrawn: user.TotalWithdrawn,
	})
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	Deposits and withdrawals of the authenticated user, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transactions"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.balanceService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.NewTransactionResponse(tx)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateDeposit godoc
//
//	@Summary		Declare a deposit
//	@Description	Register a pending deposit backed by a payment proof. The balance changes once an admin approves it.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO		true	"Deposit request payload"
//	@Success		202		{object}	dto.TransactionResponseDTO	"Deposit accepted for review"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/deposits [post]
func (h *BalanceHandler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.balanceService.CreateDeposit(r.Context(), userID, req.Amount, req.Method, req.ProofURL)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.NewTransactionResponse(*tx))
}

// CreateWithdrawal godoc
//
//	@Summary		Request a withdrawal
//	@Description	Register a pending withdrawal from the withdrawable balance. Funds leave the balance once an admin approves it.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal request payload"
//	@Success		202		{object}	dto.TransactionResponseDTO	"Withdrawal accepted for review"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		422		{object}	utils.Response				"Amount below the minimum withdrawal"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/withdrawals [post]
func (h *BalanceHandler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.balanceService.CreateWithdrawal(r.Context(), userID, req.Amount, req.Method, req.BeneficiaryName, req.BeneficiaryAccount)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.NewTransactionResponse(*tx))
}

func (h *BalanceHandler) respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, balanceservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, balanceservice.ErrBelowMinimum):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, balanceservice.ErrInvalidAmount), errors.Is(err, balanceservice.ErrInvalidMethod),
		errors.Is(err, balanceservice.ErrProofRequired):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, balanceservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
