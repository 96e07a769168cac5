package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/internal/dto"
	balanceservice "github.com/GlebRadaev/rentvest/internal/service/balanceservice"
	"github.com/GlebRadaev/rentvest/pkg/utils"
	"github.com/GlebRadaev/rentvest/pkg/validate"
)

type Service interface {
	PendingTransactions(ctx context.Context) ([]domain.Transaction, error)
	Approve(ctx context.Context, reference string) (*domain.Transaction, error)
	Reject(ctx context.Context, reference, note string) (*domain.Transaction, error)
	Stats(ctx context.Context) (*domain.AdminStats, error)
}

type AdminHandler struct {
	balanceService Service
}

func New(balanceService Service) *AdminHandler {
	return &AdminHandler{
		balanceService: balanceService,
	}
}

// Pending godoc
//
//	@Summary		List pending transactions
//	@Description	Deposits and withdrawals waiting for review, oldest first.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Success		204	{object}	utils.Response	"Nothing to review"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/transactions/pending [get]
func (h *AdminHandler) Pending(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.balanceService.PendingTransactions(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
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

// Approve godoc
//
//	@Summary		Approve a transaction
//	@Description	Credit an approved deposit or debit an approved withdrawal.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			reference	path		string	true	"Transaction reference"
//	@Success		200			{object}	dto.TransactionResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		402			{object}	utils.Response	"Insufficient balance for the withdrawal"
//	@Failure		403			{object}	utils.Response	"Admin role required"
//	@Failure		404			{object}	utils.Response	"Transaction not found"
//	@Failure		409			{object}	utils.Response	"Transaction already processed"
//	@Failure		422			{object}	utils.Response	"Invalid reference"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/transactions/{reference}/approve [post]
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")
	if !validate.IsLuhn(reference) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid reference")
		return
	}

	tx, err := h.balanceService.Approve(r.Context(), reference)
	if err != nil {
		respondWithReviewError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(*tx))
}

// Reject godoc
//
//	@Summary		Reject a transaction
//	@Description	Close a pending transaction without touching any balance.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			reference	path		string				true	"Transaction reference"
//	@Param			request		body		dto.RejectRequestDTO	false	"Reason shown to the user"
//	@Success		200			{object}	dto.TransactionResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Admin role required"
//	@Failure		404			{object}	utils.Response	"Transaction not found"
//	@Failure		409			{object}	utils.Response	"Transaction already processed"
//	@Failure		422			{object}	utils.Response	"Invalid reference"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/transactions/{reference}/reject [post]
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")
	if !validate.IsLuhn(reference) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid reference")
		return
	}

	var req dto.RejectRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.balanceService.Reject(r.Context(), reference, req.Note)
	if err != nil {
		respondWithReviewError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(*tx))
}

// Stats godoc
//
//	@Summary		Dashboard figures
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AdminStatsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/stats [get]
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.balanceService.Stats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminStatsResponseDTO{
		TotalUsers:         stats.TotalUsers,
		PendingDeposits:    stats.PendingDeposits,
		PendingWithdrawals: stats.PendingWithdrawals,
		TotalDeposited:     stats.TotalDeposited,
		TotalWithdrawn:     stats.TotalWithdrawn,
		TotalInvested:      stats.TotalInvested,
		ActiveRentals:      stats.ActiveRentals,
	})
}

func respondWithReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, balanceservice.ErrTransactionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, balanceservice.ErrAlreadyProcessed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, balanceservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
