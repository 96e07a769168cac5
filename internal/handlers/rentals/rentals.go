package rentals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/internal/dto"
	"github.com/GlebRadaev/rentvest/internal/rules"
	"github.com/GlebRadaev/rentvest/internal/service/rentalservice"
	"github.com/GlebRadaev/rentvest/pkg/auth"
	"github.com/GlebRadaev/rentvest/pkg/utils"
	"github.com/GlebRadaev/rentvest/pkg/validate"
)

type Service interface {
	Products(ctx context.Context, userID int) ([]rentalservice.Offer, error)
	Positions(ctx context.Context, userID int) ([]rentalservice.Position, error)
	Purchase(ctx context.Context, userID, productID, quantity int) (*domain.Rental, error)
	Collect(ctx context.Context, userID, rentalID int) (int64, error)
	CollectAll(ctx context.Context, userID int) (int64, error)
}

type RentalHandler struct {
	rentalService Service
}

func New(rentalService Service) *RentalHandler {
	return &RentalHandler{
		rentalService: rentalService,
	}
}

// Products godoc
//
//	@Summary		List investment products
//	@Description	Catalog lv1..lv7. With a token, products the user already holds or can no longer buy are flagged.
//	@Tags			Rentals
//	@Produce		json
//	@Success		200	{array}		dto.ProductResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/products [get]
func (h *RentalHandler) Products(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)

	offers, err := h.rentalService.Products(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ProductResponseDTO, len(offers))
	for i, o := range offers {
		response[i] = dto.ProductResponseDTO{
			ID:           o.ID,
			Name:         o.Name,
			Price:        o.Price,
			DailyRevenue: o.DailyRevenue,
			DurationDays: o.DurationDays,
			TotalRevenue: o.TotalRevenue(1),
			Owned:        o.Owned,
			Available:    o.Available,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// List godoc
//
//	@Summary		List user rentals
//	@Description	Rentals of the authenticated user with accrued and collectable revenue evaluated now.
//	@Tags			Rentals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RentalResponseDTO
//	@Success		204	{object}	utils.Response	"No rentals"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/rentals [get]
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	positions, err := h.rentalService.Positions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(positions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Rentals not found")
		return
	}

	response := make([]dto.RentalResponseDTO, len(positions))
	for i, p := range positions {
		response[i] = rentalResponse(p)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Purchase godoc
//
//	@Summary		Invest in a product
//	@Description	Buy a product tier with the deposit balance. Tiers must be bought in strictly ascending order.
//	@Tags			Rentals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase request payload"
//	@Success		201		{object}	dto.RentalResponseDTO	"Rental opened"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Deposit balance does not cover the amount"
//	@Failure		404		{object}	utils.Response			"Unknown product"
//	@Failure		409		{object}	utils.Response			"Tier already held or lower than the highest held"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/rentals [post]
func (h *RentalHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	rental, err := h.rentalService.Purchase(r.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrUnknownProduct):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, rules.ErrInvalidQuantity), errors.Is(err, rules.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, rules.ErrTierAlreadyHeld), errors.Is(err, rules.ErrTierNotAscending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, rules.ErrDepositRequired):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, rentalservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, rentalResponse(rentalservice.Position{Rental: *rental}))
}

// Collect godoc
//
//	@Summary		Collect rental revenue
//	@Description	Move the revenue accrued so far on one rental to the withdrawable balance.
//	@Tags			Rentals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Rental ID"
//	@Success		200	{object}	dto.CollectResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid rental id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Rental not found"
//	@Failure		409	{object}	utils.Response	"Nothing to collect yet"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/rentals/{id}/collect [post]
func (h *RentalHandler) Collect(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	rentalID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || rentalID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid rental id")
		return
	}

	amount, err := h.rentalService.Collect(r.Context(), userID, rentalID)
	if err != nil {
		respondWithCollectError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CollectResponseDTO{Collected: amount})
}

// CollectAll godoc
//
//	@Summary		Collect all rental revenue
//	@Description	Collect every rental of the authenticated user in one go.
//	@Tags			Rentals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CollectResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		409	{object}	utils.Response	"Nothing to collect yet"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/rentals/collect [post]
func (h *RentalHandler) CollectAll(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	amount, err := h.rentalService.CollectAll(r.Context(), userID)
	if err != nil {
		respondWithCollectError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CollectResponseDTO{Collected: amount})
}

func respondWithCollectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, rentalservice.ErrRentalNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, rentalservice.ErrNothingToCollect):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func rentalResponse(p rentalservice.Position) dto.RentalResponseDTO {
	return dto.RentalResponseDTO{
		ID:           p.ID,
		ProductID:    p.ProductID,
		Quantity:     p.Quantity,
		Amount:       p.Amount(),
		DailyRevenue: p.DailyRevenue,
		TotalRevenue: p.TotalRevenue,
		Accrued:      p.Accrued,
		Collected:    p.Collected,
		Collectable:  p.Collectable,
		Progress:     p.Progress,
		Finished:     p.Finished,
		StartedAt:    utils.FormatTime(p.StartedAt),
		EndsAt:       utils.FormatTime(p.EndsAt),
	}
}
