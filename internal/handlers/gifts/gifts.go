package gifts

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/internal/dto"
	"github.com/GlebRadaev/rentvest/internal/rules"
	"github.com/GlebRadaev/rentvest/internal/service/giftservice"
	"github.com/GlebRadaev/rentvest/pkg/auth"
	"github.com/GlebRadaev/rentvest/pkg/utils"
)

type Service interface {
	Status(ctx context.Context, userID int) (*giftservice.Status, error)
	CheckIn(ctx context.Context, userID int) (*giftservice.CheckInResult, error)
	Spin(ctx context.Context, userID int) (*giftservice.SpinResult, error)
	SpinHistory(ctx context.Context, userID int) ([]domain.SpinRecord, error)
}

type GiftHandler struct {
	giftService Service
}

func New(giftService Service) *GiftHandler {
	return &GiftHandler{
		giftService: giftService,
	}
}

// Status godoc
//
//	@Summary		Get gift center status
//	@Description	Bonus earned against the cap, check-in streak, and when the next check-in and spin open up.
//	@Tags			Gifts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.GiftStatusResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/gifts [get]
func (h *GiftHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	status, err := h.giftService.Status(r.Context(), userID)
	if err != nil {
		respondWithGiftError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GiftStatusResponseDTO{
		TotalBonus:     status.TotalBonus,
		BonusCap:       rules.BonusCap,
		CheckinStreak:  status.CheckinStreak,
		NextCheckInAt:  utils.FormatTime(status.NextCheckInAt),
		ValidReferrals: status.ValidReferrals,
		SpinUnlocked:   status.SpinUnlocked,
		NextSpinAt:     utils.FormatTime(status.NextSpinAt),
	})
}

// CheckIn godoc
//
//	@Summary		Daily check-in
//	@Description	Claim today's reward. Missing a day restarts the seven-day ladder.
//	@Tags			Gifts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CheckInResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		409	{object}	utils.Response	"Bonus cap reached"
//	@Failure		429	{object}	utils.Response	"Already checked in"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/gifts/checkin [post]
func (h *GiftHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	result, err := h.giftService.CheckIn(r.Context(), userID)
	if err != nil {
		respondWithGiftError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CheckInResponseDTO{
		Reward:     result.Reward,
		Streak:     result.Streak,
		TotalBonus: result.TotalBonus,
	})
}

// Spin godoc
//
//	@Summary		Spin the wheel
//	@Description	Requires at least one invited member who invested. Fewer than 60 such members allow one spin per 24h.
//	@Tags			Gifts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SpinResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Wheel locked"
//	@Failure		409	{object}	utils.Response	"Bonus cap reached"
//	@Failure		429	{object}	utils.Response	"Spin not available yet"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/gifts/spin [post]
func (h *GiftHandler) Spin(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	result, err := h.giftService.Spin(r.Context(), userID)
	if err != nil {
		respondWithGiftError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SpinResponseDTO{
		SegmentID:  result.Segment.ID,
		Label:      result.Segment.Label,
		Prize:      result.Prize,
		TotalBonus: result.TotalBonus,
	})
}

// Spins godoc
//
//	@Summary		Get spin history
//	@Description	Latest wheel prizes of the authenticated user, newest first.
//	@Tags			Gifts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SpinRecordResponseDTO
//	@Success		204	{object}	utils.Response	"No spins yet"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/gifts/spins [get]
func (h *GiftHandler) Spins(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	spins, err := h.giftService.SpinHistory(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(spins) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Spins not found")
		return
	}

	response := make([]dto.SpinRecordResponseDTO, len(spins))
	for i, s := range spins {
		response[i] = dto.SpinRecordResponseDTO{
			Prize:     s.Prize,
			CreatedAt: utils.FormatTime(s.CreatedAt),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondWithGiftError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, rules.ErrCheckInCooldown), errors.Is(err, rules.ErrSpinCooldown):
		utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, rules.ErrSpinLocked):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, rules.ErrBonusCapReached):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, giftservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
