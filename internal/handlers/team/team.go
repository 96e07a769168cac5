package team

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/internal/dto"
	"github.com/GlebRadaev/rentvest/internal/service/referralservice"
	"github.com/GlebRadaev/rentvest/pkg/auth"
	"github.com/GlebRadaev/rentvest/pkg/utils"
)

type Service interface {
	Team(ctx context.Context, userID int) (*domain.TeamStats, error)
}

type TeamHandler struct {
	referralService Service
}

func New(referralService Service) *TeamHandler {
	return &TeamHandler{
		referralService: referralService,
	}
}

// GetTeam godoc
//
//	@Summary		Get referral team
//	@Description	Referral code, member counts for tiers A/B/C, members who invested, and commissions earned.
//	@Tags			Team
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.TeamResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/team [get]
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	stats, err := h.referralService.Team(r.Context(), userID)
	if err != nil {
		if errors.Is(err, referralservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	earnings := make([]dto.CommissionResponseDTO, len(stats.RecentEarnings))
	for i, c := range stats.RecentEarnings {
		earnings[i] = dto.CommissionResponseDTO{
			Tier:             c.Tier,
			Rate:             c.Rate,
			Amount:           c.Amount,
			InvestmentAmount: c.InvestmentAmount,
			CreatedAt:        utils.FormatTime(c.CreatedAt),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TeamResponseDTO{
		ReferralCode:   stats.ReferralCode,
		TierA:          stats.TierA,
		TierB:          stats.TierB,
		TierC:          stats.TierC,
		ValidMembers:   stats.ValidMembers,
		TotalEarned:    stats.TotalEarned,
		RecentEarnings: earnings,
	})
}
