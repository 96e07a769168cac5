package market

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/internal/dto"
	"github.com/GlebRadaev/rentvest/pkg/utils"
)

type Service interface {
	Tickers(ctx context.Context) []domain.Ticker
}

type MarketHandler struct {
	priceFeed Service
}

func New(priceFeed Service) *MarketHandler {
	return &MarketHandler{
		priceFeed: priceFeed,
	}
}

// Tickers godoc
//
//	@Summary		Market tickers
//	@Description	Latest 24h figures for the tracked crypto pairs. Pairs not fetched yet are left out.
//	@Tags			Market
//	@Produce		json
//	@Success		200	{array}		dto.TickerResponseDTO
//	@Success		204	{object}	utils.Response	"No market data yet"
//	@Router			/api/market/tickers [get]
func (h *MarketHandler) Tickers(w http.ResponseWriter, r *http.Request) {
	tickers := h.priceFeed.Tickers(r.Context())
	if len(tickers) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Market data not available")
		return
	}

	response := make([]dto.TickerResponseDTO, len(tickers))
	for i, t := range tickers {
		response[i] = dto.TickerResponseDTO{
			Symbol:    t.Symbol,
			LastPrice: t.LastPrice,
			ChangePct: t.ChangePct,
			HighPrice: t.HighPrice,
			LowPrice:  t.LowPrice,
			Volume:    t.Volume,
			UpdatedAt: utils.FormatTime(t.UpdatedAt),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
