package handler

import (
	"net/http"

	"github.com/whaamkabaam/trust-skin-hub/internal/catalog"
	"github.com/whaamkabaam/trust-skin-hub/internal/logger"
	"github.com/whaamkabaam/trust-skin-hub/internal/portfolio"
)

// AnalyzePortfolioRequest is a simulated multi-box purchase
type AnalyzePortfolioRequest struct {
	Boxes []catalog.AllocationRequest `json:"boxes" validate:"required,min=1,dive"`
}

// AnalyzePortfolioResponse carries the three outcome scenarios
type AnalyzePortfolioResponse struct {
	Scenarios []portfolio.Scenario `json:"scenarios"`
}

// HandleAnalyzePortfolio runs outcome analysis over a simulated purchase
// @Summary Analyze portfolio
// @Description Computes loss/profitable/jackpot outcome scenarios for a set of box allocations
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body AnalyzePortfolioRequest true "Box allocations"
// @Success 200 {object} AnalyzePortfolioResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown box"
// @Failure 500 {object} ErrorResponse
// @Router /portfolio/analyze [post]
func HandleAnalyzePortfolio(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AnalyzePortfolioRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Analyze portfolio"); err != nil {
			return
		}

		scenarios, err := svc.AnalyzePortfolio(r.Context(), req.Boxes)
		if err != nil {
			log.Error("Failed to analyze portfolio", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Portfolio analyzed", "allocations", len(req.Boxes))
		respondJSON(w, http.StatusOK, AnalyzePortfolioResponse{Scenarios: scenarios})
	}
}
