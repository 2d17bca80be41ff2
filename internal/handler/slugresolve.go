package handler

import (
	"net/http"

	"github.com/whaamkabaam/trust-skin-hub/internal/catalog"
	"github.com/whaamkabaam/trust-skin-hub/internal/logger"
	"github.com/whaamkabaam/trust-skin-hub/internal/slug"
)

// ResolveSlugRequest asks for candidate boxes matching a raw slug or name
type ResolveSlugRequest struct {
	Slug string `json:"slug" validate:"required,max=200"`
}

// ResolveSlugResponse lists candidate matches, best first
type ResolveSlugResponse struct {
	Matches []slug.Match `json:"matches"`
}

// HandleResolveSlug resolves a raw slug or name against the catalog
// @Summary Resolve slug
// @Description Returns fuzzy catalog matches for a raw slug or box name, best first
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body ResolveSlugRequest true "Raw slug"
// @Success 200 {object} ResolveSlugResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /slug/resolve [post]
func HandleResolveSlug(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ResolveSlugRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Resolve slug"); err != nil {
			return
		}

		matches, err := svc.ResolveSlug(r.Context(), req.Slug)
		if err != nil {
			log.Error("Failed to resolve slug", "error", err, "slug", req.Slug)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, ResolveSlugResponse{Matches: matches})
	}
}
