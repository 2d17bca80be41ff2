package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/whaamkabaam/trust-skin-hub/internal/catalog"
	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
	"github.com/whaamkabaam/trust-skin-hub/internal/logger"
)

// BoxListResponse wraps a box listing
type BoxListResponse struct {
	Boxes []domain.Box `json:"boxes"`
	Total int          `json:"total"`
}

// BoxResponse wraps a single resolved box
type BoxResponse struct {
	Box          *domain.Box `json:"box"`
	ResolvedSlug string      `json:"resolved_slug"`
	Fuzzy        bool        `json:"fuzzy,omitempty"`
}

// boxFilterFromQuery builds a catalog filter from list/search query params
func boxFilterFromQuery(r *http.Request, publishedOnly bool) (domain.BoxFilter, error) {
	filter := domain.BoxFilter{
		Category:      r.URL.Query().Get("category"),
		Provider:      r.URL.Query().Get("provider"),
		SortBy:        r.URL.Query().Get("sort"),
		PublishedOnly: publishedOnly,
	}

	if raw := r.URL.Query().Get("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return filter, domain.ErrInvalidInput
		}
		filter.MinPrice = v
	}
	if raw := r.URL.Query().Get("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return filter, domain.ErrInvalidInput
		}
		filter.MaxPrice = v
	}
	return filter, nil
}

// HandleListBoxes lists the published catalog
// @Summary List boxes
// @Description Lists published boxes, optionally filtered by category, provider and price range
// @Tags catalog
// @Produce json
// @Param category query string false "Category slug"
// @Param provider query string false "Provider"
// @Param sort query string false "Sort order (name, price_asc, price_desc, newest)"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Success 200 {object} BoxListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /boxes [get]
func HandleListBoxes(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		filter, err := boxFilterFromQuery(r, true)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidPrice)
			return
		}

		boxes, err := svc.ListBoxes(r.Context(), filter)
		if err != nil {
			log.Error("Failed to list boxes", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, BoxListResponse{Boxes: boxes, Total: len(boxes)})
	}
}

// HandleSearchBoxes ranks the catalog against a free-text query
// @Summary Search boxes
// @Description Searches published boxes, ranked by relevance to the query
// @Tags catalog
// @Produce json
// @Param q query string true "Search query"
// @Param category query string false "Category slug"
// @Param provider query string false "Provider"
// @Success 200 {object} BoxListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /boxes/search [get]
func HandleSearchBoxes(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		query, ok := GetQueryParam(r, w, "q")
		if !ok {
			return
		}
		filter, err := boxFilterFromQuery(r, true)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidPrice)
			return
		}

		boxes, err := svc.SearchBoxes(r.Context(), query, filter)
		if err != nil {
			log.Error("Failed to search boxes", "error", err, "query", query)
			respondError(w, http.StatusInternalServerError, ErrMsgSearchFailed)
			return
		}

		log.Info("Search completed", "query", query, "results", len(boxes))
		respondJSON(w, http.StatusOK, BoxListResponse{Boxes: boxes, Total: len(boxes)})
	}
}

// HandleGetBoxBySlug fetches one box, resolving near-miss slugs fuzzily
// @Summary Get box by slug
// @Description Fetches a box by slug; near-miss slugs resolve to the closest match
// @Tags catalog
// @Produce json
// @Param slug path string true "Box slug"
// @Success 200 {object} BoxResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /boxes/{slug} [get]
func HandleGetBoxBySlug(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		rawSlug := chi.URLParam(r, "slug")
		res, err := svc.GetBoxBySlug(r.Context(), rawSlug)
		if err != nil {
			log.Warn("Box lookup failed", "slug", rawSlug, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, BoxResponse{
			Box:          res.Box,
			ResolvedSlug: res.ResolvedSlug,
			Fuzzy:        res.Fuzzy,
		})
	}
}

// CreateBoxRequest is the admin payload for creating or updating a box
type CreateBoxRequest struct {
	OperatorID string           `json:"operator_id"`
	Name       string           `json:"name" validate:"required,max=200"`
	Slug       string           `json:"slug" validate:"max=200"`
	Price      float64          `json:"price" validate:"gte=0"`
	Category   string           `json:"category" validate:"required,max=100"`
	Tags       []string         `json:"tags"`
	Provider   string           `json:"provider" validate:"required,provider"`
	ImageURL   string           `json:"image_url"`
	Items      []BoxItemRequest `json:"items" validate:"dive"`
	Published  bool             `json:"published"`
}

// BoxItemRequest is one prize row in a box payload
type BoxItemRequest struct {
	Name       string  `json:"name" validate:"required,max=200"`
	Value      float64 `json:"value" validate:"gte=0"`
	DropChance float64 `json:"drop_chance" validate:"gt=0,lte=100"`
	Image      string  `json:"image"`
	Type       string  `json:"type"`
}

func (req *CreateBoxRequest) toDomain() *domain.Box {
	box := &domain.Box{
		OperatorID: req.OperatorID,
		Name:       req.Name,
		Slug:       req.Slug,
		Price:      req.Price,
		Category:   req.Category,
		Tags:       req.Tags,
		Provider:   req.Provider,
		ImageURL:   req.ImageURL,
		Published:  req.Published,
	}
	for _, item := range req.Items {
		box.Items = append(box.Items, domain.BoxItem{
			Name:       item.Name,
			Value:      item.Value,
			DropChance: item.DropChance,
			Image:      item.Image,
			Type:       item.Type,
		})
	}
	return box
}

// CreateBoxResponse returns the new box's ID and slug
type CreateBoxResponse struct {
	BoxID int    `json:"box_id"`
	Slug  string `json:"slug"`
}

// HandleCreateBox creates a box by hand (admin)
// @Summary Create box
// @Description Creates a manually curated box
// @Tags admin
// @Accept json
// @Produce json
// @Param request body CreateBoxRequest true "Box details"
// @Success 201 {object} CreateBoxResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slug taken"
// @Failure 500 {object} ErrorResponse
// @Router /admin/boxes [post]
func HandleCreateBox(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateBoxRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create box"); err != nil {
			return
		}

		box := req.toDomain()
		boxID, err := svc.CreateBox(r.Context(), box)
		if err != nil {
			log.Error("Failed to create box", "error", err, "name", req.Name)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Box created", "box_id", boxID, "slug", box.Slug)
		respondJSON(w, http.StatusCreated, CreateBoxResponse{BoxID: boxID, Slug: box.Slug})
	}
}

// boxIDParam parses the {boxID} path parameter
func boxIDParam(r *http.Request, w http.ResponseWriter) (int, bool) {
	boxID, err := strconv.Atoi(chi.URLParam(r, "boxID"))
	if err != nil || boxID < 1 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidBoxID)
		return 0, false
	}
	return boxID, true
}

// HandleUpdateBox updates a box (admin)
// @Summary Update box
// @Tags admin
// @Accept json
// @Produce json
// @Param boxID path int true "Box ID"
// @Param request body CreateBoxRequest true "Box details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slug taken"
// @Failure 500 {object} ErrorResponse
// @Router /admin/boxes/{boxID} [put]
func HandleUpdateBox(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		boxID, ok := boxIDParam(r, w)
		if !ok {
			return
		}
		var req CreateBoxRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update box"); err != nil {
			return
		}

		box := req.toDomain()
		if err := svc.UpdateBox(r.Context(), boxID, box); err != nil {
			log.Error("Failed to update box", "error", err, "box_id", boxID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if len(box.Items) > 0 {
			if err := svc.ReplaceItems(r.Context(), boxID, box.Items); err != nil {
				log.Error("Failed to replace box items", "error", err, "box_id", boxID)
				status, msg := mapServiceErrorToUserMessage(err)
				respondError(w, status, msg)
				return
			}
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Box updated successfully"})
	}
}

// HandleDeleteBox removes a box (admin)
// @Summary Delete box
// @Tags admin
// @Produce json
// @Param boxID path int true "Box ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/boxes/{boxID} [delete]
func HandleDeleteBox(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		boxID, ok := boxIDParam(r, w)
		if !ok {
			return
		}
		if err := svc.DeleteBox(r.Context(), boxID); err != nil {
			log.Error("Failed to delete box", "error", err, "box_id", boxID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Box deleted", "box_id", boxID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgBoxDeletedSuccess})
	}
}
