package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
	"github.com/whaamkabaam/trust-skin-hub/internal/logger"
	"github.com/whaamkabaam/trust-skin-hub/internal/operator"
)

// OperatorListResponse wraps an operator listing
type OperatorListResponse struct {
	Operators []domain.Operator `json:"operators"`
}

// HandleListOperators lists published operator pages
// @Summary List operators
// @Tags operators
// @Produce json
// @Success 200 {object} OperatorListResponse
// @Failure 500 {object} ErrorResponse
// @Router /operators [get]
func HandleListOperators(svc operator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		operators, err := svc.List(r.Context(), true)
		if err != nil {
			log.Error("Failed to list operators", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgListOperatorsFailed)
			return
		}

		respondJSON(w, http.StatusOK, OperatorListResponse{Operators: operators})
	}
}

// HandleListAllOperators lists every operator regardless of status (admin)
// @Summary List all operators
// @Tags admin
// @Produce json
// @Success 200 {object} OperatorListResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/operators [get]
func HandleListAllOperators(svc operator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		operators, err := svc.List(r.Context(), false)
		if err != nil {
			log.Error("Failed to list operators", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgListOperatorsFailed)
			return
		}

		respondJSON(w, http.StatusOK, OperatorListResponse{Operators: operators})
	}
}

// HandleGetOperatorBySlug fetches one published operator page
// @Summary Get operator by slug
// @Tags operators
// @Produce json
// @Param slug path string true "Operator slug"
// @Success 200 {object} domain.Operator
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /operators/{slug} [get]
func HandleGetOperatorBySlug(svc operator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		op, err := svc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			log.Warn("Operator lookup failed", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		// Unpublished pages stay invisible on the public route
		if !op.IsPublished() {
			respondError(w, http.StatusNotFound, ErrMsgOperatorNotFoundError)
			return
		}

		respondJSON(w, http.StatusOK, op)
	}
}

// OperatorRequest is the admin payload for creating or updating an operator
type OperatorRequest struct {
	Name           string  `json:"name" validate:"required,max=200"`
	Slug           string  `json:"slug" validate:"max=200"`
	SiteURL        string  `json:"site_url" validate:"omitempty,url,max=500"`
	Rating         float64 `json:"rating" validate:"gte=0,lte=10"`
	VerdictSummary string  `json:"verdict_summary" validate:"max=5000"`
}

func (req *OperatorRequest) toDomain() *domain.Operator {
	return &domain.Operator{
		Name:           req.Name,
		Slug:           req.Slug,
		SiteURL:        req.SiteURL,
		Rating:         req.Rating,
		VerdictSummary: req.VerdictSummary,
	}
}

// HandleCreateOperator creates a draft operator (admin)
// @Summary Create operator
// @Tags admin
// @Accept json
// @Produce json
// @Param request body OperatorRequest true "Operator details"
// @Success 201 {object} domain.Operator
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slug taken"
// @Failure 500 {object} ErrorResponse
// @Router /admin/operators [post]
func HandleCreateOperator(svc operator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req OperatorRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create operator"); err != nil {
			return
		}

		op, err := svc.Create(r.Context(), req.toDomain())
		if err != nil {
			log.Error("Failed to create operator", "error", err, "name", req.Name)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusCreated, op)
	}
}

// HandleUpdateOperator updates an operator's editorial fields (admin)
// @Summary Update operator
// @Tags admin
// @Accept json
// @Produce json
// @Param operatorID path string true "Operator ID"
// @Param request body OperatorRequest true "Operator details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/operators/{operatorID} [put]
func HandleUpdateOperator(svc operator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		operatorID := chi.URLParam(r, "operatorID")
		var req OperatorRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update operator"); err != nil {
			return
		}

		if err := svc.Update(r.Context(), operatorID, req.toDomain()); err != nil {
			log.Error("Failed to update operator", "error", err, "operator_id", operatorID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Operator updated successfully"})
	}
}

// HandleDeleteOperator removes an operator and its content (admin)
// @Summary Delete operator
// @Tags admin
// @Produce json
// @Param operatorID path string true "Operator ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/operators/{operatorID} [delete]
func HandleDeleteOperator(svc operator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		operatorID := chi.URLParam(r, "operatorID")
		if err := svc.Delete(r.Context(), operatorID); err != nil {
			log.Error("Failed to delete operator", "error", err, "operator_id", operatorID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Operator deleted", "operator_id", operatorID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgOperatorDeletedSuccess})
	}
}

// ChangeStatusRequest selects a lifecycle target state
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,opstatus"`
}

// HandleChangeOperatorStatus applies a lifecycle transition (admin)
// @Summary Change operator status
// @Tags admin
// @Accept json
// @Produce json
// @Param operatorID path string true "Operator ID"
// @Param request body ChangeStatusRequest true "Target status"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid transition"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/operators/{operatorID}/status [post]
func HandleChangeOperatorStatus(svc operator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		operatorID := chi.URLParam(r, "operatorID")
		var req ChangeStatusRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Change operator status"); err != nil {
			return
		}

		if err := svc.ChangeStatus(r.Context(), operatorID, domain.OperatorStatus(req.Status)); err != nil {
			log.Error("Failed to change operator status", "error", err, "operator_id", operatorID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgStatusChangedSuccess})
	}
}

// SchedulePublishRequest sets a future publish time (RFC 3339)
type SchedulePublishRequest struct {
	PublishAt string `json:"publish_at" validate:"required"`
}

// HandleSchedulePublish schedules an operator page for publishing (admin)
// @Summary Schedule publish
// @Tags admin
// @Accept json
// @Produce json
// @Param operatorID path string true "Operator ID"
// @Param request body SchedulePublishRequest true "Publish time (RFC 3339)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/operators/{operatorID}/schedule [post]
func HandleSchedulePublish(svc operator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		operatorID := chi.URLParam(r, "operatorID")
		var req SchedulePublishRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Schedule publish"); err != nil {
			return
		}

		at, err := time.Parse(time.RFC3339, req.PublishAt)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidPublishTime)
			return
		}

		if err := svc.SchedulePublish(r.Context(), operatorID, at); err != nil {
			log.Error("Failed to schedule publish", "error", err, "operator_id", operatorID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Publish scheduled", "operator_id", operatorID, "publish_at", at)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPublishScheduled})
	}
}
