package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/whaamkabaam/trust-skin-hub/internal/catalog"
	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
	"github.com/whaamkabaam/trust-skin-hub/internal/logger"
)

// CategoryListResponse wraps a category listing
type CategoryListResponse struct {
	Categories []domain.Category `json:"categories"`
}

// HandleListCategories lists catalog categories in display order
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {object} CategoryListResponse
// @Failure 500 {object} ErrorResponse
// @Router /categories [get]
func HandleListCategories(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			log.Error("Failed to list categories", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgListCategoriesFailed)
			return
		}

		respondJSON(w, http.StatusOK, CategoryListResponse{Categories: categories})
	}
}

// CategoryRequest is the admin payload for creating or updating a category
type CategoryRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Slug         string `json:"slug" validate:"max=100"`
	Description  string `json:"description" validate:"max=2000"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

// CreateCategoryResponse returns the new category's ID
type CreateCategoryResponse struct {
	CategoryID int `json:"category_id"`
}

// HandleCreateCategory creates a category (admin)
// @Summary Create category
// @Tags admin
// @Accept json
// @Produce json
// @Param request body CategoryRequest true "Category details"
// @Success 201 {object} CreateCategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slug taken"
// @Failure 500 {object} ErrorResponse
// @Router /admin/categories [post]
func HandleCreateCategory(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CategoryRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create category"); err != nil {
			return
		}

		category := &domain.Category{
			Name:         req.Name,
			Slug:         req.Slug,
			Description:  req.Description,
			DisplayOrder: req.DisplayOrder,
		}
		categoryID, err := svc.CreateCategory(r.Context(), category)
		if err != nil {
			log.Error("Failed to create category", "error", err, "name", req.Name)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusCreated, CreateCategoryResponse{CategoryID: categoryID})
	}
}

func categoryIDParam(r *http.Request, w http.ResponseWriter) (int, bool) {
	categoryID, err := strconv.Atoi(chi.URLParam(r, "categoryID"))
	if err != nil || categoryID < 1 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidCategoryID)
		return 0, false
	}
	return categoryID, true
}

// HandleUpdateCategory updates a category (admin)
// @Summary Update category
// @Tags admin
// @Accept json
// @Produce json
// @Param categoryID path int true "Category ID"
// @Param request body CategoryRequest true "Category details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/categories/{categoryID} [put]
func HandleUpdateCategory(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		categoryID, ok := categoryIDParam(r, w)
		if !ok {
			return
		}
		var req CategoryRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update category"); err != nil {
			return
		}

		category := &domain.Category{
			Name:         req.Name,
			Slug:         req.Slug,
			Description:  req.Description,
			DisplayOrder: req.DisplayOrder,
		}
		if err := svc.UpdateCategory(r.Context(), categoryID, category); err != nil {
			log.Error("Failed to update category", "error", err, "category_id", categoryID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Category updated successfully"})
	}
}

// HandleDeleteCategory removes a category (admin)
// @Summary Delete category
// @Tags admin
// @Produce json
// @Param categoryID path int true "Category ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/categories/{categoryID} [delete]
func HandleDeleteCategory(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		categoryID, ok := categoryIDParam(r, w)
		if !ok {
			return
		}
		if err := svc.DeleteCategory(r.Context(), categoryID); err != nil {
			log.Error("Failed to delete category", "error", err, "category_id", categoryID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCategoryDeletedSuccess})
	}
}
