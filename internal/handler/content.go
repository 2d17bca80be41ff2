package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/whaamkabaam/trust-skin-hub/internal/content"
	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
	"github.com/whaamkabaam/trust-skin-hub/internal/logger"
)

// ContentPageResponse wraps an operator's ordered content blocks
type ContentPageResponse struct {
	Blocks []domain.ContentBlock `json:"blocks"`
}

// HandleGetContentPage returns an operator's content blocks in page order
// @Summary Get operator content
// @Tags operators
// @Produce json
// @Param operatorID path string true "Operator ID"
// @Success 200 {object} ContentPageResponse
// @Failure 500 {object} ErrorResponse
// @Router /operators/{operatorID}/content [get]
func HandleGetContentPage(svc content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		blocks, err := svc.GetPage(r.Context(), chi.URLParam(r, "operatorID"))
		if err != nil {
			log.Error("Failed to get content blocks", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGetContentFailed)
			return
		}

		respondJSON(w, http.StatusOK, ContentPageResponse{Blocks: blocks})
	}
}

// ContentBlockRequest is the admin payload for one content block
type ContentBlockRequest struct {
	Type    string          `json:"type" validate:"required,blocktype"`
	Heading string          `json:"heading" validate:"max=300"`
	Payload json.RawMessage `json:"payload" validate:"required"`
}

// AddBlockResponse returns the new block's ID
type AddBlockResponse struct {
	BlockID int `json:"block_id"`
}

// HandleAddContentBlock appends a block to an operator page (admin)
// @Summary Add content block
// @Tags admin
// @Accept json
// @Produce json
// @Param operatorID path string true "Operator ID"
// @Param request body ContentBlockRequest true "Block details"
// @Success 201 {object} AddBlockResponse
// @Failure 400 {object} ErrorResponse "Invalid block type or payload"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/operators/{operatorID}/content [post]
func HandleAddContentBlock(svc content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		operatorID := chi.URLParam(r, "operatorID")
		var req ContentBlockRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add content block"); err != nil {
			return
		}

		block := &domain.ContentBlock{
			OperatorID: operatorID,
			Type:       domain.BlockType(req.Type),
			Heading:    req.Heading,
			Payload:    req.Payload,
		}
		blockID, err := svc.AddBlock(r.Context(), block)
		if err != nil {
			log.Error("Failed to add content block", "error", err, "operator_id", operatorID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusCreated, AddBlockResponse{BlockID: blockID})
	}
}

func blockIDParam(r *http.Request, w http.ResponseWriter) (int, bool) {
	blockID, err := strconv.Atoi(chi.URLParam(r, "blockID"))
	if err != nil || blockID < 1 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidBlockID)
		return 0, false
	}
	return blockID, true
}

// HandleUpdateContentBlock rewrites a block in place (admin)
// @Summary Update content block
// @Tags admin
// @Accept json
// @Produce json
// @Param blockID path int true "Block ID"
// @Param request body ContentBlockRequest true "Block details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/content/{blockID} [put]
func HandleUpdateContentBlock(svc content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		blockID, ok := blockIDParam(r, w)
		if !ok {
			return
		}
		var req ContentBlockRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update content block"); err != nil {
			return
		}

		block := &domain.ContentBlock{
			Type:    domain.BlockType(req.Type),
			Heading: req.Heading,
			Payload: req.Payload,
		}
		if err := svc.UpdateBlock(r.Context(), blockID, block); err != nil {
			log.Error("Failed to update content block", "error", err, "block_id", blockID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Content block updated successfully"})
	}
}

// HandleDeleteContentBlock removes a block and closes the position gap (admin)
// @Summary Delete content block
// @Tags admin
// @Produce json
// @Param blockID path int true "Block ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/content/{blockID} [delete]
func HandleDeleteContentBlock(svc content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		blockID, ok := blockIDParam(r, w)
		if !ok {
			return
		}
		if err := svc.DeleteBlock(r.Context(), blockID); err != nil {
			log.Error("Failed to delete content block", "error", err, "block_id", blockID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgBlockDeletedSuccess})
	}
}

// ReorderBlocksRequest is the full desired block order
type ReorderBlocksRequest struct {
	BlockIDs []int `json:"block_ids" validate:"required,min=1"`
}

// HandleReorderContentBlocks applies a new block ordering (admin)
// @Summary Reorder content blocks
// @Tags admin
// @Accept json
// @Produce json
// @Param operatorID path string true "Operator ID"
// @Param request body ReorderBlocksRequest true "Desired order"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/operators/{operatorID}/content/reorder [post]
func HandleReorderContentBlocks(svc content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		operatorID := chi.URLParam(r, "operatorID")
		var req ReorderBlocksRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Reorder content blocks"); err != nil {
			return
		}

		if err := svc.ReorderBlocks(r.Context(), operatorID, req.BlockIDs); err != nil {
			log.Error("Failed to reorder content blocks", "error", err, "operator_id", operatorID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgBlocksReordered})
	}
}
