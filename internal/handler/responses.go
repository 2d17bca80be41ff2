package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; nothing left to do but log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgBoxNotFoundError      = "Box not found"
	ErrMsgOperatorNotFoundError = "Operator not found"
	ErrMsgCategoryNotFoundError = "Category not found"
	ErrMsgBlockNotFoundError    = "Content block not found"
	ErrMsgSlugTakenError        = "That slug is already in use"
	ErrMsgInvalidStatusError    = "Invalid status transition"
	ErrMsgInvalidBlockTypeError = "Invalid content block type or payload"
	ErrMsgInvalidProviderError  = "Invalid provider"
	ErrMsgBadImportRowError     = "Feed rejected: malformed CSV"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses, converting internal service errors to appropriate status codes.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrBoxNotFound):
		return http.StatusNotFound, ErrMsgBoxNotFoundError
	case errors.Is(err, domain.ErrOperatorNotFound):
		return http.StatusNotFound, ErrMsgOperatorNotFoundError
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, ErrMsgCategoryNotFoundError
	case errors.Is(err, domain.ErrContentBlockNotFound):
		return http.StatusNotFound, ErrMsgBlockNotFoundError
	case errors.Is(err, domain.ErrSlugTaken):
		return http.StatusConflict, ErrMsgSlugTakenError
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, ErrMsgInvalidStatusError
	case errors.Is(err, domain.ErrInvalidBlockType):
		return http.StatusBadRequest, ErrMsgInvalidBlockTypeError
	case errors.Is(err, domain.ErrInvalidProvider):
		return http.StatusBadRequest, ErrMsgInvalidProviderError
	case errors.Is(err, domain.ErrImportRow):
		return http.StatusBadRequest, ErrMsgBadImportRowError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrConnectionTimeout):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	// Wrapped errors with domain errors further down the chain
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
