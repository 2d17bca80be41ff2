package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Operator errors
	ErrMsgOperatorNotFound = "operator not found"
	ErrMsgSlugTaken        = "slug already in use"
	ErrMsgInvalidStatus    = "invalid status transition"

	// Box errors
	ErrMsgBoxNotFound = "box not found"

	// Category errors
	ErrMsgCategoryNotFound = "category not found"

	// Content errors
	ErrMsgContentBlockNotFound = "content block not found"
	ErrMsgInvalidBlockType     = "invalid content block type"

	// Import errors
	ErrMsgImportRow = "import row rejected"

	// Provider errors
	ErrMsgInvalidProvider = "invalid provider"

	// Database/System errors
	ErrMsgDatabaseError     = "database error"
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgTxClosed          = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Operator errors
	ErrOperatorNotFound = errors.New(ErrMsgOperatorNotFound)
	ErrSlugTaken        = errors.New(ErrMsgSlugTaken)
	ErrInvalidStatus    = errors.New(ErrMsgInvalidStatus)

	// Box errors
	ErrBoxNotFound = errors.New(ErrMsgBoxNotFound)

	// Category errors
	ErrCategoryNotFound = errors.New(ErrMsgCategoryNotFound)

	// Content errors
	ErrContentBlockNotFound = errors.New(ErrMsgContentBlockNotFound)
	ErrInvalidBlockType     = errors.New(ErrMsgInvalidBlockType)

	// Import errors
	ErrImportRow = errors.New(ErrMsgImportRow)

	// Provider errors
	ErrInvalidProvider = errors.New(ErrMsgInvalidProvider)

	// Database/System errors
	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)
	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
