package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Catalog error messages
	ErrMsgListBoxesFailed = "Failed to list boxes"
	ErrMsgSearchFailed    = "Failed to perform search"
	ErrMsgGetBoxFailed    = "Failed to get box"
	ErrMsgCreateBoxFailed = "Failed to create box"
	ErrMsgUpdateBoxFailed = "Failed to update box"
	ErrMsgDeleteBoxFailed = "Failed to delete box"
	ErrMsgInvalidBoxID    = "Invalid box ID"
	ErrMsgInvalidPrice    = "Invalid price parameter"

	// Portfolio error messages
	ErrMsgAnalyzeFailed = "Failed to analyze portfolio"

	// Slug resolution error messages
	ErrMsgResolveSlugFailed = "Failed to resolve slug"

	// Category error messages
	ErrMsgListCategoriesFailed = "Failed to list categories"
	ErrMsgInvalidCategoryID    = "Invalid category ID"

	// Operator error messages
	ErrMsgListOperatorsFailed  = "Failed to list operators"
	ErrMsgGetOperatorFailed    = "Failed to get operator"
	ErrMsgCreateOperatorFailed = "Failed to create operator"
	ErrMsgUpdateOperatorFailed = "Failed to update operator"
	ErrMsgDeleteOperatorFailed = "Failed to delete operator"
	ErrMsgInvalidPublishTime   = "Invalid publish time"

	// Content error messages
	ErrMsgGetContentFailed = "Failed to get content blocks"
	ErrMsgInvalidBlockID   = "Invalid block ID"

	// Import error messages
	ErrMsgImportFailed      = "Failed to import feed"
	ErrMsgMissingImportFile = "Missing CSV file in request"
)

// Success messages for API responses
const (
	MsgBoxDeletedSuccess      = "Box deleted successfully"
	MsgOperatorDeletedSuccess = "Operator deleted successfully"
	MsgCategoryDeletedSuccess = "Category deleted successfully"
	MsgBlockDeletedSuccess    = "Content block deleted successfully"
	MsgStatusChangedSuccess   = "Status changed successfully"
	MsgPublishScheduled       = "Publish scheduled successfully"
	MsgBlocksReordered        = "Content blocks reordered successfully"
)
