package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidUUIDParam  = "Invalid %s parameter"

	ErrMsgNewGameFailed   = "Failed to start a new game"
	ErrMsgLoadGameFailed  = "Failed to load game"
	ErrMsgGetStateFailed  = "Failed to read game state"
	ErrMsgTickFailed      = "Failed to advance simulation"
	ErrMsgGetCatalogFailed = "Failed to read catalog"
)

// Success messages for API responses.
const (
	MsgActivityCleared = "Activity cleared"
	MsgJobQuit         = "Job quit"
	MsgGigCancelled    = "Gig cancelled and booking cost refunded"
)
