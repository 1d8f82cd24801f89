package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."

	ErrMsgEmptyOptionError        = "Please enter an option"
	ErrMsgDuplicateOptionError    = "That option is already on the wheel"
	ErrMsgMaxOptionsError         = "Maximum 20 options allowed"
	ErrMsgMinOptionsError         = "The wheel needs at least 2 options"
	ErrMsgOptionTooLongError      = "Option text is too long"
	ErrMsgInvalidWeightError      = "Weight must be greater than zero and at most 100"
	ErrMsgInvalidColorError       = "Color must look like #FF6B6B"
	ErrMsgInsufficientOptionsErr  = "Please add at least 2 options to spin!"
	ErrMsgTooManyOptionsError     = "Too many options to spin"
	ErrMsgInvalidInputError       = "Invalid request. Please check your inputs."
	ErrMsgOptionNotFoundError     = "Option not found"
	ErrMsgSampleNotFoundError     = "Sample set not found"
	ErrMsgSpinInProgressError     = "The wheel is already spinning"
	ErrMsgSpinCancelledError      = "The spin was cancelled before it finished"
	ErrMsgOptionsChangedError     = "The options changed, please spin again"
	ErrMsgShuttingDownError       = "Server is shutting down"
	ErrMsgAdsNotInitializedError  = "Ads are not enabled"
	ErrMsgUnknownPlacementError   = "Unknown ad placement"
	ErrMsgInvalidPublisherIDError = "Invalid ad publisher id"
	ErrMsgAdUnitNotFoundError     = "Ad unit not found"
)

// Success messages for API responses
const (
	MsgOptionRemoved   = "Option removed"
	MsgOptionUpdated   = "Option updated"
	MsgOptionsReplaced = "Options replaced"
	MsgOptionsCleared  = "All options cleared"
	MsgSampleLoaded    = "Sample set loaded"
	MsgSpinReset       = "Wheel reset"
	MsgHistoryCleared  = "History cleared"
	MsgAdUnitRemoved   = "Ad unit removed"
)

// Spin rejection reasons recorded in metrics
const (
	RejectReasonInProgress     = "in_progress"
	RejectReasonInsufficient   = "insufficient_options"
	RejectReasonCancelled      = "cancelled"
	RejectReasonShutdown       = "shutdown"
	RejectReasonOptionsChanged = "options_changed"
	RejectReasonOther          = "other"
)

// spinSnapshotAttempts bounds how often a spin is retried when the option
// list changes between reading it and starting the wheel
const spinSnapshotAttempts = 3

// Log messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgServiceError    = "Service call failed"
	LogMsgSpinRejected    = "Spin request rejected"
)
