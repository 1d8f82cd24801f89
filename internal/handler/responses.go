package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err with the operation name and writes the
// mapped user-facing message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", opName, "error", err)
	}
	respondError(w, status, msg)
}

type errorMapping struct {
	err    error
	status int
	msg    string
}

// serviceErrors is checked in order; the first match wins
var serviceErrors = []errorMapping{
	{domain.ErrSpinInProgress, http.StatusConflict, ErrMsgSpinInProgressError},
	{domain.ErrSpinCancelled, http.StatusConflict, ErrMsgSpinCancelledError},
	{domain.ErrOptionsChanged, http.StatusConflict, ErrMsgOptionsChangedError},
	{domain.ErrServiceClosed, http.StatusServiceUnavailable, ErrMsgShuttingDownError},
	{domain.ErrOptionNotFound, http.StatusNotFound, ErrMsgOptionNotFoundError},
	{domain.ErrSampleNotFound, http.StatusNotFound, ErrMsgSampleNotFoundError},
	{domain.ErrAdUnitNotFound, http.StatusNotFound, ErrMsgAdUnitNotFoundError},
	{domain.ErrAdsNotInitialized, http.StatusServiceUnavailable, ErrMsgAdsNotInitializedError},
	{domain.ErrUnknownPlacement, http.StatusBadRequest, ErrMsgUnknownPlacementError},
	{domain.ErrInvalidPublisherID, http.StatusBadRequest, ErrMsgInvalidPublisherIDError},
	{domain.ErrEmptyOption, http.StatusBadRequest, ErrMsgEmptyOptionError},
	{domain.ErrDuplicateOption, http.StatusBadRequest, ErrMsgDuplicateOptionError},
	{domain.ErrMaxOptionsReached, http.StatusBadRequest, ErrMsgMaxOptionsError},
	{domain.ErrMinOptionsReached, http.StatusBadRequest, ErrMsgMinOptionsError},
	{domain.ErrOptionTextTooLong, http.StatusBadRequest, ErrMsgOptionTooLongError},
	{domain.ErrInvalidWeight, http.StatusBadRequest, ErrMsgInvalidWeightError},
	{domain.ErrInvalidColor, http.StatusBadRequest, ErrMsgInvalidColorError},
	{domain.ErrInsufficientOptions, http.StatusBadRequest, ErrMsgInsufficientOptionsErr},
	{domain.ErrTooManyOptions, http.StatusBadRequest, ErrMsgTooManyOptionsError},
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Unknown errors become a generic 500 so internals never leak.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			return m.status, m.msg
		}
	}

	if domain.IsValidationError(err) {
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
