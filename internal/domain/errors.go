package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Option list validation
	ErrMsgEmptyOption         = "option text cannot be empty"
	ErrMsgDuplicateOption     = "duplicate options are not allowed"
	ErrMsgMaxOptionsReached   = "maximum 20 options allowed"
	ErrMsgMinOptionsReached   = "minimum 2 options required"
	ErrMsgOptionTextTooLong   = "option text is too long"
	ErrMsgInvalidWeight       = "option weight must be greater than zero"
	ErrMsgInvalidColor        = "option color must be a hex color like #FF6B6B"
	ErrMsgOptionNotFound      = "option not found"
	ErrMsgSampleNotFound      = "sample set not found"
	ErrMsgInsufficientOptions = "please add at least 2 options to spin"
	ErrMsgTooManyOptions      = "too many options to spin"

	// Spin lifecycle
	ErrMsgSpinInProgress = "a spin is already in progress"
	ErrMsgSpinCancelled  = "spin was cancelled"
	ErrMsgServiceClosed  = "service is shutting down"
	ErrMsgOptionsChanged = "options changed before the spin started"

	// Persistence
	ErrMsgStateNotFound  = "stored state not found"
	ErrMsgStateMalformed = "stored state is malformed"

	// Ads
	ErrMsgAdsNotInitialized  = "ads are not initialized"
	ErrMsgUnknownPlacement   = "unknown ad placement"
	ErrMsgInvalidPublisherID = "invalid ad publisher id"
	ErrMsgAdUnitNotFound     = "ad unit not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Option list validation
	ErrEmptyOption         = errors.New(ErrMsgEmptyOption)
	ErrDuplicateOption     = errors.New(ErrMsgDuplicateOption)
	ErrMaxOptionsReached   = errors.New(ErrMsgMaxOptionsReached)
	ErrMinOptionsReached   = errors.New(ErrMsgMinOptionsReached)
	ErrOptionTextTooLong   = errors.New(ErrMsgOptionTextTooLong)
	ErrInvalidWeight       = errors.New(ErrMsgInvalidWeight)
	ErrInvalidColor        = errors.New(ErrMsgInvalidColor)
	ErrOptionNotFound      = errors.New(ErrMsgOptionNotFound)
	ErrSampleNotFound      = errors.New(ErrMsgSampleNotFound)
	ErrInsufficientOptions = errors.New(ErrMsgInsufficientOptions)
	ErrTooManyOptions      = errors.New(ErrMsgTooManyOptions)

	// Spin lifecycle
	ErrSpinInProgress = errors.New(ErrMsgSpinInProgress)
	ErrSpinCancelled  = errors.New(ErrMsgSpinCancelled)
	ErrServiceClosed  = errors.New(ErrMsgServiceClosed)
	ErrOptionsChanged = errors.New(ErrMsgOptionsChanged)

	// Persistence
	ErrStateNotFound  = errors.New(ErrMsgStateNotFound)
	ErrStateMalformed = errors.New(ErrMsgStateMalformed)

	// Ads
	ErrAdsNotInitialized  = errors.New(ErrMsgAdsNotInitialized)
	ErrUnknownPlacement   = errors.New(ErrMsgUnknownPlacement)
	ErrInvalidPublisherID = errors.New(ErrMsgInvalidPublisherID)
	ErrAdUnitNotFound     = errors.New(ErrMsgAdUnitNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

var validationErrors = []error{
	ErrEmptyOption,
	ErrDuplicateOption,
	ErrMaxOptionsReached,
	ErrMinOptionsReached,
	ErrOptionTextTooLong,
	ErrInvalidWeight,
	ErrInvalidColor,
	ErrInsufficientOptions,
	ErrTooManyOptions,
	ErrInvalidInput,
}

// IsValidationError reports whether err is caused by rejected user input
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// PersistenceError describes a failed read or write of stored state.
// These are recovered from by the stores and never surfaced to callers.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps err with the failed operation and storage key
func NewPersistenceError(op, key string, err error) error {
	return &PersistenceError{Op: op, Key: key, Err: err}
}
