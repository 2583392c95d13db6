package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Wallet errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Lookup errors
	ErrMsgNotFound          = "not found"
	ErrMsgPlayerNotFound    = "player not found"
	ErrMsgSkillNotFound     = "skill not found"
	ErrMsgSongNotFound      = "song not found"
	ErrMsgSetlistNotFound   = "setlist not found"
	ErrMsgRecordingNotFound = "recording not found"
	ErrMsgReleaseNotFound   = "release not found"
	ErrMsgGigNotFound       = "gig not found"
	ErrMsgEquipmentNotFound = "equipment not found"
	ErrMsgVenueNotFound     = "venue not found"
	ErrMsgCityNotFound      = "city not found"
	ErrMsgNoHousing         = "no current housing"

	// Transition errors
	ErrMsgInvalidTransition = "invalid transition"

	// Validation errors
	ErrMsgValidationFailed = "validation failed"
)

// Common domain errors.
// Every mutating operation fails with one of the four root errors below
// (possibly wrapped for context); callers match with errors.Is.
var (
	// ErrInsufficientFunds is returned by any operation that cannot cover
	// its cost from the wallet balance.
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// ErrNotFound is the root of all unknown-identifier failures.
	ErrNotFound = errors.New(ErrMsgNotFound)

	// ErrInvalidTransition is returned when an operation is structurally
	// valid but not allowed from the current state (re-recording a song,
	// releasing a released recording, booking a past-dated gig, a housing
	// move in the wrong direction, insufficient fame).
	ErrInvalidTransition = errors.New(ErrMsgInvalidTransition)

	// ErrValidationFailed covers below-minimum inputs (track counts,
	// setlist song counts, non-positive amounts).
	ErrValidationFailed = errors.New(ErrMsgValidationFailed)
)

// Specific lookup errors, all matching ErrNotFound.
var (
	ErrPlayerNotFound    = wrapNotFound(ErrMsgPlayerNotFound)
	ErrSkillNotFound     = wrapNotFound(ErrMsgSkillNotFound)
	ErrSongNotFound      = wrapNotFound(ErrMsgSongNotFound)
	ErrSetlistNotFound   = wrapNotFound(ErrMsgSetlistNotFound)
	ErrRecordingNotFound = wrapNotFound(ErrMsgRecordingNotFound)
	ErrReleaseNotFound   = wrapNotFound(ErrMsgReleaseNotFound)
	ErrGigNotFound       = wrapNotFound(ErrMsgGigNotFound)
	ErrEquipmentNotFound = wrapNotFound(ErrMsgEquipmentNotFound)
	ErrVenueNotFound     = wrapNotFound(ErrMsgVenueNotFound)
	ErrCityNotFound      = wrapNotFound(ErrMsgCityNotFound)
	ErrNoHousing         = wrapNotFound(ErrMsgNoHousing)
)

type notFoundError struct {
	msg string
}

func (e *notFoundError) Error() string { return e.msg }

func (e *notFoundError) Unwrap() error { return ErrNotFound }

func wrapNotFound(msg string) error {
	return &notFoundError{msg: msg}
}
