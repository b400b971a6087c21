package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user with this email already exists")
)

// Password reset errors
var (
	ErrResetCodeInvalid = errors.New("invalid or expired otp")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Match errors
var (
	ErrMatchNotFound       = errors.New("match not found")
	ErrMatchNotOwner       = errors.New("not authorized to modify this match")
	ErrMatchNotUpcoming    = errors.New("cannot join completed or cancelled matches")
	ErrMatchFull           = errors.New("match is full")
	ErrAlreadyJoined       = errors.New("already joined this match")
	ErrNotJoined           = errors.New("not joined this match")
	ErrCreatorLeave        = errors.New("creator cannot leave their own match")
	ErrCreatorRemove       = errors.New("creator cannot be removed from their own match")
	ErrParticipantNotFound = errors.New("participant not found in match")
	ErrDateNotFuture       = errors.New("match date must be in the future")
)

// Team errors
var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamNotOwner      = errors.New("only the team creator can do this")
	ErrAlreadyRequested  = errors.New("already a member or have a pending request")
	ErrNoPendingRequest  = errors.New("no pending request from this user")
	ErrNotTeamMember     = errors.New("user is not a member of the team")
	ErrTeamOwnerLeave    = errors.New("team owner cannot leave the team")
	ErrTeamOwnerRemove   = errors.New("team owner cannot be removed")
	ErrNoTeamMembership  = errors.New("not a member of any team")
)

// Media errors
var (
	ErrMediaKind     = errors.New("invalid media type")
	ErrMediaFileType = errors.New("unsupported file type")
	ErrMediaTooLarge = errors.New("file size too large")
)

// ValidationError reports malformed or missing input, listing the offending
// fields and why each one failed.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// Add records a failed field. Returns the error for chaining.
func (e *ValidationError) Add(field, reason string) *ValidationError {
	e.Fields[field] = reason
	return e
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool { return len(e.Fields) > 0 }

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, f := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidation unwraps a ValidationError if err carries one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
