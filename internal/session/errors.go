package session

import "errors"

// Code classifies an authentication failure for the UI
type Code int

const (
	// CodeInvalidCredentials means the service rejected the email/password pair
	CodeInvalidCredentials Code = iota
	// CodeMissingFields means the service rejected an incomplete signup payload
	CodeMissingFields
	// CodeSignupRejected means the service declined the registration for
	// another reason, e.g. the email is already taken
	CodeSignupRejected
	// CodeServiceUnavailable means the call boundary itself faulted
	CodeServiceUnavailable
)

// AuthError is a typed failure returned by Login and Signup. The message is
// meant to be rendered inline by the UI.
type AuthError struct {
	Code    Code
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// ErrOperationInFlight is returned when a login or signup is attempted
// while another one is still running
var ErrOperationInFlight = errors.New("another login or signup is already in flight")

// Generic retry-suggesting messages for faults at the call boundary
const (
	msgLoginFailed  = "Login failed. Please try again."
	msgSignupFailed = "Signup failed. Please try again."
)
