// Package authsvc defines the remote authentication-service boundary and
// its implementations. Implementations settle every call with a response;
// a non-nil error means the call itself faulted (transport failure), while
// a rejected login or signup is reported through Success=false plus Error.
package authsvc

import "context"

// UserPayload is the user record carried in a successful login response.
// Progress fields are optional; callers default them when omitted.
type UserPayload struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Avatar           string   `json:"avatar,omitempty"`
	LearningProgress int      `json:"learningProgress,omitempty"`
	CompletedLessons []string `json:"completedLessons,omitempty"`
}

// LoginResponse is the settlement of a login call
type LoginResponse struct {
	Success bool         `json:"success"`
	User    *UserPayload `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// SignupResponse is the settlement of a signup call
type SignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Service is the authentication API the session manager talks to
type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	Signup(ctx context.Context, name, email, password string) (*SignupResponse, error)
}

// Error strings reported by the bundled implementations
const (
	ErrMsgInvalidCredentials = "Invalid credentials"
	ErrMsgMissingFields      = "Missing required fields"
	ErrMsgEmailTaken         = "An account with this email already exists"
	MsgAccountCreated        = "Account created successfully!"
)
