package authsvc

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Mock simulates the remote authentication service. Calls settle after a
// fixed delay. Any non-empty credential pair logs in; accounts preloaded
// through Preload answer with their stored record, everyone else gets a
// fresh demo record with no progress. Signup accepts any complete payload.
type Mock struct {
	delay time.Duration

	mu       sync.Mutex
	accounts map[string]UserPayload
}

// NewMock creates a simulated service that settles after delay
func NewMock(delay time.Duration) *Mock {
	return &Mock{
		delay:    delay,
		accounts: make(map[string]UserPayload),
	}
}

// Preload registers a known account so later logins return its record
func (m *Mock) Preload(user UserPayload) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[strings.ToLower(user.Email)] = user
}

// Login settles after the configured delay. Empty credentials are rejected
// with Success=false; the call itself only faults when ctx is cancelled.
func (m *Mock) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	if err := m.settle(ctx); err != nil {
		return nil, err
	}

	if email == "" || password == "" {
		return &LoginResponse{Success: false, Error: ErrMsgInvalidCredentials}, nil
	}

	m.mu.Lock()
	account, known := m.accounts[strings.ToLower(email)]
	m.mu.Unlock()

	user := UserPayload{
		ID:    "demo-" + uuid.NewString(),
		Name:  "Demo User",
		Email: email,
	}
	if known {
		user = account
	}

	return &LoginResponse{
		Success: true,
		User:    &user,
		Token:   "demo-token-" + uuid.NewString(),
	}, nil
}

// Signup settles after the configured delay and rejects incomplete payloads
func (m *Mock) Signup(ctx context.Context, name, email, password string) (*SignupResponse, error) {
	if err := m.settle(ctx); err != nil {
		return nil, err
	}

	if name == "" || email == "" || password == "" {
		return &SignupResponse{Success: false, Error: ErrMsgMissingFields}, nil
	}
	return &SignupResponse{Success: true, Message: MsgAccountCreated}, nil
}

func (m *Mock) settle(ctx context.Context) error {
	if m.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(m.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
