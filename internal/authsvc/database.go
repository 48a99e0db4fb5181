package authsvc

import (
	"context"
	"crypto/rand"
	"errors"
	"time"

	"github.com/example/signlearn/internal/database"
	"github.com/example/signlearn/pkg/models"
	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

// Database implements Service against real learner accounts. Signup creates
// an account with a bcrypt password hash; login verifies the hash, loads
// the stored progress and issues a signed JWT recorded for later sweeping.
type Database struct {
	users    *database.UserRepository
	tokens   *database.TokenRepository
	secret   string
	tokenTTL time.Duration
}

// NewDatabase creates a database-backed authentication service
func NewDatabase(users *database.UserRepository, tokens *database.TokenRepository, secret string, tokenTTL time.Duration) *Database {
	return &Database{
		users:    users,
		tokens:   tokens,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Login verifies credentials and issues a token for the account
func (d *Database) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	if email == "" || password == "" {
		return &LoginResponse{Success: false, Error: ErrMsgInvalidCredentials}, nil
	}

	user, passwordHash, err := d.users.GetByEmail(email)
	if errors.Is(err, database.ErrUserNotFound) {
		return &LoginResponse{Success: false, Error: ErrMsgInvalidCredentials}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return &LoginResponse{Success: false, Error: ErrMsgInvalidCredentials}, nil
	}

	token, err := IssueToken(user.ID, user.Email, d.secret, d.tokenTTL)
	if err != nil {
		return nil, err
	}
	if err := d.tokens.Save(token, user.ID, time.Now().Add(d.tokenTTL)); err != nil {
		return nil, err
	}

	return &LoginResponse{
		Success: true,
		User: &UserPayload{
			ID:               user.ID,
			Name:             user.Name,
			Email:            user.Email,
			Avatar:           user.Avatar,
			LearningProgress: user.LearningProgress,
			CompletedLessons: user.CompletedLessons,
		},
		Token: token,
	}, nil
}

// Signup registers a new account. It does not log the account in.
func (d *Database) Signup(ctx context.Context, name, email, password string) (*SignupResponse, error) {
	if name == "" || email == "" || password == "" {
		return &SignupResponse{Success: false, Error: ErrMsgMissingFields}, nil
	}

	taken, err := d.users.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return &SignupResponse{Success: false, Error: ErrMsgEmailTaken}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := newAccount(name, email)
	if err := d.users.Create(user, string(hash)); err != nil {
		return nil, err
	}

	return &SignupResponse{Success: true, Message: MsgAccountCreated}, nil
}

// newAccount builds a fresh account with a ULID id and zeroed progress
func newAccount(name, email string) *models.User {
	return &models.User{
		ID:               ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String(),
		Name:             name,
		Email:            email,
		CompletedLessons: []string{},
	}
}
