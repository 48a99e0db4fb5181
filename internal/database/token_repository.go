package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrTokenNotFound is returned when a token is unknown or expired
var ErrTokenNotFound = errors.New("auth token not found")

// TokenRepository handles database operations for issued auth tokens
type TokenRepository struct{}

// NewTokenRepository creates a new repository instance
func NewTokenRepository() *TokenRepository {
	return &TokenRepository{}
}

// Save records an issued token with its expiry
func (r *TokenRepository) Save(token, userID string, expiresAt time.Time) error {
	query := DB.Rebind("INSERT INTO auth_tokens (token, user_id, expires_at) VALUES (?, ?, ?)")
	if _, err := DB.Exec(query, token, userID, expiresAt); err != nil {
		return fmt.Errorf("failed to save token: %v", err)
	}
	return nil
}

// UserFor returns the user id behind a live token
func (r *TokenRepository) UserFor(token string) (string, error) {
	var userID string
	query := DB.Rebind("SELECT user_id FROM auth_tokens WHERE token = ? AND expires_at > ?")
	err := DB.Get(&userID, query, token, time.Now())
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up token: %v", err)
	}
	return userID, nil
}

// Delete removes a token
func (r *TokenRepository) Delete(token string) error {
	query := DB.Rebind("DELETE FROM auth_tokens WHERE token = ?")
	if _, err := DB.Exec(query, token); err != nil {
		return fmt.Errorf("failed to delete token: %v", err)
	}
	return nil
}

// DeleteExpired removes tokens past their expiry and returns how many went
func (r *TokenRepository) DeleteExpired() (int64, error) {
	query := DB.Rebind("DELETE FROM auth_tokens WHERE expires_at <= ?")
	result, err := DB.Exec(query, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted tokens: %v", err)
	}
	return affected, nil
}
