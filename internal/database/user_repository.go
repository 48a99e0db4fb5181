package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/example/signlearn/pkg/models"
)

// ErrUserNotFound is returned when no account matches the lookup
var ErrUserNotFound = errors.New("user not found")

// UserRepository handles database operations for learner accounts
type UserRepository struct{}

// NewUserRepository creates a new repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const userColumns = "id, name, email, avatar, learning_progress, completed_lessons"

// GetByEmail returns the account and its password hash for an email
func (r *UserRepository) GetByEmail(email string) (*models.User, string, error) {
	query := DB.Rebind("SELECT " + userColumns + ", password_hash FROM users WHERE email = ?")

	var user models.User
	var completedJSON, passwordHash string
	err := DB.QueryRow(query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Avatar,
		&user.LearningProgress,
		&completedJSON,
		&passwordHash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrUserNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user by email: %v", err)
	}

	if err := unmarshalCompleted(completedJSON, &user); err != nil {
		return nil, "", err
	}
	return &user, passwordHash, nil
}

// GetByID returns the account for an id
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	query := DB.Rebind("SELECT " + userColumns + " FROM users WHERE id = ?")

	var user models.User
	var completedJSON string
	err := DB.QueryRow(query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Avatar,
		&user.LearningProgress,
		&completedJSON,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %v", err)
	}

	if err := unmarshalCompleted(completedJSON, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new account with a bcrypt password hash
func (r *UserRepository) Create(user *models.User, passwordHash string) error {
	completedJSON, err := marshalCompleted(user)
	if err != nil {
		return err
	}

	query := DB.Rebind(`
		INSERT INTO users (id, name, email, password_hash, avatar, learning_progress, completed_lessons)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	_, err = DB.Exec(query,
		user.ID,
		user.Name,
		user.Email,
		passwordHash,
		user.Avatar,
		user.LearningProgress,
		completedJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %v", err)
	}
	return nil
}

// UpdateProgress persists the progress fields of an account
func (r *UserRepository) UpdateProgress(user *models.User) error {
	completedJSON, err := marshalCompleted(user)
	if err != nil {
		return err
	}

	query := DB.Rebind(`
		UPDATE users SET
			learning_progress = ?,
			completed_lessons = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`)
	_, err = DB.Exec(query, user.LearningProgress, completedJSON, user.ID)
	if err != nil {
		return fmt.Errorf("failed to update user progress: %v", err)
	}
	return nil
}

// EmailExists reports whether an account already uses the email
func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int
	query := DB.Rebind("SELECT COUNT(*) FROM users WHERE email = ?")
	if err := DB.Get(&count, query, email); err != nil {
		return false, fmt.Errorf("failed to check email: %v", err)
	}
	return count > 0, nil
}

func marshalCompleted(user *models.User) (string, error) {
	completed := user.CompletedLessons
	if completed == nil {
		completed = []string{}
	}
	data, err := json.Marshal(completed)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completed lessons: %v", err)
	}
	return string(data), nil
}

func unmarshalCompleted(completedJSON string, user *models.User) error {
	user.CompletedLessons = []string{}
	if completedJSON == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(completedJSON), &user.CompletedLessons); err != nil {
		return fmt.Errorf("failed to parse completed lessons: %v", err)
	}
	return nil
}
