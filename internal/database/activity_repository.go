package database

import (
	"fmt"
	"time"

	"github.com/example/signlearn/pkg/models"
)

// ActivityRepository handles database operations for the dashboard feed
type ActivityRepository struct{}

// NewActivityRepository creates a new repository instance
func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

// Record appends an activity entry for a user
func (r *ActivityRepository) Record(userID, activityType, title string, minutes int) error {
	query := DB.Rebind(`
		INSERT INTO user_activity (user_id, type, title, minutes, occurred_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if _, err := DB.Exec(query, userID, activityType, title, minutes, time.Now()); err != nil {
		return fmt.Errorf("failed to record activity: %v", err)
	}
	return nil
}

// RecentForUser returns the newest activity entries for a user
func (r *ActivityRepository) RecentForUser(userID string, limit int) ([]models.Activity, error) {
	query := DB.Rebind(`
		SELECT id, user_id, type, title, minutes, occurred_at
		FROM user_activity WHERE user_id = ?
		ORDER BY occurred_at DESC LIMIT ?
	`)

	var entries []models.Activity
	if err := DB.Select(&entries, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to get recent activity: %v", err)
	}
	return entries, nil
}

// ActiveDays returns the distinct days a user was active, newest first
func (r *ActivityRepository) ActiveDays(userID string) ([]time.Time, error) {
	query := DB.Rebind("SELECT occurred_at FROM user_activity WHERE user_id = ? ORDER BY occurred_at DESC")

	var stamps []time.Time
	if err := DB.Select(&stamps, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get active days: %v", err)
	}

	var days []time.Time
	seen := make(map[string]bool)
	for _, stamp := range stamps {
		day := stamp.Truncate(24 * time.Hour)
		key := day.Format("2006-01-02")
		if !seen[key] {
			seen[key] = true
			days = append(days, day)
		}
	}
	return days, nil
}

// TotalMinutes sums the recorded minutes for a user
func (r *ActivityRepository) TotalMinutes(userID string) (int, error) {
	var total int
	query := DB.Rebind("SELECT COALESCE(SUM(minutes), 0) FROM user_activity WHERE user_id = ?")
	if err := DB.Get(&total, query, userID); err != nil {
		return 0, fmt.Errorf("failed to sum activity minutes: %v", err)
	}
	return total, nil
}

// CountSince returns how many activity entries were recorded after t
func (r *ActivityRepository) CountSince(t time.Time) (int, error) {
	var count int
	query := DB.Rebind("SELECT COUNT(*) FROM user_activity WHERE occurred_at > ?")
	if err := DB.Get(&count, query, t); err != nil {
		return 0, fmt.Errorf("failed to count recent activity: %v", err)
	}
	return count, nil
}
