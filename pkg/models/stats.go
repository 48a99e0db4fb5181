package models

import "time"

// Achievement represents a badge shown on the learner dashboard
type Achievement struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Earned      bool   `json:"earned"`
}

// DashboardStats summarizes a learner's activity for the dashboard screen
type DashboardStats struct {
	TotalLessons     int           `json:"totalLessons"`
	CompletedLessons int           `json:"completedLessons"`
	ProgressPercent  int           `json:"progressPercent"`
	StreakDays       int           `json:"streakDays"`
	TotalMinutes     int           `json:"totalMinutes"`
	Achievements     []Achievement `json:"achievements"`
}

// Activity types recorded for the dashboard feed
const (
	ActivityLesson      = "lesson"
	ActivityPractice    = "practice"
	ActivityAchievement = "achievement"
)

// Activity is a single entry in a learner's recent-activity feed
type Activity struct {
	ID         int       `json:"id" db:"id"`
	UserID     string    `json:"userId" db:"user_id"`
	Type       string    `json:"type" db:"type"`
	Title      string    `json:"title" db:"title"`
	Minutes    int       `json:"minutes" db:"minutes"`
	OccurredAt time.Time `json:"occurredAt" db:"occurred_at"`
}
