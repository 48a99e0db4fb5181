// Package scheduler runs background maintenance jobs for the platform.
package scheduler

import (
	"log"
	"time"

	"github.com/example/signlearn/internal/database"
	"github.com/go-co-op/gocron"
)

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	tokens    *database.TokenRepository
	activity  *database.ActivityRepository
}

// New creates a new scheduler instance
func New(tokens *database.TokenRepository, activity *database.ActivityRepository) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		tokens:    tokens,
		activity:  activity,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Sweep expired auth tokens hourly so the table doesn't grow unbounded
	s.scheduler.Every(1).Hour().Do(s.sweepExpiredTokens)

	// Daily activity rollup for the operator log
	s.scheduler.Every(1).Day().At("00:05").Do(s.logDailyActivity)

	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) sweepExpiredTokens() {
	removed, err := s.tokens.DeleteExpired()
	if err != nil {
		log.Printf("Error sweeping expired tokens: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Removed %d expired auth tokens", removed)
	}
}

func (s *Scheduler) logDailyActivity() {
	count, err := s.activity.CountSince(time.Now().AddDate(0, 0, -1))
	if err != nil {
		log.Printf("Error counting daily activity: %v", err)
		return
	}
	log.Printf("Learner activity in the last 24h: %d entries", count)
}
