package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/example/signlearn/internal/catalog"
	"github.com/example/signlearn/internal/progress"
	"github.com/example/signlearn/internal/session"
	"github.com/example/signlearn/pkg/models"
)

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type progressRequest struct {
	LessonID string `json:"lessonId"`
	Progress int    `json:"progress"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	// Presence-only flag written for the login form; nothing reads it back
	if req.RememberMe {
		if err := s.sessions.RememberMe(true); err != nil {
			log.Printf("Error persisting remember-me flag: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    user,
	})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.sessions.Signup(r.Context(), req.Name, req.Email, req.Password); err != nil {
		writeAuthError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Account created successfully!",
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Revoke the server-side token before the session forgets it
	if s.tokens != nil {
		if token := s.sessions.Token(); token != "" {
			if err := s.tokens.Delete(token); err != nil {
				log.Printf("Error revoking auth token: %v", err)
			}
		}
	}

	if err := s.sessions.Logout(); err != nil {
		log.Printf("Error during logout: %v", err)
		writeError(w, http.StatusInternalServerError, "Logout failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":            s.sessions.CurrentUser(),
		"isAuthenticated": s.sessions.IsAuthenticated(),
		"isLoading":       s.sessions.IsLoading(),
	})
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	if !s.sessions.IsAuthenticated() {
		writeError(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	var req progressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.LessonID == "" {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.sessions.UpdateProgress(req.LessonID, req.Progress); err != nil {
		log.Printf("Error updating progress: %v", err)
		writeError(w, http.StatusInternalServerError, "Could not save progress")
		return
	}

	s.syncAccountProgress()
	s.recordLessonActivity(req.LessonID)
	w.WriteHeader(http.StatusNoContent)
}

// syncAccountProgress mirrors the session's progress into the account row
// so a later login from another device reports the same state. Account
// progress follows the same monotonic rules as the session.
func (s *Server) syncAccountProgress() {
	if s.accounts == nil {
		return
	}
	user := s.sessions.CurrentUser()
	if user == nil {
		return
	}

	account, err := s.accounts.GetByID(user.ID)
	if err != nil {
		log.Printf("Error loading account for progress sync: %v", err)
		return
	}

	account.LearningProgress = progress.Advance(account.LearningProgress, user.LearningProgress)
	for _, lessonID := range user.CompletedLessons {
		if !account.HasCompleted(lessonID) {
			account.CompletedLessons = append(account.CompletedLessons, lessonID)
		}
	}

	if err := s.accounts.UpdateProgress(account); err != nil {
		log.Printf("Error syncing account progress: %v", err)
	}
}

func (s *Server) handleLessons(w http.ResponseWriter, r *http.Request) {
	filter := catalog.LessonFilter{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}

	lessons := s.catalog.Lessons(filter)
	lessons = catalog.MarkCompleted(lessons, s.sessions.CurrentUser())
	writeJSON(w, http.StatusOK, map[string]interface{}{"lessons": lessons})
}

func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	filter := catalog.ResourceFilter{
		Search:     r.URL.Query().Get("search"),
		Category:   r.URL.Query().Get("category"),
		Difficulty: r.URL.Query().Get("difficulty"),
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"resources": s.catalog.Resources(filter),
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user := s.sessions.CurrentUser()
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	completed := len(user.CompletedLessons)
	total := s.catalog.TotalLessons()

	stats := models.DashboardStats{
		TotalLessons:     total,
		CompletedLessons: completed,
		ProgressPercent:  progress.CompletionPercent(completed, total),
	}

	var recent []models.Activity
	if s.activity != nil {
		if days, err := s.activity.ActiveDays(user.ID); err == nil {
			stats.StreakDays = progress.StreakDays(days, time.Now())
		} else {
			log.Printf("Error loading active days: %v", err)
		}
		if minutes, err := s.activity.TotalMinutes(user.ID); err == nil {
			stats.TotalMinutes = minutes
		} else {
			log.Printf("Error loading study minutes: %v", err)
		}
		if entries, err := s.activity.RecentForUser(user.ID, 10); err == nil {
			recent = entries
		} else {
			log.Printf("Error loading recent activity: %v", err)
		}
	}
	stats.Achievements = achievements(completed, stats.StreakDays)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stats":          stats,
		"recentActivity": recent,
	})
}

// recordLessonActivity appends a dashboard entry for a completed lesson
func (s *Server) recordLessonActivity(lessonID string) {
	if s.activity == nil {
		return
	}
	user := s.sessions.CurrentUser()
	if user == nil {
		return
	}

	title := lessonID
	minutes := 0
	if lesson := s.catalog.Lesson(lessonID); lesson != nil {
		title = lesson.Title
		minutes = parseMinutes(lesson.Duration)
	}
	if err := s.activity.Record(user.ID, models.ActivityLesson, title, minutes); err != nil {
		log.Printf("Error recording activity: %v", err)
	}
}

// achievements evaluates the dashboard badges against the learner's state
func achievements(completed, streak int) []models.Achievement {
	return []models.Achievement{
		{ID: 1, Title: "First Steps", Description: "Completed your first lesson", Icon: "🎯", Earned: completed >= 1},
		{ID: 2, Title: "Week Warrior", Description: "Studied for 7 consecutive days", Icon: "🔥", Earned: streak >= 7},
		{ID: 3, Title: "Sign Master", Description: "Completed 10 lessons", Icon: "🏆", Earned: completed >= 10},
		{ID: 4, Title: "Dedication", Description: "Studied for 30 days", Icon: "💪", Earned: streak >= 30},
	}
}

// parseMinutes extracts the leading minute count from a duration label
// like "5 min" or "30 min read"
func parseMinutes(duration string) int {
	fields := strings.Fields(duration)
	if len(fields) == 0 {
		return 0
	}
	minutes, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return minutes
}

func writeAuthError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrOperationInFlight) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	var authErr *session.AuthError
	if errors.As(err, &authErr) {
		status := http.StatusUnauthorized
		switch authErr.Code {
		case session.CodeMissingFields:
			status = http.StatusBadRequest
		case session.CodeSignupRejected:
			status = http.StatusConflict
		case session.CodeServiceUnavailable:
			status = http.StatusServiceUnavailable
		}
		writeError(w, status, authErr.Message)
		return
	}

	writeError(w, http.StatusInternalServerError, "Unexpected error")
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
