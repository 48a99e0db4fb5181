package models

// User represents a signed-in learner of the platform
type User struct {
	ID               string   `json:"id" db:"id"`
	Name             string   `json:"name" db:"name"`
	Email            string   `json:"email" db:"email"`
	Avatar           string   `json:"avatar,omitempty" db:"avatar"` // optional profile image reference
	LearningProgress int      `json:"learningProgress" db:"learning_progress"`
	CompletedLessons []string `json:"completedLessons" db:"completed_lessons"`
}

// HasCompleted reports whether the lesson is already in the user's completed set
func (u *User) HasCompleted(lessonID string) bool {
	for _, id := range u.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the user so callers cannot mutate shared state
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.CompletedLessons = append([]string(nil), u.CompletedLessons...)
	return &clone
}
