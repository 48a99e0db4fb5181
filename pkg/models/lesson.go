package models

// Lesson categories shown as filters in the learning module
const (
	CategoryBasics       = "basics"
	CategoryIntermediate = "intermediate"
	CategoryAdvanced     = "advanced"
)

// Lesson represents a single ISL lesson in the catalog
type Lesson struct {
	ID          string `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Category    string `json:"category" db:"category"`
	Difficulty  string `json:"difficulty" db:"difficulty"` // Beginner, Intermediate or Advanced
	Duration    string `json:"duration" db:"duration"`     // human readable, e.g. "5 min"
	VideoURL    string `json:"videoUrl" db:"video_url"`
	Completed   bool   `json:"completed" db:"-"` // decorated per user, never stored
}
