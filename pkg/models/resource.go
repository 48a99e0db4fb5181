package models

// Resource represents a downloadable or viewable learning resource
type Resource struct {
	ID          int      `json:"id" db:"id"`
	Title       string   `json:"title" db:"title"`
	Description string   `json:"description" db:"description"`
	Category    string   `json:"category" db:"category"`     // dictionary, grammar, practice, conversation, culture, fingerspelling
	Difficulty  string   `json:"difficulty" db:"difficulty"` // beginner, intermediate, advanced
	Type        string   `json:"type" db:"type"`             // video, pdf, interactive, article
	URL         string   `json:"url" db:"url"`
	Thumbnail   string   `json:"thumbnail" db:"thumbnail"`
	Duration    string   `json:"duration" db:"duration"`
	Downloads   int      `json:"downloads" db:"downloads"`
	Rating      float64  `json:"rating" db:"rating"`
	Tags        []string `json:"tags" db:"tags"`
}
