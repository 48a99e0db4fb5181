package database

import (
	"fmt"

	"github.com/example/signlearn/pkg/models"
)

// LessonRepository handles database operations for the lesson catalog
type LessonRepository struct{}

// NewLessonRepository creates a new repository instance
func NewLessonRepository() *LessonRepository {
	return &LessonRepository{}
}

// GetAll returns all lessons ordered by category then id
func (r *LessonRepository) GetAll() ([]models.Lesson, error) {
	rows, err := DB.Query("SELECT id, title, description, category, difficulty, duration, video_url FROM lessons ORDER BY category, id")
	if err != nil {
		return nil, fmt.Errorf("failed to get lessons: %v", err)
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		var lesson models.Lesson
		err := rows.Scan(
			&lesson.ID,
			&lesson.Title,
			&lesson.Description,
			&lesson.Category,
			&lesson.Difficulty,
			&lesson.Duration,
			&lesson.VideoURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %v", err)
		}
		lessons = append(lessons, lesson)
	}
	return lessons, rows.Err()
}

// Upsert inserts a lesson or replaces an existing one with the same id
func (r *LessonRepository) Upsert(lesson *models.Lesson) error {
	var query string
	if DB.DriverName() == "postgres" {
		query = `
			INSERT INTO lessons (id, title, description, category, difficulty, duration, video_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				title = EXCLUDED.title,
				description = EXCLUDED.description,
				category = EXCLUDED.category,
				difficulty = EXCLUDED.difficulty,
				duration = EXCLUDED.duration,
				video_url = EXCLUDED.video_url,
				updated_at = NOW()
		`
	} else {
		query = `
			INSERT OR REPLACE INTO lessons (id, title, description, category, difficulty, duration, video_url)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`
	}

	_, err := DB.Exec(query,
		lesson.ID,
		lesson.Title,
		lesson.Description,
		lesson.Category,
		lesson.Difficulty,
		lesson.Duration,
		lesson.VideoURL,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert lesson: %v", err)
	}
	return nil
}

// Count returns the number of lessons in the catalog
func (r *LessonRepository) Count() (int, error) {
	var count int
	if err := DB.Get(&count, "SELECT COUNT(*) FROM lessons"); err != nil {
		return 0, fmt.Errorf("failed to count lessons: %v", err)
	}
	return count, nil
}
