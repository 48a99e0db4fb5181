package database

import (
	"encoding/json"
	"fmt"

	"github.com/example/signlearn/pkg/models"
)

// ResourceRepository handles database operations for learning resources
type ResourceRepository struct{}

// NewResourceRepository creates a new repository instance
func NewResourceRepository() *ResourceRepository {
	return &ResourceRepository{}
}

// GetAll returns all resources ordered by id
func (r *ResourceRepository) GetAll() ([]models.Resource, error) {
	rows, err := DB.Query("SELECT id, title, description, category, difficulty, type, url, thumbnail, duration, downloads, rating, tags FROM resources ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to get resources: %v", err)
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		var resource models.Resource
		var tagsJSON string
		err := rows.Scan(
			&resource.ID,
			&resource.Title,
			&resource.Description,
			&resource.Category,
			&resource.Difficulty,
			&resource.Type,
			&resource.URL,
			&resource.Thumbnail,
			&resource.Duration,
			&resource.Downloads,
			&resource.Rating,
			&tagsJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resource: %v", err)
		}

		resource.Tags = []string{}
		if tagsJSON != "" {
			if err := json.Unmarshal([]byte(tagsJSON), &resource.Tags); err != nil {
				return nil, fmt.Errorf("failed to parse resource tags: %v", err)
			}
		}
		resources = append(resources, resource)
	}
	return resources, rows.Err()
}

// Upsert inserts a resource or replaces an existing one with the same id
func (r *ResourceRepository) Upsert(resource *models.Resource) error {
	tags := resource.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("failed to marshal resource tags: %v", err)
	}

	var query string
	if DB.DriverName() == "postgres" {
		query = `
			INSERT INTO resources (id, title, description, category, difficulty, type, url, thumbnail, duration, downloads, rating, tags)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (id) DO UPDATE SET
				title = EXCLUDED.title,
				description = EXCLUDED.description,
				category = EXCLUDED.category,
				difficulty = EXCLUDED.difficulty,
				type = EXCLUDED.type,
				url = EXCLUDED.url,
				thumbnail = EXCLUDED.thumbnail,
				duration = EXCLUDED.duration,
				downloads = EXCLUDED.downloads,
				rating = EXCLUDED.rating,
				tags = EXCLUDED.tags,
				updated_at = NOW()
		`
	} else {
		query = `
			INSERT OR REPLACE INTO resources (id, title, description, category, difficulty, type, url, thumbnail, duration, downloads, rating, tags)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
	}

	_, err = DB.Exec(query,
		resource.ID,
		resource.Title,
		resource.Description,
		resource.Category,
		resource.Difficulty,
		resource.Type,
		resource.URL,
		resource.Thumbnail,
		resource.Duration,
		resource.Downloads,
		resource.Rating,
		string(tagsJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert resource: %v", err)
	}
	return nil
}

// Count returns the number of resources in the catalog
func (r *ResourceRepository) Count() (int, error) {
	var count int
	if err := DB.Get(&count, "SELECT COUNT(*) FROM resources"); err != nil {
		return 0, fmt.Errorf("failed to count resources: %v", err)
	}
	return count, nil
}
