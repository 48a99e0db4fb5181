// Package catalog serves the lesson and resource browser: an in-memory
// catalog with the search and filter behavior of the learning module and
// resources screens.
package catalog

import (
	"strings"

	"github.com/example/signlearn/pkg/models"
)

// LessonFilter narrows the lesson list. Empty or "all" fields match everything.
type LessonFilter struct {
	Search   string
	Category string
}

// ResourceFilter narrows the resource list. Empty or "all" fields match everything.
type ResourceFilter struct {
	Search     string
	Category   string
	Difficulty string
}

// Catalog holds the browsable lessons and resources
type Catalog struct {
	lessons   []models.Lesson
	resources []models.Resource
}

// New creates a catalog over the given lessons and resources
func New(lessons []models.Lesson, resources []models.Resource) *Catalog {
	return &Catalog{lessons: lessons, resources: resources}
}

// Default returns a catalog seeded with the built-in content
func Default() *Catalog {
	return New(SeedLessons(), SeedResources())
}

// Lessons returns the lessons matching the filter
func (c *Catalog) Lessons(f LessonFilter) []models.Lesson {
	search := strings.ToLower(f.Search)

	matched := make([]models.Lesson, 0, len(c.lessons))
	for _, lesson := range c.lessons {
		if !matchesValue(f.Category, lesson.Category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(lesson.Title), search) &&
			!strings.Contains(strings.ToLower(lesson.Description), search) {
			continue
		}
		matched = append(matched, lesson)
	}
	return matched
}

// Resources returns the resources matching the filter. The search term also
// matches against tags.
func (c *Catalog) Resources(f ResourceFilter) []models.Resource {
	search := strings.ToLower(f.Search)

	matched := make([]models.Resource, 0, len(c.resources))
	for _, resource := range c.resources {
		if !matchesValue(f.Category, resource.Category) {
			continue
		}
		if !matchesValue(f.Difficulty, resource.Difficulty) {
			continue
		}
		if search != "" && !resourceMatchesSearch(resource, search) {
			continue
		}
		matched = append(matched, resource)
	}
	return matched
}

// TotalLessons returns the number of lessons in the catalog
func (c *Catalog) TotalLessons() int {
	return len(c.lessons)
}

// Lesson returns the lesson with the given id, or nil
func (c *Catalog) Lesson(id string) *models.Lesson {
	for i := range c.lessons {
		if c.lessons[i].ID == id {
			lesson := c.lessons[i]
			return &lesson
		}
	}
	return nil
}

// MarkCompleted decorates lessons with the user's completion state
func MarkCompleted(lessons []models.Lesson, user *models.User) []models.Lesson {
	if user == nil {
		return lessons
	}
	for i := range lessons {
		lessons[i].Completed = user.HasCompleted(lessons[i].ID)
	}
	return lessons
}

func matchesValue(filter, value string) bool {
	return filter == "" || filter == "all" || strings.EqualFold(filter, value)
}

func resourceMatchesSearch(resource models.Resource, search string) bool {
	if strings.Contains(strings.ToLower(resource.Title), search) ||
		strings.Contains(strings.ToLower(resource.Description), search) {
		return true
	}
	for _, tag := range resource.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}
