package catalog

import (
	"testing"

	"github.com/example/signlearn/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonsUnfiltered(t *testing.T) {
	c := Default()

	lessons := c.Lessons(LessonFilter{})
	assert.Len(t, lessons, c.TotalLessons())
}

func TestLessonsCategoryFilter(t *testing.T) {
	c := Default()

	basics := c.Lessons(LessonFilter{Category: models.CategoryBasics})
	require.NotEmpty(t, basics)
	for _, lesson := range basics {
		assert.Equal(t, models.CategoryBasics, lesson.Category)
	}

	// "all" behaves like no filter
	assert.Len(t, c.Lessons(LessonFilter{Category: "all"}), c.TotalLessons())
}

func TestLessonsSearchMatchesTitleAndDescription(t *testing.T) {
	c := Default()

	byTitle := c.Lessons(LessonFilter{Search: "goodbye"})
	require.Len(t, byTitle, 1)
	assert.Equal(t, "basic-1", byTitle[0].ID)

	byDescription := c.Lessons(LessonFilter{Search: "count"})
	require.Len(t, byDescription, 1)
	assert.Equal(t, "basic-3", byDescription[0].ID)

	assert.Empty(t, c.Lessons(LessonFilter{Search: "no such lesson"}))
}

func TestLessonsSearchAndCategoryCombine(t *testing.T) {
	c := Default()

	lessons := c.Lessons(LessonFilter{Search: "signs", Category: models.CategoryBasics})
	require.Len(t, lessons, 1)
	assert.Equal(t, "basic-2", lessons[0].ID)
}

func TestResourcesFilters(t *testing.T) {
	c := Default()

	all := c.Resources(ResourceFilter{})
	assert.Len(t, all, 6)

	beginner := c.Resources(ResourceFilter{Difficulty: "beginner"})
	require.NotEmpty(t, beginner)
	for _, r := range beginner {
		assert.Equal(t, "beginner", r.Difficulty)
	}

	grammar := c.Resources(ResourceFilter{Category: "grammar"})
	require.Len(t, grammar, 1)
	assert.Equal(t, 2, grammar[0].ID)
}

func TestResourcesSearchMatchesTags(t *testing.T) {
	c := Default()

	matched := c.Resources(ResourceFilter{Search: "alphabet"})
	require.Len(t, matched, 1)
	assert.Equal(t, "ISL Fingerspelling Master Class", matched[0].Title)
}

func TestLessonLookup(t *testing.T) {
	c := Default()

	lesson := c.Lesson("inter-1")
	require.NotNil(t, lesson)
	assert.Equal(t, "Everyday Conversations", lesson.Title)

	assert.Nil(t, c.Lesson("missing"))
}

func TestMarkCompleted(t *testing.T) {
	c := Default()
	user := &models.User{CompletedLessons: []string{"basic-1", "adv-1"}}

	lessons := MarkCompleted(c.Lessons(LessonFilter{}), user)
	byID := make(map[string]bool, len(lessons))
	for _, lesson := range lessons {
		byID[lesson.ID] = lesson.Completed
	}
	assert.True(t, byID["basic-1"])
	assert.True(t, byID["adv-1"])
	assert.False(t, byID["basic-2"])
}

func TestMarkCompletedNilUser(t *testing.T) {
	c := Default()

	for _, lesson := range MarkCompleted(c.Lessons(LessonFilter{}), nil) {
		assert.False(t, lesson.Completed)
	}
}
