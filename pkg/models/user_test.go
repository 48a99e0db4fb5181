package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCompleted(t *testing.T) {
	user := &User{CompletedLessons: []string{"basic-1", "basic-2"}}

	assert.True(t, user.HasCompleted("basic-1"))
	assert.False(t, user.HasCompleted("adv-1"))

	empty := &User{}
	assert.False(t, empty.HasCompleted("basic-1"))
}

func TestCloneIsIndependent(t *testing.T) {
	user := &User{
		ID:               "u1",
		LearningProgress: 40,
		CompletedLessons: []string{"basic-1"},
	}

	clone := user.Clone()
	clone.LearningProgress = 99
	clone.CompletedLessons[0] = "changed"
	clone.CompletedLessons = append(clone.CompletedLessons, "extra")

	assert.Equal(t, 40, user.LearningProgress)
	assert.Equal(t, []string{"basic-1"}, user.CompletedLessons)
}

func TestCloneNil(t *testing.T) {
	var user *User
	assert.Nil(t, user.Clone())
}
