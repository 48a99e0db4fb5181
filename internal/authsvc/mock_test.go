package authsvc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoginRejectsEmptyCredentials(t *testing.T) {
	svc := NewMock(0)

	resp, err := svc.Login(context.Background(), "", "pw")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, ErrMsgInvalidCredentials, resp.Error)

	resp, err = svc.Login(context.Background(), "a@b.com", "")
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestMockLoginUnknownAccountGetsFreshRecord(t *testing.T) {
	svc := NewMock(0)

	resp, err := svc.Login(context.Background(), "new@example.com", "pw")
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.NotNil(t, resp.User)

	assert.Equal(t, "new@example.com", resp.User.Email)
	assert.Equal(t, "Demo User", resp.User.Name)
	assert.NotEmpty(t, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
	// No history for a first-time login
	assert.Zero(t, resp.User.LearningProgress)
	assert.Empty(t, resp.User.CompletedLessons)
}

func TestMockLoginPreloadedAccountReturnsStoredRecord(t *testing.T) {
	svc := NewMock(0)
	svc.Preload(UserPayload{
		ID:               "u-42",
		Name:             "Asha",
		Email:            "Asha@Example.com",
		LearningProgress: 60,
		CompletedLessons: []string{"basic-1"},
	})

	resp, err := svc.Login(context.Background(), "asha@example.com", "pw")
	require.NoError(t, err)
	require.True(t, resp.Success)

	assert.Equal(t, "u-42", resp.User.ID)
	assert.Equal(t, 60, resp.User.LearningProgress)
	assert.Equal(t, []string{"basic-1"}, resp.User.CompletedLessons)
}

func TestMockLoginTokensAreUnique(t *testing.T) {
	svc := NewMock(0)

	first, err := svc.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestMockSignupValidation(t *testing.T) {
	svc := NewMock(0)

	resp, err := svc.Signup(context.Background(), "Asha", "asha@example.com", "pw")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, MsgAccountCreated, resp.Message)

	resp, err = svc.Signup(context.Background(), "", "asha@example.com", "pw")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, ErrMsgMissingFields, resp.Error)
}

func TestMockHonorsContextCancellation(t *testing.T) {
	svc := NewMock(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, "a@b.com", "pw")
	assert.ErrorIs(t, err, context.Canceled)
}
