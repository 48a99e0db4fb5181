package authsvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	token, err := IssueToken("user-1", "a@b.com", "secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := IssueToken("user-1", "a@b.com", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := IssueToken("user-1", "a@b.com", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-jwt", "secret")
	assert.Error(t, err)
}
