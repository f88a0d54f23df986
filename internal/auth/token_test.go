package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	require.Error(t, err)
}

func TestIssueAndParse(t *testing.T) {
	m, err := NewTokenManager("test-secret", 24*time.Hour)
	require.NoError(t, err)

	userID := uuid.New()
	token, err := m.Issue(userID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	// срок действия — ровно ttl от момента выпуска
	expiresIn := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, (24 * time.Hour).Seconds(), expiresIn.Seconds(), 5)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m, err := NewTokenManager("test-secret", -time.Minute)
	require.NoError(t, err)

	token, err := m.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = m.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	issuer, err := NewTokenManager("secret-one", time.Hour)
	require.NoError(t, err)
	verifier, err := NewTokenManager("secret-two", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	m, err := NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err = m.Parse(token)
		assert.Error(t, err, "токен %q не должен проходить проверку", token)
	}
}
