package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-signing-key")
	userID := uuid.New()

	token, err := manager.Generate(userID, "patient", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsedID, role, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
	assert.Equal(t, "patient", role)
}

func TestTokenExpired(t *testing.T) {
	manager := NewTokenManager("test-signing-key")

	token, err := manager.Generate(uuid.New(), "practitioner", -time.Minute)
	require.NoError(t, err)

	_, _, err = manager.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenWrongKey(t *testing.T) {
	issuer := NewTokenManager("key-one")
	verifier := NewTokenManager("key-two")

	token, err := issuer.Generate(uuid.New(), "patient", time.Hour)
	require.NoError(t, err)

	_, _, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	manager := NewTokenManager("test-signing-key")

	_, _, err := manager.Parse("не-токен")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
