package sessiontoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicconnect/config"
)

func TestIssueAndParse(t *testing.T) {
	service := NewService(config.SessionConfig{Secret: "secret-one", TTL: time.Hour})
	userID := uuid.New()

	token, issuedAt, expiresAt, err := service.Issue(userID, "doctor@demo.com", "doctor")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, expiresAt.Sub(issuedAt))

	claims, err := service.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "doctor@demo.com", claims.Email)
	assert.Equal(t, "doctor", claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewService(config.SessionConfig{Secret: "secret-one", TTL: time.Hour})
	verifier := NewService(config.SessionConfig{Secret: "secret-two", TTL: time.Hour})

	token, _, _, err := issuer.Issue(uuid.New(), "a@b.c", "patient")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	service := NewService(config.SessionConfig{Secret: "secret-one", TTL: -time.Minute})

	token, _, _, err := service.Issue(uuid.New(), "a@b.c", "patient")
	require.NoError(t, err)

	_, err = service.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsMalformedToken(t *testing.T) {
	service := NewService(config.SessionConfig{Secret: "secret-one", TTL: time.Hour})

	_, err := service.Parse("definitely.not.a-token")
	assert.Error(t, err)
}
