package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIssueAndValidate(t *testing.T) {
	svc := NewSessionService("test-secret")

	tokenID, token, err := svc.Issue("Administrador", RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenID)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "Administrador", claims.Name)
	assert.Equal(t, string(RoleAdmin), claims.Role)
	assert.Equal(t, tokenID, claims.ID)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 29*time.Minute)
	assert.LessOrEqual(t, remaining, SessionTTL)
}

func TestSessionValidate_RejectsWrongSecret(t *testing.T) {
	issuer := NewSessionService("secret-a")
	verifier := NewSessionService("secret-b")

	_, token, err := issuer.Issue("Gerente", RoleManager)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestSessionValidate_RejectsGarbage(t *testing.T) {
	svc := NewSessionService("test-secret")

	_, err := svc.Validate("not-a-token")
	assert.Error(t, err)

	_, err = svc.Validate("")
	assert.Error(t, err)
}

func TestSessionTokenIDsAreUnique(t *testing.T) {
	svc := NewSessionService("test-secret")

	first, _, err := svc.Issue("Usuário", RoleUser)
	require.NoError(t, err)
	second, _, err := svc.Issue("Usuário", RoleUser)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
