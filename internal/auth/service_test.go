package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_LoginAndParseRoundTrip(t *testing.T) {
	svc := NewService("test-secret")

	token, user, err := svc.Login("ketua1", "wk1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, "ketua1", user.Username)
	assert.Equal(t, "Wonokusumo 1", user.Group)
	assert.False(t, user.IsAdmin())

	parsed, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user, parsed)
}

func TestService_LoginAdmin(t *testing.T) {
	svc := NewService("test-secret")

	_, user, err := svc.Login("admin", "dsnew26")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
	assert.Empty(t, user.Group)
}

func TestService_LoginRejectsBadCredentials(t *testing.T) {
	svc := NewService("test-secret")

	_, _, err := svc.Login("ketua1", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody", "wk1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_ParseTokenRejectsGarbage(t *testing.T) {
	svc := NewService("test-secret")

	_, err := svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_ParseTokenRejectsForeignSecret(t *testing.T) {
	issuer := NewService("secret-a")
	verifier := NewService("secret-b")

	token, _, err := issuer.Login("admin", "dsnew26")
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
