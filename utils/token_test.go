package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	token, err := ts.Issue("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, issuedAt, err := ts.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-42", userID)
	require.WithinDuration(t, time.Now(), issuedAt, 5*time.Second)
}

func TestTokenExpired(t *testing.T) {
	ts := NewTokenService("test-secret", -time.Minute)

	token, err := ts.Issue("user-42")
	require.NoError(t, err)

	_, _, err = ts.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", time.Hour)
	verifier := NewTokenService("secret-two", time.Hour)

	token, err := issuer.Issue("user-42")
	require.NoError(t, err)

	_, _, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenMalformed(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "loggedout", "a.b.c"} {
		_, _, err := ts.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}
