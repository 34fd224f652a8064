package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	tm := NewTokenManager("secret", "airdrop-scanner", time.Hour)

	tok, exp, err := tm.Issue("ops")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tm.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, "airdrop-scanner", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, _, err := NewTokenManager("a", "x", time.Hour).Issue("ops")
	require.NoError(t, err)

	_, err = NewTokenManager("b", "x", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	tok, _, err := NewTokenManager("a", "x", time.Hour).Issue("ops")
	require.NoError(t, err)

	_, err = NewTokenManager("a", "y", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	tm := NewTokenManager("a", "x", time.Nanosecond)
	tok, _, err := tm.Issue("ops")
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, err = tm.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewTokenManager("a", "x", time.Hour).Parse("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
