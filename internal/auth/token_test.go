package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ghayaruae/crm-server/internal/auth"
	"github.com/ghayaruae/crm-server/internal/clock"
)

func TestTokens_RoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	tokens := auth.NewTokens("secret", 24*time.Hour, clock.Fixed(now))

	signed, exp, err := tokens.Issue(7)
	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour), exp)

	id, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestTokens_Verify_Rejects(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	issuer := auth.NewTokens("secret", time.Hour, clock.Fixed(now))
	signed, _, err := issuer.Issue(7)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "7"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name     string
		verifier *auth.Tokens
		token    string
	}{
		{name: "expired", verifier: auth.NewTokens("secret", time.Hour, clock.Fixed(now.Add(2*time.Hour))), token: signed},
		{name: "wrong secret", verifier: auth.NewTokens("other", time.Hour, clock.Fixed(now)), token: signed},
		{name: "garbage", verifier: issuer, token: "not-a-token"},
		{name: "unsigned", verifier: issuer, token: none},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.verifier.Verify(tt.token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, auth.CheckPassword(string(hash), "s3cret"))
	assert.False(t, auth.CheckPassword(string(hash), "wrong"))
	assert.True(t, auth.CheckPassword("legacy", "legacy"))
	assert.False(t, auth.CheckPassword("legacy", "Legacy"))
	assert.False(t, auth.CheckPassword("", ""))
}
