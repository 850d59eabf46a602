package service

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestNewTokenService_EmptySecret(t *testing.T) {
	tokens, err := NewTokenService("", time.Hour)

	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	tokens, err := NewTokenService(testSecret, 2*time.Hour)
	require.NoError(t, err)

	tokenString, err := tokens.Issue(7, "john@example.com")
	require.NoError(t, err)

	claims, err := tokens.Validate(tokenString)
	require.NoError(t, err)

	assert.Equal(t, int64(7), claims.Sub)
	assert.Equal(t, "john@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, 2*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestTokenService_SubIsNumeric(t *testing.T) {
	tokens, err := NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)

	tokenString, err := tokens.Issue(42, "ana@example.com")
	require.NoError(t, err)

	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(payload, &raw))

	assert.Equal(t, float64(42), raw["sub"])
	assert.Equal(t, "ana@example.com", raw["email"])
	assert.Contains(t, raw, "jti")
}

func TestTokenService_IssuesDistinctTokens(t *testing.T) {
	tokens, err := NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)

	first, err := tokens.Issue(1, "a@example.com")
	require.NoError(t, err)
	second, err := tokens.Issue(1, "a@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenService_ValidateRejects(t *testing.T) {
	tokens, err := NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)

	valid, err := tokens.Issue(1, "a@example.com")
	require.NoError(t, err)

	foreign, err := NewTokenService("another-secret", time.Hour)
	require.NoError(t, err)
	foreignToken, err := foreign.Issue(1, "a@example.com")
	require.NoError(t, err)

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		Sub: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	hs512Token, err := hs512.SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Sub: 1})
	noExpToken, err := noExp.SignedString([]byte(testSecret))
	require.NoError(t, err)

	expired := &tokenService{
		secret: []byte(testSecret),
		ttl:    time.Hour,
		now:    func() time.Time { return time.Now().Add(-3 * time.Hour) },
	}
	expiredToken, err := expired.Issue(1, "a@example.com")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed", token: "not.a.jwt"},
		{name: "empty", token: ""},
		{name: "tampered signature", token: valid[:len(valid)-2] + "xx"},
		{name: "wrong secret", token: foreignToken},
		{name: "wrong algorithm", token: hs512Token},
		{name: "missing expiry", token: noExpToken},
		{name: "expired", token: expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tokens.Validate(tt.token)

			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
