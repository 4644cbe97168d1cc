package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims(sub, email string) Claims {
	now := time.Now()
	return Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Audience:  jwt.ClaimStrings{"authenticated"},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestJWTVerifier_Verify(t *testing.T) {
	v := NewJWTVerifier(testSecret, "authenticated")

	user, err := v.Verify(context.Background(), signToken(t, testSecret, validClaims("user-1", "u1@example.com")))
	require.NoError(t, err)
	assert.Equal(t, &User{ID: "user-1", Email: "u1@example.com"}, user)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	v := NewJWTVerifier(testSecret, "authenticated")

	expired := validClaims("user-1", "u1@example.com")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongAudience := validClaims("user-1", "u1@example.com")
	wrongAudience.Audience = jwt.ClaimStrings{"anon"}

	noSubject := validClaims("", "u1@example.com")

	noExpiry := validClaims("user-1", "u1@example.com")
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"wrong secret", signToken(t, "other-secret", validClaims("user-1", "u1@example.com"))},
		{"expired", signToken(t, testSecret, expired)},
		{"wrong audience", signToken(t, testSecret, wrongAudience)},
		{"missing subject", signToken(t, testSecret, noSubject)},
		{"missing expiry", signToken(t, testSecret, noExpiry)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := v.Verify(context.Background(), tt.token)
			assert.Error(t, err)
			assert.Nil(t, user)
		})
	}
}

func TestJWTVerifier_RejectsOtherAlgorithms(t *testing.T) {
	v := NewJWTVerifier(testSecret, "")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, validClaims("user-1", "")).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTVerifier_NoAudienceConfigured(t *testing.T) {
	v := NewJWTVerifier(testSecret, "")

	claims := validClaims("user-2", "")
	claims.Audience = nil

	user, err := v.Verify(context.Background(), signToken(t, testSecret, claims))
	require.NoError(t, err)
	assert.Equal(t, "user-2", user.ID)
}
