package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bistro-systems/table-reserve/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    1,
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  models.RoleUser,
	}
}

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("secret", time.Hour)

	signed, err := svc.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	signed, err := NewService("other-secret", time.Hour).Issue(testUser())
	require.NoError(t, err)

	svc := NewService("secret", time.Hour)
	claims, err := svc.Verify(signed)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyRejectsExpired(t *testing.T) {
	svc := NewService("secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)

	claims, err := svc.Verify(signed)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsMalformedWithoutPanic(t *testing.T) {
	svc := NewService("secret", time.Hour)

	for _, raw := range []string{
		"",
		"garbage",
		"a.b.c",
		"eyJhbGciOiJIUzI1NiJ9.not-base64.sig",
	} {
		claims, err := svc.Verify(raw)
		assert.Nil(t, claims, "input %q", raw)
		assert.ErrorIs(t, err, ErrInvalid, "input %q", raw)
	}
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	svc := NewService("secret", time.Hour)

	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := anonymous.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDefaultTTL(t *testing.T) {
	assert.Equal(t, time.Hour, NewService("secret", 0).TTL())
	assert.Equal(t, 30*time.Minute, NewService("secret", 30*time.Minute).TTL())
}
