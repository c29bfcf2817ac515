package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/bistro-systems/table-reserve/internal/models"
)

var (
	// ErrExpired and ErrInvalid both mean "reject and re-authenticate"; they
	// are distinguished only so callers can log the difference.
	ErrExpired = errors.New("token expired")
	ErrInvalid = errors.New("token invalid")
)

type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and verifies signed identity tokens. It is stateless: a
// token is a pure function of the secret and its claims, and the server
// keeps no session record, so revocation before expiry is not possible.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

func (s *Service) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Name: user.Name,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry. It never panics on malformed input;
// any structural corruption, signature mismatch or expiry yields a typed
// error and the caller must treat the request as anonymous.
func (s *Service) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrInvalid
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalid
	}

	return claims, nil
}
