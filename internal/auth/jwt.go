package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents JWT claims for authenticated requests.
type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Manager encapsulates JWT generation and validation. It is built once at
// startup and safe for concurrent use; nothing mutates it afterwards.
type Manager struct {
	secret   []byte
	issuer   string
	audience string
	expiry   time.Duration
}

// NewManager creates a new JWT manager. An empty secret is rejected so a
// misconfigured process fails at startup instead of signing with a blank
// key. A zero expiry is legal: such tokens are expired as soon as they are
// validated.
func NewManager(secret, issuer, audience string, expiry time.Duration) (*Manager, error) {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	if strings.TrimSpace(issuer) == "" {
		return nil, errors.New("jwt issuer must not be empty")
	}
	if strings.TrimSpace(audience) == "" {
		return nil, errors.New("jwt audience must not be empty")
	}
	if expiry < 0 {
		return nil, errors.New("jwt expiry must not be negative")
	}
	return &Manager{
		secret:   []byte(trimmed),
		issuer:   issuer,
		audience: audience,
		expiry:   expiry,
	}, nil
}

// GenerateToken issues a signed JWT carrying the provided claim set.
func (m *Manager) GenerateToken(claims ClaimSet) (string, time.Time, error) {
	if m == nil {
		return "", time.Time{}, errors.New("jwt manager is nil")
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return "", time.Time{}, errors.New("invalid claims for token generation")
	}
	now := time.Now().UTC()
	expiry := now.Add(m.expiry)

	tokenClaims := Claims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiry, nil
}

// ParseToken validates signature, expiry, issuer and audience, and returns
// the embedded claims.
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	if m == nil {
		return nil, errors.New("jwt manager is nil")
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
