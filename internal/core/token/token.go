// Package token issues and verifies the bearer tokens handed out by
// the login endpoint. Tokens carry only a subject and an expiry; there
// is no revocation list, so a token stays valid for its full lifetime
// even if the account changes afterwards (accepted for the admin-only
// audience, see DESIGN.md).
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTTL = 30 * 24 * time.Hour

// ErrInvalidToken covers every verification failure: malformed input,
// bad signature and expiry are indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the decoded content of a verified token.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Manager signs and validates HS256 JWTs with a shared secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager returns a Manager. A non-positive ttl falls back to 30 days.
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the given subject. The subject is always
// embedded as a string, even when the underlying identifier is numeric,
// so decoding never depends on JSON number coercion.
func (m *Manager) Issue(subject string) (string, error) {
	now := m.now().UTC()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify decodes raw and validates signature and expiry. Any failure
// returns ErrInvalidToken; Verify never panics on malformed input.
func (m *Manager) Verify(raw string) (*Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidToken
	}

	return &Claims{Subject: sub, ExpiresAt: exp.Time}, nil
}
