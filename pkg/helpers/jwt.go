package helpers

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Classified verification failures, kept distinct for observability.
var (
	ErrTokenExpired   = errors.New("token expirado")
	ErrTokenMalformed = errors.New("token malformado")
	ErrTokenInvalid   = errors.New("token inválido")
)

// TokenManager issues and verifies the HS256 bearer tokens used by the API.
// Issuer, audience, subject and lifetime are fixed by configuration; only
// the caller claims vary per token.
type TokenManager struct {
	secret   []byte
	issuer   string
	audience string
	subject  string
	ttl      time.Duration
}

func NewTokenManager(secret, issuer, audience, subject string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		subject:  subject,
		ttl:      ttl,
	}
}

// Issue signs a token carrying the registered claim set plus the caller
// claims merged on top. Each token gets a fresh jti.
func (m *TokenManager) Issue(claims map[string]any) (string, error) {
	now := time.Now()
	payload := jwt.MapClaims{
		"iss": m.issuer,
		"aud": m.audience,
		"sub": m.subject,
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
		"jti": uuid.NewString(),
	}
	for k, v := range claims {
		payload[k] = v
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(m.secret)
}

// Verify strips an optional Bearer prefix and validates signature, issuer,
// audience and expiry. Failures come back as one of the classified errors
// above instead of propagating parser internals.
func (m *TokenManager) Verify(authorization string) (jwt.MapClaims, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer"))
	if raw == "" {
		return nil, ErrTokenMalformed
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		// unsigned and alg=none tokens never reach here
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
