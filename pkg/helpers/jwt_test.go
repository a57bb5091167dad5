package helpers

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestManager(secret string, ttl time.Duration) *TokenManager {
	return NewTokenManager(secret, "http://localhost", "http://localhost", "acesso_sistema", ttl)
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	m := newTestManager("segredo", time.Hour)

	token, err := m.Issue(map[string]any{
		"email": "ana@empresa.com",
		"role":  "Administrador",
		"name":  "Ana",
	})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := m.Verify("Bearer " + token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims["email"] != "ana@empresa.com" {
		t.Fatalf("email claim lost: %v", claims["email"])
	}
	if claims["role"] != "Administrador" {
		t.Fatalf("role claim lost: %v", claims["role"])
	}
	if claims["jti"] == "" || claims["jti"] == nil {
		t.Fatalf("jti missing")
	}

	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)
	if !(iat < exp) {
		t.Fatalf("expected iat < exp, got iat=%v exp=%v", iat, exp)
	}
}

func TestVerify_WithoutBearerPrefix(t *testing.T) {
	m := newTestManager("segredo", time.Hour)
	token, err := m.Issue(nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := m.Verify(token); err != nil {
		t.Fatalf("raw token should verify: %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	m := newTestManager("segredo", -time.Minute)
	token, err := m.Issue(nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := m.Verify("Bearer " + token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := newTestManager("segredo-a", time.Hour)
	verifier := newTestManager("segredo-b", time.Hour)

	token, err := issuer.Issue(nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify("Bearer " + token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	m := newTestManager("segredo", time.Hour)
	for _, header := range []string{"", "Bearer", "Bearer abc.def"} {
		if _, err := m.Verify(header); !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("header %q: expected ErrTokenMalformed, got %v", header, err)
		}
	}
}

func TestVerify_RejectsNonHMAC(t *testing.T) {
	m := newTestManager("segredo", time.Hour)

	// alg=none token, signature stripped
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"iss": "http://localhost",
		"aud": "http://localhost",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := m.Verify("Bearer " + raw); err == nil {
		t.Fatalf("alg=none token accepted")
	}
}

func TestVerify_WrongIssuer(t *testing.T) {
	issuer := NewTokenManager("segredo", "http://other", "http://localhost", "acesso_sistema", time.Hour)
	verifier := newTestManager("segredo", time.Hour)

	token, err := issuer.Issue(nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify("Bearer " + token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
