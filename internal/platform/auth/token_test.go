package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestTokenService(t *testing.T, ttl time.Duration) *TokenService {
	t.Helper()
	svc, err := NewTokenService("test-secret", "HS256", ttl)
	if err != nil {
		t.Fatalf("NewTokenService() error: %v", err)
	}
	return svc
}

func TestNewTokenService_RejectsNonHMAC(t *testing.T) {
	for _, alg := range []string{"RS256", "ES256", "none", "garbage"} {
		if _, err := NewTokenService("secret", alg, time.Minute); err == nil {
			t.Errorf("expected error for algorithm %q", alg)
		}
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService(t, 30*time.Minute)

	token, err := svc.Issue("drhouse")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	subject, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if subject != "drhouse" {
		t.Errorf("expected subject drhouse, got %s", subject)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	token, err := svc.Issue("drhouse")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	svc := newTestTokenService(t, time.Minute)
	other, err := NewTokenService("another-secret", "HS256", time.Minute)
	if err != nil {
		t.Fatalf("NewTokenService() error: %v", err)
	}

	token, err := other.Issue("drhouse")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for forged signature, got %v", err)
	}
}

func TestTokenService_Verify_MissingSubject(t *testing.T) {
	svc := newTestTokenService(t, time.Minute)

	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for missing subject, got %v", err)
	}
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	svc := newTestTokenService(t, time.Minute)
	if _, err := svc.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
