package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

type mockResolver struct {
	users map[string]*Identity
}

func (m *mockResolver) ResolveSubject(_ context.Context, subject string) (*Identity, error) {
	id, ok := m.users[subject]
	if !ok {
		return nil, errors.New("unknown user")
	}
	return id, nil
}

func gateTestSetup(t *testing.T) (*TokenService, echo.MiddlewareFunc) {
	t.Helper()
	svc, err := NewTokenService("gate-secret", "HS256", time.Minute)
	if err != nil {
		t.Fatalf("NewTokenService() error: %v", err)
	}
	resolver := &mockResolver{users: map[string]*Identity{
		"drhouse": {ID: 7, Username: "drhouse"},
	}}
	return svc, Middleware(svc, resolver)
}

func runGate(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (int, *Identity) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/pacientes", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *Identity
	handler := mw(func(c echo.Context) error {
		seen = CurrentIdentity(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he.Code, seen
		}
		t.Fatalf("unexpected error type: %v", err)
	}
	return rec.Code, seen
}

func TestMiddleware_ValidToken(t *testing.T) {
	svc, mw := gateTestSetup(t)

	token, err := svc.Issue("drhouse")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	code, identity := runGate(t, mw, "Bearer "+token)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if identity == nil || identity.ID != 7 || identity.Username != "drhouse" {
		t.Errorf("unexpected identity: %+v", identity)
	}
}

func TestMiddleware_MissingHeader(t *testing.T) {
	_, mw := gateTestSetup(t)
	if code, _ := runGate(t, mw, ""); code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", code)
	}
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	_, mw := gateTestSetup(t)
	for _, header := range []string{"Bearer", "Basic abc123", "token-without-scheme"} {
		if code, _ := runGate(t, mw, header); code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, code)
		}
	}
}

func TestMiddleware_LowercaseBearer(t *testing.T) {
	svc, mw := gateTestSetup(t)

	token, err := svc.Issue("drhouse")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	if code, _ := runGate(t, mw, "bearer "+token); code != http.StatusOK {
		t.Errorf("scheme should be case-insensitive, got %d", code)
	}
}

func TestMiddleware_UnknownSubject(t *testing.T) {
	svc, mw := gateTestSetup(t)

	token, err := svc.Issue("deleted-user")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	if code, _ := runGate(t, mw, "Bearer "+token); code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown subject, got %d", code)
	}
}

func TestCurrentIdentity_Unset(t *testing.T) {
	if id := CurrentIdentity(context.Background()); id != nil {
		t.Errorf("expected nil identity, got %+v", id)
	}
}
