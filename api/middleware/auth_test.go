package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgauth "github.com/velora-motors/storefront-backend/pkg/auth"
	"github.com/velora-motors/storefront-backend/pkg/config"
)

type stubSessionChecker struct {
	live bool
	err  error
}

func (s stubSessionChecker) HasSession(ctx context.Context, sessionID string) (bool, error) {
	return s.live, s.err
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "velora-storefront",
		ExpirationMinutes: 60,
	}
}

func mintToken(t *testing.T) string {
	t.Helper()
	token, err := pkgauth.MintSessionToken(testJWTConfig(), time.Now(), pkgauth.SessionTokenPayload{
		Username:  "demo",
		SessionID: "session-123",
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestAuthSeedsSessionContext(t *testing.T) {
	var captured struct {
		username string
		session  string
	}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.username = UsernameFromContext(r.Context())
		captured.session = SessionIDFromContext(r.Context())
	})

	handler := Auth(testJWTConfig(), stubSessionChecker{live: true}, nil)(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if captured.username != "demo" || captured.session != "session-123" {
		t.Fatalf("context not seeded: %+v", captured)
	}
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	handler := Auth(testJWTConfig(), stubSessionChecker{live: true}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	handler := Auth(testJWTConfig(), stubSessionChecker{live: true}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsRevokedSession(t *testing.T) {
	handler := Auth(testJWTConfig(), stubSessionChecker{live: false}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
