package auth

import (
	"context"
	"testing"

	pkgauth "github.com/velora-motors/storefront-backend/pkg/auth"
	"github.com/velora-motors/storefront-backend/pkg/config"
	pkgerrors "github.com/velora-motors/storefront-backend/pkg/errors"
)

type stubSessions struct {
	issued  string
	revoked string
}

func (s *stubSessions) Issue(ctx context.Context, username string) (string, error) {
	s.issued = "session-123"
	return s.issued, nil
}

func (s *stubSessions) Revoke(ctx context.Context, sessionID string) error {
	s.revoked = sessionID
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "velora-storefront",
		ExpirationMinutes: 60,
	}
}

// low-cost parameters keep the hash fast in tests
func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	}
}

func newTestService(t *testing.T, sessions *stubSessions) Service {
	t.Helper()
	svc, err := NewService(sessions, testJWTConfig(), config.DemoAccountConfig{
		Username: "demo",
		Password: "password",
	}, testPasswordConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestLoginSuccessMintsSessionToken(t *testing.T) {
	t.Parallel()

	sessions := &stubSessions{}
	svc := newTestService(t, sessions)

	result, err := svc.Login(context.Background(), LoginInput{Username: "demo", Password: "password"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := pkgauth.ParseSessionToken(testJWTConfig(), result.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Username != "demo" {
		t.Fatalf("unexpected username claim: %s", claims.Username)
	}
	if claims.SessionID() != sessions.issued {
		t.Fatalf("jti %q does not match issued session %q", claims.SessionID(), sessions.issued)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubSessions{})
	_, err := svc.Login(context.Background(), LoginInput{Username: "demo", Password: "wrong"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginRejectsWrongUsername(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubSessions{})
	_, err := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "password"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginRetriesAreUnlimited(t *testing.T) {
	t.Parallel()

	sessions := &stubSessions{}
	svc := newTestService(t, sessions)

	for i := 0; i < 5; i++ {
		if _, err := svc.Login(context.Background(), LoginInput{Username: "demo", Password: "wrong"}); err == nil {
			t.Fatal("expected failure")
		}
	}

	if _, err := svc.Login(context.Background(), LoginInput{Username: "demo", Password: "password"}); err != nil {
		t.Fatalf("correct credential must still work after failures: %v", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	t.Parallel()

	sessions := &stubSessions{}
	svc := newTestService(t, sessions)

	if err := svc.Logout(context.Background(), "session-123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sessions.revoked != "session-123" {
		t.Fatalf("expected session-123 revoked, got %q", sessions.revoked)
	}
}
