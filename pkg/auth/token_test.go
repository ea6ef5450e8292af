package auth

import (
	"testing"
	"time"

	"github.com/velora-motors/storefront-backend/pkg/config"
)

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "velora-storefront",
		ExpirationMinutes: 60,
	}
}

func TestMintAndParseSessionToken(t *testing.T) {
	t.Parallel()

	token, err := MintSessionToken(testConfig(), time.Now(), SessionTokenPayload{
		Username:  "demo",
		SessionID: "session-123",
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseSessionToken(testConfig(), token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Username != "demo" {
		t.Fatalf("unexpected username: %s", claims.Username)
	}
	if claims.SessionID() != "session-123" {
		t.Fatalf("unexpected session id: %s", claims.SessionID())
	}
}

func TestMintGeneratesSessionIDWhenEmpty(t *testing.T) {
	t.Parallel()

	token, err := MintSessionToken(testConfig(), time.Now(), SessionTokenPayload{Username: "demo"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseSessionToken(testConfig(), token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.SessionID() == "" {
		t.Fatal("expected a generated jti")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := MintSessionToken(testConfig(), time.Now(), SessionTokenPayload{Username: "demo"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	other := testConfig()
	other.Secret = "different-secret"
	if _, err := ParseSessionToken(other, token); err == nil {
		t.Fatal("expected parse failure with wrong secret")
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Issuer = "someone-else"
	token, err := MintSessionToken(cfg, time.Now(), SessionTokenPayload{Username: "demo"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseSessionToken(testConfig(), token); err == nil {
		t.Fatal("expected parse failure with wrong issuer")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	token, err := MintSessionToken(testConfig(), time.Now().Add(-2*time.Hour), SessionTokenPayload{Username: "demo"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseSessionToken(testConfig(), token); err == nil {
		t.Fatal("expected parse failure for expired token")
	}
}
