package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	pkgauth "github.com/velora-motors/storefront-backend/pkg/auth"
	"github.com/velora-motors/storefront-backend/pkg/config"
	pkgerrors "github.com/velora-motors/storefront-backend/pkg/errors"
	"github.com/velora-motors/storefront-backend/pkg/security"
)

type sessionRegistry interface {
	Issue(ctx context.Context, username string) (string, error)
	Revoke(ctx context.Context, sessionID string) error
}

// Service handles the demo login boundary. One configured credential, no
// lockout, no retry limit.
type Service interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
}

type service struct {
	sessions     sessionRegistry
	jwtCfg       config.JWTConfig
	username     string
	passwordHash string
	now          func() time.Time
}

// NewService hashes the configured demo password once at boot and keeps
// only the hash in memory.
func NewService(sessions sessionRegistry, jwtCfg config.JWTConfig, account config.DemoAccountConfig, pwCfg config.PasswordConfig) (Service, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session manager required")
	}
	if account.Username == "" || account.Password == "" {
		return nil, fmt.Errorf("demo account credential required")
	}

	hash, err := security.HashPassword(account.Password, pwCfg)
	if err != nil {
		return nil, fmt.Errorf("hashing demo password: %w", err)
	}

	return &service{
		sessions:     sessions,
		jwtCfg:       jwtCfg,
		username:     account.Username,
		passwordHash: hash,
		now:          time.Now,
	}, nil
}

// LoginInput is the credential pair posted by the client.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the minted session token.
type LoginResult struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login verifies the credential and mints a session token whose jti is the
// cart/checkout session id.
func (s *service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.username)) == 1

	passwordOK, err := security.VerifyPassword(input.Password, s.passwordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !usernameOK || !passwordOK {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	sessionID, err := s.sessions.Issue(ctx, s.username)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "register session")
	}

	now := s.now()
	token, err := pkgauth.MintSessionToken(s.jwtCfg, now, pkgauth.SessionTokenPayload{
		Username:  s.username,
		SessionID: sessionID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint session token")
	}

	return &LoginResult{
		Token:     token,
		Username:  s.username,
		ExpiresAt: now.Add(s.jwtCfg.SessionTTL()),
	}, nil
}

// Logout revokes the session. Revoking an already-expired session is fine.
func (s *service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}
