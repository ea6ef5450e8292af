package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/velora-motors/storefront-backend/api/responses"
	pkgauth "github.com/velora-motors/storefront-backend/pkg/auth"
	"github.com/velora-motors/storefront-backend/pkg/auth/session"
	"github.com/velora-motors/storefront-backend/pkg/config"
	pkgerrors "github.com/velora-motors/storefront-backend/pkg/errors"
	"github.com/velora-motors/storefront-backend/pkg/logger"
)

// Auth validates a bearer token, checks the session is still live, and
// seeds the request context with the username and session id.
func Auth(cfg config.JWTConfig, verifier session.SessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgauth.ParseSessionToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			sessionID := claims.SessionID()
			if sessionID == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id"))
				return
			}

			if verifier != nil {
				ok, err := verifier.HasSession(r.Context(), sessionID)
				if err != nil {
					responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "validate session"))
					return
				}
				if !ok {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session unavailable"))
					return
				}
			}

			ctx := context.WithValue(r.Context(), ctxUsername, claims.Username)
			ctx = context.WithValue(ctx, ctxSessionID, sessionID)

			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"username":   claims.Username,
					"session_id": sessionID,
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
