package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenPayload captures the data available when minting a JWT.
type SessionTokenPayload struct {
	Username string
	// SessionID becomes the jti and keys the cart/checkout state for this
	// browser session. Empty means mint a fresh one.
	SessionID string
}

// SessionTokenClaims represents the typed JWT issued to storefront clients.
type SessionTokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SessionID returns the session identifier carried in the jti claim.
func (c *SessionTokenClaims) SessionID() string {
	if c == nil {
		return ""
	}
	return c.ID
}
