// Package tokenx inspects access tokens issued by the Health App backend.
//
// The client does not hold the server's signing key, so tokens are decoded
// without signature verification. The extracted claims are used only for
// local conveniences (current user id, role, expiry warnings); the server
// remains the authority on every request.
package tokenx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the claim set the backend puts into access tokens:
// sub (username), user_id and role, plus registered expiry.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

// Username returns the sub claim.
func (c *Claims) Username() string {
	return c.Subject
}

// Expired reports whether the token expiry has passed. Tokens without an
// exp claim are treated as not expired.
func (c *Claims) Expired() bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Before(time.Now())
}

// ParseUnverified decodes the claims of a JWT without verifying its
// signature. Returns ErrInvalidToken for anything that is not a well-formed
// JWT.
func ParseUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return claims, nil
}
