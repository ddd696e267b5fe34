package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeBearer is the only token type issued by the service.
const TokenTypeBearer = "bearer"

// ErrNoSubject is returned by [Claims.GetUserID] when "sub" is absent.
var ErrNoSubject = errors.New("token has no subject")

// Claims is the claim set of an access token. "sub" carries the owner's
// user id in base 10.
type Claims struct {
	jwt.RegisteredClaims
}

// GetUserID decodes the owner id from "sub".
func (c *Claims) GetUserID() (int64, error) {
	if c.Subject == "" {
		return 0, ErrNoSubject
	}

	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject %q is not a user id: %w", c.Subject, err)
	}
	return id, nil
}

// Token is a signed access token together with the claims the service
// cares about. None of it is serialized directly; see [TokenResponse].
type Token struct {
	SignedString string    `json:"-"`
	UserID       int64     `json:"-"`
	ExpiresAt    time.Time `json:"-"`
}

func (t Token) String() string {
	return t.SignedString
}

// TokenResponse is the body returned by POST /auth/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
