package model

import (
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

// TokenPair is the bearer credential issued at login
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// IsValid checks if both tokens are present
func (p TokenPair) IsValid() bool {
	return p.Access != "" && p.Refresh != ""
}

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
// It is used for diagnostics only; the server stays the authority on expiry.
func TokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	parsed, err := jwt.ParseInsecure([]byte(token))
	if err != nil {
		return time.Time{}, false
	}

	exp := parsed.Expiration()
	if exp.IsZero() {
		return time.Time{}, false
	}
	return exp, true
}
