// Package session models the caller's authentication state as an explicit
// value handed to whatever issues upstream requests, instead of ambient
// token/role globals.
package session

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the per-request authentication state: the raw bearer token for
// upstream forwarding plus the profile claims baked into it. Validity is
// presence-based; the upstream remains the authority and its 401 responses
// pass through untouched.
type Session struct {
	Token      string
	CustomerID int
	Role       string
	Email      string
}

// Anonymous is the zero session used for unauthenticated requests.
var Anonymous = Session{}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

func (s Session) IsAdmin() bool {
	return s.Role == "admin"
}

type tokenClaims struct {
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// FromToken builds a Session from a bearer token signed with the shared
// HS256 secret. The subject claim carries the customer id as a string.
func FromToken(token, secret string) (Session, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Anonymous, fmt.Errorf("parsing session token: %w", err)
	}
	if !parsed.Valid {
		return Anonymous, fmt.Errorf("invalid session token")
	}

	customerID, _ := strconv.Atoi(claims.Subject)
	return Session{
		Token:      token,
		CustomerID: customerID,
		Role:       claims.Role,
		Email:      claims.Email,
	}, nil
}
