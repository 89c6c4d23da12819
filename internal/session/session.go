// Package session holds the pairing of an optional auth token and the user
// identity derived from it. Cart and order operations receive a Session value
// explicitly instead of reading ambient auth state.
package session

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// User is the identity carried inside the auth token.
type User struct {
	ID    string
	Name  string
	Email string
}

// Session pairs an optional bearer token with the user it belongs to.
// A zero Session is the anonymous session.
type Session struct {
	Token string
	User  *User
}

// Authenticated reports whether the session carries a usable token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Anonymous returns the session of a signed-out user.
func Anonymous() Session {
	return Session{}
}

// FromToken derives a Session from a bearer token. Claims are read without
// signature verification: the server verifies every request, the client only
// needs identity and expiry. An expired token yields a session that keeps the
// cached user but drops the token, so checkout can still tell the two states
// apart.
func FromToken(token string) Session {
	if token == "" {
		return Anonymous()
	}

	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// Opaque token: usable for requests, no identity to show.
		return Session{Token: token}
	}

	user := &User{
		ID:    claimString(claims, "_id", "sub", "id"),
		Name:  claimString(claims, "name"),
		Email: claimString(claims, "email"),
	}

	if !claims.VerifyExpiresAt(time.Now().Unix(), false) {
		return Session{User: user}
	}

	return Session{Token: token, User: user}
}

// claimString returns the first non-empty string claim among keys.
func claimString(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
