// Package token verifies access tokens issued by the hosted auth provider.
package token

import (
	"errors"
	"fmt"

	autherrors "github.com/SirTuppy/route-setter-scheduler/internal/auth/errors"
	"github.com/SirTuppy/route-setter-scheduler/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

type UserMetadata struct {
	Role string `json:"role,omitempty"`
	Name string `json:"name,omitempty"`
}

// Claims mirrors the provider's access token. The app role lives in
// user_metadata; a top level role claim is only a fallback.
type Claims struct {
	Email        string       `json:"email,omitempty"`
	Role         string       `json:"role,omitempty"`
	UserMetadata UserMetadata `json:"user_metadata"`
	jwt.RegisteredClaims
}

func (c Claims) AppRole() string {
	if domain.ValidRole(c.UserMetadata.Role) {
		return c.UserMetadata.Role
	}
	if domain.ValidRole(c.Role) {
		return c.Role
	}
	return domain.RoleSetter
}

func (c Claims) Actor() domain.Actor {
	return domain.Actor{
		UserID: c.Subject,
		Name:   c.UserMetadata.Name,
		Email:  c.Email,
		Role:   c.AppRole(),
	}
}

func Parse(secret, raw string) (Claims, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, autherrors.ErrTokenExpired
		}
		return Claims{}, autherrors.ErrInvalidToken
	}
	if !tok.Valid {
		return Claims{}, autherrors.ErrInvalidToken
	}
	if claims.Subject == "" {
		return Claims{}, autherrors.ErrMissingSubject
	}
	return claims, nil
}

// Sign issues a token in the provider's shape. Used by tests and the admin CLI.
func Sign(secret string, claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
