package token_test

import (
	"testing"
	"time"

	autherrors "github.com/SirTuppy/route-setter-scheduler/internal/auth/errors"
	"github.com/SirTuppy/route-setter-scheduler/internal/auth/token"
	"github.com/SirTuppy/route-setter-scheduler/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, c token.Claims) string {
	t.Helper()
	raw, err := token.Sign(secret, c)
	require.NoError(t, err)
	return raw
}

func TestParse(t *testing.T) {
	t.Run("role from user metadata", func(t *testing.T) {
		raw := sign(t, token.Claims{
			Email:        "evan@example.com",
			Role:         "authenticated",
			UserMetadata: token.UserMetadata{Role: domain.RoleHeadSetter, Name: "Evan"},
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		claims, err := token.Parse(secret, raw)

		require.NoError(t, err)
		actor := claims.Actor()
		assert.Equal(t, "user-1", actor.UserID)
		assert.Equal(t, domain.RoleHeadSetter, actor.Role)
		assert.Equal(t, "Evan", actor.Name)
	})

	t.Run("unknown role falls back to setter", func(t *testing.T) {
		raw := sign(t, token.Claims{
			Role:             "authenticated",
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-2"},
		})

		claims, err := token.Parse(secret, raw)

		require.NoError(t, err)
		assert.Equal(t, domain.RoleSetter, claims.AppRole())
	})

	t.Run("expired", func(t *testing.T) {
		raw := sign(t, token.Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}})

		_, err := token.Parse(secret, raw)

		assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		raw := sign(t, token.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}})

		_, err := token.Parse("other", raw)

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		raw := sign(t, token.Claims{Email: "x@example.com"})

		_, err := token.Parse(secret, raw)

		assert.ErrorIs(t, err, autherrors.ErrMissingSubject)
	})
}
