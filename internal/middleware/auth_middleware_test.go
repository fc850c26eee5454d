package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/auth/token"
	"github.com/SirTuppy/route-setter-scheduler/internal/domain"
	"github.com/SirTuppy/route-setter-scheduler/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", handlers...)
	return r
}

func signed(t *testing.T, sub, role string) string {
	t.Helper()
	raw, err := token.Sign(secret, token.Claims{
		Email:        sub + "@example.com",
		UserMetadata: token.UserMetadata{Role: role, Name: "Test " + sub},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	require.NoError(t, err)
	return raw
}

func TestAuthMiddleware(t *testing.T) {
	var seen domain.Actor
	r := newRouter(middleware.AuthMiddleware(secret), func(c *gin.Context) {
		seen = middleware.ActorFrom(c)
		c.Status(http.StatusNoContent)
	})

	t.Run("bearer token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signed(t, "user-1", domain.RoleHeadSetter))

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "user-1", seen.UserID)
		assert.Equal(t, domain.RoleHeadSetter, seen.Role)
		assert.Equal(t, "Test user-1", seen.Name)
	})

	t.Run("cookie token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: signed(t, "user-2", domain.RoleSetter)})

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "user-2", seen.UserID)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token not found")
	})

	t.Run("garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer nope")

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

type stubEnforcer struct {
	allowed bool
	got     domain.EnforceRequest
}

func (s *stubEnforcer) Enforce(req domain.EnforceRequest) (bool, error) {
	s.got = req
	return s.allowed, nil
}

func TestRBACAuthorize(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		enf := &stubEnforcer{allowed: true}
		r := newRouter(middleware.AuthMiddleware(secret), middleware.RBACAuthorize(enf, "schedule", "write"), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signed(t, "user-1", domain.RoleHeadSetter))

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, domain.RoleHeadSetter, enf.got.Role)
		assert.Equal(t, "schedule", enf.got.Resource)
	})

	t.Run("forbidden", func(t *testing.T) {
		enf := &stubEnforcer{allowed: false}
		r := newRouter(middleware.AuthMiddleware(secret), middleware.RBACAuthorize(enf, "gym", "write"), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signed(t, "user-1", domain.RoleSetter))

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "gym:write")
	})

	t.Run("no auth context", func(t *testing.T) {
		r := newRouter(middleware.RBACAuthorize(&stubEnforcer{allowed: true}, "gym", "read"), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		w := httptest.NewRecorder()

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRoleMiddleware(t *testing.T) {
	r := newRouter(middleware.AuthMiddleware(secret), middleware.RoleMiddleware(domain.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed(t, "user-1", domain.RoleSetter))

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
