package middleware

import (
	"strings"

	autherrors "github.com/SirTuppy/route-setter-scheduler/internal/auth/errors"
	"github.com/SirTuppy/route-setter-scheduler/internal/auth/token"
	"github.com/SirTuppy/route-setter-scheduler/internal/domain"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID   = "user_id"
	ContextUserName = "user_name"
	ContextEmail    = "email"
	ContextRole     = "role"
)

// AuthMiddleware verifies the provider issued bearer token (or the
// access_token cookie) and puts the caller on the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenMissing)
			return
		}

		claims, err := token.Parse(secret, tokenString)
		if err != nil {
			abortWith(c, err)
			return
		}

		actor := claims.Actor()
		c.Set(ContextUserID, actor.UserID)
		c.Set(ContextUserName, actor.Name)
		c.Set(ContextEmail, actor.Email)
		c.Set(ContextRole, actor.Role)

		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(ContextRole)
		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}
		abortWith(c, autherrors.ErrForbidden)
	}
}

// ActorFrom reads the caller set by AuthMiddleware.
func ActorFrom(c *gin.Context) domain.Actor {
	return domain.Actor{
		UserID: c.GetString(ContextUserID),
		Name:   c.GetString(ContextUserName),
		Email:  c.GetString(ContextEmail),
		Role:   c.GetString(ContextRole),
	}
}

func abortWith(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
	c.Abort()
}
