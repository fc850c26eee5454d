package middleware

import (
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger stores the request id and caller on the request context
// next to a request scoped logger. Mount it after AuthMiddleware.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Header("X-Request-ID", rid)

		actor := ActorFrom(c)
		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user_id", actor.UserID),
			zap.String("role", actor.Role),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithActor(ctx, actor)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
