package timeoff

import (
	"github.com/SirTuppy/route-setter-scheduler/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes expects r to already carry the auth middleware.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	timeOff := r.Group("/time-off")
	{
		timeOff.GET("", middleware.RBACAuthorize(rbacService, "timeoff", "read"), handler.GetAll)
		timeOff.GET("/:id", middleware.RBACAuthorize(rbacService, "timeoff", "read"), handler.GetByID)
		timeOff.GET("/:id/conflicts", middleware.RBACAuthorize(rbacService, "timeoff", "read"), handler.Conflicts)
		timeOff.POST("", middleware.RBACAuthorize(rbacService, "timeoff", "create"), handler.Create)

		timeOff.POST("/:id/approve",
			middleware.RBACAuthorize(rbacService, "timeoff", "approve"),
			middleware.Idempotency(rdb),
			handler.Approve,
		)
		timeOff.POST("/:id/deny", middleware.RBACAuthorize(rbacService, "timeoff", "approve"), handler.Deny)
	}
}
