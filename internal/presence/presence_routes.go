package presence

import (
	"github.com/SirTuppy/route-setter-scheduler/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already carry the auth middleware.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	cells := r.Group("/cells")
	{
		cells.GET("/:cell/presence", middleware.RBACAuthorize(rbacService, "schedule", "read"), handler.Presence)
		cells.GET("/:cell/presence/stream", middleware.RBACAuthorize(rbacService, "schedule", "read"), handler.Stream)
		cells.POST("/:cell/focus", middleware.RBACAuthorize(rbacService, "presence", "write"), handler.Focus)
		cells.POST("/:cell/heartbeat", middleware.RBACAuthorize(rbacService, "presence", "write"), handler.Heartbeat)
		cells.POST("/:cell/blur", middleware.RBACAuthorize(rbacService, "presence", "write"), handler.Blur)
	}
}
