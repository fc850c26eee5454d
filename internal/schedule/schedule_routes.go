package schedule

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
	sched := r.Group("/schedule")
	{
		sched.GET("", middleware.RBACAuthorize(rbacService, "schedule", "read"), handler.GetWindow)
		sched.GET("/mine", middleware.RBACAuthorize(rbacService, "schedule", "read"), handler.Mine)
		sched.GET("/stream", middleware.RBACAuthorize(rbacService, "schedule", "read"), handler.Stream)
		sched.GET("/conflicts", middleware.RBACAuthorize(rbacService, "schedule", "read"), handler.Conflicts)
		sched.GET("/entries/:id", middleware.RBACAuthorize(rbacService, "schedule", "read"), handler.GetEntry)

		sched.PUT("/cells", middleware.RBACAuthorize(rbacService, "schedule", "write"), handler.SaveCell)
		sched.DELETE("/cells/:gymId/:date", middleware.RBACAuthorize(rbacService, "schedule", "write"), handler.ClearCell)
		sched.DELETE("/weeks/:start", middleware.RBACAuthorize(rbacService, "schedule", "clear"), handler.ClearWeek)
	}
}
