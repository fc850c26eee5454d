package export

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
	exports := r.Group("/exports")
	{
		exports.GET("/yellow-page/:gymId", middleware.RBACAuthorize(rbacService, "yellow_page", "read"), handler.YellowPage)
	}
}
