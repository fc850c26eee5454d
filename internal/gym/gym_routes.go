package gym

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
	gyms := r.Group("/gyms")
	{
		gyms.GET("", middleware.RBACAuthorize(rbacService, "gym", "read"), handler.GetAll)
		gyms.GET("/export.csv", middleware.RBACAuthorize(rbacService, "export", "read"), handler.ExportCSV)
		gyms.GET("/:id", middleware.RBACAuthorize(rbacService, "gym", "read"), handler.GetByID)
		gyms.POST("", middleware.RBACAuthorize(rbacService, "gym", "write"), handler.Create)
		gyms.PUT("/:id", middleware.RBACAuthorize(rbacService, "gym", "write"), handler.Update)

		gyms.GET("/:id/walls", middleware.RBACAuthorize(rbacService, "wall", "read"), handler.GetWalls)
		gyms.POST("/:id/walls", middleware.RBACAuthorize(rbacService, "wall", "write"), handler.CreateWall)
		gyms.PUT("/:id/walls/:wallId", middleware.RBACAuthorize(rbacService, "wall", "write"), handler.UpdateWall)
	}
}
