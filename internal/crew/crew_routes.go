package crew

import (
	"github.com/SirTuppy/route-setter-scheduler/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already carry the auth middleware.
func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
) {
	crews := r.Group("/crews")
	{
		crews.GET("", middleware.RBACAuthorize(rbacService, "crew", "read"), h.GetAll)
		crews.POST("", middleware.RBACAuthorize(rbacService, "crew", "write"), h.Create)
		crews.GET("/:id", middleware.RBACAuthorize(rbacService, "crew", "read"), h.GetById)
		crews.PUT("/:id", middleware.RBACAuthorize(rbacService, "crew", "write"), h.Update)
		crews.DELETE("/:id", middleware.RBACAuthorize(rbacService, "crew", "write"), h.Delete)

		crews.PUT("/:id/head-setter", middleware.RBACAuthorize(rbacService, "crew", "write"), h.SetHeadSetter)
		crews.PUT("/:id/assistant-head-setter", middleware.RBACAuthorize(rbacService, "crew", "update"), h.SetAssistantHeadSetter)
		crews.POST("/:id/members", middleware.RBACAuthorize(rbacService, "crew", "update"), h.AddMember)
		crews.DELETE("/:id/members/:userId", middleware.RBACAuthorize(rbacService, "crew", "update"), h.RemoveMember)
	}
}
