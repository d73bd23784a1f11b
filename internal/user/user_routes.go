package user

import (
	"github.com/Zamy17/absensi-karyawan/internal/middleware"
	"github.com/Zamy17/absensi-karyawan/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	guards := r.Group("/guards")
	guards.Use(middleware.AuthMiddleware())
	{
		guards.GET("", middleware.RBACAuthorize(rbacService, "guards", "read"), h.GetGuards)
		guards.GET("/:id", middleware.RBACAuthorize(rbacService, "guards", "read"), h.GetGuardByID)
		guards.POST("", middleware.RBACAuthorize(rbacService, "guards", "write"), h.CreateGuard)
		guards.PUT("/:id", middleware.RBACAuthorize(rbacService, "guards", "write"), h.UpdateGuard)
		guards.DELETE("/:id", middleware.RBACAuthorize(rbacService, "guards", "write"), h.DeleteGuard)
	}
}
