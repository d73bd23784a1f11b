package employee

import (
	"github.com/Zamy17/absensi-karyawan/internal/middleware"
	"github.com/Zamy17/absensi-karyawan/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.RBACAuthorize(rbacService, "employees", "read"), h.GetAll)
		employees.GET("/:id", middleware.RBACAuthorize(rbacService, "employees", "read"), h.GetByID)
		employees.POST("", middleware.RBACAuthorize(rbacService, "employees", "write"), h.Create)
		employees.PUT("/:id", middleware.RBACAuthorize(rbacService, "employees", "write"), h.Update)
		employees.DELETE("/:id", middleware.RBACAuthorize(rbacService, "employees", "write"), h.Delete)
	}
}
