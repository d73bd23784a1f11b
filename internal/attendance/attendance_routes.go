package attendance

import (
	"github.com/Zamy17/absensi-karyawan/internal/middleware"
	"github.com/Zamy17/absensi-karyawan/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, idempotency gin.HandlerFunc) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.POST("/check-in", middleware.RBACAuthorize(rbacService, "attendances", "write"), idempotency, h.CheckIn)
		attendances.POST("/check-out", middleware.RBACAuthorize(rbacService, "attendances", "write"), idempotency, h.CheckOut)
		attendances.GET("", middleware.RBACAuthorize(rbacService, "attendances", "read"), h.GetByDate)
		attendances.GET("/daily-report", middleware.RBACAuthorize(rbacService, "attendances", "read"), h.GetDailyReport)
		attendances.GET("/range", middleware.RBACAuthorize(rbacService, "attendances", "read"), h.GetByDateRange)
		attendances.GET("/employee/:id", middleware.RBACAuthorize(rbacService, "attendances", "read"), h.GetByEmployee)
		attendances.GET("/guard/:id", middleware.RBACAuthorize(rbacService, "attendances", "read"), h.GetByGuard)
	}
}
