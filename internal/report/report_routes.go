package report

import (
	"github.com/Zamy17/absensi-karyawan/internal/middleware"
	"github.com/Zamy17/absensi-karyawan/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("/monthly", middleware.RBACAuthorize(rbacService, "reports", "read"), h.GetMonthlyRanking)
		reports.GET("/monthly/export", middleware.RBACAuthorize(rbacService, "reports", "read"), h.ExportMonthlyRanking)
		reports.GET("/daily/export", middleware.RBACAuthorize(rbacService, "reports", "read"), h.ExportDailyAttendance)
		reports.GET("/range/export", middleware.RBACAuthorize(rbacService, "reports", "read"), h.ExportRangeAttendance)
	}
}
