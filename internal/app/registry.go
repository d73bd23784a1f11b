package app

import (
	"os"
	"path/filepath"

	"github.com/Zamy17/absensi-karyawan/internal/attendance"
	"github.com/Zamy17/absensi-karyawan/internal/auth"
	"github.com/Zamy17/absensi-karyawan/internal/employee"
	"github.com/Zamy17/absensi-karyawan/internal/messaging/kafka"
	"github.com/Zamy17/absensi-karyawan/internal/middleware"
	"github.com/Zamy17/absensi-karyawan/internal/rbac"
	"github.com/Zamy17/absensi-karyawan/internal/rbac/infra"
	"github.com/Zamy17/absensi-karyawan/internal/report"
	"github.com/Zamy17/absensi-karyawan/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(
		filepath.Join("config", "rbac", "model.conf"),
		filepath.Join("config", "rbac", "policy.csv"),
	)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	emailFallback := os.Getenv("ROLE_EMAIL_FALLBACK") == "true"
	authService := auth.NewService(userRepo, emailFallback)
	employeeService := employee.NewService(employeeRepo, rdb)
	guardService := user.NewService(userRepo)
	attendanceService := attendance.NewService(gormDB, attendanceRepo, employeeService, userRepo, outboxRepo)
	reportService := report.NewService(attendanceRepo, employeeService)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	guardHandler := user.NewHandler(guardService)
	attendanceHandler := attendance.NewHandlerWithRedis(attendanceService, rdb)
	reportHandler := report.NewHandler(reportService)

	// --- Global middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(rate.Limit(20), 40))
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		user.RegisterRoutes(api, guardHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, middleware.Idempotency(rdb))
		report.RegisterRoutes(api, reportHandler, rbacService)
	}

	return nil
}
