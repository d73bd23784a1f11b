package attendance

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Zamy17/absensi-karyawan/internal/shared/apperror"
	"github.com/Zamy17/absensi-karyawan/internal/shared/contextutil"
	"github.com/Zamy17/absensi-karyawan/internal/shared/dateutil"
	"github.com/Zamy17/absensi-karyawan/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// releaseIdempotencyLock dipanggil lewat defer agar lock baru lepas
// setelah handler selesai memproses.
func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	lockKey := c.GetString("idempotency_lock_key")
	if h.rdb != nil && lockKey != "" {
		h.rdb.Del(c.Request.Context(), lockKey)
	}
}

func (h *Handler) cacheIdempotentResponse(c *gin.Context, cacheKey string, resp any) {
	if h.rdb == nil || cacheKey == "" {
		return
	}
	if payload, err := json.Marshal(resp); err == nil {
		_ = h.rdb.Set(c.Request.Context(), cacheKey, payload, 24*time.Hour).Err()
	}
}

// CheckIn dikonfirmasi oleh satpam yang sedang login; identitasnya
// diambil dari token, bukan dari body request.
func (h *Handler) CheckIn(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)
	cacheKey := c.GetString("idempotency_cache_key")

	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	guardID := contextutil.GetUserID(c.Request.Context())
	resp, err := h.service.CheckIn(c.Request.Context(), req.EmployeeID, guardID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResponse(c, cacheKey, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CheckOut(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)
	cacheKey := c.GetString("idempotency_cache_key")

	var req CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	guardID := contextutil.GetUserID(c.Request.Context())
	resp, err := h.service.CheckOut(c.Request.Context(), req.EmployeeID, guardID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResponse(c, cacheKey, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByDate(c *gin.Context) {
	date := c.DefaultQuery("date", dateutil.Today())
	resp, err := h.service.GetByDate(c.Request.Context(), date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetDailyReport(c *gin.Context) {
	date := c.DefaultQuery("date", dateutil.Today())
	resp, err := h.service.GetDailyReport(c.Request.Context(), date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByDateRange(c *gin.Context) {
	start := c.Query("start_date")
	end := c.Query("end_date")
	resp, err := h.service.GetByDateRange(c.Request.Context(), start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	start := c.Query("start_date")
	end := c.Query("end_date")
	resp, err := h.service.GetByEmployee(c.Request.Context(), c.Param("id"), start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByGuard(c *gin.Context) {
	date := c.DefaultQuery("date", dateutil.Today())
	resp, err := h.service.GetByGuard(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
