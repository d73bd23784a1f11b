package report

import (
	"net/http"
	"strconv"
	"time"

	reporterrors "github.com/Zamy17/absensi-karyawan/internal/report/errors"
	"github.com/Zamy17/absensi-karyawan/internal/shared/apperror"
	"github.com/Zamy17/absensi-karyawan/internal/shared/dateutil"
	"github.com/Zamy17/absensi-karyawan/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func yearMonthParams(c *gin.Context) (int, int, error) {
	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		return 0, 0, reporterrors.ErrInvalidYear
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		return 0, 0, reporterrors.ErrInvalidMonth
	}
	return year, month, nil
}

func writeWorkbook(c *gin.Context, f *excelize.File, filename string) {
	defer f.Close()

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		// header sudah terkirim, cukup putus respons
		c.Abort()
	}
}

func (h *Handler) GetMonthlyRanking(c *gin.Context) {
	year, month, err := yearMonthParams(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetMonthlyRanking(c.Request.Context(), year, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportMonthlyRanking(c *gin.Context) {
	year, month, err := yearMonthParams(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	f, filename, err := h.service.ExportMonthlyRanking(c.Request.Context(), year, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeWorkbook(c, f, filename)
}

func (h *Handler) ExportDailyAttendance(c *gin.Context) {
	date := c.DefaultQuery("date", dateutil.Today())

	f, filename, err := h.service.ExportDailyAttendance(c.Request.Context(), date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeWorkbook(c, f, filename)
}

func (h *Handler) ExportRangeAttendance(c *gin.Context) {
	start := c.Query("start_date")
	end := c.Query("end_date")

	f, filename, err := h.service.ExportRangeAttendance(c.Request.Context(), start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeWorkbook(c, f, filename)
}
