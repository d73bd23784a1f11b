package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Zamy17/absensi-karyawan/internal/attendance"
	"github.com/Zamy17/absensi-karyawan/internal/employee"
	reporterrors "github.com/Zamy17/absensi-karyawan/internal/report/errors"
	"github.com/Zamy17/absensi-karyawan/internal/shared/dateutil"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type Service interface {
	GetMonthlyRanking(ctx context.Context, year, month int) (MonthlyRankingResponse, error)
	ExportMonthlyRanking(ctx context.Context, year, month int) (*excelize.File, string, error)
	ExportDailyAttendance(ctx context.Context, date string) (*excelize.File, string, error)
	ExportRangeAttendance(ctx context.Context, startDate, endDate string) (*excelize.File, string, error)
}

type service struct {
	attendances attendance.Repository
	employees   employee.Service
	logger      *zap.Logger
}

func NewService(attendances attendance.Repository, employees employee.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		attendances: attendances,
		employees:   employees,
		logger:      l,
	}
}

func (s *service) GetMonthlyRanking(ctx context.Context, year, month int) (MonthlyRankingResponse, error) {
	stats, err := s.monthlyStats(ctx, year, month)
	if err != nil {
		return MonthlyRankingResponse{}, err
	}

	ranking := make([]MonthlyStatResponse, len(stats))
	for i, st := range stats {
		ranking[i] = MonthlyStatResponse{
			Rank:       i + 1,
			EmployeeID: st.EmployeeID,
			Name:       st.Name,
			Position:   st.Position,
			OnTime:     st.OnTime,
			Late:       st.Late,
			VeryLate:   st.VeryLate,
			Absent:     st.Absent,
			TotalDays:  st.TotalDays,
			Score:      st.Score,
			Percentage: st.Percentage,
		}
	}

	return MonthlyRankingResponse{
		Year:      year,
		Month:     month,
		MonthName: dateutil.MonthName(month),
		Ranking:   ranking,
	}, nil
}

func (s *service) ExportMonthlyRanking(ctx context.Context, year, month int) (*excelize.File, string, error) {
	stats, err := s.monthlyStats(ctx, year, month)
	if err != nil {
		return nil, "", err
	}

	f, err := BuildRankingWorkbook(year, month, stats)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("Peringkat_Karyawan_%s_%d.xlsx", dateutil.MonthName(month), year)
	return f, filename, nil
}

// ExportDailyAttendance mengekspor laporan harian yang sudah
// direkonsiliasi, jadi karyawan tidak hadir ikut tercetak.
func (s *service) ExportDailyAttendance(ctx context.Context, date string) (*excelize.File, string, error) {
	if _, err := time.ParseInLocation(dateutil.DateLayout, date, time.Local); err != nil {
		return nil, "", reporterrors.ErrInvalidDate
	}

	recs, err := s.attendances.FindAllByDate(ctx, date)
	if err != nil {
		return nil, "", err
	}
	roster, err := s.employees.GetRoster(ctx)
	if err != nil {
		return nil, "", err
	}

	complete := attendance.Reconcile(recs, roster, date)

	title := "LAPORAN ABSENSI " + date
	f, err := BuildAttendanceWorkbook(title, complete)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("Laporan_Absensi_%s.xlsx", date)
	return f, filename, nil
}

func (s *service) ExportRangeAttendance(ctx context.Context, startDate, endDate string) (*excelize.File, string, error) {
	if _, err := time.ParseInLocation(dateutil.DateLayout, startDate, time.Local); err != nil {
		return nil, "", reporterrors.ErrInvalidDate
	}
	if _, err := time.ParseInLocation(dateutil.DateLayout, endDate, time.Local); err != nil {
		return nil, "", reporterrors.ErrInvalidDate
	}
	if endDate < startDate {
		return nil, "", reporterrors.ErrInvalidDateRange
	}

	recs, err := s.attendances.FindByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, "", err
	}

	title := fmt.Sprintf("LAPORAN ABSENSI %s s.d. %s", startDate, endDate)
	f, err := BuildAttendanceWorkbook(title, recs)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("Laporan_Absensi_%s_%s.xlsx", startDate, endDate)
	return f, filename, nil
}

func (s *service) monthlyStats(ctx context.Context, year, month int) ([]MonthlyStat, error) {
	if month < 1 || month > 12 {
		return nil, reporterrors.ErrInvalidMonth
	}
	if year < 2000 || year > 2100 {
		return nil, reporterrors.ErrInvalidYear
	}

	start, end := dateutil.MonthRange(year, month)

	recs, err := s.attendances.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	roster, err := s.employees.GetRoster(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("monthly stats computed",
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("records", len(recs)),
		zap.Int("roster", len(roster)),
	)

	return BuildMonthlyStats(recs, roster, year, month), nil
}
