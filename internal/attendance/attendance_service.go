package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	attendanceerrors "github.com/Zamy17/absensi-karyawan/internal/attendance/errors"
	"github.com/Zamy17/absensi-karyawan/internal/employee"
	employeeerrors "github.com/Zamy17/absensi-karyawan/internal/employee/errors"
	"github.com/Zamy17/absensi-karyawan/internal/events"
	"github.com/Zamy17/absensi-karyawan/internal/messaging/kafka"
	"github.com/Zamy17/absensi-karyawan/internal/shared/contextutil"
	"github.com/Zamy17/absensi-karyawan/internal/shared/dateutil"
	"github.com/Zamy17/absensi-karyawan/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	CheckIn(ctx context.Context, employeeID, guardID string) (RecordResponse, error)
	CheckOut(ctx context.Context, employeeID, guardID string) (RecordResponse, error)
	GetByDate(ctx context.Context, date string) ([]RecordResponse, error)
	GetDailyReport(ctx context.Context, date string) (DailyReportResponse, error)
	GetByDateRange(ctx context.Context, startDate, endDate string) ([]RecordResponse, error)
	GetByEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]RecordResponse, error)
	GetByGuard(ctx context.Context, guardID, date string) ([]RecordResponse, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	employees employee.Service
	users     user.Repository
	outbox    kafka.OutboxRepository
	nowFn     func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	employees employee.Service,
	users user.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		users:     users,
		outbox:    outbox,
		nowFn:     time.Now,
		logger:    l,
	}
}

// CheckIn mencatat absen masuk karyawan yang dikonfirmasi satpam.
// Status dihitung sekali dari jam dinding saat ini dan tidak pernah
// dihitung ulang. Insert dilindungi unique constraint per
// (karyawan, tanggal); yang kalah race mendapat ErrAlreadyCheckedIn.
func (s *service) CheckIn(ctx context.Context, employeeID, guardID string) (RecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	emp, guard, err := s.resolveActors(ctx, employeeID, guardID)
	if err != nil {
		return RecordResponse{}, err
	}

	now := s.nowFn()
	if !dateutil.IsWorkday(now) {
		return RecordResponse{}, attendanceerrors.ErrNotWorkday
	}
	if !dateutil.WithinCheckInWindow(now) {
		return RecordResponse{}, attendanceerrors.ErrOutsideCheckInWindow
	}

	date := dateutil.FormatDate(now)
	checkInTime := dateutil.FormatTime(now)

	tx, commit, rollback, err := s.begin(ctx)
	if err != nil {
		return RecordResponse{}, err
	}
	defer rollback()

	qtx := s.repo
	if tx != nil {
		qtx = s.repo.WithTx(tx)
	}

	existing, err := qtx.FindByEmployeeAndDate(ctx, emp.ID.String(), date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return RecordResponse{}, err
	}

	var today []Record
	if err == nil {
		today = []Record{*existing}
	}
	if decision := CanCheckIn(*emp, today, now); !decision.Allowed {
		return RecordResponse{}, attendanceerrors.ErrNotEligible(decision.Reason)
	}

	rec := &Record{
		ID:               uuid.New(),
		EmployeeID:       emp.ID,
		EmployeeName:     emp.Name,
		Position:         emp.Position,
		Date:             date,
		CheckInTime:      &checkInTime,
		CheckInGuardID:   &guard.ID,
		CheckInGuardName: &guard.Name,
		Status:           ClassifyAt(now),
	}

	if err := qtx.Create(ctx, rec); err != nil {
		s.logger.Warn("create attendance record failed",
			zap.String("request_id", rid),
			zap.String("employee_id", emp.ID.String()),
			zap.String("date", date),
			zap.Error(err),
		)
		return RecordResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueEvent(ctx, tx, rid, rec, events.TypeAttendanceCheckedIn, *guard, checkInTime, now); err != nil {
		return RecordResponse{}, err
	}

	if err := commit(); err != nil {
		return RecordResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("check-in recorded",
		zap.String("request_id", rid),
		zap.String("employee_id", emp.ID.String()),
		zap.String("date", date),
		zap.String("status", string(rec.Status)),
	)
	return mapToResponse(*rec), nil
}

// CheckOut mencatat absen pulang. Absen pulang tidak mengubah status;
// status milik absen masuk.
func (s *service) CheckOut(ctx context.Context, employeeID, guardID string) (RecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	emp, guard, err := s.resolveActors(ctx, employeeID, guardID)
	if err != nil {
		return RecordResponse{}, err
	}

	now := s.nowFn()
	if !dateutil.IsWorkday(now) {
		return RecordResponse{}, attendanceerrors.ErrNotWorkday
	}
	if !dateutil.WithinCheckOutWindow(now) {
		return RecordResponse{}, attendanceerrors.ErrOutsideCheckOutWindow
	}

	date := dateutil.FormatDate(now)
	checkOutTime := dateutil.FormatTime(now)

	tx, commit, rollback, err := s.begin(ctx)
	if err != nil {
		return RecordResponse{}, err
	}
	defer rollback()

	qtx := s.repo
	if tx != nil {
		qtx = s.repo.WithTx(tx)
	}

	rec, err := qtx.FindByEmployeeAndDate(ctx, emp.ID.String(), date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, attendanceerrors.ErrNotEligible(emp.Name + " belum absen masuk hari ini")
		}
		return RecordResponse{}, err
	}

	if decision := CanCheckOut(*emp, []Record{*rec}, now); !decision.Allowed {
		return RecordResponse{}, attendanceerrors.ErrNotEligible(decision.Reason)
	}

	rec.CheckOutTime = &checkOutTime
	rec.CheckOutGuardID = &guard.ID
	rec.CheckOutGuardName = &guard.Name

	if err := qtx.Update(ctx, rec); err != nil {
		return RecordResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueEvent(ctx, tx, rid, rec, events.TypeAttendanceCheckedOut, *guard, checkOutTime, now); err != nil {
		return RecordResponse{}, err
	}

	if err := commit(); err != nil {
		return RecordResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("check-out recorded",
		zap.String("request_id", rid),
		zap.String("employee_id", emp.ID.String()),
		zap.String("date", date),
	)
	return mapToResponse(*rec), nil
}

func (s *service) GetByDate(ctx context.Context, date string) ([]RecordResponse, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	recs, err := s.repo.FindAllByDate(ctx, date)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapAllToResponse(recs), nil
}

// GetDailyReport mengembalikan satu entri per karyawan aktif untuk
// tanggal tersebut; karyawan tanpa record tampil sebagai tidak hadir.
// Entri sintetis tidak pernah ditulis ke store.
func (s *service) GetDailyReport(ctx context.Context, date string) (DailyReportResponse, error) {
	if err := validateDate(date); err != nil {
		return DailyReportResponse{}, err
	}

	recs, err := s.repo.FindAllByDate(ctx, date)
	if err != nil {
		return DailyReportResponse{}, mapRepositoryError(err)
	}

	roster, err := s.employees.GetRoster(ctx)
	if err != nil {
		return DailyReportResponse{}, err
	}

	complete := Reconcile(recs, roster, date)
	return DailyReportResponse{
		Date:    date,
		Records: mapAllToResponse(complete),
		Stats:   CountStats(complete),
	}, nil
}

func (s *service) GetByDateRange(ctx context.Context, startDate, endDate string) ([]RecordResponse, error) {
	if err := validateRange(startDate, endDate); err != nil {
		return nil, err
	}

	recs, err := s.repo.FindByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapAllToResponse(recs), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]RecordResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	if err := validateRange(startDate, endDate); err != nil {
		return nil, err
	}

	recs, err := s.repo.FindByEmployeeAndRange(ctx, employeeID, startDate, endDate)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapAllToResponse(recs), nil
}

func (s *service) GetByGuard(ctx context.Context, guardID, date string) ([]RecordResponse, error) {
	if _, err := uuid.Parse(guardID); err != nil {
		return nil, attendanceerrors.ErrInvalidGuardID
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	recs, err := s.repo.FindByGuardAndDate(ctx, guardID, date)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapAllToResponse(recs), nil
}

// resolveActors memvalidasi dan memuat karyawan serta satpam yang
// terlibat. Karyawan dicari lewat roster agar memakai cache.
func (s *service) resolveActors(ctx context.Context, employeeID, guardID string) (*employee.Employee, *user.User, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, nil, employeeerrors.ErrInvalidEmployeeID
	}
	if _, err := uuid.Parse(guardID); err != nil {
		return nil, nil, attendanceerrors.ErrInvalidGuardID
	}

	guard, err := s.users.FindByID(ctx, guardID)
	if err != nil || guard.Role != user.RoleGuard {
		return nil, nil, attendanceerrors.ErrGuardNotFound
	}

	roster, err := s.employees.GetRoster(ctx)
	if err != nil {
		return nil, nil, err
	}
	for i := range roster {
		if roster[i].ID.String() == employeeID {
			return &roster[i], guard, nil
		}
	}
	return nil, nil, employeeerrors.ErrEmployeeNotFound
}

// enqueueEvent menulis event absensi ke outbox pada transaksi yang sama
// dengan record-nya. Outbox nil berarti publikasi event dimatikan.
func (s *service) enqueueEvent(
	ctx context.Context,
	tx *gorm.DB,
	requestID string,
	rec *Record,
	eventType string,
	guard user.User,
	eventTime string,
	now time.Time,
) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.AttendanceRecorded{
		EventType:    eventType,
		RecordID:     rec.ID.String(),
		EmployeeID:   rec.EmployeeID.String(),
		EmployeeName: rec.EmployeeName,
		GuardID:      guard.ID.String(),
		GuardName:    guard.Name,
		Date:         rec.Date,
		Time:         eventTime,
		Status:       string(rec.Status),
		OccurredAt:   now,
	})
	if err != nil {
		return err
	}

	outbox := s.outbox
	if tx != nil {
		outbox = s.outbox.WithTx(tx)
	}

	return outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     requestID,
		AggregateType: "attendance",
		AggregateID:   rec.ID.String(),
		EventType:     eventType,
		Topic:         events.TopicAttendanceRecorded,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// begin membuka transaksi bila service punya koneksi database; tanpa
// koneksi (di unit test dengan repo palsu) operasi berjalan langsung.
func (s *service) begin(ctx context.Context) (tx *gorm.DB, commit func() error, rollback func(), err error) {
	if s.db == nil {
		return nil, func() error { return nil }, func() {}, nil
	}

	tx = s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, nil, nil, tx.Error
	}

	committed := false
	commit = func() error {
		if err := tx.Commit().Error; err != nil {
			return err
		}
		committed = true
		return nil
	}
	rollback = func() {
		if !committed {
			tx.Rollback()
		}
	}
	return tx, commit, rollback, nil
}

func validateDate(date string) error {
	if _, err := time.ParseInLocation(dateutil.DateLayout, date, time.Local); err != nil {
		return attendanceerrors.ErrInvalidDate
	}
	return nil
}

func validateRange(startDate, endDate string) error {
	if err := validateDate(startDate); err != nil {
		return err
	}
	if err := validateDate(endDate); err != nil {
		return err
	}
	if endDate < startDate {
		return attendanceerrors.ErrInvalidDateRange
	}
	return nil
}

func mapToResponse(r Record) RecordResponse {
	resp := RecordResponse{
		EmployeeID:        r.EmployeeID.String(),
		EmployeeName:      r.EmployeeName,
		Position:          r.Position,
		Date:              r.Date,
		CheckInTime:       r.CheckInTime,
		CheckInGuardName:  r.CheckInGuardName,
		CheckOutTime:      r.CheckOutTime,
		CheckOutGuardName: r.CheckOutGuardName,
		Status:            string(r.Status),
	}
	if r.ID != uuid.Nil {
		resp.ID = r.ID.String()
	}
	return resp
}

func mapAllToResponse(recs []Record) []RecordResponse {
	resp := make([]RecordResponse, len(recs))
	for i, r := range recs {
		resp[i] = mapToResponse(r)
	}
	return resp
}
