package attendance

import (
	"context"
	"testing"
	"time"

	attendanceerrors "github.com/Zamy17/absensi-karyawan/internal/attendance/errors"
	"github.com/Zamy17/absensi-karyawan/internal/employee"
	"github.com/Zamy17/absensi-karyawan/internal/messaging/kafka"
	"github.com/Zamy17/absensi-karyawan/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn                func(ctx context.Context, r *Record) error
	findByEmployeeAndDateFn func(ctx context.Context, employeeID, date string) (*Record, error)
	findAllByDateFn         func(ctx context.Context, date string) ([]Record, error)
	findByDateRangeFn       func(ctx context.Context, start, end string) ([]Record, error)
	findByEmployeeAndRangeFn func(ctx context.Context, employeeID, start, end string) ([]Record, error)
	findByGuardAndDateFn    func(ctx context.Context, guardID, date string) ([]Record, error)
	updateFn                func(ctx context.Context, r *Record) error
}

func (f *fakeRepo) WithTx(tx *gorm.DB) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, r *Record) error {
	return f.createFn(ctx, r)
}
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Record, error) {
	return f.findByEmployeeAndDateFn(ctx, employeeID, date)
}
func (f *fakeRepo) FindAllByDate(ctx context.Context, date string) ([]Record, error) {
	return f.findAllByDateFn(ctx, date)
}
func (f *fakeRepo) FindByDateRange(ctx context.Context, start, end string) ([]Record, error) {
	return f.findByDateRangeFn(ctx, start, end)
}
func (f *fakeRepo) FindByEmployeeAndRange(ctx context.Context, employeeID, start, end string) ([]Record, error) {
	return f.findByEmployeeAndRangeFn(ctx, employeeID, start, end)
}
func (f *fakeRepo) FindByGuardAndDate(ctx context.Context, guardID, date string) ([]Record, error) {
	return f.findByGuardAndDateFn(ctx, guardID, date)
}
func (f *fakeRepo) Update(ctx context.Context, r *Record) error {
	return f.updateFn(ctx, r)
}

type fakeEmployeeService struct {
	roster []employee.Employee
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, nil
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return nil, nil
}
func (f *fakeEmployeeService) GetRoster(ctx context.Context) ([]employee.Employee, error) {
	return f.roster, nil
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, nil
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, nil
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error { return nil }

type fakeUserRepo struct {
	guard *user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	if f.guard != nil && f.guard.ID.String() == id {
		return f.guard, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) FindAllByRole(ctx context.Context, role string) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error    { return nil }

type fakeOutbox struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error               { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

type serviceFixture struct {
	svc    *service
	repo   *fakeRepo
	outbox *fakeOutbox
	emp    employee.Employee
	guard  user.User
}

func newFixture(t *testing.T, now time.Time) *serviceFixture {
	t.Helper()

	emp := employee.Employee{ID: uuid.New(), Name: "Budi", Position: "Staff"}
	guard := user.User{ID: uuid.New(), Name: "Pak Satpam", Role: user.RoleGuard, IsActive: true}

	repo := &fakeRepo{
		createFn: func(ctx context.Context, r *Record) error { return nil },
		updateFn: func(ctx context.Context, r *Record) error { return nil },
		findByEmployeeAndDateFn: func(ctx context.Context, employeeID, date string) (*Record, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	outbox := &fakeOutbox{}

	svc := NewService(
		nil,
		repo,
		&fakeEmployeeService{roster: []employee.Employee{emp}},
		&fakeUserRepo{guard: &guard},
		outbox,
	).(*service)
	svc.nowFn = func() time.Time { return now }

	return &serviceFixture{svc: svc, repo: repo, outbox: outbox, emp: emp, guard: guard}
}

func TestService_CheckIn_Success(t *testing.T) {
	now := time.Date(2026, 3, 9, 7, 30, 15, 0, time.Local)
	fx := newFixture(t, now)

	var saved Record
	fx.repo.createFn = func(ctx context.Context, r *Record) error { saved = *r; return nil }

	resp, err := fx.svc.CheckIn(context.Background(), fx.emp.ID.String(), fx.guard.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, "2026-03-09", resp.Date)
	assert.Equal(t, string(StatusOnTime), resp.Status)
	assert.Equal(t, "07:30:15", *resp.CheckInTime)
	assert.Equal(t, "Pak Satpam", *resp.CheckInGuardName)
	assert.Equal(t, fx.guard.ID, *saved.CheckInGuardID)

	assert.Len(t, fx.outbox.events, 1)
	assert.Equal(t, "attendance", fx.outbox.events[0].AggregateType)
	assert.Equal(t, "attendance.checked_in", fx.outbox.events[0].EventType)
}

func TestService_CheckIn_LateClassification(t *testing.T) {
	now := time.Date(2026, 3, 9, 8, 10, 0, 0, time.Local)
	fx := newFixture(t, now)

	resp, err := fx.svc.CheckIn(context.Background(), fx.emp.ID.String(), fx.guard.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, string(StatusLate), resp.Status)
}

func TestService_CheckIn_AlreadyCheckedIn(t *testing.T) {
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.Local)
	fx := newFixture(t, now)

	checkIn := "07:10:00"
	fx.repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID, date string) (*Record, error) {
		return &Record{ID: uuid.New(), EmployeeID: fx.emp.ID, CheckInTime: &checkIn}, nil
	}

	_, err := fx.svc.CheckIn(context.Background(), fx.emp.ID.String(), fx.guard.ID.String())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sudah absen masuk hari ini")
	assert.Empty(t, fx.outbox.events)
}

func TestService_CheckIn_OutsideWindow(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.Local)
	fx := newFixture(t, now)

	_, err := fx.svc.CheckIn(context.Background(), fx.emp.ID.String(), fx.guard.ID.String())

	assert.ErrorIs(t, err, attendanceerrors.ErrOutsideCheckInWindow)
}

func TestService_CheckIn_LostRaceMapsToConflict(t *testing.T) {
	now := time.Date(2026, 3, 9, 7, 0, 0, 0, time.Local)
	fx := newFixture(t, now)

	// satpam lain menang insert lebih dulu
	fx.repo.createFn = func(ctx context.Context, r *Record) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_employee_date"}
	}

	_, err := fx.svc.CheckIn(context.Background(), fx.emp.ID.String(), fx.guard.ID.String())

	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
}

func TestService_CheckIn_UnknownGuard(t *testing.T) {
	now := time.Date(2026, 3, 9, 7, 0, 0, 0, time.Local)
	fx := newFixture(t, now)

	_, err := fx.svc.CheckIn(context.Background(), fx.emp.ID.String(), uuid.New().String())

	assert.ErrorIs(t, err, attendanceerrors.ErrGuardNotFound)
}

func TestService_CheckOut_Success(t *testing.T) {
	now := time.Date(2026, 3, 9, 17, 45, 30, 0, time.Local)
	fx := newFixture(t, now)

	checkIn := "07:10:00"
	fx.repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID, date string) (*Record, error) {
		return &Record{ID: uuid.New(), EmployeeID: fx.emp.ID, EmployeeName: fx.emp.Name, Date: date, CheckInTime: &checkIn, Status: StatusOnTime}, nil
	}

	var updated Record
	fx.repo.updateFn = func(ctx context.Context, r *Record) error { updated = *r; return nil }

	resp, err := fx.svc.CheckOut(context.Background(), fx.emp.ID.String(), fx.guard.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, "17:45:30", *resp.CheckOutTime)
	assert.Equal(t, string(StatusOnTime), resp.Status)
	assert.Equal(t, fx.guard.ID, *updated.CheckOutGuardID)

	assert.Len(t, fx.outbox.events, 1)
	assert.Equal(t, "attendance.checked_out", fx.outbox.events[0].EventType)
}

func TestService_CheckOut_WithoutCheckIn(t *testing.T) {
	now := time.Date(2026, 3, 9, 17, 45, 0, 0, time.Local)
	fx := newFixture(t, now)

	_, err := fx.svc.CheckOut(context.Background(), fx.emp.ID.String(), fx.guard.ID.String())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "belum absen masuk hari ini")
}

func TestService_CheckOut_OutsideWindow(t *testing.T) {
	now := time.Date(2026, 3, 9, 23, 30, 0, 0, time.Local)
	fx := newFixture(t, now)

	_, err := fx.svc.CheckOut(context.Background(), fx.emp.ID.String(), fx.guard.ID.String())

	assert.ErrorIs(t, err, attendanceerrors.ErrOutsideCheckOutWindow)
}

func TestService_GetDailyReport_ReconcilesRoster(t *testing.T) {
	now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.Local)
	fx := newFixture(t, now)

	sari := employee.Employee{ID: uuid.New(), Name: "Sari", Position: "Manager"}
	fx.svc.employees = &fakeEmployeeService{roster: []employee.Employee{fx.emp, sari}}

	checkIn := "08:20:00"
	fx.repo.findAllByDateFn = func(ctx context.Context, date string) ([]Record, error) {
		return []Record{{
			ID:           uuid.New(),
			EmployeeID:   fx.emp.ID,
			EmployeeName: fx.emp.Name,
			Position:     fx.emp.Position,
			Date:         date,
			CheckInTime:  &checkIn,
			Status:       StatusLate,
		}}, nil
	}

	report, err := fx.svc.GetDailyReport(context.Background(), "2026-03-09")

	assert.NoError(t, err)
	assert.Len(t, report.Records, 2)
	assert.Equal(t, 2, report.Stats.Total)
	assert.Equal(t, 1, report.Stats.Late)
	assert.Equal(t, 1, report.Stats.Absent)
	assert.Equal(t, string(StatusAbsent), report.Records[1].Status)
}

func TestService_CheckIn_CommitsTransaction(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer sqlDB.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	now := time.Date(2026, 3, 9, 7, 0, 0, 0, time.Local)
	fx := newFixture(t, now)
	fx.svc.db = gormDB

	mock.ExpectBegin()
	mock.ExpectCommit()

	_, err = fx.svc.CheckIn(context.Background(), fx.emp.ID.String(), fx.guard.ID.String())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CheckIn_RollsBackWhenNotEligible(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer sqlDB.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	now := time.Date(2026, 3, 9, 7, 0, 0, 0, time.Local)
	fx := newFixture(t, now)
	fx.svc.db = gormDB

	checkIn := "06:30:00"
	fx.repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID, date string) (*Record, error) {
		return &Record{ID: uuid.New(), EmployeeID: fx.emp.ID, CheckInTime: &checkIn}, nil
	}

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err = fx.svc.CheckIn(context.Background(), fx.emp.ID.String(), fx.guard.ID.String())

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetByDateRange_Validation(t *testing.T) {
	fx := newFixture(t, time.Now())

	_, err := fx.svc.GetByDateRange(context.Background(), "2026-03-31", "2026-03-01")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateRange)

	_, err = fx.svc.GetByDateRange(context.Background(), "31-03-2026", "2026-03-31")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)
}
