package attendance

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, r *Record) error
	FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Record, error)
	FindAllByDate(ctx context.Context, date string) ([]Record, error)
	FindByDateRange(ctx context.Context, startDate, endDate string) ([]Record, error)
	FindByEmployeeAndRange(ctx context.Context, employeeID, startDate, endDate string) ([]Record, error)
	FindByGuardAndDate(ctx context.Context, guardID, date string) ([]Record, error)
	Update(ctx context.Context, r *Record) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		First(&rec, "employee_id = ? AND date = ?", employeeID, date).Error
	return &rec, err
}

func (r *repository) FindAllByDate(ctx context.Context, date string) ([]Record, error) {
	var recs []Record
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("employee_name ASC").
		Find(&recs).Error
	return recs, err
}

func (r *repository) FindByDateRange(ctx context.Context, startDate, endDate string) ([]Record, error) {
	var recs []Record
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", startDate, endDate).
		Order("date ASC, employee_name ASC").
		Find(&recs).Error
	return recs, err
}

func (r *repository) FindByEmployeeAndRange(ctx context.Context, employeeID, startDate, endDate string) ([]Record, error) {
	var recs []Record
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date >= ? AND date <= ?", employeeID, startDate, endDate).
		Order("date ASC").
		Find(&recs).Error
	return recs, err
}

// FindByGuardAndDate mengembalikan record yang salah satu sisinya
// (masuk atau pulang) dikonfirmasi satpam tersebut.
func (r *repository) FindByGuardAndDate(ctx context.Context, guardID, date string) ([]Record, error) {
	var recs []Record
	err := r.db.WithContext(ctx).
		Where("date = ? AND (check_in_guard_id = ? OR check_out_guard_id = ?)", date, guardID, guardID).
		Order("employee_name ASC").
		Find(&recs).Error
	return recs, err
}

func (r *repository) Update(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}
