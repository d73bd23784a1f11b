package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status hasil klasifikasi absen masuk. "Tidak Hadir" tidak pernah
// disimpan untuk hari yang punya record nyata; ia hanya disintesis saat
// rekonsiliasi.
type Status string

const (
	StatusOnTime   Status = "Tepat Waktu"
	StatusLate     Status = "Terlambat"
	StatusVeryLate Status = "Sangat Terlambat"
	StatusAbsent   Status = "Tidak Hadir"
)

// Record adalah absensi satu karyawan pada satu tanggal. Unique index
// (employee_id, date) menjamin paling banyak satu record per pasangan
// itu; dua satpam yang mencatat karyawan yang sama nyaris bersamaan
// akan beradu di constraint ini, bukan menghasilkan duplikat.
type Record struct {
	ID                uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID        uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date;index"`
	EmployeeName      string         `gorm:"column:employee_name;type:varchar(255);not null"`
	Position          string         `gorm:"column:position;type:varchar(100);not null"`
	Date              string         `gorm:"column:date;type:varchar(10);not null;uniqueIndex:uq_attendance_employee_date;index"`
	CheckInTime       *string        `gorm:"column:check_in_time;type:varchar(8)"`
	CheckInGuardID    *uuid.UUID     `gorm:"column:check_in_guard_id;type:uuid;index"`
	CheckInGuardName  *string        `gorm:"column:check_in_guard_name;type:varchar(255)"`
	CheckOutTime      *string        `gorm:"column:check_out_time;type:varchar(8)"`
	CheckOutGuardID   *uuid.UUID     `gorm:"column:check_out_guard_id;type:uuid;index"`
	CheckOutGuardName *string        `gorm:"column:check_out_guard_name;type:varchar(255)"`
	Status            Status         `gorm:"column:status;type:varchar(20);not null"`
	CreatedAt         time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Record) TableName() string {
	return "attendance_records"
}

// HasCheckedIn melaporkan apakah record sudah punya jam masuk.
func (r Record) HasCheckedIn() bool {
	return r.CheckInTime != nil && *r.CheckInTime != ""
}

// HasCheckedOut melaporkan apakah record sudah punya jam pulang.
func (r Record) HasCheckedOut() bool {
	return r.CheckOutTime != nil && *r.CheckOutTime != ""
}
