package attendance

import (
	"errors"
	"strings"

	attendanceerrors "github.com/Zamy17/absensi-karyawan/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrRecordNotFound
	}

	// Pelanggaran uq_attendance_employee_date berarti satpam lain
	// menang race absen masuk untuk karyawan dan tanggal yang sama.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return attendanceerrors.ErrAlreadyCheckedIn
	}
	if strings.Contains(err.Error(), "duplicate key value") {
		return attendanceerrors.ErrAlreadyCheckedIn
	}

	return err
}
