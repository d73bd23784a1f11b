package attendanceerrors

import (
	"net/http"

	"github.com/Zamy17/absensi-karyawan/internal/shared/apperror"
)

var (
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Data absensi tidak ditemukan",
		http.StatusNotFound,
	)
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"Karyawan sudah absen masuk hari ini",
		http.StatusConflict,
	)
	ErrOutsideCheckInWindow = apperror.New(
		apperror.CodeInvalidState,
		"Absen masuk hanya dapat dilakukan antara pukul 05:00 dan 11:00",
		http.StatusUnprocessableEntity,
	)
	ErrOutsideCheckOutWindow = apperror.New(
		apperror.CodeInvalidState,
		"Absen pulang hanya dapat dilakukan antara pukul 17:00 dan 23:00",
		http.StatusUnprocessableEntity,
	)
	ErrNotWorkday = apperror.New(
		apperror.CodeInvalidState,
		"Tidak dapat absen di luar hari kerja",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Format tanggal tidak valid, gunakan YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Tanggal akhir tidak boleh sebelum tanggal awal",
		http.StatusBadRequest,
	)
	ErrInvalidGuardID = apperror.New(
		apperror.CodeInvalidInput,
		"ID satpam tidak valid",
		http.StatusBadRequest,
	)
	ErrGuardNotFound = apperror.New(
		apperror.CodeNotFound,
		"Satpam tidak ditemukan",
		http.StatusNotFound,
	)
)

// ErrNotEligible membungkus alasan penolakan dari pemeriksa kelayakan
// menjadi error yang siap dikirim ke klien.
func ErrNotEligible(reason string) *apperror.AppError {
	return apperror.New(apperror.CodeInvalidState, reason, http.StatusConflict)
}
