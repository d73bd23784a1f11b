package reporterrors

import (
	"net/http"

	"github.com/Zamy17/absensi-karyawan/internal/shared/apperror"
)

var (
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Bulan tidak valid, gunakan 1-12",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"Tahun tidak valid",
		http.StatusBadRequest,
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
)
