package autherrors

import (
	"net/http"

	"github.com/Zamy17/absensi-karyawan/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Email atau password salah",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Token tidak valid",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token sudah kedaluwarsa",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Refresh token tidak valid",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"Pengguna tidak ditemukan dalam database",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"ID pengguna tidak valid",
		http.StatusBadRequest,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Gagal membuat token",
		http.StatusInternalServerError,
	)
	ErrInactiveAccount = apperror.New(
		apperror.CodeForbidden,
		"Akun tidak aktif",
		http.StatusForbidden,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"Anda tidak memiliki akses ke resource ini",
		http.StatusForbidden,
	)
)
