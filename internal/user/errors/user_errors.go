package usererrors

import (
	"net/http"

	"github.com/Zamy17/absensi-karyawan/internal/shared/apperror"
)

var (
	ErrGuardNotFound = apperror.New(
		apperror.CodeNotFound,
		"Satpam tidak ditemukan",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"ID pengguna tidak valid",
		http.StatusBadRequest,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Email sudah terdaftar",
		http.StatusConflict,
	)
)
