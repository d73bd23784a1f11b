package employeeerrors

import (
	"net/http"

	"github.com/Zamy17/absensi-karyawan/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Karyawan tidak ditemukan",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"ID karyawan tidak valid",
		http.StatusBadRequest,
	)
	ErrEmptyName = apperror.New(
		apperror.CodeInvalidInput,
		"Nama karyawan tidak boleh kosong",
		http.StatusBadRequest,
	)
)
