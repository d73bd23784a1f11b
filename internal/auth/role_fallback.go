package auth

import (
	"strings"

	"github.com/Zamy17/absensi-karyawan/internal/user"
)

// RoleFromEmail menebak peran dari pola alamat email. Ini HANYA dipakai
// sebagai degraded-mode ketika pencarian peran ke database gagal, dan
// harus diaktifkan eksplisit lewat ROLE_EMAIL_FALLBACK; jalur utama
// selalu membaca kolom role dari tabel users.
func RoleFromEmail(email string) string {
	if email == "" {
		return user.RoleUser
	}

	email = strings.ToLower(email)
	switch {
	case strings.Contains(email, "admin"):
		return user.RoleAdmin
	case strings.Contains(email, "satpam"), strings.Contains(email, "guard"):
		return user.RoleGuard
	default:
		return user.RoleUser
	}
}
