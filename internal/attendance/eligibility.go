package attendance

import (
	"fmt"
	"time"

	"github.com/Zamy17/absensi-karyawan/internal/employee"
	"github.com/Zamy17/absensi-karyawan/internal/shared/dateutil"
)

// Decision adalah hasil pemeriksaan kelayakan absen. Reason hanya
// terisi saat Allowed false dan sudah siap ditampilkan ke pengguna.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// CanCheckIn memeriksa apakah karyawan boleh absen masuk pada instant
// now, berdasarkan record hari itu. today boleh kosong.
func CanCheckIn(e employee.Employee, today []Record, now time.Time) Decision {
	if !dateutil.IsWorkday(now) {
		return deny("Tidak dapat absen masuk di luar hari kerja")
	}

	for _, r := range today {
		if r.EmployeeID != e.ID {
			continue
		}
		if r.HasCheckedIn() {
			return deny(fmt.Sprintf("%s sudah absen masuk hari ini pada %s", e.Name, *r.CheckInTime))
		}
	}

	return allow()
}

// CanCheckOut memeriksa apakah karyawan boleh absen pulang. Absen
// pulang butuh absen masuk pada hari yang sama dan belum pernah absen
// pulang.
func CanCheckOut(e employee.Employee, today []Record, now time.Time) Decision {
	if !dateutil.IsWorkday(now) {
		return deny("Tidak dapat absen pulang di luar hari kerja")
	}

	for _, r := range today {
		if r.EmployeeID != e.ID {
			continue
		}
		if !r.HasCheckedIn() {
			break
		}
		if r.HasCheckedOut() {
			return deny(fmt.Sprintf("%s sudah absen pulang hari ini pada %s", e.Name, *r.CheckOutTime))
		}
		return allow()
	}

	return deny(fmt.Sprintf("%s belum absen masuk hari ini", e.Name))
}
