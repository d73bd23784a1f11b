package attendance

import "time"

// Batas klasifikasi, dalam detik sejak tengah malam. 08:00:00 masih
// tepat waktu; 08:30:00 masih terlambat biasa.
const (
	onTimeLimitSeconds = 8 * 3600       // 08:00:00
	lateLimitSeconds   = 8*3600 + 30*60 // 08:30:00
)

// Classify memetakan jam masuk (HH:MM:SS) ke status kehadiran.
// Dipanggil tepat satu kali saat absen masuk memakai jam dinding saat
// itu; status yang sudah tersimpan tidak pernah dihitung ulang.
// Jam masuk kosong atau tidak valid berarti tidak hadir.
func Classify(checkInTime string) Status {
	if checkInTime == "" {
		return StatusAbsent
	}

	t, err := time.Parse("15:04:05", checkInTime)
	if err != nil {
		return StatusAbsent
	}

	seconds := t.Hour()*3600 + t.Minute()*60 + t.Second()
	switch {
	case seconds <= onTimeLimitSeconds:
		return StatusOnTime
	case seconds <= lateLimitSeconds:
		return StatusLate
	default:
		return StatusVeryLate
	}
}

// ClassifyAt adalah Classify untuk sebuah instant, dipakai perekam
// absen masuk.
func ClassifyAt(t time.Time) Status {
	seconds := t.Hour()*3600 + t.Minute()*60 + t.Second()
	switch {
	case seconds <= onTimeLimitSeconds:
		return StatusOnTime
	case seconds <= lateLimitSeconds:
		return StatusLate
	default:
		return StatusVeryLate
	}
}
