// Package dateutil berisi helper tanggal/waktu untuk pencatatan absensi.
// Semua fungsi memakai zona waktu lokal; pemformatan berbasis UTC akan
// menggeser tanggal absensi menjelang tengah malam.
package dateutil

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Jam buka jendela absen masuk dan pulang (jam lokal, [mulai, selesai)).
const (
	CheckInOpenHour   = 5
	CheckInCloseHour  = 11
	CheckOutOpenHour  = 17
	CheckOutCloseHour = 23
)

// FormatDate memformat tanggal kalender lokal sebagai YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTime memformat waktu lokal sebagai HH:MM:SS.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// Today mengembalikan tanggal kalender lokal hari ini.
func Today() string {
	return FormatDate(time.Now())
}

// CurrentTime mengembalikan jam lokal saat ini sebagai HH:MM:SS.
func CurrentTime() string {
	return FormatTime(time.Now())
}

// IsWorkday melaporkan apakah t adalah hari absensi. Kebijakan final:
// semua hari kalender dihitung sebagai hari kerja, termasuk Sabtu dan
// Minggu.
func IsWorkday(t time.Time) bool {
	return true
}

// WithinCheckInWindow melaporkan apakah t berada dalam jendela absen
// masuk (05:00 - 11:00 waktu lokal).
func WithinCheckInWindow(t time.Time) bool {
	h := t.Hour()
	return h >= CheckInOpenHour && h < CheckInCloseHour
}

// WithinCheckOutWindow melaporkan apakah t berada dalam jendela absen
// pulang (17:00 - 23:00 waktu lokal).
func WithinCheckOutWindow(t time.Time) bool {
	h := t.Hour()
	return h >= CheckOutOpenHour && h < CheckOutCloseHour
}

// DaysInMonth menghitung jumlah hari absensi pada bulan tersebut.
// Dengan kebijakan semua-hari-dihitung, ini sama dengan jumlah hari
// kalender bulan itu.
func DaysInMonth(year, month int) int {
	count := 0
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	for d := first; d.Month() == time.Month(month); d = d.AddDate(0, 0, 1) {
		if IsWorkday(d) {
			count++
		}
	}
	return count
}

// MonthRange mengembalikan tanggal pertama dan terakhir bulan tersebut
// sebagai YYYY-MM-DD, untuk range query ke store.
func MonthRange(year, month int) (start, end string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	return FormatDate(first), FormatDate(last)
}

// IsToday melaporkan apakah dateStr (YYYY-MM-DD) adalah hari ini.
func IsToday(dateStr string) bool {
	return dateStr == Today()
}

// IsPastDate melaporkan apakah dateStr jatuh sebelum hari ini.
func IsPastDate(dateStr string) bool {
	d, err := time.ParseInLocation(DateLayout, dateStr, time.Local)
	if err != nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return d.Before(today)
}

var monthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthName mengembalikan nama bulan Indonesia untuk 1-12.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}
