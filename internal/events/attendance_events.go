package events

import "time"

// Topic per aggregate, versi di nama topic agar konsumen lama tidak
// pecah saat skema payload berubah.
const (
	TopicAttendanceRecorded = "attendance.recorded.v1"
)

const (
	TypeAttendanceCheckedIn  = "attendance.checked_in"
	TypeAttendanceCheckedOut = "attendance.checked_out"
)

// AttendanceRecorded diterbitkan lewat outbox pada transaksi yang sama
// dengan penulisan record absen, jadi event hanya ada bila record
// benar-benar tersimpan.
type AttendanceRecorded struct {
	EventType    string    `json:"event_type"`
	RecordID     string    `json:"record_id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	GuardID      string    `json:"guard_id"`
	GuardName    string    `json:"guard_name"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}
