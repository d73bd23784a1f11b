package attendance

import (
	"testing"
	"time"

	"github.com/Zamy17/absensi-karyawan/internal/employee"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func workdayMorning() time.Time {
	return time.Date(2026, 3, 9, 7, 30, 0, 0, time.Local)
}

func workdayEvening() time.Time {
	return time.Date(2026, 3, 9, 17, 30, 0, 0, time.Local)
}

func TestCanCheckIn_Allowed(t *testing.T) {
	budi := employee.Employee{ID: uuid.New(), Name: "Budi"}

	d := CanCheckIn(budi, nil, workdayMorning())

	assert.True(t, d.Allowed)
	assert.Empty(t, d.Reason)
}

func TestCanCheckIn_AlreadyCheckedIn(t *testing.T) {
	budi := employee.Employee{ID: uuid.New(), Name: "Budi"}
	checkIn := "07:10:00"
	today := []Record{{EmployeeID: budi.ID, CheckInTime: &checkIn, Status: StatusOnTime}}

	d := CanCheckIn(budi, today, workdayMorning())

	assert.False(t, d.Allowed)
	assert.Equal(t, "Budi sudah absen masuk hari ini pada 07:10:00", d.Reason)
}

func TestCanCheckIn_OtherEmployeeRecordIgnored(t *testing.T) {
	budi := employee.Employee{ID: uuid.New(), Name: "Budi"}
	checkIn := "07:10:00"
	today := []Record{{EmployeeID: uuid.New(), CheckInTime: &checkIn}}

	d := CanCheckIn(budi, today, workdayMorning())

	assert.True(t, d.Allowed)
}

func TestCanCheckOut_RequiresCheckIn(t *testing.T) {
	budi := employee.Employee{ID: uuid.New(), Name: "Budi"}

	d := CanCheckOut(budi, nil, workdayEvening())

	assert.False(t, d.Allowed)
	assert.Equal(t, "Budi belum absen masuk hari ini", d.Reason)
}

func TestCanCheckOut_AlreadyCheckedOut(t *testing.T) {
	budi := employee.Employee{ID: uuid.New(), Name: "Budi"}
	checkIn := "07:10:00"
	checkOut := "17:05:00"
	today := []Record{{EmployeeID: budi.ID, CheckInTime: &checkIn, CheckOutTime: &checkOut}}

	d := CanCheckOut(budi, today, workdayEvening())

	assert.False(t, d.Allowed)
	assert.Equal(t, "Budi sudah absen pulang hari ini pada 17:05:00", d.Reason)
}

func TestCanCheckOut_Allowed(t *testing.T) {
	budi := employee.Employee{ID: uuid.New(), Name: "Budi"}
	checkIn := "07:10:00"
	today := []Record{{EmployeeID: budi.ID, CheckInTime: &checkIn}}

	d := CanCheckOut(budi, today, workdayEvening())

	assert.True(t, d.Allowed)
}

func TestEligibility_WeekendIsStillWorkday(t *testing.T) {
	budi := employee.Employee{ID: uuid.New(), Name: "Budi"}
	sunday := time.Date(2026, 3, 8, 7, 30, 0, 0, time.Local)

	d := CanCheckIn(budi, nil, sunday)

	assert.True(t, d.Allowed)
}
