package attendance

import (
	"testing"

	"github.com/Zamy17/absensi-karyawan/internal/employee"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReconcile_SynthesizesAbsentEntries(t *testing.T) {
	budi := employee.Employee{ID: uuid.New(), Name: "Budi", Position: "Staff"}
	sari := employee.Employee{ID: uuid.New(), Name: "Sari", Position: "Manager"}
	roster := []employee.Employee{budi, sari}

	checkIn := "07:45:00"
	raw := []Record{{
		ID:           uuid.New(),
		EmployeeID:   budi.ID,
		EmployeeName: budi.Name,
		Position:     budi.Position,
		Date:         "2026-03-09",
		CheckInTime:  &checkIn,
		Status:       StatusOnTime,
	}}

	complete := Reconcile(raw, roster, "2026-03-09")

	assert.Len(t, complete, 2)
	assert.Equal(t, StatusOnTime, complete[0].Status)
	assert.Equal(t, sari.ID, complete[1].EmployeeID)
	assert.Equal(t, StatusAbsent, complete[1].Status)
	assert.Nil(t, complete[1].CheckInTime)
	assert.Nil(t, complete[1].CheckOutTime)
	assert.Equal(t, "2026-03-09", complete[1].Date)
}

func TestReconcile_DropsOrphanRecords(t *testing.T) {
	sari := employee.Employee{ID: uuid.New(), Name: "Sari", Position: "Manager"}

	// record milik karyawan yang sudah dihapus dari roster
	raw := []Record{{
		ID:           uuid.New(),
		EmployeeID:   uuid.New(),
		EmployeeName: "Mantan Karyawan",
		Date:         "2026-03-09",
		Status:       StatusOnTime,
	}}

	complete := Reconcile(raw, []employee.Employee{sari}, "2026-03-09")

	assert.Len(t, complete, 1)
	assert.Equal(t, sari.ID, complete[0].EmployeeID)
	assert.Equal(t, StatusAbsent, complete[0].Status)
}

func TestReconcile_EmptyRoster(t *testing.T) {
	complete := Reconcile(nil, nil, "2026-03-09")
	assert.Empty(t, complete)
}

func TestCountStats(t *testing.T) {
	records := []Record{
		{Status: StatusOnTime},
		{Status: StatusOnTime},
		{Status: StatusLate},
		{Status: StatusVeryLate},
		{Status: StatusAbsent},
	}

	stats := CountStats(records)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.OnTime)
	assert.Equal(t, 1, stats.Late)
	assert.Equal(t, 1, stats.VeryLate)
	assert.Equal(t, 1, stats.Absent)
}
