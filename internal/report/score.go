package report

import (
	"math"
	"sort"

	"github.com/Zamy17/absensi-karyawan/internal/attendance"
	"github.com/Zamy17/absensi-karyawan/internal/employee"
	"github.com/Zamy17/absensi-karyawan/internal/shared/dateutil"
)

// Bobot skor per kehadiran. Ketidakhadiran tidak mengurangi skor,
// hanya tidak menambah.
const (
	weightOnTime   = 1.0
	weightLate     = 0.5
	weightVeryLate = 0.25
)

// MonthlyStat adalah rekap kehadiran satu karyawan dalam satu bulan.
type MonthlyStat struct {
	EmployeeID string
	Name       string
	Position   string
	OnTime     int
	Late       int
	VeryLate   int
	Absent     int
	TotalDays  int
	Score      float64
	Percentage int
}

// BuildMonthlyStats menghitung skor bulanan setiap karyawan di roster
// dari record bulan itu, terurut skor tertinggi dulu. Karyawan tanpa
// record sama sekali tetap muncul dengan skor nol.
func BuildMonthlyStats(
	records []attendance.Record,
	roster []employee.Employee,
	year, month int,
) []MonthlyStat {
	type counts struct {
		onTime, late, veryLate int
	}

	perEmployee := make(map[string]*counts, len(roster))
	for _, e := range roster {
		perEmployee[e.ID.String()] = &counts{}
	}

	for _, r := range records {
		c, ok := perEmployee[r.EmployeeID.String()]
		if !ok {
			// record milik karyawan di luar roster, abaikan
			continue
		}
		switch r.Status {
		case attendance.StatusOnTime:
			c.onTime++
		case attendance.StatusLate:
			c.late++
		case attendance.StatusVeryLate:
			c.veryLate++
		}
	}

	totalDays := dateutil.DaysInMonth(year, month)

	stats := make([]MonthlyStat, 0, len(roster))
	for _, e := range roster {
		c := perEmployee[e.ID.String()]
		present := c.onTime + c.late + c.veryLate

		score := float64(c.onTime)*weightOnTime +
			float64(c.late)*weightLate +
			float64(c.veryLate)*weightVeryLate

		percentage := 0
		if totalDays > 0 {
			p := score / float64(totalDays) * 100
			if !math.IsNaN(p) && !math.IsInf(p, 0) {
				percentage = int(math.Round(p))
			}
		}

		stats = append(stats, MonthlyStat{
			EmployeeID: e.ID.String(),
			Name:       e.Name,
			Position:   e.Position,
			OnTime:     c.onTime,
			Late:       c.late,
			VeryLate:   c.veryLate,
			Absent:     totalDays - present,
			TotalDays:  totalDays,
			Score:      score,
			Percentage: percentage,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Score != stats[j].Score {
			return stats[i].Score > stats[j].Score
		}
		if stats[i].Percentage != stats[j].Percentage {
			return stats[i].Percentage > stats[j].Percentage
		}
		return stats[i].Name < stats[j].Name
	})

	return stats
}
