package attendance

import (
	"github.com/Zamy17/absensi-karyawan/internal/employee"
)

// Reconcile menggabungkan record mentah satu tanggal dengan daftar
// karyawan menjadi satu entri per karyawan; karyawan tanpa record
// disintesis sebagai "Tidak Hadir" tanpa jam masuk/pulang. Fungsi ini
// murni: tidak melakukan I/O dan tidak pernah menulis record absen ke
// store. Record milik karyawan yang sudah dihapus dari roster ikut
// terbuang.
func Reconcile(raw []Record, roster []employee.Employee, date string) []Record {
	byEmployee := make(map[string]Record, len(raw))
	for _, r := range raw {
		byEmployee[r.EmployeeID.String()] = r
	}

	complete := make([]Record, 0, len(roster))
	for _, e := range roster {
		if r, ok := byEmployee[e.ID.String()]; ok {
			complete = append(complete, r)
			continue
		}

		complete = append(complete, Record{
			EmployeeID:   e.ID,
			EmployeeName: e.Name,
			Position:     e.Position,
			Date:         date,
			Status:       StatusAbsent,
		})
	}

	return complete
}

// Stats adalah hitungan per status untuk satu kumpulan record.
type Stats struct {
	Total    int `json:"total"`
	OnTime   int `json:"on_time"`
	Late     int `json:"late"`
	VeryLate int `json:"very_late"`
	Absent   int `json:"absent"`
}

// CountStats menghitung rekap status dari record yang sudah
// direkonsiliasi.
func CountStats(records []Record) Stats {
	stats := Stats{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case StatusOnTime:
			stats.OnTime++
		case StatusLate:
			stats.Late++
		case StatusVeryLate:
			stats.VeryLate++
		case StatusAbsent:
			stats.Absent++
		}
	}
	return stats
}
