package report

import (
	"fmt"

	"github.com/Zamy17/absensi-karyawan/internal/attendance"
	"github.com/Zamy17/absensi-karyawan/internal/shared/dateutil"

	"github.com/xuri/excelize/v2"
)

var attendanceHeaders = []string{
	"Tanggal",
	"Nama Karyawan",
	"Jabatan",
	"Jam Masuk",
	"Satpam Konfirmasi Masuk",
	"Jam Pulang",
	"Satpam Konfirmasi Pulang",
	"Status",
}

var rankingHeaders = []string{
	"Peringkat",
	"Nama Karyawan",
	"Jabatan",
	"Tepat Waktu",
	"Terlambat",
	"Sangat Terlambat",
	"Tidak Hadir",
	"Skor",
	"Persentase",
}

func newHeaderStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

// BuildAttendanceWorkbook membuat workbook daftar absensi dengan header
// Indonesia; dipakai untuk export harian maupun rentang tanggal.
func BuildAttendanceWorkbook(title string, records []attendance.Record) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Laporan Absensi"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", title)
	f.MergeCell(sheet, "A1", "H1")
	f.SetCellStyle(sheet, "A1", "H1", headerStyle)
	f.SetRowHeight(sheet, 1, 25)

	for i, h := range attendanceHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A3", "H3", headerStyle)

	row := 4
	for _, r := range records {
		values := []any{
			r.Date,
			r.EmployeeName,
			r.Position,
			deref(r.CheckInTime),
			deref(r.CheckInGuardName),
			deref(r.CheckOutTime),
			deref(r.CheckOutGuardName),
			string(r.Status),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "C", 25)
	f.SetColWidth(sheet, "D", "G", 22)
	f.SetColWidth(sheet, "H", "H", 18)

	return f, nil
}

// BuildRankingWorkbook membuat workbook peringkat bulanan. stats harus
// sudah terurut; peringkat adalah posisi dalam slice.
func BuildRankingWorkbook(year, month int, stats []MonthlyStat) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Peringkat Karyawan"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("PERINGKAT KEHADIRAN KARYAWAN %s %d", dateutil.MonthName(month), year)
	f.SetCellValue(sheet, "A1", title)
	f.MergeCell(sheet, "A1", "I1")
	f.SetCellStyle(sheet, "A1", "I1", headerStyle)
	f.SetRowHeight(sheet, 1, 25)

	for i, h := range rankingHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A3", "I3", headerStyle)

	row := 4
	for i, s := range stats {
		values := []any{
			i + 1,
			s.Name,
			s.Position,
			s.OnTime,
			s.Late,
			s.VeryLate,
			s.Absent,
			s.Score,
			fmt.Sprintf("%d%%", s.Percentage),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	f.SetColWidth(sheet, "A", "A", 10)
	f.SetColWidth(sheet, "B", "C", 25)
	f.SetColWidth(sheet, "D", "I", 15)

	return f, nil
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
