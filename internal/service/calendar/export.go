package calendar

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/calendar"
	"github.com/xuri/excelize/v2"
)

var attendanceCodes = map[calendar.ResolvedStatus]string{
	calendar.StatusPresent: "P",
	calendar.StatusAbsent:  "A",
	calendar.StatusLate:    "L",
	calendar.StatusHalfDay: "H",
	calendar.StatusRemote:  "R",
}

type planningSheet struct {
	file         *excelize.File
	name         string
	weekendStyle int
	leaveStyle   int
}

// newPlanningSheet creates a workbook with a title row and a header row of
// employee, department and one column per day.
func newPlanningSheet(sheetName, title string, days []string) (*planningSheet, error) {
	f := excelize.NewFile()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		_ = f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	weekendStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#EDEDED"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	leaveStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#FCE4D6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	lastCol, _ := excelize.ColumnNumberToName(2 + len(days))
	_ = f.SetCellValue(sheetName, "A1", title)
	_ = f.MergeCell(sheetName, "A1", lastCol+"1")
	_ = f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	_ = f.SetCellValue(sheetName, "A2", "Employee")
	_ = f.SetCellValue(sheetName, "B2", "Department")
	_ = f.SetColWidth(sheetName, "A", "A", 24)
	_ = f.SetColWidth(sheetName, "B", "B", 16)
	for i, day := range days {
		cell, _ := excelize.CoordinatesToCellName(3+i, 2)
		_ = f.SetCellValue(sheetName, cell, day[len(day)-2:])
	}
	if len(days) > 0 {
		firstDayCol, _ := excelize.ColumnNumberToName(3)
		_ = f.SetColWidth(sheetName, firstDayCol, lastCol, 5)
	}
	_ = f.SetCellStyle(sheetName, "A2", lastCol+"2", headerStyle)

	return &planningSheet{file: f, name: sheetName, weekendStyle: weekendStyle, leaveStyle: leaveStyle}, nil
}

// setRow writes one employee row; row is 1-based and starts at 3.
func (s *planningSheet) setRow(row int, ref calendar.EmployeeRef, values []string, styles []int) {
	_ = s.file.SetCellValue(s.name, cellName(1, row), ref.Name)
	_ = s.file.SetCellValue(s.name, cellName(2, row), ref.Department)
	for i, v := range values {
		cell := cellName(3+i, row)
		if v != "" {
			_ = s.file.SetCellValue(s.name, cell, v)
		}
		if styles[i] != 0 {
			_ = s.file.SetCellStyle(s.name, cell, cell, styles[i])
		}
	}
}

func (s *planningSheet) bytes() (*bytes.Buffer, error) {
	defer s.file.Close()
	buf := new(bytes.Buffer)
	if err := s.file.Write(buf); err != nil {
		return nil, exportError(err)
	}
	return buf, nil
}

// exportError tags err with calendar.ErrExportFailed exactly once.
func exportError(err error) error {
	if errors.Is(err, calendar.ErrExportFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", calendar.ErrExportFailed, err)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func leaveGridWorkbook(grid calendar.LeaveGrid) (*bytes.Buffer, error) {
	sheet, err := newPlanningSheet("Leaves", fmt.Sprintf("Leave planning %04d-%02d", grid.Year, grid.Month), grid.Days)
	if err != nil {
		return nil, exportError(err)
	}
	for i, r := range grid.Rows {
		values := make([]string, len(r.Cells))
		styles := make([]int, len(r.Cells))
		for j, c := range r.Cells {
			switch {
			case c.OnLeave():
				values[j] = c.ShortLabel
				styles[j] = sheet.leaveStyle
			case c.IsWeekend:
				styles[j] = sheet.weekendStyle
			}
		}
		sheet.setRow(3+i, r.Employee, values, styles)
	}
	return sheet.bytes()
}

func attendanceGridWorkbook(grid calendar.AttendanceGrid) (*bytes.Buffer, error) {
	sheet, err := newPlanningSheet("Attendance", fmt.Sprintf("Attendance planning %04d-%02d", grid.Year, grid.Month), grid.Days)
	if err != nil {
		return nil, exportError(err)
	}
	for i, r := range grid.Rows {
		values := make([]string, len(r.Cells))
		styles := make([]int, len(r.Cells))
		for j, d := range r.Cells {
			switch d.Status {
			case calendar.StatusOnLeave:
				if d.LeaveType != nil {
					values[j] = d.LeaveType.ShortLabel()
				}
				styles[j] = sheet.leaveStyle
			case calendar.StatusWeekend:
				styles[j] = sheet.weekendStyle
			default:
				values[j] = attendanceCodes[d.Status]
			}
		}
		sheet.setRow(3+i, r.Employee, values, styles)
	}
	return sheet.bytes()
}

func exportFilename(kind string, year, month int) string {
	return fmt.Sprintf("%s_planning_%04d-%02d.xlsx", kind, year, month)
}
