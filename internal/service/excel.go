package service

import (
	"fmt"
	"os"
	"path/filepath"

	"bizops/backend/internal/repository/postgres/attendance"
	"bizops/backend/internal/repository/postgres/commission"
	"bizops/backend/internal/repository/postgres/user"

	"github.com/xuri/excelize/v2"
)

const sheet = "Sheet1"

func writeHeaders(f *excelize.File, headers []string) {
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}
}

func saveBook(f *excelize.File, fileName string) error {
	if err := os.MkdirAll(filepath.Dir(fileName), os.ModePerm); err != nil {
		return fmt.Errorf("error creating export dir: %w", err)
	}
	if err := f.SaveAs(fileName); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

// WriteEmployeeExcel builds the employee directory export.
func WriteEmployeeExcel(rows []user.ExportRow, fileName string) error {
	f := excelize.NewFile()
	writeHeaders(f, []string{"ID", "Full Name", "Email", "Role", "Job Position", "Group", "Phone Number", "Status"})

	rowNum := 2
	for _, entry := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), entry.FullName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), entry.Email)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), entry.Role)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), entry.JobPosition)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), entry.Group)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), entry.PhoneNumber)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), entry.Status)
		rowNum++
	}

	return saveBook(f, fileName)
}

// WriteAttendanceExcel builds a month's attendance sheet.
func WriteAttendanceExcel(rows []attendance.MonthExportRow, fileName string) error {
	f := excelize.NewFile()
	writeHeaders(f, []string{"Employee ID", "Full Name", "Work Day", "Clock In", "Clock Out", "Duration (min)", "Status"})

	rowNum := 2
	for _, entry := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.EmployeeID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), entry.FullName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), entry.WorkDay)
		if entry.ClockIn != nil {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), entry.ClockIn.Format("15:04:05"))
		}
		if entry.ClockOut != nil {
			f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), entry.ClockOut.Format("15:04:05"))
		}
		if entry.DurationMinutes != nil {
			f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), *entry.DurationMinutes)
		}
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), entry.Status)
		rowNum++
	}

	return saveBook(f, fileName)
}

// WriteCommissionExcel builds a month's commission sheet.
func WriteCommissionExcel(rows []commission.ExportRow, fileName string) error {
	f := excelize.NewFile()
	writeHeaders(f, []string{"Employee", "Group", "Account", "Date", "Week", "Gross", "Net", "Disbursed"})

	rowNum := 2
	for _, entry := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.Employee)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), entry.Group)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), entry.AccountUsername)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), entry.CommissionDate)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), entry.PeriodWeek)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), entry.Gross.String())
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), entry.Net.String())
		f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), entry.Disbursed.String())
		rowNum++
	}

	return saveBook(f, fileName)
}
