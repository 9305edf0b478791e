package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bizops/backend/internal/repository/postgres/commission"
	"bizops/backend/internal/service/summary"

	"github.com/jung-kurt/gofpdf/v2"
)

// WriteCommissionStatement renders one employee's monthly commission
// statement to a pdf file.
func WriteCommissionStatement(fullName string, month, year int, rows []commission.StatementRow, fileName string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Commission Statement")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s", fullName))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s %d", time.Month(month).String(), year))
	pdf.Ln(12)

	colWidths := []float64{28, 14, 40, 36, 36, 36}
	headers := []string{"Date", "Week", "Account", "Gross", "Net", "Disbursed"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	var totals []summary.CommissionRow
	for _, row := range rows {
		pdf.CellFormat(colWidths[0], 7, row.CommissionDate, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 7, row.PeriodWeek, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[2], 7, row.AccountUsername, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[3], 7, row.Gross.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[4], 7, row.Net.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[5], 7, row.Disbursed.String(), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)

		totals = append(totals, summary.CommissionRow{
			Gross:     row.Gross,
			Net:       row.Net,
			Disbursed: row.Disbursed,
		})
	}

	s := summary.Summarize(totals)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(colWidths[0]+colWidths[1]+colWidths[2], 8, "Total", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colWidths[3], 8, s.TotalGross.String(), "1", 0, "R", true, 0, "")
	pdf.CellFormat(colWidths[4], 8, s.TotalNet.String(), "1", 0, "R", true, 0, "")
	pdf.CellFormat(colWidths[5], 8, s.TotalDisbursed.String(), "1", 0, "R", true, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 7, fmt.Sprintf("Pending disbursement: %s", s.TotalPending.String()))

	if err := os.MkdirAll(filepath.Dir(fileName), os.ModePerm); err != nil {
		return fmt.Errorf("error creating export dir: %w", err)
	}
	return pdf.OutputFileAndClose(fileName)
}
