package payroll

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// renderPayslipPDF lays out one A4 page: header block, then the gross to net
// breakdown as a two column table.
func renderPayslipPDF(e Entry) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetTitle(fmt.Sprintf("Payslip %s %02d/%d", e.EmployeeID, e.Period.Month, e.Period.Year), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Employee: "+e.EmployeeID)
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %02d/%d", e.Period.Month, e.Period.Year))
	pdf.Ln(10)

	lines := breakdown(e)
	for i, l := range lines {
		style := ""
		if i == len(lines)-1 {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 11)
		pdf.CellFormat(80, 7, l.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, fmt.Sprintf("%.2f %s", l.amount, e.Currency), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
