package offerletter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-ats/internal/salary"

	"github.com/jung-kurt/gofpdf"
)

type offerPDFData struct {
	Company       Letterhead
	CandidateName string
	CandidatePAN  string
	OfferNumber   string
	Designation   string
	Department    string
	JoiningDate   time.Time
	IssuedAt      time.Time
	Breakdown     salary.Breakdown
}

type breakdownRow struct {
	label  string
	amount salary.Amount
	total  bool
}

func breakdownRows(b salary.Breakdown) [][]breakdownRow {
	return [][]breakdownRow{
		{
			{label: "Basic", amount: b.Basic},
			{label: "House Rent Allowance", amount: b.HRA},
			{label: "Conveyance", amount: b.Conveyance},
			{label: "Medical", amount: b.Medical},
			{label: "Flexi Benefit", amount: b.Flexi},
			{label: "Total (A)", amount: b.TotalA, total: true},
		},
		{
			{label: "Employer PF", amount: b.EmployerPF},
			{label: "Total (B)", amount: b.TotalB, total: true},
			{label: "Cost to Company (A+B)", amount: b.TotalAB, total: true},
		},
		{
			{label: "Professional Tax", amount: b.ProfessionalTax},
			{label: "Employee PF", amount: b.EmployeePF},
			{label: "Insurance", amount: b.Insurance},
			{label: "Total Deductions", amount: b.TotalDeductions, total: true},
		},
	}
}

var sectionTitles = []string{"Earnings", "Employer Contributions", "Deductions"}

func renderOfferPDF(d offerPDFData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Offer Letter "+d.OfferNumber, true)
	pdf.SetCreator(d.Company.Name, true)
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(d.Company.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range []string{d.Company.Address, d.Company.PostalLine} {
		if line != "" {
			pdf.MultiCell(0, 5, tr(line), "", "L", false)
		}
	}
	pdf.Ln(2)
	pdf.CellFormat(0, 6, "Offer No: "+d.OfferNumber, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Date: "+d.IssuedAt.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr("Dear "+d.CandidateName+","), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	role := d.Designation
	if d.Department != "" {
		role += " (" + d.Department + ")"
	}
	pdf.MultiCell(0, 6, tr(fmt.Sprintf(
		"We are pleased to offer you the position of %s at %s. Your date of joining will be %s "+
			"and your annual cost to company will be %s. The detailed salary structure is given below.",
		role, d.Company.Name, d.JoiningDate.Format("02 Jan 2006"), FormatRupees(d.Breakdown.AnnualCTC),
	)), "", "L", false)
	if d.CandidatePAN != "" {
		pdf.Ln(1)
		pdf.CellFormat(0, 6, "PAN: "+d.CandidatePAN, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	for i, rows := range breakdownRows(d.Breakdown) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(90, 7, sectionTitles[i], "1", 0, "L", true, 0, "")
		pdf.CellFormat(40, 7, "Monthly", "1", 0, "R", true, 0, "")
		pdf.CellFormat(40, 7, "Annual", "1", 1, "R", true, 0, "")
		for _, row := range rows {
			style := ""
			if row.total {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, 10)
			pdf.CellFormat(90, 7, row.label, "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 7, FormatRupees(row.amount.Monthly), "1", 0, "R", false, 0, "")
			pdf.CellFormat(40, 7, FormatRupees(row.amount.Annual), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(90, 7, "ESI", "1", 0, "L", false, 0, "")
	pdf.CellFormat(80, 7, "Not applicable", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 8, "Net Take Home (monthly)", "1", 0, "L", false, 0, "")
	pdf.CellFormat(80, 8, FormatRupees(d.Breakdown.NetTakeHomeMonthly), "1", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5,
		"Net take home is before income tax. Any income tax shown elsewhere is an estimate and is not deducted above.",
		"", "L", false)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "For "+tr(d.Company.Name), "", 1, "L", false, 0, "")
	if d.Company.SignatoryName != "" {
		pdf.Ln(14)
		pdf.CellFormat(0, 6, tr(d.Company.SignatoryName), "", 1, "L", false, 0, "")
		if d.Company.SignatoryTitle != "" {
			pdf.CellFormat(0, 6, tr(d.Company.SignatoryTitle), "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatRupees groups digits the Indian way: 12,34,567.
func FormatRupees(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return "Rs. " + sign + s
	}

	head, tail := s[:len(s)-3], s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return "Rs. " + sign + strings.Join(groups, ",") + "," + tail
}

func offerFileName(offerNumber string) string {
	return "offer-letter-" + strings.ToLower(offerNumber) + ".pdf"
}
