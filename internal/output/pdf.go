package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	pdfMarginLeft   = 20.0
	pdfMarginRight  = 20.0
	pdfMarginTop    = 20.0
	pdfMarginBottom = 20.0
	pdfPageWidth    = 210.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter renders a one-page benefit illustration. Core PDF fonts
// have no rupee glyph, so amounts are prefixed with "Rs.".
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(r *Report) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("nil report")
	}
	doc := &pdfIllustration{pdf: fpdf.New("P", "mm", "A4", ""), report: r}
	doc.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	doc.pdf.SetAutoPageBreak(true, pdfMarginBottom)
	doc.pdf.SetTitle("Jeevan Lakshya 733 benefit illustration", false)

	doc.render()

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfIllustration struct {
	pdf    *fpdf.Fpdf
	report *Report
}

func pdfAmount(d decimal.Decimal) string {
	return "Rs. " + FormatINR(d)
}

func (d *pdfIllustration) render() {
	q := d.report.Quote
	d.pdf.AddPage()

	d.pdf.SetFont("Arial", "B", 20)
	d.pdf.SetTextColor(0, 51, 102)
	title := "Jeevan Lakshya 733"
	if d.report.Product != "" {
		title = d.report.Product
	}
	d.pdf.CellFormat(pdfContentWidth, 12, title, "", 1, "C", false, 0, "")
	d.pdf.SetFont("Arial", "", 12)
	d.pdf.SetTextColor(80, 80, 80)
	d.pdf.CellFormat(pdfContentWidth, 8, "Benefit illustration", "", 1, "C", false, 0, "")
	d.pdf.Ln(6)

	rows := [][2]string{
		{"Age at entry", fmt.Sprintf("%d", q.Age)},
		{"Policy term", fmt.Sprintf("%d years", q.Term)},
		{"Premium paying term", fmt.Sprintf("%d years", q.PremiumPayingTerm)},
		{"Sum assured", pdfAmount(q.SumAssured)},
	}
	if d.report.Goal != nil {
		rows = append([][2]string{{"Goal", d.report.Goal.Title}}, rows...)
	}
	d.section("Plan", rows)

	var premiumRows [][2]string
	for _, opt := range q.InstallmentOptions {
		label := opt.Mode.Label()
		if opt.IsApproximate {
			label += " (approx.)"
		}
		premiumRows = append(premiumRows, [2]string{label, pdfAmount(opt.Amount)})
	}
	premiumRows = append(premiumRows, [2]string{"Total premium paid", pdfAmount(q.TotalPremiumPaid)})
	if d.report.RiderPremium != nil {
		premiumRows = append(premiumRows, [2]string{"Term rider (annual)", pdfAmount(*d.report.RiderPremium)})
	}
	d.section("Premium", premiumRows)

	d.section("Estimated maturity", maturityRows(q.EstimatedMaturity))

	if db := d.report.DeathBenefit; db != nil {
		rows := [][2]string{
			{"Premiums paid", pdfAmount(db.PremiumsPaid)},
			{"Premiums waived", pdfAmount(db.PremiumsWaived)},
			{"Income benefit per year", pdfAmount(db.AnnualIncomeBenefit)},
			{"Income benefit years", fmt.Sprintf("%d", len(db.IncomeSchedule))},
		}
		rows = append(rows, maturityRows(db.MaturityBenefit)...)
		rows = append(rows, [2]string{"Total to family", pdfAmount(db.TotalBenefit)})
		d.section(fmt.Sprintf("If death occurs in policy year %d", db.DeathYear), rows)
	}

	d.pdf.Ln(8)
	d.pdf.SetFont("Arial", "I", 9)
	d.pdf.SetTextColor(120, 120, 120)
	d.pdf.MultiCell(pdfContentWidth, 4.5, fmt.Sprintf(
		"Bonus figures assume a simple reversionary bonus of %s per thousand sum assured per year "+
			"and a final additional bonus of %s per thousand for terms of %d years or more. "+
			"Bonuses are not guaranteed.",
		d.report.Bonus.ReversionaryBonusRatePerThousandPerYear.String(),
		d.report.Bonus.FinalAdditionalBonusRatePerThousand.String(),
		d.report.Bonus.FinalAdditionalBonusMinimumTerm), "", "L", false)
}

func maturityRows(m domain.MaturityBreakdown) [][2]string {
	return [][2]string{
		{"Basic sum assured", pdfAmount(m.BasicSumAssured)},
		{"Simple reversionary bonus", pdfAmount(m.SimpleReversionaryBonus)},
		{"Final additional bonus", pdfAmount(m.FinalAdditionalBonus)},
		{"Total maturity", pdfAmount(m.TotalMaturity)},
	}
}

func (d *pdfIllustration) section(heading string, rows [][2]string) {
	d.pdf.SetFillColor(245, 247, 250)
	d.pdf.SetDrawColor(200, 200, 200)
	d.pdf.SetFont("Arial", "B", 12)
	d.pdf.SetTextColor(0, 51, 102)
	d.pdf.CellFormat(pdfContentWidth, 8, heading, "1", 1, "L", true, 0, "")

	d.pdf.SetFont("Arial", "", 10)
	d.pdf.SetTextColor(50, 50, 50)
	labelWidth := pdfContentWidth * 0.6
	for _, row := range rows {
		d.pdf.CellFormat(labelWidth, 7, row[0], "LB", 0, "L", false, 0, "")
		d.pdf.CellFormat(pdfContentWidth-labelWidth, 7, row[1], "RB", 1, "R", false, 0, "")
	}
	d.pdf.Ln(5)
}
