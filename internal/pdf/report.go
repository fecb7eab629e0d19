// Package pdf renders the dashboard report as a printable document.
package pdf

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/angelofallars/dpm/internal/clock"
	"github.com/angelofallars/dpm/internal/report"
	"github.com/go-pdf/fpdf"
)

// Stars draws a rating with ASCII marks since the core fonts have no
// star glyph: "*" full, "+" half, "." empty.
func Stars(rating float64) string {
	s := report.StarsFor(rating)
	var b strings.Builder
	b.WriteString(strings.Repeat("*", s.Full))
	if s.Half {
		b.WriteString("+")
	}
	b.WriteString(strings.Repeat(".", s.Empty))
	return b.String()
}

func period(rep report.Report) string {
	switch {
	case rep.From != "" && rep.To != "":
		return rep.From + " to " + rep.To
	case rep.From != "":
		return "since " + rep.From
	case rep.To != "":
		return "until " + rep.To
	}
	return "all time"
}

// WriteReport renders rep as an A4 PDF into w. generated is stamped into
// the document metadata.
func WriteReport(w io.Writer, rep report.Report, generated time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(generated)
	pdf.SetTitle("Daily Progress Report", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Daily Progress Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, "Period: "+period(rep))
	pdf.Ln(12)

	s := rep.Summary
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, line := range []string{
		fmt.Sprintf("Total hours: %.1fh", s.TotalHours),
		fmt.Sprintf("Work entries: %d", s.WorkCount),
		fmt.Sprintf("Categories: %d", s.Categories),
		fmt.Sprintf("Average per day: %.1fh  %s (%.1f/5)", s.AverageDaily, Stars(s.Rating), s.Rating),
	} {
		pdf.Cell(0, 7, line)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	table(pdf, "By category",
		[]string{"Category", "Time", "Entries", "Avg/day"},
		[]float64{70, 40, 30, 40},
		func(row func(...string)) {
			for _, c := range rep.Categories {
				row(c.Category, clock.Format(c.TotalMinutes), fmt.Sprint(c.WorkCount),
					fmt.Sprintf("%.1fh", report.Round1(c.AverageDaily)))
			}
		})

	table(pdf, "By day",
		[]string{"Date", "Time", "Entries", "Rating", "Categories"},
		[]float64{30, 25, 20, 30, 75},
		func(row func(...string)) {
			for _, d := range rep.Days {
				row(d.Date, clock.Format(d.Minutes), fmt.Sprint(d.WorkCount),
					Stars(d.Rating), strings.Join(d.Categories, ", "))
			}
		})

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func table(pdf *fpdf.Fpdf, title string, header []string, widths []float64, body func(row func(...string))) {
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(229, 231, 235)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	rows := 0
	body(func(cols ...string) {
		rows++
		for i, c := range cols {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	})
	if rows == 0 {
		pdf.CellFormat(sum(widths), 6, "No work recorded.", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

func sum(fs []float64) float64 {
	var t float64
	for _, f := range fs {
		t += f
	}
	return t
}
