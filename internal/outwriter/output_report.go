package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/huangsam/crs/internal/contract"
	"github.com/huangsam/crs/schema"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
)

// reportDateLayout formats the "Generated on" line.
const reportDateLayout = "January 2, 2006"

// WriteReport renders the paginated results document.
// PDF is written to the output file (DefaultReportFile when unset); text and JSON follow the usual output rules.
func WriteReport(profiles []schema.Profile, cfg *contract.Config, generatedAt time.Time) error {
	model := schema.BuildReportModel(profiles, generatedAt)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportText(w, model)
		}, "Wrote report")
	default:
		outputFile := cfg.OutputFile
		if outputFile == "" {
			outputFile = schema.DefaultReportFile
		}
		return writeWithFile(outputFile, func(w io.Writer) error {
			return writeReportPDF(w, model, true)
		}, "Wrote PDF")
	}
}

// writeReportText renders the document as plain text with form feeds between pages.
func writeReportText(w io.Writer, model schema.ReportRenderModel) error {
	if _, err := fmt.Fprintf(w, "%s\nGenerated on: %s\n\n", model.Title, model.GeneratedAt.Format(reportDateLayout)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header(append([]string{"Category"}, model.Comparison.Profiles...))
	var data [][]string
	for _, row := range model.Comparison.Rows {
		line := []string{row.Label}
		for _, v := range row.Values {
			line = append(line, strconv.Itoa(v))
		}
		data = append(data, line)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s:\n", model.GuideTitle); err != nil {
		return err
	}
	for _, b := range model.Bands {
		if _, err := fmt.Fprintf(w, "  • %s\n", guideLine(b)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n%s\n", model.GuideNote); err != nil {
		return err
	}

	for _, d := range model.Details {
		if _, err := fmt.Fprintf(w, "\f\n%s Details:\n", d.Name); err != nil {
			return err
		}
		detail := tablewriter.NewWriter(w)
		var rows [][]string
		for _, r := range d.Rows {
			rows = append(rows, []string{r[0], r[1]})
		}
		if err := detail.Bulk(rows); err != nil {
			return err
		}
		if err := detail.Render(); err != nil {
			return err
		}
	}
	return nil
}

// guideLine renders one band the way the interpretation guide lists it.
func guideLine(b schema.ScoreBand) string {
	return fmt.Sprintf("%s points: %s", b.Range, b.Description)
}

// Layout of the PDF document, in millimetres.
const (
	pdfMargin      = 14.0
	pdfLineHeight  = 6.0
	pdfRowHeight   = 8.0
	pdfLabelWidth  = 80.0
	pdfCategoryCol = 60.0
)

// newReportPDF lays out the document: a summary page, then one detail page per profile.
func newReportPDF(model schema.ReportRenderModel, compress bool) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetTitle(model.Title, true)
	pdf.SetCreator(contract.AppName, true)
	pdf.SetCreationDate(model.GeneratedAt)
	pdf.SetMargins(pdfMargin, 20, pdfMargin)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(model.Title))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, pdfLineHeight, tr("Generated on: "+model.GeneratedAt.Format(reportDateLayout)))
	pdf.Ln(pdfLineHeight * 2)

	// Score table
	pageWidth, _ := pdf.GetPageSize()
	usable := pageWidth - 2*pdfMargin
	colWidth := usable - pdfCategoryCol
	if n := len(model.Comparison.Profiles); n > 0 {
		colWidth = (usable - pdfCategoryCol) / float64(n)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(66, 139, 202)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(pdfCategoryCol, pdfRowHeight, "Category", "1", 0, "L", true, 0, "")
	for _, name := range model.Comparison.Profiles {
		pdf.CellFormat(colWidth, pdfRowHeight, tr(name), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	for _, row := range model.Comparison.Rows {
		style := ""
		if row.Key == schema.ComponentTotal {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(pdfCategoryCol, pdfRowHeight, tr(row.Label), "1", 0, "L", false, 0, "")
		for _, v := range row.Values {
			pdf.CellFormat(colWidth, pdfRowHeight, strconv.Itoa(v), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(pdfLineHeight)

	// Interpretation guide
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, pdfLineHeight, tr(model.GuideTitle+":"))
	pdf.Ln(pdfLineHeight * 1.5)
	pdf.SetFont("Helvetica", "", 10)
	for _, b := range model.Bands {
		pdf.SetX(pdfMargin + 6)
		pdf.MultiCell(0, pdfLineHeight, tr("• "+guideLine(b)), "", "L", false)
	}
	pdf.Ln(pdfLineHeight / 2)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, pdfLineHeight, tr(model.GuideNote), "", "L", false)

	// Detail pages
	for _, d := range model.Details {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Cell(0, pdfLineHeight, tr(d.Name+" Details:"))
		pdf.Ln(pdfLineHeight * 2)
		for _, r := range d.Rows {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(pdfLabelWidth, pdfRowHeight, tr(r[0]), "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.CellFormat(0, pdfRowHeight, tr(r[1]), "", 1, "L", false, 0, "")
		}
		pdf.Ln(pdfLineHeight)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, pdfRowHeight, tr(fmt.Sprintf("Total Score: %d (%s)", d.TotalScore, d.Band)))
	}
	return pdf
}

// writeReportPDF renders the PDF document to w.
func writeReportPDF(w io.Writer, model schema.ReportRenderModel, compress bool) error {
	pdf := newReportPDF(model, compress)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render PDF report: %w", err)
	}
	contract.Logger().Debug("rendered report", zap.Int("pages", pdf.PageCount()), zap.Int("profiles", len(model.Details)))
	return nil
}
