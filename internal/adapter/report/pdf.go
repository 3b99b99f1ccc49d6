package report

import (
	"github.com/go-pdf/fpdf"

	"github.com/bnema/vidqa/internal/domain"
)

const (
	pdfMargin    = 15.0
	pdfLineH     = 6.0
	pdfLabelW    = 60.0
	pdfPageWidth = 210.0 - 2*pdfMargin
)

// frame table column widths in mm, matching frameHeader
var pdfFrameCols = []float64{12, 18, 16, 16, 16, 12, 24, 18, 16, 32}

var pdfSegmentCols = []float64{10, 20, 20, pdfPageWidth - 50}

func writePDF(res *domain.AnalysisResult, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle("Video quality report", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Video Quality Analysis Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, pdfLineH, tr("Job "+res.JobID+"  |  "+res.CreatedAt.Format("2006-01-02 15:04:05 MST")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, t := range overviewTables(res) {
		pdfHeading(pdf, t.Title)
		pdf.SetFont("Helvetica", "", 10)
		for _, row := range t.Rows {
			pdf.SetFillColor(240, 240, 240)
			pdf.CellFormat(pdfLabelW, pdfLineH, tr(row[0]), "1", 0, "L", true, 0, "")
			pdf.CellFormat(pdfPageWidth-pdfLabelW, pdfLineH, tr(row[1]), "1", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	if res.Audio.Success && len(res.Audio.Transcription.Segments) > 0 {
		pdfHeading(pdf, "Transcript")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(res.Audio.Transcription.Text), "", "L", false)
		pdf.Ln(2)
		pdfTableHeader(pdf, segmentHeader, pdfSegmentCols)
		pdf.SetFont("Helvetica", "", 8)
		for i, seg := range res.Audio.Transcription.Segments {
			pdfTableRow(pdf, tr, segmentRow(i, seg), pdfSegmentCols)
		}
		pdf.Ln(4)
	}

	pdfHeading(pdf, "Frame Details")
	frames := res.Frames
	if len(frames) > pdfFrameLimit {
		frames = frames[:pdfFrameLimit]
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 5, "First 10 frames shown. See the JSON or spreadsheet report for all frames.", "", 1, "L", false, 0, "")
	}
	pdfTableHeader(pdf, frameHeader, pdfFrameCols)
	pdf.SetFont("Helvetica", "", 7)
	for _, f := range frames {
		pdfTableRow(pdf, tr, frameRow(f), pdfFrameCols)
	}

	return pdf.OutputFileAndClose(path)
}

func pdfHeading(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func pdfTableHeader(pdf *fpdf.Fpdf, header []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetFillColor(220, 220, 220)
	for i, h := range header {
		pdf.CellFormat(widths[i], pdfLineH, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

// pdfTableRow clips each cell to its column so long issue lists do not
// overflow into the next column.
func pdfTableRow(pdf *fpdf.Fpdf, tr func(string) string, cells []string, widths []float64) {
	for i, c := range cells {
		text := tr(c)
		for len(text) > 1 && pdf.GetStringWidth(text) > widths[i]-2 {
			text = text[:len(text)-1]
		}
		pdf.CellFormat(widths[i], pdfLineH, text, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}
