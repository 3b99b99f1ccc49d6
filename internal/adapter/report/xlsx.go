package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/bnema/vidqa/internal/domain"
)

const (
	sheetBasic      = "Basic Info"
	sheetSummary    = "Summary"
	sheetAudio      = "Audio"
	sheetTranscript = "Transcript"
	sheetFrames     = "Frames"
)

func writeXLSX(res *domain.AnalysisResult, path string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	tables := overviewTables(res)
	names := []string{sheetBasic, sheetSummary, sheetAudio}
	if err := f.SetSheetName("Sheet1", names[0]); err != nil {
		return err
	}
	for i, t := range tables {
		if i > 0 {
			if _, err := f.NewSheet(names[i]); err != nil {
				return err
			}
		}
		rows := make([][]any, 0, len(t.Rows)+1)
		rows = append(rows, []any{"Field", "Value"})
		for _, r := range t.Rows {
			rows = append(rows, []any{r[0], r[1]})
		}
		if err := writeSheet(f, names[i], rows, bold); err != nil {
			return err
		}
		if err := f.SetColWidth(names[i], "A", "A", 28); err != nil {
			return err
		}
		if err := f.SetColWidth(names[i], "B", "B", 48); err != nil {
			return err
		}
	}

	if res.Audio.Success {
		if _, err := f.NewSheet(sheetTranscript); err != nil {
			return err
		}
		rows := [][]any{{"#", "Start (s)", "End (s)", "Text"}}
		for i, seg := range res.Audio.Transcription.Segments {
			rows = append(rows, []any{i + 1, seg.Start, seg.End, seg.Text})
		}
		rows = append(rows, []any{}, []any{"Full text", "", "", res.Audio.Transcription.Text})
		if err := writeSheet(f, sheetTranscript, rows, bold); err != nil {
			return err
		}
		if err := f.SetColWidth(sheetTranscript, "D", "D", 80); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(sheetFrames); err != nil {
		return err
	}
	rows := make([][]any, 0, len(res.Frames)+1)
	header := make([]any, len(frameHeader))
	for i, h := range frameHeader {
		header[i] = h
	}
	rows = append(rows, header)
	for _, fr := range res.Frames {
		watermark := ""
		if fr.WatermarkText != nil {
			watermark = *fr.WatermarkText
		}
		rows = append(rows, []any{
			fr.Index, fr.Position, fr.Timestamp, fr.Clarity, fr.Lighting,
			fr.FaceCount, watermarkCell(fr.WatermarkDetected, watermark),
			fr.ContentRichness, fr.OverallScore, joinOr(fr.Issues, ""),
		})
	}
	if err := writeSheet(f, sheetFrames, rows, bold); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func watermarkCell(detected bool, text string) string {
	switch {
	case !detected:
		return "no"
	case text == "":
		return "yes"
	default:
		return fmt.Sprintf("yes (%s)", text)
	}
}

// writeSheet writes rows from A1 and styles the first row as a header.
func writeSheet(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, headerStyle)
}
