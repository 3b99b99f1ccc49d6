package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/dustin/go-humanize"
)

// table is a two-column label/value block shared by every layout.
type table struct {
	Title string
	Rows  [][2]string
}

// pdfFrameLimit caps the frame table in the printable report.
const pdfFrameLimit = 10

func overviewTables(res *domain.AnalysisResult) []table {
	md := res.Source.Metadata
	s := res.Summary

	tables := []table{
		{
			Title: "Video",
			Rows: [][2]string{
				{"Video name", res.VideoName},
				{"Source", res.Source.Origin},
				{"Duration", fmt.Sprintf("%.2f s (%s)", md.DurationSeconds, domain.FormatDuration(md.DurationSeconds))},
				{"Resolution", fmt.Sprintf("%dx%d", md.Width, md.Height)},
				{"Frame rate", fmt.Sprintf("%.2f fps", md.FPS)},
				{"Total frames", strconv.Itoa(md.TotalFrames)},
				{"File size", humanize.Bytes(uint64(max(md.ByteSize, 0)))},
				{"Analyzed frames", strconv.Itoa(res.AnalyzedFrames)},
				{"Analysis time", fmt.Sprintf("%.1f s", res.AnalysisSeconds)},
				{"Overall quality score", score(res.OverallQualityScore)},
			},
		},
		{
			Title: "Summary",
			Rows: [][2]string{
				{"Average clarity", score(s.AvgClarity)},
				{"Average lighting", score(s.AvgLighting)},
				{"Face detection rate", percent(s.FaceDetectionRate)},
				{"Watermark detection rate", percent(s.WatermarkDetectionRate)},
				{"Average content richness", score(s.AvgContentRichness)},
				{"Audio quality score", score(s.AudioQualityScore)},
				{"Audio transcription", yesNo(s.HasAudioTranscription, "available", "none")},
			},
		},
	}

	audio := res.Audio
	if !audio.Success {
		reason := audio.Error
		if reason == "" {
			reason = "not analyzed"
		}
		return append(tables, table{Title: "Audio", Rows: [][2]string{{"Status", reason}}})
	}

	q := audio.Quality
	rows := [][2]string{
		{"Duration", fmt.Sprintf("%.2f s", q.Duration)},
		{"Sample rate", fmt.Sprintf("%d Hz", q.SampleRate)},
		{"Channels", strconv.Itoa(q.Channels)},
		{"RMS volume", fmt.Sprintf("%.1f", q.Volume.RMS)},
		{"Dynamic range", fmt.Sprintf("%.1f dB", q.DynamicRange)},
		{"Audio quality score", score(q.QualityScore)},
		{"Audio issues", joinOr(q.Issues, "none")},
		{"Language", orDefault(audio.Transcription.Language, "unknown")},
		{"Transcript length", fmt.Sprintf("%d characters", len([]rune(audio.Transcription.Text)))},
	}
	if q.Error != "" {
		rows = append(rows, [2]string{"Quality analysis error", q.Error})
	}
	if audio.Transcription.Error != "" {
		rows = append(rows, [2]string{"Transcription error", audio.Transcription.Error})
	}
	return append(tables, table{Title: "Audio", Rows: rows})
}

var frameHeader = []string{
	"Frame", "Source frame", "Time", "Clarity", "Lighting", "Faces",
	"Watermark", "Richness", "Overall", "Issues",
}

func frameRow(f domain.FrameScore) []string {
	watermark := yesNo(f.WatermarkDetected, "yes", "no")
	if f.WatermarkText != nil {
		watermark = fmt.Sprintf("yes (%s)", *f.WatermarkText)
	}
	return []string{
		strconv.Itoa(f.Index),
		strconv.Itoa(f.Position),
		fmt.Sprintf("%.2fs", f.Timestamp),
		fmt.Sprintf("%.1f", f.Clarity),
		fmt.Sprintf("%.1f", f.Lighting),
		strconv.Itoa(f.FaceCount),
		watermark,
		fmt.Sprintf("%.1f", f.ContentRichness),
		fmt.Sprintf("%.1f", f.OverallScore),
		joinOr(f.Issues, "-"),
	}
}

var segmentHeader = []string{"#", "Start", "End", "Text"}

func segmentRow(i int, seg domain.Segment) []string {
	return []string{
		strconv.Itoa(i + 1),
		fmt.Sprintf("%.2fs", seg.Start),
		fmt.Sprintf("%.2fs", seg.End),
		seg.Text,
	}
}

func score(v float64) string { return fmt.Sprintf("%.1f/100", v) }
func percent(v float64) string { return fmt.Sprintf("%.1f%%", v*100) }

func orDefault(s, d string) string {
	if s == "" {
		return d
	}
	return s
}

func yesNo(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}

func joinOr(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, ", ")
}
