package report

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/a-h/templ"

	"github.com/bnema/vidqa/internal/domain"
)

const htmlStyle = `body{font-family:system-ui,sans-serif;max-width:1100px;margin:2rem auto;color:#222}
table{border-collapse:collapse;width:100%;margin-bottom:1.5rem}
th,td{border:1px solid #ccc;padding:.3rem .5rem;text-align:left;font-size:.9rem}
th{background:#eee}
td.label{width:30%;background:#f7f7f7}
.score{font-size:2rem;font-weight:bold}`

func writeHTML(res *domain.AnalysisResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := reportPage(res).Render(context.Background(), f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func reportPage(res *domain.AnalysisResult) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &htmlPrinter{w: w}
		p.raw("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		p.raw("<title>")
		p.text("Quality report: " + res.VideoName)
		p.raw("</title><style>" + htmlStyle + "</style></head><body>")

		p.raw("<h1>Video Quality Analysis Report</h1>")
		p.raw("<p class=\"score\">")
		p.text(score(res.OverallQualityScore))
		p.raw("</p>")

		for _, t := range overviewTables(res) {
			p.raw("<h2>")
			p.text(t.Title)
			p.raw("</h2><table>")
			for _, row := range t.Rows {
				p.raw("<tr><td class=\"label\">")
				p.text(row[0])
				p.raw("</td><td>")
				p.text(row[1])
				p.raw("</td></tr>")
			}
			p.raw("</table>")
		}

		if res.Audio.Success && res.Audio.Transcription.Text != "" {
			p.raw("<h2>Transcript</h2><p>")
			p.text(res.Audio.Transcription.Text)
			p.raw("</p>")
			p.table(segmentHeader, len(res.Audio.Transcription.Segments), func(i int) []string {
				return segmentRow(i, res.Audio.Transcription.Segments[i])
			})
		}

		p.raw("<h2>Frame Details</h2>")
		p.table(frameHeader, len(res.Frames), func(i int) []string {
			return frameRow(res.Frames[i])
		})
		p.raw("</body></html>")
		return p.err
	})
}

// htmlPrinter keeps the first write error so the page body reads linearly.
type htmlPrinter struct {
	w   io.Writer
	err error
}

func (p *htmlPrinter) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *htmlPrinter) text(s string) {
	p.raw(templ.EscapeString(s))
}

func (p *htmlPrinter) table(header []string, n int, row func(int) []string) {
	p.raw("<table><tr>")
	for _, h := range header {
		p.raw("<th>")
		p.text(h)
		p.raw("</th>")
	}
	p.raw("</tr>")
	for i := 0; i < n; i++ {
		p.raw("<tr>")
		for _, c := range row(i) {
			p.raw(fmt.Sprintf("<td>%s</td>", templ.EscapeString(c)))
		}
		p.raw("</tr>")
	}
	p.raw("</table>")
}
