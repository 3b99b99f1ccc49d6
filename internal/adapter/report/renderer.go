// Package report renders finished analysis results to downloadable files.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/port"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes res to path. The file is written to a temporary name in the
// same directory and renamed, so readers never see a partial report.
func (r *Renderer) Render(res *domain.AnalysisResult, format domain.ReportFormat, path string) error {
	var write func(*domain.AnalysisResult, string) error
	switch format {
	case domain.ReportJSON:
		write = writeJSON
	case domain.ReportPDF:
		write = writePDF
	case domain.ReportXLSX:
		write = writeXLSX
	case domain.ReportHTML:
		write = writeHTML
	default:
		return &domain.ReportFormatError{Format: string(format)}
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err := write(res, tmp); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("render %s report: %w", format, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("render %s report: %w", format, err)
	}
	return nil
}

func writeJSON(res *domain.AnalysisResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

var _ port.ReportRenderer = (*Renderer)(nil)
