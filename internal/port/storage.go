package port

import (
	"io"

	"github.com/bnema/vidqa/internal/domain"
)

// JobRepository persists job records. Get returns domain.ErrJobNotFound for unknown ids.
type JobRepository interface {
	Save(job *domain.Job) error
	Get(id string) (*domain.Job, error)
	List() ([]*domain.Job, error)
}

// ResultStore persists finished results. GetResult returns domain.ErrNotFound
// when no result was stored for the job.
type ResultStore interface {
	SaveResult(res *domain.AnalysisResult) error
	GetResult(jobID string) (*domain.AnalysisResult, error)
}

// MediaStore owns the data directory: uploaded sources, per-job transient
// scopes and rendered reports.
type MediaStore interface {
	SaveUpload(filename string, r io.Reader) (*domain.Upload, error)
	// ResolveUpload returns the path of a stored upload named by file id or
	// path. References outside the upload area yield domain.ErrInvalidSource.
	ResolveUpload(ref string) (string, error)
	// Scope creates (if needed) and returns the transient directory for a job.
	Scope(jobID string) (string, error)
	// Release deletes a job's transient directory and everything in it.
	Release(jobID string) error
	ReportPath(jobID string, format domain.ReportFormat) (string, error)
}

// ReportRenderer writes a result to path in the given format.
type ReportRenderer interface {
	Render(res *domain.AnalysisResult, format domain.ReportFormat, path string) error
}
