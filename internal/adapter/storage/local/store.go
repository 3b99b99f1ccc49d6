package local

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/port"
	"github.com/bnema/vidqa/internal/validation"
	"github.com/google/uuid"
)

// Store lays out the data directory as
//
//	uploads/<file_id><ext>       accepted sources, kept until removed by an operator
//	work/<job_id>/               transient artifacts, removed when the job ends
//	reports/<job_id>/report.<f>  rendered reports
type Store struct {
	uploadDir string
	workDir   string
	reportDir string
}

func NewStore(dataDir string) (*Store, error) {
	dataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	s := &Store{
		uploadDir: filepath.Join(dataDir, "uploads"),
		workDir:   filepath.Join(dataDir, "work"),
		reportDir: filepath.Join(dataDir, "reports"),
	}
	for _, dir := range []string{s.uploadDir, s.workDir, s.reportDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return s, nil
}

func (s *Store) SaveUpload(filename string, r io.Reader) (*domain.Upload, error) {
	name := validation.SanitizeFilename(filename)
	fileID := uuid.New().String()
	dest := filepath.Join(s.uploadDir, fileID+strings.ToLower(filepath.Ext(name)))

	tmp, err := os.CreateTemp(s.uploadDir, ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}
	defer os.Remove(tmp.Name())

	size, err := io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}

	return &domain.Upload{
		FileID:   fileID,
		Filename: name,
		Path:     dest,
		Size:     size,
	}, nil
}

// ResolveUpload maps a stored upload, named by its file id or by the path
// SaveUpload returned, to that path. Anything outside the upload area is
// rejected with domain.ErrInvalidSource before the filesystem is consulted.
func (s *Store) ResolveUpload(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("empty upload reference: %w", domain.ErrInvalidSource)
	}

	if id, err := uuid.Parse(ref); err == nil && id.String() == ref {
		matches, err := filepath.Glob(filepath.Join(s.uploadDir, ref+".*"))
		if err != nil || len(matches) != 1 {
			return "", fmt.Errorf("upload %s: %w", ref, domain.ErrNotFound)
		}
		return matches[0], nil
	}

	abs, err := filepath.Abs(ref)
	if err != nil {
		return "", fmt.Errorf("upload path: %w", domain.ErrInvalidSource)
	}
	rel, err := filepath.Rel(s.uploadDir, abs)
	if err != nil || rel == "." || rel != filepath.Base(rel) || strings.HasPrefix(rel, ".") {
		return "", fmt.Errorf("%s is outside the upload area: %w", filepath.Base(abs), domain.ErrInvalidSource)
	}

	info, err := os.Lstat(abs)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", rel, domain.ErrNotFound)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("upload %s is not a regular file: %w", rel, domain.ErrInvalidSource)
	}
	return abs, nil
}

func (s *Store) jobDir(base, jobID string) (string, error) {
	if jobID == "" || jobID != filepath.Base(jobID) || strings.HasPrefix(jobID, ".") {
		return "", fmt.Errorf("invalid job id %q", jobID)
	}
	return filepath.Join(base, jobID), nil
}

func (s *Store) Scope(jobID string) (string, error) {
	dir, err := s.jobDir(s.workDir, jobID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create job scope: %w", err)
	}
	return dir, nil
}

func (s *Store) Release(jobID string) error {
	dir, err := s.jobDir(s.workDir, jobID)
	if err != nil {
		return err
	}
	return os.RemoveAll(dir)
}

func (s *Store) ReportPath(jobID string, format domain.ReportFormat) (string, error) {
	dir, err := s.jobDir(s.reportDir, jobID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	return filepath.Join(dir, "report"+format.Ext()), nil
}

var _ port.MediaStore = (*Store)(nil)
