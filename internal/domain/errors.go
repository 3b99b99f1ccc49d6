package domain

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

var (
	ErrJobNotFound    = errors.New("job not found")
	ErrJobNotReady    = errors.New("analysis not finished")
	ErrTerminalJob    = errors.New("job already in terminal state")
	ErrNoFramesScored = errors.New("no frames were scored")
	ErrNoAudioTrack   = errors.New("no audio track")
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidSource  = errors.New("invalid video source")
	ErrUploadTooLarge = errors.New("upload exceeds size limit")
	ErrInterrupted    = errors.New("analysis interrupted by restart")
)

// AcquisitionError is returned when every acquisition strategy failed.
// Attempts are kept in the order they were tried.
type AcquisitionError struct {
	Source   string
	Attempts []StrategyFailure
}

type StrategyFailure struct {
	Strategy string
	Err      error
}

func (e *AcquisitionError) Error() string {
	reasons := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		reasons = append(reasons, fmt.Sprintf("%s: %v", a.Strategy, a.Err))
	}
	return fmt.Sprintf("all acquisition strategies failed for %s: %s", e.Source, strings.Join(reasons, "; "))
}

// Unwrap exposes the per-strategy errors to errors.Is / errors.As.
func (e *AcquisitionError) Unwrap() []error {
	var combined error
	for _, a := range e.Attempts {
		combined = multierr.Append(combined, a.Err)
	}
	return multierr.Errors(combined)
}

type UnreadableMediaError struct {
	Path string
	Err  error
}

func (e *UnreadableMediaError) Error() string {
	return fmt.Sprintf("cannot open media %s: %v", e.Path, e.Err)
}

func (e *UnreadableMediaError) Unwrap() error { return e.Err }

// ProviderError marks a failure scoped to one unit of work (one frame or one
// audio analysis). It is absorbed by the caller and never fails a job.
type ProviderError struct {
	Capability Capability
	Err        error
}

func NewProviderError(c Capability, err error) *ProviderError {
	return &ProviderError{Capability: c, Err: err}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Capability, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

type ReportFormatError struct {
	Format string
}

func (e *ReportFormatError) Error() string {
	return fmt.Sprintf("unsupported report format %q", e.Format)
}
