package service

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
	"github.com/bnema/vidqa/internal/port"
)

// Progress bands per stage. Audio runs inside the scoring status.
const (
	progressDownloadStart = 0.0
	progressDownloadEnd   = 20.0
	progressExtractEnd    = 40.0
	progressScoringEnd    = 80.0
	progressAudioEnd      = 90.0
	progressAggregateEnd  = 100.0

	// highest value a job can report before it completes
	progressCeiling = 99.0
)

// Update describes one checkpoint. Zero TotalUnits leaves the unit counters
// unchanged.
type Update struct {
	Status      domain.JobStatus
	Progress    float64
	Message     string
	CurrentUnit int
	TotalUnits  int
}

// ProgressTracker is the only writer of job records. Progress never moves
// backwards and only reaches 100 on completion.
type ProgressTracker struct {
	mu     sync.Mutex
	jobs   port.JobRepository
	events EventPublisher
}

func NewProgressTracker(jobs port.JobRepository, events EventPublisher) *ProgressTracker {
	return &ProgressTracker{jobs: jobs, events: events}
}

func (t *ProgressTracker) Create(source string) (*domain.Job, error) {
	job := domain.NewJob(source)

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.jobs.Save(job); err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}
	t.publish("status", job)
	return job.Clone(), nil
}

func (t *ProgressTracker) Get(jobID string) (*domain.Job, error) {
	return t.jobs.Get(jobID)
}

func (t *ProgressTracker) Advance(jobID string, u Update) error {
	return t.mutate(jobID, func(job *domain.Job) (string, error) {
		if u.Status == domain.JobStatusCompleted || u.Status == domain.JobStatusFailed {
			return "", fmt.Errorf("use Complete or Fail to end job %s", jobID)
		}
		if !job.Status.CanTransitionTo(u.Status) {
			return "", fmt.Errorf("invalid transition %s -> %s", job.Status, u.Status)
		}

		eventType := "progress"
		if job.Status != u.Status {
			eventType = "status"
		}
		job.Status = u.Status
		job.Progress = math.Max(job.Progress, math.Min(u.Progress, progressCeiling))
		if u.Message != "" {
			job.Message = u.Message
		}
		if u.TotalUnits > 0 {
			job.CurrentUnit = u.CurrentUnit
			job.TotalUnits = u.TotalUnits
		}
		return eventType, nil
	})
}

func (t *ProgressTracker) Complete(jobID, message string) error {
	return t.mutate(jobID, func(job *domain.Job) (string, error) {
		job.Status = domain.JobStatusCompleted
		job.Progress = progressAggregateEnd
		job.Message = message
		return "status", nil
	})
}

// Fail records err verbatim. Progress is left where the job stopped.
func (t *ProgressTracker) Fail(jobID string, err error) error {
	return t.mutate(jobID, func(job *domain.Job) (string, error) {
		job.MarkAsFailed(err)
		return "status", nil
	})
}

// mutate applies fn to the stored job under the tracker lock, saves it and
// publishes the returned event type.
func (t *ProgressTracker) mutate(jobID string, fn func(*domain.Job) (string, error)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	job, err := t.jobs.Get(jobID)
	if err != nil {
		return err
	}
	if job.Status.IsTerminal() {
		return fmt.Errorf("job %s is %s: %w", jobID, job.Status, domain.ErrTerminalJob)
	}

	eventType, err := fn(job)
	if err != nil {
		return err
	}
	job.UpdatedAt = time.Now().UTC()

	if err := t.jobs.Save(job); err != nil {
		logger.Error.Printf("failed to save job %s: %v", jobID, err)
		return fmt.Errorf("failed to save job: %w", err)
	}
	t.publish(eventType, job)
	return nil
}

func (t *ProgressTracker) publish(eventType string, job *domain.Job) {
	if t.events != nil {
		t.events.Publish(job.ID, Event{Type: eventType, Job: job.Clone()})
	}
}

// span maps done/total onto the [lo, hi] progress band.
func span(lo, hi float64, done, total int) float64 {
	if total <= 0 {
		return lo
	}
	return lo + (hi-lo)*float64(done)/float64(total)
}
