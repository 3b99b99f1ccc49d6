package domain

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusPending     JobStatus = "pending"
	JobStatusDownloading JobStatus = "downloading"
	JobStatusExtracting  JobStatus = "extracting"
	JobStatusScoring     JobStatus = "scoring"
	JobStatusAggregating JobStatus = "aggregating"
	JobStatusCompleted   JobStatus = "completed"
	JobStatusFailed      JobStatus = "failed"
)

// stageOrder ranks the non-failed states; a job only ever moves forward.
var stageOrder = map[JobStatus]int{
	JobStatusPending:     0,
	JobStatusDownloading: 1,
	JobStatusExtracting:  2,
	JobStatusScoring:     3,
	JobStatusAggregating: 4,
	JobStatusCompleted:   5,
}

func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// CanTransitionTo reports whether the state machine allows s -> next.
// Staying in the same non-terminal state is allowed so progress can be
// updated within a stage.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == JobStatusFailed {
		return true
	}
	from, ok := stageOrder[s]
	if !ok {
		return false
	}
	to, ok := stageOrder[next]
	if !ok {
		return false
	}
	return to >= from
}

type Job struct {
	ID          string    `json:"job_id"`
	Source      string    `json:"source"`
	Status      JobStatus `json:"status"`
	Progress    float64   `json:"progress"`
	CurrentUnit int       `json:"current_unit"`
	TotalUnits  int       `json:"total_units"`
	Message     string    `json:"message"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewJob(source string) *Job {
	now := time.Now().UTC()
	return &Job{
		ID:        uuid.New().String(),
		Source:    source,
		Status:    JobStatusPending,
		Message:   "waiting to start",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a copy safe to hand to readers.
func (j *Job) Clone() *Job {
	c := *j
	return &c
}

func (j *Job) MarkAsFailed(err error) {
	j.Status = JobStatusFailed
	j.Error = err.Error()
	j.Message = "analysis failed: " + err.Error()
	j.UpdatedAt = time.Now().UTC()
}
