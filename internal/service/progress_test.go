package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vidqa/internal/domain"
)

func TestProgressTracker_Lifecycle(t *testing.T) {
	repo := newRecordingRepo()
	bus := NewEventBus()
	tracker := NewProgressTracker(repo, bus)

	job, err := tracker.Create("/videos/a.mp4")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusPending, job.Status)

	events := bus.Subscribe(job.ID)
	defer bus.Unsubscribe(job.ID, events)

	require.NoError(t, tracker.Advance(job.ID, Update{Status: domain.JobStatusDownloading, Progress: 10}))
	require.NoError(t, tracker.Advance(job.ID, Update{Status: domain.JobStatusExtracting, Progress: 5, Message: "late"}))

	got, err := tracker.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Progress, "progress never decreases")
	assert.Equal(t, "late", got.Message)

	require.NoError(t, tracker.Advance(job.ID, Update{Status: domain.JobStatusAggregating, Progress: 100}))
	got, _ = tracker.Get(job.ID)
	assert.Equal(t, progressCeiling, got.Progress, "only completion reaches 100")

	require.NoError(t, tracker.Complete(job.ID, "done"))
	got, _ = tracker.Get(job.ID)
	assert.Equal(t, domain.JobStatusCompleted, got.Status)
	assert.Equal(t, 100.0, got.Progress)

	evt := <-events
	assert.Equal(t, "status", evt.Type)
	assert.Equal(t, domain.JobStatusDownloading, evt.Job.Status)
}

func TestProgressTracker_Units(t *testing.T) {
	tracker := NewProgressTracker(newRecordingRepo(), nil)
	job, err := tracker.Create("src")
	require.NoError(t, err)

	require.NoError(t, tracker.Advance(job.ID, Update{Status: domain.JobStatusScoring, Progress: 50, CurrentUnit: 3, TotalUnits: 8}))
	require.NoError(t, tracker.Advance(job.ID, Update{Status: domain.JobStatusScoring, Progress: 55}))

	got, _ := tracker.Get(job.ID)
	assert.Equal(t, 3, got.CurrentUnit)
	assert.Equal(t, 8, got.TotalUnits)
	assert.Equal(t, 55.0, got.Progress)
}

func TestProgressTracker_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*ProgressTracker, string)
		act     func(*ProgressTracker, string) error
		wantErr error
	}{
		{
			name:    "backwards transition",
			prepare: func(tr *ProgressTracker, id string) { _ = tr.Advance(id, Update{Status: domain.JobStatusScoring}) },
			act: func(tr *ProgressTracker, id string) error {
				return tr.Advance(id, Update{Status: domain.JobStatusDownloading})
			},
		},
		{
			name:    "advance after completion",
			prepare: func(tr *ProgressTracker, id string) { _ = tr.Complete(id, "ok") },
			act: func(tr *ProgressTracker, id string) error {
				return tr.Advance(id, Update{Status: domain.JobStatusScoring})
			},
			wantErr: domain.ErrTerminalJob,
		},
		{
			name:    "fail after failure",
			prepare: func(tr *ProgressTracker, id string) { _ = tr.Fail(id, errors.New("boom")) },
			act:     func(tr *ProgressTracker, id string) error { return tr.Fail(id, errors.New("again")) },
			wantErr: domain.ErrTerminalJob,
		},
		{
			name:    "complete through advance",
			prepare: func(*ProgressTracker, string) {},
			act: func(tr *ProgressTracker, id string) error {
				return tr.Advance(id, Update{Status: domain.JobStatusCompleted})
			},
		},
		{
			name:    "unknown job",
			prepare: func(*ProgressTracker, string) {},
			act: func(tr *ProgressTracker, _ string) error {
				return tr.Advance("missing", Update{Status: domain.JobStatusScoring})
			},
			wantErr: domain.ErrJobNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewProgressTracker(newRecordingRepo(), nil)
			job, err := tracker.Create("src")
			require.NoError(t, err)
			tt.prepare(tracker, job.ID)

			err = tt.act(tracker, job.ID)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestProgressTracker_FailKeepsMessage(t *testing.T) {
	tracker := NewProgressTracker(newRecordingRepo(), nil)
	job, _ := tracker.Create("src")
	require.NoError(t, tracker.Advance(job.ID, Update{Status: domain.JobStatusExtracting, Progress: 30}))

	require.NoError(t, tracker.Fail(job.ID, errors.New("cannot open media x.mp4")))

	got, _ := tracker.Get(job.ID)
	assert.Equal(t, domain.JobStatusFailed, got.Status)
	assert.Equal(t, "cannot open media x.mp4", got.Error)
	assert.Equal(t, 30.0, got.Progress)
}

func TestSpan(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 0, 40},
		{0, 4, 40},
		{1, 4, 50},
		{4, 4, 80},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, span(40, 80, tt.done, tt.total), 1e-9)
	}
}
