package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vidqa/internal/adapter/storage/jsonfile"
	"github.com/bnema/vidqa/internal/adapter/storage/local"
	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/port"
	"github.com/bnema/vidqa/internal/port/mocks"
)

type harness struct {
	orch    *Orchestrator
	repo    *recordingRepo
	results *jsonfile.Store
	media   *local.Store
	dataDir string
	proc    *mocks.MediaProcessorMock
	fetcher *mocks.MediaFetcherMock
	render  *mocks.ReportRendererMock
}

func newHarness(t *testing.T, providers port.Providers, formats ...domain.ReportFormat) *harness {
	t.Helper()

	dataDir := t.TempDir()
	media, err := local.NewStore(dataDir)
	require.NoError(t, err)

	h := &harness{
		repo:    newRecordingRepo(),
		results: jsonfile.NewMemoryStore(),
		media:   media,
		dataDir: dataDir,
		proc:    mocks.NewMediaProcessorMock(t),
		fetcher: mocks.NewMediaFetcherMock(t),
		render:  mocks.NewReportRendererMock(t),
	}
	h.orch = NewOrchestrator(Deps{
		Jobs:      h.repo,
		Results:   h.results,
		Media:     media,
		Processor: h.proc,
		Fetcher:   h.fetcher,
		Providers: providers,
		Renderer:  h.render,
		Events:    NewEventBus(),
	}, OrchestratorConfig{
		FrameInterval:  5,
		ScoreWorkers:   2,
		ReportFormats:  formats,
		RetryBaseDelay: time.Millisecond,
	})
	return h
}

func (h *harness) localVideo(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(path, []byte("video"), 0o600))
	return path
}

func (h *harness) workEntries(t *testing.T) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(h.dataDir, "work"))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	require.NoError(t, err)
	return entries
}

func TestOrchestrator_CompletesWithoutAudio(t *testing.T) {
	h := newHarness(t, okProviders(t), domain.ReportJSON)
	video := h.localVideo(t)

	h.proc.EXPECT().Probe(mock.Anything, video).Return(probeResult("25/1", "250", false), nil).Once()
	h.proc.EXPECT().ExtractFrame(mock.Anything, video, mock.Anything, 25.0, mock.Anything).
		RunAndReturn(extractFrameWriting).Times(2)
	h.proc.EXPECT().ExtractAudio(mock.Anything, video, mock.Anything).Return(domain.ErrNoAudioTrack).Once()
	h.render.EXPECT().Render(mock.Anything, domain.ReportJSON, mock.Anything).Return(nil).Once()

	id, err := h.orch.Submit(context.Background(), video)
	require.NoError(t, err)
	h.orch.Wait()

	job, err := h.orch.Status(id)
	require.NoError(t, err)
	require.Equal(t, domain.JobStatusCompleted, job.Status, job.Error)
	assert.Equal(t, 100.0, job.Progress)

	res, err := h.orch.Result(id)
	require.NoError(t, err)
	assert.Equal(t, 2, res.AnalyzedFrames)
	assert.False(t, res.Audio.Success)
	assert.Equal(t, "no audio track", res.Audio.Error)
	assert.Equal(t, 0.0, res.Summary.AudioQualityScore)
	assert.False(t, res.Summary.HasAudioTranscription)
	assert.Equal(t, 1.0, res.Summary.FaceDetectionRate)
	assert.Equal(t, "clip.mp4", res.VideoName)

	assert.FileExists(t, video, "local sources are not deleted")
	assert.Empty(t, h.workEntries(t), "transient artifacts are released")
}

func TestOrchestrator_ProgressIsMonotonic(t *testing.T) {
	h := newHarness(t, okProviders(t))
	video := h.localVideo(t)

	h.proc.EXPECT().Probe(mock.Anything, video).Return(probeResult("25/1", "1250", true), nil).Once()
	h.proc.EXPECT().ExtractFrame(mock.Anything, video, mock.Anything, 25.0, mock.Anything).
		RunAndReturn(extractFrameWriting).Times(10)
	h.proc.EXPECT().ExtractAudio(mock.Anything, video, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, out string) error {
			return os.WriteFile(out, []byte("RIFF"), 0o600)
		}).Once()

	id, err := h.orch.Submit(context.Background(), video)
	require.NoError(t, err)
	h.orch.Wait()

	history := h.repo.snapshots(id)
	require.NotEmpty(t, history)
	statuses := map[domain.JobStatus]bool{}
	for i, j := range history {
		statuses[j.Status] = true
		if i > 0 {
			assert.GreaterOrEqual(t, j.Progress, history[i-1].Progress, "progress went backwards at step %d", i)
		}
		if j.Status == domain.JobStatusCompleted {
			assert.Equal(t, 100.0, j.Progress)
		} else {
			assert.Less(t, j.Progress, 100.0)
		}
	}
	for _, s := range []domain.JobStatus{
		domain.JobStatusPending, domain.JobStatusDownloading, domain.JobStatusExtracting,
		domain.JobStatusScoring, domain.JobStatusAggregating, domain.JobStatusCompleted,
	} {
		assert.True(t, statuses[s], "never saw %s", s)
	}

	res, err := h.orch.Result(id)
	require.NoError(t, err)
	assert.True(t, res.Audio.Success)
	assert.Equal(t, 85.0, res.Summary.AudioQualityScore)
	assert.True(t, res.Summary.HasAudioTranscription)
}

func TestOrchestrator_AllStrategiesFail(t *testing.T) {
	h := newHarness(t, okProviders(t))
	url := "https://vimeo.com/12345"

	h.fetcher.EXPECT().FetchInfo(mock.Anything, url).Return(nil, errors.New("m1")).Times(infoMaxRetries + 1)
	failures := []string{"m2", "m3"}
	calls := 0
	h.fetcher.EXPECT().Download(mock.Anything, url, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ domain.FetchProfile, dir string) (string, error) {
			_ = os.WriteFile(filepath.Join(dir, "partial.part"), []byte("x"), 0o600)
			err := errors.New(failures[calls])
			calls++
			return "", err
		}).Twice()

	id, err := h.orch.Submit(context.Background(), url)
	require.NoError(t, err)
	h.orch.Wait()

	job, err := h.orch.Status(id)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusFailed, job.Status)
	for _, m := range []string{"m1", "m2", "m3"} {
		assert.Contains(t, job.Error, m)
		assert.Contains(t, job.Message, m)
	}
	assert.Empty(t, h.workEntries(t), "no partial files left for the job")

	_, err = h.orch.Result(id)
	assert.ErrorIs(t, err, domain.ErrJobNotReady)
}

func TestOrchestrator_UnreadableMediaFailsJob(t *testing.T) {
	h := newHarness(t, okProviders(t))
	video := h.localVideo(t)
	h.proc.EXPECT().Probe(mock.Anything, video).Return(nil, errors.New("invalid data found")).Once()

	id, err := h.orch.Submit(context.Background(), video)
	require.NoError(t, err)
	h.orch.Wait()

	job, _ := h.orch.Status(id)
	assert.Equal(t, domain.JobStatusFailed, job.Status)
	assert.Contains(t, job.Error, "invalid data found")
}

func TestOrchestrator_NoFramesFailsJob(t *testing.T) {
	h := newHarness(t, okProviders(t))
	video := h.localVideo(t)
	h.proc.EXPECT().Probe(mock.Anything, video).Return(probeResult("25/1", "250", false), nil).Once()
	h.proc.EXPECT().ExtractFrame(mock.Anything, video, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("decode error")).Times(2)

	id, err := h.orch.Submit(context.Background(), video)
	require.NoError(t, err)
	h.orch.Wait()

	job, _ := h.orch.Status(id)
	assert.Equal(t, domain.JobStatusFailed, job.Status)
	assert.Equal(t, domain.ErrNoFramesScored.Error(), job.Error)
}

func TestOrchestrator_Report(t *testing.T) {
	h := newHarness(t, okProviders(t))
	job, err := h.orch.tracker.Create("/v/a.mp4")
	require.NoError(t, err)

	t.Run("not ready", func(t *testing.T) {
		_, _, err := h.orch.Report(context.Background(), job.ID, "json")
		assert.ErrorIs(t, err, domain.ErrJobNotReady)
	})

	t.Run("unknown job", func(t *testing.T) {
		_, _, err := h.orch.Report(context.Background(), "nope", "json")
		assert.ErrorIs(t, err, domain.ErrJobNotFound)
	})

	t.Run("bad format", func(t *testing.T) {
		_, _, err := h.orch.Report(context.Background(), job.ID, "docx")
		var formatErr *domain.ReportFormatError
		assert.True(t, errors.As(err, &formatErr))
	})

	res := &domain.AnalysisResult{JobID: job.ID, VideoName: "a.mp4"}
	require.NoError(t, h.results.SaveResult(res))
	require.NoError(t, h.orch.tracker.Complete(job.ID, "done"))

	t.Run("renders once then reuses", func(t *testing.T) {
		h.render.EXPECT().Render(res, domain.ReportXLSX, mock.Anything).
			RunAndReturn(func(_ *domain.AnalysisResult, _ domain.ReportFormat, path string) error {
				return os.WriteFile(path, []byte("PK"), 0o600)
			}).Once()

		path, contentType, err := h.orch.Report(context.Background(), job.ID, "excel")
		require.NoError(t, err)
		assert.Equal(t, domain.ReportXLSX.ContentType(), contentType)
		assert.Equal(t, ".xlsx", filepath.Ext(path))

		again, _, err := h.orch.Report(context.Background(), job.ID, "xlsx")
		require.NoError(t, err)
		assert.Equal(t, path, again)
	})
}

func TestOrchestrator_StartAnalysis(t *testing.T) {
	h := newHarness(t, okProviders(t))
	existing := h.localVideo(t)

	tests := []struct {
		name    string
		req     AnalysisRequest
		wantErr error
	}{
		{"empty", AnalysisRequest{}, domain.ErrInvalidSource},
		{"both", AnalysisRequest{VideoURL: "https://x.com/v", VideoFile: existing}, domain.ErrInvalidSource},
		{"not a url", AnalysisRequest{VideoURL: "ftp://example.com/v.mp4"}, domain.ErrInvalidSource},
		{"missing upload", AnalysisRequest{VideoFile: filepath.Join(h.dataDir, "uploads", "gone.mp4")}, domain.ErrNotFound},
		{"file outside uploads", AnalysisRequest{VideoFile: existing}, domain.ErrInvalidSource},
		{"system file", AnalysisRequest{VideoFile: "/etc/passwd"}, domain.ErrInvalidSource},
		{"relative traversal", AnalysisRequest{VideoFile: "../../../../etc/passwd"}, domain.ErrInvalidSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.orch.StartAnalysis(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	jobs, err := h.orch.List()
	require.NoError(t, err)
	assert.Empty(t, jobs, "rejected requests never register a job")
}

func TestOrchestrator_StartAnalysisResolvesUploads(t *testing.T) {
	h := newHarness(t, okProviders(t))
	up, err := h.media.SaveUpload("clip.mp4", strings.NewReader("video"))
	require.NoError(t, err)

	h.proc.EXPECT().Probe(mock.Anything, up.Path).Return(nil, errors.New("invalid data found")).Twice()

	tests := []struct {
		name string
		ref  string
	}{
		{"by file id", up.FileID},
		{"by stored path", up.Path},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := h.orch.StartAnalysis(context.Background(), AnalysisRequest{VideoFile: tt.ref})
			require.NoError(t, err)
			h.orch.Wait()

			job, err := h.orch.Status(id)
			require.NoError(t, err)
			assert.Equal(t, up.Path, job.Source)
		})
	}
}

func TestOrchestrator_ListRemoteFormats(t *testing.T) {
	h := newHarness(t, okProviders(t))
	url := "https://www.bilibili.com/video/BV1xx"
	h.fetcher.EXPECT().FetchInfo(mock.Anything, url).Return(&domain.RemoteInfo{
		Title:    "clip",
		Duration: 61,
		Formats:  []domain.RemoteFormat{{FormatID: "80", Ext: "mp4", Resolution: "1920x1080"}},
	}, nil).Once()

	info, err := h.orch.ListRemoteFormats(context.Background(), url)

	require.NoError(t, err)
	assert.Equal(t, domain.PlatformBilibili, info.Platform)
	assert.Len(t, info.Formats, 1)

	_, err = h.orch.ListRemoteFormats(context.Background(), "/local/file.mp4")
	assert.ErrorIs(t, err, domain.ErrInvalidSource)
}

func TestOrchestrator_FailInterrupted(t *testing.T) {
	h := newHarness(t, okProviders(t))

	stuck := domain.NewJob("https://youtu.be/x")
	stuck.Status = domain.JobStatusScoring
	stuck.Progress = 55
	done := domain.NewJob("/tmp/clip.mp4")
	done.Status = domain.JobStatusCompleted
	done.Progress = 100
	require.NoError(t, h.repo.Save(stuck))
	require.NoError(t, h.repo.Save(done))

	scope, err := h.media.Scope(stuck.ID)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(scope, "frame_000001.jpg"), []byte("x"), 0o600))

	n, err := h.orch.FailInterrupted()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := h.orch.Status(stuck.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusFailed, got.Status)
	assert.Equal(t, domain.ErrInterrupted.Error(), got.Error)
	assert.Equal(t, 55.0, got.Progress)
	assert.Empty(t, h.workEntries(t))

	got, err = h.orch.Status(done.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusCompleted, got.Status)
}
