package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
	"github.com/bnema/vidqa/internal/port"
)

type Deps struct {
	Jobs      port.JobRepository
	Results   port.ResultStore
	Media     port.MediaStore
	Processor port.MediaProcessor
	Fetcher   port.MediaFetcher
	Providers port.Providers
	Renderer  port.ReportRenderer
	Events    EventPublisher
}

type OrchestratorConfig struct {
	FrameInterval  float64
	ScoreWorkers   int
	Weights        domain.Weights
	ReportFormats  []domain.ReportFormat
	RetryBaseDelay time.Duration
}

// AnalysisRequest names exactly one source: a remote URL or an upload
// previously stored through SubmitMedia, by file id or by its stored path.
type AnalysisRequest struct {
	VideoURL  string `json:"video_url,omitempty"`
	VideoFile string `json:"video_file,omitempty"`
}

type Orchestrator struct {
	tracker  *ProgressTracker
	results  port.ResultStore
	media    port.MediaStore
	fetcher  port.MediaFetcher
	renderer port.ReportRenderer
	acquirer *Acquirer
	sampler  *Sampler
	scorer   *Scorer
	audio    *AudioPipeline
	formats  []domain.ReportFormat

	wg       sync.WaitGroup
	renderMu sync.Mutex
}

func NewOrchestrator(deps Deps, cfg OrchestratorConfig) *Orchestrator {
	weights := cfg.Weights
	if weights == (domain.Weights{}) {
		weights = domain.DefaultWeights
	}
	return &Orchestrator{
		tracker:  NewProgressTracker(deps.Jobs, deps.Events),
		results:  deps.Results,
		media:    deps.Media,
		fetcher:  deps.Fetcher,
		renderer: deps.Renderer,
		acquirer: NewAcquirer(deps.Fetcher, deps.Media, cfg.RetryBaseDelay),
		sampler:  NewSampler(deps.Processor, cfg.FrameInterval),
		scorer:   NewScorer(deps.Providers, weights, cfg.ScoreWorkers),
		audio:    NewAudioPipeline(deps.Processor, deps.Providers.Transcriber, deps.Providers.AudioQuality),
		formats:  cfg.ReportFormats,
	}
}

// StartAnalysis validates the request and submits its source.
func (o *Orchestrator) StartAnalysis(ctx context.Context, req AnalysisRequest) (string, error) {
	videoURL := strings.TrimSpace(req.VideoURL)
	videoFile := strings.TrimSpace(req.VideoFile)

	switch {
	case videoURL != "" && videoFile != "":
		return "", fmt.Errorf("provide either video_url or video_file, not both: %w", domain.ErrInvalidSource)
	case videoURL != "":
		if !domain.IsRemote(videoURL) {
			return "", fmt.Errorf("video_url must be an http(s) URL: %w", domain.ErrInvalidSource)
		}
		return o.Submit(ctx, videoURL)
	case videoFile != "":
		path, err := o.media.ResolveUpload(videoFile)
		if err != nil {
			return "", fmt.Errorf("video_file: %w", err)
		}
		return o.Submit(ctx, path)
	default:
		return "", fmt.Errorf("video_url or video_file is required: %w", domain.ErrInvalidSource)
	}
}

// Submit registers a pending job and runs its pipeline in the background.
// The pipeline is detached from ctx so it outlives the submitting request.
func (o *Orchestrator) Submit(ctx context.Context, source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", domain.ErrInvalidSource
	}

	job, err := o.tracker.Create(source)
	if err != nil {
		return "", err
	}
	logger.Info.Printf("Job %s submitted for %s", job.ID, logger.SanitizeURL(source))

	o.wg.Add(1)
	go o.run(context.WithoutCancel(ctx), job.ID, source)

	return job.ID, nil
}

// Wait blocks until every submitted pipeline has finished.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

func (o *Orchestrator) Status(jobID string) (*domain.Job, error) {
	return o.tracker.Get(jobID)
}

func (o *Orchestrator) List() ([]*domain.Job, error) {
	return o.tracker.jobs.List()
}

// FailInterrupted fails jobs that a previous process left mid-pipeline.
// It must run before any new job is submitted.
func (o *Orchestrator) FailInterrupted() (int, error) {
	jobs, err := o.tracker.jobs.List()
	if err != nil {
		return 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	failed := 0
	for _, job := range jobs {
		if job.Status.IsTerminal() {
			continue
		}
		if err := o.tracker.Fail(job.ID, domain.ErrInterrupted); err != nil {
			return failed, fmt.Errorf("failed to fail job %s: %w", job.ID, err)
		}
		if err := o.media.Release(job.ID); err != nil {
			logger.Warn.Printf("failed to release media for interrupted job %s: %v", job.ID, err)
		}
		failed++
	}
	return failed, nil
}

func (o *Orchestrator) Result(jobID string) (*domain.AnalysisResult, error) {
	job, err := o.tracker.Get(jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobStatusCompleted {
		return nil, fmt.Errorf("job %s is %s: %w", jobID, job.Status, domain.ErrJobNotReady)
	}
	return o.results.GetResult(jobID)
}

// Report returns the path of the rendered report, rendering it on first
// request when it was not produced at completion.
func (o *Orchestrator) Report(ctx context.Context, jobID, format string) (string, string, error) {
	f, err := domain.ParseReportFormat(format)
	if err != nil {
		return "", "", err
	}
	res, err := o.Result(jobID)
	if err != nil {
		return "", "", err
	}

	path, err := o.media.ReportPath(jobID, f)
	if err != nil {
		return "", "", err
	}

	o.renderMu.Lock()
	defer o.renderMu.Unlock()

	if _, err := os.Stat(path); err == nil {
		return path, f.ContentType(), nil
	}
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	if err := o.renderer.Render(res, f, path); err != nil {
		return "", "", err
	}
	return path, f.ContentType(), nil
}

func (o *Orchestrator) ListRemoteFormats(ctx context.Context, url string) (*domain.RemoteInfo, error) {
	if !domain.IsRemote(url) {
		return nil, fmt.Errorf("url must be an http(s) URL: %w", domain.ErrInvalidSource)
	}
	info, err := o.fetcher.FetchInfo(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to list formats: %w", err)
	}
	if info.Platform == "" {
		info.Platform = domain.ClassifyPlatform(url)
	}
	return info, nil
}

func (o *Orchestrator) run(ctx context.Context, jobID, source string) {
	defer o.wg.Done()
	defer func() {
		if err := o.media.Release(jobID); err != nil {
			logger.Error.Printf("failed to release media for job %s: %v", jobID, err)
		}
	}()

	start := time.Now()
	res, err := o.pipeline(ctx, jobID, source, start)
	if err != nil {
		logger.Error.Printf("Job %s failed: %v", jobID, err)
		if ferr := o.tracker.Fail(jobID, err); ferr != nil {
			logger.Error.Printf("failed to mark job %s as failed: %v", jobID, ferr)
		}
		return
	}

	msg := fmt.Sprintf("analysis completed, overall score %.1f", res.OverallQualityScore)
	if err := o.tracker.Complete(jobID, msg); err != nil {
		logger.Error.Printf("failed to complete job %s: %v", jobID, err)
		return
	}
	logger.Info.Printf("Job %s completed in %s (%d frames, score %.1f)",
		jobID, time.Since(start).Round(time.Millisecond), res.AnalyzedFrames, res.OverallQualityScore)
}

// pipeline runs every stage in order. Any returned error fails the job.
func (o *Orchestrator) pipeline(ctx context.Context, jobID, source string, start time.Time) (*domain.AnalysisResult, error) {
	advance := func(status domain.JobStatus, progress float64, msg string) error {
		return o.tracker.Advance(jobID, Update{Status: status, Progress: progress, Message: msg})
	}
	units := func(status domain.JobStatus, lo, hi float64, verb string) func(done, total int) {
		return func(done, total int) {
			err := o.tracker.Advance(jobID, Update{
				Status:      status,
				Progress:    span(lo, hi, done, total),
				Message:     fmt.Sprintf("%s %d/%d", verb, done, total),
				CurrentUnit: done,
				TotalUnits:  total,
			})
			if err != nil {
				logger.Warn.Printf("progress update for job %s: %v", jobID, err)
			}
		}
	}

	if err := advance(domain.JobStatusDownloading, progressDownloadStart, "acquiring media"); err != nil {
		return nil, err
	}
	src, err := o.acquirer.Acquire(ctx, jobID, source)
	if err != nil {
		return nil, err
	}
	if err := advance(domain.JobStatusDownloading, progressDownloadEnd, "media ready"); err != nil {
		return nil, err
	}

	if err := advance(domain.JobStatusExtracting, progressDownloadEnd, "reading media"); err != nil {
		return nil, err
	}
	if err := o.sampler.Open(ctx, src); err != nil {
		return nil, err
	}
	scope, err := o.media.Scope(jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to create media scope: %w", err)
	}
	frames, err := o.sampler.Sample(ctx, src, filepath.Join(scope, "frames"),
		units(domain.JobStatusExtracting, progressDownloadEnd, progressExtractEnd, "extracted frame"))
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, domain.ErrNoFramesScored
	}

	if err := advance(domain.JobStatusScoring, progressExtractEnd, fmt.Sprintf("scoring %d frames", len(frames))); err != nil {
		return nil, err
	}
	scores, err := o.scorer.ScoreFrames(ctx, frames,
		units(domain.JobStatusScoring, progressExtractEnd, progressScoringEnd, "scored frame"))
	if err != nil {
		return nil, err
	}

	if err := advance(domain.JobStatusScoring, progressScoringEnd, "analyzing audio"); err != nil {
		return nil, err
	}
	audio := o.audio.Analyze(ctx, src.LocalPath, scope)
	if err := advance(domain.JobStatusScoring, progressAudioEnd, "audio analyzed"); err != nil {
		return nil, err
	}

	if err := advance(domain.JobStatusAggregating, progressAudioEnd, "assembling results"); err != nil {
		return nil, err
	}
	res, err := domain.Assemble(jobID, *src, scores, audio, time.Since(start))
	if err != nil {
		return nil, err
	}
	if err := o.results.SaveResult(res); err != nil {
		return nil, fmt.Errorf("failed to save result: %w", err)
	}
	o.prerender(res)

	return res, nil
}

// prerender writes the configured report formats. Failures are logged only;
// Report renders missing formats on demand.
func (o *Orchestrator) prerender(res *domain.AnalysisResult) {
	o.renderMu.Lock()
	defer o.renderMu.Unlock()

	for _, f := range o.formats {
		path, err := o.media.ReportPath(res.JobID, f)
		if err == nil {
			err = o.renderer.Render(res, f, path)
		}
		if err != nil {
			logger.Warn.Printf("failed to render %s report for job %s: %v", f, res.JobID, err)
		}
	}
}
