package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sethvargo/go-retry"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
	"github.com/bnema/vidqa/internal/port"
)

const (
	longVideoSeconds = 3600
	largeVideoBytes  = 500 * 1024 * 1024
	infoMaxRetries   = 2
)

// strategy is one way of turning a URL into a local file inside dir.
type strategy struct {
	name  string
	fetch func(ctx context.Context, url, dir string) (string, error)
}

type Acquirer struct {
	fetcher   port.MediaFetcher
	media     port.MediaStore
	retryBase time.Duration
}

func NewAcquirer(fetcher port.MediaFetcher, media port.MediaStore, retryBase time.Duration) *Acquirer {
	if retryBase <= 0 {
		retryBase = time.Second
	}
	return &Acquirer{fetcher: fetcher, media: media, retryBase: retryBase}
}

// Acquire resolves source to a local file. Local paths are returned as is;
// URLs are fetched into the job's media scope by the first strategy that
// succeeds.
func (a *Acquirer) Acquire(ctx context.Context, jobID, source string) (*domain.MediaSource, error) {
	if !domain.IsRemote(source) {
		if _, err := os.Stat(source); err != nil {
			return nil, fmt.Errorf("video file not found: %w", err)
		}
		return &domain.MediaSource{Origin: source, LocalPath: source}, nil
	}

	scope, err := a.media.Scope(jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to create media scope: %w", err)
	}

	platform := domain.ClassifyPlatform(source)
	logger.Info.Printf("Acquiring %s (platform=%s)", logger.SanitizeURL(source), platform)

	acqErr := &domain.AcquisitionError{Source: logger.SanitizeURL(source)}
	for i, s := range a.strategies(platform) {
		dir := filepath.Join(scope, fmt.Sprintf("attempt-%d-%s", i+1, s.name))
		if err := os.RemoveAll(dir); err != nil {
			return nil, fmt.Errorf("failed to reset attempt directory: %w", err)
		}
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create attempt directory: %w", err)
		}

		path, err := s.fetch(ctx, source, dir)
		if err == nil {
			logger.Info.Printf("Acquired %s with strategy %s", filepath.Base(path), s.name)
			return &domain.MediaSource{Origin: source, LocalPath: path, Remote: true}, nil
		}

		logger.Warn.Printf("Strategy %s failed for %s: %v", s.name, logger.SanitizeURL(source), err)
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			logger.Error.Printf("failed to remove attempt directory %s: %v", dir, rmErr)
		}
		acqErr.Attempts = append(acqErr.Attempts, domain.StrategyFailure{Strategy: s.name, Err: err})

		if ctx.Err() != nil {
			break
		}
	}

	return nil, acqErr
}

func (a *Acquirer) strategies(platform domain.Platform) []strategy {
	return []strategy{
		{name: "platform-preferred", fetch: func(ctx context.Context, url, dir string) (string, error) {
			info, err := a.remoteInfo(ctx, url)
			if err != nil {
				return "", err
			}
			warnIfHeavy(info)
			return a.fetcher.Download(ctx, url, domain.ProfileFor(platform), dir)
		}},
		{name: "generic-best", fetch: func(ctx context.Context, url, dir string) (string, error) {
			return a.fetcher.Download(ctx, url, domain.FetchProfile{Format: domain.FormatBest}, dir)
		}},
		{name: "minimal", fetch: func(ctx context.Context, url, dir string) (string, error) {
			return a.fetcher.Download(ctx, url, domain.FetchProfile{Format: domain.FormatWorst}, dir)
		}},
	}
}

// remoteInfo queries metadata with bounded exponential retries.
func (a *Acquirer) remoteInfo(ctx context.Context, url string) (*domain.RemoteInfo, error) {
	var info *domain.RemoteInfo
	backoff := retry.WithMaxRetries(infoMaxRetries, retry.NewExponential(a.retryBase))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		i, err := a.fetcher.FetchInfo(ctx, url)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			logger.Debug.Printf("metadata query failed, retrying: %v", err)
			return retry.RetryableError(err)
		}
		info = i
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("metadata query failed: %w", err)
	}
	return info, nil
}

func warnIfHeavy(info *domain.RemoteInfo) {
	for _, w := range heavyWarnings(info) {
		logger.Warn.Printf("%s", w)
	}
}

// heavyWarnings flags sources over an hour or over 500 MiB.
func heavyWarnings(info *domain.RemoteInfo) []string {
	var warnings []string
	if info.Duration > longVideoSeconds {
		warnings = append(warnings, fmt.Sprintf("Long video: %q runs %s", info.Title, domain.FormatDuration(info.Duration)))
	}
	if info.FileSize > largeVideoBytes {
		warnings = append(warnings, fmt.Sprintf("Large video: %q is %s", info.Title, humanize.IBytes(uint64(info.FileSize))))
	}
	return warnings
}
