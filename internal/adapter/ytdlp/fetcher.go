package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
	"github.com/bnema/vidqa/internal/port"
	"github.com/rs/zerolog"
)

// Fetcher drives a local yt-dlp binary.
type Fetcher struct {
	binaryPath  string
	cookiesFile string
	logger      zerolog.Logger
}

func NewFetcher(binaryPath, cookiesFile string) *Fetcher {
	if binaryPath == "" {
		binaryPath = "yt-dlp"
	}
	return &Fetcher{
		binaryPath:  binaryPath,
		cookiesFile: cookiesFile,
		logger:      logger.WithComponent("ytdlp"),
	}
}

// infoJSON is the subset of yt-dlp's --dump-single-json output we read.
type infoJSON struct {
	Title          string  `json:"title"`
	Duration       float64 `json:"duration"`
	FileSize       int64   `json:"filesize"`
	FileSizeApprox float64 `json:"filesize_approx"`
	Formats        []struct {
		FormatID       string   `json:"format_id"`
		Ext            string   `json:"ext"`
		Resolution     string   `json:"resolution"`
		FileSize       int64    `json:"filesize"`
		FileSizeApprox float64  `json:"filesize_approx"`
		VCodec         string   `json:"vcodec"`
		ACodec         string   `json:"acodec"`
		FPS            *float64 `json:"fps"`
	} `json:"formats"`
}

func (f *Fetcher) FetchInfo(ctx context.Context, url string) (*domain.RemoteInfo, error) {
	args := []string{
		"--dump-single-json",
		"--no-playlist",
		"--no-warnings",
		"--no-check-certificates",
		url,
	}
	out, err := f.run(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("metadata query failed: %w", err)
	}

	var raw infoJSON
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}

	info := &domain.RemoteInfo{
		Title:    raw.Title,
		Duration: raw.Duration,
		FileSize: raw.FileSize,
		Platform: domain.ClassifyPlatform(url),
		Formats:  make([]domain.RemoteFormat, 0, len(raw.Formats)),
	}
	if info.FileSize == 0 {
		info.FileSize = int64(raw.FileSizeApprox)
	}
	for _, rf := range raw.Formats {
		format := domain.RemoteFormat{
			FormatID:   orNA(rf.FormatID),
			Ext:        orNA(rf.Ext),
			Resolution: orNA(rf.Resolution),
			FileSize:   rf.FileSize,
			VCodec:     orNA(rf.VCodec),
			ACodec:     orNA(rf.ACodec),
		}
		if format.FileSize == 0 {
			format.FileSize = int64(rf.FileSizeApprox)
		}
		if rf.FPS != nil {
			format.FPS = *rf.FPS
		}
		info.Formats = append(info.Formats, format)
	}
	return info, nil
}

func (f *Fetcher) Download(ctx context.Context, url string, profile domain.FetchProfile, dir string) (string, error) {
	format := profile.Format
	if format == "" {
		format = domain.FormatBest
	}

	args := []string{
		"-f", format,
		"-o", filepath.Join(dir, "%(id)s.%(ext)s"),
		"--no-playlist",
		"--no-warnings",
		"--no-check-certificates",
		"--no-part",
		"--restrict-filenames",
	}
	if profile.WriteInfoJSON {
		args = append(args, "--write-info-json")
	}
	if profile.WriteSubs {
		args = append(args, "--write-subs", "--write-auto-subs")
		if len(profile.SubLangs) > 0 {
			args = append(args, "--sub-langs", strings.Join(profile.SubLangs, ","))
		}
	}
	if profile.UseCookies && f.cookiesFile != "" {
		if _, err := os.Stat(f.cookiesFile); err == nil {
			args = append(args, "--cookies", f.cookiesFile)
		} else {
			f.logger.Warn().Str("cookies", f.cookiesFile).Msg("cookies file not found, continuing without it")
		}
	}
	args = append(args, url)

	f.logger.Info().Str("url", logger.SanitizeURL(url)).Str("format", format).Msg("downloading")
	if _, err := f.run(ctx, args); err != nil {
		return "", err
	}

	path, err := findMedia(dir)
	if err != nil {
		return "", err
	}
	return path, nil
}

var sidecarExts = map[string]bool{
	".json": true, ".vtt": true, ".srt": true, ".ass": true,
	".part": true, ".ytdl": true, ".jpg": true, ".webp": true,
}

// findMedia returns the largest non-sidecar file yt-dlp left in dir.
func findMedia(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read download directory: %w", err)
	}

	var best string
	var bestSize int64 = -1
	for _, e := range entries {
		if e.IsDir() || sidecarExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.Size() > bestSize {
			best, bestSize = filepath.Join(dir, e.Name()), info.Size()
		}
	}
	if best == "" || bestSize == 0 {
		return "", fmt.Errorf("yt-dlp finished but produced no media file")
	}
	return best, nil
}

func (f *Fetcher) run(ctx context.Context, args []string) ([]byte, error) {
	f.logger.Debug().Strs("args", args).Msg("executing yt-dlp")

	cmd := exec.CommandContext(ctx, f.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("yt-dlp failed: %w, stderr: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

var _ port.MediaFetcher = (*Fetcher)(nil)
