package ffmpeg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
	"github.com/bnema/vidqa/internal/port"
	"github.com/rs/zerolog"
)

var (
	ErrEmptyPath   = errors.New("path is empty")
	ErrInvalidPath = errors.New("path contains null byte")
)

func validatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if strings.ContainsRune(path, 0) {
		return ErrInvalidPath
	}
	return nil
}

type Processor struct {
	ffmpegPath  string
	ffprobePath string
	logger      zerolog.Logger
}

func NewProcessor(ffmpegPath, ffprobePath string) *Processor {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Processor{
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		logger:      logger.WithComponent("ffmpeg"),
	}
}

func (p *Processor) Probe(ctx context.Context, inputPath string) (*domain.ProbeResult, error) {
	if err := validatePath(inputPath); err != nil {
		return nil, fmt.Errorf("invalid input path: %w", err)
	}

	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		inputPath,
	}
	output, err := p.run(ctx, p.ffprobePath, args)
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	var probe domain.ProbeResult
	if err := json.Unmarshal(output, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	return &probe, nil
}

func (p *Processor) ExtractFrame(ctx context.Context, inputPath string, position int, fps float64, outputPath string) error {
	if err := validatePath(inputPath); err != nil {
		return fmt.Errorf("invalid input path: %w", err)
	}
	if err := validatePath(outputPath); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	if fps <= 0 {
		return fmt.Errorf("invalid frame rate %v", fps)
	}

	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-ss", fmt.Sprintf("%.3f", float64(position)/fps),
		"-i", inputPath,
		"-frames:v", "1",
		"-q:v", "2",
		"-y", outputPath,
	}
	if _, err := p.run(ctx, p.ffmpegPath, args); err != nil {
		return fmt.Errorf("extract frame %d: %w", position, err)
	}

	// ffmpeg exits 0 without writing anything when seeking past the last frame.
	info, err := os.Stat(outputPath)
	if err != nil || info.Size() == 0 {
		return fmt.Errorf("extract frame %d: no image produced", position)
	}
	return nil
}

func (p *Processor) ExtractAudio(ctx context.Context, inputPath, outputPath string) error {
	if err := validatePath(outputPath); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	probe, err := p.Probe(ctx, inputPath)
	if err != nil {
		return err
	}
	if probe.AudioStream() == nil {
		return domain.ErrNoAudioTrack
	}

	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-i", inputPath,
		"-vn",
		"-acodec", "pcm_s16le",
		"-y", outputPath,
	}
	if _, err := p.run(ctx, p.ffmpegPath, args); err != nil {
		return fmt.Errorf("extract audio: %w", err)
	}
	return nil
}

func (p *Processor) run(ctx context.Context, bin string, args []string) ([]byte, error) {
	p.logger.Debug().Str("cmd", bin).Strs("args", args).Msg("executing")

	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", err, lastLine(msg))
	}
	return stdout.Bytes(), nil
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}

var _ port.MediaProcessor = (*Processor)(nil)
