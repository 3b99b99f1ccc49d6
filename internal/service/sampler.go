package service

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
	"github.com/bnema/vidqa/internal/port"
)

const DefaultFrameInterval = 5.0

type Sampler struct {
	processor port.MediaProcessor
	interval  float64
}

func NewSampler(processor port.MediaProcessor, intervalSeconds float64) *Sampler {
	if intervalSeconds <= 0 {
		intervalSeconds = DefaultFrameInterval
	}
	return &Sampler{processor: processor, interval: intervalSeconds}
}

// Open probes the artifact and fills src.Metadata.
func (s *Sampler) Open(ctx context.Context, src *domain.MediaSource) error {
	probe, err := s.processor.Probe(ctx, src.LocalPath)
	if err != nil {
		return &domain.UnreadableMediaError{Path: src.Name(), Err: err}
	}
	md, err := probe.Metadata()
	if err != nil {
		return &domain.UnreadableMediaError{Path: src.Name(), Err: err}
	}
	if md.ByteSize == 0 {
		if fi, statErr := os.Stat(src.LocalPath); statErr == nil {
			md.ByteSize = fi.Size()
		}
	}
	src.Metadata = md
	return nil
}

// Positions returns the source frame numbers to sample.
func (s *Sampler) Positions(md domain.FormatMetadata) []int {
	stride := int(math.Floor(md.FPS * s.interval))
	if stride < 1 {
		stride = 1
	}
	positions := make([]int, 0, md.TotalFrames/stride+1)
	for pos := 0; pos < md.TotalFrames; pos += stride {
		positions = append(positions, pos)
	}
	return positions
}

// Sample extracts one frame per position into dir. Frames that fail to
// decode are skipped; indices count successful extractions only.
func (s *Sampler) Sample(ctx context.Context, src *domain.MediaSource, dir string, onProgress func(done, total int)) ([]domain.FrameSample, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create frames directory: %w", err)
	}

	md := src.Metadata
	positions := s.Positions(md)
	frames := make([]domain.FrameSample, 0, len(positions))

	for i, pos := range positions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out := filepath.Join(dir, fmt.Sprintf("frame_%06d.jpg", pos))
		if err := s.processor.ExtractFrame(ctx, src.LocalPath, pos, md.FPS, out); err != nil {
			logger.Warn.Printf("Skipping frame %d of %s: %v", pos, src.Name(), err)
		} else {
			frames = append(frames, domain.FrameSample{
				Index:     len(frames),
				Position:  pos,
				Timestamp: float64(pos) / md.FPS,
				Path:      out,
			})
		}

		if onProgress != nil {
			onProgress(i+1, len(positions))
		}
	}

	logger.Info.Printf("Extracted %d/%d frames from %s", len(frames), len(positions), src.Name())
	return frames, nil
}
