package port

import (
	"context"

	"github.com/bnema/vidqa/internal/domain"
)

// MediaProcessor wraps the ffmpeg toolchain.
type MediaProcessor interface {
	Probe(ctx context.Context, inputPath string) (*domain.ProbeResult, error)
	// ExtractFrame decodes the frame at position and writes it as an image to outputPath.
	ExtractFrame(ctx context.Context, inputPath string, position int, fps float64, outputPath string) error
	// ExtractAudio writes the first audio stream as 16-bit PCM WAV at the
	// source sample rate and channel count.
	// It returns domain.ErrNoAudioTrack when the input has no audio stream.
	ExtractAudio(ctx context.Context, inputPath, outputPath string) error
}
