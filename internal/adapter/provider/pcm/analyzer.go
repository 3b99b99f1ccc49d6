// Package pcm measures the quality of an extracted PCM WAV track in
// process.
package pcm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/port"
)

// full scale of a signed 16-bit sample
const fullScale16 = 32768.0

var (
	ErrInvalidWAV = errors.New("not a valid WAV file")
	ErrEmptyAudio = errors.New("audio contains no samples")
)

type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

func (a *Analyzer) AnalyzeAudio(ctx context.Context, audioPath string) (*domain.AudioQuality, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(domain.CapabilityAudioQuality, err)
	}

	q, err := analyze(audioPath)
	if err != nil {
		return nil, domain.NewProviderError(domain.CapabilityAudioQuality, err)
	}
	return q, nil
}

func analyze(path string) (*domain.AudioQuality, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, ErrInvalidWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio: %w", err)
	}

	samples := monoSamples(buf, int(dec.BitDepth))
	if len(samples) == 0 {
		return nil, ErrEmptyAudio
	}

	vol := volumeStats(samples)
	q := &domain.AudioQuality{
		Duration:     float64(len(samples)) / float64(buf.Format.SampleRate),
		SampleRate:   buf.Format.SampleRate,
		Channels:     buf.Format.NumChannels,
		Volume:       vol,
		DynamicRange: 20 * (vol.Max - vol.Min) / fullScale16,
	}
	domain.ScoreAudioQuality(q)
	return q, nil
}

// monoSamples averages interleaved channels into one signal scaled to the
// 16-bit range.
func monoSamples(buf *audio.IntBuffer, bitDepth int) []float64 {
	chans := buf.Format.NumChannels
	if chans < 1 {
		chans = 1
	}
	scale := 1.0
	if bitDepth > 0 && bitDepth != 16 {
		scale = fullScale16 / math.Pow(2, float64(bitDepth-1))
	}

	frames := len(buf.Data) / chans
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < chans; c++ {
			sum += float64(buf.Data[i*chans+c])
		}
		out[i] = sum / float64(chans) * scale
	}
	return out
}

func volumeStats(samples []float64) domain.VolumeStats {
	vs := domain.VolumeStats{Min: samples[0], Max: samples[0]}
	var sum, sumSq float64
	for _, s := range samples {
		vs.Min = math.Min(vs.Min, s)
		vs.Max = math.Max(vs.Max, s)
		sum += s
		sumSq += s * s
	}
	n := float64(len(samples))
	vs.Mean = sum / n
	vs.RMS = math.Sqrt(sumSq / n)
	return vs
}

var _ port.AudioQualityAnalyzer = (*Analyzer)(nil)
