package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
	"github.com/bnema/vidqa/internal/port"
)

const audioFile = "audio.wav"

type AudioPipeline struct {
	processor   port.MediaProcessor
	transcriber port.Transcriber
	quality     port.AudioQualityAnalyzer
}

func NewAudioPipeline(processor port.MediaProcessor, transcriber port.Transcriber, quality port.AudioQualityAnalyzer) *AudioPipeline {
	return &AudioPipeline{processor: processor, transcriber: transcriber, quality: quality}
}

// Analyze extracts the audio track into workDir and runs transcription and
// quality analysis side by side. Failures are recorded in the returned
// block; the extracted WAV is always removed.
func (p *AudioPipeline) Analyze(ctx context.Context, videoPath, workDir string) domain.AudioAnalysis {
	wav := filepath.Join(workDir, audioFile)
	defer func() {
		if err := os.Remove(wav); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Error.Printf("failed to remove %s: %v", wav, err)
		}
	}()

	if err := p.processor.ExtractAudio(ctx, videoPath, wav); err != nil {
		if errors.Is(err, domain.ErrNoAudioTrack) {
			logger.Info.Printf("No audio track in %s", filepath.Base(videoPath))
			return domain.AudioAnalysis{Success: false, Error: domain.ErrNoAudioTrack.Error()}
		}
		logger.Warn.Printf("Audio extraction failed for %s: %v", filepath.Base(videoPath), err)
		return domain.AudioAnalysis{Success: false, Error: err.Error()}
	}

	result := domain.AudioAnalysis{Success: true}
	var g errgroup.Group

	g.Go(func() error {
		t, err := p.transcriber.Transcribe(ctx, wav)
		if err != nil {
			logger.Warn.Printf("Transcription failed: %v", err)
			result.Transcription = domain.Transcription{
				Language: "unknown",
				Segments: []domain.Segment{},
				Error:    err.Error(),
			}
			return nil
		}
		result.Transcription = *t
		return nil
	})

	g.Go(func() error {
		q, err := p.quality.AnalyzeAudio(ctx, wav)
		if err != nil {
			logger.Warn.Printf("Audio quality analysis failed: %v", err)
			result.Quality = domain.AudioQuality{Issues: []string{}, Error: err.Error()}
			return nil
		}
		result.Quality = *q
		return nil
	})

	_ = g.Wait()
	return result
}
