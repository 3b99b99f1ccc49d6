package port

import (
	"context"
	"image"

	"github.com/bnema/vidqa/internal/domain"
)

// Capability providers. Implementations must honour ctx deadlines and report
// failures as *domain.ProviderError.

type FaceDetector interface {
	DetectFaces(ctx context.Context, frame image.Image) (count int, err error)
}

type WatermarkDetector interface {
	DetectWatermark(ctx context.Context, frame image.Image) (detected bool, text *string, err error)
}

type ContentScorer interface {
	ScoreContent(ctx context.Context, frame image.Image) (float64, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*domain.Transcription, error)
}

type AudioQualityAnalyzer interface {
	AnalyzeAudio(ctx context.Context, audioPath string) (*domain.AudioQuality, error)
}

// Providers is the set of collaborators a job is scored with.
type Providers struct {
	Faces        FaceDetector
	Watermarks   WatermarkDetector
	Content      ContentScorer
	Transcriber  Transcriber
	AudioQuality AudioQualityAnalyzer
}
