package service

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/vidqa/internal/analysis"
	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
	"github.com/bnema/vidqa/internal/port"
)

type Scorer struct {
	providers port.Providers
	weights   domain.Weights
	workers   int
}

func NewScorer(providers port.Providers, weights domain.Weights, workers int) *Scorer {
	if workers < 1 {
		workers = 1
	}
	return &Scorer{providers: providers, weights: weights, workers: workers}
}

// ScoreFrames scores every frame in parallel and returns the scores ordered
// by frame index. Provider failures only degrade the affected frame; the
// only error returned is ctx's.
func (s *Scorer) ScoreFrames(ctx context.Context, frames []domain.FrameSample, onProgress func(done, total int)) ([]domain.FrameScore, error) {
	scores := make([]domain.FrameScore, 0, len(frames))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, f := range frames {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			score := s.ScoreFrame(gctx, f)

			mu.Lock()
			defer mu.Unlock()
			scores = append(scores, score)
			if onProgress != nil {
				onProgress(len(scores), len(frames))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(scores, func(a, b int) bool { return scores[a].Index < scores[b].Index })
	return scores, nil
}

// ScoreFrame runs every capability on one frame.
func (s *Scorer) ScoreFrame(ctx context.Context, f domain.FrameSample) domain.FrameScore {
	score := domain.FrameScore{
		Index:     f.Index,
		Position:  f.Position,
		Timestamp: f.Timestamp,
		Issues:    []string{},
	}

	img, err := analysis.LoadFrame(f.Path)
	if err != nil {
		logger.Warn.Printf("frame %d unreadable: %v", f.Index, err)
		score.Issues = append(score.Issues, domain.IssueUnreadable)
		score.Finalize(s.weights)
		return score
	}

	score.Clarity = analysis.ClarityScore(img)
	score.Lighting = analysis.LightingScore(img)

	if count, err := s.providers.Faces.DetectFaces(ctx, img); err != nil {
		s.unavailable(&score, domain.CapabilityFace, err)
	} else {
		score.FaceCount = count
		score.FaceDetected = count > 0
	}

	if detected, text, err := s.providers.Watermarks.DetectWatermark(ctx, img); err != nil {
		s.unavailable(&score, domain.CapabilityWatermark, err)
	} else {
		score.WatermarkDetected = detected
		score.WatermarkText = text
	}

	if richness, err := s.providers.Content.ScoreContent(ctx, img); err != nil {
		s.unavailable(&score, domain.CapabilityContent, err)
	} else {
		score.ContentRichness = clampScore(richness)
	}

	score.Finalize(s.weights)
	return score
}

func (s *Scorer) unavailable(score *domain.FrameScore, c domain.Capability, err error) {
	logger.Debug.Printf("frame %d: %s failed: %v", score.Index, c, err)
	score.Issues = append(score.Issues, domain.UnavailableIssue(c))
}

func clampScore(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
