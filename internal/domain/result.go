package domain

import (
	"time"
)

type Summary struct {
	AvgClarity             float64 `json:"avg_clarity"`
	AvgLighting            float64 `json:"avg_lighting"`
	FaceDetectionRate      float64 `json:"face_detection_rate"`
	WatermarkDetectionRate float64 `json:"watermark_detection_rate"`
	AvgContentRichness     float64 `json:"avg_content_richness"`
	AudioQualityScore      float64 `json:"audio_quality_score"`
	HasAudioTranscription  bool    `json:"has_audio_transcription"`
}

type AnalysisResult struct {
	JobID               string        `json:"video_id"`
	VideoName           string        `json:"video_name"`
	Source              MediaSource   `json:"source"`
	AnalyzedFrames      int           `json:"analyzed_frames"`
	AnalysisSeconds     float64       `json:"analysis_time"`
	OverallQualityScore float64       `json:"overall_quality_score"`
	Frames              []FrameScore  `json:"frame_analyses"`
	Audio               AudioAnalysis `json:"audio_analysis"`
	Summary             Summary       `json:"summary"`
	CreatedAt           time.Time     `json:"created_at"`
}

// Assemble builds the final result. Frames must already be ordered by index.
// It fails with ErrNoFramesScored when there is nothing to average.
func Assemble(jobID string, source MediaSource, frames []FrameScore, audio AudioAnalysis, elapsed time.Duration) (*AnalysisResult, error) {
	if len(frames) == 0 {
		return nil, ErrNoFramesScored
	}

	n := float64(len(frames))
	var overall, clarity, lighting, richness float64
	var faces, watermarks int
	for _, f := range frames {
		overall += f.OverallScore
		clarity += f.Clarity
		lighting += f.Lighting
		richness += f.ContentRichness
		if f.FaceDetected {
			faces++
		}
		if f.WatermarkDetected {
			watermarks++
		}
	}

	summary := Summary{
		AvgClarity:             clarity / n,
		AvgLighting:            lighting / n,
		FaceDetectionRate:      float64(faces) / n,
		WatermarkDetectionRate: float64(watermarks) / n,
		AvgContentRichness:     richness / n,
		HasAudioTranscription:  audio.Success && audio.Transcription.Text != "",
	}
	if audio.Success {
		summary.AudioQualityScore = audio.Quality.QualityScore
	}

	return &AnalysisResult{
		JobID:               jobID,
		VideoName:           source.Name(),
		Source:              source,
		AnalyzedFrames:      len(frames),
		AnalysisSeconds:     elapsed.Seconds(),
		OverallQualityScore: overall / n,
		Frames:              frames,
		Audio:               audio,
		Summary:             summary,
		CreatedAt:           time.Now().UTC().Truncate(time.Second),
	}, nil
}
