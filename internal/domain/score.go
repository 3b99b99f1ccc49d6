package domain

type Capability string

const (
	CapabilityClarity      Capability = "clarity"
	CapabilityLighting     Capability = "lighting"
	CapabilityFace         Capability = "face"
	CapabilityWatermark    Capability = "watermark"
	CapabilityContent      Capability = "content richness"
	CapabilityTranscribe   Capability = "transcription"
	CapabilityAudioQuality Capability = "audio quality"
)

const (
	IssueBlurred     = "blurred"
	IssueLighting    = "lighting issue"
	IssueWatermark   = "watermark present"
	IssueLowRichness = "low content richness"
	IssueUnreadable  = "unreadable frame"
)

const (
	ClarityThreshold  = 50.0
	LightingThreshold = 50.0
	RichnessThreshold = 30.0

	watermarkAbsent  = 100.0
	watermarkPresent = 50.0
	faceFound        = 100.0
	faceMissing      = 70.0
)

// Weights used for the per-frame overall score. They sum to 1.0.
type Weights struct {
	Clarity   float64 `json:"clarity" yaml:"clarity"`
	Lighting  float64 `json:"lighting" yaml:"lighting"`
	Content   float64 `json:"content" yaml:"content"`
	Watermark float64 `json:"watermark" yaml:"watermark"`
	Face      float64 `json:"face" yaml:"face"`
}

var DefaultWeights = Weights{
	Clarity:   0.30,
	Lighting:  0.25,
	Content:   0.25,
	Watermark: 0.10,
	Face:      0.10,
}

func (w Weights) Sum() float64 {
	return w.Clarity + w.Lighting + w.Content + w.Watermark + w.Face
}

type FrameScore struct {
	Index             int      `json:"frame_number"`
	Position          int      `json:"source_frame"`
	Timestamp         float64  `json:"timestamp"`
	Clarity           float64  `json:"clarity_score"`
	Lighting          float64  `json:"lighting_score"`
	FaceDetected      bool     `json:"face_detected"`
	FaceCount         int      `json:"face_count"`
	WatermarkDetected bool     `json:"watermark_detected"`
	WatermarkText     *string  `json:"watermark_text"`
	ContentRichness   float64  `json:"content_richness"`
	OverallScore      float64  `json:"overall_score"`
	Issues            []string `json:"issues"`
}

// Finalize computes the overall score and appends threshold issue tags after
// any unit-failure tags already recorded on the frame.
func (f *FrameScore) Finalize(w Weights) {
	watermark := watermarkAbsent
	if f.WatermarkDetected {
		watermark = watermarkPresent
	}
	face := faceMissing
	if f.FaceDetected {
		face = faceFound
	}

	f.OverallScore = clamp(
		f.Clarity*w.Clarity+
			f.Lighting*w.Lighting+
			f.ContentRichness*w.Content+
			watermark*w.Watermark+
			face*w.Face, 0, 100)

	if f.Issues == nil {
		f.Issues = []string{}
	}
	if f.Clarity < ClarityThreshold {
		f.Issues = append(f.Issues, IssueBlurred)
	}
	if f.Lighting < LightingThreshold {
		f.Issues = append(f.Issues, IssueLighting)
	}
	if f.WatermarkDetected {
		f.Issues = append(f.Issues, IssueWatermark)
	}
	if f.ContentRichness < RichnessThreshold {
		f.Issues = append(f.Issues, IssueLowRichness)
	}
}

// UnavailableIssue is the tag recorded when a capability failed for a frame.
func UnavailableIssue(c Capability) string {
	return string(c) + " unavailable"
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
