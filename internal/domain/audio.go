package domain

type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type Transcription struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
	Language string    `json:"language"`
	Duration float64   `json:"duration"`
	Error    string    `json:"error,omitempty"`
}

type VolumeStats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
	RMS  float64 `json:"rms"`
}

type AudioQuality struct {
	Duration     float64     `json:"duration"`
	SampleRate   int         `json:"sample_rate"`
	Channels     int         `json:"channels"`
	Volume       VolumeStats `json:"volume_stats"`
	DynamicRange float64     `json:"dynamic_range"`
	QualityScore float64     `json:"quality_score"`
	Issues       []string    `json:"issues"`
	Error        string      `json:"error,omitempty"`
}

type AudioAnalysis struct {
	Success       bool          `json:"success"`
	Error         string        `json:"error,omitempty"`
	Transcription Transcription `json:"transcription"`
	Quality       AudioQuality  `json:"audio_quality"`
}

const (
	IssueLowVolume    = "low volume"
	IssueNarrowRange  = "narrow dynamic range"
	IssueLowSampling  = "low sample rate"
	IssueTooShort     = "too short"
	minRMS            = 1000.0
	minDynamicRangeDB = 20.0
	minSampleRate     = 22050
	minDurationSecs   = 1.0
)

// ScoreAudioQuality applies the fixed deductions to a measured quality block
// and fills QualityScore and Issues.
func ScoreAudioQuality(q *AudioQuality) {
	score := 100.0
	issues := []string{}

	if q.Volume.RMS < minRMS {
		score -= 20
		issues = append(issues, IssueLowVolume)
	}
	if q.DynamicRange < minDynamicRangeDB {
		score -= 15
		issues = append(issues, IssueNarrowRange)
	}
	if q.SampleRate < minSampleRate {
		score -= 10
		issues = append(issues, IssueLowSampling)
	}
	if q.Duration < minDurationSecs {
		score -= 30
		issues = append(issues, IssueTooShort)
	}

	q.QualityScore = clamp(score, 0, 100)
	q.Issues = issues
}
