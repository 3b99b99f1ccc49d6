package service

import (
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vidqa/internal/adapter/storage/jsonfile"
	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/port"
	"github.com/bnema/vidqa/internal/port/mocks"
)

// writeFrame writes a sharp, mid-grey checkerboard JPEG.
func writeFrame(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, encodeFrame(path))
}

func encodeFrame(path string) error {
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			v := uint8(60)
			if (x/4+y/4)%2 == 0 {
				v = 200
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 95}); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func probeResult(fps, frames string, withAudio bool) *domain.ProbeResult {
	p := &domain.ProbeResult{
		Format: domain.ProbeFormat{Duration: "10.0", Size: "4096"},
		Streams: []domain.ProbeStream{
			{Index: 0, CodecType: "video", CodecName: "h264", Width: 64, Height: 64, AvgFrameRate: fps, RFrameRate: fps, NbFrames: frames},
		},
	}
	if withAudio {
		p.Streams = append(p.Streams, domain.ProbeStream{Index: 1, CodecType: "audio", SampleRate: "44100", Channels: 2})
	}
	return p
}

// okProviders returns providers that always succeed: one face, no text,
// richness 60.
func okProviders(t *testing.T) port.Providers {
	t.Helper()

	faces := mocks.NewFaceDetectorMock(t)
	faces.EXPECT().DetectFaces(mock.Anything, mock.Anything).Return(1, nil).Maybe()
	wm := mocks.NewWatermarkDetectorMock(t)
	wm.EXPECT().DetectWatermark(mock.Anything, mock.Anything).Return(false, nil, nil).Maybe()
	content := mocks.NewContentScorerMock(t)
	content.EXPECT().ScoreContent(mock.Anything, mock.Anything).Return(60.0, nil).Maybe()
	trans := mocks.NewTranscriberMock(t)
	trans.EXPECT().Transcribe(mock.Anything, mock.Anything).
		Return(&domain.Transcription{Text: "hi", Language: "en", Segments: []domain.Segment{}}, nil).Maybe()
	measured := &domain.AudioQuality{
		Duration:     10,
		SampleRate:   44100,
		Channels:     2,
		Volume:       domain.VolumeStats{Min: -9000, Max: 9000, Mean: 0, RMS: 5000},
		DynamicRange: 12,
	}
	domain.ScoreAudioQuality(measured)
	quality := mocks.NewAudioQualityAnalyzerMock(t)
	quality.EXPECT().AnalyzeAudio(mock.Anything, mock.Anything).Return(measured, nil).Maybe()

	return port.Providers{Faces: faces, Watermarks: wm, Content: content, Transcriber: trans, AudioQuality: quality}
}

// recordingRepo keeps every saved job snapshot so tests can check the
// progress history.
type recordingRepo struct {
	*jsonfile.Store
	mu      sync.Mutex
	history []domain.Job
}

func newRecordingRepo() *recordingRepo {
	return &recordingRepo{Store: jsonfile.NewMemoryStore()}
}

func (r *recordingRepo) Save(job *domain.Job) error {
	r.mu.Lock()
	r.history = append(r.history, *job)
	r.mu.Unlock()
	return r.Store.Save(job)
}

func (r *recordingRepo) snapshots(jobID string) []domain.Job {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Job
	for _, j := range r.history {
		if j.ID == jobID {
			out = append(out, j)
		}
	}
	return out
}

var _ port.JobRepository = (*recordingRepo)(nil)

// extractFrameWriting makes the processor mock produce a real JPEG for each
// requested position. It runs on pipeline goroutines, so it reports errors
// instead of failing the test directly.
func extractFrameWriting(_ context.Context, _ string, _ int, _ float64, out string) error {
	return encodeFrame(out)
}
