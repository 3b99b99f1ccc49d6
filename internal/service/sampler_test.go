package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/port/mocks"
)

func TestSampler_Positions(t *testing.T) {
	tests := []struct {
		name     string
		fps      float64
		interval float64
		total    int
		want     []int
	}{
		{"default cadence", 25, 5, 300, []int{0, 125, 250}},
		{"exact multiple excluded", 25, 5, 250, []int{0, 125}},
		{"fractional fps floors", 29.97, 1, 90, []int{0, 29, 58, 87}},
		{"stride clamped to one", 0.5, 1, 3, []int{0, 1, 2}},
		{"empty", 25, 5, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSampler(nil, tt.interval)
			got := s.Positions(domain.FormatMetadata{FPS: tt.fps, TotalFrames: tt.total})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSampler_OpenUnreadable(t *testing.T) {
	tests := []struct {
		name  string
		probe *domain.ProbeResult
		err   error
	}{
		{"probe fails", nil, errors.New("moov atom not found")},
		{"no video stream", &domain.ProbeResult{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc := mocks.NewMediaProcessorMock(t)
			proc.EXPECT().Probe(mock.Anything, "/v/bad.mp4").Return(tt.probe, tt.err).Once()

			err := NewSampler(proc, 5).Open(context.Background(), &domain.MediaSource{LocalPath: "/v/bad.mp4"})

			var unreadable *domain.UnreadableMediaError
			require.True(t, errors.As(err, &unreadable))
			assert.Equal(t, "bad.mp4", unreadable.Path)
		})
	}
}

func TestSampler_SkipsFailedFrames(t *testing.T) {
	dir := t.TempDir()
	proc := mocks.NewMediaProcessorMock(t)
	proc.EXPECT().Probe(mock.Anything, "/v/a.mp4").Return(probeResult("25/1", "500", false), nil).Once()
	proc.EXPECT().ExtractFrame(mock.Anything, "/v/a.mp4", mock.Anything, 25.0, mock.Anything).
		RunAndReturn(func(ctx context.Context, in string, pos int, fps float64, out string) error {
			if pos == 125 {
				return errors.New("decode error")
			}
			return extractFrameWriting(ctx, in, pos, fps, out)
		}).Times(4)

	s := NewSampler(proc, 5)
	src := &domain.MediaSource{LocalPath: "/v/a.mp4"}
	require.NoError(t, s.Open(context.Background(), src))
	assert.Equal(t, 500, src.Metadata.TotalFrames)
	assert.Equal(t, int64(4096), src.Metadata.ByteSize)

	var progress [][2]int
	frames, err := s.Sample(context.Background(), src, dir, func(done, total int) {
		progress = append(progress, [2]int{done, total})
	})

	require.NoError(t, err)
	require.Len(t, frames, 3)
	for i, f := range frames {
		assert.Equal(t, i, f.Index, "indices follow successful extraction order")
		assert.FileExists(t, f.Path)
		if i > 0 {
			assert.Greater(t, f.Timestamp, frames[i-1].Timestamp)
		}
	}
	assert.Equal(t, []int{0, 250, 375}, []int{frames[0].Position, frames[1].Position, frames[2].Position})
	assert.Equal(t, 10.0, frames[1].Timestamp)
	assert.Equal(t, filepath.Join(dir, "frame_000250.jpg"), frames[1].Path)
	assert.Equal(t, [][2]int{{1, 4}, {2, 4}, {3, 4}, {4, 4}}, progress)
}

func TestSampler_StopsOnCancel(t *testing.T) {
	proc := mocks.NewMediaProcessorMock(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &domain.MediaSource{LocalPath: "/v/a.mp4", Metadata: domain.FormatMetadata{FPS: 25, TotalFrames: 500}}
	_, err := NewSampler(proc, 5).Sample(ctx, src, t.TempDir(), nil)

	assert.ErrorIs(t, err, context.Canceled)
}
