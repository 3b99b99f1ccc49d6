package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeResult_Metadata(t *testing.T) {
	t.Run("uses nb_frames when present", func(t *testing.T) {
		p := ProbeResult{
			Format: ProbeFormat{Duration: "10.0", Size: "1048576"},
			Streams: []ProbeStream{
				{CodecType: "video", CodecName: "h264", Width: 1920, Height: 1080, AvgFrameRate: "30/1", NbFrames: "300"},
				{CodecType: "audio", CodecName: "aac", SampleRate: "44100", Channels: 2},
			},
		}

		md, err := p.Metadata()
		require.NoError(t, err)
		assert.Equal(t, 300, md.TotalFrames)
		assert.Equal(t, 30.0, md.FPS)
		assert.Equal(t, 10.0, md.DurationSeconds)
		assert.Equal(t, int64(1048576), md.ByteSize)
		assert.True(t, md.HasAudio)
		assert.Equal(t, "h264", md.CodecID)
	})

	t.Run("derives frame count from duration", func(t *testing.T) {
		p := ProbeResult{
			Format:  ProbeFormat{Duration: "4.0"},
			Streams: []ProbeStream{{CodecType: "video", RFrameRate: "25/1", AvgFrameRate: "0/0"}},
		}

		md, err := p.Metadata()
		require.NoError(t, err)
		assert.Equal(t, 100, md.TotalFrames)
		assert.False(t, md.HasAudio)
	})

	t.Run("no video stream", func(t *testing.T) {
		p := ProbeResult{Streams: []ProbeStream{{CodecType: "audio"}}}
		_, err := p.Metadata()
		assert.Error(t, err)
	})

	t.Run("zero frame rate", func(t *testing.T) {
		p := ProbeResult{Streams: []ProbeStream{{CodecType: "video", RFrameRate: "0/0"}}}
		_, err := p.Metadata()
		assert.Error(t, err)
	})
}

func TestParseFrameRate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"30/1", 30},
		{"30000/1001", 30000.0 / 1001.0},
		{"0/0", 0},
		{"", 0},
		{"abc", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseFrameRate(tt.in), 1e-9)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", FormatDuration(0))
	assert.Equal(t, "1:05", FormatDuration(65))
	assert.Equal(t, "1:01:01", FormatDuration(3661))
}
