package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRemote(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"https://www.youtube.com/watch?v=abc", true},
		{"http://example.com/video.mp4", true},
		{"/var/data/clip.mp4", false},
		{"clip.mp4", false},
		{"ftp://example.com/a.mp4", false},
		{"https://", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRemote(tt.in))
		})
	}
}

func TestIsSupportedVideo(t *testing.T) {
	assert.True(t, IsSupportedVideo("a.MP4"))
	assert.True(t, IsSupportedVideo("b.mkv"))
	assert.True(t, IsSupportedVideo("c.flv"))
	assert.False(t, IsSupportedVideo("d.webm"))
	assert.False(t, IsSupportedVideo("noext"))
}

func TestAcquisitionError(t *testing.T) {
	errA := errors.New("http 403")
	errB := errors.New("format unavailable")
	err := &AcquisitionError{
		Source: "https://example.com/v",
		Attempts: []StrategyFailure{
			{Strategy: "platform", Err: errA},
			{Strategy: "generic", Err: errB},
		},
	}

	assert.Equal(t, "all acquisition strategies failed for https://example.com/v: platform: http 403; generic: format unavailable", err.Error())
	assert.True(t, errors.Is(err, errA))
	assert.True(t, errors.Is(err, errB))
}

func TestProviderError(t *testing.T) {
	base := errors.New("timeout")
	err := NewProviderError(CapabilityFace, base)

	assert.Equal(t, "face provider: timeout", err.Error())
	assert.True(t, errors.Is(err, base))
}
