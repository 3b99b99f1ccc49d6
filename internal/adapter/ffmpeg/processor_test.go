package ffmpeg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "valid path", path: "/tmp/video.mp4"},
		{name: "valid path with spaces", path: "/tmp/my video.mp4"},
		{name: "valid relative path", path: "video.mp4"},
		{name: "empty path", path: "", wantErr: ErrEmptyPath},
		{name: "null byte at start", path: "\x00/tmp/video.mp4", wantErr: ErrInvalidPath},
		{name: "null byte in middle", path: "/tmp/\x00video.mp4", wantErr: ErrInvalidPath},
		{name: "null byte at end", path: "/tmp/video.mp4\x00", wantErr: ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePath(tt.path)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestProcessor_PathValidation(t *testing.T) {
	p := NewProcessor("", "")
	ctx := context.Background()

	_, err := p.Probe(ctx, "")
	assert.ErrorContains(t, err, "invalid input path")

	err = p.ExtractFrame(ctx, "/tmp/\x00a.mp4", 0, 25, "/tmp/out.jpg")
	assert.ErrorContains(t, err, "invalid input path")

	err = p.ExtractFrame(ctx, "/tmp/a.mp4", 0, 25, "")
	assert.ErrorContains(t, err, "invalid output path")

	err = p.ExtractFrame(ctx, "/tmp/a.mp4", 0, 0, "/tmp/out.jpg")
	assert.ErrorContains(t, err, "invalid frame rate")

	err = p.ExtractAudio(ctx, "/tmp/a.mp4", "")
	assert.ErrorContains(t, err, "invalid output path")
}

// fakeTool writes an executable shell script standing in for ffmpeg/ffprobe.
func fakeTool(t *testing.T, name, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

const probeWithAudio = `{
  "format": {"duration": "10.0", "size": "2048"},
  "streams": [
    {"codec_type": "video", "codec_name": "h264", "width": 640, "height": 360, "avg_frame_rate": "25/1", "nb_frames": "250"},
    {"codec_type": "audio", "codec_name": "aac", "sample_rate": "44100", "channels": 2}
  ]
}`

const probeVideoOnly = `{
  "format": {"duration": "4.0"},
  "streams": [{"codec_type": "video", "r_frame_rate": "30/1"}]
}`

func TestProcessor_Probe(t *testing.T) {
	probe := fakeTool(t, "ffprobe", "cat <<'JSON'\n"+probeWithAudio+"\nJSON\n")
	p := NewProcessor("ffmpeg", probe)

	res, err := p.Probe(context.Background(), "/videos/a.mp4")
	require.NoError(t, err)

	md, err := res.Metadata()
	require.NoError(t, err)
	assert.Equal(t, 250, md.TotalFrames)
	assert.Equal(t, 25.0, md.FPS)
	assert.True(t, md.HasAudio)
}

func TestProcessor_Probe_Failure(t *testing.T) {
	probe := fakeTool(t, "ffprobe", "echo 'moov atom not found' >&2\nexit 1\n")
	p := NewProcessor("ffmpeg", probe)

	_, err := p.Probe(context.Background(), "/videos/broken.mp4")
	assert.ErrorContains(t, err, "moov atom not found")
}

func TestProcessor_ExtractAudio_NoAudioTrack(t *testing.T) {
	probe := fakeTool(t, "ffprobe", "cat <<'JSON'\n"+probeVideoOnly+"\nJSON\n")
	ffmpeg := fakeTool(t, "ffmpeg", "exit 1\n")
	p := NewProcessor(ffmpeg, probe)

	err := p.ExtractAudio(context.Background(), "/videos/silent.mp4", filepath.Join(t.TempDir(), "a.wav"))
	assert.True(t, errors.Is(err, domain.ErrNoAudioTrack))
}

const probe48kStereo = `{
  "format": {"duration": "10.0"},
  "streams": [
    {"codec_type": "video", "codec_name": "h264", "avg_frame_rate": "25/1"},
    {"codec_type": "audio", "codec_name": "aac", "sample_rate": "48000", "channels": 2}
  ]
}`

func TestProcessor_ExtractAudio_KeepsSourceRateAndChannels(t *testing.T) {
	probe := fakeTool(t, "ffprobe", "cat <<'JSON'\n"+probe48kStereo+"\nJSON\n")
	argsFile := filepath.Join(t.TempDir(), "args")
	ffmpeg := fakeTool(t, "ffmpeg", "for a; do echo \"$a\"; done > '"+argsFile+"'\nfor last; do :; done\nprintf 'RIFF' > \"$last\"\n")
	p := NewProcessor(ffmpeg, probe)
	out := filepath.Join(t.TempDir(), "audio.wav")

	require.NoError(t, p.ExtractAudio(context.Background(), "/videos/a.mp4", out))

	data, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	args := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Contains(t, args, "pcm_s16le")
	assert.NotContains(t, args, "-ar")
	assert.NotContains(t, args, "-ac")
	assert.Equal(t, out, args[len(args)-1])
}

func TestProcessor_ExtractFrame(t *testing.T) {
	// The last argument is the output path.
	ffmpeg := fakeTool(t, "ffmpeg", "for last; do :; done\nprintf 'jpeg' > \"$last\"\n")
	p := NewProcessor(ffmpeg, "ffprobe")
	out := filepath.Join(t.TempDir(), "frame.jpg")

	require.NoError(t, p.ExtractFrame(context.Background(), "/videos/a.mp4", 50, 25, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))
}

func TestProcessor_ExtractFrame_NoOutput(t *testing.T) {
	ffmpeg := fakeTool(t, "ffmpeg", "exit 0\n")
	p := NewProcessor(ffmpeg, "ffprobe")

	err := p.ExtractFrame(context.Background(), "/videos/a.mp4", 9999, 25, filepath.Join(t.TempDir(), "f.jpg"))
	assert.ErrorContains(t, err, "no image produced")
}
