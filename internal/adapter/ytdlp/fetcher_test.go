package ytdlp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeYtDlp(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "yt-dlp")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

const sampleInfo = `{
  "title": "Demo clip",
  "duration": 3725.5,
  "filesize_approx": 734003200,
  "formats": [
    {"format_id": "18", "ext": "mp4", "resolution": "640x360", "filesize": 1048576, "vcodec": "avc1", "acodec": "mp4a", "fps": 30},
    {"format_id": "140", "ext": "m4a", "resolution": "audio only", "vcodec": "none", "acodec": "mp4a"}
  ]
}`

func TestFetcher_FetchInfo(t *testing.T) {
	bin := fakeYtDlp(t, "cat <<'JSON'\n"+sampleInfo+"\nJSON\n")
	f := NewFetcher(bin, "")

	info, err := f.FetchInfo(context.Background(), "https://www.youtube.com/watch?v=abc")
	require.NoError(t, err)

	assert.Equal(t, "Demo clip", info.Title)
	assert.Equal(t, 3725.5, info.Duration)
	assert.Equal(t, int64(734003200), info.FileSize)
	assert.Equal(t, domain.PlatformYouTube, info.Platform)
	require.Len(t, info.Formats, 2)
	assert.Equal(t, domain.RemoteFormat{
		FormatID: "18", Ext: "mp4", Resolution: "640x360", FileSize: 1048576,
		VCodec: "avc1", ACodec: "mp4a", FPS: 30,
	}, info.Formats[0])
	assert.Zero(t, info.Formats[1].FPS)
}

func TestFetcher_FetchInfo_Failure(t *testing.T) {
	bin := fakeYtDlp(t, "echo 'ERROR: Video unavailable' >&2\nexit 1\n")
	f := NewFetcher(bin, "")

	_, err := f.FetchInfo(context.Background(), "https://example.com/v")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Video unavailable")
}

// downloadScript records its arguments and writes a media file next to the -o template.
const downloadScript = `echo "$@" > "$(dirname "$0")/args"
while [ $# -gt 0 ]; do
  case "$1" in -o) out="$2"; shift;; esac
  shift
done
dir=$(dirname "$out")
printf 'video-bytes' > "$dir/abc.mp4"
printf '{}' > "$dir/abc.info.json"
`

func TestFetcher_Download(t *testing.T) {
	bin := fakeYtDlp(t, downloadScript)
	cookies := filepath.Join(t.TempDir(), "cookies.txt")
	require.NoError(t, os.WriteFile(cookies, []byte("# Netscape"), 0o600))
	f := NewFetcher(bin, cookies)
	dir := t.TempDir()

	profile := domain.ProfileFor(domain.PlatformYouTube)
	profile.UseCookies = true
	path, err := f.Download(context.Background(), "https://youtu.be/abc", profile, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "abc.mp4"), path)

	argsData, err := os.ReadFile(filepath.Join(filepath.Dir(bin), "args"))
	require.NoError(t, err)
	args := string(argsData)
	assert.Contains(t, args, "--write-info-json")
	assert.Contains(t, args, "--sub-langs zh-CN,en")
	assert.Contains(t, args, "--cookies "+cookies)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(args), "https://youtu.be/abc"))
}

func TestFetcher_Download_MissingCookiesIgnored(t *testing.T) {
	bin := fakeYtDlp(t, downloadScript)
	f := NewFetcher(bin, "/nonexistent/cookies.txt")

	_, err := f.Download(context.Background(), "https://bilibili.com/video/1", domain.ProfileFor(domain.PlatformBilibili), t.TempDir())
	require.NoError(t, err)

	argsData, err := os.ReadFile(filepath.Join(filepath.Dir(bin), "args"))
	require.NoError(t, err)
	assert.NotContains(t, string(argsData), "--cookies")
}

func TestFetcher_Download_NoMediaProduced(t *testing.T) {
	bin := fakeYtDlp(t, "exit 0\n")
	f := NewFetcher(bin, "")

	_, err := f.Download(context.Background(), "https://example.com/v", domain.FetchProfile{Format: domain.FormatWorst}, t.TempDir())
	assert.ErrorContains(t, err, "no media file")
}
