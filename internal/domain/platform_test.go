package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPlatform(t *testing.T) {
	tests := []struct {
		url  string
		want Platform
	}{
		{"https://www.youtube.com/watch?v=abc", PlatformYouTube},
		{"https://youtu.be/abc", PlatformYouTube},
		{"https://m.bilibili.com/video/BV1", PlatformBilibili},
		{"https://www.douyin.com/video/1", PlatformShortVideo},
		{"https://www.tiktok.com/@u/video/1", PlatformShortVideo},
		{"https://weibo.com/tv/show/1", PlatformWeibo},
		{"https://x.com/u/status/1", PlatformTwitter},
		{"https://twitter.com/u/status/1", PlatformTwitter},
		{"https://www.instagram.com/reel/1", PlatformInstagram},
		{"https://www.facebook.com/watch?v=1", PlatformFacebook},
		{"https://vk.com/video1", PlatformVK},
		{"https://www.netflix.com/title/1", PlatformGeneric},
		{"https://example.com/clip.mp4", PlatformGeneric},
		{"::not a url", PlatformGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPlatform(tt.url))
		})
	}
}

func TestProfileFor(t *testing.T) {
	yt := ProfileFor(PlatformYouTube)
	assert.True(t, yt.WriteSubs)
	assert.True(t, yt.WriteInfoJSON)
	assert.Contains(t, yt.Format, "height<=1080")

	assert.True(t, ProfileFor(PlatformBilibili).UseCookies)
	assert.Contains(t, ProfileFor(PlatformWeibo).Format, "filesize<200M")
	assert.Equal(t, FormatBest, ProfileFor(PlatformShortVideo).Format)
	assert.Equal(t, ProfileFor(PlatformGeneric), ProfileFor(PlatformVK))
}
