package domain

import (
	"net/url"
	"strings"
)

type Platform string

const (
	PlatformYouTube    Platform = "youtube"
	PlatformBilibili   Platform = "bilibili"
	PlatformShortVideo Platform = "short_video"
	PlatformWeibo      Platform = "weibo"
	PlatformTwitter    Platform = "twitter"
	PlatformInstagram  Platform = "instagram"
	PlatformFacebook   Platform = "facebook"
	PlatformVK         Platform = "vk"
	PlatformGeneric    Platform = "generic"
)

// platformHosts is checked in order; the first matching suffix wins.
var platformHosts = []struct {
	platform Platform
	hosts    []string
}{
	{PlatformYouTube, []string{"youtube.com", "youtu.be"}},
	{PlatformBilibili, []string{"bilibili.com", "b23.tv"}},
	{PlatformShortVideo, []string{"douyin.com", "tiktok.com"}},
	{PlatformWeibo, []string{"weibo.com", "weibo.cn"}},
	{PlatformTwitter, []string{"twitter.com", "x.com"}},
	{PlatformInstagram, []string{"instagram.com"}},
	{PlatformFacebook, []string{"facebook.com", "fb.watch"}},
	{PlatformVK, []string{"vk.com"}},
}

// ClassifyPlatform matches the URL host against the known platform domains.
// Subdomains match (m.youtube.com); lookalikes do not (netflix.com is not x.com).
func ClassifyPlatform(rawURL string) Platform {
	u, err := url.Parse(rawURL)
	if err != nil {
		return PlatformGeneric
	}
	host := strings.ToLower(u.Hostname())
	for _, p := range platformHosts {
		for _, h := range p.hosts {
			if host == h || strings.HasSuffix(host, "."+h) {
				return p.platform
			}
		}
	}
	return PlatformGeneric
}

// FetchProfile is the download configuration for one acquisition attempt.
type FetchProfile struct {
	Format        string
	WriteInfoJSON bool
	WriteSubs     bool
	SubLangs      []string
	UseCookies    bool
}

const (
	FormatBest  = "best"
	FormatWorst = "worst"
)

// ProfileFor returns the preferred-quality profile for a platform.
func ProfileFor(p Platform) FetchProfile {
	switch p {
	case PlatformYouTube:
		return FetchProfile{
			Format:        "best[filesize<500M][height<=1080]/best[filesize<500M]/best",
			WriteInfoJSON: true,
			WriteSubs:     true,
			SubLangs:      []string{"zh-CN", "en"},
		}
	case PlatformBilibili:
		return FetchProfile{Format: "best[filesize<500M]/best", UseCookies: true}
	case PlatformShortVideo:
		return FetchProfile{Format: FormatBest}
	case PlatformWeibo:
		return FetchProfile{Format: "best[filesize<200M]/best", UseCookies: true}
	default:
		return FetchProfile{Format: "best[filesize<500M]/best[ext=mp4]/best[ext=webm]/best"}
	}
}

// RemoteFormat is one downloadable representation advertised by a platform.
type RemoteFormat struct {
	FormatID   string  `json:"format_id"`
	Ext        string  `json:"ext"`
	Resolution string  `json:"resolution"`
	FileSize   int64   `json:"filesize"`
	VCodec     string  `json:"vcodec"`
	ACodec     string  `json:"acodec"`
	FPS        float64 `json:"fps"`
}

// RemoteInfo is the metadata a platform reports without downloading.
type RemoteInfo struct {
	Title    string         `json:"title"`
	Duration float64        `json:"duration"`
	FileSize int64          `json:"filesize"`
	Platform Platform       `json:"platform"`
	Formats  []RemoteFormat `json:"formats"`
}
