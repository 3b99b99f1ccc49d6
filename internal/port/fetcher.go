package port

import (
	"context"

	"github.com/bnema/vidqa/internal/domain"
)

// MediaFetcher downloads remote media through yt-dlp or a compatible tool.
type MediaFetcher interface {
	FetchInfo(ctx context.Context, url string) (*domain.RemoteInfo, error)
	// Download fetches url into dir using profile and returns the path of the media file.
	Download(ctx context.Context, url string, profile domain.FetchProfile, dir string) (string, error)
}
