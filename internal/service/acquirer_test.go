package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vidqa/internal/adapter/storage/local"
	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/port/mocks"
)

const remoteURL = "https://www.youtube.com/watch?v=abc"

func TestAcquirer_LocalPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	fetcher := mocks.NewMediaFetcherMock(t)
	store := mocks.NewMediaStoreMock(t)
	a := NewAcquirer(fetcher, store, time.Millisecond)

	src, err := a.Acquire(context.Background(), "job", path)

	require.NoError(t, err)
	assert.Equal(t, &domain.MediaSource{Origin: path, LocalPath: path}, src)
}

func TestAcquirer_LocalPathMissing(t *testing.T) {
	a := NewAcquirer(mocks.NewMediaFetcherMock(t), mocks.NewMediaStoreMock(t), time.Millisecond)

	_, err := a.Acquire(context.Background(), "job", filepath.Join(t.TempDir(), "missing.mp4"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAcquirer_PlatformPreferredSucceeds(t *testing.T) {
	store, err := local.NewStore(t.TempDir())
	require.NoError(t, err)

	fetcher := mocks.NewMediaFetcherMock(t)
	fetcher.EXPECT().FetchInfo(mock.Anything, remoteURL).
		Return(&domain.RemoteInfo{Title: "long one", Duration: 7200, FileSize: 900_000_000}, nil).Once()
	fetcher.EXPECT().Download(mock.Anything, remoteURL, domain.ProfileFor(domain.PlatformYouTube), mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ domain.FetchProfile, dir string) (string, error) {
			out := filepath.Join(dir, "abc.mp4")
			return out, os.WriteFile(out, []byte("video"), 0o600)
		}).Once()

	src, err := NewAcquirer(fetcher, store, time.Millisecond).Acquire(context.Background(), "job-1", remoteURL)

	require.NoError(t, err)
	assert.True(t, src.Remote)
	assert.Equal(t, remoteURL, src.Origin)
	assert.FileExists(t, src.LocalPath)
	assert.Contains(t, src.LocalPath, "attempt-1-platform-preferred")
}

func TestAcquirer_MetadataRetries(t *testing.T) {
	store, err := local.NewStore(t.TempDir())
	require.NoError(t, err)

	fetcher := mocks.NewMediaFetcherMock(t)
	fetcher.EXPECT().FetchInfo(mock.Anything, remoteURL).Return(nil, errors.New("timeout")).Twice()
	fetcher.EXPECT().FetchInfo(mock.Anything, remoteURL).Return(&domain.RemoteInfo{Title: "ok"}, nil).Once()
	fetcher.EXPECT().Download(mock.Anything, remoteURL, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ domain.FetchProfile, dir string) (string, error) {
			out := filepath.Join(dir, "abc.mp4")
			return out, os.WriteFile(out, []byte("video"), 0o600)
		}).Once()

	_, err = NewAcquirer(fetcher, store, time.Millisecond).Acquire(context.Background(), "job-1", remoteURL)

	require.NoError(t, err)
}

func TestAcquirer_FallsBackInOrder(t *testing.T) {
	store, err := local.NewStore(t.TempDir())
	require.NoError(t, err)

	fetcher := mocks.NewMediaFetcherMock(t)
	fetcher.EXPECT().FetchInfo(mock.Anything, remoteURL).Return(nil, errors.New("private video")).Times(infoMaxRetries + 1)

	var formats []string
	fetcher.EXPECT().Download(mock.Anything, remoteURL, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, p domain.FetchProfile, dir string) (string, error) {
			formats = append(formats, p.Format)
			if p.Format == domain.FormatBest {
				return "", errors.New("format unavailable")
			}
			out := filepath.Join(dir, "abc.webm")
			return out, os.WriteFile(out, []byte("video"), 0o600)
		}).Twice()

	src, err := NewAcquirer(fetcher, store, time.Millisecond).Acquire(context.Background(), "job-1", remoteURL)

	require.NoError(t, err)
	assert.Equal(t, []string{domain.FormatBest, domain.FormatWorst}, formats)
	assert.Contains(t, src.LocalPath, "attempt-3-minimal")
}

func TestAcquirer_AllStrategiesFail(t *testing.T) {
	dataDir := t.TempDir()
	store, err := local.NewStore(dataDir)
	require.NoError(t, err)

	fetcher := mocks.NewMediaFetcherMock(t)
	fetcher.EXPECT().FetchInfo(mock.Anything, remoteURL).Return(&domain.RemoteInfo{}, nil).Once()

	reasons := []string{"m1", "m2", "m3"}
	calls := 0
	fetcher.EXPECT().Download(mock.Anything, remoteURL, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ domain.FetchProfile, dir string) (string, error) {
			// leave a partial file behind like an interrupted download would
			_ = os.WriteFile(filepath.Join(dir, "abc.mp4.part"), []byte("partial"), 0o600)
			err := errors.New(reasons[calls])
			calls++
			return "", err
		}).Times(3)

	_, err = NewAcquirer(fetcher, store, time.Millisecond).Acquire(context.Background(), "job-1", remoteURL)

	var acqErr *domain.AcquisitionError
	require.True(t, errors.As(err, &acqErr))
	require.Len(t, acqErr.Attempts, 3)
	assert.Equal(t, "platform-preferred", acqErr.Attempts[0].Strategy)
	assert.Equal(t, "generic-best", acqErr.Attempts[1].Strategy)
	assert.Equal(t, "minimal", acqErr.Attempts[2].Strategy)
	msg := err.Error()
	assert.Less(t, strings.Index(msg, "m1"), strings.Index(msg, "m2"))
	assert.Less(t, strings.Index(msg, "m2"), strings.Index(msg, "m3"))

	scope, err := store.Scope("job-1")
	require.NoError(t, err)
	entries, err := os.ReadDir(scope)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed attempts must not leave files behind")
}

func TestHeavyWarnings(t *testing.T) {
	tests := []struct {
		name string
		info domain.RemoteInfo
		want []string
	}{
		{"small and short", domain.RemoteInfo{Title: "a", Duration: 60, FileSize: 10 << 20}, nil},
		{"500 MB is under 500 MiB", domain.RemoteInfo{Title: "a", Duration: 60, FileSize: 500_000_001}, nil},
		{"exactly 500 MiB", domain.RemoteInfo{Title: "a", Duration: 60, FileSize: 500 << 20}, nil},
		{"over 500 MiB", domain.RemoteInfo{Title: "a", Duration: 60, FileSize: 600 << 20}, []string{`Large video: "a" is 600 MiB`}},
		{"exactly one hour", domain.RemoteInfo{Title: "a", Duration: 3600}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, heavyWarnings(&tt.info))
		})
	}

	long := heavyWarnings(&domain.RemoteInfo{Title: "b", Duration: 3601, FileSize: 1 << 30})
	require.Len(t, long, 2)
	assert.True(t, strings.HasPrefix(long[0], `Long video: "b"`))
	assert.True(t, strings.HasPrefix(long[1], `Large video: "b"`))
}
