package whisper

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vidqa/internal/domain"
)

func writeAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audio.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF-fake-audio"), 0o600))
	return path
}

func TestClient_Transcribe(t *testing.T) {
	var fields map[string]string
	var upload string
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, transcriptionsPath, r.URL.Path)
		auth = r.Header.Get("Authorization")

		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			fields[k] = v[0]
		}
		f, _, err := r.FormFile("file")
		if assert.NoError(t, err) {
			data, _ := io.ReadAll(f)
			upload = string(data)
		}

		_, _ = w.Write([]byte(`{"text":" hello world ","language":"english","duration":2.5,
			"segments":[{"start":0,"end":1.2,"text":" hello"},{"start":1.2,"end":2.5,"text":" world"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk-test", "", "zh", time.Second)
	got, err := c.Transcribe(context.Background(), writeAudio(t))

	require.NoError(t, err)
	assert.Equal(t, &domain.Transcription{
		Text:     "hello world",
		Language: "english",
		Duration: 2.5,
		Segments: []domain.Segment{{Start: 0, End: 1.2, Text: "hello"}, {Start: 1.2, End: 2.5, Text: "world"}},
	}, got)
	assert.Equal(t, "Bearer sk-test", auth)
	assert.Equal(t, "RIFF-fake-audio", upload)
	assert.Equal(t, map[string]string{
		"model":           defaultModel,
		"response_format": "verbose_json",
		"language":        "zh",
	}, fields)
}

func TestClient_TranscribeEmptyLanguage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"text":"","segments":[]}`))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL, "", "", "", time.Second).Transcribe(context.Background(), writeAudio(t))

	require.NoError(t, err)
	assert.Equal(t, "unknown", got.Language)
	assert.Empty(t, got.Text)
	assert.NotNil(t, got.Segments)
}

func TestClient_TranscribeErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"api error", http.StatusUnauthorized, `{"error":{"message":"bad key"}}`, "bad key"},
		{"plain error", http.StatusBadGateway, `upstream down`, "returned 502"},
		{"bad json", http.StatusOK, `{`, "failed to decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, "k", "", "", time.Second).Transcribe(context.Background(), writeAudio(t))

			var perr *domain.ProviderError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, domain.CapabilityTranscribe, perr.Capability)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestClient_TranscribeMissingFile(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:1", "", "", "", time.Second).
		Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.wav"))

	var perr *domain.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
