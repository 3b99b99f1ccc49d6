package domain

import (
	"net/url"
	"path/filepath"
	"strings"
)

type FormatMetadata struct {
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	FPS             float64 `json:"fps"`
	TotalFrames     int     `json:"total_frames"`
	DurationSeconds float64 `json:"duration_seconds"`
	CodecID         string  `json:"codec_id"`
	ByteSize        int64   `json:"byte_size"`
	HasAudio        bool    `json:"has_audio"`
}

type MediaSource struct {
	Origin    string         `json:"origin"`
	LocalPath string         `json:"local_path"`
	Remote    bool           `json:"remote"`
	Metadata  FormatMetadata `json:"metadata"`
}

// Name is the file name shown in reports.
func (m *MediaSource) Name() string {
	return filepath.Base(m.LocalPath)
}

// FrameSample is one decoded frame. Index follows successful-extraction
// order; Position is the frame number in the source stream.
type FrameSample struct {
	Index     int     `json:"index"`
	Position  int     `json:"position"`
	Timestamp float64 `json:"timestamp"`
	Path      string  `json:"path"`
}

// IsRemote reports whether a source reference must be fetched over the network.
func IsRemote(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

var videoExts = map[string]bool{
	".mp4": true, ".avi": true, ".mov": true,
	".mkv": true, ".wmv": true, ".flv": true,
}

func IsSupportedVideo(filename string) bool {
	return videoExts[strings.ToLower(filepath.Ext(filename))]
}

// Upload is a source file accepted into the media store.
type Upload struct {
	FileID   string `json:"file_id"`
	Filename string `json:"filename"`
	Path     string `json:"file_path"`
	Size     int64  `json:"file_size"`
}
