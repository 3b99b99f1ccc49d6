// Package validation checks user-supplied uploads and names before they
// reach the media store or an HTTP header.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bnema/vidqa/internal/domain"
)

var (
	ErrDisallowedFileType = errors.New("file type not allowed")
	ErrUnsupportedExt     = errors.New("unsupported video extension")
)

// allowedMIMETypes is the video allowlist; it mirrors the accepted extensions.
var allowedMIMETypes = map[string]bool{
	"video/mp4":        true,
	"video/quicktime":  true,
	"video/x-matroska": true,
	"video/webm":       true,
	"video/x-msvideo":  true,
	"video/x-ms-wmv":   true,
	"video/x-flv":      true,
}

const magicBytesBufferSize = 512

var asfHeader = []byte{0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11}

// ValidateMagicBytes sniffs the container type from the first bytes of
// reader and rewinds it.
func ValidateMagicBytes(reader io.ReadSeeker) (mime string, allowed bool, err error) {
	buf := make([]byte, magicBytesBufferSize)
	n, err := io.ReadFull(reader, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", false, err
	}

	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return "", false, err
	}

	if n == 0 {
		return "application/octet-stream", false, nil
	}
	buf = buf[:n]

	mime = detectVideoMagic(buf)
	if mime == "" {
		mime = http.DetectContentType(buf)
	}

	return mime, allowedMIMETypes[mime], nil
}

func detectVideoMagic(buf []byte) string {
	if len(buf) < 4 {
		return ""
	}

	switch {
	// EBML header: Matroska and WebM share it
	case bytes.HasPrefix(buf, []byte{0x1A, 0x45, 0xDF, 0xA3}):
		if bytes.Contains(buf, []byte("webm")) {
			return "video/webm"
		}
		return "video/x-matroska"
	case bytes.HasPrefix(buf, []byte("FLV")):
		return "video/x-flv"
	case bytes.HasPrefix(buf, asfHeader):
		return "video/x-ms-wmv"
	case len(buf) >= 12 && bytes.HasPrefix(buf, []byte("RIFF")) && string(buf[8:12]) == "AVI ":
		return "video/x-msvideo"
	case len(buf) >= 12 && string(buf[4:8]) == "ftyp":
		if string(buf[8:12]) == "qt  " {
			return "video/quicktime"
		}
		return "video/mp4"
	}
	return ""
}

// ValidateUpload checks the extension against the accepted list and the
// content against the container allowlist.
func ValidateUpload(filename string, reader io.ReadSeeker) error {
	if !domain.IsSupportedVideo(filename) {
		return fmt.Errorf("%w: %q", ErrUnsupportedExt, strings.ToLower(filepath.Ext(filename)))
	}
	mime, allowed, err := ValidateMagicBytes(reader)
	if err != nil {
		return fmt.Errorf("failed to read upload: %w", err)
	}
	if !allowed {
		return fmt.Errorf("%w: %s", ErrDisallowedFileType, mime)
	}
	return nil
}
