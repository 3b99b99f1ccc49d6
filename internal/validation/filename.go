package validation

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const maxFilenameLength = 255

// SanitizeFilename makes a client-supplied name safe for a path component
// and a Content-Disposition header. Path separators, quotes, colons and
// control characters become underscores; Unicode is kept. Long names are cut
// to 255 bytes keeping the extension. Empty results become "file".
func SanitizeFilename(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r < 32 || r == 127:
			return '_'
		case strings.ContainsRune(`"\/:`, r):
			return '_'
		}
		return r
	}, name)

	cleaned = strings.TrimSpace(cleaned)
	if strings.Trim(cleaned, "_") == "" {
		return "file"
	}

	if len(cleaned) > maxFilenameLength {
		ext := filepath.Ext(cleaned)
		if ext == "" || len(ext) >= maxFilenameLength {
			return truncateToBytes(cleaned, maxFilenameLength)
		}
		base := strings.TrimSuffix(cleaned, ext)
		return truncateToBytes(base, maxFilenameLength-len(ext)) + ext
	}
	return cleaned
}

// truncateToBytes cuts s to at most maxBytes without splitting a rune.
func truncateToBytes(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	for maxBytes > 0 && !utf8.RuneStart(s[maxBytes]) {
		maxBytes--
	}
	return s[:maxBytes]
}

// ContentDisposition returns an attachment (or inline) header value for filename.
func ContentDisposition(filename string, inline bool) string {
	disposition := "attachment"
	if inline {
		disposition = "inline"
	}
	return fmt.Sprintf("%s; filename=%q", disposition, SanitizeFilename(filename))
}
