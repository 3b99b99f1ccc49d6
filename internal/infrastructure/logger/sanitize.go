package logger

import (
	"fmt"
	"net/url"
	"strings"
)

// SanitizeForLog escapes control characters in user-supplied strings
// (filenames, source references, provider replies) so they cannot forge log
// lines or drive the terminal. Printable Unicode passes through.
func SanitizeForLog(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 32 || r == 127:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeURL drops credentials and the query string from a remote source
// before it is logged. Signed CDN links often carry tokens in the query.
func SanitizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return SanitizeForLog(raw)
	}
	u.User = nil
	if u.RawQuery != "" {
		u.RawQuery = "…"
	}
	u.Fragment = ""
	return SanitizeForLog(u.String())
}
