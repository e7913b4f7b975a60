package core

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrMissingInput = errors.New("url is required")
	ErrInvalidURL   = errors.New("invalid url")
)

// schemes that cannot stand without an authority
var hostRequired = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
}

// Validate classifies raw form input. Only the empty string is missing;
// whitespace-only input is invalid.
//
// Non-empty input is cleaned the way a browser cleans a pasted URL before
// parsing, so the verdict agrees with what a browser accepts. Callers still
// submit raw, not the cleaned form.
func Validate(raw string) Verdict {
	if raw == "" {
		return Verdict{Kind: VerdictMissing}
	}
	u, err := url.Parse(normalize(raw))
	if err != nil || !u.IsAbs() {
		return Verdict{Kind: VerdictInvalid}
	}
	if hostRequired[strings.ToLower(u.Scheme)] && u.Host == "" {
		return Verdict{Kind: VerdictInvalid}
	}
	return Verdict{Kind: VerdictValid, URL: u}
}

// normalize strips leading and trailing control characters and spaces, drops
// tabs and newlines, and for http-like schemes reads backslashes as slashes
// and any run of slashes after the colon as "//". Stray percent signs and
// remaining control characters are escaped.
func normalize(s string) string {
	s = strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)

	if scheme, rest, ok := splitScheme(s); ok && hostRequired[strings.ToLower(scheme)] {
		end := strings.IndexAny(rest, "?#")
		if end < 0 {
			end = len(rest)
		}
		rest = strings.ReplaceAll(rest[:end], `\`, "/") + rest[end:]
		s = scheme + "://" + strings.TrimLeft(rest, "/")
	}
	return escapeStray(s)
}

// splitScheme cuts s at the colon ending a leading scheme, if there is one.
func splitScheme(s string) (scheme, rest string, ok bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9', c == '+', c == '-', c == '.':
			if i == 0 {
				return "", s, false
			}
		case c == ':':
			if i == 0 {
				return "", s, false
			}
			return s[:i], s[i+1:], true
		default:
			return "", s, false
		}
	}
	return "", s, false
}

func escapeStray(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '%' && !(i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2])):
			b.WriteString("%25")
		case c < ' ' || c == 0x7f:
			fmt.Fprintf(&b, "%%%02X", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
