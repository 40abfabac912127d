package search

import (
	"net/url"
	"regexp"
	"strings"
)

// ivKey matches the hex IV+key fragment of an aesgcm URL (12 or 16 byte IV
// followed by a 32 byte key).
var ivKey = regexp.MustCompile(`^(?:(?:[A-Fa-f0-9]{2}){48}|(?:[A-Fa-f0-9]{2}){44})$`)

// uriChars matches a string made only of characters RFC 3986 allows in a
// URI: unreserved, reserved and '%'.
var uriChars = regexp.MustCompile(`^[A-Za-z0-9\-._~:/?#\[\]@!$&'()*+,;=%]+$`)

// Schemes are matched on the raw text, so "HTTPS://" does not count.
var wellKnownSchemes = []string{"http", "https", "aesgcm"}

// IsDownloadablePlaceholder reports whether body only points at remote
// content that has not been fetched yet. Such messages carry no searchable
// text of their own.
func IsDownloadablePlaceholder(body string, oob bool) bool {
	lines := splitLines(body)
	if len(lines) == 0 {
		return false
	}
	for _, line := range lines {
		if strings.Contains(line, `\s+`) {
			return false
		}
	}
	if !uriChars.MatchString(lines[0]) {
		return false
	}
	scheme := schemeOf(lines[0])
	if scheme == "" {
		return false
	}
	u, err := url.Parse(lines[0])
	if err != nil {
		return false
	}

	encrypted := u.Fragment != "" && ivKey.MatchString(u.Fragment)
	followedByDataURI := len(lines) == 2 && strings.HasPrefix(lines[1], "data:")
	switch scheme {
	case "aesgcm":
		return encrypted && (len(lines) == 1 || followedByDataURI)
	default:
		return (oob || encrypted) && len(lines) == 1
	}
}

func schemeOf(line string) string {
	for _, s := range wellKnownSchemes {
		if strings.HasPrefix(line, s+"://") {
			return s
		}
	}
	return ""
}

// splitLines splits on '\n' and drops trailing empty lines.
func splitLines(body string) []string {
	lines := strings.Split(body, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
