package usecase

import (
	"net/url"
	"regexp"
	"strings"
)

var bareYoutubeID = regexp.MustCompile(`^[A-Za-z0-9_-]{6,}$`)

// NormalizeYoutubeID extracts the bare video id from whatever the admin
// pasted: an id, a watch URL, a youtu.be short link or an embed URL.
// Unrecognized input is returned trimmed so the caller can decide.
func NormalizeYoutubeID(input string) string {
	val := strings.TrimSpace(input)
	if val == "" {
		return ""
	}
	if bareYoutubeID.MatchString(val) && !strings.Contains(val, "http") {
		return val
	}

	u, err := url.Parse(val)
	if err != nil {
		return val
	}
	if strings.Contains(u.Hostname(), "youtu.be") {
		return strings.TrimPrefix(u.Path, "/")
	}
	if v := u.Query().Get("v"); v != "" {
		return v
	}
	parts := strings.Split(u.Path, "/")
	for i, p := range parts {
		if p == "embed" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return val
}
