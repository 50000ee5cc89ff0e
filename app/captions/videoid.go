package captions

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseVideoID accepts a bare video ID or any of the common YouTube URL
// forms (watch, youtu.be, shorts, live, embed) and returns the video ID.
func ParseVideoID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("empty video reference")
	}

	if !strings.Contains(ref, "/") && !strings.Contains(ref, ".") {
		return ref, nil
	}

	if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
		ref = "https://" + ref
	}

	parsed, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("failed to parse video url: %w", err)
	}

	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	path := strings.Trim(parsed.Path, "/")

	switch host {
	case "youtu.be":
		if path != "" {
			return firstPathSegment(path), nil
		}
	case "youtube.com", "m.youtube.com", "music.youtube.com":
		if id := parsed.Query().Get("v"); id != "" {
			return id, nil
		}
		for _, prefix := range []string{"shorts/", "live/", "embed/"} {
			if strings.HasPrefix(path, prefix) {
				return firstPathSegment(strings.TrimPrefix(path, prefix)), nil
			}
		}
	}

	return "", fmt.Errorf("no video id in %q", ref)
}

func firstPathSegment(path string) string {
	if i := strings.Index(path, "/"); i >= 0 {
		return path[:i]
	}
	return path
}
