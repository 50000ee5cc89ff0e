package captions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

const watchURLFormat = "https://www.youtube.com/watch?v=%s"

// Extractor retrieves caption data for a video by scraping the watch page
// for the embedded player response and downloading the selected caption
// track from the timedtext endpoint.
type Extractor struct {
	httpClient *http.Client
	userAgent  string
	preferred  language.Tag
}

func NewExtractor(httpClient *http.Client, userAgent, preferredLanguage string) *Extractor {
	tag, err := language.Parse(preferredLanguage)
	if err != nil {
		tag = language.Korean
	}

	return &Extractor{
		httpClient: httpClient,
		userAgent:  userAgent,
		preferred:  tag,
	}
}

// Extract produces a normalized transcript for a video ID or URL.
// It fails with ErrNoCaptions when the video carries no caption track and
// ErrVideoUnavailable for private or deleted videos.
func (e *Extractor) Extract(ctx context.Context, videoRef string) (*Transcript, error) {
	videoID, err := ParseVideoID(videoRef)
	if err != nil {
		return nil, err
	}

	page, err := e.fetch(ctx, fmt.Sprintf(watchURLFormat, videoID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch watch page: %w", err)
	}

	tracks, err := extractCaptionTracks(string(page))
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}

	track, err := selectTrack(tracks, e.preferred)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}

	data, err := e.fetch(ctx, track.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caption track: %w", err)
	}

	segments, err := parseTimedText(data)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("video %s caption track is empty: %w", videoID, ErrNoCaptions)
	}

	return &Transcript{
		VideoID:   videoID,
		Language:  track.LanguageCode,
		Generated: track.generated(),
		Segments:  segments,
	}, nil
}

func (e *Extractor) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// extractCaptionTracks pulls the captionTracks array out of the embedded
// player response. The watch page is not parsed as HTML; the array is
// located by marker and read with a balanced-bracket scan, which is how the
// page survives YouTube's frequent markup changes.
func extractCaptionTracks(page string) ([]captionTrack, error) {
	start := strings.Index(page, `"captionTracks":`)
	if start < 0 {
		if pageUnavailable(page) {
			return nil, ErrVideoUnavailable
		}
		return nil, ErrNoCaptions
	}

	raw, err := readJSONArray(page[start+len(`"captionTracks":`):])
	if err != nil {
		return nil, fmt.Errorf("malformed captionTracks: %w", err)
	}

	var tracks []captionTrack
	if err := json.Unmarshal([]byte(raw), &tracks); err != nil {
		return nil, fmt.Errorf("failed to decode captionTracks: %w", err)
	}
	if len(tracks) == 0 {
		return nil, ErrNoCaptions
	}

	return tracks, nil
}

func pageUnavailable(page string) bool {
	for _, status := range []string{
		`"status":"ERROR"`,
		`"status":"LOGIN_REQUIRED"`,
		`"status":"UNPLAYABLE"`,
	} {
		if strings.Contains(page, status) {
			return true
		}
	}
	return false
}

// readJSONArray returns the balanced JSON array at the start of s,
// respecting string literals and escapes.
func readJSONArray(s string) (string, error) {
	if len(s) == 0 || s[0] != '[' {
		return "", fmt.Errorf("expected '[' at start of array")
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
			// skip
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth == 0 {
				return s[:i+1], nil
			}
		}
	}

	return "", fmt.Errorf("unterminated array")
}
