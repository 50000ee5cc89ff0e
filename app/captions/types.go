package captions

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrNoCaptions means the video exists but carries no caption track.
	ErrNoCaptions = errors.New("no captions available")
	// ErrVideoUnavailable means the video is private, deleted, or otherwise
	// not playable.
	ErrVideoUnavailable = errors.New("video unavailable")
)

// Segment is one timed caption cue.
type Segment struct {
	Start    time.Duration
	Duration time.Duration
	Text     string
}

// Transcript is the normalized result of caption extraction: ordered timed
// segments plus a concatenated full-text form.
type Transcript struct {
	VideoID   string
	Language  string
	Generated bool // true for auto-generated (ASR) tracks
	Segments  []Segment
}

func (t *Transcript) FullText() string {
	parts := make([]string, 0, len(t.Segments))
	for _, segment := range t.Segments {
		parts = append(parts, segment.Text)
	}

	return strings.Join(parts, " ")
}
