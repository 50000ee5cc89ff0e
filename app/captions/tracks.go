package captions

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// captionTrack mirrors one entry of the captionTracks array embedded in the
// watch page's player response.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" for auto-generated tracks
	Name         struct {
		SimpleText string `json:"simpleText"`
	} `json:"name"`
}

func (t captionTrack) generated() bool {
	return t.Kind == "asr"
}

// selectTrack picks the caption track to extract. Manually authored tracks
// are preferred over auto-generated ones, and within each group the track
// closest to the preferred language wins. When nothing matches the
// preferred language, the first manual track (or failing that, the first
// track) is used.
func selectTrack(tracks []captionTrack, preferred language.Tag) (captionTrack, error) {
	if len(tracks) == 0 {
		return captionTrack{}, fmt.Errorf("no caption tracks: %w", ErrNoCaptions)
	}

	var manual, generated []captionTrack
	for _, track := range tracks {
		if track.generated() {
			generated = append(generated, track)
		} else {
			manual = append(manual, track)
		}
	}

	for _, group := range [][]captionTrack{manual, generated} {
		if track, ok := matchLanguage(group, preferred); ok {
			return track, nil
		}
	}

	if len(manual) > 0 {
		return manual[0], nil
	}

	return generated[0], nil
}

func matchLanguage(tracks []captionTrack, preferred language.Tag) (captionTrack, bool) {
	if len(tracks) == 0 {
		return captionTrack{}, false
	}

	tags := make([]language.Tag, 0, len(tracks))
	for _, track := range tracks {
		// Auto-generated codes can look like "ko-orig"
		code := strings.TrimSuffix(track.LanguageCode, "-orig")
		tags = append(tags, language.Make(code))
	}

	matcher := language.NewMatcher(tags)
	_, index, confidence := matcher.Match(preferred)
	if confidence < language.High {
		return captionTrack{}, false
	}

	return tracks[index], true
}
