package captions

import (
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"
)

type timedTextDoc struct {
	XMLName xml.Name       `xml:"transcript"`
	Texts   []timedTextCue `xml:"text"`
}

type timedTextCue struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Body  string  `xml:",chardata"`
}

// parseTimedText decodes the default XML format of the timedtext endpoint
// into ordered segments. Cue text arrives HTML-escaped and may contain
// line breaks within a cue; both are normalized here.
func parseTimedText(data []byte) ([]Segment, error) {
	var doc timedTextDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse timedtext: %w", err)
	}

	segments := make([]Segment, 0, len(doc.Texts))
	for _, cue := range doc.Texts {
		text := html.UnescapeString(cue.Body)
		text = strings.Join(strings.Fields(text), " ")
		if text == "" {
			continue
		}

		segments = append(segments, Segment{
			Start:    time.Duration(cue.Start * float64(time.Second)),
			Duration: time.Duration(cue.Dur * float64(time.Second)),
			Text:     text,
		})
	}

	return segments, nil
}
