package monitor

import (
	"context"

	"github.com/shook-dev/shook/app/captions"
	"github.com/shook-dev/shook/app/slack"
	"github.com/shook-dev/shook/app/youtube"
)

// VideoSource is the quota-limited metadata API the monitor polls.
type VideoSource interface {
	LatestUpload(ctx context.Context, channelID string) (*youtube.Upload, error)
	BroadcastStatus(ctx context.Context, videoID string) (youtube.BroadcastStatus, error)
}

// FallbackSource serves latest-upload lookups when the primary source is
// out of quota. Optional.
type FallbackSource interface {
	LatestUpload(ctx context.Context, channelID string) (*youtube.Upload, error)
}

type TranscriptExtractor interface {
	Extract(ctx context.Context, videoID string) (*captions.Transcript, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, title, transcript string) (string, error)
}

type DeliverySink interface {
	Deliver(ctx context.Context, slackChannelID string, msg slack.VideoMessage) error
}

// ErrorReporter receives every caught pipeline failure with structured
// context. Injected rather than imported so tests can observe reports.
type ErrorReporter interface {
	Report(ctx context.Context, incident slack.Incident)
}
