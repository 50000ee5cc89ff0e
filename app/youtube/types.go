package youtube

import (
	"time"
)

// Upload is a channel's most recent upload as reported by the Data API
// or the channel's public feed.
type Upload struct {
	VideoID     string
	Title       string
	PublishedAt time.Time
}

// BroadcastStatus mirrors the liveBroadcastContent flag on a video.
type BroadcastStatus string

const (
	BroadcastNone     BroadcastStatus = "none"
	BroadcastLive     BroadcastStatus = "live"
	BroadcastUpcoming BroadcastStatus = "upcoming"
)

// ChannelInfo is the channel metadata refreshed opportunistically when a
// channel is registered or resolved.
type ChannelInfo struct {
	ChannelID       string
	Handle          string
	Title           string
	ThumbnailURL    string
	SubscriberCount int64
	VideoCount      int64
}
