package database

import (
	"time"
)

// VideoStatus tracks how far a video got through the processing pipeline.
// Transitions are one-way: pending -> processed, or pending -> failed.
// A failed video may be reset to pending for a retry.
type VideoStatus string

const (
	VideoStatusPending   VideoStatus = "pending"
	VideoStatusProcessed VideoStatus = "processed"
	VideoStatusFailed    VideoStatus = "failed"
)

type User struct {
	ID             string
	Email          string
	SlackChannelID *string // nil when the user has no delivery destination
	CreatedAt      time.Time
}

// Channel holds the shared monitoring state for one YouTube channel.
// Many users may subscribe to the same channel; LatestVideoID is the
// per-channel pointer used to detect new uploads.
type Channel struct {
	ID              string // Database UUID
	ChannelID       string // External YouTube channel ID
	Handle          string
	Title           string
	ThumbnailURL    string
	SubscriberCount int64
	VideoCount      int64
	LatestVideoID   *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Subscription struct {
	ID        string
	UserID    string
	ChannelID string // External YouTube channel ID
	CreatedAt time.Time
}

// Subscriber is a subscription joined with the owning user's delivery
// destination, as needed by the delivery fan-out.
type Subscriber struct {
	UserID         string
	Email          string
	SlackChannelID *string
}

type Video struct {
	ID           string // Database UUID
	VideoID      string // External YouTube video ID
	ChannelID    string // External YouTube channel ID
	Title        string
	PublishedAt  *time.Time
	Status       VideoStatus
	Summary      string
	Transcript   string
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
