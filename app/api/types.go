package api

import (
	"context"
	"time"

	"github.com/shook-dev/shook/app/database"
	"github.com/shook-dev/shook/app/monitor"
	"github.com/shook-dev/shook/app/youtube"
)

// MonitorControl is the slice of the monitor the HTTP layer drives.
type MonitorControl interface {
	Sweep() error
	Status() monitor.Status
	CheckChannel(ctx context.Context, channelID string) error
}

// ChannelResolver resolves a user-supplied channel reference to channel
// metadata.
type ChannelResolver interface {
	ResolveChannel(ctx context.Context, ref string) (*youtube.ChannelInfo, error)
}

type Handler struct {
	channelRepo database.ChannelRepository
	subRepo     database.SubscriptionRepository
	videoRepo   database.VideoRepository
	userRepo    database.UserRepository
	resolver    ChannelResolver
	monitor     MonitorControl
}

type addChannelRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Channel string `json:"channel" binding:"required"`
}

type channelResponse struct {
	ChannelID       string    `json:"channel_id"`
	Handle          string    `json:"handle"`
	Title           string    `json:"title"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	SubscriberCount int64     `json:"subscriber_count"`
	VideoCount      int64     `json:"video_count"`
	LatestVideoID   *string   `json:"latest_video_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type videoResponse struct {
	VideoID      string     `json:"video_id"`
	ChannelID    string     `json:"channel_id"`
	Title        string     `json:"title"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	Status       string     `json:"status"`
	Summary      string     `json:"summary,omitempty"`
	ErrorMessage string     `json:"error,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toChannelResponse(channel database.Channel) channelResponse {
	return channelResponse{
		ChannelID:       channel.ChannelID,
		Handle:          channel.Handle,
		Title:           channel.Title,
		ThumbnailURL:    channel.ThumbnailURL,
		SubscriberCount: channel.SubscriberCount,
		VideoCount:      channel.VideoCount,
		LatestVideoID:   channel.LatestVideoID,
		CreatedAt:       channel.CreatedAt,
	}
}

func toVideoResponse(video database.Video) videoResponse {
	return videoResponse{
		VideoID:      video.VideoID,
		ChannelID:    video.ChannelID,
		Title:        video.Title,
		PublishedAt:  video.PublishedAt,
		Status:       string(video.Status),
		Summary:      video.Summary,
		ErrorMessage: video.ErrorMessage,
		CreatedAt:    video.CreatedAt,
	}
}
