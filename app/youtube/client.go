package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// Client wraps the YouTube Data API v3 behind the lookups the monitor
// needs. All calls go through a shared rate limiter since the API is
// quota-limited.
type Client struct {
	service *yt.Service
	limiter *rate.Limiter
}

func NewClient(ctx context.Context, apiKey string, qps float64) (*Client, error) {
	service, err := yt.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}

	if qps <= 0 {
		qps = 4
	}

	return &Client{
		service: service,
		limiter: rate.NewLimiter(rate.Limit(qps), 1),
	}, nil
}

// LatestUpload returns a channel's most recent upload.
func (c *Client) LatestUpload(ctx context.Context, channelID string) (*Upload, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	response, err := c.service.Search.
		List([]string{"snippet"}).
		ChannelId(channelID).
		Order("date").
		Type("video").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search latest upload: %w", wrapAPIError(err))
	}

	if len(response.Items) == 0 {
		return nil, fmt.Errorf("channel %s has no uploads: %w", channelID, ErrNotFound)
	}

	item := response.Items[0]
	publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)

	return &Upload{
		VideoID:     item.Id.VideoId,
		Title:       item.Snippet.Title,
		PublishedAt: publishedAt,
	}, nil
}

// BroadcastStatus looks up a video's liveBroadcastContent flag.
// A video that cannot be found yields ErrNotFound.
func (c *Client) BroadcastStatus(ctx context.Context, videoID string) (BroadcastStatus, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return BroadcastNone, err
	}

	response, err := c.service.Videos.
		List([]string{"snippet"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return BroadcastNone, fmt.Errorf("failed to fetch video snippet: %w", wrapAPIError(err))
	}

	if len(response.Items) == 0 {
		return BroadcastNone, fmt.Errorf("video %s: %w", videoID, ErrNotFound)
	}

	switch response.Items[0].Snippet.LiveBroadcastContent {
	case "live":
		return BroadcastLive, nil
	case "upcoming":
		return BroadcastUpcoming, nil
	default:
		return BroadcastNone, nil
	}
}

// ResolveChannel resolves a channel reference (channel ID, @handle, or a
// channel URL) to channel metadata.
func (c *Client) ResolveChannel(ctx context.Context, ref string) (*ChannelInfo, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	call := c.service.Channels.List([]string{"snippet", "statistics"})

	ref = normalizeChannelRef(ref)
	if strings.HasPrefix(ref, "@") {
		call = call.ForHandle(ref)
	} else {
		call = call.Id(ref)
	}

	response, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve channel: %w", wrapAPIError(err))
	}

	if len(response.Items) == 0 {
		return nil, fmt.Errorf("channel %q: %w", ref, ErrNotFound)
	}

	item := response.Items[0]
	info := &ChannelInfo{
		ChannelID: item.Id,
		Handle:    item.Snippet.CustomUrl,
		Title:     item.Snippet.Title,
	}
	if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Default != nil {
		info.ThumbnailURL = item.Snippet.Thumbnails.Default.Url
	}
	if item.Statistics != nil {
		info.SubscriberCount = int64(item.Statistics.SubscriberCount)
		info.VideoCount = int64(item.Statistics.VideoCount)
	}

	return info, nil
}

// normalizeChannelRef strips channel URL prefixes so the caller can pass a
// plain ID, an @handle, or a full youtube.com URL.
func normalizeChannelRef(ref string) string {
	ref = strings.TrimSpace(ref)

	for _, prefix := range []string{"https://", "http://"} {
		ref = strings.TrimPrefix(ref, prefix)
	}
	for _, prefix := range []string{"www.youtube.com/", "youtube.com/", "m.youtube.com/"} {
		ref = strings.TrimPrefix(ref, prefix)
	}
	ref = strings.TrimPrefix(ref, "channel/")
	ref = strings.TrimSuffix(ref, "/")

	return ref
}
