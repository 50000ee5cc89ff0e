package youtube

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"
)

const feedURLFormat = "https://www.youtube.com/feeds/videos.xml?channel_id=%s"

// FeedWatcher reads a channel's public Atom feed. It costs no API quota,
// which makes it the fallback path for latest-upload lookups when the Data
// API rejects calls with quota errors.
type FeedWatcher struct {
	parser *gofeed.Parser
}

func NewFeedWatcher(userAgent string) *FeedWatcher {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent

	return &FeedWatcher{parser: parser}
}

func (w *FeedWatcher) LatestUpload(ctx context.Context, channelID string) (*Upload, error) {
	feed, err := w.parser.ParseURLWithContext(fmt.Sprintf(feedURLFormat, channelID), ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel feed: %w", err)
	}

	return latestFromFeed(feed, channelID)
}

func latestFromFeed(feed *gofeed.Feed, channelID string) (*Upload, error) {
	if len(feed.Items) == 0 {
		return nil, fmt.Errorf("channel %s feed has no entries: %w", channelID, ErrNotFound)
	}

	// Feed entries are ordered newest first
	item := feed.Items[0]

	upload := &Upload{Title: item.Title}
	if item.PublishedParsed != nil {
		upload.PublishedAt = *item.PublishedParsed
	}

	if ext, ok := item.Extensions["yt"]["videoId"]; ok && len(ext) > 0 {
		upload.VideoID = ext[0].Value
	}
	if upload.VideoID == "" {
		return nil, fmt.Errorf("feed entry for channel %s has no video id", channelID)
	}

	return upload, nil
}
