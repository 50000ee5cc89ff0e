package monitor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shook-dev/shook/app/database"
	"github.com/shook-dev/shook/app/slack"
	"github.com/shook-dev/shook/app/youtube"
)

// processVideo runs extraction, summarization, persistence and delivery
// for one regular upload. Failures are recorded on the video and never
// propagate past the video boundary; only repository errors do.
func (m *Monitor) processVideo(ctx context.Context, channel database.Channel, upload *youtube.Upload) error {
	video, err := m.videoRepo.GetByVideoID(upload.VideoID)
	if err != nil {
		return fmt.Errorf("failed to load video record: %w", err)
	}

	switch {
	case video == nil:
		created := database.Video{
			VideoID:   upload.VideoID,
			ChannelID: channel.ChannelID,
			Title:     upload.Title,
		}
		if !upload.PublishedAt.IsZero() {
			publishedAt := upload.PublishedAt
			created.PublishedAt = &publishedAt
		}
		if video, err = m.videoRepo.Create(created); err != nil {
			return fmt.Errorf("failed to create video record: %w", err)
		}
	case video.Status == database.VideoStatusProcessed:
		// Dedup ledger: a processed video is never reprocessed or redelivered
		slog.Debug("Video already processed", "video_id", upload.VideoID)
		return m.channelRepo.UpdateLatestVideoID(channel.ChannelID, upload.VideoID)
	case video.Status == database.VideoStatusFailed:
		reset, err := m.videoRepo.ResetForRetry(upload.VideoID)
		if err != nil {
			return fmt.Errorf("failed to reset video for retry: %w", err)
		}
		if !reset {
			return nil
		}
		slog.Info("Retrying failed video", "video_id", upload.VideoID)
	}

	transcript, err := m.extractor.Extract(ctx, upload.VideoID)
	if err != nil {
		return m.failVideo(ctx, channel.ChannelID, upload.VideoID, "extract_transcript", err)
	}

	summaryText, err := m.summarizer.Summarize(ctx, upload.Title, transcript.FullText())
	if err != nil {
		return m.failVideo(ctx, channel.ChannelID, upload.VideoID, "summarize", err)
	}

	processed, err := m.videoRepo.MarkProcessed(upload.VideoID, summaryText, transcript.FullText())
	if err != nil {
		return fmt.Errorf("failed to mark video processed: %w", err)
	}
	if !processed {
		// Lost the compare-and-set: a concurrent check already finished
		// this video, so delivery belongs to that path
		slog.Info("Video processed concurrently, skipping delivery", "video_id", upload.VideoID)
		return m.channelRepo.UpdateLatestVideoID(channel.ChannelID, upload.VideoID)
	}
	m.recordProcessed()

	if err := m.channelRepo.UpdateLatestVideoID(channel.ChannelID, upload.VideoID); err != nil {
		return fmt.Errorf("failed to advance latest video id: %w", err)
	}

	slog.Info("Video processed", "channel_id", channel.ChannelID, "video_id", upload.VideoID,
		"title", upload.Title, "language", transcript.Language, "generated", transcript.Generated)

	m.deliverToSubscribers(ctx, channel, upload, summaryText)

	return nil
}

// failVideo records a video-level failure. The latest pointer is left
// untouched so the video is retried on the next cycle.
func (m *Monitor) failVideo(ctx context.Context, channelID, videoID, operation string, cause error) error {
	slog.Error("Video processing failed", "channel_id", channelID, "video_id", videoID,
		"operation", operation, "error", cause)

	m.reporter.Report(ctx, slack.Incident{
		Service:   serviceName,
		Operation: operation,
		ChannelID: channelID,
		VideoID:   videoID,
		Err:       cause,
	})

	failed, err := m.videoRepo.MarkFailed(videoID, cause.Error())
	if err != nil {
		return fmt.Errorf("failed to mark video failed: %w", err)
	}
	if failed {
		m.recordFailed()
	}

	return nil
}

// deliverToSubscribers fans the summary out to every user subscribed to
// the channel. One user's delivery failure does not block the others, and
// never reverts the video's processed state.
func (m *Monitor) deliverToSubscribers(ctx context.Context, channel database.Channel, upload *youtube.Upload, summaryText string) {
	subscribers, err := m.subRepo.GetSubscribers(channel.ChannelID)
	if err != nil {
		slog.Error("Failed to load subscribers for delivery", "channel_id", channel.ChannelID, "error", err)
		m.reporter.Report(ctx, slack.Incident{
			Service:   serviceName,
			Operation: "deliver_summary",
			ChannelID: channel.ChannelID,
			VideoID:   upload.VideoID,
			Err:       err,
		})
		return
	}

	msg := slack.VideoMessage{
		VideoID:      upload.VideoID,
		Title:        upload.Title,
		ChannelTitle: channel.Title,
		Summary:      summaryText,
		PublishedAt:  upload.PublishedAt,
	}

	for _, subscriber := range subscribers {
		if subscriber.SlackChannelID == nil || *subscriber.SlackChannelID == "" {
			slog.Info("Subscriber has no delivery destination, skipping",
				"user_id", subscriber.UserID, "video_id", upload.VideoID)
			continue
		}

		if err := m.sink.Deliver(ctx, *subscriber.SlackChannelID, msg); err != nil {
			slog.Error("Delivery failed", "user_id", subscriber.UserID,
				"video_id", upload.VideoID, "error", err)
			m.reporter.Report(ctx, slack.Incident{
				Service:   serviceName,
				Operation: "deliver_summary",
				ChannelID: channel.ChannelID,
				VideoID:   upload.VideoID,
				UserID:    subscriber.UserID,
				Err:       err,
			})
			continue
		}

		slog.Info("Summary delivered", "user_id", subscriber.UserID, "video_id", upload.VideoID)
	}
}
