package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shook-dev/shook/app/database"
	"github.com/shook-dev/shook/app/slack"
	"github.com/shook-dev/shook/app/youtube"
)

// sweepAll enumerates all subscribed channels and checks each one through
// a bounded worker pool. One channel's failure never stops the sweep.
func (m *Monitor) sweepAll(ctx context.Context) {
	channels, err := m.channelRepo.GetAll()
	if err != nil {
		slog.Error("Failed to load channels for sweep", "error", err)
		m.reporter.Report(ctx, slack.Incident{
			Service:   serviceName,
			Operation: "sweep",
			Err:       fmt.Errorf("failed to load channels: %w", err),
		})
		return
	}

	if len(channels) == 0 {
		slog.Debug("No channels subscribed, nothing to sweep")
		return
	}

	slog.Info("Sweep started", "channels", len(channels))

	jobs := make(chan database.Channel, len(channels))
	for _, channel := range channels {
		jobs <- channel
	}
	close(jobs)
	m.queueLen.Store(int64(len(channels)))

	var wg sync.WaitGroup
	for i := 0; i < m.workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for channel := range jobs {
				m.runChannelCheck(ctx, workerID, channel)
				m.queueLen.Add(-1)
			}
		}(i)
	}
	wg.Wait()
	m.queueLen.Store(0)

	slog.Info("Sweep finished", "channels", len(channels))
}

// runChannelCheck is the channel failure boundary: panics and errors are
// contained here, logged with channel context, and reported.
func (m *Monitor) runChannelCheck(ctx context.Context, workerID int, channel database.Channel) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic: %v", r)
			slog.Error("Channel check panicked", "worker_id", workerID, "channel_id", channel.ChannelID, "error", err)
			m.recordChannelError()
			m.reporter.Report(ctx, slack.Incident{
				Service:   serviceName,
				Operation: "check_channel",
				ChannelID: channel.ChannelID,
				Err:       err,
			})
		}
	}()

	checkCtx, cancel := context.WithTimeout(ctx, perChannelTimeout)
	defer cancel()

	if err := m.checkChannel(checkCtx, channel); err != nil {
		slog.Error("Channel check failed", "worker_id", workerID, "channel_id", channel.ChannelID, "error", err)
		m.recordChannelError()
		m.reporter.Report(ctx, slack.Incident{
			Service:   serviceName,
			Operation: "check_channel",
			ChannelID: channel.ChannelID,
			Err:       err,
		})
	}
}

// CheckChannel runs one ad-hoc check of a single channel, used when a
// channel is first registered so it shows content without waiting for the
// next tick. It may run concurrently with a scheduled sweep; per-channel
// locking and the repository's compare-and-set keep that safe.
func (m *Monitor) CheckChannel(ctx context.Context, channelID string) error {
	channel, err := m.channelRepo.GetByChannelID(channelID)
	if err != nil {
		return fmt.Errorf("failed to load channel: %w", err)
	}
	if channel == nil {
		return fmt.Errorf("channel %s is not registered", channelID)
	}

	if err := m.checkChannel(ctx, *channel); err != nil {
		m.reporter.Report(ctx, slack.Incident{
			Service:   serviceName,
			Operation: "check_channel",
			ChannelID: channelID,
			Err:       err,
		})
		return err
	}

	return nil
}

// checkChannel looks up the channel's most recent upload and, when it is a
// genuinely new regular video, runs it through the processing pipeline.
func (m *Monitor) checkChannel(ctx context.Context, channel database.Channel) error {
	m.locks.Lock(channel.ChannelID)
	defer m.locks.Unlock(channel.ChannelID)

	upload, err := m.latestUpload(ctx, channel.ChannelID)
	if err != nil {
		// Latest pointer untouched: the channel is retried next cycle
		return fmt.Errorf("failed to fetch latest upload: %w", err)
	}

	if channel.LatestVideoID != nil && *channel.LatestVideoID == upload.VideoID {
		slog.Debug("No new upload", "channel_id", channel.ChannelID, "video_id", upload.VideoID)
		return nil
	}

	status := m.classify(ctx, channel.ChannelID, upload.VideoID)
	if status == youtube.BroadcastLive || status == youtube.BroadcastUpcoming {
		slog.Info("Skipping non-regular upload", "channel_id", channel.ChannelID,
			"video_id", upload.VideoID, "broadcast", string(status))
		// Advance the pointer so the broadcast is not re-checked every cycle
		if err := m.channelRepo.UpdateLatestVideoID(channel.ChannelID, upload.VideoID); err != nil {
			return fmt.Errorf("failed to advance latest video id: %w", err)
		}
		return nil
	}

	return m.processVideo(ctx, channel, upload)
}

// latestUpload queries the primary source and falls back to the channel's
// public feed when the primary is out of quota.
func (m *Monitor) latestUpload(ctx context.Context, channelID string) (*youtube.Upload, error) {
	upload, err := m.source.LatestUpload(ctx, channelID)
	if err == nil {
		return upload, nil
	}

	if errors.Is(err, youtube.ErrQuotaExceeded) && m.fallback != nil {
		slog.Warn("Data API quota exceeded, falling back to channel feed", "channel_id", channelID)
		return m.fallback.LatestUpload(ctx, channelID)
	}

	return nil, err
}

// classify determines the broadcast status of a video. Lookup failures
// default to treating the video as regular content (fail open), with quota
// exhaustion logged distinctly from a genuine not-found.
func (m *Monitor) classify(ctx context.Context, channelID, videoID string) youtube.BroadcastStatus {
	status, err := m.source.BroadcastStatus(ctx, videoID)
	if err == nil {
		return status
	}

	reason := "error"
	switch {
	case errors.Is(err, youtube.ErrQuotaExceeded):
		reason = "quota"
	case errors.Is(err, youtube.ErrNotFound):
		reason = "not_found"
	}

	slog.Warn("Broadcast classification unavailable, treating video as regular",
		"channel_id", channelID, "video_id", videoID, "reason", reason, "error", err)
	m.reporter.Report(ctx, slack.Incident{
		Service:   serviceName,
		Operation: "classify_video",
		ChannelID: channelID,
		VideoID:   videoID,
		Err:       err,
	})

	return youtube.BroadcastNone
}
