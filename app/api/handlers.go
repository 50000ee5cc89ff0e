package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shook-dev/shook/app/database"
	"github.com/shook-dev/shook/app/monitor"
)

func NewHandler(channelRepo database.ChannelRepository, subRepo database.SubscriptionRepository,
	videoRepo database.VideoRepository, userRepo database.UserRepository,
	resolver ChannelResolver, monitorControl MonitorControl) *Handler {
	return &Handler{
		channelRepo: channelRepo,
		subRepo:     subRepo,
		videoRepo:   videoRepo,
		userRepo:    userRepo,
		resolver:    resolver,
		monitor:     monitorControl,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if channelCount, err := h.channelRepo.GetChannelCount(); err == nil {
		health["channels"] = channelCount
	}

	status := h.monitor.Status()
	health["monitor_active"] = status.Active

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{
		"monitor": h.monitor.Status(),
	}

	if channelCount, err := h.channelRepo.GetChannelCount(); err == nil {
		stats["channels"] = channelCount
	}
	if counts, err := h.videoRepo.CountByStatus(); err == nil {
		stats["videos"] = map[string]int{
			"pending":   counts[database.VideoStatusPending],
			"processed": counts[database.VideoStatusProcessed],
			"failed":    counts[database.VideoStatusFailed],
		}
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) APIListChannels(c *gin.Context) {
	channels, err := h.channelRepo.GetAll()
	if err != nil {
		slog.Error("Database error", "operation", "list_channels", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	responses := make([]channelResponse, 0, len(channels))
	for _, channel := range channels {
		responses = append(responses, toChannelResponse(channel))
	}

	c.JSON(http.StatusOK, gin.H{"channels": responses, "total": len(responses)})
}

func (h *Handler) APIAddChannel(c *gin.Context) {
	var req addChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and channel are required"})
		return
	}

	user, err := h.userRepo.GetByID(req.UserID)
	if err != nil {
		slog.Error("Database error", "operation", "get_user", "user_id", req.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	info, err := h.resolver.ResolveChannel(c.Request.Context(), req.Channel)
	if err != nil {
		slog.Error("Failed to resolve channel", "channel", req.Channel, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to resolve channel", "details": err.Error()})
		return
	}

	channel, err := h.channelRepo.Upsert(database.Channel{
		ChannelID:       info.ChannelID,
		Handle:          info.Handle,
		Title:           info.Title,
		ThumbnailURL:    info.ThumbnailURL,
		SubscriberCount: info.SubscriberCount,
		VideoCount:      info.VideoCount,
	})
	if err != nil {
		slog.Error("Database error", "operation", "upsert_channel", "channel_id", info.ChannelID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := h.subRepo.Subscribe(user.ID, channel.ChannelID); err != nil {
		slog.Error("Database error", "operation", "subscribe", "channel_id", channel.ChannelID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	// Immediate check so a freshly added channel shows content without
	// waiting for the next tick
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := h.monitor.CheckChannel(ctx, channel.ChannelID); err != nil {
			slog.Error("Immediate channel check failed", "channel_id", channel.ChannelID, "error", err)
		}
	}()

	c.JSON(http.StatusCreated, toChannelResponse(*channel))
}

func (h *Handler) APIRemoveChannel(c *gin.Context) {
	channelID := c.Param("id")
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id parameter"})
		return
	}

	if err := h.subRepo.Unsubscribe(userID, channelID); err != nil {
		slog.Error("Database error", "operation", "unsubscribe", "channel_id", channelID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	// Drop the channel entirely once nobody subscribes to it, so the
	// monitor stops polling it
	remaining, err := h.subRepo.CountForChannel(channelID)
	if err == nil && remaining == 0 {
		if err := h.channelRepo.Delete(channelID); err != nil {
			slog.Error("Database error", "operation", "delete_channel", "channel_id", channelID, "error", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"removed": channelID})
}

func (h *Handler) APIListChannelVideos(c *gin.Context) {
	channelID := c.Param("id")

	channel, err := h.channelRepo.GetByChannelID(channelID)
	if err != nil {
		slog.Error("Database error", "operation", "get_channel", "channel_id", channelID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if channel == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Channel not found"})
		return
	}

	videos, err := h.videoRepo.ListForChannel(channelID, 50)
	if err != nil {
		slog.Error("Database error", "operation", "list_videos", "channel_id", channelID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	responses := make([]videoResponse, 0, len(videos))
	for _, video := range videos {
		responses = append(responses, toVideoResponse(video))
	}

	c.JSON(http.StatusOK, gin.H{"channel": toChannelResponse(*channel), "videos": responses})
}

func (h *Handler) APIListVideos(c *gin.Context) {
	videos, err := h.videoRepo.ListRecent(50)
	if err != nil {
		slog.Error("Database error", "operation", "list_recent_videos", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	responses := make([]videoResponse, 0, len(videos))
	for _, video := range videos {
		responses = append(responses, toVideoResponse(video))
	}

	c.JSON(http.StatusOK, gin.H{"videos": responses, "total": len(responses)})
}

// APITriggerSweep runs exactly one sweep synchronously, for operational
// testing.
func (h *Handler) APITriggerSweep(c *gin.Context) {
	start := time.Now()

	if err := h.monitor.Sweep(); err != nil {
		if errors.Is(err, monitor.ErrSweepInProgress) {
			c.JSON(http.StatusConflict, gin.H{"error": "A sweep is already in progress"})
			return
		}
		slog.Error("Manual sweep failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sweep failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"completed": true,
		"duration":  time.Since(start).String(),
	})
}

func (h *Handler) APIMonitorStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.Status())
}
