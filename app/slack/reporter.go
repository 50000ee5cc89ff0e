package slack

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/slack-go/slack"
)

// Incident is the structured context attached to every pipeline failure
// forwarded to the operational error channel.
type Incident struct {
	Service   string
	Operation string
	ChannelID string
	VideoID   string
	UserID    string
	Err       error
}

// OpsReporter posts incidents to a dedicated Slack channel. With no
// channel configured it degrades to logging only.
type OpsReporter struct {
	client  api
	channel string
}

func NewOpsReporter(botToken, channelID string) *OpsReporter {
	return &OpsReporter{
		client:  slack.New(botToken),
		channel: channelID,
	}
}

func (r *OpsReporter) Report(ctx context.Context, incident Incident) {
	slog.Error("Pipeline incident",
		"service", incident.Service,
		"operation", incident.Operation,
		"channel_id", incident.ChannelID,
		"video_id", incident.VideoID,
		"user_id", incident.UserID,
		"error", incident.Err)

	if r.channel == "" {
		return
	}

	_, _, err := r.client.PostMessageContext(ctx, r.channel,
		slack.MsgOptionText(formatIncident(incident), false),
	)
	if err != nil {
		slog.Error("Failed to post incident to error channel", "channel", r.channel, "error", err)
	}
}

func formatIncident(incident Incident) string {
	var b strings.Builder
	fmt.Fprintf(&b, ":rotating_light: *%s* failed during *%s*\n", incident.Service, incident.Operation)

	if incident.ChannelID != "" {
		fmt.Fprintf(&b, "> channel: `%s`\n", incident.ChannelID)
	}
	if incident.VideoID != "" {
		fmt.Fprintf(&b, "> video: `%s`\n", incident.VideoID)
	}
	if incident.UserID != "" {
		fmt.Fprintf(&b, "> user: `%s`\n", incident.UserID)
	}

	fmt.Fprintf(&b, "> error: %v", incident.Err)

	return b.String()
}
