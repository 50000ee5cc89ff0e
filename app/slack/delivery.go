package slack

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/slack-go/slack"
)

// ErrDeliveryFailed marks a summary that could not be posted to a user's
// channel. Delivery failures never revert a video's processed state.
var ErrDeliveryFailed = errors.New("slack delivery failed")

const deliveryAttempts = 3

// VideoMessage is the content posted into a user's Slack channel for one
// processed video.
type VideoMessage struct {
	VideoID      string
	Title        string
	ChannelTitle string
	Summary      string
	PublishedAt  time.Time
}

// api is the slice of the Slack client the package uses, kept narrow so
// tests can substitute a double.
type api interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

type Notifier struct {
	client api
}

func NewNotifier(botToken string) *Notifier {
	return &Notifier{client: slack.New(botToken)}
}

// Deliver posts a video summary into the given Slack channel, retrying
// transient failures with exponential backoff.
func (n *Notifier) Deliver(ctx context.Context, slackChannelID string, msg VideoMessage) error {
	post := func() (struct{}, error) {
		_, _, err := n.client.PostMessageContext(ctx, slackChannelID,
			slack.MsgOptionBlocks(buildVideoBlocks(msg)...),
			slack.MsgOptionText(fmt.Sprintf("%s: %s", msg.ChannelTitle, msg.Title), false),
		)
		return struct{}{}, err
	}

	_, err := backoff.Retry(ctx, post,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(deliveryAttempts),
	)
	if err != nil {
		return fmt.Errorf("%w: channel %s: %v", ErrDeliveryFailed, slackChannelID, err)
	}

	return nil
}

func buildVideoBlocks(msg VideoMessage) []slack.Block {
	videoURL := fmt.Sprintf("https://www.youtube.com/watch?v=%s", msg.VideoID)

	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, msg.Title, false, false),
	)
	body := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("<%s|Watch on YouTube>\n\n%s", videoURL, msg.Summary), false, false),
		nil, nil,
	)

	contextText := msg.ChannelTitle
	if !msg.PublishedAt.IsZero() {
		contextText = fmt.Sprintf("%s · %s", msg.ChannelTitle, msg.PublishedAt.Format("2006-01-02 15:04"))
	}
	footer := slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType, contextText, false, false),
	)

	return []slack.Block{header, body, footer}
}
