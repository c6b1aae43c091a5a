package notify

import (
	"context"
	"log/slog"

	"github.com/slack-go/slack"
)

// slackPoster is the slice of the slack API the notifier uses; it lets
// tests substitute a recording implementation.
type slackPoster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// SlackNotifier posts run summaries to a Slack channel. A nil notifier
// is valid and does nothing, so callers never need to branch on
// whether notifications are configured.
type SlackNotifier struct {
	client  slackPoster
	channel string
	logger  *slog.Logger
}

// NewSlackNotifier returns nil when no token or channel is configured.
func NewSlackNotifier(token, channel string, logger *slog.Logger) *SlackNotifier {
	if token == "" || channel == "" {
		return nil
	}
	return &SlackNotifier{
		client:  slack.New(token),
		channel: channel,
		logger:  logger,
	}
}

// Notify sends a message. Delivery problems are logged and swallowed;
// a missing Slack workspace must never fail a benchmark run.
func (n *SlackNotifier) Notify(ctx context.Context, message string) {
	if n == nil {
		return
	}
	_, _, err := n.client.PostMessageContext(ctx, n.channel, slack.MsgOptionText(message, false))
	if err != nil {
		n.logger.Warn("slack notification failed", "channel", n.channel, "error", err)
	}
}
