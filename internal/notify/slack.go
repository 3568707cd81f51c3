package notify

import (
	"context"
	"fmt"

	slackapi "github.com/slack-go/slack"
)

// digestColor is the attachment sidebar color for reconciliation digests.
const digestColor = "#e8a317"

// slackClient abstracts the Slack API methods we use, enabling test mocks.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

// Slack sends digests to a single Slack channel over the Web API.
type Slack struct {
	client  slackClient
	channel string
}

// NewSlack builds a Slack notifier from a bot token and target channel.
func NewSlack(botToken, channel string) *Slack {
	return &Slack{client: slackapi.New(botToken), channel: channel}
}

// Name implements Notifier.
func (s *Slack) Name() string { return "slack" }

// Close implements Notifier. The Web API client holds no connection.
func (s *Slack) Close() error { return nil }

// Send implements Notifier.
func (s *Slack) Send(ctx context.Context, d Digest) error {
	attachment := slackapi.Attachment{
		Color: digestColor,
		Title: d.Headline(),
		Text:  d.Body(),
	}
	_, _, err := s.client.PostMessageContext(ctx, s.channel,
		slackapi.MsgOptionAttachments(attachment))
	if err != nil {
		return fmt.Errorf("notify: slack post to %s: %w", s.channel, err)
	}
	return nil
}
