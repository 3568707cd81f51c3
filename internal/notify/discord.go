package notify

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// digestEmbedColor is the embed sidebar color (orange) for digests.
const digestEmbedColor = 0xe8a317

// discordSession abstracts the discordgo.Session methods we use, enabling
// test mocks.
type discordSession interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Discord sends digests to a single Discord channel over the REST API.
type Discord struct {
	session   discordSession
	channelID string
}

// NewDiscord builds a Discord notifier from a bot token and target channel.
func NewDiscord(botToken, channelID string) (*Discord, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("notify: discord session: %w", err)
	}
	return &Discord{session: session, channelID: channelID}, nil
}

// Name implements Notifier.
func (d *Discord) Name() string { return "discord" }

// Close implements Notifier. Sends use the REST API, so there is no gateway
// connection to tear down.
func (d *Discord) Close() error { return nil }

// Send implements Notifier.
func (d *Discord) Send(ctx context.Context, digest Digest) error {
	embed := &discordgo.MessageEmbed{
		Title:       digest.Headline(),
		Description: digest.Body(),
		Color:       digestEmbedColor,
	}
	_, err := d.session.ChannelMessageSendEmbed(d.channelID, embed,
		discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("notify: discord send to %s: %w", d.channelID, err)
	}
	return nil
}
