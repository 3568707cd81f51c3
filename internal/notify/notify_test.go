package notify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	slackapi "github.com/slack-go/slack"
)

func sampleDigest() Digest {
	return Digest{
		Changed: 3, NewlyOverdue: 1, Overdue: 2, DueSoon: 4,
		At: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestDigestText(t *testing.T) {
	d := sampleDigest()
	if got := d.Headline(); !strings.Contains(got, "1 newly overdue") {
		t.Errorf("headline = %q", got)
	}
	body := d.Body()
	if !strings.Contains(body, "2 overdue") || !strings.Contains(body, "4 due soon") {
		t.Errorf("body = %q", body)
	}
	if !strings.Contains(body, "2024-06-01") {
		t.Errorf("body missing date: %q", body)
	}
}

type fakeSlack struct {
	channel string
	opts    []slackapi.MsgOption
	err     error
}

func (f *fakeSlack) PostMessageContext(_ context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	f.channel = channelID
	f.opts = options
	return "", "", f.err
}

func TestSlackSend(t *testing.T) {
	fake := &fakeSlack{}
	s := &Slack{client: fake, channel: "#fleet-ops"}

	if err := s.Send(context.Background(), sampleDigest()); err != nil {
		t.Fatalf("send: %v", err)
	}
	if fake.channel != "#fleet-ops" {
		t.Errorf("channel = %q", fake.channel)
	}
	if len(fake.opts) == 0 {
		t.Error("no message options sent")
	}
}

func TestSlackSendError(t *testing.T) {
	fake := &fakeSlack{err: errors.New("rate limited")}
	s := &Slack{client: fake, channel: "#fleet-ops"}

	err := s.Send(context.Background(), sampleDigest())
	if err == nil || !strings.Contains(err.Error(), "notify: slack post") {
		t.Fatalf("err = %v", err)
	}
}

type fakeDiscord struct {
	channelID string
	embed     *discordgo.MessageEmbed
	err       error
}

func (f *fakeDiscord) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.channelID = channelID
	f.embed = embed
	return nil, f.err
}

func TestDiscordSend(t *testing.T) {
	fake := &fakeDiscord{}
	d := &Discord{session: fake, channelID: "123456"}

	if err := d.Send(context.Background(), sampleDigest()); err != nil {
		t.Fatalf("send: %v", err)
	}
	if fake.channelID != "123456" {
		t.Errorf("channel = %q", fake.channelID)
	}
	if fake.embed == nil || !strings.Contains(fake.embed.Title, "1 newly overdue") {
		t.Errorf("embed = %+v", fake.embed)
	}
}

func TestDiscordSendError(t *testing.T) {
	fake := &fakeDiscord{err: errors.New("forbidden")}
	d := &Discord{session: fake, channelID: "123456"}

	err := d.Send(context.Background(), sampleDigest())
	if err == nil || !strings.Contains(err.Error(), "notify: discord send") {
		t.Fatalf("err = %v", err)
	}
}
