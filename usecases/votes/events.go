package votes

import (
	"context"
	"fmt"
	"log"

	"votebot/clients"
	"votebot/core"
	"votebot/models"
	"votebot/parser"
)

// ProcessMessageEvent is the single entry point for every inbound event. It
// classifies the event and, for a qualifying direct message, opens a poll and
// starts its lifecycle. Classification rules are evaluated in order; first
// match wins.
func (u *VotesUseCase) ProcessMessageEvent(ctx context.Context, event models.MessageEvent) error {
	if event.User == "" || event.User == u.botUserID {
		log.Printf("⏭️ Ignoring event without a foreign sender")
		return nil
	}
	if !event.IsDirectMessage() {
		log.Printf("⏭️ Ignoring event outside a direct message: %s", event.Channel)
		return nil
	}
	if !event.IsPlainMessage() {
		log.Printf("⏭️ Ignoring event of type %q subtype %q", event.Type, event.SubType)
		return nil
	}

	question, choices := parser.Extract(event.Text)
	poll := models.NewPoll(core.NewID("poll"), question, choices, event.User, u.timeout)
	log.Printf("🗳️ Opening poll %s: %q with choices %v", poll.ID, poll.Question, poll.Choices)

	response, err := u.slackClient.PostMessage(u.channelID,
		clients.SlackMessageWithText("<!here>"),
		clients.SlackMessageWithUsername(botUsername),
		clients.SlackMessageWithIconEmoji(botIconEmoji),
		clients.SlackMessageWithAttachments(u.promptAttachment(poll)),
	)
	if err != nil {
		// The poll never reached Open; nothing persists.
		return fmt.Errorf("failed to post prompt for poll %s: %w", poll.ID, err)
	}

	poll.MessageTS = response.Timestamp
	poll.ChannelID = response.Channel
	poll.OpenedAt = u.clock.Now()
	poll.Advance(models.PollStateOpen)

	if err := u.pollsService.Open(poll); err != nil {
		return fmt.Errorf("failed to register poll %s: %w", poll.ID, err)
	}

	// Seed one reaction per choice. The seeds are independent: they may
	// complete in any order and a failed one never blocks the others or the
	// timer.
	item := clients.SlackItemRef{Channel: poll.ChannelID, Timestamp: poll.MessageTS}
	for _, choice := range poll.Choices {
		name := reactionName(choice)
		u.spawnDetached(fmt.Sprintf("seed reaction %s on %s", choice, poll.MessageTS), func() error {
			return u.slackClient.AddReaction(name, item)
		})
	}

	u.tasks.Add(1)
	go u.runPoll(poll)

	log.Printf("📋 Completed successfully - opened poll %s as message %s", poll.ID, poll.MessageTS)
	return nil
}

// promptAttachment builds the rich attachment shown on the poll prompt.
func (u *VotesUseCase) promptAttachment(poll *models.Poll) clients.SlackAttachment {
	return clients.SlackAttachment{
		Title: poll.Question,
		Fields: []clients.SlackAttachmentField{
			{
				Title: "By",
				Value: u.usersService.DisplayName(poll.AuthorID),
				Short: true,
			},
			{
				Title: "Duration",
				Value: fmt.Sprintf("%.1fm", poll.Timeout.Minutes()),
				Short: true,
			},
		},
	}
}
