package votes

import (
	"fmt"
	"log"
	"strings"

	"votebot/clients"
	"votebot/models"
)

// runPoll drives one open poll to Closed. It races the poll's own timer
// against the process-wide shutdown signal and acts on whichever resolves
// first; the loser is ignored.
func (u *VotesUseCase) runPoll(poll *models.Poll) {
	defer u.tasks.Done()
	log.Printf("⏳ Poll %s waits %s before closing", poll.ID, poll.Timeout)

	select {
	case <-u.clock.After(poll.Timeout):
		poll.Advance(models.PollStateClosing)
		if err := u.closePoll(poll); err != nil {
			log.Printf("⚠️ Failed to publish results for poll %s: %v", poll.ID, err)
		}
	case <-u.shutdown.Done():
		// Shutdown won the race: no tally, no results, and the prompt
		// message stays in place.
		log.Printf("🔌 Aborting poll %s - shutdown signal resolved first", poll.ID)
		poll.Advance(models.PollStateClosing)
	}

	poll.Advance(models.PollStateClosed)
	u.pollsService.Close(poll.MessageTS)
}

// closePoll performs the normal timeout close: fetch the live reaction
// snapshot, tally, post the results, and request deletion of the prompt.
func (u *VotesUseCase) closePoll(poll *models.Poll) error {
	item := clients.SlackItemRef{Channel: poll.ChannelID, Timestamp: poll.MessageTS}

	reactions, err := u.slackClient.GetReactions(item, clients.SlackGetReactionsParameters{Full: true})
	if err != nil {
		return fmt.Errorf("failed to fetch reactions for poll %s: %w", poll.ID, err)
	}

	entries := ComputeTally(reactions, poll.Choices, u.botUserID)
	log.Printf("🧮 Poll %s tallied %d of %d choices", poll.ID, len(entries), len(poll.Choices))

	_, postErr := u.slackClient.PostMessage(u.channelID,
		clients.SlackMessageWithUsername(botUsername),
		clients.SlackMessageWithIconEmoji(botIconEmoji),
		clients.SlackMessageWithAttachments(u.resultsAttachment(poll, entries)),
	)

	// The prompt is deleted regardless of whether the results post went
	// through; its votes are already captured in the snapshot.
	u.spawnDetached(fmt.Sprintf("delete prompt %s", poll.MessageTS), func() error {
		return u.slackClient.DeleteMessage(item)
	})

	if postErr != nil {
		return fmt.Errorf("failed to post results for poll %s: %w", poll.ID, postErr)
	}

	log.Printf("🏁 Poll %s closed with results posted", poll.ID)
	return nil
}

// resultsAttachment builds the rich attachment listing one field per tallied
// choice, ranked best first.
func (u *VotesUseCase) resultsAttachment(poll *models.Poll, entries []models.TallyEntry) clients.SlackAttachment {
	fields := make([]clients.SlackAttachmentField, 0, len(entries))
	for _, entry := range entries {
		fields = append(fields, clients.SlackAttachmentField{
			Title: fmt.Sprintf(":%s: %d", entry.Name, entry.Count),
			Value: strings.Join(u.usersService.DisplayNames(entry.Voters), ", "),
		})
	}

	return clients.SlackAttachment{
		Text:   poll.Question,
		Fields: fields,
	}
}
