// Package votes implements the poll lifecycle engine: it classifies inbound
// events, opens polls, races each poll's timer against the process shutdown
// signal, and publishes the tallied result.
package votes

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"votebot/clients"
	"votebot/core"
	"votebot/services"
)

const (
	botUsername  = "votebot"
	botIconEmoji = ":ballot_box_with_ballot:"
)

// VotesUseCase handles all poll operations
type VotesUseCase struct {
	slackClient  clients.SlackClient
	pollsService services.PollsService
	usersService services.UsersService
	clock        clockwork.Clock
	shutdown     *core.Signal

	botUserID string
	channelID string
	timeout   time.Duration

	tasks sync.WaitGroup
}

// NewVotesUseCase creates a new instance of VotesUseCase. channelID is the
// channel polls are posted to; timeout is the default poll duration.
func NewVotesUseCase(
	slackClient clients.SlackClient,
	pollsService services.PollsService,
	usersService services.UsersService,
	clock clockwork.Clock,
	shutdown *core.Signal,
	botUserID string,
	channelID string,
	timeout time.Duration,
) *VotesUseCase {
	return &VotesUseCase{
		slackClient:  slackClient,
		pollsService: pollsService,
		usersService: usersService,
		clock:        clock,
		shutdown:     shutdown,
		botUserID:    botUserID,
		channelID:    channelID,
		timeout:      timeout,
	}
}

// Wait blocks until every poll lifecycle and every detached side effect has
// finished. Called once at shutdown after the event queue has drained.
func (u *VotesUseCase) Wait() {
	u.tasks.Wait()
}

// spawnDetached runs a side effect in its own goroutine. The error is logged
// and dropped; nothing upstream observes it.
func (u *VotesUseCase) spawnDetached(name string, fn func() error) {
	u.tasks.Add(1)
	go func() {
		defer u.tasks.Done()
		if err := fn(); err != nil {
			log.Printf("⚠️ %s failed: %v", name, err)
		}
	}()
}

// reactionName converts a colon-delimited choice token into the bare reaction
// name the reactions API expects. Skin-tone suffixes keep their inner colons:
// ":nose::skin-tone-1:" becomes "nose::skin-tone-1".
func reactionName(choice string) string {
	return strings.Trim(choice, ":")
}
