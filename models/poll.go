package models

import (
	"time"

	"votebot/utils"
)

type PollState string

const (
	PollStatePending PollState = "PENDING"
	PollStateOpen    PollState = "OPEN"
	PollStateClosing PollState = "CLOSING"
	PollStateClosed  PollState = "CLOSED"
)

// pollStateOrder maps each state to its position in the lifecycle. Polls only
// ever advance; there is no re-open.
var pollStateOrder = map[PollState]int{
	PollStatePending: 0,
	PollStateOpen:    1,
	PollStateClosing: 2,
	PollStateClosed:  3,
}

type Poll struct {
	// ID is the internal identifier assigned while the poll is still
	// Pending, before Slack has assigned a message timestamp.
	ID string `json:"id"`

	// MessageTS is the timestamp of the posted prompt message. It doubles as
	// the poll's registry key and is empty until the poll reaches Open.
	MessageTS string `json:"message_ts"`

	Question  string        `json:"question"`
	Choices   []string      `json:"choices"`
	ChannelID string        `json:"channel_id"`
	AuthorID  string        `json:"author_id"`
	OpenedAt  time.Time     `json:"opened_at"`
	Timeout   time.Duration `json:"timeout"`
	State     PollState     `json:"state"`
}

// NewPoll creates a Pending poll from a parsed question. The choices slice is
// copied so later mutation of the caller's slice cannot reach the poll.
func NewPoll(id, question string, choices []string, authorID string, timeout time.Duration) *Poll {
	utils.AssertInvariant(len(choices) > 0, "poll must have at least one choice")

	copied := make([]string, len(choices))
	copy(copied, choices)

	return &Poll{
		ID:       id,
		Question: question,
		Choices:  copied,
		AuthorID: authorID,
		Timeout:  timeout,
		State:    PollStatePending,
	}
}

// Advance moves the poll to the next lifecycle state. Moving backwards or
// skipping Open entirely is a programming error, not a runtime condition.
func (p *Poll) Advance(next PollState) {
	utils.AssertInvariant(pollStateOrder[next] > pollStateOrder[p.State],
		"poll state can only advance forward")
	p.State = next
}
