package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoll(t *testing.T) {
	t.Run("StartsPending", func(t *testing.T) {
		poll := NewPoll("poll_1", "Lunch?", []string{":pizza:", ":sushi:"}, "U123", time.Minute)

		assert.Equal(t, PollStatePending, poll.State)
		assert.Equal(t, "Lunch?", poll.Question)
		assert.Equal(t, []string{":pizza:", ":sushi:"}, poll.Choices)
		assert.Empty(t, poll.MessageTS)
	})

	t.Run("CopiesChoices", func(t *testing.T) {
		choices := []string{":pizza:", ":sushi:"}
		poll := NewPoll("poll_1", "Lunch?", choices, "U123", time.Minute)

		choices[0] = ":burger:"

		assert.Equal(t, ":pizza:", poll.Choices[0])
	})

	t.Run("PanicsOnEmptyChoices", func(t *testing.T) {
		assert.Panics(t, func() {
			NewPoll("poll_1", "Lunch?", nil, "U123", time.Minute)
		})
	})
}

func TestPollAdvance(t *testing.T) {
	t.Run("WalksFullLifecycle", func(t *testing.T) {
		poll := NewPoll("poll_1", "Lunch?", []string{":pizza:"}, "U123", time.Minute)

		for _, next := range []PollState{PollStateOpen, PollStateClosing, PollStateClosed} {
			poll.Advance(next)
			require.Equal(t, next, poll.State)
		}
	})

	t.Run("PanicsOnBackwardsMove", func(t *testing.T) {
		poll := NewPoll("poll_1", "Lunch?", []string{":pizza:"}, "U123", time.Minute)
		poll.Advance(PollStateClosing)

		assert.Panics(t, func() {
			poll.Advance(PollStateOpen)
		})
	})

	t.Run("PanicsOnRepeatedState", func(t *testing.T) {
		poll := NewPoll("poll_1", "Lunch?", []string{":pizza:"}, "U123", time.Minute)
		poll.Advance(PollStateOpen)

		assert.Panics(t, func() {
			poll.Advance(PollStateOpen)
		})
	})
}
