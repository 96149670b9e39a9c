package polls

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"votebot/models"
)

func newTestPoll(messageTS string) *models.Poll {
	poll := models.NewPoll("poll_test", "lunch?", []string{":+1:", ":-1:"}, "U1", time.Minute)
	poll.MessageTS = messageTS
	return poll
}

func TestPollsService_OpenAndGet(t *testing.T) {
	service := NewPollsService()
	poll := newTestPoll("111.222")

	require.NoError(t, service.Open(poll))

	found := service.Get("111.222")
	require.True(t, found.IsPresent())
	assert.Equal(t, poll, found.MustGet())
	assert.Equal(t, 1, service.OpenCount())
}

func TestPollsService_OpenDuplicateFails(t *testing.T) {
	service := NewPollsService()

	require.NoError(t, service.Open(newTestPoll("111.222")))
	err := service.Open(newTestPoll("111.222"))

	assert.Error(t, err)
	assert.Equal(t, 1, service.OpenCount())
}

func TestPollsService_OpenWithoutTimestampPanics(t *testing.T) {
	service := NewPollsService()
	poll := models.NewPoll("poll_test", "q", []string{":+1:"}, "U1", time.Minute)

	assert.Panics(t, func() {
		_ = service.Open(poll)
	})
}

func TestPollsService_CloseRemovesPoll(t *testing.T) {
	service := NewPollsService()
	require.NoError(t, service.Open(newTestPoll("111.222")))

	service.Close("111.222")

	assert.False(t, service.Get("111.222").IsPresent())
	assert.Equal(t, 0, service.OpenCount())
}

func TestPollsService_CloseUnknownIsNoOp(t *testing.T) {
	service := NewPollsService()

	service.Close("never.opened")
	service.Close("never.opened")

	assert.Equal(t, 0, service.OpenCount())
}

func TestPollsService_GetUnknownIsAbsent(t *testing.T) {
	service := NewPollsService()

	assert.False(t, service.Get("missing").IsPresent())
}

func TestPollsService_ConcurrentOpenClose(t *testing.T) {
	service := NewPollsService()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ts := fmt.Sprintf("111.%06d", n)
			if err := service.Open(newTestPoll(ts)); err != nil {
				t.Errorf("Open(%s) failed: %v", ts, err)
				return
			}
			service.Get(ts)
			service.Close(ts)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, service.OpenCount())
}
