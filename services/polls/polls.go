package polls

import (
	"fmt"
	"log"
	"sync"

	"github.com/samber/mo"

	"votebot/models"
	"votebot/utils"
)

// PollsService is the in-memory registry of open polls, keyed by the
// timestamp of each poll's prompt message. It is the only state shared
// between the event router and the per-poll goroutines, so every mutation
// takes the lock. Nothing here survives a process restart.
type PollsService struct {
	mu    sync.RWMutex
	polls map[string]*models.Poll
}

func NewPollsService() *PollsService {
	return &PollsService{
		polls: make(map[string]*models.Poll),
	}
}

// Open inserts a poll into the registry. The poll must already carry the
// prompt message timestamp; inserting the same timestamp twice is an error.
func (s *PollsService) Open(poll *models.Poll) error {
	utils.AssertInvariant(poll.MessageTS != "", "poll must have a message timestamp before registration")

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.polls[poll.MessageTS]; exists {
		return fmt.Errorf("poll already open for message %s", poll.MessageTS)
	}
	s.polls[poll.MessageTS] = poll

	log.Printf("📋 Registered poll %s for message %s (%d open)", poll.ID, poll.MessageTS, len(s.polls))
	return nil
}

// Close removes a poll from the registry. Closing an unknown timestamp is a
// no-op so a poll can always be closed twice safely.
func (s *PollsService) Close(messageTS string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.polls[messageTS]; !exists {
		return
	}
	delete(s.polls, messageTS)

	log.Printf("🗑️ Removed poll for message %s (%d open)", messageTS, len(s.polls))
}

// Get looks up an open poll by its prompt message timestamp.
func (s *PollsService) Get(messageTS string) mo.Option[*models.Poll] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	poll, exists := s.polls[messageTS]
	if !exists {
		return mo.None[*models.Poll]()
	}
	return mo.Some(poll)
}

// OpenCount returns the number of currently open polls.
func (s *PollsService) OpenCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.polls)
}
