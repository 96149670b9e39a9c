package services

import (
	"github.com/samber/mo"

	"votebot/models"
)

// PollsService defines the interface for the registry of concurrently open polls
type PollsService interface {
	Open(poll *models.Poll) error
	Close(messageTS string)
	Get(messageTS string) mo.Option[*models.Poll]
	OpenCount() int
}

// UsersService defines the interface for display-name resolution against the
// workspace roster snapshot
type UsersService interface {
	DisplayName(userID string) string
	DisplayNames(userIDs []string) []string
}
