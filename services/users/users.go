package users

import (
	"fmt"
	"log"

	"votebot/clients"
)

// UsersService resolves voter ids to display names against a roster snapshot
// fetched once at startup. The snapshot is read-only after construction, so
// concurrent poll goroutines can resolve names without locking.
type UsersService struct {
	botUserID string
	names     map[string]string
}

func NewUsersService(botUserID string, roster []clients.SlackUser) *UsersService {
	names := make(map[string]string, len(roster))
	for _, user := range roster {
		names[user.ID] = bestDisplayName(user)
	}

	log.Printf("📋 Loaded roster snapshot with %d users", len(names))
	return &UsersService{
		botUserID: botUserID,
		names:     names,
	}
}

// DisplayName resolves a single user id. Ids missing from the roster resolve
// to a mention placeholder instead of failing the tally.
func (s *UsersService) DisplayName(userID string) string {
	if name, exists := s.names[userID]; exists {
		return name
	}

	log.Printf("⚠️ User %s not found in roster snapshot", userID)
	return fmt.Sprintf("<@%s>", userID)
}

// DisplayNames resolves a list of voter ids in order, dropping the bot's own
// id and duplicate entries.
func (s *UsersService) DisplayNames(userIDs []string) []string {
	seen := make(map[string]bool, len(userIDs))
	names := make([]string, 0, len(userIDs))
	for _, userID := range userIDs {
		if userID == s.botUserID || seen[userID] {
			continue
		}
		seen[userID] = true
		names = append(names, s.DisplayName(userID))
	}
	return names
}

// bestDisplayName extracts the best available display name from a Slack user object
func bestDisplayName(user clients.SlackUser) string {
	// Priority: DisplayName > RealName > Name > ID
	if user.Profile.DisplayName != "" {
		return user.Profile.DisplayName
	}
	if user.Profile.RealName != "" {
		return user.Profile.RealName
	}
	if user.Name != "" {
		return user.Name
	}
	return user.ID
}
