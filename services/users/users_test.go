package users

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"votebot/clients"
)

func testRoster() []clients.SlackUser {
	return []clients.SlackUser{
		{ID: "U0BOT", Name: "votebot"},
		{
			ID:   "U1",
			Name: "john",
			Profile: clients.SlackUserProfile{
				DisplayName: "John Doe",
				RealName:    "Jonathan Doe",
			},
		},
		{
			ID:      "U2",
			Name:    "frank",
			Profile: clients.SlackUserProfile{RealName: "Frank Fields"},
		},
		{ID: "U3", Name: "ada"},
	}
}

func TestDisplayName(t *testing.T) {
	service := NewUsersService("U0BOT", testRoster())

	tests := []struct {
		name     string
		userID   string
		expected string
	}{
		{
			name:     "display name preferred",
			userID:   "U1",
			expected: "John Doe",
		},
		{
			name:     "real name when display name missing",
			userID:   "U2",
			expected: "Frank Fields",
		},
		{
			name:     "username when profile empty",
			userID:   "U3",
			expected: "ada",
		},
		{
			name:     "unknown id falls back to mention placeholder",
			userID:   "U404",
			expected: "<@U404>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.DisplayName(tt.userID))
		})
	}
}

func TestDisplayNames_ExcludesBot(t *testing.T) {
	service := NewUsersService("U0BOT", testRoster())

	names := service.DisplayNames([]string{"U0BOT", "U1", "U2"})

	assert.Equal(t, []string{"John Doe", "Frank Fields"}, names)
}

func TestDisplayNames_UnknownUsersStillAppear(t *testing.T) {
	service := NewUsersService("U0BOT", testRoster())

	names := service.DisplayNames([]string{"U1", "U404"})

	assert.Equal(t, []string{"John Doe", "<@U404>"}, names)
}

func TestDisplayNames_DropsDuplicates(t *testing.T) {
	service := NewUsersService("U0BOT", testRoster())

	names := service.DisplayNames([]string{"U1", "U1", "U3"})

	assert.Equal(t, []string{"John Doe", "ada"}, names)
}

func TestDisplayNames_EmptyInput(t *testing.T) {
	service := NewUsersService("U0BOT", testRoster())

	assert.Empty(t, service.DisplayNames(nil))
}
