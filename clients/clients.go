package clients

import "context"

// SlackClient defines the interface for the Slack Web API operations the bot
// performs. Implementations live in clients/slack; tests use MockSlackClient.
type SlackClient interface {
	// Bot operations
	AuthTest() (*SlackAuthTestResponse, error)
	ConnectRTMContext(ctx context.Context) (*SlackRTMConnection, error)

	// Workspace reference data, fetched once at startup
	ListUsersContext(ctx context.Context) ([]SlackUser, error)
	ListChannelsContext(ctx context.Context) ([]SlackChannel, error)

	// Message operations
	PostMessage(channelID string, options ...SlackMessageOption) (*SlackPostMessageResponse, error)
	DeleteMessage(item SlackItemRef) error

	// Reaction operations
	AddReaction(name string, item SlackItemRef) error
	GetReactions(item SlackItemRef, params SlackGetReactionsParameters) ([]SlackItemReaction, error)
}
