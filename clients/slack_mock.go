package clients

import "context"

// MockSlackClient implements SlackClient interface for testing
type MockSlackClient struct {
	// Bot operations
	MockAuthTest          func() (*SlackAuthTestResponse, error)
	MockConnectRTMContext func(ctx context.Context) (*SlackRTMConnection, error)

	// Workspace reference data
	MockListUsersContext    func(ctx context.Context) ([]SlackUser, error)
	MockListChannelsContext func(ctx context.Context) ([]SlackChannel, error)

	// Message operations
	MockPostMessage   func(channelID string, options ...SlackMessageOption) (*SlackPostMessageResponse, error)
	MockDeleteMessage func(item SlackItemRef) error

	// Reaction operations
	MockAddReaction  func(name string, item SlackItemRef) error
	MockGetReactions func(item SlackItemRef, params SlackGetReactionsParameters) ([]SlackItemReaction, error)
}

// NewMockSlackClient creates a new mock Slack client
func NewMockSlackClient() *MockSlackClient {
	return &MockSlackClient{}
}

// AuthTest implements SlackClient interface for testing
func (m *MockSlackClient) AuthTest() (*SlackAuthTestResponse, error) {
	if m.MockAuthTest != nil {
		return m.MockAuthTest()
	}

	// Default mock response for testing
	return &SlackAuthTestResponse{
		UserID: "U0BOT",
		TeamID: "T123456789",
	}, nil
}

// ConnectRTMContext implements SlackClient interface for testing
func (m *MockSlackClient) ConnectRTMContext(ctx context.Context) (*SlackRTMConnection, error) {
	if m.MockConnectRTMContext != nil {
		return m.MockConnectRTMContext(ctx)
	}

	// Default mock response
	return &SlackRTMConnection{
		BotUserID: "U0BOT",
		URL:       "wss://example.com/rtm",
	}, nil
}

// ListUsersContext implements SlackClient interface for testing
func (m *MockSlackClient) ListUsersContext(ctx context.Context) ([]SlackUser, error) {
	if m.MockListUsersContext != nil {
		return m.MockListUsersContext(ctx)
	}

	return []SlackUser{}, nil
}

// ListChannelsContext implements SlackClient interface for testing
func (m *MockSlackClient) ListChannelsContext(ctx context.Context) ([]SlackChannel, error) {
	if m.MockListChannelsContext != nil {
		return m.MockListChannelsContext(ctx)
	}

	return []SlackChannel{}, nil
}

// PostMessage implements SlackClient interface for testing
func (m *MockSlackClient) PostMessage(
	channelID string,
	options ...SlackMessageOption,
) (*SlackPostMessageResponse, error) {
	if m.MockPostMessage != nil {
		return m.MockPostMessage(channelID, options...)
	}

	// Default mock response
	return &SlackPostMessageResponse{
		Channel:   channelID,
		Timestamp: "1234567890.123456",
	}, nil
}

// DeleteMessage implements SlackClient interface for testing
func (m *MockSlackClient) DeleteMessage(item SlackItemRef) error {
	if m.MockDeleteMessage != nil {
		return m.MockDeleteMessage(item)
	}
	return nil
}

// AddReaction implements SlackClient interface for testing
func (m *MockSlackClient) AddReaction(name string, item SlackItemRef) error {
	if m.MockAddReaction != nil {
		return m.MockAddReaction(name, item)
	}
	return nil
}

// GetReactions implements SlackClient interface for testing
func (m *MockSlackClient) GetReactions(
	item SlackItemRef,
	params SlackGetReactionsParameters,
) ([]SlackItemReaction, error) {
	if m.MockGetReactions != nil {
		return m.MockGetReactions(item, params)
	}

	return []SlackItemReaction{}, nil
}
