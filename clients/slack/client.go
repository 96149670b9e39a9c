package slack

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"votebot/clients"
)

// SlackClient implements the clients.SlackClient interface using the slack-go/slack SDK
type SlackClient struct {
	*slack.Client
}

// NewSlackClient creates a new Slack client with the provided auth token
func NewSlackClient(authToken string) clients.SlackClient {
	return &SlackClient{
		Client: slack.New(authToken),
	}
}

// AuthTest verifies the bot token and returns information about the bot
func (c *SlackClient) AuthTest() (*clients.SlackAuthTestResponse, error) {
	response, err := c.Client.AuthTest()
	if err != nil {
		return nil, err
	}

	return &clients.SlackAuthTestResponse{
		UserID: response.UserID,
		TeamID: response.TeamID,
	}, nil
}

// ConnectRTMContext calls rtm.connect and returns the bot identity together
// with the websocket URL the event stream is served on
func (c *SlackClient) ConnectRTMContext(ctx context.Context) (*clients.SlackRTMConnection, error) {
	info, wsURL, err := c.Client.ConnectRTMContext(ctx)
	if err != nil {
		return nil, err
	}
	if info.User == nil {
		return nil, fmt.Errorf("rtm.connect response carries no self identity")
	}

	return &clients.SlackRTMConnection{
		BotUserID: info.User.ID,
		URL:       wsURL,
	}, nil
}

// ListUsersContext fetches the full workspace roster
func (c *SlackClient) ListUsersContext(ctx context.Context) ([]clients.SlackUser, error) {
	users, err := c.Client.GetUsersContext(ctx)
	if err != nil {
		return nil, err
	}

	// Convert SDK users to our custom users
	var customUsers []clients.SlackUser
	for _, user := range users {
		customUsers = append(customUsers, clients.SlackUser{
			ID:   user.ID,
			Name: user.Name,
			Profile: clients.SlackUserProfile{
				DisplayName: user.Profile.DisplayName,
				RealName:    user.Profile.RealName,
			},
		})
	}

	return customUsers, nil
}

// ListChannelsContext fetches all public and private channels the bot can
// see, following pagination cursors until the listing is exhausted
func (c *SlackClient) ListChannelsContext(ctx context.Context) ([]clients.SlackChannel, error) {
	var customChannels []clients.SlackChannel

	params := &slack.GetConversationsParameters{
		Types:           []string{"public_channel", "private_channel"},
		ExcludeArchived: true,
	}
	for {
		channels, nextCursor, err := c.Client.GetConversationsContext(ctx, params)
		if err != nil {
			return nil, err
		}

		for _, channel := range channels {
			customChannels = append(customChannels, clients.SlackChannel{
				ID:   channel.ID,
				Name: channel.Name,
			})
		}

		if nextCursor == "" {
			return customChannels, nil
		}
		params.Cursor = nextCursor
	}
}

// PostMessage sends a message to a Slack channel
func (c *SlackClient) PostMessage(
	channelID string,
	options ...clients.SlackMessageOption,
) (*clients.SlackPostMessageResponse, error) {
	// Convert our custom options to SDK options
	var config clients.SlackMessageConfig
	for _, opt := range options {
		opt.Apply(&config)
	}

	var sdkOptions []slack.MsgOption
	if config.Text != "" {
		sdkOptions = append(sdkOptions, slack.MsgOptionText(config.Text, false))
	}
	if config.Username != "" {
		sdkOptions = append(sdkOptions, slack.MsgOptionUsername(config.Username))
	}
	if config.IconEmoji != "" {
		sdkOptions = append(sdkOptions, slack.MsgOptionIconEmoji(config.IconEmoji))
	}
	if len(config.Attachments) > 0 {
		var sdkAttachments []slack.Attachment
		for _, attachment := range config.Attachments {
			var sdkFields []slack.AttachmentField
			for _, field := range attachment.Fields {
				sdkFields = append(sdkFields, slack.AttachmentField{
					Title: field.Title,
					Value: field.Value,
					Short: field.Short,
				})
			}
			sdkAttachments = append(sdkAttachments, slack.Attachment{
				Title:  attachment.Title,
				Text:   attachment.Text,
				Fields: sdkFields,
			})
		}
		sdkOptions = append(sdkOptions, slack.MsgOptionAttachments(sdkAttachments...))
	}

	channel, timestamp, err := c.Client.PostMessage(channelID, sdkOptions...)
	if err != nil {
		return nil, err
	}

	return &clients.SlackPostMessageResponse{
		Channel:   channel,
		Timestamp: timestamp,
	}, nil
}

// DeleteMessage deletes a message from a Slack channel
func (c *SlackClient) DeleteMessage(item clients.SlackItemRef) error {
	_, _, err := c.Client.DeleteMessage(item.Channel, item.Timestamp)
	return err
}

// AddReaction adds a reaction to a message
func (c *SlackClient) AddReaction(name string, item clients.SlackItemRef) error {
	sdkItem := slack.ItemRef{
		Channel:   item.Channel,
		Timestamp: item.Timestamp,
	}
	return c.Client.AddReaction(name, sdkItem)
}

// GetReactions gets the reactions on a message
func (c *SlackClient) GetReactions(
	item clients.SlackItemRef,
	params clients.SlackGetReactionsParameters,
) ([]clients.SlackItemReaction, error) {
	sdkItem := slack.ItemRef{
		Channel:   item.Channel,
		Timestamp: item.Timestamp,
	}
	sdkParams := slack.GetReactionsParameters{Full: params.Full}

	reactions, err := c.Client.GetReactions(sdkItem, sdkParams)
	if err != nil {
		return nil, err
	}

	// Convert SDK reactions to our custom reactions
	var customReactions []clients.SlackItemReaction
	for _, reaction := range reactions {
		customReactions = append(customReactions, clients.SlackItemReaction{
			Name:  reaction.Name,
			Users: reaction.Users,
		})
	}

	return customReactions, nil
}
