package clients

// SlackAuthTestResponse represents the response from Slack's auth.test API
type SlackAuthTestResponse struct {
	UserID string
	TeamID string
}

// SlackRTMConnection represents the response from Slack's rtm.connect API:
// the bot's own identity plus the websocket URL to dial for the event stream.
type SlackRTMConnection struct {
	BotUserID string
	URL       string
}

// SlackUser represents a Slack user
type SlackUser struct {
	ID      string
	Name    string
	Profile SlackUserProfile
}

// SlackUserProfile represents a Slack user's profile information
type SlackUserProfile struct {
	DisplayName string
	RealName    string
}

// SlackChannel represents a Slack conversation (public or private channel)
type SlackChannel struct {
	ID   string
	Name string
}

// SlackPostMessageResponse represents the response from posting a message to Slack
type SlackPostMessageResponse struct {
	Channel   string
	Timestamp string
}

// SlackItemRef represents a reference to a Slack message item
type SlackItemRef struct {
	Channel   string
	Timestamp string
}

// SlackGetReactionsParameters represents parameters for getting reactions
type SlackGetReactionsParameters struct {
	Full bool
}

// SlackItemReaction represents a reaction on a Slack message
type SlackItemReaction struct {
	Name  string
	Users []string
}

// SlackAttachmentField is one titled field inside a rich attachment
type SlackAttachmentField struct {
	Title string
	Value string
	Short bool
}

// SlackAttachment represents a rich attachment on a Slack message
type SlackAttachment struct {
	Title  string
	Text   string
	Fields []SlackAttachmentField
}

// SlackMessageConfig collects the message parameters built up by options
type SlackMessageConfig struct {
	Text        string
	Username    string
	IconEmoji   string
	Attachments []SlackAttachment
}

// SlackMessageOption configures one aspect of an outgoing message
type SlackMessageOption func(*SlackMessageConfig)

// Apply applies the option to the given config
func (o SlackMessageOption) Apply(config *SlackMessageConfig) {
	o(config)
}

// SlackMessageWithText sets the plain-text body of the message
func SlackMessageWithText(text string) SlackMessageOption {
	return func(config *SlackMessageConfig) {
		config.Text = text
	}
}

// SlackMessageWithUsername sets the display name the message is posted under
func SlackMessageWithUsername(username string) SlackMessageOption {
	return func(config *SlackMessageConfig) {
		config.Username = username
	}
}

// SlackMessageWithIconEmoji sets the emoji used as the message author's icon
func SlackMessageWithIconEmoji(emoji string) SlackMessageOption {
	return func(config *SlackMessageConfig) {
		config.IconEmoji = emoji
	}
}

// SlackMessageWithAttachments sets the rich attachments of the message
func SlackMessageWithAttachments(attachments ...SlackAttachment) SlackMessageOption {
	return func(config *SlackMessageConfig) {
		config.Attachments = attachments
	}
}
