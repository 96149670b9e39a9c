package models

import "strings"

// MessageEvent is one inbound RTM frame. Only the fields the router
// classifies on are decoded; everything else in the frame is ignored.
type MessageEvent struct {
	Type    string `json:"type"`
	SubType string `json:"subtype,omitempty"`
	Channel string `json:"channel"`
	User    string `json:"user"`
	Text    string `json:"text"`
	TS      string `json:"ts"`
}

// IsDirectMessage reports whether the event happened in a direct-message
// conversation. Slack DM channel ids start with "D".
func (e MessageEvent) IsDirectMessage() bool {
	return strings.HasPrefix(e.Channel, "D")
}

// IsPlainMessage reports whether the event is an ordinary user message, as
// opposed to an edit, join notice, bot message or other subtyped event.
func (e MessageEvent) IsPlainMessage() bool {
	return e.Type == "message" && e.SubType == ""
}
