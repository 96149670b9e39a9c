// Package rtm implements the inbound event transport: a websocket connection
// to Slack's RTM endpoint that decodes JSON frames and hands them to the
// event queue.
package rtm

import (
	"context"
	"fmt"
	"log"

	"github.com/gorilla/websocket"

	"votebot/core"
	"votebot/models"
)

// Listener reads RTM frames off the websocket and forwards them, in receipt
// order, to the handler. A transport failure resolves the shutdown signal so
// in-flight polls abort gracefully instead of hanging.
type Listener struct {
	handler  func(models.MessageEvent)
	shutdown *core.Signal
}

// NewListener creates a listener that forwards every decoded frame to handler.
func NewListener(handler func(models.MessageEvent), shutdown *core.Signal) *Listener {
	return &Listener{
		handler:  handler,
		shutdown: shutdown,
	}
}

// Listen dials the RTM websocket URL and blocks until the connection closes
// or the shutdown signal resolves. A shutdown-initiated stop returns nil; a
// transport failure resolves the shutdown signal and returns the error.
func (l *Listener) Listen(ctx context.Context, wsURL string) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to RTM websocket: %w", err)
	}
	defer conn.Close()
	log.Printf("✅ Connected to RTM websocket")

	// Close the socket once shutdown resolves so the blocked read returns.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-l.shutdown.Done():
			closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			if err := conn.WriteMessage(websocket.CloseMessage, closeMsg); err != nil {
				log.Printf("⚠️ Failed to send close message: %v", err)
			}
			conn.Close()
		case <-done:
		}
	}()

	for {
		var event models.MessageEvent
		if err := conn.ReadJSON(&event); err != nil {
			if l.shutdown.Resolved() {
				log.Printf("🔌 RTM connection closed after shutdown")
				return nil
			}
			l.shutdown.Resolve()
			return fmt.Errorf("RTM read failed: %w", err)
		}

		l.handler(event)
	}
}
