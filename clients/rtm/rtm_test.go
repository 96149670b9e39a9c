package rtm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"votebot/core"
	"votebot/models"
)

var upgrader = websocket.Upgrader{}

// newRTMServer serves a websocket endpoint that runs serve on each connection.
func newRTMServer(t *testing.T, serve func(conn *websocket.Conn)) string {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		serve(conn)
	}))
	t.Cleanup(server.Close)

	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestListener_ForwardsFramesInOrder(t *testing.T) {
	url := newRTMServer(t, func(conn *websocket.Conn) {
		frames := []models.MessageEvent{
			{Type: "hello"},
			{Type: "message", Channel: "D123", User: "U1", Text: "first :+1:"},
			{Type: "message", Channel: "D123", User: "U2", Text: "second"},
		}
		for _, frame := range frames {
			require.NoError(t, conn.WriteJSON(frame))
		}
	})

	var mu sync.Mutex
	var received []models.MessageEvent
	shutdown := core.NewSignal()
	listener := NewListener(func(event models.MessageEvent) {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, event)
	}, shutdown)

	err := listener.Listen(context.Background(), url)

	// Server dropping the connection is a transport failure.
	require.Error(t, err)
	assert.True(t, shutdown.Resolved(), "transport failure must resolve the shutdown signal")

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 3)
	assert.Equal(t, "hello", received[0].Type)
	assert.Equal(t, "first :+1:", received[1].Text)
	assert.Equal(t, "second", received[2].Text)
}

func TestListener_ShutdownStopsListening(t *testing.T) {
	connected := make(chan struct{})
	url := newRTMServer(t, func(conn *websocket.Conn) {
		close(connected)
		// Keep the connection open until the client closes it.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})

	shutdown := core.NewSignal()
	listener := NewListener(func(models.MessageEvent) {}, shutdown)

	errCh := make(chan error, 1)
	go func() {
		errCh <- listener.Listen(context.Background(), url)
	}()

	select {
	case <-connected:
	case <-time.After(5 * time.Second):
		t.Fatal("listener never connected")
	}
	shutdown.Resolve()

	select {
	case err := <-errCh:
		assert.NoError(t, err, "shutdown-initiated stop is not an error")
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not stop after shutdown")
	}
}

func TestListener_DialFailure(t *testing.T) {
	shutdown := core.NewSignal()
	listener := NewListener(func(models.MessageEvent) {}, shutdown)

	err := listener.Listen(context.Background(), "ws://127.0.0.1:1/rtm")

	require.Error(t, err)
}
