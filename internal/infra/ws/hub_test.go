package ws

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialTestConn upgrades one server-side connection and returns both ends.
func dialTestConn(t *testing.T) (server *websocket.Conn, client *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	done := make(chan *websocket.Conn, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		done <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	select {
	case server = <-done:
	case <-time.After(time.Second):
		t.Fatal("server side connection was not established")
	}
	t.Cleanup(func() { server.Close() })

	return server, client
}

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_PushToUser_DeliversFrame(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()

	serverConn, clientConn := dialTestConn(t)
	remove := hub.Add(userID, serverConn)
	defer remove()

	hub.PushToUser(userID, "email.verified", map[string]string{"email": "alice@example.com"})

	require.NoError(t, clientConn.SetReadDeadline(time.Now().Add(time.Second)))
	_, data, err := clientConn.ReadMessage()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "email.verified", event.EventName)
	assert.Equal(t, map[string]any{"email": "alice@example.com"}, event.Message)
}

func TestHub_PushToUser_IgnoresOtherUsers(t *testing.T) {
	hub := newTestHub()

	serverConn, clientConn := dialTestConn(t)
	remove := hub.Add(uuid.New(), serverConn)
	defer remove()

	hub.PushToUser(uuid.New(), "email.verified", nil)

	require.NoError(t, clientConn.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := clientConn.ReadMessage()
	assert.Error(t, err)
}

func TestHub_PushToAll_ReachesEveryConnection(t *testing.T) {
	hub := newTestHub()

	serverA, clientA := dialTestConn(t)
	serverB, clientB := dialTestConn(t)
	removeA := hub.Add(uuid.New(), serverA)
	defer removeA()
	removeB := hub.Add(uuid.New(), serverB)
	defer removeB()

	hub.PushToAll("maintenance", "upcoming")

	for _, client := range []*websocket.Conn{clientA, clientB} {
		require.NoError(t, client.SetReadDeadline(time.Now().Add(time.Second)))
		_, data, err := client.ReadMessage()
		require.NoError(t, err)

		var event Event
		require.NoError(t, json.Unmarshal(data, &event))
		assert.Equal(t, "maintenance", event.EventName)
	}
}

func TestHub_Remove_StopsDelivery(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()

	serverConn, clientConn := dialTestConn(t)
	remove := hub.Add(userID, serverConn)
	remove()

	hub.PushToUser(userID, "email.verified", nil)

	require.NoError(t, clientConn.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := clientConn.ReadMessage()
	assert.Error(t, err)
}

func TestHub_PushToUser_NoConnections(t *testing.T) {
	hub := newTestHub()

	// Pushing with nobody connected must not panic.
	hub.PushToUser(uuid.New(), "email.verified", nil)
	hub.PushToAll("maintenance", nil)
}
