package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-hub.done
	})
	return hub
}

func fakeClient(hub *Hub, mentorshipID int64) *Client {
	c := &Client{hub: hub, send: make(chan []byte, 4), mentorshipID: mentorshipID, remoteAddr: "test"}
	hub.register <- c
	return c
}

func receive(t *testing.T, c *Client) OccupancyEvent {
	t.Helper()
	select {
	case data := <-c.send:
		var event OccupancyEvent
		require.NoError(t, json.Unmarshal(data, &event))
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
		return OccupancyEvent{}
	}
}

func TestHub_RoutesByMentorship(t *testing.T) {
	hub := startHub(t)

	follower := fakeClient(hub, 7)
	other := fakeClient(hub, 8)
	firehose := fakeClient(hub, AllMentorships)

	hub.PublishOccupancy(7, 2, 5)

	event := receive(t, follower)
	assert.Equal(t, EventTypeOccupancy, event.Type)
	assert.Equal(t, int64(7), event.MentorshipID)
	assert.Equal(t, "2/5", event.Limit)

	assert.Equal(t, int64(7), receive(t, firehose).MentorshipID)

	select {
	case <-other.send:
		t.Fatal("subscriber of another mentorship received the event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub := startHub(t)
	c := fakeClient(hub, 3)

	require.Eventually(t, func() bool { return hub.ClientsCount(3) == 1 }, time.Second, 5*time.Millisecond)

	hub.unregister <- c
	_, ok := <-c.send
	assert.False(t, ok)
	assert.Eventually(t, func() bool { return hub.ClientsCount(3) == 0 }, time.Second, 5*time.Millisecond)
}

func TestHub_PublishAfterStopDoesNotBlock(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	cancel()
	<-hub.done

	for i := 0; i < 100; i++ {
		hub.PublishOccupancy(1, i, 100)
	}
}

func TestHandler_EndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := startHub(t)

	router := gin.New()
	router.GET("/ws", NewHandler(hub, []string{"http://localhost:5173"}, zerolog.Nop()).HandleConnection)
	server := httptest.NewServer(router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?mentorshipId=9"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientsCount(9) == 1 }, 2*time.Second, 10*time.Millisecond)
	hub.PublishOccupancy(9, 1, 3)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event OccupancyEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, "1/3", event.Limit)
	assert.Equal(t, 3, event.Max)
}

func TestHandler_RejectsBadInput(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := startHub(t)

	router := gin.New()
	router.GET("/ws", NewHandler(hub, []string{"http://localhost:5173"}, zerolog.Nop()).HandleConnection)
	server := httptest.NewServer(router)
	defer server.Close()

	base := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"

	_, resp, err := websocket.DefaultDialer.Dial(base+"?mentorshipId=abc", nil)
	require.Error(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	header := map[string][]string{"Origin": {"http://evil.example"}}
	_, resp, err = websocket.DefaultDialer.Dial(base, header)
	require.Error(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}
