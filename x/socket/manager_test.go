package socket

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/JayByRP/shield/core"
	"github.com/JayByRP/shield/internal/testutil"
)

var rdb *redis.Client
var m *manager

func TestMain(tm *testing.M) {
	log.Println("Test Start")

	var cleanup_rdb func()
	rdb, cleanup_rdb = testutil.CreateRDB()
	defer cleanup_rdb()

	m = newManager(rdb)
	go m.pumpRoutine(context.Background())

	// give the pump a moment to establish its subscription
	time.Sleep(time.Second)

	tm.Run()

	log.Println("Test End")
}

// wsHandler registers every upgraded connection with the manager,
// the way the echo handler does in production
type wsHandler struct{}

func (h *wsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := new(websocket.Upgrader).Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade error:", err)
		return
	}
	defer c.Close()

	m.Subscribe(c)
	defer m.Unsubscribe(c)

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}

func waitForCount(t *testing.T, want int64) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if m.Count() == want {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("connection count never reached %d (now %d)", want, m.Count())
}

func TestBroadcast(t *testing.T) {

	ctx := context.Background()

	server := httptest.NewServer(&wsHandler{})
	defer server.Close()
	url := "ws" + strings.TrimPrefix(server.URL, "http")

	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer client.Close()

	waitForCount(t, 1)

	publisher := NewPublisher(rdb)
	err = publisher.Publish(ctx, core.Event{
		Action:    core.EventActionCreate,
		Name:      "Annabeth",
		Faceclaim: "Alexandra Daddario",
		Image:     "https://cdn.example.com/annabeth.png",
		Bio:       "Strategist and architect.",
	})
	assert.NoError(t, err)

	client.SetReadDeadline(time.Now().Add(10 * time.Second))
	_, payload, err := client.ReadMessage()
	if assert.NoError(t, err) {
		var event core.Event
		err = json.Unmarshal(payload, &event)
		if assert.NoError(t, err) {
			assert.Equal(t, core.EventActionCreate, event.Action)
			assert.Equal(t, "Annabeth", event.Name)
			assert.Equal(t, "https://cdn.example.com/annabeth.png", event.Image)
		}
	}

	client.Close()
	waitForCount(t, 0)
}

func TestSweep(t *testing.T) {

	server := httptest.NewServer(&wsHandler{})
	defer server.Close()
	url := "ws" + strings.TrimPrefix(server.URL, "http")

	// responsive viewer: the default ping handler answers with a pong
	healthy, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer healthy.Close()
	go func() {
		for {
			if _, _, err := healthy.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// unresponsive viewer: swallows pings instead of answering
	silent, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer silent.Close()
	silent.SetPingHandler(func(string) error { return nil })
	go func() {
		for {
			if _, _, err := silent.ReadMessage(); err != nil {
				return
			}
		}
	}()

	waitForCount(t, 2)

	// first sweep marks both as pending and pings them
	m.sweep()

	// the healthy viewer's pong has time to arrive, the silent one stays pending
	time.Sleep(time.Second)

	// second sweep drops the viewer that never answered
	m.sweep()

	waitForCount(t, 1)

	healthy.Close()
	silent.Close()
	waitForCount(t, 0)
}
