package socket

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/JayByRP/shield/core"
)

var (
	pingInterval = 30 * time.Second
	writeTimeout = 10 * time.Second
)

// manager owns the set of live viewer connections. No other component
// touches it: subscribe, unsubscribe, fan-out and the liveness sweep all
// go through the mutex-guarded map.
type manager struct {
	rdb *redis.Client

	mu      sync.Mutex
	clients map[*websocket.Conn]*client
}

type client struct {
	// alive is reset by the sweep and set again by the pong handler.
	// A connection that misses a full cycle is dropped.
	alive bool
}

// NewManager creates a socket manager and starts its pump and sweep routines
func NewManager(rdb *redis.Client) core.SocketManager {
	m := newManager(rdb)
	go m.pumpRoutine(context.Background())
	go m.sweepRoutine(context.Background())
	return m
}

func newManager(rdb *redis.Client) *manager {
	return &manager{
		rdb:     rdb,
		clients: make(map[*websocket.Conn]*client),
	}
}

// Subscribe registers a viewer connection
func (m *manager) Subscribe(conn *websocket.Conn) {
	conn.SetPongHandler(func(string) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		if cl, ok := m.clients[conn]; ok {
			cl.alive = true
		}
		return nil
	})

	m.mu.Lock()
	m.clients[conn] = &client{alive: true}
	m.mu.Unlock()

	slog.Info(
		"viewer subscribed",
		slog.String("module", "socket"),
	)
}

// Unsubscribe removes a viewer connection
func (m *manager) Unsubscribe(conn *websocket.Conn) {
	m.mu.Lock()
	delete(m.clients, conn)
	m.mu.Unlock()
}

// Count returns the number of live viewer connections
func (m *manager) Count() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.clients))
}

func (m *manager) snapshot() []*websocket.Conn {
	m.mu.Lock()
	defer m.mu.Unlock()
	conns := make([]*websocket.Conn, 0, len(m.clients))
	for conn := range m.clients {
		conns = append(conns, conn)
	}
	return conns
}

func (m *manager) drop(conn *websocket.Conn) {
	m.mu.Lock()
	_, ok := m.clients[conn]
	delete(m.clients, conn)
	m.mu.Unlock()
	if ok {
		conn.Close()
	}
}

// pumpRoutine relays every payload on the roster channel to all viewers
func (m *manager) pumpRoutine(ctx context.Context) {
	pubsub := m.rdb.Subscribe(ctx, core.RosterChannel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		slog.Error(
			fmt.Sprintf("failed to subscribe to roster channel: %v", err),
			slog.String("module", "socket"),
		)
		return
	}

	for msg := range pubsub.Channel() {
		m.broadcast([]byte(msg.Payload))
	}
}

// broadcast delivers the payload to every viewer. Each delivery is
// failure-isolated: a dead viewer is dropped, the rest still receive.
func (m *manager) broadcast(payload []byte) {
	for _, conn := range m.snapshot() {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		err := conn.WriteMessage(websocket.TextMessage, payload)
		if err != nil {
			slog.Error(
				fmt.Sprintf("failed to deliver event: %v", err),
				slog.String("module", "socket"),
			)
			m.drop(conn)
		}
	}
}

func (m *manager) sweepRoutine(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

// sweep drops every connection that did not answer the previous ping,
// then pings the rest for the next cycle.
func (m *manager) sweep() {
	m.mu.Lock()
	var stale []*websocket.Conn
	var live []*websocket.Conn
	for conn, cl := range m.clients {
		if !cl.alive {
			stale = append(stale, conn)
			continue
		}
		cl.alive = false
		live = append(live, conn)
	}
	m.mu.Unlock()

	for _, conn := range stale {
		slog.Info(
			"dropping unresponsive viewer",
			slog.String("module", "socket"),
		)
		m.drop(conn)
	}

	for _, conn := range live {
		err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
		if err != nil {
			m.drop(conn)
		}
	}
}
