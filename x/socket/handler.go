// Package socket pushes roster change events to live viewer connections
package socket

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/JayByRP/shield/core"
)

var tracer = otel.Tracer("socket")

// Handler is the interface for handling websocket connections
type Handler interface {
	Connect(c echo.Context) error
}

type handler struct {
	manager core.SocketManager
}

// NewHandler creates a new handler
func NewHandler(manager core.SocketManager) Handler {
	return &handler{manager: manager}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Connect upgrades the request and keeps the viewer registered until it
// disconnects. Viewers are anonymous; the read loop only services control
// frames and notices the close.
func (h handler) Connect(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			fmt.Sprintf("failed to upgrade websocket: %v", err),
			slog.String("module", "socket"),
		)
		return err
	}
	defer ws.Close()

	h.manager.Subscribe(ws)
	defer h.manager.Unsubscribe(ws)

	for {
		_, _, err := ws.ReadMessage()
		if err != nil {
			break
		}
	}

	return nil
}
