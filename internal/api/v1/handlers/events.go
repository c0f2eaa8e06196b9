package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"suomicast/internal/api/middleware"
	"suomicast/internal/app/refresh"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// EventSource produces refresh events for streaming to clients
type EventSource interface {
	Subscribe() (<-chan refresh.Event, func())
}

// EventsHandler streams refresh events over a websocket so clients learn
// about newly staged episodes without polling
type EventsHandler struct {
	source   EventSource
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(source EventSource, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{
		source: source,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The API already answers cross-origin requests; the socket
			// carries no credentials.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Stream handles GET /ws/events
func (h *EventsHandler) Stream(c *gin.Context) {
	requestID := middleware.GetRequestID(c)
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err, "request_id", requestID)
		return
	}

	events, cancel := h.source.Subscribe()
	defer cancel()
	defer conn.Close()

	// Read pump: discard client frames, notice disconnects.
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(event); err != nil {
				h.logger.Debug("websocket write failed", "error", err, "request_id", requestID)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
