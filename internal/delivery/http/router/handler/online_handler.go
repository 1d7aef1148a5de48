package handler

import (
	"net/http"
	"sync"

	"github.com/AZHIK/africa-soko-backend/config"
	"github.com/AZHIK/africa-soko-backend/internal/delivery/http/response"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// OnlineHandler tracks which users hold an open WebSocket connection.
// Incoming messages are read and discarded; the connection itself is the
// presence signal.
type OnlineHandler struct {
	upgrader websocket.Upgrader

	mu     sync.RWMutex
	online map[int64]int // user id -> open connection count
}

// NewOnlineHandler builds the handler with the configured Origin allow-list.
// An empty allow-list rejects all cross-origin upgrades.
func NewOnlineHandler(cfg *config.Config) *OnlineHandler {
	var allowed []string
	if cfg.WebSocket != nil {
		allowed = cfg.WebSocket.AllowedOrigins
	}

	return &OnlineHandler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, candidate := range allowed {
					if candidate == origin || candidate == "*" {
						return true
					}
				}

				return false
			},
		},
		online: make(map[int64]int),
	}
}

// Connect upgrades the request and keeps the user marked online until the
// connection closes.
func (h *OnlineHandler) Connect(c echo.Context) error {
	userID := currentUserID(c)

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the handshake failure response.
		return nil
	}

	h.track(userID, 1)
	defer h.track(userID, -1)
	defer conn.Close()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

// Snapshot returns the IDs of currently connected users.
func (h *OnlineHandler) Snapshot(c echo.Context) error {
	h.mu.RLock()
	ids := make([]int64, 0, len(h.online))
	for id := range h.online {
		ids = append(ids, id)
	}
	h.mu.RUnlock()

	return response.Success(c, http.StatusOK, map[string]any{"online_user_ids": ids}, "")
}

func (h *OnlineHandler) track(userID int64, delta int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.online[userID] += delta
	if h.online[userID] <= 0 {
		delete(h.online, userID)
	}
}
