package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AZHIK/africa-soko-backend/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnlineHandler_TrackCountsConnections(t *testing.T) {
	h := NewOnlineHandler(&config.Config{})

	// Two tabs for user 1, one for user 2.
	h.track(1, 1)
	h.track(1, 1)
	h.track(2, 1)

	h.track(1, -1)

	assert.Equal(t, map[int64]int{1: 1, 2: 1}, h.online)

	// Closing the last connection removes the user entirely.
	h.track(1, -1)
	h.track(2, -1)

	assert.Empty(t, h.online)
}

func TestOnlineHandler_Snapshot(t *testing.T) {
	h := NewOnlineHandler(&config.Config{})
	h.track(7, 1)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/online", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Snapshot(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			OnlineUserIDs []int64 `json:"online_user_ids"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []int64{7}, body.Data.OnlineUserIDs)
}

func TestOnlineHandler_OriginAllowList(t *testing.T) {
	h := NewOnlineHandler(&config.Config{
		WebSocket: &config.WebSocketConfig{AllowedOrigins: []string{"https://app.example.com"}},
	})

	check := h.upgrader.CheckOrigin

	sameOrigin := httptest.NewRequest(http.MethodGet, "/ws/online", nil)
	assert.True(t, check(sameOrigin), "requests without an Origin header pass")

	allowed := httptest.NewRequest(http.MethodGet, "/ws/online", nil)
	allowed.Header.Set("Origin", "https://app.example.com")
	assert.True(t, check(allowed))

	denied := httptest.NewRequest(http.MethodGet, "/ws/online", nil)
	denied.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, check(denied))
}

func TestOnlineHandler_WildcardOrigin(t *testing.T) {
	h := NewOnlineHandler(&config.Config{
		WebSocket: &config.WebSocketConfig{AllowedOrigins: []string{"*"}},
	})

	req := httptest.NewRequest(http.MethodGet, "/ws/online", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	assert.True(t, h.upgrader.CheckOrigin(req))
}
