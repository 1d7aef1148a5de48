package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SocialHandler serves the story and chat endpoints. Both are placeholders
// that keep the original response shapes until the features land; clients
// already consume these routes.
type SocialHandler struct{}

// NewSocialHandler is the constructor for SocialHandler, injected by Fx.
func NewSocialHandler() *SocialHandler {
	return &SocialHandler{}
}

// ListStories returns an empty story feed.
func (h *SocialHandler) ListStories(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "success",
		"stories": []any{},
	})
}

// CreateStory acknowledges a story post without persisting it.
func (h *SocialHandler) CreateStory(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "success",
	})
}

// ListChats returns an empty chat list.
func (h *SocialHandler) ListChats(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "success",
		"chats":  []any{},
	})
}

// SendChat acknowledges a chat message without persisting it.
func (h *SocialHandler) SendChat(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "success",
	})
}
