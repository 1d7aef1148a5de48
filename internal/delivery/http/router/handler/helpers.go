package handler

import (
	"net/http"
	"strconv"

	deliverycontext "github.com/AZHIK/africa-soko-backend/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// currentUserID reads the authenticated user's ID placed on the context by
// the auth middleware. Routes calling this must sit behind Authenticate.
func currentUserID(c echo.Context) int64 {
	id, _ := c.Get(string(deliverycontext.KeyUserID)).(int64)

	return id
}

// paramID parses a positive int64 path parameter.
func paramID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}

	return id, nil
}

// queryInt parses an optional integer query parameter with a fallback.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}

	return value
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
