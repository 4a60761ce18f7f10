package handlers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrNoSession is returned when the session middleware did not run
var ErrNoSession = fmt.Errorf("no session")

// getSessionID extracts the session id set by the session middleware
func getSessionID(c echo.Context) (string, error) {
	sessionID, ok := c.Get(SessionIDContextKey).(string)
	if !ok || sessionID == "" {
		return "", ErrNoSession
	}
	return sessionID, nil
}

// getUUIDParam parses a path parameter as a UUID
func getUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
