package middleware

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"finance-view/internal/config"
	"finance-view/internal/errors"
	"finance-view/internal/handlers"
	"finance-view/internal/session"

	"github.com/labstack/echo/v4"
)

// SessionTokens issues and validates session cookies
type SessionTokens interface {
	Issue(sessionID string) (string, time.Time, error)
	Validate(token string) (string, error)
}

// Session resolves the caller's session from the signed cookie and stores its
// id in the echo context. Missing, expired or tampered cookies start a fresh
// session. The cookie is re-issued on every request so its expiry slides.
func Session(tokens SessionTokens, cfg config.SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := ""
			if cookie, err := c.Cookie(cfg.CookieName); err == nil {
				sessionID, err = tokens.Validate(cookie.Value)
				if err != nil {
					logRejectedCookie(c, err)
				}
			}
			if sessionID == "" {
				sessionID = session.NewSessionID()
			}

			token, expiresAt, err := tokens.Issue(sessionID)
			if err != nil {
				slog.Error("Failed to issue session cookie",
					"trace_id", GetTraceID(c),
					"error", err.Error(),
				)
				return handlers.SendError(c, errors.SessionUnavailable)
			}

			c.SetCookie(&http.Cookie{
				Name:     cfg.CookieName,
				Value:    token,
				Path:     "/",
				Expires:  expiresAt,
				HttpOnly: true,
				Secure:   cfg.SecureCookie,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(handlers.SessionIDContextKey, sessionID)

			return next(c)
		}
	}
}

func logRejectedCookie(c echo.Context, err error) {
	level := slog.LevelWarn
	if stderrors.Is(err, session.ErrExpiredToken) || stderrors.Is(err, session.ErrEmptyToken) {
		level = slog.LevelDebug
	}
	slog.Log(c.Request().Context(), level, "Session cookie rejected, starting a new session",
		"trace_id", GetTraceID(c),
		"error", err.Error(),
	)
}
