package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const sessionCookie = "fk_session"

// SessionMiddleware tags first-time visitors with a session cookie so
// dev-time searches can be correlated in the logs.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, err := c.Cookie(sessionCookie); err != nil {
				c.SetCookie(&http.Cookie{
					Name:     sessionCookie,
					Value:    uuid.New().String(),
					Path:     "/",
					HttpOnly: true,
				})
			}
			return next(c)
		}
	}
}
