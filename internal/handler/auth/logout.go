// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"fitlog/internal/session"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 清除 session 後導向首頁。
func LogoutHandler(sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := sm.LogOut(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusFound, "/")
	}
}
