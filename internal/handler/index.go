package handler

import (
	"net/http"

	"fitlog/internal/session"
	"fitlog/internal/view"

	"github.com/labstack/echo/v4"
)

// IndexHandler 渲染登陸頁。
func IndexHandler(sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, loggedIn := sm.CurrentUserID(c)
		return c.Render(http.StatusOK, "index.html", view.IndexPage{
			Flashes:  sm.PopFlashes(c),
			LoggedIn: loggedIn,
		})
	}
}
