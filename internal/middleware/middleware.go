package middleware

import (
	"net/http"

	"fitlog/internal/session"

	"github.com/labstack/echo/v4"
)

const ContextUserIDKey = "user_id"

// RequireAuth 驗證 session 中的登入身分，匿名請求一律導向登入頁。
func RequireAuth(sm *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := sm.CurrentUserID(c)
			if !ok {
				return c.Redirect(http.StatusFound, "/login")
			}
			c.Set(ContextUserIDKey, userID)
			return next(c)
		}
	}
}

// UserID 取出 RequireAuth 放入 context 的使用者編號。
func UserID(c echo.Context) int {
	id, _ := c.Get(ContextUserIDKey).(int)
	return id
}
