// File: internal/handler/auth/login.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fitlog/internal/database"
	"fitlog/internal/forms"
	"fitlog/internal/service"
	"fitlog/internal/session"
	"fitlog/internal/view"
	"fitlog/internal/worker"

	"github.com/labstack/echo/v4"
)

var authenticate = service.Authenticate

// LoginPageHandler 顯示登入表單
func LoginPageHandler(sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "login.html", view.LoginPage{Flashes: sm.PopFlashes(c)})
	}
}

// LoginHandler 驗證 Email 與密碼並建立 session
// 查無帳號與密碼錯誤顯示同一訊息；失敗次數記入節流計數器。
func LoginHandler(db database.DB, sm *session.Manager, throttle *service.LoginThrottle, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form forms.LoginForm
		if err := c.Bind(&form); err != nil {
			return c.Render(http.StatusBadRequest, "login.html",
				view.LoginPage{Errors: forms.FieldErrors(err)})
		}
		if err := c.Validate(&form); err != nil {
			return c.Render(http.StatusBadRequest, "login.html",
				view.LoginPage{Errors: forms.FieldErrors(err), Form: form})
		}

		email := strings.ToLower(form.Email)

		blocked, err := throttle.Blocked(c.Request().Context(), email)
		if err != nil {
			// redis 故障時不擋登入
			c.Logger().Warnf("login throttle: %v", err)
		}
		if blocked {
			return c.Render(http.StatusTooManyRequests, "login.html",
				view.LoginPage{Message: "Too many failed attempts. Try again later.", Form: form})
		}

		user, err := authenticate(c.Request().Context(), db, email, form.Password)
		if errors.Is(err, service.ErrInvalidCredentials) {
			wp.Submit(func() {
				_ = throttle.RecordFailure(context.Background(), email)
			})
			return c.Render(http.StatusUnauthorized, "login.html",
				view.LoginPage{Message: "Invalid email or password.", Form: form})
		}
		if err != nil {
			return err
		}

		wp.Submit(func() {
			_ = throttle.Reset(context.Background(), email)
		})
		if err := sm.LogIn(c, user.ID); err != nil {
			return err
		}
		return c.Redirect(http.StatusFound, "/dashboard")
	}
}
