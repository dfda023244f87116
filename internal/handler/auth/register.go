// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"fitlog/internal/database"
	"fitlog/internal/forms"
	"fitlog/internal/model"
	"fitlog/internal/service"
	"fitlog/internal/session"
	"fitlog/internal/store"
	"fitlog/internal/view"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword       = service.HashPassword
	createUser         = store.CreateUser
	userEmailExists    = store.UserEmailExists
	userUsernameExists = store.UserUsernameExists
)

// RegisterPageHandler 顯示註冊表單
func RegisterPageHandler(sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "register.html", view.RegisterPage{Flashes: sm.PopFlashes(c)})
	}
}

// RegisterHandler 建立新帳號
// Email 先查、Username 後查，先命中者決定錯誤訊息。
func RegisterHandler(db database.DB, sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form forms.RegisterForm
		if err := c.Bind(&form); err != nil {
			return c.Render(http.StatusBadRequest, "register.html",
				view.RegisterPage{Errors: forms.FieldErrors(err)})
		}
		if err := c.Validate(&form); err != nil {
			return c.Render(http.StatusBadRequest, "register.html",
				view.RegisterPage{Errors: forms.FieldErrors(err), Form: form})
		}

		// Email 轉為小寫以確保一致性
		form.Email = strings.ToLower(form.Email)
		ctx := c.Request().Context()

		exists, err := userEmailExists(ctx, db, form.Email)
		if err != nil {
			return err
		}
		if exists {
			if err := sm.Flash(c, "That email address is already registered. Pick another."); err != nil {
				return err
			}
			return c.Redirect(http.StatusFound, "/register")
		}

		exists, err = userUsernameExists(ctx, db, form.Username)
		if err != nil {
			return err
		}
		if exists {
			if err := sm.Flash(c, "That username is already taken. Pick another."); err != nil {
				return err
			}
			return c.Redirect(http.StatusFound, "/register")
		}

		hash, err := hashPassword(form.Password)
		if err != nil {
			return err
		}

		_, err = createUser(ctx, db, &model.User{
			Username:     form.Username,
			Email:        form.Email,
			PasswordHash: hash,
		})
		// 兩次存在性檢查之間仍可能有人搶先註冊，約束違反走同一條訊息
		if errors.Is(err, store.ErrDuplicateEmail) {
			if err := sm.Flash(c, "That email address is already registered. Pick another."); err != nil {
				return err
			}
			return c.Redirect(http.StatusFound, "/register")
		}
		if errors.Is(err, store.ErrDuplicateUsername) {
			if err := sm.Flash(c, "That username is already taken. Pick another."); err != nil {
				return err
			}
			return c.Redirect(http.StatusFound, "/register")
		}
		if err != nil {
			return err
		}

		if err := sm.Flash(c, "Account created! You can log in now."); err != nil {
			return err
		}
		return c.Redirect(http.StatusFound, "/login")
	}
}
