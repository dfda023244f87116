// Package session tracks the logged-in user and flash messages across
// requests with a gorilla/sessions cookie store.
package session

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	sessionName = "fitlog"
	userIDKey   = "user_id"
)

type Manager struct {
	store sessions.Store
}

func NewManager(secret []byte) *Manager {
	cs := sessions.NewCookieStore(secret)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: cs}
}

// session 解碼失敗時 gorilla 會回傳全新 session，錯誤可安全忽略。
func (m *Manager) session(c echo.Context) *sessions.Session {
	s, _ := m.store.Get(c.Request(), sessionName)
	return s
}

// CurrentUserID 回傳 session 中的使用者編號；未登入時 ok 為 false。
func (m *Manager) CurrentUserID(c echo.Context) (int, bool) {
	id, ok := m.session(c).Values[userIDKey].(int)
	return id, ok
}

// LogIn 將使用者編號寫入 session。
func (m *Manager) LogIn(c echo.Context, userID int) error {
	s := m.session(c)
	s.Values[userIDKey] = userID
	return s.Save(c.Request(), c.Response())
}

// LogOut 清除登入身分。
func (m *Manager) LogOut(c echo.Context) error {
	s := m.session(c)
	delete(s.Values, userIDKey)
	return s.Save(c.Request(), c.Response())
}

// Flash 加入一則使用者可見的訊息。
func (m *Manager) Flash(c echo.Context, msg string) error {
	s := m.session(c)
	s.AddFlash(msg)
	return s.Save(c.Request(), c.Response())
}

// PopFlashes 取出全部 flash 訊息；Flashes 會同時從 session 移除，需再存檔。
func (m *Manager) PopFlashes(c echo.Context) []string {
	s := m.session(c)
	raw := s.Flashes()
	if len(raw) > 0 {
		_ = s.Save(c.Request(), c.Response())
	}
	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
