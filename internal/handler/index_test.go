package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fitlog/internal/session"
	"fitlog/internal/view"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestIndexHandler(t *testing.T) {
	e := echo.New()
	e.Renderer = view.NewRenderer()
	sm := session.NewManager([]byte("0123456789abcdef0123456789abcdef"))

	// anonymous visitor sees the login links
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, IndexHandler(sm)(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "/register")
	require.NotContains(t, rec.Body.String(), "/logout")

	// logged-in visitor sees the app navigation
	loginReq := httptest.NewRequest(http.MethodGet, "/", nil)
	loginRec := httptest.NewRecorder()
	loginCtx := e.NewContext(loginReq, loginRec)
	require.NoError(t, sm.LogIn(loginCtx, 1))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range loginRec.Result().Cookies() {
		req.AddCookie(ck)
	}
	rec = httptest.NewRecorder()
	require.NoError(t, IndexHandler(sm)(e.NewContext(req, rec)))
	require.Contains(t, rec.Body.String(), "/logout")
}
