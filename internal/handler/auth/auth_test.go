package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"fitlog/internal/service"
	"fitlog/internal/store"
	"fitlog/internal/view"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type testValidator struct{ v *validator.Validate }

func (t *testValidator) Validate(i any) error { return t.v.Struct(i) }

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	e.Renderer = view.NewRenderer()
	return e
}

func newFormCtx(e *echo.Echo, body string, cookies []*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newGetCtx(e *echo.Echo, cookies []*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	hashPassword = service.HashPassword
	createUser = store.CreateUser
	userEmailExists = store.UserEmailExists
	userUsernameExists = store.UserUsernameExists
	authenticate = service.Authenticate
}

var testSecret = []byte("0123456789abcdef0123456789abcdef")
