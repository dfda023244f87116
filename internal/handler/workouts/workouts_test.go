package workouts

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"fitlog/internal/middleware"
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

func newAuthedGetCtx(e *echo.Echo, userID int) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserIDKey, userID)
	return c, rec
}

func newAuthedFormCtx(e *echo.Echo, userID int, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserIDKey, userID)
	return c, rec
}

func restore() {
	getUserByID = store.GetUserByID
	listWorkoutsByUser = store.ListWorkoutsByUser
	createWorkout = store.CreateWorkout
	createExercises = store.CreateExercises
	listExercisesByWorkout = store.ListExercisesByWorkout
	getWorkoutByID = store.GetWorkoutByID
}

var testSecret = []byte("0123456789abcdef0123456789abcdef")
