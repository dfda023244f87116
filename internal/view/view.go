// Package view renders the embedded HTML page templates through echo's
// Renderer hook.
package view

import (
	"embed"
	"html/template"
	"io"

	"fitlog/internal/forms"
	"fitlog/internal/model"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer 以頁面檔名挑選模板。
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

type IndexPage struct {
	Flashes  []string
	LoggedIn bool
}

type RegisterPage struct {
	Flashes []string
	Errors  map[string]string
	Form    forms.RegisterForm
}

type LoginPage struct {
	Flashes []string
	Errors  map[string]string
	Message string
	Form    forms.LoginForm
}

type DashboardPage struct {
	Flashes  []string
	Username string
	Workouts []model.Workout
}

type AddWorkoutPage struct {
	Flashes []string
	Errors  map[string]string
	Form    forms.WorkoutForm
}

// WorkoutDetail 是訓練與其動作清單的組合。
type WorkoutDetail struct {
	Workout   model.Workout
	Exercises []model.Exercise
}

type HistoryPage struct {
	Flashes  []string
	Workouts []WorkoutDetail
}

type ViewWorkoutPage struct {
	Workout   model.Workout
	Exercises []model.Exercise
}
