// File: internal/handler/workouts/add_workout.go
package workouts

import (
	"net/http"

	"fitlog/internal/database"
	"fitlog/internal/forms"
	"fitlog/internal/middleware"
	"fitlog/internal/model"
	"fitlog/internal/session"
	"fitlog/internal/store"
	"fitlog/internal/view"

	"github.com/labstack/echo/v4"
)

var (
	createWorkout   = store.CreateWorkout
	createExercises = store.CreateExercises
)

// AddWorkoutPageHandler 顯示新增訓練表單
func AddWorkoutPageHandler(sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "add_workout.html", view.AddWorkoutPage{Flashes: sm.PopFlashes(c)})
	}
}

// AddWorkoutHandler 建立訓練與其動作
// 先寫入 workout 取得編號，再以單一 INSERT 寫入整批動作；兩段各自提交，不包交易。
func AddWorkoutHandler(db database.DB, sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form forms.WorkoutForm
		if err := c.Bind(&form); err != nil {
			return c.Render(http.StatusBadRequest, "add_workout.html",
				view.AddWorkoutPage{Errors: forms.FieldErrors(err)})
		}
		if err := c.Validate(&form); err != nil {
			return c.Render(http.StatusBadRequest, "add_workout.html",
				view.AddWorkoutPage{Errors: forms.FieldErrors(err), Form: form})
		}

		ctx := c.Request().Context()
		workout, err := createWorkout(ctx, db, &model.Workout{
			UserID:    middleware.UserID(c),
			Date:      form.Date,
			StartTime: form.StartTime,
			Duration:  form.Duration,
			Notes:     form.Notes,
		})
		if err != nil {
			return err
		}

		values, err := c.FormParams()
		if err != nil {
			return err
		}
		rows, err := forms.ParseExerciseRows(values)
		if err != nil {
			// sets/reps 不是整數：workout 已提交，動作整批放棄
			return err
		}
		exercises := make([]model.Exercise, 0, len(rows))
		for _, row := range rows {
			exercises = append(exercises, model.Exercise{
				WorkoutID: workout.ID,
				BodyPart:  row.BodyPart,
				Name:      row.Name,
				Sets:      row.Sets,
				Reps:      row.Reps,
			})
		}
		// 動作批次單獨一次提交，不會留下半套
		if err := createExercises(ctx, db, exercises); err != nil {
			return err
		}

		if err := sm.Flash(c, "Workout added!"); err != nil {
			return err
		}
		return c.Redirect(http.StatusFound, "/dashboard")
	}
}
