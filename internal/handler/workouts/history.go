// File: internal/handler/workouts/history.go
package workouts

import (
	"net/http"

	"fitlog/internal/database"
	"fitlog/internal/middleware"
	"fitlog/internal/session"
	"fitlog/internal/store"
	"fitlog/internal/view"

	"github.com/labstack/echo/v4"
)

var listExercisesByWorkout = store.ListExercisesByWorkout

// HistoryHandler 列出訓練並逐筆帶出動作（每個 workout 一次查詢）。
func HistoryHandler(db database.DB, sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		workouts, err := listWorkoutsByUser(ctx, db, middleware.UserID(c))
		if err != nil {
			return err
		}

		details := make([]view.WorkoutDetail, 0, len(workouts))
		for _, w := range workouts {
			exercises, err := listExercisesByWorkout(ctx, db, w.ID)
			if err != nil {
				return err
			}
			details = append(details, view.WorkoutDetail{Workout: w, Exercises: exercises})
		}
		return c.Render(http.StatusOK, "workout_history.html", view.HistoryPage{
			Flashes:  sm.PopFlashes(c),
			Workouts: details,
		})
	}
}
