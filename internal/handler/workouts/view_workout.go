// File: internal/handler/workouts/view_workout.go
package workouts

import (
	"errors"
	"net/http"
	"strconv"

	"fitlog/internal/database"
	"fitlog/internal/store"
	"fitlog/internal/view"

	"github.com/labstack/echo/v4"
)

var getWorkoutByID = store.GetWorkoutByID

// ViewWorkoutHandler 依路徑編號顯示單一訓練
// 不檢查 workout 擁有者，任何已登入使用者皆可檢視。
func ViewWorkoutHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		workoutID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "workout not found")
		}

		ctx := c.Request().Context()
		workout, err := getWorkoutByID(ctx, db, workoutID)
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "workout not found")
		}
		if err != nil {
			return err
		}

		exercises, err := listExercisesByWorkout(ctx, db, workout.ID)
		if err != nil {
			return err
		}
		return c.Render(http.StatusOK, "view_workout.html", view.ViewWorkoutPage{
			Workout:   *workout,
			Exercises: exercises,
		})
	}
}
