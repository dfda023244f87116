// File: internal/handler/workouts/dashboard.go
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

var (
	getUserByID        = store.GetUserByID
	listWorkoutsByUser = store.ListWorkoutsByUser
)

// DashboardHandler 列出目前使用者的訓練，不排序也不分頁。
func DashboardHandler(db database.DB, sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := middleware.UserID(c)
		ctx := c.Request().Context()

		user, err := getUserByID(ctx, db, userID)
		if err != nil {
			return err
		}
		workouts, err := listWorkoutsByUser(ctx, db, userID)
		if err != nil {
			return err
		}
		return c.Render(http.StatusOK, "dashboard.html", view.DashboardPage{
			Flashes:  sm.PopFlashes(c),
			Username: user.Username,
			Workouts: workouts,
		})
	}
}
