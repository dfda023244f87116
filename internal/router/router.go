// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"fitlog/internal/database"
	"fitlog/internal/handler"
	"fitlog/internal/handler/auth"
	"fitlog/internal/handler/workouts"
	"fitlog/internal/middleware"
	"fitlog/internal/service"
	"fitlog/internal/session"
	"fitlog/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, sm *session.Manager, throttle *service.LoginThrottle, wp worker.Pool) {
	e.GET("/", handler.IndexHandler(sm))

	// 註冊與登入
	e.GET("/register", auth.RegisterPageHandler(sm))
	e.POST("/register", auth.RegisterHandler(db, sm))
	e.GET("/login", auth.LoginPageHandler(sm))
	e.POST("/login", auth.LoginHandler(db, sm, throttle, wp))

	// 需登入的頁面
	requireAuth := middleware.RequireAuth(sm)
	e.GET("/logout", auth.LogoutHandler(sm), requireAuth)
	e.GET("/dashboard", workouts.DashboardHandler(db, sm), requireAuth)
	e.GET("/add_workout", workouts.AddWorkoutPageHandler(sm), requireAuth)
	e.POST("/add_workout", workouts.AddWorkoutHandler(db, sm), requireAuth)
	e.GET("/workout_history", workouts.HistoryHandler(db, sm), requireAuth)
	e.GET("/workout/:id", workouts.ViewWorkoutHandler(db), requireAuth)
}
