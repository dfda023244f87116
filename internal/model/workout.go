// File: internal/model/workout.go
package model

// Workout is one logged training session. Date, StartTime and Duration are
// short free-form strings entered by the user, not parsed temporal values.
type Workout struct {
	ID        int    `db:"id"`
	UserID    int    `db:"user_id"`
	Date      string `db:"date"`
	StartTime string `db:"start_time"`
	Duration  string `db:"duration"`
	Notes     string `db:"notes"`
}
