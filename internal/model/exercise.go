// File: internal/model/exercise.go
package model

// Exercise is one movement entry within a workout.
type Exercise struct {
	ID        int    `db:"id"`
	WorkoutID int    `db:"workout_id"`
	BodyPart  string `db:"body_part"`
	Name      string `db:"name"`
	Sets      int    `db:"sets"`
	Reps      int    `db:"reps"`
}
