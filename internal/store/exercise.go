package store

import (
	"context"
	"fmt"
	"strings"

	"fitlog/internal/database"
	"fitlog/internal/model"
)

// CreateExercises 以單一 INSERT 寫入整批動作，全批同一次提交。
func CreateExercises(ctx context.Context, db database.DB, exercises []model.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO exercises (workout_id, body_part, name, sets, reps) VALUES `)
	args := make([]any, 0, len(exercises)*5)
	for i, e := range exercises {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := i * 5
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5)
		args = append(args, e.WorkoutID, e.BodyPart, e.Name, e.Sets, e.Reps)
	}

	if _, err := db.Exec(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("CreateExercises: %w", err)
	}
	return nil
}

func ListExercisesByWorkout(ctx context.Context, db database.DB, workoutID int) ([]model.Exercise, error) {
	rows, err := db.Query(ctx,
		`SELECT id, workout_id, body_part, name, sets, reps
		 FROM exercises WHERE workout_id = $1`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListExercisesByWorkout: %w", err)
	}
	defer rows.Close()

	var exercises []model.Exercise
	for rows.Next() {
		var e model.Exercise
		if err := rows.Scan(
			&e.ID,
			&e.WorkoutID,
			&e.BodyPart,
			&e.Name,
			&e.Sets,
			&e.Reps,
		); err != nil {
			return nil, fmt.Errorf("ListExercisesByWorkout: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListExercisesByWorkout: %w", err)
	}
	return exercises, nil
}
