package store

import (
	"context"
	"errors"
	"fmt"

	"fitlog/internal/database"
	"fitlog/internal/model"

	"github.com/jackc/pgx/v5"
)

func CreateWorkout(ctx context.Context, db database.DB, w *model.Workout) (*model.Workout, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO workouts (user_id, date, start_time, duration, notes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		w.UserID,
		w.Date,
		w.StartTime,
		w.Duration,
		w.Notes,
	)
	if err := row.Scan(&w.ID); err != nil {
		return nil, fmt.Errorf("CreateWorkout: %w", err)
	}
	return w, nil
}

func GetWorkoutByID(ctx context.Context, db database.DB, workoutID int) (*model.Workout, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, date, start_time, duration, notes
		 FROM workouts WHERE id = $1`,
		workoutID,
	)
	w := &model.Workout{}
	if err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.Date,
		&w.StartTime,
		&w.Duration,
		&w.Notes,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetWorkoutByID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetWorkoutByID: %w", err)
	}
	return w, nil
}

func ListWorkoutsByUser(ctx context.Context, db database.DB, userID int) ([]model.Workout, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, date, start_time, duration, notes
		 FROM workouts WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListWorkoutsByUser: %w", err)
	}
	defer rows.Close()

	var workouts []model.Workout
	for rows.Next() {
		var w model.Workout
		if err := rows.Scan(
			&w.ID,
			&w.UserID,
			&w.Date,
			&w.StartTime,
			&w.Duration,
			&w.Notes,
		); err != nil {
			return nil, fmt.Errorf("ListWorkoutsByUser: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListWorkoutsByUser: %w", err)
	}
	return workouts, nil
}
