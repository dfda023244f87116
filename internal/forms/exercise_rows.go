package forms

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ExerciseRow 是 add_workout 表單中的一列動作。
type ExerciseRow struct {
	Name     string
	BodyPart string
	Sets     int
	Reps     int
}

// ParseExerciseRows 將表單的 exercise_* 平行陣列依索引組回列。
// 名稱為空白的列視為未填寫而略過；sets/reps 無法轉成整數則整批失敗。
func ParseExerciseRows(values url.Values) ([]ExerciseRow, error) {
	names := values["exercise_name"]
	bodyParts := values["exercise_body_part"]
	sets := values["exercise_sets"]
	reps := values["exercise_reps"]

	var rows []ExerciseRow
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		setCount, err := strconv.Atoi(at(sets, i))
		if err != nil {
			return nil, fmt.Errorf("exercise row %d: invalid sets: %w", i, err)
		}
		repCount, err := strconv.Atoi(at(reps, i))
		if err != nil {
			return nil, fmt.Errorf("exercise row %d: invalid reps: %w", i, err)
		}
		rows = append(rows, ExerciseRow{
			Name:     name,
			BodyPart: at(bodyParts, i),
			Sets:     setCount,
			Reps:     repCount,
		})
	}
	return rows, nil
}

func at(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}
