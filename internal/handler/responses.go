package handler

import (
	"time"

	"github.com/hitoshi/liftlog/internal/model"
)

// muscleGroupResponse は部位のレスポンス表現。
type muscleGroupResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// exerciseResponse は種目のレスポンス表現。部位をネストして返す。
type exerciseResponse struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	UserID        string              `json:"user_id"`
	MuscleGroupID int64               `json:"muscle_group_id"`
	MuscleGroup   muscleGroupResponse `json:"muscle_group"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// setResponse はセットのレスポンス表現。
// 記録されなかった値はnullとして返す。
type setResponse struct {
	ID                int64     `json:"id"`
	WorkoutExerciseID int64     `json:"workout_exercise_id"`
	Order             int       `json:"order"`
	Weight            *float64  `json:"weight"`
	Reps              *int      `json:"reps"`
	DurationSeconds   *int      `json:"duration_seconds"`
	RPE               *float64  `json:"rpe"`
	IsWarmup          bool      `json:"is_warmup"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// workoutExerciseResponse はワークアウト内種目のレスポンス表現。
// ネスト取得時のみExerciseとSetsが埋まる。
type workoutExerciseResponse struct {
	ID         int64             `json:"id"`
	WorkoutID  int64             `json:"workout_id"`
	ExerciseID int64             `json:"exercise_id"`
	Order      int               `json:"order"`
	Notes      *string           `json:"notes"`
	Exercise   *exerciseResponse `json:"exercise,omitempty"`
	Sets       []setResponse     `json:"sets"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// workoutResponse はワークアウトのレスポンス表現。
// 一覧・単体取得ではExercisesが必ず配列になり、作成・更新ではnullになる。
type workoutResponse struct {
	ID          int64                     `json:"id"`
	UserID      string                    `json:"user_id"`
	Name        *string                   `json:"name"`
	StartedAt   time.Time                 `json:"started_at"`
	CompletedAt *time.Time                `json:"completed_at"`
	Exercises   []workoutExerciseResponse `json:"exercises"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

func toMuscleGroupResponse(mg *model.MuscleGroup) muscleGroupResponse {
	return muscleGroupResponse{
		ID:        mg.ID,
		Name:      mg.Name,
		CreatedAt: mg.CreatedAt,
		UpdatedAt: mg.UpdatedAt,
	}
}

func toExerciseResponse(ed *model.ExerciseDetail) exerciseResponse {
	return exerciseResponse{
		ID:            ed.ID,
		Name:          ed.Name,
		UserID:        ed.UserID,
		MuscleGroupID: ed.MuscleGroupID,
		MuscleGroup:   toMuscleGroupResponse(&ed.MuscleGroup),
		CreatedAt:     ed.CreatedAt,
		UpdatedAt:     ed.UpdatedAt,
	}
}

func toSetResponse(s *model.Set) setResponse {
	return setResponse{
		ID:                s.ID,
		WorkoutExerciseID: s.WorkoutExerciseID,
		Order:             s.Order,
		Weight:            s.Weight,
		Reps:              s.Reps,
		DurationSeconds:   s.DurationSeconds,
		RPE:               s.RPE,
		IsWarmup:          s.IsWarmup,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func toWorkoutExerciseResponse(we *model.WorkoutExercise) workoutExerciseResponse {
	return workoutExerciseResponse{
		ID:         we.ID,
		WorkoutID:  we.WorkoutID,
		ExerciseID: we.ExerciseID,
		Order:      we.Order,
		Notes:      we.Notes,
		Sets:       []setResponse{},
		CreatedAt:  we.CreatedAt,
		UpdatedAt:  we.UpdatedAt,
	}
}

func toWorkoutExerciseDetailResponse(wed *model.WorkoutExerciseDetail) workoutExerciseResponse {
	resp := toWorkoutExerciseResponse(&wed.WorkoutExercise)
	ex := toExerciseResponse(&wed.Exercise)
	resp.Exercise = &ex
	resp.Sets = make([]setResponse, 0, len(wed.Sets))
	for i := range wed.Sets {
		resp.Sets = append(resp.Sets, toSetResponse(&wed.Sets[i]))
	}
	return resp
}

func toWorkoutResponse(w *model.Workout) workoutResponse {
	return workoutResponse{
		ID:          w.ID,
		UserID:      w.UserID,
		Name:        w.Name,
		StartedAt:   w.StartedAt,
		CompletedAt: w.CompletedAt,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func toWorkoutDetailResponse(wd *model.WorkoutDetail) workoutResponse {
	resp := toWorkoutResponse(&wd.Workout)
	resp.Exercises = make([]workoutExerciseResponse, 0, len(wd.Exercises))
	for i := range wd.Exercises {
		resp.Exercises = append(resp.Exercises, toWorkoutExerciseDetailResponse(&wd.Exercises[i]))
	}
	return resp
}
