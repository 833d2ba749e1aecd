// Package model はドメインモデルを定義する。
package model

import "time"

// Workout は1回のトレーニングセッションを表す。
// Nameは任意（NULL許容）。CompletedAtは未完了の間NULL。
type Workout struct {
	ID          int64
	UserID      string
	Name        *string
	StartedAt   time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WorkoutExercise はワークアウトに追加された種目を表す。
// Orderは呼び出し側が採番する表示順で、一意性は強制しない。
// 同じ種目を同一ワークアウトに複数回追加することもスキーマ上は許容される。
type WorkoutExercise struct {
	ID         int64
	WorkoutID  int64
	ExerciseID int64
	Order      int
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Set はワークアウト内種目に記録された1セットを表す。
// Weight/Reps/DurationSeconds/RPEはいずれもNULL許容で、
// 記録しなかった値はnilのまま保持される。
type Set struct {
	ID                int64
	WorkoutExerciseID int64
	Order             int
	Weight            *float64
	Reps              *int
	DurationSeconds   *int
	RPE               *float64
	IsWarmup          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// WorkoutExerciseDetail はワークアウト内種目に種目情報とセット一覧を結合したモデル。
// Setsはorder昇順で保持される。
type WorkoutExerciseDetail struct {
	WorkoutExercise
	Exercise ExerciseDetail
	Sets     []Set
}

// WorkoutDetail はワークアウトにワークアウト内種目の一覧を結合したモデル。
// Exercisesはorder昇順で保持される。
type WorkoutDetail struct {
	Workout
	Exercises []WorkoutExerciseDetail
}
