// Package model はドメインモデルを定義する。
package model

import "time"

// MuscleGroup は部位（筋群）を表す。
// 全ユーザー共有の参照データで、マイグレーションで初期投入される。
type MuscleGroup struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Exercise はユーザーが登録した種目を表す。
type Exercise struct {
	ID            int64
	Name          string
	UserID        string
	MuscleGroupID int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ExerciseDetail は種目と部位を結合したモデル。
// muscle_groupsテーブルとJOINして取得される。
type ExerciseDetail struct {
	Exercise
	MuscleGroup MuscleGroup
}
