package validation

import (
	"fmt"
	"time"
)

// CreateWorkoutInput はワークアウト作成の入力。
// StartedAt/CompletedAtはRFC3339形式の文字列で受け取る。
type CreateWorkoutInput struct {
	Name        *string
	UserID      string
	StartedAt   string
	CompletedAt *string
}

// CreateWorkoutParams はワークアウト作成の正規化済みパラメータ。
// 名前が空・未指定の場合はnil、日時はtime.Timeに変換される。
type CreateWorkoutParams struct {
	Name        *string
	UserID      string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// ValidateCreateWorkout はワークアウト作成の入力を検証し正規化する。
// 名前は任意（256文字以内）。startedAtは必須。
// completedAt >= startedAt の検証は意図的に行わない（現行の寛容な挙動を維持）。
func ValidateCreateWorkout(in CreateWorkoutInput) (*CreateWorkoutParams, error) {
	e := &ValidationError{}
	e.checkUserID(in.UserID)
	name := e.checkOptionalName("name", in.Name)
	startedAt := e.checkRequiredTimestamp("startedAt", in.StartedAt)
	completedAt := e.checkOptionalTimestamp("completedAt", in.CompletedAt)
	if err := e.errOrNil(); err != nil {
		return nil, err
	}
	return &CreateWorkoutParams{
		Name:        name,
		UserID:      in.UserID,
		StartedAt:   startedAt,
		CompletedAt: completedAt,
	}, nil
}

// UpdateWorkoutInput はワークアウト更新の入力。
type UpdateWorkoutInput struct {
	WorkoutID   int64
	Name        *string
	UserID      string
	StartedAt   string
	CompletedAt *string
}

// UpdateWorkoutParams はワークアウト更新の正規化済みパラメータ。
type UpdateWorkoutParams struct {
	WorkoutID   int64
	Name        *string
	UserID      string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// ValidateUpdateWorkout はワークアウト更新の入力を検証し正規化する。
func ValidateUpdateWorkout(in UpdateWorkoutInput) (*UpdateWorkoutParams, error) {
	e := &ValidationError{}
	e.checkID("workoutId", in.WorkoutID)
	e.checkUserID(in.UserID)
	name := e.checkOptionalName("name", in.Name)
	startedAt := e.checkRequiredTimestamp("startedAt", in.StartedAt)
	completedAt := e.checkOptionalTimestamp("completedAt", in.CompletedAt)
	if err := e.errOrNil(); err != nil {
		return nil, err
	}
	return &UpdateWorkoutParams{
		WorkoutID:   in.WorkoutID,
		Name:        name,
		UserID:      in.UserID,
		StartedAt:   startedAt,
		CompletedAt: completedAt,
	}, nil
}

// WorkoutRefInput はワークアウトの取得・削除の入力。
type WorkoutRefInput struct {
	WorkoutID int64
	UserID    string
}

// ValidateWorkoutRef はワークアウトの取得・削除の入力を検証する。
func ValidateWorkoutRef(in WorkoutRefInput) error {
	e := &ValidationError{}
	e.checkID("workoutId", in.WorkoutID)
	e.checkUserID(in.UserID)
	return e.errOrNil()
}

// ListWorkoutsInput は日付指定のワークアウト一覧取得の入力。
// DateはYYYY-MM-DD形式で受け取る。
type ListWorkoutsInput struct {
	UserID string
	Date   string
}

// ListWorkoutsParams は日付指定のワークアウト一覧取得の正規化済みパラメータ。
// FromはlocにおけるDateの0時、ToはFromの24時間後（翌日の0時）。
// started_at == To のワークアウトは区間に含まれない。
type ListWorkoutsParams struct {
	UserID string
	From   time.Time
	To     time.Time
}

// ValidateListWorkouts は日付指定のワークアウト一覧取得の入力を検証し、
// locのタイムゾーンにおける1日分の半開区間 [From, To) に正規化する。
func ValidateListWorkouts(in ListWorkoutsInput, loc *time.Location) (*ListWorkoutsParams, error) {
	e := &ValidationError{}
	e.checkUserID(in.UserID)

	var from time.Time
	if in.Date == "" {
		e.add("date", "必須です")
	} else {
		day, err := time.ParseInLocation("2006-01-02", in.Date, loc)
		if err != nil {
			e.add("date", "YYYY-MM-DD形式で指定してください")
		} else {
			from = day
		}
	}

	if err := e.errOrNil(); err != nil {
		return nil, err
	}
	return &ListWorkoutsParams{
		UserID: in.UserID,
		From:   from,
		To:     from.AddDate(0, 0, 1),
	}, nil
}

// AddWorkoutExerciseInput はワークアウトへの種目追加の入力。
type AddWorkoutExerciseInput struct {
	WorkoutID  int64
	ExerciseID int64
	Order      int
	Notes      *string
}

// ValidateAddWorkoutExercise はワークアウトへの種目追加の入力を検証する。
// orderは0以上。同一種目の重複追加はスキーマ上許容されるため検査しない。
func ValidateAddWorkoutExercise(in AddWorkoutExerciseInput) error {
	e := &ValidationError{}
	e.checkID("workoutId", in.WorkoutID)
	e.checkID("exerciseId", in.ExerciseID)
	if in.Order < 0 {
		e.add("order", "0以上の整数を指定してください")
	}
	return e.errOrNil()
}

// RemoveWorkoutExerciseInput はワークアウトからの種目削除の入力。
type RemoveWorkoutExerciseInput struct {
	WorkoutExerciseID int64
}

// ValidateRemoveWorkoutExercise はワークアウトからの種目削除の入力を検証する。
func ValidateRemoveWorkoutExercise(in RemoveWorkoutExerciseInput) error {
	e := &ValidationError{}
	e.checkID("workoutExerciseId", in.WorkoutExerciseID)
	return e.errOrNil()
}

// checkOptionalName は任意の名前フィールドを検証し正規化する。
// 未指定または空文字列はnilに正規化される。
func (e *ValidationError) checkOptionalName(field string, name *string) *string {
	if name == nil || *name == "" {
		return nil
	}
	if len([]rune(*name)) > maxNameLength {
		e.add(field, fmt.Sprintf("%d文字以内で指定してください", maxNameLength))
		return nil
	}
	return name
}

// checkRequiredTimestamp は必須の日時文字列をRFC3339として解析する。
func (e *ValidationError) checkRequiredTimestamp(field, value string) time.Time {
	if value == "" {
		e.add(field, "必須です")
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		e.add(field, "RFC3339形式で指定してください")
		return time.Time{}
	}
	return t
}

// checkOptionalTimestamp は任意の日時文字列をRFC3339として解析する。
// 未指定または空文字列はnilに正規化される。
func (e *ValidationError) checkOptionalTimestamp(field string, value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		e.add(field, "RFC3339形式で指定してください")
		return nil
	}
	return &t
}
