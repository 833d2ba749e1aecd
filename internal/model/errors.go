// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, workout, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeValidationFailed        = "VALIDATION_FAILED"
	ErrCodeExerciseNotFound        = "EXERCISE_NOT_FOUND"
	ErrCodeWorkoutNotFound         = "WORKOUT_NOT_FOUND"
	ErrCodeWorkoutExerciseNotFound = "WORKOUT_EXERCISE_NOT_FOUND"
	ErrCodeSetNotFound             = "SET_NOT_FOUND"
	ErrCodeMuscleGroupNotFound     = "MUSCLE_GROUP_NOT_FOUND"
	ErrCodeMuscleGroupInUse        = "MUSCLE_GROUP_IN_USE"
)

// NewValidationFailedError は入力バリデーション失敗エラーを生成する。
// detailには違反したフィールドと理由の要約を渡す。
func NewValidationFailedError(detail string) *APIError {
	return &APIError{
		Code:     ErrCodeValidationFailed,
		Message:  fmt.Sprintf("入力値が不正です: %s", detail),
		Category: "validation",
		Action:   "入力内容を確認して再度お試しください。",
	}
}

// NewExerciseNotFoundError は種目未検出エラーを生成する。
// 他ユーザーの種目へのアクセスも存在を秘匿するため同じエラーになる。
func NewExerciseNotFoundError(exerciseID int64) *APIError {
	return &APIError{
		Code:     ErrCodeExerciseNotFound,
		Message:  fmt.Sprintf("指定された種目が見つかりません: %d", exerciseID),
		Category: "workout",
		Action:   "種目IDを確認してください。",
	}
}

// NewWorkoutNotFoundError はワークアウト未検出エラーを生成する。
// 他ユーザーのワークアウトへのアクセスも存在を秘匿するため同じエラーになる。
func NewWorkoutNotFoundError(workoutID int64) *APIError {
	return &APIError{
		Code:     ErrCodeWorkoutNotFound,
		Message:  fmt.Sprintf("指定されたワークアウトが見つかりません: %d", workoutID),
		Category: "workout",
		Action:   "ワークアウトIDを確認してください。",
	}
}

// NewWorkoutExerciseNotFoundError はワークアウト内種目未検出エラーを生成する。
func NewWorkoutExerciseNotFoundError(workoutExerciseID int64) *APIError {
	return &APIError{
		Code:     ErrCodeWorkoutExerciseNotFound,
		Message:  fmt.Sprintf("指定されたワークアウト内種目が見つかりません: %d", workoutExerciseID),
		Category: "workout",
		Action:   "ワークアウト内種目IDを確認してください。",
	}
}

// NewSetNotFoundError はセット未検出エラーを生成する。
func NewSetNotFoundError(setID int64) *APIError {
	return &APIError{
		Code:     ErrCodeSetNotFound,
		Message:  fmt.Sprintf("指定されたセットが見つかりません: %d", setID),
		Category: "workout",
		Action:   "セットIDを確認してください。",
	}
}

// NewMuscleGroupNotFoundError は部位未検出エラーを生成する。
// 種目の作成・更新時に存在しない部位IDを参照した場合に返される。
func NewMuscleGroupNotFoundError(muscleGroupID int64) *APIError {
	return &APIError{
		Code:     ErrCodeMuscleGroupNotFound,
		Message:  fmt.Sprintf("指定された部位が見つかりません: %d", muscleGroupID),
		Category: "validation",
		Action:   "部位一覧から有効な部位を選択してください。",
	}
}

// NewMuscleGroupInUseError は参照中の部位を削除しようとした場合のエラーを生成する。
func NewMuscleGroupInUseError(muscleGroupID int64) *APIError {
	return &APIError{
		Code:     ErrCodeMuscleGroupInUse,
		Message:  fmt.Sprintf("この部位は種目から参照されているため削除できません: %d", muscleGroupID),
		Category: "workout",
		Action:   "この部位を参照している種目を先に削除してください。",
	}
}
