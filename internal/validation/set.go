package validation

// AddSetInput はセット追加の入力。
// Weight/Reps/RPE/DurationSecondsは記録しない場合nilのまま渡す。
// 未指定のDurationSecondsはNULLとして保存される。
type AddSetInput struct {
	WorkoutExerciseID int64
	Order             int
	Weight            *float64
	Reps              *int
	RPE               *float64
	IsWarmup          bool
	DurationSeconds   *int
}

// ValidateAddSet はセット追加の入力を検証する。
// orderは1以上。重量・回数・RPEの値域はスキーマ上制限しない。
func ValidateAddSet(in AddSetInput) error {
	e := &ValidationError{}
	e.checkID("workoutExerciseId", in.WorkoutExerciseID)
	if in.Order < 1 {
		e.add("order", "1以上の整数を指定してください")
	}
	return e.errOrNil()
}

// UpdateSetInput はセット更新の入力。
// orderとworkout_exercise_idは更新対象外のため含まれない。
type UpdateSetInput struct {
	SetID           int64
	Weight          *float64
	Reps            *int
	RPE             *float64
	IsWarmup        bool
	DurationSeconds *int
}

// ValidateUpdateSet はセット更新の入力を検証する。
func ValidateUpdateSet(in UpdateSetInput) error {
	e := &ValidationError{}
	e.checkID("setId", in.SetID)
	return e.errOrNil()
}

// RemoveSetInput はセット削除の入力。
type RemoveSetInput struct {
	SetID int64
}

// ValidateRemoveSet はセット削除の入力を検証する。
func ValidateRemoveSet(in RemoveSetInput) error {
	e := &ValidationError{}
	e.checkID("setId", in.SetID)
	return e.errOrNil()
}
