package validation

// CreateExerciseInput は種目作成の入力。
type CreateExerciseInput struct {
	Name          string
	UserID        string
	MuscleGroupID int64
}

// ValidateCreateExercise は種目作成の入力を検証する。
// name: 非空・256文字以内、userId: 非空、muscleGroupId: 正の整数。
func ValidateCreateExercise(in CreateExerciseInput) error {
	e := &ValidationError{}
	e.checkRequiredName("name", in.Name)
	e.checkUserID(in.UserID)
	e.checkID("muscleGroupId", in.MuscleGroupID)
	return e.errOrNil()
}

// UpdateExerciseInput は種目更新の入力。
type UpdateExerciseInput struct {
	ExerciseID    int64
	UserID        string
	Name          string
	MuscleGroupID int64
}

// ValidateUpdateExercise は種目更新の入力を検証する。
func ValidateUpdateExercise(in UpdateExerciseInput) error {
	e := &ValidationError{}
	e.checkID("exerciseId", in.ExerciseID)
	e.checkUserID(in.UserID)
	e.checkRequiredName("name", in.Name)
	e.checkID("muscleGroupId", in.MuscleGroupID)
	return e.errOrNil()
}

// ExerciseRefInput は種目の取得・削除の入力。
type ExerciseRefInput struct {
	ExerciseID int64
	UserID     string
}

// ValidateExerciseRef は種目の取得・削除の入力を検証する。
func ValidateExerciseRef(in ExerciseRefInput) error {
	e := &ValidationError{}
	e.checkID("exerciseId", in.ExerciseID)
	e.checkUserID(in.UserID)
	return e.errOrNil()
}
