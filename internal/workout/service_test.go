package workout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/hitoshi/liftlog/internal/model"
	"github.com/hitoshi/liftlog/internal/validation"
)

// --- モック ---

type mockWorkoutRepo struct {
	findByIDAndUserFn           func(ctx context.Context, id int64, userID string) (*model.Workout, error)
	findDetailByIDAndUserFn     func(ctx context.Context, id int64, userID string) (*model.WorkoutDetail, error)
	listDetailsByStartedRangeFn func(ctx context.Context, userID string, from, to time.Time) ([]model.WorkoutDetail, error)
	createFn                    func(ctx context.Context, w *model.Workout) error
	updateFn                    func(ctx context.Context, id int64, userID string, name *string, startedAt time.Time, completedAt *time.Time) (int64, error)
	deleteFn                    func(ctx context.Context, id int64, userID string) (int64, error)
}

func (m *mockWorkoutRepo) FindByIDAndUser(ctx context.Context, id int64, userID string) (*model.Workout, error) {
	return m.findByIDAndUserFn(ctx, id, userID)
}
func (m *mockWorkoutRepo) FindDetailByIDAndUser(ctx context.Context, id int64, userID string) (*model.WorkoutDetail, error) {
	return m.findDetailByIDAndUserFn(ctx, id, userID)
}
func (m *mockWorkoutRepo) ListDetailsByStartedRange(ctx context.Context, userID string, from, to time.Time) ([]model.WorkoutDetail, error) {
	return m.listDetailsByStartedRangeFn(ctx, userID, from, to)
}
func (m *mockWorkoutRepo) Create(ctx context.Context, w *model.Workout) error {
	return m.createFn(ctx, w)
}
func (m *mockWorkoutRepo) Update(ctx context.Context, id int64, userID string, name *string, startedAt time.Time, completedAt *time.Time) (int64, error) {
	return m.updateFn(ctx, id, userID, name, startedAt, completedAt)
}
func (m *mockWorkoutRepo) Delete(ctx context.Context, id int64, userID string) (int64, error) {
	return m.deleteFn(ctx, id, userID)
}

type mockExerciseRepo struct {
	findByIDAndUserFn func(ctx context.Context, id int64, userID string) (*model.ExerciseDetail, error)
}

func (m *mockExerciseRepo) ListByUser(ctx context.Context, userID string) ([]model.ExerciseDetail, error) {
	return nil, nil
}
func (m *mockExerciseRepo) FindByIDAndUser(ctx context.Context, id int64, userID string) (*model.ExerciseDetail, error) {
	return m.findByIDAndUserFn(ctx, id, userID)
}
func (m *mockExerciseRepo) Create(ctx context.Context, ex *model.Exercise) error { return nil }
func (m *mockExerciseRepo) Update(ctx context.Context, id int64, userID, name string, muscleGroupID int64) (int64, error) {
	return 0, nil
}
func (m *mockExerciseRepo) Delete(ctx context.Context, id int64, userID string) (int64, error) {
	return 0, nil
}

type mockWERepo struct {
	createFn          func(ctx context.Context, we *model.WorkoutExercise) error
	findOwnerUserIDFn func(ctx context.Context, workoutExerciseID int64) (string, error)
	deleteFn          func(ctx context.Context, id int64) (int64, error)
}

func (m *mockWERepo) Create(ctx context.Context, we *model.WorkoutExercise) error {
	return m.createFn(ctx, we)
}
func (m *mockWERepo) FindOwnerUserID(ctx context.Context, workoutExerciseID int64) (string, error) {
	return m.findOwnerUserIDFn(ctx, workoutExerciseID)
}
func (m *mockWERepo) Delete(ctx context.Context, id int64) (int64, error) {
	return m.deleteFn(ctx, id)
}

type mockSetRepo struct {
	createFn          func(ctx context.Context, s *model.Set) error
	findByIDFn        func(ctx context.Context, id int64) (*model.Set, error)
	findOwnerUserIDFn func(ctx context.Context, setID int64) (string, error)
	updateFn          func(ctx context.Context, id int64, weight *float64, reps *int, rpe *float64, isWarmup bool, durationSeconds *int) (int64, error)
	deleteFn          func(ctx context.Context, id int64) (int64, error)
}

func (m *mockSetRepo) Create(ctx context.Context, s *model.Set) error {
	return m.createFn(ctx, s)
}
func (m *mockSetRepo) FindByID(ctx context.Context, id int64) (*model.Set, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockSetRepo) FindOwnerUserID(ctx context.Context, setID int64) (string, error) {
	return m.findOwnerUserIDFn(ctx, setID)
}
func (m *mockSetRepo) Update(ctx context.Context, id int64, weight *float64, reps *int, rpe *float64, isWarmup bool, durationSeconds *int) (int64, error) {
	return m.updateFn(ctx, id, weight, reps, rpe, isWarmup, durationSeconds)
}
func (m *mockSetRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return m.deleteFn(ctx, id)
}

type mockRecorder struct {
	workoutsCreated int
	setsLogged      int
}

func (m *mockRecorder) RecordWorkoutCreated() { m.workoutsCreated++ }
func (m *mockRecorder) RecordSetLogged()      { m.setsLogged++ }

func newTestService(wr *mockWorkoutRepo, er *mockExerciseRepo, wer *mockWERepo, sr *mockSetRepo, rec *mockRecorder) *Service {
	if wr == nil {
		wr = &mockWorkoutRepo{}
	}
	if er == nil {
		er = &mockExerciseRepo{}
	}
	if wer == nil {
		wer = &mockWERepo{}
	}
	if sr == nil {
		sr = &mockSetRepo{}
	}
	var r Recorder
	if rec != nil {
		r = rec
	}
	return NewService(wr, er, wer, sr, time.UTC, r)
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// --- ワークアウトCRUD ---

func TestListWorkoutsByDate_PassesHalfOpenRange(t *testing.T) {
	var gotFrom, gotTo time.Time
	wr := &mockWorkoutRepo{
		listDetailsByStartedRangeFn: func(ctx context.Context, userID string, from, to time.Time) ([]model.WorkoutDetail, error) {
			gotFrom, gotTo = from, to
			return []model.WorkoutDetail{}, nil
		},
	}
	svc := newTestService(wr, nil, nil, nil, nil)

	_, err := svc.ListWorkoutsByDate(context.Background(), "user-1", "2026-08-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFrom := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if !gotFrom.Equal(wantFrom) {
		t.Errorf("from = %v, want %v", gotFrom, wantFrom)
	}
	if !gotTo.Equal(wantFrom.AddDate(0, 0, 1)) {
		t.Errorf("to = %v, want %v", gotTo, wantFrom.AddDate(0, 0, 1))
	}
}

func TestListWorkoutsByDate_InvalidDate(t *testing.T) {
	svc := newTestService(nil, nil, nil, nil, nil)

	_, err := svc.ListWorkoutsByDate(context.Background(), "user-1", "not-a-date")

	var ve *validation.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestGetWorkout_NotFound(t *testing.T) {
	wr := &mockWorkoutRepo{
		findDetailByIDAndUserFn: func(ctx context.Context, id int64, userID string) (*model.WorkoutDetail, error) {
			return nil, nil
		},
	}
	svc := newTestService(wr, nil, nil, nil, nil)

	_, err := svc.GetWorkout(context.Background(), 42, "user-1")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *model.APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeWorkoutNotFound {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeWorkoutNotFound)
	}
}

func TestCreateWorkout_RecordsMetric(t *testing.T) {
	wr := &mockWorkoutRepo{
		createFn: func(ctx context.Context, w *model.Workout) error {
			w.ID = 7
			return nil
		},
	}
	rec := &mockRecorder{}
	svc := newTestService(wr, nil, nil, nil, rec)

	w, err := svc.CreateWorkout(context.Background(), validation.CreateWorkoutInput{
		UserID:    "user-1",
		StartedAt: "2026-08-30T07:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.ID != 7 {
		t.Errorf("ID = %d, want 7", w.ID)
	}
	if w.Name != nil {
		t.Errorf("Name should be nil, got %v", w.Name)
	}
	if rec.workoutsCreated != 1 {
		t.Errorf("workoutsCreated = %d, want 1", rec.workoutsCreated)
	}
}

// 他ユーザー所有のワークアウト更新は0行更新になり、NOT_FOUNDとして返す
func TestUpdateWorkout_ZeroRowsMeansNotFound(t *testing.T) {
	wr := &mockWorkoutRepo{
		updateFn: func(ctx context.Context, id int64, userID string, name *string, startedAt time.Time, completedAt *time.Time) (int64, error) {
			return 0, nil
		},
	}
	svc := newTestService(wr, nil, nil, nil, nil)

	_, err := svc.UpdateWorkout(context.Background(), validation.UpdateWorkoutInput{
		WorkoutID: 9,
		UserID:    "intruder",
		StartedAt: "2026-08-30T07:00:00Z",
	})

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *model.APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeWorkoutNotFound {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeWorkoutNotFound)
	}
}

func TestUpdateWorkout_ReturnsUpdatedWorkout(t *testing.T) {
	wr := &mockWorkoutRepo{
		updateFn: func(ctx context.Context, id int64, userID string, name *string, startedAt time.Time, completedAt *time.Time) (int64, error) {
			return 1, nil
		},
		findByIDAndUserFn: func(ctx context.Context, id int64, userID string) (*model.Workout, error) {
			return &model.Workout{ID: id, UserID: userID, Name: strPtr("脚の日")}, nil
		},
	}
	svc := newTestService(wr, nil, nil, nil, nil)

	w, err := svc.UpdateWorkout(context.Background(), validation.UpdateWorkoutInput{
		WorkoutID: 9,
		UserID:    "user-1",
		Name:      strPtr("脚の日"),
		StartedAt: "2026-08-30T07:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Name == nil || *w.Name != "脚の日" {
		t.Errorf("unexpected name: %v", w.Name)
	}
}

func TestDeleteWorkout_ZeroRowsMeansNotFound(t *testing.T) {
	wr := &mockWorkoutRepo{
		deleteFn: func(ctx context.Context, id int64, userID string) (int64, error) {
			return 0, nil
		},
	}
	svc := newTestService(wr, nil, nil, nil, nil)

	err := svc.DeleteWorkout(context.Background(), 9, "intruder")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *model.APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeWorkoutNotFound {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeWorkoutNotFound)
	}
}

// --- ワークアウト内種目 ---

func TestAddExercise_ChecksBothOwnerships(t *testing.T) {
	wr := &mockWorkoutRepo{
		findByIDAndUserFn: func(ctx context.Context, id int64, userID string) (*model.Workout, error) {
			return &model.Workout{ID: id, UserID: userID}, nil
		},
	}
	er := &mockExerciseRepo{
		findByIDAndUserFn: func(ctx context.Context, id int64, userID string) (*model.ExerciseDetail, error) {
			return &model.ExerciseDetail{Exercise: model.Exercise{ID: id, UserID: userID}}, nil
		},
	}
	wer := &mockWERepo{
		createFn: func(ctx context.Context, we *model.WorkoutExercise) error {
			we.ID = 3
			return nil
		},
	}
	svc := newTestService(wr, er, wer, nil, nil)

	we, err := svc.AddExercise(context.Background(), "user-1", validation.AddWorkoutExerciseInput{
		WorkoutID:  1,
		ExerciseID: 2,
		Order:      0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if we.ID != 3 {
		t.Errorf("ID = %d, want 3", we.ID)
	}
}

func TestAddExercise_WorkoutNotOwned(t *testing.T) {
	wr := &mockWorkoutRepo{
		findByIDAndUserFn: func(ctx context.Context, id int64, userID string) (*model.Workout, error) {
			return nil, nil
		},
	}
	svc := newTestService(wr, nil, nil, nil, nil)

	_, err := svc.AddExercise(context.Background(), "intruder", validation.AddWorkoutExerciseInput{
		WorkoutID:  1,
		ExerciseID: 2,
		Order:      0,
	})

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *model.APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeWorkoutNotFound {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeWorkoutNotFound)
	}
}

func TestAddExercise_ExerciseNotOwned(t *testing.T) {
	wr := &mockWorkoutRepo{
		findByIDAndUserFn: func(ctx context.Context, id int64, userID string) (*model.Workout, error) {
			return &model.Workout{ID: id, UserID: userID}, nil
		},
	}
	er := &mockExerciseRepo{
		findByIDAndUserFn: func(ctx context.Context, id int64, userID string) (*model.ExerciseDetail, error) {
			return nil, nil
		},
	}
	svc := newTestService(wr, er, nil, nil, nil)

	_, err := svc.AddExercise(context.Background(), "user-1", validation.AddWorkoutExerciseInput{
		WorkoutID:  1,
		ExerciseID: 2,
		Order:      0,
	})

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *model.APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeExerciseNotFound {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeExerciseNotFound)
	}
}

// 所有権確認後・挿入前にワークアウトが削除された場合、
// FK違反は500ではなくWORKOUT_NOT_FOUNDとして返す
func TestAddExercise_WorkoutDeletedDuringCreate(t *testing.T) {
	wr := &mockWorkoutRepo{
		findByIDAndUserFn: func(ctx context.Context, id int64, userID string) (*model.Workout, error) {
			return &model.Workout{ID: id, UserID: userID}, nil
		},
	}
	er := &mockExerciseRepo{
		findByIDAndUserFn: func(ctx context.Context, id int64, userID string) (*model.ExerciseDetail, error) {
			return &model.ExerciseDetail{Exercise: model.Exercise{ID: id, UserID: userID}}, nil
		},
	}
	wer := &mockWERepo{
		createFn: func(ctx context.Context, we *model.WorkoutExercise) error {
			return &pq.Error{Code: "23503", Constraint: "workout_exercises_workout_id_fkey"}
		},
	}
	svc := newTestService(wr, er, wer, nil, nil)

	_, err := svc.AddExercise(context.Background(), "user-1", validation.AddWorkoutExerciseInput{
		WorkoutID:  1,
		ExerciseID: 2,
		Order:      0,
	})

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *model.APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeWorkoutNotFound {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeWorkoutNotFound)
	}
}

// 種目側のFK違反は違反した制約で区別してEXERCISE_NOT_FOUNDになる
func TestAddExercise_ExerciseDeletedDuringCreate(t *testing.T) {
	wr := &mockWorkoutRepo{
		findByIDAndUserFn: func(ctx context.Context, id int64, userID string) (*model.Workout, error) {
			return &model.Workout{ID: id, UserID: userID}, nil
		},
	}
	er := &mockExerciseRepo{
		findByIDAndUserFn: func(ctx context.Context, id int64, userID string) (*model.ExerciseDetail, error) {
			return &model.ExerciseDetail{Exercise: model.Exercise{ID: id, UserID: userID}}, nil
		},
	}
	wer := &mockWERepo{
		createFn: func(ctx context.Context, we *model.WorkoutExercise) error {
			return &pq.Error{Code: "23503", Constraint: "workout_exercises_exercise_id_fkey"}
		},
	}
	svc := newTestService(wr, er, wer, nil, nil)

	_, err := svc.AddExercise(context.Background(), "user-1", validation.AddWorkoutExerciseInput{
		WorkoutID:  1,
		ExerciseID: 2,
		Order:      0,
	})

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *model.APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeExerciseNotFound {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeExerciseNotFound)
	}
}

// 他ユーザーのワークアウト内種目の削除は認可エラーではなくNOT_FOUNDになる
func TestRemoveExercise_NotOwner(t *testing.T) {
	wer := &mockWERepo{
		findOwnerUserIDFn: func(ctx context.Context, workoutExerciseID int64) (string, error) {
			return "someone-else", nil
		},
	}
	svc := newTestService(nil, nil, wer, nil, nil)

	err := svc.RemoveExercise(context.Background(), "intruder", 5)

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *model.APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeWorkoutExerciseNotFound {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeWorkoutExerciseNotFound)
	}
}

func TestRemoveExercise_Succeeds(t *testing.T) {
	deleted := false
	wer := &mockWERepo{
		findOwnerUserIDFn: func(ctx context.Context, workoutExerciseID int64) (string, error) {
			return "user-1", nil
		},
		deleteFn: func(ctx context.Context, id int64) (int64, error) {
			deleted = true
			return 1, nil
		},
	}
	svc := newTestService(nil, nil, wer, nil, nil)

	if err := svc.RemoveExercise(context.Background(), "user-1", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("delete was not called")
	}
}

// --- セット ---

func TestAddSet_NotOwner(t *testing.T) {
	wer := &mockWERepo{
		findOwnerUserIDFn: func(ctx context.Context, workoutExerciseID int64) (string, error) {
			return "", nil
		},
	}
	svc := newTestService(nil, nil, wer, nil, nil)

	_, err := svc.AddSet(context.Background(), "user-1", validation.AddSetInput{
		WorkoutExerciseID: 5,
		Order:             1,
	})

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *model.APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeWorkoutExerciseNotFound {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeWorkoutExerciseNotFound)
	}
}

// 所有権確認後・挿入前にワークアウト内種目が削除された場合、
// FK違反は500ではなくWORKOUT_EXERCISE_NOT_FOUNDとして返す
func TestAddSet_WorkoutExerciseDeletedDuringCreate(t *testing.T) {
	wer := &mockWERepo{
		findOwnerUserIDFn: func(ctx context.Context, workoutExerciseID int64) (string, error) {
			return "user-1", nil
		},
	}
	sr := &mockSetRepo{
		createFn: func(ctx context.Context, s *model.Set) error {
			return &pq.Error{Code: "23503", Constraint: "sets_workout_exercise_id_fkey"}
		},
	}
	svc := newTestService(nil, nil, wer, sr, nil)

	_, err := svc.AddSet(context.Background(), "user-1", validation.AddSetInput{
		WorkoutExerciseID: 5,
		Order:             1,
	})

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *model.APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeWorkoutExerciseNotFound {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeWorkoutExerciseNotFound)
	}
}

func TestAddSet_RecordsMetricAndKeepsNilValues(t *testing.T) {
	wer := &mockWERepo{
		findOwnerUserIDFn: func(ctx context.Context, workoutExerciseID int64) (string, error) {
			return "user-1", nil
		},
	}
	var created *model.Set
	sr := &mockSetRepo{
		createFn: func(ctx context.Context, s *model.Set) error {
			s.ID = 11
			created = s
			return nil
		},
	}
	rec := &mockRecorder{}
	svc := newTestService(nil, nil, wer, sr, rec)

	set, err := svc.AddSet(context.Background(), "user-1", validation.AddSetInput{
		WorkoutExerciseID: 5,
		Order:             1,
		Weight:            floatPtr(100),
		IsWarmup:          true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.ID != 11 {
		t.Errorf("ID = %d, want 11", set.ID)
	}
	if rec.setsLogged != 1 {
		t.Errorf("setsLogged = %d, want 1", rec.setsLogged)
	}
	// 未記録の値はnilのまま永続化層へ渡す
	if created.Reps != nil || created.RPE != nil || created.DurationSeconds != nil {
		t.Errorf("unrecorded values should stay nil: %+v", created)
	}
	if !created.IsWarmup {
		t.Error("IsWarmup should be true")
	}
}

func TestUpdateSet_NotOwner(t *testing.T) {
	sr := &mockSetRepo{
		findOwnerUserIDFn: func(ctx context.Context, setID int64) (string, error) {
			return "someone-else", nil
		},
	}
	svc := newTestService(nil, nil, nil, sr, nil)

	_, err := svc.UpdateSet(context.Background(), "intruder", validation.UpdateSetInput{SetID: 11})

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *model.APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeSetNotFound {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeSetNotFound)
	}
}

func TestUpdateSet_ReturnsUpdatedSet(t *testing.T) {
	sr := &mockSetRepo{
		findOwnerUserIDFn: func(ctx context.Context, setID int64) (string, error) {
			return "user-1", nil
		},
		updateFn: func(ctx context.Context, id int64, weight *float64, reps *int, rpe *float64, isWarmup bool, durationSeconds *int) (int64, error) {
			return 1, nil
		},
		findByIDFn: func(ctx context.Context, id int64) (*model.Set, error) {
			return &model.Set{ID: id, Weight: floatPtr(105), Reps: intPtr(3)}, nil
		},
	}
	svc := newTestService(nil, nil, nil, sr, nil)

	set, err := svc.UpdateSet(context.Background(), "user-1", validation.UpdateSetInput{
		SetID:  11,
		Weight: floatPtr(105),
		Reps:   intPtr(3),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Weight == nil || *set.Weight != 105 {
		t.Errorf("unexpected weight: %v", set.Weight)
	}
}

func TestDeleteSet_NotOwner(t *testing.T) {
	sr := &mockSetRepo{
		findOwnerUserIDFn: func(ctx context.Context, setID int64) (string, error) {
			return "", nil
		},
	}
	svc := newTestService(nil, nil, nil, sr, nil)

	err := svc.DeleteSet(context.Background(), "user-1", 11)

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *model.APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeSetNotFound {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeSetNotFound)
	}
}

func TestDeleteSet_Succeeds(t *testing.T) {
	sr := &mockSetRepo{
		findOwnerUserIDFn: func(ctx context.Context, setID int64) (string, error) {
			return "user-1", nil
		},
		deleteFn: func(ctx context.Context, id int64) (int64, error) {
			return 1, nil
		},
	}
	svc := newTestService(nil, nil, nil, sr, nil)

	if err := svc.DeleteSet(context.Background(), "user-1", 11); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
