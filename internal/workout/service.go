// Package workout はワークアウト管理のドメインロジックを提供する。
//
// workout_exercisesとsetsのリポジトリはユーザーIDで絞り込まないため、
// このサービス層が所有権確認の唯一の実施箇所になる。子リソースへの操作は
// 必ず親ワークアウトの所有者をJOINで解決してから行う。
package workout

import (
	"context"
	"fmt"
	"time"

	"github.com/hitoshi/liftlog/internal/model"
	"github.com/hitoshi/liftlog/internal/repository"
	"github.com/hitoshi/liftlog/internal/validation"
)

// Recorder はワークアウト操作のメトリクス記録に必要なインターフェース。
// metrics.Collectorの部分集合として定義する。
type Recorder interface {
	RecordWorkoutCreated()
	RecordSetLogged()
}

// Service はワークアウト管理のサービス層。
type Service struct {
	workoutRepo  repository.WorkoutRepository
	exerciseRepo repository.ExerciseRepository
	weRepo       repository.WorkoutExerciseRepository
	setRepo      repository.SetRepository
	loc          *time.Location
	recorder     Recorder
}

// NewService はServiceの新しいインスタンスを生成する。
// locは日付指定一覧の1日区間の基準タイムゾーン。recorderはnil可。
func NewService(
	workoutRepo repository.WorkoutRepository,
	exerciseRepo repository.ExerciseRepository,
	weRepo repository.WorkoutExerciseRepository,
	setRepo repository.SetRepository,
	loc *time.Location,
	recorder Recorder,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		weRepo:       weRepo,
		setRepo:      setRepo,
		loc:          loc,
		recorder:     recorder,
	}
}

// ListWorkoutsByDate は指定日のワークアウト一覧をネスト込みで返す。
// 区間は設定タイムゾーンにおける [0時, 翌日0時) の半開区間で、
// 翌日0時ちょうどに開始したワークアウトは含まれない。
func (s *Service) ListWorkoutsByDate(ctx context.Context, userID, date string) ([]model.WorkoutDetail, error) {
	params, err := validation.ValidateListWorkouts(validation.ListWorkoutsInput{UserID: userID, Date: date}, s.loc)
	if err != nil {
		return nil, err
	}

	details, err := s.workoutRepo.ListDetailsByStartedRange(ctx, params.UserID, params.From, params.To)
	if err != nil {
		return nil, fmt.Errorf("ワークアウト一覧の取得に失敗しました: %w", err)
	}
	return details, nil
}

// GetWorkout は指定IDのワークアウトをネスト込みで返す。
// 見つからない場合・他ユーザー所有の場合は区別せずWORKOUT_NOT_FOUNDを返す。
func (s *Service) GetWorkout(ctx context.Context, workoutID int64, userID string) (*model.WorkoutDetail, error) {
	if err := validation.ValidateWorkoutRef(validation.WorkoutRefInput{WorkoutID: workoutID, UserID: userID}); err != nil {
		return nil, err
	}

	detail, err := s.workoutRepo.FindDetailByIDAndUser(ctx, workoutID, userID)
	if err != nil {
		return nil, fmt.Errorf("ワークアウトの取得に失敗しました: %w", err)
	}
	if detail == nil {
		return nil, model.NewWorkoutNotFoundError(workoutID)
	}
	return detail, nil
}

// CreateWorkout はワークアウトを作成して返す。
// completedAt >= startedAt の検証は意図的に行わない。
func (s *Service) CreateWorkout(ctx context.Context, in validation.CreateWorkoutInput) (*model.Workout, error) {
	params, err := validation.ValidateCreateWorkout(in)
	if err != nil {
		return nil, err
	}

	w := &model.Workout{
		UserID:      params.UserID,
		Name:        params.Name,
		StartedAt:   params.StartedAt,
		CompletedAt: params.CompletedAt,
	}
	if err := s.workoutRepo.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("ワークアウトの作成に失敗しました: %w", err)
	}

	if s.recorder != nil {
		s.recorder.RecordWorkoutCreated()
	}
	return w, nil
}

// UpdateWorkout はワークアウトの名前・開始/完了日時を更新して返す。
// 他ユーザー所有の場合は0行更新となり、WORKOUT_NOT_FOUNDとして返す
// （存在を漏らさないため、認可エラーにはしない）。
func (s *Service) UpdateWorkout(ctx context.Context, in validation.UpdateWorkoutInput) (*model.Workout, error) {
	params, err := validation.ValidateUpdateWorkout(in)
	if err != nil {
		return nil, err
	}

	rowsAffected, err := s.workoutRepo.Update(ctx, params.WorkoutID, params.UserID, params.Name, params.StartedAt, params.CompletedAt)
	if err != nil {
		return nil, fmt.Errorf("ワークアウトの更新に失敗しました: %w", err)
	}
	if rowsAffected == 0 {
		return nil, model.NewWorkoutNotFoundError(params.WorkoutID)
	}

	w, err := s.workoutRepo.FindByIDAndUser(ctx, params.WorkoutID, params.UserID)
	if err != nil {
		return nil, fmt.Errorf("更新したワークアウトの再取得に失敗しました: %w", err)
	}
	if w == nil {
		return nil, model.NewWorkoutNotFoundError(params.WorkoutID)
	}
	return w, nil
}

// DeleteWorkout はワークアウトを削除する。
// 関連するworkout_exercisesとsetsはCASCADE削除される。
func (s *Service) DeleteWorkout(ctx context.Context, workoutID int64, userID string) error {
	if err := validation.ValidateWorkoutRef(validation.WorkoutRefInput{WorkoutID: workoutID, UserID: userID}); err != nil {
		return err
	}

	rowsAffected, err := s.workoutRepo.Delete(ctx, workoutID, userID)
	if err != nil {
		return fmt.Errorf("ワークアウトの削除に失敗しました: %w", err)
	}
	if rowsAffected == 0 {
		return model.NewWorkoutNotFoundError(workoutID)
	}
	return nil
}

// AddExercise はワークアウトに種目を追加して返す。
// 追加前に対象ワークアウトと種目の両方が呼び出しユーザー所有であることを確認する。
func (s *Service) AddExercise(ctx context.Context, userID string, in validation.AddWorkoutExerciseInput) (*model.WorkoutExercise, error) {
	if userID == "" {
		return nil, validation.NewError("userId", "必須です")
	}
	if err := validation.ValidateAddWorkoutExercise(in); err != nil {
		return nil, err
	}

	w, err := s.workoutRepo.FindByIDAndUser(ctx, in.WorkoutID, userID)
	if err != nil {
		return nil, fmt.Errorf("ワークアウトの取得に失敗しました: %w", err)
	}
	if w == nil {
		return nil, model.NewWorkoutNotFoundError(in.WorkoutID)
	}

	ex, err := s.exerciseRepo.FindByIDAndUser(ctx, in.ExerciseID, userID)
	if err != nil {
		return nil, fmt.Errorf("種目の取得に失敗しました: %w", err)
	}
	if ex == nil {
		return nil, model.NewExerciseNotFoundError(in.ExerciseID)
	}

	we := &model.WorkoutExercise{
		WorkoutID:  in.WorkoutID,
		ExerciseID: in.ExerciseID,
		Order:      in.Order,
		Notes:      in.Notes,
	}
	if err := s.weRepo.Create(ctx, we); err != nil {
		// 所有権確認から挿入までの間に親が削除されるとFK違反として現れる
		switch {
		case repository.IsForeignKeyViolationOn(err, "exercise_id"):
			return nil, model.NewExerciseNotFoundError(in.ExerciseID)
		case repository.IsForeignKeyViolation(err):
			return nil, model.NewWorkoutNotFoundError(in.WorkoutID)
		}
		return nil, fmt.Errorf("ワークアウト内種目の作成に失敗しました: %w", err)
	}
	return we, nil
}

// RemoveExercise はワークアウトから種目を取り除く。
// 関連するsetsはCASCADE削除される。
func (s *Service) RemoveExercise(ctx context.Context, userID string, workoutExerciseID int64) error {
	if userID == "" {
		return validation.NewError("userId", "必須です")
	}
	if err := validation.ValidateRemoveWorkoutExercise(validation.RemoveWorkoutExerciseInput{WorkoutExerciseID: workoutExerciseID}); err != nil {
		return err
	}

	owner, err := s.weRepo.FindOwnerUserID(ctx, workoutExerciseID)
	if err != nil {
		return fmt.Errorf("ワークアウト内種目の所有者解決に失敗しました: %w", err)
	}
	if owner == "" || owner != userID {
		return model.NewWorkoutExerciseNotFoundError(workoutExerciseID)
	}

	rowsAffected, err := s.weRepo.Delete(ctx, workoutExerciseID)
	if err != nil {
		return fmt.Errorf("ワークアウト内種目の削除に失敗しました: %w", err)
	}
	if rowsAffected == 0 {
		return model.NewWorkoutExerciseNotFoundError(workoutExerciseID)
	}
	return nil
}

// AddSet はワークアウト内種目にセットを追加して返す。
func (s *Service) AddSet(ctx context.Context, userID string, in validation.AddSetInput) (*model.Set, error) {
	if userID == "" {
		return nil, validation.NewError("userId", "必須です")
	}
	if err := validation.ValidateAddSet(in); err != nil {
		return nil, err
	}

	owner, err := s.weRepo.FindOwnerUserID(ctx, in.WorkoutExerciseID)
	if err != nil {
		return nil, fmt.Errorf("ワークアウト内種目の所有者解決に失敗しました: %w", err)
	}
	if owner == "" || owner != userID {
		return nil, model.NewWorkoutExerciseNotFoundError(in.WorkoutExerciseID)
	}

	set := &model.Set{
		WorkoutExerciseID: in.WorkoutExerciseID,
		Order:             in.Order,
		Weight:            in.Weight,
		Reps:              in.Reps,
		DurationSeconds:   in.DurationSeconds,
		RPE:               in.RPE,
		IsWarmup:          in.IsWarmup,
	}
	if err := s.setRepo.Create(ctx, set); err != nil {
		// 所有権確認から挿入までの間に親が削除されるとFK違反として現れる
		if repository.IsForeignKeyViolation(err) {
			return nil, model.NewWorkoutExerciseNotFoundError(in.WorkoutExerciseID)
		}
		return nil, fmt.Errorf("セットの作成に失敗しました: %w", err)
	}

	if s.recorder != nil {
		s.recorder.RecordSetLogged()
	}
	return set, nil
}

// UpdateSet はセットの記録値を更新して返す。
// orderとidは変更されない。同一セットへの並行更新は後勝ちになる。
func (s *Service) UpdateSet(ctx context.Context, userID string, in validation.UpdateSetInput) (*model.Set, error) {
	if userID == "" {
		return nil, validation.NewError("userId", "必須です")
	}
	if err := validation.ValidateUpdateSet(in); err != nil {
		return nil, err
	}

	owner, err := s.setRepo.FindOwnerUserID(ctx, in.SetID)
	if err != nil {
		return nil, fmt.Errorf("セットの所有者解決に失敗しました: %w", err)
	}
	if owner == "" || owner != userID {
		return nil, model.NewSetNotFoundError(in.SetID)
	}

	rowsAffected, err := s.setRepo.Update(ctx, in.SetID, in.Weight, in.Reps, in.RPE, in.IsWarmup, in.DurationSeconds)
	if err != nil {
		return nil, fmt.Errorf("セットの更新に失敗しました: %w", err)
	}
	if rowsAffected == 0 {
		return nil, model.NewSetNotFoundError(in.SetID)
	}

	set, err := s.setRepo.FindByID(ctx, in.SetID)
	if err != nil {
		return nil, fmt.Errorf("更新したセットの再取得に失敗しました: %w", err)
	}
	if set == nil {
		return nil, model.NewSetNotFoundError(in.SetID)
	}
	return set, nil
}

// DeleteSet はセットを削除する。
func (s *Service) DeleteSet(ctx context.Context, userID string, setID int64) error {
	if userID == "" {
		return validation.NewError("userId", "必須です")
	}
	if err := validation.ValidateRemoveSet(validation.RemoveSetInput{SetID: setID}); err != nil {
		return err
	}

	owner, err := s.setRepo.FindOwnerUserID(ctx, setID)
	if err != nil {
		return fmt.Errorf("セットの所有者解決に失敗しました: %w", err)
	}
	if owner == "" || owner != userID {
		return model.NewSetNotFoundError(setID)
	}

	rowsAffected, err := s.setRepo.Delete(ctx, setID)
	if err != nil {
		return fmt.Errorf("セットの削除に失敗しました: %w", err)
	}
	if rowsAffected == 0 {
		return model.NewSetNotFoundError(setID)
	}
	return nil
}
