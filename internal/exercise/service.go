// Package exercise は種目管理のドメインロジックを提供する。
package exercise

import (
	"context"
	"fmt"

	"github.com/hitoshi/liftlog/internal/model"
	"github.com/hitoshi/liftlog/internal/repository"
	"github.com/hitoshi/liftlog/internal/validation"
)

// Recorder は種目操作のメトリクス記録に必要なインターフェース。
// metrics.Collectorの部分集合として定義する。
type Recorder interface {
	RecordExerciseCreated()
}

// Service は種目管理のサービス層。
// 入力検証とユーザーIDによる所有権スコープを担う。
type Service struct {
	repo     repository.ExerciseRepository
	recorder Recorder
}

// NewService はServiceの新しいインスタンスを生成する。
// recorderはnil可（テストなどメトリクス不要の場合）。
func NewService(repo repository.ExerciseRepository, recorder Recorder) *Service {
	return &Service{repo: repo, recorder: recorder}
}

// ListExercises は指定ユーザーの種目一覧を部位付き・名前昇順で返す。
func (s *Service) ListExercises(ctx context.Context, userID string) ([]model.ExerciseDetail, error) {
	if userID == "" {
		return nil, validation.NewError("userId", "必須です")
	}
	exercises, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("種目一覧の取得に失敗しました: %w", err)
	}
	return exercises, nil
}

// GetExercise は指定IDの種目を部位付きで返す。
// 見つからない場合・他ユーザー所有の場合は区別せずEXERCISE_NOT_FOUNDを返す。
func (s *Service) GetExercise(ctx context.Context, exerciseID int64, userID string) (*model.ExerciseDetail, error) {
	if err := validation.ValidateExerciseRef(validation.ExerciseRefInput{ExerciseID: exerciseID, UserID: userID}); err != nil {
		return nil, err
	}

	ed, err := s.repo.FindByIDAndUser(ctx, exerciseID, userID)
	if err != nil {
		return nil, fmt.Errorf("種目の取得に失敗しました: %w", err)
	}
	if ed == nil {
		return nil, model.NewExerciseNotFoundError(exerciseID)
	}
	return ed, nil
}

// CreateExercise は種目を作成し、部位付きで返す。
// 存在しない部位を参照した場合はMUSCLE_GROUP_NOT_FOUNDを返す。
func (s *Service) CreateExercise(ctx context.Context, in validation.CreateExerciseInput) (*model.ExerciseDetail, error) {
	if err := validation.ValidateCreateExercise(in); err != nil {
		return nil, err
	}

	ex := &model.Exercise{
		Name:          in.Name,
		UserID:        in.UserID,
		MuscleGroupID: in.MuscleGroupID,
	}
	if err := s.repo.Create(ctx, ex); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, model.NewMuscleGroupNotFoundError(in.MuscleGroupID)
		}
		return nil, fmt.Errorf("種目の作成に失敗しました: %w", err)
	}

	if s.recorder != nil {
		s.recorder.RecordExerciseCreated()
	}

	ed, err := s.repo.FindByIDAndUser(ctx, ex.ID, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("作成した種目の再取得に失敗しました: %w", err)
	}
	if ed == nil {
		return nil, model.NewExerciseNotFoundError(ex.ID)
	}
	return ed, nil
}

// UpdateExercise は種目の名前と部位を更新し、部位付きで返す。
// 他ユーザー所有の種目は0行更新となり、EXERCISE_NOT_FOUNDとして返す
// （存在を漏らさないため、認可エラーにはしない）。
func (s *Service) UpdateExercise(ctx context.Context, in validation.UpdateExerciseInput) (*model.ExerciseDetail, error) {
	if err := validation.ValidateUpdateExercise(in); err != nil {
		return nil, err
	}

	rowsAffected, err := s.repo.Update(ctx, in.ExerciseID, in.UserID, in.Name, in.MuscleGroupID)
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, model.NewMuscleGroupNotFoundError(in.MuscleGroupID)
		}
		return nil, fmt.Errorf("種目の更新に失敗しました: %w", err)
	}
	if rowsAffected == 0 {
		return nil, model.NewExerciseNotFoundError(in.ExerciseID)
	}

	ed, err := s.repo.FindByIDAndUser(ctx, in.ExerciseID, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("更新した種目の再取得に失敗しました: %w", err)
	}
	if ed == nil {
		return nil, model.NewExerciseNotFoundError(in.ExerciseID)
	}
	return ed, nil
}

// DeleteExercise は種目を削除する。
// 参照しているworkout_exercisesとsetsはCASCADE削除される。
// 他ユーザー所有の種目は0行削除となり、EXERCISE_NOT_FOUNDとして返す。
func (s *Service) DeleteExercise(ctx context.Context, exerciseID int64, userID string) error {
	if err := validation.ValidateExerciseRef(validation.ExerciseRefInput{ExerciseID: exerciseID, UserID: userID}); err != nil {
		return err
	}

	rowsAffected, err := s.repo.Delete(ctx, exerciseID, userID)
	if err != nil {
		return fmt.Errorf("種目の削除に失敗しました: %w", err)
	}
	if rowsAffected == 0 {
		return model.NewExerciseNotFoundError(exerciseID)
	}
	return nil
}
