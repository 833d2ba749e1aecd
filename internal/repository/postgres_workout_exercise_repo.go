package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/liftlog/internal/model"
)

// PostgresWorkoutExerciseRepo はPostgreSQLを使用したワークアウト内種目リポジトリ。
// ユーザーIDでは絞り込まない。所有権の確認はサービス層がFindOwnerUserIDで行う。
type PostgresWorkoutExerciseRepo struct {
	db *sql.DB
}

// NewPostgresWorkoutExerciseRepo はPostgresWorkoutExerciseRepoを生成する。
func NewPostgresWorkoutExerciseRepo(db *sql.DB) *PostgresWorkoutExerciseRepo {
	return &PostgresWorkoutExerciseRepo{db: db}
}

// Create はワークアウト内種目を作成し、採番されたIDと作成日時をweに書き戻す。
func (r *PostgresWorkoutExerciseRepo) Create(ctx context.Context, we *model.WorkoutExercise) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO workout_exercises (workout_id, exercise_id, "order", notes)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		we.WorkoutID, we.ExerciseID, we.Order, we.Notes,
	).Scan(&we.ID, &we.CreatedAt, &we.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ワークアウト内種目の作成に失敗しました: %w", err)
	}
	return nil
}

// FindOwnerUserID は親ワークアウトの所有ユーザーIDをJOINで解決する。
// 行が存在しない場合は空文字列を返す。
func (r *PostgresWorkoutExerciseRepo) FindOwnerUserID(ctx context.Context, workoutExerciseID int64) (string, error) {
	var userID string
	err := r.db.QueryRowContext(ctx,
		`SELECT w.user_id
		 FROM workout_exercises we
		 JOIN workouts w ON we.workout_id = w.id
		 WHERE we.id = $1`,
		workoutExerciseID,
	).Scan(&userID)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("ワークアウト内種目の所有者解決に失敗しました: %w", err)
	}
	return userID, nil
}

// Delete は指定IDのワークアウト内種目を削除し、影響行数を返す。
// 関連するsetsはCASCADE削除される。
func (r *PostgresWorkoutExerciseRepo) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM workout_exercises WHERE id = $1`,
		id,
	)
	if err != nil {
		return 0, fmt.Errorf("ワークアウト内種目の削除に失敗しました: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("削除結果の取得に失敗しました: %w", err)
	}
	return rowsAffected, nil
}

// compile-time interface check
var _ WorkoutExerciseRepository = (*PostgresWorkoutExerciseRepo)(nil)
