package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/liftlog/internal/model"
)

// PostgresSetRepo はPostgreSQLを使用したセットリポジトリ。
// ユーザーIDでは絞り込まない。所有権の確認はサービス層がFindOwnerUserIDで行う。
type PostgresSetRepo struct {
	db *sql.DB
}

// NewPostgresSetRepo はPostgresSetRepoを生成する。
func NewPostgresSetRepo(db *sql.DB) *PostgresSetRepo {
	return &PostgresSetRepo{db: db}
}

// Create はセットを作成し、採番されたIDと作成日時をsに書き戻す。
func (r *PostgresSetRepo) Create(ctx context.Context, s *model.Set) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO sets (workout_exercise_id, "order", weight, reps, duration_seconds, rpe, is_warmup)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		s.WorkoutExerciseID, s.Order, s.Weight, s.Reps, s.DurationSeconds, s.RPE, s.IsWarmup,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("セットの作成に失敗しました: %w", err)
	}
	return nil
}

// FindByID は指定IDのセットを取得する。見つからない場合はnilを返す。
func (r *PostgresSetRepo) FindByID(ctx context.Context, id int64) (*model.Set, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, workout_exercise_id, "order", weight, reps, duration_seconds, rpe, is_warmup, created_at, updated_at
		 FROM sets WHERE id = $1`,
		id,
	)

	s, err := scanSet(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("セットの取得に失敗しました: %w", err)
	}
	return s, nil
}

// FindOwnerUserID は親ワークアウトの所有ユーザーIDをJOINで解決する。
// 行が存在しない場合は空文字列を返す。
func (r *PostgresSetRepo) FindOwnerUserID(ctx context.Context, setID int64) (string, error) {
	var userID string
	err := r.db.QueryRowContext(ctx,
		`SELECT w.user_id
		 FROM sets s
		 JOIN workout_exercises we ON s.workout_exercise_id = we.id
		 JOIN workouts w ON we.workout_id = w.id
		 WHERE s.id = $1`,
		setID,
	).Scan(&userID)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("セットの所有者解決に失敗しました: %w", err)
	}
	return userID, nil
}

// Update は指定IDのセットの記録値を更新し、影響行数を返す。
// orderとworkout_exercise_idは変更しない。
func (r *PostgresSetRepo) Update(ctx context.Context, id int64, weight *float64, reps *int, rpe *float64, isWarmup bool, durationSeconds *int) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE sets SET weight = $2, reps = $3, rpe = $4, is_warmup = $5, duration_seconds = $6, updated_at = NOW()
		 WHERE id = $1`,
		id, weight, reps, rpe, isWarmup, durationSeconds,
	)
	if err != nil {
		return 0, fmt.Errorf("セットの更新に失敗しました: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("更新結果の取得に失敗しました: %w", err)
	}
	return rowsAffected, nil
}

// Delete は指定IDのセットを削除し、影響行数を返す。
func (r *PostgresSetRepo) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM sets WHERE id = $1`,
		id,
	)
	if err != nil {
		return 0, fmt.Errorf("セットの削除に失敗しました: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("削除結果の取得に失敗しました: %w", err)
	}
	return rowsAffected, nil
}

// compile-time interface check
var _ SetRepository = (*PostgresSetRepo)(nil)
