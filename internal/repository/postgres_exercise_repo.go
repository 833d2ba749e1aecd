package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/liftlog/internal/model"
)

// PostgresExerciseRepo はPostgreSQLを使用した種目リポジトリ。
type PostgresExerciseRepo struct {
	db *sql.DB
}

// NewPostgresExerciseRepo はPostgresExerciseRepoを生成する。
func NewPostgresExerciseRepo(db *sql.DB) *PostgresExerciseRepo {
	return &PostgresExerciseRepo{db: db}
}

// ListByUser は指定ユーザーの種目一覧を部位付き・名前昇順で返す。
func (r *PostgresExerciseRepo) ListByUser(ctx context.Context, userID string) ([]model.ExerciseDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT e.id, e.name, e.user_id, e.muscle_group_id, e.created_at, e.updated_at,
		        m.id, m.name, m.created_at, m.updated_at
		 FROM exercises e
		 JOIN muscle_groups m ON e.muscle_group_id = m.id
		 WHERE e.user_id = $1
		 ORDER BY e.name ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("種目一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var exercises []model.ExerciseDetail
	for rows.Next() {
		var ed model.ExerciseDetail
		if err := rows.Scan(
			&ed.ID, &ed.Name, &ed.UserID, &ed.MuscleGroupID, &ed.CreatedAt, &ed.UpdatedAt,
			&ed.MuscleGroup.ID, &ed.MuscleGroup.Name, &ed.MuscleGroup.CreatedAt, &ed.MuscleGroup.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("種目行の読み取りに失敗しました: %w", err)
		}
		exercises = append(exercises, ed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("種目一覧の走査に失敗しました: %w", err)
	}
	return exercises, nil
}

// FindByIDAndUser は指定IDかつ指定ユーザー所有の種目を部位付きで取得する。
// 見つからない場合はnilを返す。
func (r *PostgresExerciseRepo) FindByIDAndUser(ctx context.Context, id int64, userID string) (*model.ExerciseDetail, error) {
	ed := &model.ExerciseDetail{}
	err := r.db.QueryRowContext(ctx,
		`SELECT e.id, e.name, e.user_id, e.muscle_group_id, e.created_at, e.updated_at,
		        m.id, m.name, m.created_at, m.updated_at
		 FROM exercises e
		 JOIN muscle_groups m ON e.muscle_group_id = m.id
		 WHERE e.id = $1 AND e.user_id = $2`,
		id, userID,
	).Scan(
		&ed.ID, &ed.Name, &ed.UserID, &ed.MuscleGroupID, &ed.CreatedAt, &ed.UpdatedAt,
		&ed.MuscleGroup.ID, &ed.MuscleGroup.Name, &ed.MuscleGroup.CreatedAt, &ed.MuscleGroup.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("種目の取得に失敗しました: %w", err)
	}

	return ed, nil
}

// Create は種目を作成し、採番されたIDと作成日時をexに書き戻す。
// 存在しない部位IDを参照した場合は外部キー制約違反のエラーがそのまま返る。
func (r *PostgresExerciseRepo) Create(ctx context.Context, ex *model.Exercise) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO exercises (name, user_id, muscle_group_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		ex.Name, ex.UserID, ex.MuscleGroupID,
	).Scan(&ex.ID, &ex.CreatedAt, &ex.UpdatedAt)
	if err != nil {
		return fmt.Errorf("種目の作成に失敗しました: %w", err)
	}
	return nil
}

// Update は指定IDかつ指定ユーザー所有の種目の名前と部位を更新し、影響行数を返す。
// 他ユーザー所有の場合は0行更新の何もしない結果になる（存在の秘匿）。
func (r *PostgresExerciseRepo) Update(ctx context.Context, id int64, userID, name string, muscleGroupID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE exercises SET name = $3, muscle_group_id = $4, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2`,
		id, userID, name, muscleGroupID,
	)
	if err != nil {
		return 0, fmt.Errorf("種目の更新に失敗しました: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("更新結果の取得に失敗しました: %w", err)
	}
	return rowsAffected, nil
}

// Delete は指定IDかつ指定ユーザー所有の種目を削除し、影響行数を返す。
// 参照しているworkout_exercisesとsetsはCASCADE削除される。
func (r *PostgresExerciseRepo) Delete(ctx context.Context, id int64, userID string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM exercises WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("種目の削除に失敗しました: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("削除結果の取得に失敗しました: %w", err)
	}
	return rowsAffected, nil
}

// compile-time interface check
var _ ExerciseRepository = (*PostgresExerciseRepo)(nil)
