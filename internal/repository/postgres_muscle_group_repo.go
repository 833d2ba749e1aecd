package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/liftlog/internal/model"
)

// PostgresMuscleGroupRepo はPostgreSQLを使用した部位リポジトリ。
type PostgresMuscleGroupRepo struct {
	db *sql.DB
}

// NewPostgresMuscleGroupRepo はPostgresMuscleGroupRepoを生成する。
func NewPostgresMuscleGroupRepo(db *sql.DB) *PostgresMuscleGroupRepo {
	return &PostgresMuscleGroupRepo{db: db}
}

// List は全部位を名前昇順で返す。
func (r *PostgresMuscleGroupRepo) List(ctx context.Context) ([]*model.MuscleGroup, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at
		 FROM muscle_groups ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("部位一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var groups []*model.MuscleGroup
	for rows.Next() {
		mg := &model.MuscleGroup{}
		if err := rows.Scan(&mg.ID, &mg.Name, &mg.CreatedAt, &mg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("部位行の読み取りに失敗しました: %w", err)
		}
		groups = append(groups, mg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("部位一覧の走査に失敗しました: %w", err)
	}
	return groups, nil
}

// compile-time interface check
var _ MuscleGroupRepository = (*PostgresMuscleGroupRepo)(nil)
