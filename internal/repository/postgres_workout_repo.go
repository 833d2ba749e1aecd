package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/hitoshi/liftlog/internal/model"
)

// PostgresWorkoutRepo はPostgreSQLを使用したワークアウトリポジトリ。
type PostgresWorkoutRepo struct {
	db *sql.DB
}

// NewPostgresWorkoutRepo はPostgresWorkoutRepoを生成する。
func NewPostgresWorkoutRepo(db *sql.DB) *PostgresWorkoutRepo {
	return &PostgresWorkoutRepo{db: db}
}

// FindByIDAndUser は指定IDかつ指定ユーザー所有のワークアウトを取得する。
// 見つからない場合はnilを返す。
func (r *PostgresWorkoutRepo) FindByIDAndUser(ctx context.Context, id int64, userID string) (*model.Workout, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, started_at, completed_at, created_at, updated_at
		 FROM workouts WHERE id = $1 AND user_id = $2`,
		id, userID,
	)

	w, err := scanWorkout(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ワークアウトの取得に失敗しました: %w", err)
	}
	return w, nil
}

// FindDetailByIDAndUser は指定IDのワークアウトをネスト込みで取得する。
// 見つからない場合はnilを返す。
func (r *PostgresWorkoutRepo) FindDetailByIDAndUser(ctx context.Context, id int64, userID string) (*model.WorkoutDetail, error) {
	w, err := r.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}

	exercisesByWorkout, err := r.loadWorkoutExercises(ctx, []int64{w.ID})
	if err != nil {
		return nil, err
	}

	return &model.WorkoutDetail{
		Workout:   *w,
		Exercises: exercisesByWorkout[w.ID],
	}, nil
}

// ListDetailsByStartedRange は started_at が [from, to) に入るワークアウトを
// started_at昇順・ネスト込みで返す。上限toは区間に含まれない。
func (r *PostgresWorkoutRepo) ListDetailsByStartedRange(ctx context.Context, userID string, from, to time.Time) ([]model.WorkoutDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, started_at, completed_at, created_at, updated_at
		 FROM workouts
		 WHERE user_id = $1 AND started_at >= $2 AND started_at < $3
		 ORDER BY started_at ASC`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("ワークアウト一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var workouts []model.Workout
	var workoutIDs []int64
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("ワークアウト行の読み取りに失敗しました: %w", err)
		}
		workouts = append(workouts, *w)
		workoutIDs = append(workoutIDs, w.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ワークアウト一覧の走査に失敗しました: %w", err)
	}

	if len(workouts) == 0 {
		return []model.WorkoutDetail{}, nil
	}

	exercisesByWorkout, err := r.loadWorkoutExercises(ctx, workoutIDs)
	if err != nil {
		return nil, err
	}

	details := make([]model.WorkoutDetail, len(workouts))
	for i, w := range workouts {
		details[i] = model.WorkoutDetail{
			Workout:   w,
			Exercises: exercisesByWorkout[w.ID],
		}
	}
	return details, nil
}

// Create はワークアウトを作成し、採番されたIDと作成日時をwに書き戻す。
func (r *PostgresWorkoutRepo) Create(ctx context.Context, w *model.Workout) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO workouts (user_id, name, started_at, completed_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		w.UserID, w.Name, w.StartedAt, w.CompletedAt,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ワークアウトの作成に失敗しました: %w", err)
	}
	return nil
}

// Update は指定IDかつ指定ユーザー所有のワークアウトを更新し、影響行数を返す。
// 他ユーザー所有の場合は0行更新の何もしない結果になる（存在の秘匿）。
func (r *PostgresWorkoutRepo) Update(ctx context.Context, id int64, userID string, name *string, startedAt time.Time, completedAt *time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE workouts SET name = $3, started_at = $4, completed_at = $5, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2`,
		id, userID, name, startedAt, completedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("ワークアウトの更新に失敗しました: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("更新結果の取得に失敗しました: %w", err)
	}
	return rowsAffected, nil
}

// Delete は指定IDかつ指定ユーザー所有のワークアウトを削除し、影響行数を返す。
// 関連するworkout_exercisesとsetsはCASCADE削除される。
func (r *PostgresWorkoutRepo) Delete(ctx context.Context, id int64, userID string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM workouts WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("ワークアウトの削除に失敗しました: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("削除結果の取得に失敗しました: %w", err)
	}
	return rowsAffected, nil
}

// loadWorkoutExercises は指定ワークアウト群のワークアウト内種目（order昇順、
// 種目・部位付き）とセット（order昇順）をまとめて取得し、ワークアウトID別に返す。
// ワークアウトごとのN+1クエリを避けるため、pq.Arrayで2クエリに集約する。
func (r *PostgresWorkoutRepo) loadWorkoutExercises(ctx context.Context, workoutIDs []int64) (map[int64][]model.WorkoutExerciseDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT we.id, we.workout_id, we.exercise_id, we."order", we.notes, we.created_at, we.updated_at,
		        e.id, e.name, e.user_id, e.muscle_group_id, e.created_at, e.updated_at,
		        m.id, m.name, m.created_at, m.updated_at
		 FROM workout_exercises we
		 JOIN exercises e ON we.exercise_id = e.id
		 JOIN muscle_groups m ON e.muscle_group_id = m.id
		 WHERE we.workout_id = ANY($1)
		 ORDER BY we."order" ASC, we.id ASC`,
		pq.Array(workoutIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("ワークアウト内種目一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	byWorkout := make(map[int64][]model.WorkoutExerciseDetail)
	var weIDs []int64
	for rows.Next() {
		var wed model.WorkoutExerciseDetail
		var notes sql.NullString
		if err := rows.Scan(
			&wed.ID, &wed.WorkoutID, &wed.ExerciseID, &wed.Order, &notes, &wed.CreatedAt, &wed.UpdatedAt,
			&wed.Exercise.ID, &wed.Exercise.Name, &wed.Exercise.UserID, &wed.Exercise.MuscleGroupID,
			&wed.Exercise.CreatedAt, &wed.Exercise.UpdatedAt,
			&wed.Exercise.MuscleGroup.ID, &wed.Exercise.MuscleGroup.Name,
			&wed.Exercise.MuscleGroup.CreatedAt, &wed.Exercise.MuscleGroup.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ワークアウト内種目行の読み取りに失敗しました: %w", err)
		}
		if notes.Valid {
			wed.Notes = &notes.String
		}

		byWorkout[wed.WorkoutID] = append(byWorkout[wed.WorkoutID], wed)
		weIDs = append(weIDs, wed.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ワークアウト内種目一覧の走査に失敗しました: %w", err)
	}

	if len(weIDs) == 0 {
		return byWorkout, nil
	}

	// 全行読み取り後にインデックスを作る（append中のポインタ取得は避ける）
	byID := make(map[int64]*model.WorkoutExerciseDetail)
	for wid := range byWorkout {
		weds := byWorkout[wid]
		for i := range weds {
			byID[weds[i].ID] = &weds[i]
		}
	}

	setRows, err := r.db.QueryContext(ctx,
		`SELECT id, workout_exercise_id, "order", weight, reps, duration_seconds, rpe, is_warmup, created_at, updated_at
		 FROM sets
		 WHERE workout_exercise_id = ANY($1)
		 ORDER BY "order" ASC, id ASC`,
		pq.Array(weIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("セット一覧の取得に失敗しました: %w", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		s, err := scanSet(setRows)
		if err != nil {
			return nil, fmt.Errorf("セット行の読み取りに失敗しました: %w", err)
		}
		if wed, ok := byID[s.WorkoutExerciseID]; ok {
			wed.Sets = append(wed.Sets, *s)
		}
	}
	if err := setRows.Err(); err != nil {
		return nil, fmt.Errorf("セット一覧の走査に失敗しました: %w", err)
	}

	return byWorkout, nil
}

// rowScanner はsql.Rowとsql.Rowsの共通部分。
type rowScanner interface {
	Scan(dest ...any) error
}

// scanWorkout はワークアウト行を読み取る。NULL許容のname/completed_atを変換する。
func scanWorkout(row rowScanner) (*model.Workout, error) {
	w := &model.Workout{}
	var name sql.NullString
	var completedAt sql.NullTime
	if err := row.Scan(&w.ID, &w.UserID, &name, &w.StartedAt, &completedAt, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	if name.Valid {
		w.Name = &name.String
	}
	if completedAt.Valid {
		w.CompletedAt = &completedAt.Time
	}
	return w, nil
}

// scanSet はセット行を読み取る。NULL許容の記録値をポインタに変換する。
func scanSet(row rowScanner) (*model.Set, error) {
	s := &model.Set{}
	var weight, rpe sql.NullFloat64
	var reps, durationSeconds sql.NullInt64
	if err := row.Scan(
		&s.ID, &s.WorkoutExerciseID, &s.Order,
		&weight, &reps, &durationSeconds, &rpe, &s.IsWarmup,
		&s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if weight.Valid {
		s.Weight = &weight.Float64
	}
	if reps.Valid {
		v := int(reps.Int64)
		s.Reps = &v
	}
	if durationSeconds.Valid {
		v := int(durationSeconds.Int64)
		s.DurationSeconds = &v
	}
	if rpe.Valid {
		s.RPE = &rpe.Float64
	}
	return s, nil
}

// compile-time interface check
var _ WorkoutRepository = (*PostgresWorkoutRepo)(nil)
