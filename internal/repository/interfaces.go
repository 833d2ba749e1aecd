// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"
	"time"

	"github.com/hitoshi/liftlog/internal/model"
)

// MuscleGroupRepository は部位参照データの永続化インターフェース。
// 部位は全ユーザー共有のためユーザーIDによる絞り込みは行わない。
type MuscleGroupRepository interface {
	// List は全部位を名前昇順で返す。
	List(ctx context.Context) ([]*model.MuscleGroup, error)
}

// ExerciseRepository は種目データの永続化インターフェース。
// 全ての読み書きはユーザーIDで絞り込まれる。
type ExerciseRepository interface {
	// ListByUser は指定ユーザーの種目一覧を部位付き・名前昇順で返す。
	ListByUser(ctx context.Context, userID string) ([]model.ExerciseDetail, error)

	// FindByIDAndUser は指定IDかつ指定ユーザー所有の種目を部位付きで取得する。
	// 見つからない場合（他ユーザー所有を含む）はnilを返す。
	FindByIDAndUser(ctx context.Context, id int64, userID string) (*model.ExerciseDetail, error)

	// Create は種目を作成し、採番されたIDと作成日時をexに書き戻す。
	// 存在しない部位IDを参照した場合は外部キー制約違反のエラーを返す。
	Create(ctx context.Context, ex *model.Exercise) error

	// Update は指定IDかつ指定ユーザー所有の種目の名前と部位を更新し、影響行数を返す。
	// 他ユーザー所有の場合は0行更新の何もしない結果になる。
	Update(ctx context.Context, id int64, userID, name string, muscleGroupID int64) (int64, error)

	// Delete は指定IDかつ指定ユーザー所有の種目を削除し、影響行数を返す。
	// 参照しているworkout_exercisesとsetsはCASCADE削除される。
	Delete(ctx context.Context, id int64, userID string) (int64, error)
}

// WorkoutRepository はワークアウトデータの永続化インターフェース。
// 全ての読み書きはユーザーIDで絞り込まれる。
type WorkoutRepository interface {
	// FindByIDAndUser は指定IDかつ指定ユーザー所有のワークアウトを取得する。
	// 見つからない場合はnilを返す。
	FindByIDAndUser(ctx context.Context, id int64, userID string) (*model.Workout, error)

	// FindDetailByIDAndUser は指定IDのワークアウトをワークアウト内種目
	// （order昇順、種目・部位付き）とセット（order昇順）込みで取得する。
	// 見つからない場合はnilを返す。
	FindDetailByIDAndUser(ctx context.Context, id int64, userID string) (*model.WorkoutDetail, error)

	// ListDetailsByStartedRange は started_at が [from, to) に入るワークアウトを
	// started_at昇順・ネスト込みで返す。上限toは区間に含まれない。
	ListDetailsByStartedRange(ctx context.Context, userID string, from, to time.Time) ([]model.WorkoutDetail, error)

	// Create はワークアウトを作成し、採番されたIDと作成日時をwに書き戻す。
	Create(ctx context.Context, w *model.Workout) error

	// Update は指定IDかつ指定ユーザー所有のワークアウトを更新し、影響行数を返す。
	Update(ctx context.Context, id int64, userID string, name *string, startedAt time.Time, completedAt *time.Time) (int64, error)

	// Delete は指定IDかつ指定ユーザー所有のワークアウトを削除し、影響行数を返す。
	// 関連するworkout_exercisesとsetsはCASCADE削除される。
	Delete(ctx context.Context, id int64, userID string) (int64, error)
}

// WorkoutExerciseRepository はワークアウト内種目の永続化インターフェース。
// この層はユーザーIDで絞り込まない。所有権の確認は呼び出し側（サービス層）が
// FindOwnerUserIDで行うこと。
type WorkoutExerciseRepository interface {
	// Create はワークアウト内種目を作成し、採番されたIDと作成日時をweに書き戻す。
	Create(ctx context.Context, we *model.WorkoutExercise) error

	// FindOwnerUserID は親ワークアウトの所有ユーザーIDをJOINで解決する。
	// 行が存在しない場合は空文字列を返す。
	FindOwnerUserID(ctx context.Context, workoutExerciseID int64) (string, error)

	// Delete は指定IDのワークアウト内種目を削除し、影響行数を返す。
	// 関連するsetsはCASCADE削除される。
	Delete(ctx context.Context, id int64) (int64, error)
}

// SetRepository はセットデータの永続化インターフェース。
// WorkoutExerciseRepositoryと同様、所有権の確認は呼び出し側が行う。
type SetRepository interface {
	// Create はセットを作成し、採番されたIDと作成日時をsに書き戻す。
	Create(ctx context.Context, s *model.Set) error

	// FindByID は指定IDのセットを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int64) (*model.Set, error)

	// FindOwnerUserID は親ワークアウトの所有ユーザーIDをJOINで解決する。
	// 行が存在しない場合は空文字列を返す。
	FindOwnerUserID(ctx context.Context, setID int64) (string, error)

	// Update は指定IDのセットの記録値を更新し、影響行数を返す。
	// orderとworkout_exercise_idは変更しない。
	Update(ctx context.Context, id int64, weight *float64, reps *int, rpe *float64, isWarmup bool, durationSeconds *int) (int64, error)

	// Delete は指定IDのセットを削除し、影響行数を返す。
	Delete(ctx context.Context, id int64) (int64, error)
}
