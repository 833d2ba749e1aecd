package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/liftlog/internal/metrics"
	"github.com/hitoshi/liftlog/internal/middleware"
)

// HealthChecker はヘルスチェックのためのインターフェース。
// *sql.DBがそのまま満たす。
type HealthChecker interface {
	Ping() error
}

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	HealthChecker     HealthChecker
	IdentityHeader    string
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter

	// メトリクス
	MetricsRecorder middleware.HTTPMetricsRecorder
	Gatherer        prometheus.Gatherer

	// 部位
	MuscleGroupService MuscleGroupServiceInterface

	// 種目
	ExerciseService ExerciseServiceInterface

	// ワークアウト（ワークアウト内種目・セット含む）
	WorkoutService WorkoutServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	CORSMiddleware → SecurityHeaders → RequestID → Recovery → Logging → Metrics
//	→ IdentityMiddleware → RateLimitMiddleware(General) [→ RateLimitMiddleware(Mutation)]
//
// /health と /metrics はミドルウェアチェーンの外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	// CORS ミドルウェアを最上位に適用（全ルートに効く）
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewSecurityHeadersMiddleware())

	mgHandler := NewMuscleGroupHandler(deps.MuscleGroupService)
	exerciseHandler := NewExerciseHandler(deps.ExerciseService)
	workoutHandler := NewWorkoutHandler(deps.WorkoutService)

	// --- 認証不要のルート ---

	// ヘルスチェック（DB疎通確認込み）
	r.Get("/health", newHealthHandler(deps.HealthChecker))

	// Prometheusスクレイプ用
	if deps.Gatherer != nil {
		r.Handle("/metrics", metrics.Handler(deps.Gatherer))
	}

	// --- 認証が必要なルート ---
	// ミドルウェアスタック: RequestID → Recovery → Logging → Metrics → Identity → RateLimit(General)
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewRequestIDMiddleware())
		r.Use(middleware.NewRecoveryMiddleware())
		r.Use(middleware.NewLoggingMiddleware(slog.Default()))
		if deps.MetricsRecorder != nil {
			r.Use(middleware.NewMetricsMiddleware(deps.MetricsRecorder))
		}
		r.Use(middleware.NewIdentityMiddleware(deps.IdentityHeader))
		r.Use(deps.RateLimiter.GeneralMiddleware())

		mutation := deps.RateLimiter.MutationMiddleware()

		// 部位参照データ
		r.Get("/api/muscle-groups", mgHandler.ListMuscleGroups)

		// 種目管理
		r.Route("/api/exercises", func(r chi.Router) {
			r.Get("/", exerciseHandler.ListExercises)
			r.With(mutation).Post("/", exerciseHandler.CreateExercise)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", exerciseHandler.GetExercise)
				r.With(mutation).Put("/", exerciseHandler.UpdateExercise)
				r.With(mutation).Delete("/", exerciseHandler.DeleteExercise)
			})
		})

		// ワークアウト管理
		r.Route("/api/workouts", func(r chi.Router) {
			// GET /api/workouts?date=YYYY-MM-DD - 日付指定一覧
			r.Get("/", workoutHandler.ListWorkouts)
			r.With(mutation).Post("/", workoutHandler.CreateWorkout)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", workoutHandler.GetWorkout)
				r.With(mutation).Put("/", workoutHandler.UpdateWorkout)
				r.With(mutation).Delete("/", workoutHandler.DeleteWorkout)

				// POST /api/workouts/{id}/exercises - ワークアウトへの種目追加
				r.With(mutation).Post("/exercises", workoutHandler.AddExercise)
			})
		})

		// ワークアウト内種目管理
		r.Route("/api/workout-exercises/{id}", func(r chi.Router) {
			r.With(mutation).Delete("/", workoutHandler.RemoveExercise)

			// POST /api/workout-exercises/{id}/sets - セット追加
			r.With(mutation).Post("/sets", workoutHandler.AddSet)
		})

		// セット管理
		r.Route("/api/sets/{id}", func(r chi.Router) {
			r.With(mutation).Put("/", workoutHandler.UpdateSet)
			r.With(mutation).Delete("/", workoutHandler.DeleteSet)
		})
	})

	return r
}

// healthResponse はヘルスチェックのレスポンス。
type healthResponse struct {
	Status string `json:"status"`
}

// newHealthHandler はDB疎通確認込みのヘルスチェックハンドラーを返す。
func newHealthHandler(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if checker != nil {
			if err := checker.Ping(); err != nil {
				slog.Error("health check failed", slog.String("error", err.Error()))
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(healthResponse{Status: "unavailable"})
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(healthResponse{Status: "ok"})
	}
}
