package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/liftlog/internal/middleware"
	"github.com/hitoshi/liftlog/internal/model"
	"github.com/hitoshi/liftlog/internal/validation"
)

// WorkoutServiceInterface はワークアウトハンドラーが必要とするサービスインターフェース。
// ワークアウト内種目とセットの操作も含む。
type WorkoutServiceInterface interface {
	// ListWorkoutsByDate は指定日のワークアウト一覧をネスト込みで返す。
	ListWorkoutsByDate(ctx context.Context, userID, date string) ([]model.WorkoutDetail, error)
	// GetWorkout はワークアウトをネスト込みで取得する。
	GetWorkout(ctx context.Context, workoutID int64, userID string) (*model.WorkoutDetail, error)
	// CreateWorkout はワークアウトを作成する。
	CreateWorkout(ctx context.Context, in validation.CreateWorkoutInput) (*model.Workout, error)
	// UpdateWorkout はワークアウトの名前・開始/完了日時を更新する。
	UpdateWorkout(ctx context.Context, in validation.UpdateWorkoutInput) (*model.Workout, error)
	// DeleteWorkout はワークアウトを削除する。
	DeleteWorkout(ctx context.Context, workoutID int64, userID string) error

	// AddExercise はワークアウトに種目を追加する。
	AddExercise(ctx context.Context, userID string, in validation.AddWorkoutExerciseInput) (*model.WorkoutExercise, error)
	// RemoveExercise はワークアウトから種目を取り除く。
	RemoveExercise(ctx context.Context, userID string, workoutExerciseID int64) error

	// AddSet はワークアウト内種目にセットを追加する。
	AddSet(ctx context.Context, userID string, in validation.AddSetInput) (*model.Set, error)
	// UpdateSet はセットの記録値を更新する。
	UpdateSet(ctx context.Context, userID string, in validation.UpdateSetInput) (*model.Set, error)
	// DeleteSet はセットを削除する。
	DeleteSet(ctx context.Context, userID string, setID int64) error
}

// WorkoutHandler はワークアウト管理のHTTPハンドラー。
type WorkoutHandler struct {
	service WorkoutServiceInterface
}

// NewWorkoutHandler はWorkoutHandlerを生成する。
func NewWorkoutHandler(service WorkoutServiceInterface) *WorkoutHandler {
	return &WorkoutHandler{service: service}
}

// workoutRequest はワークアウトの作成・更新リクエストのボディ。
// 日時はRFC3339形式の文字列で受け取る。
type workoutRequest struct {
	Name        *string `json:"name"`
	StartedAt   string  `json:"started_at"`
	CompletedAt *string `json:"completed_at"`
}

// addWorkoutExerciseRequest はワークアウトへの種目追加リクエストのボディ。
type addWorkoutExerciseRequest struct {
	ExerciseID int64   `json:"exercise_id"`
	Order      int     `json:"order"`
	Notes      *string `json:"notes"`
}

// setRequest はセットの追加・更新リクエストのボディ。
// 記録しない値はnullまたは未指定のままにする。
type setRequest struct {
	Order           int      `json:"order"`
	Weight          *float64 `json:"weight"`
	Reps            *int     `json:"reps"`
	RPE             *float64 `json:"rpe"`
	IsWarmup        bool     `json:"is_warmup"`
	DurationSeconds *int     `json:"duration_seconds"`
}

// ListWorkouts は指定日のワークアウト一覧をネスト込みで取得する。
// GET /api/workouts?date=YYYY-MM-DD
func (h *WorkoutHandler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w)
		return
	}

	date := r.URL.Query().Get("date")

	details, err := h.service.ListWorkoutsByDate(r.Context(), userID, date)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := make([]workoutResponse, 0, len(details))
	for i := range details {
		resp = append(resp, toWorkoutDetailResponse(&details[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// GetWorkout はワークアウト詳細をネスト込みで取得する。
// GET /api/workouts/{id}
func (h *WorkoutHandler) GetWorkout(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w)
		return
	}

	workoutID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.service.GetWorkout(r.Context(), workoutID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(toWorkoutDetailResponse(detail))
}

// CreateWorkout はワークアウトを作成する。
// POST /api/workouts
func (h *WorkoutHandler) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w)
		return
	}

	var req workoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestResponse(w)
		return
	}

	workout, err := h.service.CreateWorkout(r.Context(), validation.CreateWorkoutInput{
		Name:        req.Name,
		UserID:      userID,
		StartedAt:   req.StartedAt,
		CompletedAt: req.CompletedAt,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toWorkoutResponse(workout))
}

// UpdateWorkout はワークアウトの名前・開始/完了日時を更新する。
// PUT /api/workouts/{id}
func (h *WorkoutHandler) UpdateWorkout(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w)
		return
	}

	workoutID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req workoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestResponse(w)
		return
	}

	workout, err := h.service.UpdateWorkout(r.Context(), validation.UpdateWorkoutInput{
		WorkoutID:   workoutID,
		Name:        req.Name,
		UserID:      userID,
		StartedAt:   req.StartedAt,
		CompletedAt: req.CompletedAt,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(toWorkoutResponse(workout))
}

// DeleteWorkout はワークアウトを削除する。
// DELETE /api/workouts/{id}
func (h *WorkoutHandler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w)
		return
	}

	workoutID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteWorkout(r.Context(), workoutID, userID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddExercise はワークアウトに種目を追加する。
// POST /api/workouts/{id}/exercises
func (h *WorkoutHandler) AddExercise(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w)
		return
	}

	workoutID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req addWorkoutExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestResponse(w)
		return
	}

	we, err := h.service.AddExercise(r.Context(), userID, validation.AddWorkoutExerciseInput{
		WorkoutID:  workoutID,
		ExerciseID: req.ExerciseID,
		Order:      req.Order,
		Notes:      req.Notes,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toWorkoutExerciseResponse(we))
}

// RemoveExercise はワークアウトから種目を取り除く。
// DELETE /api/workout-exercises/{id}
func (h *WorkoutHandler) RemoveExercise(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w)
		return
	}

	workoutExerciseID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.RemoveExercise(r.Context(), userID, workoutExerciseID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddSet はワークアウト内種目にセットを追加する。
// POST /api/workout-exercises/{id}/sets
func (h *WorkoutHandler) AddSet(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w)
		return
	}

	workoutExerciseID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req setRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestResponse(w)
		return
	}

	set, err := h.service.AddSet(r.Context(), userID, validation.AddSetInput{
		WorkoutExerciseID: workoutExerciseID,
		Order:             req.Order,
		Weight:            req.Weight,
		Reps:              req.Reps,
		RPE:               req.RPE,
		IsWarmup:          req.IsWarmup,
		DurationSeconds:   req.DurationSeconds,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toSetResponse(set))
}

// UpdateSet はセットの記録値を更新する。orderは変更されない。
// PUT /api/sets/{id}
func (h *WorkoutHandler) UpdateSet(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w)
		return
	}

	setID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req setRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestResponse(w)
		return
	}

	set, err := h.service.UpdateSet(r.Context(), userID, validation.UpdateSetInput{
		SetID:           setID,
		Weight:          req.Weight,
		Reps:            req.Reps,
		RPE:             req.RPE,
		IsWarmup:        req.IsWarmup,
		DurationSeconds: req.DurationSeconds,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(toSetResponse(set))
}

// DeleteSet はセットを削除する。
// DELETE /api/sets/{id}
func (h *WorkoutHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w)
		return
	}

	setID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteSet(r.Context(), userID, setID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
