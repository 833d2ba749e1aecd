package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/liftlog/internal/middleware"
	"github.com/hitoshi/liftlog/internal/model"
	"github.com/hitoshi/liftlog/internal/validation"
)

// ExerciseServiceInterface は種目ハンドラーが必要とするサービスインターフェース。
type ExerciseServiceInterface interface {
	// ListExercises はユーザーの種目一覧を部位付きで返す。
	ListExercises(ctx context.Context, userID string) ([]model.ExerciseDetail, error)
	// GetExercise は種目を部位付きで取得する。
	GetExercise(ctx context.Context, exerciseID int64, userID string) (*model.ExerciseDetail, error)
	// CreateExercise は種目を作成する。
	CreateExercise(ctx context.Context, in validation.CreateExerciseInput) (*model.ExerciseDetail, error)
	// UpdateExercise は種目の名前と部位を更新する。
	UpdateExercise(ctx context.Context, in validation.UpdateExerciseInput) (*model.ExerciseDetail, error)
	// DeleteExercise は種目を削除する。
	DeleteExercise(ctx context.Context, exerciseID int64, userID string) error
}

// ExerciseHandler は種目管理のHTTPハンドラー。
type ExerciseHandler struct {
	service ExerciseServiceInterface
}

// NewExerciseHandler はExerciseHandlerを生成する。
func NewExerciseHandler(service ExerciseServiceInterface) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

// exerciseRequest は種目の作成・更新リクエストのボディ。
type exerciseRequest struct {
	Name          string `json:"name"`
	MuscleGroupID int64  `json:"muscle_group_id"`
}

// ListExercises はユーザーの種目一覧を取得する。
// GET /api/exercises
func (h *ExerciseHandler) ListExercises(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w)
		return
	}

	exercises, err := h.service.ListExercises(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := make([]exerciseResponse, 0, len(exercises))
	for i := range exercises {
		resp = append(resp, toExerciseResponse(&exercises[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// GetExercise は種目詳細を取得する。
// GET /api/exercises/{id}
func (h *ExerciseHandler) GetExercise(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w)
		return
	}

	exerciseID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	ed, err := h.service.GetExercise(r.Context(), exerciseID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(toExerciseResponse(ed))
}

// CreateExercise は種目を作成する。
// POST /api/exercises
func (h *ExerciseHandler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w)
		return
	}

	var req exerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestResponse(w)
		return
	}

	ed, err := h.service.CreateExercise(r.Context(), validation.CreateExerciseInput{
		Name:          req.Name,
		UserID:        userID,
		MuscleGroupID: req.MuscleGroupID,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toExerciseResponse(ed))
}

// UpdateExercise は種目の名前と部位を更新する。
// PUT /api/exercises/{id}
func (h *ExerciseHandler) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w)
		return
	}

	exerciseID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req exerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestResponse(w)
		return
	}

	ed, err := h.service.UpdateExercise(r.Context(), validation.UpdateExerciseInput{
		ExerciseID:    exerciseID,
		UserID:        userID,
		Name:          req.Name,
		MuscleGroupID: req.MuscleGroupID,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(toExerciseResponse(ed))
}

// DeleteExercise は種目を削除する。
// DELETE /api/exercises/{id}
func (h *ExerciseHandler) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorizedResponse(w)
		return
	}

	exerciseID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteExercise(r.Context(), exerciseID, userID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
