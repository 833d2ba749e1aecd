package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/liftlog/internal/model"
)

// MuscleGroupServiceInterface は部位ハンドラーが必要とするサービスインターフェース。
type MuscleGroupServiceInterface interface {
	// ListMuscleGroups は全部位を名前昇順で返す。
	ListMuscleGroups(ctx context.Context) ([]*model.MuscleGroup, error)
}

// MuscleGroupHandler は部位参照データのHTTPハンドラー。
type MuscleGroupHandler struct {
	service MuscleGroupServiceInterface
}

// NewMuscleGroupHandler はMuscleGroupHandlerを生成する。
func NewMuscleGroupHandler(service MuscleGroupServiceInterface) *MuscleGroupHandler {
	return &MuscleGroupHandler{service: service}
}

// ListMuscleGroups は部位一覧を取得する。
// GET /api/muscle-groups
func (h *MuscleGroupHandler) ListMuscleGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.ListMuscleGroups(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := make([]muscleGroupResponse, 0, len(groups))
	for _, mg := range groups {
		resp = append(resp, toMuscleGroupResponse(mg))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
