package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/liftlog/internal/middleware"
	"github.com/hitoshi/liftlog/internal/model"
	"github.com/hitoshi/liftlog/internal/validation"
)

// --- モック ---

type mockExerciseService struct {
	listFn   func(ctx context.Context, userID string) ([]model.ExerciseDetail, error)
	getFn    func(ctx context.Context, exerciseID int64, userID string) (*model.ExerciseDetail, error)
	createFn func(ctx context.Context, in validation.CreateExerciseInput) (*model.ExerciseDetail, error)
	updateFn func(ctx context.Context, in validation.UpdateExerciseInput) (*model.ExerciseDetail, error)
	deleteFn func(ctx context.Context, exerciseID int64, userID string) error
}

func (m *mockExerciseService) ListExercises(ctx context.Context, userID string) ([]model.ExerciseDetail, error) {
	return m.listFn(ctx, userID)
}
func (m *mockExerciseService) GetExercise(ctx context.Context, exerciseID int64, userID string) (*model.ExerciseDetail, error) {
	return m.getFn(ctx, exerciseID, userID)
}
func (m *mockExerciseService) CreateExercise(ctx context.Context, in validation.CreateExerciseInput) (*model.ExerciseDetail, error) {
	return m.createFn(ctx, in)
}
func (m *mockExerciseService) UpdateExercise(ctx context.Context, in validation.UpdateExerciseInput) (*model.ExerciseDetail, error) {
	return m.updateFn(ctx, in)
}
func (m *mockExerciseService) DeleteExercise(ctx context.Context, exerciseID int64, userID string) error {
	return m.deleteFn(ctx, exerciseID, userID)
}

func authedRequest(method, target string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(middleware.ContextWithUserID(req.Context(), "user-1"))
}

// chiのURLパラメータを含めてルーティングするテスト用ルーター
func exerciseTestRouter(h *ExerciseHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/exercises", h.ListExercises)
	r.Post("/api/exercises", h.CreateExercise)
	r.Get("/api/exercises/{id}", h.GetExercise)
	r.Put("/api/exercises/{id}", h.UpdateExercise)
	r.Delete("/api/exercises/{id}", h.DeleteExercise)
	return r
}

func sampleDetail() *model.ExerciseDetail {
	return &model.ExerciseDetail{
		Exercise: model.Exercise{
			ID:            1,
			Name:          "ベンチプレス",
			UserID:        "user-1",
			MuscleGroupID: 3,
		},
		MuscleGroup: model.MuscleGroup{ID: 3, Name: "Chest"},
	}
}

// --- テスト ---

func TestListExercises_ReturnsJSON(t *testing.T) {
	svc := &mockExerciseService{
		listFn: func(ctx context.Context, userID string) ([]model.ExerciseDetail, error) {
			return []model.ExerciseDetail{*sampleDetail()}, nil
		},
	}
	router := exerciseTestRouter(NewExerciseHandler(svc))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(http.MethodGet, "/api/exercises", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp []exerciseResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(resp) != 1 || resp[0].Name != "ベンチプレス" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp[0].MuscleGroup.Name != "Chest" {
		t.Errorf("muscle group should be nested: %+v", resp[0].MuscleGroup)
	}
}

func TestListExercises_Unauthenticated(t *testing.T) {
	router := exerciseTestRouter(NewExerciseHandler(&mockExerciseService{}))

	req := httptest.NewRequest(http.MethodGet, "/api/exercises", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}

func TestGetExercise_NotFoundIs404(t *testing.T) {
	svc := &mockExerciseService{
		getFn: func(ctx context.Context, exerciseID int64, userID string) (*model.ExerciseDetail, error) {
			return nil, model.NewExerciseNotFoundError(exerciseID)
		},
	}
	router := exerciseTestRouter(NewExerciseHandler(svc))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(http.MethodGet, "/api/exercises/99", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}

	var resp apiErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Code != model.ErrCodeExerciseNotFound {
		t.Errorf("code = %q, want %q", resp.Code, model.ErrCodeExerciseNotFound)
	}
}

func TestGetExercise_NonNumericIDIs400(t *testing.T) {
	router := exerciseTestRouter(NewExerciseHandler(&mockExerciseService{}))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(http.MethodGet, "/api/exercises/abc", nil))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestCreateExercise_Returns201(t *testing.T) {
	var gotInput validation.CreateExerciseInput
	svc := &mockExerciseService{
		createFn: func(ctx context.Context, in validation.CreateExerciseInput) (*model.ExerciseDetail, error) {
			gotInput = in
			return sampleDetail(), nil
		},
	}
	router := exerciseTestRouter(NewExerciseHandler(svc))

	body := []byte(`{"name":"ベンチプレス","muscle_group_id":3}`)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/exercises", body))

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rr.Code, rr.Body.String())
	}
	// ユーザーIDはボディではなくコンテキストから取る
	if gotInput.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", gotInput.UserID)
	}
	if gotInput.MuscleGroupID != 3 {
		t.Errorf("MuscleGroupID = %d, want 3", gotInput.MuscleGroupID)
	}
}

func TestCreateExercise_ValidationErrorIs400(t *testing.T) {
	svc := &mockExerciseService{
		createFn: func(ctx context.Context, in validation.CreateExerciseInput) (*model.ExerciseDetail, error) {
			return nil, validation.NewError("name", "必須です")
		},
	}
	router := exerciseTestRouter(NewExerciseHandler(svc))

	body := []byte(`{"name":"","muscle_group_id":3}`)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/exercises", body))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}

	var resp apiErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Code != model.ErrCodeValidationFailed {
		t.Errorf("code = %q, want %q", resp.Code, model.ErrCodeValidationFailed)
	}
}

// 存在しない部位は422で返す
func TestCreateExercise_UnknownMuscleGroupIs422(t *testing.T) {
	svc := &mockExerciseService{
		createFn: func(ctx context.Context, in validation.CreateExerciseInput) (*model.ExerciseDetail, error) {
			return nil, model.NewMuscleGroupNotFoundError(in.MuscleGroupID)
		},
	}
	router := exerciseTestRouter(NewExerciseHandler(svc))

	body := []byte(`{"name":"ベンチプレス","muscle_group_id":999}`)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/exercises", body))

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rr.Code)
	}
}

func TestCreateExercise_MalformedJSONIs400(t *testing.T) {
	router := exerciseTestRouter(NewExerciseHandler(&mockExerciseService{}))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/exercises", []byte(`{broken`)))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestUpdateExercise_Returns200(t *testing.T) {
	svc := &mockExerciseService{
		updateFn: func(ctx context.Context, in validation.UpdateExerciseInput) (*model.ExerciseDetail, error) {
			if in.ExerciseID != 1 {
				t.Errorf("ExerciseID = %d, want 1", in.ExerciseID)
			}
			return sampleDetail(), nil
		},
	}
	router := exerciseTestRouter(NewExerciseHandler(svc))

	body := []byte(`{"name":"インクラインベンチ","muscle_group_id":3}`)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(http.MethodPut, "/api/exercises/1", body))

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
}

func TestDeleteExercise_Returns204(t *testing.T) {
	svc := &mockExerciseService{
		deleteFn: func(ctx context.Context, exerciseID int64, userID string) error {
			return nil
		},
	}
	router := exerciseTestRouter(NewExerciseHandler(svc))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(http.MethodDelete, "/api/exercises/1", nil))

	if rr.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("204 response should have empty body, got %q", rr.Body.String())
	}
}
