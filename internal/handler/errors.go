// Package handler はHTTP APIのハンドラーとルーティングを提供する。
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/liftlog/internal/model"
	"github.com/hitoshi/liftlog/internal/validation"
)

// apiErrorResponse はAPIエラーレスポンスのボディ。
type apiErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Action   string `json:"action"`
}

// writeAPIErrorResponse は統一エラーフォーマットでエラーレスポンスを書き込む。
func writeAPIErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(apiErrorResponse{
		Code:     apiErr.Code,
		Message:  apiErr.Message,
		Category: apiErr.Category,
		Action:   apiErr.Action,
	})
}

// writeUnauthorizedResponse は認証必須エラーのレスポンスを書き込む。
func writeUnauthorizedResponse(w http.ResponseWriter) {
	writeAPIErrorResponse(w, http.StatusUnauthorized, &model.APIError{
		Code:     "UNAUTHORIZED",
		Message:  "認証が必要です。",
		Category: "auth",
		Action:   "ログインしてください。",
	})
}

// writeInvalidRequestResponse はリクエストボディの解析失敗レスポンスを書き込む。
func writeInvalidRequestResponse(w http.ResponseWriter) {
	writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
		Code:     "INVALID_REQUEST",
		Message:  "リクエストボディの解析に失敗しました。",
		Category: "validation",
		Action:   "正しいJSON形式でリクエストしてください。",
	})
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPステータスコードに変換する。
// バリデーション失敗は400、APIErrorはコード別、それ以外は500として扱う。
func handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *validation.ValidationError
	if errors.As(err, &validationErr) {
		writeAPIErrorResponse(w, http.StatusBadRequest, validationErr.APIError())
		return
	}

	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		statusCode := mapAPIErrorToHTTPStatus(apiErr)
		writeAPIErrorResponse(w, statusCode, apiErr)
		return
	}

	// APIError以外のエラーは内部サーバーエラーとして扱う
	slog.Error("internal server error", slog.String("error", err.Error()))
	writeAPIErrorResponse(w, http.StatusInternalServerError, &model.APIError{
		Code:     "INTERNAL_ERROR",
		Message:  "内部エラーが発生しました。",
		Category: "system",
		Action:   "しばらく待ってから再度お試しください。",
	})
}

// mapAPIErrorToHTTPStatus はAPIErrorコードからHTTPステータスコードにマッピングする。
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeValidationFailed:
		return http.StatusBadRequest
	case model.ErrCodeExerciseNotFound,
		model.ErrCodeWorkoutNotFound,
		model.ErrCodeWorkoutExerciseNotFound,
		model.ErrCodeSetNotFound:
		return http.StatusNotFound
	case model.ErrCodeMuscleGroupNotFound:
		return http.StatusUnprocessableEntity
	case model.ErrCodeMuscleGroupInUse:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// parseIDParam はURLパスパラメータをint64のIDとして解析する。
// 数値でない場合は400を書き込んでfalseを返す。
// 正の整数であることの検証はバリデーション層が行う。
func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewValidationFailedError(name+" (正の整数を指定してください)"))
		return 0, false
	}
	return id, true
}
