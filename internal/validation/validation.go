// Package validation は各操作の入力スキーマ検証と正規化を提供する。
// 永続化層に到達する前に型・範囲・必須の制約を検査し、
// 違反フィールドを列挙したValidationErrorを返す。
package validation

import (
	"fmt"
	"strings"

	"github.com/hitoshi/liftlog/internal/model"
)

// 名前系フィールドの最大長（文字数）
const maxNameLength = 256

// FieldError は単一フィールドのバリデーション違反を表す。
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError は1操作分のバリデーション違反をまとめたエラー。
type ValidationError struct {
	Fields []FieldError
}

// Error はerrorインターフェースを実装する。
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.summary())
}

// APIError は統一エラーフォーマットへ変換する。
func (e *ValidationError) APIError() *model.APIError {
	return model.NewValidationFailedError(e.summary())
}

// summary は違反フィールドを「field (reason)」形式で列挙する。
func (e *ValidationError) summary() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s (%s)", f.Field, f.Reason)
	}
	return strings.Join(parts, ", ")
}

// NewError は単一フィールド違反のValidationErrorを生成する。
func NewError(field, reason string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}

// add は違反フィールドを追記する。
func (e *ValidationError) add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// errOrNil は違反が1件もない場合にnilを返す。
func (e *ValidationError) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// checkID はIDが正の整数であることを検証する。
func (e *ValidationError) checkID(field string, id int64) {
	if id <= 0 {
		e.add(field, "正の整数を指定してください")
	}
}

// checkUserID は所有者IDが非空かつ256文字以内であることを検証する。
func (e *ValidationError) checkUserID(userID string) {
	if userID == "" {
		e.add("userId", "必須です")
		return
	}
	if len([]rune(userID)) > maxNameLength {
		e.add("userId", fmt.Sprintf("%d文字以内で指定してください", maxNameLength))
	}
}

// checkRequiredName は名前が非空かつ256文字以内であることを検証する。
func (e *ValidationError) checkRequiredName(field, name string) {
	if name == "" {
		e.add(field, "必須です")
		return
	}
	if len([]rune(name)) > maxNameLength {
		e.add(field, fmt.Sprintf("%d文字以内で指定してください", maxNameLength))
	}
}
