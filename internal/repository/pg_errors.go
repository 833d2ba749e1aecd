package repository

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// PostgreSQLのSQLSTATEコード
const (
	pgCodeForeignKeyViolation = "23503"
	pgCodeUniqueViolation     = "23505"
)

// IsForeignKeyViolation はエラーが外部キー制約違反かどうかを判定する。
// 存在しない部位を参照した種目の作成や、参照中の部位の削除で発生する。
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgCodeForeignKeyViolation
}

// IsForeignKeyViolationOn はエラーが指定カラムの外部キー制約違反かどうかを判定する。
// 制約名はPostgreSQLのデフォルト命名（<table>_<column>_fkey）を前提とする。
func IsForeignKeyViolationOn(err error, column string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) &&
		pqErr.Code == pgCodeForeignKeyViolation &&
		strings.Contains(pqErr.Constraint, column)
}

// IsUniqueViolation はエラーが一意制約違反かどうかを判定する。
// muscle_groups.nameの重複などで発生する。
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgCodeUniqueViolation
}
