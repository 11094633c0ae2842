package domain

import (
	"errors"
	"fmt"
)

// ドメインエラー定義
var (
	ErrNotFound        = errors.New("not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrValidation      = errors.New("validation error")
	ErrPersistence     = errors.New("persistence error")
	ErrCorruptData     = errors.New("corrupt data file")

	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrInvalidProgress = errors.New("invalid progress: must be between 0 and 100")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidDate     = errors.New("invalid date: must be YYYY-MM-DD")
	ErrInvalidWeek     = errors.New("invalid week number: must be between 1 and 53")
	ErrInvalidStatus   = errors.New("invalid task status")
)

// ValidationError は呼び出し側が渡したフィールド値が不正であることを表す。
// 呼び出し元へそのまま返され、表示は呼び出し側が行う。
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError はValidationErrorを生成する。
func NewValidationError(field string, cause error) *ValidationError {
	return &ValidationError{Field: field, Message: cause.Error(), Err: cause}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is により errors.Is(err, ErrValidation) が成立する。
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError はerrがValidationErrorを含むかを返す。
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PersistenceError はデータファイルの読み書き失敗を表す。
type PersistenceError struct {
	Op   string // "load" | "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Is により errors.Is(err, ErrPersistence) が成立する。
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
