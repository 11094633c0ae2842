package domain

import (
	"fmt"
	"strings"
	"time"
)

// Taskの優先度範囲。値が大きいほど緊急。
const (
	MinTaskPriority     = 1
	MaxTaskPriority     = 5
	DefaultTaskPriority = 1
)

// Task はプロジェクト単位で管理する作業を表す。
// Status は Progress から導出され、UpdateProgress 以外で変更しない。
type Task struct {
	Title         string  `json:"title" validate:"notblank"`
	Description   string  `json:"description"`
	Priority      int     `json:"priority" validate:"min=1,max=5"`
	Status        Status  `json:"status"`
	Progress      int     `json:"progress" validate:"min=0,max=100"`
	StartDate     string  `json:"start_date" validate:"datetime=2006-01-02"`
	UpdatedAt     string  `json:"updated_at"`
	DueDate       *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	ProjectNumber *string `json:"project_number"`
}

// TaskFields はTaskの作成・編集で呼び出し側が指定できる項目。
// Priority が0の場合は DefaultTaskPriority、StartDate が未指定の場合は当日になる。
type TaskFields struct {
	Title         string
	Description   string
	Priority      int
	DueDate       *string
	StartDate     *string
	ProjectNumber *string
}

// NewTask は既定値を補ったTaskを生成する。タイトルが空の場合はValidationErrorを返す。
func NewTask(fields TaskFields, now time.Time) (*Task, error) {
	t := &Task{
		Status:    StatusPending,
		Progress:  0,
		UpdatedAt: FormatDateTime(now),
	}
	t.apply(fields, FormatDate(now))
	if err := Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Edit はタイトル等の属性を置き換える。進捗とステータスは変更しない。
// StartDate が未指定の場合は既存の開始日を維持する。検証は置き換えた項目だけに行い、
// 失敗した場合はTaskを変更しない。
func (t *Task) Edit(fields TaskFields, now time.Time) error {
	candidate := *t
	candidate.apply(fields, t.StartDate)
	edited := []string{"Title", "Priority", "DueDate"}
	if trimOptional(fields.StartDate) != nil {
		edited = append(edited, "StartDate")
	}
	if err := ValidateFields(&candidate, edited...); err != nil {
		return err
	}
	candidate.UpdatedAt = FormatDateTime(now)
	*t = candidate
	return nil
}

func (t *Task) apply(fields TaskFields, defaultStart string) {
	t.Title = strings.TrimSpace(fields.Title)
	t.Description = strings.TrimSpace(fields.Description)
	t.Priority = fields.Priority
	if t.Priority == 0 {
		t.Priority = DefaultTaskPriority
	}
	t.DueDate = trimOptional(fields.DueDate)
	if start := trimOptional(fields.StartDate); start != nil {
		t.StartDate = *start
	} else {
		t.StartDate = defaultStart
	}
	t.ProjectNumber = trimOptional(fields.ProjectNumber)
}

// UpdateProgress は進捗率を更新し、Statusを再計算する。
// 0〜100の範囲外はValidationErrorを返し、状態は変更しない。
func (t *Task) UpdateProgress(progress int, now time.Time) error {
	if progress < 0 || progress > 100 {
		return NewValidationError("progress", ErrInvalidProgress)
	}
	t.Progress = progress
	t.Status = StatusForProgress(progress)
	t.UpdatedAt = FormatDateTime(now)
	return nil
}

// IsOverdue は期限が現在時刻より前で未完了かを返す。
// 期限が不正な形式の場合は false を返す。
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusCompleted {
		return false
	}
	due, ok := ParseDate(*t.DueDate)
	if !ok {
		return false
	}
	return due.Before(now)
}

// Key はプロジェクト番号を返す。未設定の場合は空文字。
func (t *Task) Key() string {
	return derefString(t.ProjectNumber)
}

// StartDay は週集計に使う開始日を返す。
func (t *Task) StartDay() string {
	return t.StartDate
}

// Done は完了済みかを返す。
func (t *Task) Done() bool {
	return t.Status == StatusCompleted
}

// CompletionPercent は進捗率を返す。
func (t *Task) CompletionPercent() int {
	return t.Progress
}

func (t *Task) String() string {
	return fmt.Sprintf("Task(title='%s', status='%s', progress=%d%%)", t.Title, t.Status, t.Progress)
}
