package domain

import (
	"strings"
	"time"
)

// WeeklyPriority は週次タスクの重要度を表す。
type WeeklyPriority int

const (
	WeeklyPriorityNormal    WeeklyPriority = 1 // 一般
	WeeklyPriorityImportant WeeklyPriority = 2 // 重要
	WeeklyPriorityCritical  WeeklyPriority = 3 // 核心

	MaxWeeklyPriority = WeeklyPriorityCritical
)

// Label は表示用ラベルを返す。
func (p WeeklyPriority) Label() string {
	switch p {
	case WeeklyPriorityNormal:
		return "一般"
	case WeeklyPriorityImportant:
		return "重要"
	case WeeklyPriorityCritical:
		return "核心"
	default:
		return "unknown"
	}
}

// WeeklyTask は週ごとの軽量なToDoを表す。完了は真偽値のみで進捗率を持たない。
// ProjectName はTask.Titleへの名前による弱い参照で、整合性は保証しない。
type WeeklyTask struct {
	Title       string         `json:"title" validate:"notblank"`
	Description string         `json:"description"`
	Priority    WeeklyPriority `json:"priority" validate:"min=1,max=3"`
	DueDate     *string        `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	StartDate   *string        `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	Completed   bool           `json:"is_completed"`
	ProjectName *string        `json:"project_name"`

	// WeekNumber は永続化しない。
	WeekNumber int `json:"-"`
}

// WeeklyTaskFields はWeeklyTask作成時の入力項目。
type WeeklyTaskFields struct {
	Title       string
	Description string
	Priority    WeeklyPriority
	DueDate     *string
	StartDate   *string
	ProjectName *string
}

// NewWeeklyTask は既定値を補ったWeeklyTaskを生成する。
// WeekNumber は開始日のISO週番号になる。
func NewWeeklyTask(fields WeeklyTaskFields, now time.Time) (*WeeklyTask, error) {
	w := &WeeklyTask{
		Title:       strings.TrimSpace(fields.Title),
		Description: fields.Description,
		Priority:    fields.Priority,
		DueDate:     trimOptional(fields.DueDate),
		StartDate:   trimOptional(fields.StartDate),
		ProjectName: trimOptional(fields.ProjectName),
	}
	if w.Priority == 0 {
		w.Priority = WeeklyPriorityNormal
	}
	if w.StartDate == nil {
		w.StartDate = StringPtr(FormatDate(now))
	}
	if err := Validate(w); err != nil {
		return nil, err
	}
	w.WeekNumber = isoWeekOr(*w.StartDate, now)
	return w, nil
}

// RestoreWeeklyTask は読み込んだWeeklyTaskの派生項目を補う。
// WeekNumber は保存されないため、読み込み時点のISO週番号になる。
func RestoreWeeklyTask(w *WeeklyTask, now time.Time) *WeeklyTask {
	_, w.WeekNumber = now.ISOWeek()
	return w
}

// SetCompleted は完了フラグを設定する。
func (w *WeeklyTask) SetCompleted(completed bool) {
	w.Completed = completed
}

// StartDay は週集計に使う開始日を返す。未設定の場合は空文字。
func (w *WeeklyTask) StartDay() string {
	return derefString(w.StartDate)
}

// Done は完了済みかを返す。
func (w *WeeklyTask) Done() bool {
	return w.Completed
}

// CompletionPercent は完了済みなら100、未完了なら0を返す。
func (w *WeeklyTask) CompletionPercent() int {
	if w.Completed {
		return 100
	}
	return 0
}

// LinksTo はProjectNameがtitleと一致するかを返す。
func (w *WeeklyTask) LinksTo(title string) bool {
	return w.ProjectName != nil && *w.ProjectName == title
}

func isoWeekOr(date string, now time.Time) int {
	if t, ok := ParseDate(date); ok {
		_, week := t.ISOWeek()
		return week
	}
	_, week := now.ISOWeek()
	return week
}
