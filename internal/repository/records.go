package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/haconeco/project-task-tracker/internal/domain"
)

// 各データファイルで存在が必須のキー。値が null でもキーがあればよい。
var (
	projectRequiredKeys = []string{"title", "description", "priority", "status", "progress", "start_date", "updated_at"}
	weeklyRequiredKeys  = []string{"title", "description", "priority"}
)

// decodeRecords はJSON配列を解析する。1件でも必須キーが欠けていれば全体を失敗とする。
// キーの有無と null を区別するため、オブジェクトとして一度読んでから確認する。
func decodeRecords[R any](data []byte, requiredKeys []string) ([]R, error) {
	var objects []map[string]json.RawMessage
	if err := json.Unmarshal(data, &objects); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptData, err)
	}
	for i, obj := range objects {
		for _, key := range requiredKeys {
			if _, ok := obj[key]; !ok {
				return nil, fmt.Errorf("%w: record %d: missing required key %q", domain.ErrCorruptData, i, key)
			}
		}
	}

	var records []R
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptData, err)
	}
	for i := range records {
		if err := domain.Validate(&records[i]); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", domain.ErrCorruptData, i, err)
		}
	}
	return records, nil
}

// projectRecord はプロジェクトデータファイルの1要素。
// description と start_date は null を許し、読み込み時に既定値で補う。
type projectRecord struct {
	Title         *string `json:"title" validate:"required"`
	Description   *string `json:"description"`
	Priority      *int    `json:"priority" validate:"required"`
	Status        *string `json:"status" validate:"required"`
	Progress      *int    `json:"progress" validate:"required"`
	StartDate     *string `json:"start_date"`
	UpdatedAt     *string `json:"updated_at" validate:"required"`
	DueDate       *string `json:"due_date"`
	ProjectNumber *string `json:"project_number"`
}

// toTask はTaskへ変換する。開始日が null または空の場合は読み込み日になる。
func (r *projectRecord) toTask(now time.Time) *domain.Task {
	start := derefOr(r.StartDate, "")
	if start == "" {
		start = domain.FormatDate(now)
	}
	return &domain.Task{
		Title:         *r.Title,
		Description:   derefOr(r.Description, ""),
		Priority:      *r.Priority,
		Status:        domain.Status(*r.Status),
		Progress:      *r.Progress,
		StartDate:     start,
		UpdatedAt:     *r.UpdatedAt,
		DueDate:       r.DueDate,
		ProjectNumber: r.ProjectNumber,
	}
}

func projectDecoder(now func() time.Time) func([]byte) ([]*domain.Task, error) {
	return func(data []byte) ([]*domain.Task, error) {
		records, err := decodeRecords[projectRecord](data, projectRequiredKeys)
		if err != nil {
			return nil, err
		}
		loadedAt := now()
		tasks := make([]*domain.Task, 0, len(records))
		for i := range records {
			tasks = append(tasks, records[i].toTask(loadedAt))
		}
		return tasks, nil
	}
}

// weeklyRecord は週次データファイルの1要素。week_number は保存しない。
type weeklyRecord struct {
	Title       *string `json:"title" validate:"required"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority" validate:"required"`
	DueDate     *string `json:"due_date"`
	StartDate   *string `json:"start_date"`
	IsCompleted *bool   `json:"is_completed"`
	ProjectName *string `json:"project_name"`
}

func (r *weeklyRecord) toWeeklyTask(now time.Time) *domain.WeeklyTask {
	w := &domain.WeeklyTask{
		Title:       *r.Title,
		Description: derefOr(r.Description, ""),
		Priority:    domain.WeeklyPriority(*r.Priority),
		DueDate:     r.DueDate,
		StartDate:   r.StartDate,
		Completed:   derefOr(r.IsCompleted, false),
		ProjectName: r.ProjectName,
	}
	return domain.RestoreWeeklyTask(w, now)
}

func weeklyDecoder(now func() time.Time) func([]byte) ([]*domain.WeeklyTask, error) {
	return func(data []byte) ([]*domain.WeeklyTask, error) {
		records, err := decodeRecords[weeklyRecord](data, weeklyRequiredKeys)
		if err != nil {
			return nil, err
		}
		loadedAt := now()
		tasks := make([]*domain.WeeklyTask, 0, len(records))
		for i := range records {
			tasks = append(tasks, records[i].toWeeklyTask(loadedAt))
		}
		return tasks, nil
	}
}

func derefOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
