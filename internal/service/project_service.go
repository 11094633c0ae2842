package service

import (
	"time"

	"github.com/haconeco/project-task-tracker/internal/domain"
	"github.com/haconeco/project-task-tracker/internal/repository"
)

// ProjectService はTaskに対する操作を提供する。
type ProjectService struct {
	store repository.ProjectStore
	now   func() time.Time
}

// NewProjectService は新しいProjectServiceを生成する。
func NewProjectService(store repository.ProjectStore, clock func() time.Time) *ProjectService {
	return &ProjectService{store: store, now: clock}
}

// Create は新しいTaskを作成して保存する。
func (s *ProjectService) Create(fields domain.TaskFields) (*domain.Task, error) {
	return s.store.Add(fields)
}

// List は全Taskを返す。
func (s *ProjectService) List() []*domain.Task {
	return s.store.All()
}

// Get はプロジェクト番号でTaskを取得する。
func (s *ProjectService) Get(projectNumber string) (*domain.Task, error) {
	return s.store.GetByKey(projectNumber)
}

// Delete はプロジェクト番号でTaskを削除する。
func (s *ProjectService) Delete(projectNumber string) (bool, error) {
	return s.store.Delete(projectNumber)
}

// Remove は位置指定でTaskを削除する。
func (s *ProjectService) Remove(index int) (bool, error) {
	return s.store.RemoveByIndex(index)
}

// UpdateProgress は位置指定でTaskの進捗を更新する。
func (s *ProjectService) UpdateProgress(index, progress int) (bool, error) {
	return s.store.UpdateProgressByIndex(index, progress)
}

// Edit は位置指定でTaskの属性を編集して保存する。
// 保存に失敗した場合は編集前の状態に戻す。
func (s *ProjectService) Edit(index int, fields domain.TaskFields) (bool, error) {
	task, ok := s.store.GetByIndex(index)
	if !ok {
		return false, nil
	}
	prev := *task
	if err := task.Edit(fields, s.now()); err != nil {
		return false, err
	}
	if err := s.store.Save(); err != nil {
		*task = prev
		return false, err
	}
	return true, nil
}

// Save は呼び出し側がTaskを直接変更した後に明示的に保存する。
func (s *ProjectService) Save() error {
	return s.store.Save()
}

// Filter は一覧画面の条件で絞り込む。
func (s *ProjectService) Filter(f TaskFilter) []*domain.Task {
	return Filter(s.store.All(), f)
}

// ProjectNumbers はフィルタ候補のプロジェクト番号を返す。
func (s *ProjectService) ProjectNumbers() []string {
	return ProjectNumbers(s.store.All())
}

// Overdue は期限切れで未完了のTaskを返す。Statusは変更しない。
func (s *ProjectService) Overdue() []*domain.Task {
	now := s.now()
	return filterTasks(s.store.All(), func(t *domain.Task) bool {
		return t.IsOverdue(now)
	})
}

// TasksInWeek は開始日がISO週weekに属するTaskを返す。
func (s *ProjectService) TasksInWeek(week int) []*domain.Task {
	return TasksInWeek(s.store.All(), week)
}

// WeeklyStats はISO週weekに属するTaskの集計を返す。
func (s *ProjectService) WeeklyStats(week int) WeeklyStats {
	return ComputeWeeklyStats(s.TasksInWeek(week))
}
