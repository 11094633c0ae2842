package repository

import (
	"github.com/haconeco/project-task-tracker/internal/domain"
)

// DefaultProjectFile はプロジェクトデータファイルの既定名。
const DefaultProjectFile = "project_data.json"

// JSONProjectStore はJSONファイルベースのProjectStore実装。
type JSONProjectStore struct {
	c collection[domain.Task]
}

// NewJSONProjectStore は新しいJSONProjectStoreを生成する。読み込みは Load で行う。
func NewJSONProjectStore(path string, opts ...Option) *JSONProjectStore {
	o := buildOptions(opts)
	return &JSONProjectStore{
		c: newCollection(path, "project", projectDecoder(o.clock), o),
	}
}

// Load はファイルからTaskを読み込む。
func (s *JSONProjectStore) Load() error {
	return s.c.load()
}

// Save は全Taskをファイルへ書き込む。
func (s *JSONProjectStore) Save() error {
	return s.c.save()
}

// Add はTaskを生成して末尾に追加し、保存する。
// 保存に失敗した場合は追加を取り消してエラーを返す。
func (s *JSONProjectStore) Add(fields domain.TaskFields) (*domain.Task, error) {
	task, err := domain.NewTask(fields, s.c.now())
	if err != nil {
		return nil, err
	}
	if err := s.c.appendAndSave(task); err != nil {
		return nil, err
	}
	s.c.logger.Debug("task added", "title", task.Title, "project_number", task.Key())
	return task, nil
}

// All はTaskスライスの複製を返す。
func (s *JSONProjectStore) All() []*domain.Task {
	return s.c.all()
}

// GetByKey はプロジェクト番号で線形探索する。
func (s *JSONProjectStore) GetByKey(projectNumber string) (*domain.Task, error) {
	if projectNumber == "" {
		return nil, domain.ErrNotFound
	}
	for _, task := range s.c.items {
		if task.Key() == projectNumber {
			return task, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete はプロジェクト番号が一致するTaskを削除する。
// 一致が無い場合は false を返し、保存しない。
func (s *JSONProjectStore) Delete(projectNumber string) (bool, error) {
	if projectNumber == "" {
		return false, nil
	}
	removed, err := s.c.removeAndSave(func(_ int, task *domain.Task) bool {
		return task.Key() != projectNumber
	})
	if err != nil {
		return false, err
	}
	if removed > 0 {
		s.c.logger.Debug("tasks deleted", "project_number", projectNumber, "count", removed)
	}
	return removed > 0, nil
}

// GetByIndex は範囲外の場合 false を返す。
func (s *JSONProjectStore) GetByIndex(index int) (*domain.Task, bool) {
	return s.c.at(index)
}

// RemoveByIndex は範囲外の場合 false を返し、保存しない。
func (s *JSONProjectStore) RemoveByIndex(index int) (bool, error) {
	if _, ok := s.c.at(index); !ok {
		return false, nil
	}
	if _, err := s.c.removeAndSave(func(i int, _ *domain.Task) bool {
		return i != index
	}); err != nil {
		return false, err
	}
	s.c.logger.Debug("task removed", "index", index)
	return true, nil
}

// UpdateProgressByIndex は進捗を更新して保存する。
// 範囲外は false、範囲外の進捗はValidationErrorを返す。保存に失敗した場合は更新を取り消す。
func (s *JSONProjectStore) UpdateProgressByIndex(index, progress int) (bool, error) {
	task, ok := s.c.at(index)
	if !ok {
		return false, nil
	}
	prev := *task
	if err := task.UpdateProgress(progress, s.c.now()); err != nil {
		return false, err
	}
	if err := s.c.save(); err != nil {
		*task = prev
		return false, err
	}
	return true, nil
}

// Len は件数を返す。
func (s *JSONProjectStore) Len() int {
	return s.c.size()
}
