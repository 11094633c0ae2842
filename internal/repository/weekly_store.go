package repository

import (
	"github.com/haconeco/project-task-tracker/internal/domain"
)

// DefaultWeeklyFile は週次データファイルの既定名。
const DefaultWeeklyFile = "weekly_data.json"

// JSONWeeklyTaskStore はJSONファイルベースのWeeklyTaskStore実装。
// ファイルには入力項目のみを保存し、WeekNumber は読み込み時に再計算される。
type JSONWeeklyTaskStore struct {
	c collection[domain.WeeklyTask]
}

// NewJSONWeeklyTaskStore は新しいJSONWeeklyTaskStoreを生成する。
func NewJSONWeeklyTaskStore(path string, opts ...Option) *JSONWeeklyTaskStore {
	o := buildOptions(opts)
	return &JSONWeeklyTaskStore{
		c: newCollection(path, "weekly", weeklyDecoder(o.clock), o),
	}
}

func (s *JSONWeeklyTaskStore) Load() error {
	return s.c.load()
}

func (s *JSONWeeklyTaskStore) Save() error {
	return s.c.save()
}

// Add はWeeklyTaskを生成して追加し、保存する。保存に失敗した場合は追加を取り消す。
func (s *JSONWeeklyTaskStore) Add(fields domain.WeeklyTaskFields) (*domain.WeeklyTask, error) {
	task, err := domain.NewWeeklyTask(fields, s.c.now())
	if err != nil {
		return nil, err
	}
	if err := s.c.appendAndSave(task); err != nil {
		return nil, err
	}
	s.c.logger.Debug("weekly task added", "title", task.Title, "week", task.WeekNumber)
	return task, nil
}

func (s *JSONWeeklyTaskStore) All() []*domain.WeeklyTask {
	return s.c.all()
}

func (s *JSONWeeklyTaskStore) GetByIndex(index int) (*domain.WeeklyTask, bool) {
	return s.c.at(index)
}

// RemoveByIndex は範囲外の場合 false を返し、保存しない。
func (s *JSONWeeklyTaskStore) RemoveByIndex(index int) (bool, error) {
	if _, ok := s.c.at(index); !ok {
		return false, nil
	}
	if _, err := s.c.removeAndSave(func(i int, _ *domain.WeeklyTask) bool {
		return i != index
	}); err != nil {
		return false, err
	}
	s.c.logger.Debug("weekly task removed", "index", index)
	return true, nil
}

func (s *JSONWeeklyTaskStore) Len() int {
	return s.c.size()
}
