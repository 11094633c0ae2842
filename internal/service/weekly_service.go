package service

import (
	"time"

	"github.com/haconeco/project-task-tracker/internal/domain"
	"github.com/haconeco/project-task-tracker/internal/repository"
)

// WeeklyService はWeeklyTaskに対する操作と週選択の補助を提供する。
type WeeklyService struct {
	store repository.WeeklyTaskStore
	now   func() time.Time
}

// NewWeeklyService は新しいWeeklyServiceを生成する。
func NewWeeklyService(store repository.WeeklyTaskStore, clock func() time.Time) *WeeklyService {
	return &WeeklyService{store: store, now: clock}
}

// Create は新しいWeeklyTaskを作成して保存する。
func (s *WeeklyService) Create(fields domain.WeeklyTaskFields) (*domain.WeeklyTask, error) {
	return s.store.Add(fields)
}

// List は全WeeklyTaskを返す。
func (s *WeeklyService) List() []*domain.WeeklyTask {
	return s.store.All()
}

// Remove は位置指定でWeeklyTaskを削除する。
func (s *WeeklyService) Remove(index int) (bool, error) {
	return s.store.RemoveByIndex(index)
}

// SetCompleted は位置指定で完了フラグを設定して保存する。保存に失敗した場合は元に戻す。
func (s *WeeklyService) SetCompleted(index int, completed bool) (bool, error) {
	task, ok := s.store.GetByIndex(index)
	if !ok {
		return false, nil
	}
	prev := task.Completed
	task.SetCompleted(completed)
	if err := s.store.Save(); err != nil {
		task.SetCompleted(prev)
		return false, err
	}
	return true, nil
}

// Save は呼び出し側がWeeklyTaskを直接変更した後に明示的に保存する。
func (s *WeeklyService) Save() error {
	return s.store.Save()
}

// LinkedTo はproject_nameがtitleと一致するWeeklyTaskを返す。
// 名前による参照のため、改名・削除されたTaskへの参照はどれにも一致しない。
func (s *WeeklyService) LinkedTo(title string) []*domain.WeeklyTask {
	out := []*domain.WeeklyTask{}
	for _, w := range s.store.All() {
		if w.LinksTo(title) {
			out = append(out, w)
		}
	}
	return out
}

// TasksInWeek は開始日がISO週weekに属するWeeklyTaskを返す。
func (s *WeeklyService) TasksInWeek(week int) []*domain.WeeklyTask {
	return TasksInWeek(s.store.All(), week)
}

// WeeklyStats はISO週weekに属するWeeklyTaskの集計を返す。
func (s *WeeklyService) WeeklyStats(week int) WeeklyStats {
	return ComputeWeeklyStats(s.TasksInWeek(week))
}

// WeekRange は今年の週番号weekの月曜・日曜を MM/DD で返す。
func (s *WeeklyService) WeekRange(week int) (string, string, error) {
	return WeekRange(week, s.now().Year())
}

// WeekSpans は今年の週選択肢を返す。
func (s *WeeklyService) WeekSpans() []WeekSpan {
	return WeekSpans(s.now().Year())
}

// CurrentWeek は現在のISO週番号を返す。
func (s *WeeklyService) CurrentWeek() int {
	_, week := s.now().ISOWeek()
	return week
}
