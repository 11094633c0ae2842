package service

import (
	"math"
	"sort"
	"strconv"

	"github.com/haconeco/project-task-tracker/internal/domain"
)

// WeekItem は週ごとの集計対象。Task と WeeklyTask が実装する。
type WeekItem interface {
	StartDay() string
	Done() bool
	CompletionPercent() int
}

// TasksInWeek は開始日のISO週番号がweekに一致する要素を返す。
// 開始日を解析できない要素は除外する。
func TasksInWeek[T WeekItem](items []T, week int) []T {
	out := make([]T, 0)
	for _, item := range items {
		if w, ok := ISOWeekOf(item.StartDay()); ok && w == week {
			out = append(out, item)
		}
	}
	return out
}

// WeeklyStats は週ごとの集計結果。割合は小数第2位で丸める。
type WeeklyStats struct {
	Total           int     `json:"total_tasks"`
	Completed       int     `json:"completed_tasks"`
	CompletionRate  float64 `json:"completion_rate"`
	AverageProgress float64 `json:"average_progress"`
}

// ComputeWeeklyStats はitemsの件数・完了数・完了率・平均進捗を計算する。
func ComputeWeeklyStats[T WeekItem](items []T) WeeklyStats {
	stats := WeeklyStats{Total: len(items)}
	if stats.Total == 0 {
		return stats
	}
	progress := 0
	for _, item := range items {
		if item.Done() {
			stats.Completed++
		}
		progress += item.CompletionPercent()
	}
	stats.CompletionRate = round2(float64(stats.Completed) / float64(stats.Total) * 100)
	stats.AverageProgress = round2(float64(progress) / float64(stats.Total))
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FilterByStatus はステータスで絞り込む。statusは保存ラベルまたは英語名で比較する。
func FilterByStatus(tasks []*domain.Task, status string) []*domain.Task {
	if domain.IsFilterAll(status) {
		return cloneTasks(tasks)
	}
	return filterTasks(tasks, func(t *domain.Task) bool {
		return string(t.Status) == status || t.Status.Name() == status
	})
}

// FilterByPriority は優先度で絞り込む。数値として解釈できない場合は空を返す。
func FilterByPriority(tasks []*domain.Task, priority string) []*domain.Task {
	if domain.IsFilterAll(priority) {
		return cloneTasks(tasks)
	}
	p, err := strconv.Atoi(priority)
	if err != nil {
		return []*domain.Task{}
	}
	return filterTasks(tasks, func(t *domain.Task) bool {
		return t.Priority == p
	})
}

// FilterByProjectNumber はプロジェクト番号で絞り込む。
func FilterByProjectNumber(tasks []*domain.Task, projectNumber string) []*domain.Task {
	if domain.IsFilterAll(projectNumber) {
		return cloneTasks(tasks)
	}
	return filterTasks(tasks, func(t *domain.Task) bool {
		return t.ProjectNumber != nil && *t.ProjectNumber == projectNumber
	})
}

// TaskFilter は一覧画面の絞り込み条件。空文字の項目は絞り込まない。
type TaskFilter struct {
	Status        string
	Priority      string
	ProjectNumber string
}

// Filter はステータス・優先度・プロジェクト番号の順に絞り込む。
func Filter(tasks []*domain.Task, f TaskFilter) []*domain.Task {
	out := cloneTasks(tasks)
	if f.Status != "" {
		out = FilterByStatus(out, f.Status)
	}
	if f.Priority != "" {
		out = FilterByPriority(out, f.Priority)
	}
	if f.ProjectNumber != "" {
		out = FilterByProjectNumber(out, f.ProjectNumber)
	}
	return out
}

// ProjectNumbers は設定済みのプロジェクト番号を重複なしで昇順に返す。
func ProjectNumbers(tasks []*domain.Task) []string {
	seen := make(map[string]struct{})
	numbers := []string{}
	for _, t := range tasks {
		key := t.Key()
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		numbers = append(numbers, key)
	}
	sort.Strings(numbers)
	return numbers
}

func filterTasks(tasks []*domain.Task, keep func(*domain.Task) bool) []*domain.Task {
	out := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func cloneTasks(tasks []*domain.Task) []*domain.Task {
	out := make([]*domain.Task, len(tasks))
	copy(out, tasks)
	return out
}
