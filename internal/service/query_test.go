package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haconeco/project-task-tracker/internal/domain"
)

var fixedNow = time.Date(2025, 3, 12, 9, 30, 0, 0, time.Local)

func fixedClock() time.Time { return fixedNow }

func newTask(t *testing.T, fields domain.TaskFields, progress int) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(fields, fixedNow)
	require.NoError(t, err)
	require.NoError(t, task.UpdateProgress(progress, fixedNow))
	return task
}

func sampleTasks(t *testing.T) []*domain.Task {
	t.Helper()
	return []*domain.Task{
		newTask(t, domain.TaskFields{Title: "Ship v1", Priority: 3, StartDate: domain.StringPtr("2025-03-10"), ProjectNumber: domain.StringPtr("P100")}, 100),
		newTask(t, domain.TaskFields{Title: "Write docs", Priority: 1, StartDate: domain.StringPtr("2025-03-14"), ProjectNumber: domain.StringPtr("P200")}, 40),
		newTask(t, domain.TaskFields{Title: "Plan", Priority: 3, StartDate: domain.StringPtr("2025-03-17")}, 0),
	}
}

func titles(tasks []*domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Title)
	}
	return out
}

func TestTasksInWeek(t *testing.T) {
	tasks := sampleTasks(t)

	assert.Equal(t, []string{"Ship v1", "Write docs"}, titles(TasksInWeek(tasks, 11)))
	assert.Equal(t, []string{"Plan"}, titles(TasksInWeek(tasks, 12)))
	assert.Empty(t, TasksInWeek(tasks, 10))
}

func TestTasksInWeekSkipsUnparsableStartDate(t *testing.T) {
	tasks := sampleTasks(t)
	tasks[0].StartDate = "not a date"

	assert.Equal(t, []string{"Write docs"}, titles(TasksInWeek(tasks, 11)))
}

func TestTasksInWeekIgnoresYear(t *testing.T) {
	tasks := sampleTasks(t)
	tasks[2].StartDate = "2024-03-11"

	assert.Equal(t, []string{"Ship v1", "Write docs", "Plan"}, titles(TasksInWeek(tasks, 11)))
}

func TestTasksInWeekWeeklyTasks(t *testing.T) {
	w, err := domain.NewWeeklyTask(domain.WeeklyTaskFields{Title: "review", StartDate: domain.StringPtr("2025-03-11")}, fixedNow)
	require.NoError(t, err)
	w.StartDate = nil
	other, err := domain.NewWeeklyTask(domain.WeeklyTaskFields{Title: "retro", StartDate: domain.StringPtr("2025-03-12")}, fixedNow)
	require.NoError(t, err)

	got := TasksInWeek([]*domain.WeeklyTask{w, other}, 11)
	require.Len(t, got, 1)
	assert.Equal(t, "retro", got[0].Title)
}

func TestComputeWeeklyStats(t *testing.T) {
	tasks := sampleTasks(t)

	stats := ComputeWeeklyStats(tasks)
	assert.Equal(t, WeeklyStats{Total: 3, Completed: 1, CompletionRate: 33.33, AverageProgress: 46.67}, stats)
}

func TestComputeWeeklyStatsEmpty(t *testing.T) {
	assert.Equal(t, WeeklyStats{}, ComputeWeeklyStats([]*domain.Task{}))
}

func TestComputeWeeklyStatsWeeklyTasks(t *testing.T) {
	var items []*domain.WeeklyTask
	for _, done := range []bool{true, true, false} {
		w, err := domain.NewWeeklyTask(domain.WeeklyTaskFields{Title: "w"}, fixedNow)
		require.NoError(t, err)
		w.SetCompleted(done)
		items = append(items, w)
	}

	stats := ComputeWeeklyStats(items)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Completed)
	assert.InDelta(t, 66.67, stats.CompletionRate, 1e-9)
	assert.InDelta(t, 66.67, stats.AverageProgress, 1e-9)
}

func TestFilterByStatus(t *testing.T) {
	tasks := sampleTasks(t)

	tests := []struct {
		status string
		want   []string
	}{
		{domain.FilterAll, []string{"Ship v1", "Write docs", "Plan"}},
		{domain.FilterAllAlias, []string{"Ship v1", "Write docs", "Plan"}},
		{string(domain.StatusInProgress), []string{"Write docs"}},
		{"COMPLETED", []string{"Ship v1"}},
		{"PENDING", []string{"Plan"}},
		{string(domain.StatusDelayed), []string{}},
		{"unknown", []string{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, titles(FilterByStatus(tasks, tt.status)), tt.status)
	}
}

func TestFilterByPriority(t *testing.T) {
	tasks := sampleTasks(t)

	assert.Equal(t, []string{"Ship v1", "Plan"}, titles(FilterByPriority(tasks, "3")))
	assert.Equal(t, []string{"Write docs"}, titles(FilterByPriority(tasks, "1")))
	assert.Len(t, FilterByPriority(tasks, domain.FilterAll), 3)
	assert.Empty(t, FilterByPriority(tasks, "high"))
	assert.Empty(t, FilterByPriority(tasks, "5"))
}

func TestFilterByProjectNumber(t *testing.T) {
	tasks := sampleTasks(t)

	assert.Equal(t, []string{"Write docs"}, titles(FilterByProjectNumber(tasks, "P200")))
	assert.Len(t, FilterByProjectNumber(tasks, domain.FilterAllAlias), 3)
	assert.Empty(t, FilterByProjectNumber(tasks, "P999"))
}

func TestFilterReturnsCopy(t *testing.T) {
	tasks := sampleTasks(t)

	got := FilterByStatus(tasks, domain.FilterAll)
	got[0] = nil
	assert.NotNil(t, tasks[0])
}

func TestFilterCombined(t *testing.T) {
	tasks := sampleTasks(t)

	assert.Equal(t, []string{"Ship v1", "Plan"}, titles(Filter(tasks, TaskFilter{Priority: "3"})))
	assert.Equal(t, []string{"Ship v1"}, titles(Filter(tasks, TaskFilter{
		Status:        domain.FilterAll,
		Priority:      "3",
		ProjectNumber: "P100",
	})))
	assert.Empty(t, Filter(tasks, TaskFilter{Status: "COMPLETED", Priority: "1"}))
	assert.Len(t, Filter(tasks, TaskFilter{}), 3)
}

func TestProjectNumbers(t *testing.T) {
	tasks := sampleTasks(t)
	tasks = append(tasks, newTask(t, domain.TaskFields{Title: "dup", ProjectNumber: domain.StringPtr("P100")}, 0))

	assert.Equal(t, []string{"P100", "P200"}, ProjectNumbers(tasks))
	assert.Equal(t, []string{}, ProjectNumbers(nil))
}
