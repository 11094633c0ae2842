package repository

import (
	"github.com/haconeco/project-task-tracker/internal/domain"
)

// ProjectStore はTaskの永続化とメモリ上のコレクションを担うインターフェース。
// 1つのJSONファイルを所有し、全件を読み書きする。
type ProjectStore interface {
	// Load はファイルからコレクションを読み込む。失敗時も空のコレクションで継続できる。
	Load() error

	// Save はコレクション全体をファイルへ書き込む。
	Save() error

	// Add は新しいTaskを生成して追加し、保存する。
	Add(fields domain.TaskFields) (*domain.Task, error)

	// All はコレクションの複製を返す。要素のTaskはストアと共有される。
	All() []*domain.Task

	// GetByKey はプロジェクト番号が一致する最初のTaskを返す。
	GetByKey(projectNumber string) (*domain.Task, error)

	// Delete はプロジェクト番号が一致するTaskをすべて削除する。
	Delete(projectNumber string) (bool, error)

	// GetByIndex は位置指定でTaskを取得する。
	GetByIndex(index int) (*domain.Task, bool)

	// RemoveByIndex は位置指定でTaskを削除する。
	RemoveByIndex(index int) (bool, error)

	// UpdateProgressByIndex は位置指定でTaskの進捗を更新し、保存する。
	UpdateProgressByIndex(index, progress int) (bool, error)

	// Len は件数を返す。
	Len() int
}

// WeeklyTaskStore はWeeklyTaskの永続化を担うインターフェース。
type WeeklyTaskStore interface {
	Load() error
	Save() error
	Add(fields domain.WeeklyTaskFields) (*domain.WeeklyTask, error)
	All() []*domain.WeeklyTask
	GetByIndex(index int) (*domain.WeeklyTask, bool)
	RemoveByIndex(index int) (bool, error)
	Len() int
}

var (
	_ ProjectStore    = (*JSONProjectStore)(nil)
	_ WeeklyTaskStore = (*JSONWeeklyTaskStore)(nil)
)
