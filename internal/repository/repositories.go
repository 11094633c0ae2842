package repository

import (
	"log/slog"

	"github.com/haconeco/project-task-tracker/internal/config"
)

// Repositories は全ストアを束ねる構造体。
type Repositories struct {
	Projects ProjectStore
	Weekly   WeeklyTaskStore
}

// NewRepositories は設定に基づいて全ストアを生成し、データファイルを読み込む。
// 読み込みの失敗は各ストアが記録し空のコレクションで継続するため、ここでは返さない。
func NewRepositories(cfg *config.Config, logger *slog.Logger, opts ...Option) *Repositories {
	opts = append([]Option{WithLogger(logger)}, opts...)

	projects := NewJSONProjectStore(cfg.ProjectDataPath(), opts...)
	_ = projects.Load()

	weekly := NewJSONWeeklyTaskStore(cfg.WeeklyDataPath(), opts...)
	_ = weekly.Load()

	return &Repositories{
		Projects: projects,
		Weekly:   weekly,
	}
}
