package service

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/haconeco/project-task-tracker/internal/config"
	"github.com/haconeco/project-task-tracker/internal/repository"
)

// Services は表示層から呼び出される全サービスを束ねる構造体。
type Services struct {
	Projects *ProjectService
	Weekly   *WeeklyService
}

// NewServices はストアを元に全サービスを初期化する。clockがnilの場合は time.Now を使う。
func NewServices(repos *repository.Repositories, clock func() time.Time) *Services {
	if clock == nil {
		clock = time.Now
	}
	return &Services{
		Projects: NewProjectService(repos.Projects, clock),
		Weekly:   NewWeeklyService(repos.Weekly, clock),
	}
}

// Open はデータディレクトリを用意し、両ストアを読み込んでサービスを返す。
// データファイルが壊れていても空のコレクションで起動する。
func Open(cfg *config.Config, logger *slog.Logger) (*Services, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := ensureDataDirs(cfg); err != nil {
		return nil, err
	}
	repos := repository.NewRepositories(cfg, logger)
	logger.Info("tracker opened",
		"version", cfg.Version,
		"projects", repos.Projects.Len(),
		"weekly_tasks", repos.Weekly.Len(),
	)
	return NewServices(repos, time.Now), nil
}

func ensureDataDirs(cfg *config.Config) error {
	dirs := []string{
		cfg.DataDir,
		filepath.Dir(cfg.ProjectDataPath()),
		filepath.Dir(cfg.WeeklyDataPath()),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
