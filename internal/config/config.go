package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	Version            = "0.1.0"
	DefaultDataDir     = "data"
	DefaultProjectFile = "project_data.json"
	DefaultWeeklyFile  = "weekly_data.json"
)

// Config はアプリケーション全体の設定を保持する。
type Config struct {
	Version string `yaml:"-"`
	DataDir string `yaml:"data_dir"`

	// データファイル名。絶対パスの場合はDataDirを無視する。
	ProjectFile string `yaml:"project_file"`
	WeeklyFile  string `yaml:"weekly_file"`

	// ログ設定
	Log LogConfig `yaml:"log"`
}

// LogConfig はログ出力の設定を保持する。
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `yaml:"format"` // "json" | "text"
}

// Load は設定ファイルを読み込む。ファイルが存在しない場合はデフォルト値を使用する。
func Load() (*Config, error) {
	cfg := &Config{
		Version:     Version,
		DataDir:     DefaultDataDir,
		ProjectFile: DefaultProjectFile,
		WeeklyFile:  DefaultWeeklyFile,
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}

	// 設定ファイルのパスを決定
	configPaths := []string{
		"tracker.yaml",
		"tracker.yml",
		filepath.Join("configs", "default.yaml"),
	}

	for _, path := range configPaths {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
			break
		}
	}

	// 環境変数によるオーバーライド
	if v := os.Getenv("TRACKER_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TRACKER_PROJECT_FILE"); v != "" {
		cfg.ProjectFile = v
	}
	if v := os.Getenv("TRACKER_WEEKLY_FILE"); v != "" {
		cfg.WeeklyFile = v
	}
	if v := os.Getenv("TRACKER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TRACKER_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}

	return cfg, nil
}

// ProjectDataPath はプロジェクトデータファイルのパスを返す。
func (c *Config) ProjectDataPath() string {
	return c.dataPath(c.ProjectFile, DefaultProjectFile)
}

// WeeklyDataPath は週次データファイルのパスを返す。
func (c *Config) WeeklyDataPath() string {
	return c.dataPath(c.WeeklyFile, DefaultWeeklyFile)
}

func (c *Config) dataPath(name, fallback string) string {
	if name == "" {
		name = fallback
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// NewLogger はログ設定に従ってロガーを生成する。
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Log.level()}
	if strings.EqualFold(c.Log.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func (l LogConfig) level() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
