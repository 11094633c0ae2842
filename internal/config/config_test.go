package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Version, cfg.Version)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, DefaultProjectFile, cfg.ProjectFile)
	assert.Equal(t, DefaultWeeklyFile, cfg.WeeklyFile)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromFile(t *testing.T) {
	chdir(t, t.TempDir())
	yml := "data_dir: /srv/tracker\nweekly_file: week.json\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile("tracker.yaml", []byte(yml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/tracker", cfg.DataDir)
	assert.Equal(t, "week.json", cfg.WeeklyFile)
	assert.Equal(t, DefaultProjectFile, cfg.ProjectFile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadInvalidFile(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("tracker.yaml", []byte("data_dir: [unclosed"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TRACKER_DATA_DIR", "/tmp/tracker-test")
	t.Setenv("TRACKER_PROJECT_FILE", "projects.json")
	t.Setenv("TRACKER_WEEKLY_FILE", "weeks.json")
	t.Setenv("TRACKER_LOG_LEVEL", "warn")
	t.Setenv("TRACKER_LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tracker-test", cfg.DataDir)
	assert.Equal(t, "projects.json", cfg.ProjectFile)
	assert.Equal(t, "weeks.json", cfg.WeeklyFile)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestConfigPaths(t *testing.T) {
	cfg := &Config{DataDir: "data", ProjectFile: DefaultProjectFile}

	assert.Equal(t, filepath.Join("data", "project_data.json"), cfg.ProjectDataPath())
	// 未設定のファイル名は既定値になる
	assert.Equal(t, filepath.Join("data", "weekly_data.json"), cfg.WeeklyDataPath())

	abs := filepath.Join(t.TempDir(), "elsewhere.json")
	cfg.WeeklyFile = abs
	assert.Equal(t, abs, cfg.WeeklyDataPath())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Log: LogConfig{Level: "warn", Format: "text"}}
	logger := cfg.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "key=value")

	buf.Reset()
	cfg.Log = LogConfig{Level: "debug", Format: "json"}
	cfg.NewLogger(&buf).Debug("visible")
	assert.Contains(t, buf.String(), `"msg":"visible"`)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
