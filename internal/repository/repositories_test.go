package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haconeco/project-task-tracker/internal/config"
	"github.com/haconeco/project-task-tracker/internal/domain"
)

func TestNewRepositoriesLoadsConfiguredFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{DataDir: dir, ProjectFile: "p.json", WeeklyFile: "w.json"}

	weekly := `[{"title": "w", "description": "", "priority": 1, "is_completed": true}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "w.json"), []byte(weekly), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "p.json"), []byte("garbage"), 0o644))

	repos := NewRepositories(cfg, nil, WithClock(fixedClock))

	assert.Equal(t, 0, repos.Projects.Len(), "corrupt project file starts empty")
	require.Equal(t, 1, repos.Weekly.Len())

	_, err := repos.Projects.Add(domain.TaskFields{Title: "new"})
	require.NoError(t, err)
	assert.Len(t, readRaw(t, filepath.Join(dir, "p.json")), 1)
}
