package settings_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wandb/wandb/filesync/internal/settings"
)

func TestNew_ReadsEnvironment(t *testing.T) {
	t.Setenv("WANDB_BASE_URL", "http://localhost:9090")
	t.Setenv("WANDB_API_KEY", "secret")
	t.Setenv("WANDB_ENTITY", "test-entity")
	t.Setenv("WANDB_PROJECT", "test-project")
	t.Setenv("WANDB_RUN_ID", "run123")
	t.Setenv("WANDB_FILE_TRANSFER_MAX_JOBS", "7")
	t.Setenv("WANDB_FILE_TRANSFER_RETRY_WAIT_MIN_SECONDS", "0.5")

	s := settings.New()

	assert.Equal(t, "http://localhost:9090", s.GetBaseURL())
	assert.Equal(t, "secret", s.GetAPIKey())
	assert.Equal(t, "test-entity", s.GetEntity())
	assert.Equal(t, "test-project", s.GetProject())
	assert.Equal(t, "run123", s.GetRunID())
	assert.Equal(t, 7, s.GetMaxJobs())
	assert.Equal(t, 500*time.Millisecond, s.RetryWaitMin)
}

func TestNew_Defaults(t *testing.T) {
	t.Setenv("WANDB_BASE_URL", "")
	t.Setenv("WANDB_FILE_TRANSFER_MAX_JOBS", "")

	s := settings.New()

	assert.Equal(t, "https://api.wandb.ai", s.GetBaseURL())
	assert.Equal(t, 128, s.GetMaxJobs())
}

func TestGetStagingDir_UsesDataDir(t *testing.T) {
	dataDir := t.TempDir()
	s := &settings.Settings{DataDir: dataDir}

	dir, err := s.GetStagingDir()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "artifacts", "staging"), dir)
	assert.DirExists(t, dir)
}

func TestGetStagingDir_FallsBackToTemp(t *testing.T) {
	s := &settings.Settings{}

	dir, err := s.GetStagingDir()

	require.NoError(t, err)
	assert.Contains(t, dir, "wandb-staging-")
	assert.DirExists(t, dir)
}

func TestGetCacheDir_PrefersConfigured(t *testing.T) {
	cacheDir := t.TempDir()
	s := &settings.Settings{CacheDir: cacheDir}

	assert.Equal(t, cacheDir, s.GetCacheDir())
}
