// Package settings holds the process's configuration.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Settings is the immutable configuration for the upload pipeline.
//
// Values come from the environment at construction time. Tests construct
// a Settings directly with the fields they care about.
type Settings struct {
	// BaseURL is the scheme and host of the backend server.
	BaseURL string

	// APIKey authenticates requests to the backend.
	APIKey string

	// Entity is the user or team owning the run.
	Entity string

	// Project is the project the run belongs to.
	Project string

	// RunID identifies the run.
	RunID string

	// DataDir is the root directory for staging copies of files being
	// uploaded. Empty means a per-process temporary directory.
	DataDir string

	// CacheDir is the root directory for the content-addressed file cache.
	// Empty means the default user cache location.
	CacheDir string

	// MaxJobs is the maximum number of concurrent object-store transfers.
	MaxJobs int

	// RetryMax is the maximum number of retries for backend requests.
	RetryMax int

	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

const defaultMaxJobs = 128

// New builds Settings from the environment.
func New() *Settings {
	return &Settings{
		BaseURL:      envOr("WANDB_BASE_URL", "https://api.wandb.ai"),
		APIKey:       os.Getenv("WANDB_API_KEY"),
		Entity:       os.Getenv("WANDB_ENTITY"),
		Project:      os.Getenv("WANDB_PROJECT"),
		RunID:        os.Getenv("WANDB_RUN_ID"),
		DataDir:      os.Getenv("WANDB_DATA_DIR"),
		CacheDir:     os.Getenv("WANDB_CACHE_DIR"),
		MaxJobs:      envInt("WANDB_FILE_TRANSFER_MAX_JOBS", defaultMaxJobs),
		RetryMax:     envInt("WANDB_FILE_TRANSFER_RETRY_MAX", 20),
		RetryWaitMin: envDuration("WANDB_FILE_TRANSFER_RETRY_WAIT_MIN_SECONDS", 2*time.Second),
		RetryWaitMax: envDuration("WANDB_FILE_TRANSFER_RETRY_WAIT_MAX_SECONDS", 60*time.Second),
	}
}

// GetBaseURL returns the backend server URL.
func (s *Settings) GetBaseURL() string { return s.BaseURL }

// GetAPIKey returns the backend API key.
func (s *Settings) GetAPIKey() string { return s.APIKey }

// GetEntity returns the entity owning the run.
func (s *Settings) GetEntity() string { return s.Entity }

// GetProject returns the run's project.
func (s *Settings) GetProject() string { return s.Project }

// GetRunID returns the run's ID.
func (s *Settings) GetRunID() string { return s.RunID }

// GetStagingDir returns the directory for staging copies of files that are
// being uploaded, creating it if necessary.
//
// Without a configured data directory, a per-process temporary directory is
// used so that concurrent processes don't delete each other's files.
func (s *Settings) GetStagingDir() (string, error) {
	root := s.DataDir
	if root == "" {
		root = filepath.Join(
			os.TempDir(),
			fmt.Sprintf("wandb-staging-%d", os.Getpid()),
		)
	}

	dir := filepath.Join(root, "artifacts", "staging")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("settings: failed to make staging dir: %w", err)
	}

	return dir, nil
}

// GetCacheDir returns the root of the content-addressed file cache.
func (s *Settings) GetCacheDir() string {
	if s.CacheDir != "" {
		return s.CacheDir
	}

	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		userCacheDir = os.TempDir()
	}

	return filepath.Join(userCacheDir, "wandb")
}

// GetMaxJobs returns the maximum number of concurrent transfers.
func (s *Settings) GetMaxJobs() int {
	if s.MaxJobs <= 0 {
		return defaultMaxJobs
	}
	return s.MaxJobs
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func envDuration(key string, fallback time.Duration) time.Duration {
	seconds, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds * float64(time.Second))
}
