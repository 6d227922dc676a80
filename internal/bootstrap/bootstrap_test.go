package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpaceBot_Go/internal/config"
	"github.com/osse101/SpaceBot_Go/internal/server"
	"github.com/osse101/SpaceBot_Go/internal/testing/leaktest"
)

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("API_KEY", "test-key")
	t.Setenv("STORAGE_DRIVER", config.StorageDriverMemory)
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func TestOpenStorage_Memory(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig(t)

	pool, repos, err := OpenStorage(ctx, cfg)

	require.NoError(t, err)
	require.NotNil(t, repos)
	assert.NoError(t, pool.Ping(ctx))
	assert.NotNil(t, repos.Ledger)
	assert.NotNil(t, repos.Trade)
	pool.Close()
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.StorageDriver = "sqlite"

	_, _, err := OpenStorage(context.Background(), cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}

func TestSyncCatalog(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	cfg := memoryConfig(t)
	_, repos, err := OpenStorage(ctx, cfg)
	require.NoError(t, err)
	svc := InitializeServices(cfg, repos, nil)

	// ACT
	missingErr := SyncCatalog(ctx, filepath.Join(t.TempDir(), "absent.toml"), svc)
	seedErr := SyncCatalog(ctx, "../../configs/catalog.toml", svc)
	againErr := SyncCatalog(ctx, "../../configs/catalog.toml", svc)

	// ASSERT
	assert.NoError(t, missingErr, "a missing catalog is skipped")
	require.NoError(t, seedErr)
	assert.NoError(t, againErr, "reseeding skips existing entries")

	jobs, err := svc.Jobs.GetJobs(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, jobs)
	stocks, err := svc.Stocks.GetStocks(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, stocks)
}

func TestSyncCatalog_InvalidFile(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig(t)
	_, repos, err := OpenStorage(ctx, cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[items]]\nid = \"x\"\nprice = 1\n"), 0o600))

	err = SyncCatalog(ctx, path, InitializeServices(cfg, repos, nil))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load catalog")
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2030-01-01_00-00-%02d", i))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	cleanupLogs(dir, 3)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"session_2030-01-01_00-00-09.log",
		"session_2030-01-01_00-00-10.log",
		"session_2030-01-01_00-00-11.log",
		"notes.txt",
	}, names)
}

func TestPruneInterval(t *testing.T) {
	assert.Equal(t, MinPruneInterval, pruneInterval(time.Second))
	assert.Equal(t, 10*time.Minute, pruneInterval(time.Minute))
}

func TestMarketJobs_StopReleasesWorkers(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig(t)
	cfg.Economy.MarketTickInterval = 5 * time.Millisecond
	_, repos, err := OpenStorage(ctx, cfg)
	require.NoError(t, err)
	svc := InitializeServices(cfg, repos, nil)

	leaktest.CheckNoGoroutineLeak(t, func() {
		jobs := StartMarketJobs(ctx, cfg, svc.Stocks)
		time.Sleep(30 * time.Millisecond)
		jobs.Stop()
	})
}

func TestGracefulShutdown(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig(t)
	pool, repos, err := OpenStorage(ctx, cfg)
	require.NoError(t, err)
	svc := InitializeServices(cfg, repos, nil)

	jobs := StartMarketJobs(ctx, cfg, svc.Stocks)
	srv := server.NewServer(server.Options{Port: 0, APIKey: cfg.APIKey}, pool, svc)

	done := make(chan struct{})
	go func() {
		GracefulShutdown(ctx, ShutdownComponents{Server: srv, MarketJobs: jobs, Storage: pool})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown did not complete")
	}
}
