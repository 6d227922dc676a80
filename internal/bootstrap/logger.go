package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/SpaceBot_Go/internal/config"
	"github.com/osse101/SpaceBot_Go/internal/logger"
)

// SetupLogger initializes the default slog logger from configuration.
// When cfg.LogDir is set, output is also written to a timestamped session file and
// older session files beyond LogFileRetentionCount are removed. The returned closer
// must be closed on exit; it is a no-op when no file was opened.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	lc := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, addSource)

	var (
		w      io.Writer = os.Stdout
		closer io.Closer = nopCloser{}
	)
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf(ErrMsgCreateLogsDir, err)
		}
		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgOpenLogFile, err)
		}
		w = io.MultiWriter(os.Stdout, f)
		closer = f
	}

	logger.InitLoggerWithWriter(lc, w)

	slog.Info(LogMsgStartingSpaceBot,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"storage", cfg.StorageDriver,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"port", cfg.Port)

	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// cleanupLogs keeps the newest keep session files. Session names sort by their timestamp.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) <= keep {
		return
	}

	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
