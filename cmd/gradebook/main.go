package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gradebook/internal/app"
	"gradebook/internal/config"
	"gradebook/internal/infrastructure"
)

func main() {
	dataDir := flag.String("data", "", "directory for import files (defaults to data/ relative to executable)")
	threshold := flag.Int("threshold", -1, "pass mark override, 0-100 (defaults to configured value)")
	logLevel := flag.String("log-level", "", "log level override (debug|info|warn|error)")
	flag.Parse()

	// Initialize paths first to get default directories
	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		overrideDataDir(paths, *dataDir)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	applyOverrides(cfg, *threshold, *logLevel)

	// Anchor the log file next to the executable, keeping the interactive
	// console free of log lines
	if !filepath.IsAbs(cfg.Logging.FilePath) {
		cfg.Logging.FilePath = filepath.Join(paths.ExecutableDir, cfg.Logging.FilePath)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create required directories", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "failed to create application directories: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Starting Gradebook Analyzer",
		slog.String("data_dir", paths.DataDir),
		slog.String("reports_dir", paths.ReportsDir),
		slog.Int("pass_threshold", cfg.Grading.PassThreshold),
		slog.String("executable_dir", paths.ExecutableDir))

	session := app.New(cfg, paths, logger, os.Stdin, os.Stdout)
	if err := session.Run(context.Background()); err != nil {
		logger.Error("Session ended with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// overrideDataDir re-anchors the import and report paths at dir, keeping
// the reports subdirectory layout.
func overrideDataDir(paths *config.Paths, dir string) {
	paths.DataDir = dir
	paths.ReportsDir = filepath.Join(dir, "reports")
	paths.ReportCSV = filepath.Join(paths.ReportsDir, "grade_report.csv")
}

// applyOverrides folds command line flags into the loaded config. A negative
// threshold means the flag was not set; values above 100 are ignored.
func applyOverrides(cfg *config.Config, threshold int, logLevel string) {
	if threshold >= 0 {
		if threshold > 100 {
			slog.Warn("Ignoring out-of-range pass threshold", "threshold", threshold)
		} else {
			cfg.Grading.PassThreshold = threshold
		}
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
}
