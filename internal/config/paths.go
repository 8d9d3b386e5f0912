package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file locations: import files are
// looked up under DataDir, exports land in ReportsDir, logs in LogsDir.
type Paths struct {
	ExecutableDir string
	DataDir       string
	ReportsDir    string
	LogsDir       string

	// ReportCSV is the default export target when no filename is given
	ReportCSV string
}

// GetPaths returns the application paths relative to the executable location.
// Paths are anchored to the executable directory rather than the working
// directory so the tool behaves the same wherever it is launched from.
//
// Directory structure:
//
//	gradebook
//	├── data/              (import files: grades.csv, marks.xlsx, ...)
//	│   └── reports/       (exported reports)
//	└── logs/              (structured logs)
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}

	return PathsIn(filepath.Dir(exe)), nil
}

// PathsIn builds the path set anchored at the given base directory.
// Split out from GetPaths so tests and the -data flag can anchor elsewhere.
func PathsIn(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	reportsDir := filepath.Join(dataDir, "reports")

	return &Paths{
		ExecutableDir: baseDir,
		DataDir:       dataDir,
		ReportsDir:    reportsDir,
		LogsDir:       filepath.Join(baseDir, "logs"),

		ReportCSV: filepath.Join(reportsDir, "grade_report.csv"),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.ReportsDir,
		p.LogsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}

	return nil
}

// GetDataPath returns the path for a file in the data directory
func (p *Paths) GetDataPath(filename string) string {
	return filepath.Join(p.DataDir, filename)
}

// GetReportPath returns the path for a file in the reports directory
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns the path for a file in the logs directory
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
