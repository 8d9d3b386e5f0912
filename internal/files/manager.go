package files

import (
	"log/slog"
	"os"
	"path/filepath"

	"gradebook/internal/config"
)

// Manager resolves user-typed filenames against the application directories
type Manager struct {
	paths *config.Paths
}

// NewManager creates a new file manager instance
func NewManager(paths *config.Paths) *Manager {
	return &Manager{paths: paths}
}

// FileExists checks if a file exists at the given path
func (m *Manager) FileExists(path string) bool {
	_, err := os.Stat(path)
	exists := err == nil

	slog.Debug("FileExists check",
		slog.String("path", path),
		slog.Bool("exists", exists))

	return exists
}

// ResolveImportPath resolves a filename typed at the import prompt. Absolute
// paths and names that exist relative to the working directory are honored
// as-is; anything else is looked up under the data directory, so names from
// the available-files listing load without a full path.
func (m *Manager) ResolveImportPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if m.FileExists(name) {
		return name
	}

	resolved := m.paths.GetDataPath(name)
	slog.Debug("resolved import path against data directory",
		slog.String("name", name),
		slog.String("resolved", resolved))
	return resolved
}

// ResolveReportPath resolves a filename typed at the export prompt. Relative
// names land under the reports directory.
func (m *Manager) ResolveReportPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	resolved := m.paths.GetReportPath(name)
	slog.Debug("resolved report path against reports directory",
		slog.String("name", name),
		slog.String("resolved", resolved))
	return resolved
}
