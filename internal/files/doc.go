// Package files provides file system discovery and path resolution for the
// Gradebook Analyzer.
//
// This package contains two main components:
//
// Discovery: Finds importable data files (CSV and Excel workbooks) under the
// configured data directory so the interactive session can show the user what
// is available before prompting for a filename.
//
// Manager: Resolves user-typed filenames against the application's data and
// reports directories. Absolute paths are honored as-is; bare names fall back
// to the well-known directories so imports and exports land in one place.
//
// Example usage:
//
//	// Create a discovery instance
//	discovery := files.NewDiscovery(paths.DataDir)
//
//	// Find all importable files
//	dataFiles, err := discovery.FindDataFiles(".")
//
//	// Create a manager instance
//	manager := files.NewManager(paths)
//
//	// Resolve a user-typed filename
//	path := manager.ResolveImportPath("grades.csv")
package files
