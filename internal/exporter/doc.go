// Package exporter writes grade reports for the Gradebook Analyzer.
//
// This package contains two main components:
//
// CSVWriter: Core CSV writing functionality with support for headers,
// appending, and UTF-8 BOM for Excel compatibility. Relative paths resolve
// into the configured reports directory.
//
// ReportExporter: Renders one analysis pass to disk. User-typed filenames
// get a .csv suffix unless they already name a report format, and a .json
// filename selects the summary document instead of the Name,Marks,Grade
// table.
//
// Example usage:
//
//	// Create a report exporter
//	exp := exporter.NewReportExporter(paths, logger)
//
//	// Fix up the user-typed filename, then export
//	name := exp.NormalizeFilename("report") // report.csv
//	err := exp.Export(ctx, name, gradeReport)
package exporter
