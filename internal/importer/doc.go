// Package importer populates the session record store from its input
// sources.
//
// Three adapters feed the same store shape:
//
// ManualReader: interactive name/mark entry, ended by an empty name. A
// rejected mark drops that name for the iteration and the loop moves on to
// the next name prompt.
//
// LoadCSV: comma-separated files with one header row, then name,mark rows.
// Rows that cannot produce a valid record are skipped and reported back on
// the Result, never aborting the import.
//
// LoadXLSX: Excel workbooks read through excelize, same row rules as CSV.
// A sheet named "Marks" or "Grades" wins when present, otherwise the first
// sheet is used.
//
// LoadFile routes a path to the right file adapter by extension.
package importer
