// Package app provides the interactive session for the Gradebook Analyzer.
// It owns the menu state machine and wires the input adapters, the analysis
// engines and the report rendering together for one console user.
//
// # Session States
//
// A session moves through a small state machine:
//
//	MENU     show the menu, read the 1/2/3 choice
//	COLLECT  populate the record store from manual entry or a data file
//	ANALYZE  compute statistics, grades, distribution and the pass/fail split
//	REPORT   render the report blocks and offer a CSV/JSON export
//	EXIT     goodbye
//
// COLLECT returns to MENU when no records were loaded; REPORT always returns
// to MENU so the user can start over with a fresh dataset. Every COLLECT
// pass gets its own session id, carried through context into the structured
// logs.
//
// # Usage
//
// The main entry point is typically:
//
//	session := app.New(cfg, paths, logger, os.Stdin, os.Stdout)
//	if err := session.Run(ctx); err != nil {
//	    // context canceled; the loop itself never fails
//	}
//
// # Error Handling
//
// Import and export failures are reported on the console and logged, then
// the session returns to the menu. The app does not call os.Exit()
// directly, allowing the main function to control the exit process.
package app
