package app

import (
	"gradebook/internal/domain"
	"gradebook/internal/grading"
	"gradebook/internal/stats"
)

// State identifies where the interactive session is in its menu loop.
type State string

// Session states.
const (
	StateMenu    State = "MENU"
	StateCollect State = "COLLECT"
	StateAnalyze State = "ANALYZE"
	StateReport  State = "REPORT"
	StateExit    State = "EXIT"
)

// Collection modes chosen from the menu.
const (
	modeManual = "manual"
	modeFile   = "file"
)

// analysis holds everything one pass computed over a single store snapshot,
// keeping the marks and grades mappings aligned on the same key set.
type analysis struct {
	summary      stats.Summary
	grades       map[string]domain.Grade
	distribution map[domain.Grade]int
	passFail     grading.PassFailSummary
}
