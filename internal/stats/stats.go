// Package stats implements the descriptive statistics computed over a record
// store: average, median and the extreme scores.
package stats

import (
	"context"
	"log/slog"
	"sort"

	"gradebook/internal/store"
)

// NoStudent is the placeholder name reported for extremes of an empty store.
const NoStudent = "N/A"

// Score pairs a student name with a mark, used for the extreme values.
type Score struct {
	Name string `json:"name"`
	Mark int    `json:"mark"`
}

// Summary bundles the classroom statistics for one analysis pass.
type Summary struct {
	Students int     `json:"students"`
	Average  float64 `json:"average"`
	Median   float64 `json:"median"`
	Highest  Score   `json:"highest"`
	Lowest   Score   `json:"lowest"`
}

// Average returns the arithmetic mean of all marks, 0 for an empty store.
func Average(s *store.Store) float64 {
	if s.Len() == 0 {
		return 0
	}

	sum := 0
	for _, mark := range s.Marks() {
		sum += mark
	}
	return float64(sum) / float64(s.Len())
}

// Median returns the statistical median of all marks, 0 for an empty store.
// Even counts interpolate: the mean of the two middle values.
func Median(s *store.Store) float64 {
	if s.Len() == 0 {
		return 0
	}

	marks := s.Marks()
	sort.Ints(marks)

	mid := len(marks) / 2
	if len(marks)%2 == 1 {
		return float64(marks[mid])
	}
	return float64(marks[mid-1]+marks[mid]) / 2
}

// MaxScore returns the student with the highest mark. Ties go to the
// first-encountered student; an empty store yields (NoStudent, 0).
func MaxScore(s *store.Store) Score {
	records := s.Records()
	if len(records) == 0 {
		return Score{Name: NoStudent, Mark: 0}
	}

	best := Score{Name: records[0].Name, Mark: records[0].Mark}
	for _, r := range records[1:] {
		if r.Mark > best.Mark {
			best = Score{Name: r.Name, Mark: r.Mark}
		}
	}
	return best
}

// MinScore returns the student with the lowest mark. Ties go to the
// first-encountered student; an empty store yields (NoStudent, 0).
func MinScore(s *store.Store) Score {
	records := s.Records()
	if len(records) == 0 {
		return Score{Name: NoStudent, Mark: 0}
	}

	worst := Score{Name: records[0].Name, Mark: records[0].Mark}
	for _, r := range records[1:] {
		if r.Mark < worst.Mark {
			worst = Score{Name: r.Name, Mark: r.Mark}
		}
	}
	return worst
}

// Summarizer generates classroom statistics summaries.
type Summarizer struct {
	logger *slog.Logger
}

// NewSummarizer creates a new summarizer
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger}
}

// Summarize computes the full statistics summary for the store.
// All figures are derived from the same snapshot within one call.
func (s *Summarizer) Summarize(ctx context.Context, records *store.Store) Summary {
	summary := Summary{
		Students: records.Len(),
		Average:  Average(records),
		Median:   Median(records),
		Highest:  MaxScore(records),
		Lowest:   MinScore(records),
	}

	s.logger.InfoContext(ctx, "computed classroom statistics",
		slog.Int("students", summary.Students),
		slog.Float64("average", summary.Average),
		slog.Float64("median", summary.Median),
		slog.String("highest_student", summary.Highest.Name),
		slog.Int("highest_mark", summary.Highest.Mark),
		slog.String("lowest_student", summary.Lowest.Name),
		slog.Int("lowest_mark", summary.Lowest.Mark))

	return summary
}
