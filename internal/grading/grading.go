// Package grading maps marks to letter grades and derives the grade
// distribution and pass/fail partition for a record store.
package grading

import (
	"gradebook/internal/domain"
	"gradebook/internal/store"
)

// Letter grade band floors. A mark at or above a floor earns that grade;
// anything below the D floor is an F.
const (
	floorA = 90
	floorB = 80
	floorC = 70
	floorD = 60
)

// GradeFor returns the letter grade for a mark.
func GradeFor(mark int) domain.Grade {
	switch {
	case mark >= floorA:
		return domain.GradeA
	case mark >= floorB:
		return domain.GradeB
	case mark >= floorC:
		return domain.GradeC
	case mark >= floorD:
		return domain.GradeD
	default:
		return domain.GradeF
	}
}

// Assign grades every student in the store. The returned map covers exactly
// the store's key set, so marks and grades stay aligned within one pass.
func Assign(s *store.Store) map[string]domain.Grade {
	grades := make(map[string]domain.Grade, s.Len())
	for _, r := range s.Records() {
		grades[r.Name] = GradeFor(r.Mark)
	}
	return grades
}

// Distribution counts students per letter grade. Every grade appears in the
// result, zero-valued when no student earned it.
func Distribution(grades map[string]domain.Grade) map[domain.Grade]int {
	counts := make(map[domain.Grade]int, len(domain.Grades))
	for _, g := range domain.Grades {
		counts[g] = 0
	}
	for _, g := range grades {
		counts[g]++
	}
	return counts
}

// PassFailSummary partitions student names by the pass threshold.
// Both slices preserve store order.
type PassFailSummary struct {
	Threshold int      `json:"threshold"`
	Passed    []string `json:"passed"`
	Failed    []string `json:"failed"`
}

// PassFail splits the store's students into passed and failed groups.
// A mark equal to the threshold passes.
func PassFail(s *store.Store, threshold int) PassFailSummary {
	summary := PassFailSummary{
		Threshold: threshold,
		Passed:    []string{},
		Failed:    []string{},
	}
	for _, r := range s.Records() {
		if r.Mark >= threshold {
			summary.Passed = append(summary.Passed, r.Name)
		} else {
			summary.Failed = append(summary.Failed, r.Name)
		}
	}
	return summary
}
