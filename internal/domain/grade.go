package domain

// Grade is the letter classification derived from a mark.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Grades lists all letter grades in display order.
// Distribution output iterates this slice so A..F ordering is stable.
var Grades = []Grade{GradeA, GradeB, GradeC, GradeD, GradeF}
