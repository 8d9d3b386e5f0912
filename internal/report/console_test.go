package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"gradebook/internal/domain"
	"gradebook/internal/grading"
	"gradebook/internal/stats"
	"gradebook/internal/store"
)

func render(fn func(r *Renderer)) string {
	out := &bytes.Buffer{}
	fn(NewRenderer(out))
	return out.String()
}

func TestWelcomeMenu(t *testing.T) {
	got := render(func(r *Renderer) { r.WelcomeMenu() })

	want := "\n" +
		strings.Repeat("=", 40) + "\n" +
		"      Welcome to the Gradebook Analyzer\n" +
		strings.Repeat("=", 40) + "\n" +
		"Please choose an option:\n" +
		"  1: Manually enter student data\n" +
		"  2: Load data from a CSV file\n" +
		"  3: Exit program\n"
	assert.Equal(t, want, got)
}

func TestPrompts_NoTrailingNewline(t *testing.T) {
	tests := []struct {
		name string
		fn   func(r *Renderer)
		want string
	}{
		{"choice", func(r *Renderer) { r.ChoicePrompt() }, "Enter your choice (1, 2, or 3): "},
		{"filename", func(r *Renderer) { r.FilenamePrompt() }, "Enter the CSV filename (e.g., 'grades.csv'): "},
		{"save", func(r *Renderer) { r.SavePrompt() }, "\nDo you want to save this report to a CSV file? (y/n): "},
		{"save filename", func(r *Renderer) { r.SaveFilenamePrompt() }, "\nEnter filename to save results (e.g., 'report.csv'): "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(tt.fn))
		})
	}
}

func TestStatistics(t *testing.T) {
	summary := stats.Summary{
		Students: 2,
		Average:  57.5,
		Median:   57.5,
		Highest:  stats.Score{Name: "Alice", Mark: 85},
		Lowest:   stats.Score{Name: "Bob", Mark: 30},
	}

	got := render(func(r *Renderer) { r.Statistics(summary) })

	want := "\n--- Classroom Statistics ---\n" +
		"  Average Score: 57.50\n" +
		"  Median Score:  57.5\n" +
		"  Highest Score: 85 (Student: Alice)\n" +
		"  Lowest Score:  30 (Student: Bob)\n"
	assert.Equal(t, want, got)
}

func TestFormatMedian(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{80, "80"},
		{71.5, "71.5"},
		{0, "0"},
		{66.25, "66.25"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMedian(tt.in))
	}
}

func TestDistribution_AllGradesInOrder(t *testing.T) {
	dist := map[domain.Grade]int{
		domain.GradeA: 1,
		domain.GradeB: 0,
		domain.GradeC: 2,
		domain.GradeD: 0,
		domain.GradeF: 1,
	}

	got := render(func(r *Renderer) { r.Distribution(dist) })

	want := "\n--- Grade Distribution ---\n" +
		"  Grade A: 1 student(s)\n" +
		"  Grade B: 0 student(s)\n" +
		"  Grade C: 2 student(s)\n" +
		"  Grade D: 0 student(s)\n" +
		"  Grade F: 1 student(s)\n"
	assert.Equal(t, want, got)
}

func TestPassFail(t *testing.T) {
	summary := grading.PassFailSummary{
		Threshold: 40,
		Passed:    []string{"Alice", "Carol"},
		Failed:    []string{"Bob"},
	}

	got := render(func(r *Renderer) { r.PassFail(summary) })

	want := "\n--- Pass/Fail Summary ---\n" +
		"Pass Mark: 40\n" +
		"\nTotal Students Passed: 2\n" +
		"  Names: Alice, Carol\n" +
		"\nTotal Students Failed: 1\n" +
		"  Names: Bob\n"
	assert.Equal(t, want, got)
}

func TestPassFail_EmptyGroupHasNoNamesLine(t *testing.T) {
	summary := grading.PassFailSummary{
		Threshold: 40,
		Passed:    []string{"Alice"},
		Failed:    []string{},
	}

	got := render(func(r *Renderer) { r.PassFail(summary) })

	assert.Contains(t, got, "Total Students Failed: 0\n")
	assert.Equal(t, 1, strings.Count(got, "Names:"))
}

func TestGradeTable(t *testing.T) {
	s := store.New()
	s.Set("Bob", 30)
	s.Set("Alice", 85)
	grades := map[string]domain.Grade{
		"Alice": domain.GradeB,
		"Bob":   domain.GradeF,
	}

	got := render(func(r *Renderer) { r.GradeTable(s, grades) })

	header := "Name" + strings.Repeat(" ", 17) + "Marks" + strings.Repeat(" ", 6) + "Grade" + strings.Repeat(" ", 5)
	aliceRow := "Alice" + strings.Repeat(" ", 16) + "85" + strings.Repeat(" ", 9) + "B" + strings.Repeat(" ", 9)
	bobRow := "Bob" + strings.Repeat(" ", 18) + "30" + strings.Repeat(" ", 9) + "F" + strings.Repeat(" ", 9)

	want := "\n" +
		strings.Repeat("=", 40) + "\n" +
		"         Full Grade Report\n" +
		strings.Repeat("=", 40) + "\n" +
		header + "\n" +
		strings.Repeat("-", 40) + "\n" +
		aliceRow + "\n" +
		bobRow + "\n" +
		strings.Repeat("-", 40) + "\n"
	assert.Equal(t, want, got)
}

func TestGradeTable_MissingGradeShowsNA(t *testing.T) {
	s := store.New()
	s.Set("Alice", 85)

	got := render(func(r *Renderer) { r.GradeTable(s, map[string]domain.Grade{}) })

	assert.Contains(t, got, "N/A")
}

func TestGradeTable_ThreeDigitMark(t *testing.T) {
	s := store.New()
	s.Set("Full", 100)

	got := render(func(r *Renderer) { r.GradeTable(s, map[string]domain.Grade{"Full": domain.GradeA}) })

	row := "Full" + strings.Repeat(" ", 17) + "100" + strings.Repeat(" ", 8) + "A" + strings.Repeat(" ", 9)
	assert.Contains(t, got, row+"\n")
}

func TestLoadMessages(t *testing.T) {
	assert.Equal(t,
		"Loading data from 'grades.csv' (Header: Name, Marks)\n",
		render(func(r *Renderer) { r.LoadedFrom("grades.csv", []string{"Name", "Marks"}) }))

	assert.Equal(t,
		"Skipping invalid row: [Bob]\n",
		render(func(r *Renderer) { r.SkippedRow([]string{"Bob"}) }))

	assert.Equal(t,
		"Error: The file 'nope.csv' was not found.\n",
		render(func(r *Renderer) { r.FileNotFound("nope.csv") }))
}

func TestAvailableFiles(t *testing.T) {
	assert.Equal(t,
		"Available data files: a.csv, b.xlsx\n",
		render(func(r *Renderer) { r.AvailableFiles([]string{"a.csv", "b.xlsx"}) }))

	assert.Empty(t, render(func(r *Renderer) { r.AvailableFiles(nil) }))
}

func TestSaveAndExitMessages(t *testing.T) {
	assert.Equal(t,
		"Successfully saved report to 'report.csv'\n",
		render(func(r *Renderer) { r.SaveSuccess("report.csv") }))

	assert.Equal(t,
		"Error: Could not write to file 'report.csv'.\n",
		render(func(r *Renderer) { r.SaveError("report.csv") }))

	assert.Equal(t,
		"Exiting program. Goodbye!\n",
		render(func(r *Renderer) { r.Goodbye() }))

	assert.Equal(t,
		"Invalid choice. Please select 1, 2, or 3.\n",
		render(func(r *Renderer) { r.InvalidChoice() }))

	assert.Equal(t,
		"No data loaded. Returning to main menu.\n",
		render(func(r *Renderer) { r.NoData() }))
}

func TestAnalysisComplete(t *testing.T) {
	assert.Equal(t,
		"\n--- Analysis complete for 3 students ---\n",
		render(func(r *Renderer) { r.AnalysisComplete(3) }))
}
