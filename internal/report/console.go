// Package report renders the interactive console output: the menu, the
// statistics blocks and the fixed-width grade table.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gradebook/internal/domain"
	"gradebook/internal/grading"
	"gradebook/internal/stats"
	"gradebook/internal/store"
)

// Table layout shared by the grade report and its rule lines.
const (
	nameWidth  = 20
	markWidth  = 10
	gradeWidth = 10
	ruleWidth  = 40
)

// gradeNA fills the grade column when a name is missing from the grade map.
const gradeNA = "N/A"

// Renderer writes the interactive console output.
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a renderer writing to w
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// WelcomeMenu prints the banner and the numbered menu options.
func (r *Renderer) WelcomeMenu() {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(r.w, "      Welcome to the Gradebook Analyzer")
	fmt.Fprintln(r.w, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(r.w, "Please choose an option:")
	fmt.Fprintln(r.w, "  1: Manually enter student data")
	fmt.Fprintln(r.w, "  2: Load data from a CSV file")
	fmt.Fprintln(r.w, "  3: Exit program")
}

// ChoicePrompt writes the menu input prompt, no trailing newline.
func (r *Renderer) ChoicePrompt() {
	fmt.Fprint(r.w, "Enter your choice (1, 2, or 3): ")
}

// InvalidChoice reports an unrecognized menu selection.
func (r *Renderer) InvalidChoice() {
	fmt.Fprintln(r.w, "Invalid choice. Please select 1, 2, or 3.")
}

// ManualEntryIntro opens the manual entry block.
func (r *Renderer) ManualEntryIntro() {
	fmt.Fprintln(r.w, "\n--- Manual Data Entry ---")
	fmt.Fprintln(r.w, "Enter student name and mark. Press Enter on an empty name to finish.")
}

// FileLoadIntro opens the file load block.
func (r *Renderer) FileLoadIntro() {
	fmt.Fprintln(r.w, "\n--- Load from CSV File ---")
}

// AvailableFiles lists importable files found in the data directory.
// Nothing is printed when the directory holds none.
func (r *Renderer) AvailableFiles(names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(r.w, "Available data files: %s\n", strings.Join(names, ", "))
}

// FilenamePrompt asks for the file to load, no trailing newline.
func (r *Renderer) FilenamePrompt() {
	fmt.Fprint(r.w, "Enter the CSV filename (e.g., 'grades.csv'): ")
}

// LoadedFrom echoes the source file and its header row.
func (r *Renderer) LoadedFrom(filename string, header []string) {
	fmt.Fprintf(r.w, "Loading data from '%s' (Header: %s)\n", filename, strings.Join(header, ", "))
}

// SkippedRow warns about a file row that produced no record.
func (r *Renderer) SkippedRow(fields []string) {
	fmt.Fprintf(r.w, "Skipping invalid row: %v\n", fields)
}

// FileNotFound reports a missing import file.
func (r *Renderer) FileNotFound(filename string) {
	fmt.Fprintf(r.w, "Error: The file '%s' was not found.\n", filename)
}

// LoadError reports any other import failure.
func (r *Renderer) LoadError(err error) {
	fmt.Fprintf(r.w, "An error occurred: %v\n", err)
}

// NoData reports an empty collection pass before returning to the menu.
func (r *Renderer) NoData() {
	fmt.Fprintln(r.w, "No data loaded. Returning to main menu.")
}

// AnalysisComplete announces how many students the pass covers.
func (r *Renderer) AnalysisComplete(students int) {
	fmt.Fprintf(r.w, "\n--- Analysis complete for %d students ---\n", students)
}

// Statistics prints the classroom statistics block. The average always
// carries two decimals; the median drops trailing zeros so whole values
// print bare.
func (r *Renderer) Statistics(summary stats.Summary) {
	fmt.Fprintln(r.w, "\n--- Classroom Statistics ---")
	fmt.Fprintf(r.w, "  Average Score: %.2f\n", summary.Average)
	fmt.Fprintf(r.w, "  Median Score:  %s\n", formatMedian(summary.Median))
	fmt.Fprintf(r.w, "  Highest Score: %d (Student: %s)\n", summary.Highest.Mark, summary.Highest.Name)
	fmt.Fprintf(r.w, "  Lowest Score:  %d (Student: %s)\n", summary.Lowest.Mark, summary.Lowest.Name)
}

func formatMedian(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Distribution prints the per-grade counts in A to F display order.
func (r *Renderer) Distribution(dist map[domain.Grade]int) {
	fmt.Fprintln(r.w, "\n--- Grade Distribution ---")
	for _, grade := range domain.Grades {
		fmt.Fprintf(r.w, "  Grade %s: %d student(s)\n", grade, dist[grade])
	}
}

// PassFail prints the pass/fail partition with name lists. The name lines
// only appear for non-empty groups.
func (r *Renderer) PassFail(summary grading.PassFailSummary) {
	fmt.Fprintln(r.w, "\n--- Pass/Fail Summary ---")
	fmt.Fprintf(r.w, "Pass Mark: %d\n", summary.Threshold)

	fmt.Fprintf(r.w, "\nTotal Students Passed: %d\n", len(summary.Passed))
	if len(summary.Passed) > 0 {
		fmt.Fprintf(r.w, "  Names: %s\n", strings.Join(summary.Passed, ", "))
	}

	fmt.Fprintf(r.w, "\nTotal Students Failed: %d\n", len(summary.Failed))
	if len(summary.Failed) > 0 {
		fmt.Fprintf(r.w, "  Names: %s\n", strings.Join(summary.Failed, ", "))
	}
}

// GradeTable prints the full fixed-width report sorted by name ascending.
func (r *Renderer) GradeTable(s *store.Store, grades map[string]domain.Grade) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(r.w, "         Full Grade Report")
	fmt.Fprintln(r.w, strings.Repeat("=", ruleWidth))
	fmt.Fprintf(r.w, "%-*s %-*s %-*s\n", nameWidth, "Name", markWidth, "Marks", gradeWidth, "Grade")
	fmt.Fprintln(r.w, strings.Repeat("-", ruleWidth))

	for _, name := range s.SortedNames() {
		mark, _ := s.Get(name)
		grade := gradeNA
		if g, ok := grades[name]; ok {
			grade = string(g)
		}
		fmt.Fprintf(r.w, "%-*s %-*d %-*s\n", nameWidth, name, markWidth, mark, gradeWidth, grade)
	}
	fmt.Fprintln(r.w, strings.Repeat("-", ruleWidth))
}

// SavePrompt asks whether to export the report, no trailing newline.
func (r *Renderer) SavePrompt() {
	fmt.Fprint(r.w, "\nDo you want to save this report to a CSV file? (y/n): ")
}

// SaveFilenamePrompt asks for the export filename, no trailing newline.
func (r *Renderer) SaveFilenamePrompt() {
	fmt.Fprint(r.w, "\nEnter filename to save results (e.g., 'report.csv'): ")
}

// SaveSuccess confirms a written report under its final filename.
func (r *Renderer) SaveSuccess(filename string) {
	fmt.Fprintf(r.w, "Successfully saved report to '%s'\n", filename)
}

// SaveError reports a failed export.
func (r *Renderer) SaveError(filename string) {
	fmt.Fprintf(r.w, "Error: Could not write to file '%s'.\n", filename)
}

// Goodbye prints the exit line.
func (r *Renderer) Goodbye() {
	fmt.Fprintln(r.w, "Exiting program. Goodbye!")
}
