package importer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"gradebook/internal/domain"
	"gradebook/internal/store"
)

// Manual entry console messages.
const (
	promptName       = "Enter student name: "
	msgInvalidNumber = "Invalid input. Please enter a numerical mark."
	msgMarkRange     = "Invalid mark. Please enter a value between 0 and 100."
)

// ManualReader collects records interactively: name and mark pairs until an
// empty name ends the session. A rejected mark discards that name and the
// loop moves on to the next name prompt rather than retrying.
type ManualReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	logger  *slog.Logger
}

// NewManualReader creates a manual entry reader over the given scanner. The
// scanner is shared with the caller so buffered input is not lost between
// the menu and the entry loop.
func NewManualReader(scanner *bufio.Scanner, out io.Writer, logger *slog.Logger) *ManualReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &ManualReader{scanner: scanner, out: out, logger: logger}
}

// Collect runs the entry loop and returns the resulting store. The store may
// be empty when the user finishes immediately or the input stream closes.
func (m *ManualReader) Collect(ctx context.Context) *store.Store {
	s := store.New()
	for {
		fmt.Fprint(m.out, promptName)
		name, ok := m.readLine()
		if !ok || name == "" {
			break
		}

		fmt.Fprintf(m.out, "Enter mark for %s: ", name)
		markText, ok := m.readLine()
		if !ok {
			break
		}

		mark, err := strconv.Atoi(markText)
		if err != nil {
			fmt.Fprintln(m.out, msgInvalidNumber)
			m.logger.WarnContext(ctx, "rejected manual mark entry",
				slog.String("student", name),
				slog.String("input", markText))
			continue
		}
		if !domain.ValidMark(mark) {
			fmt.Fprintln(m.out, msgMarkRange)
			m.logger.WarnContext(ctx, "manual mark outside valid range",
				slog.String("student", name),
				slog.Int("mark", mark))
			continue
		}

		s.Set(name, mark)
	}

	m.logger.InfoContext(ctx, "manual entry finished", slog.Int("records", s.Len()))
	return s
}

func (m *ManualReader) readLine() (string, bool) {
	if !m.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.scanner.Text()), true
}
