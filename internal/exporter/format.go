package exporter

import (
	"fmt"
)

// formatInt formats an integer mark for CSV output
func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
