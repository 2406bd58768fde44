package diag

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// FormatShort renders d on one line: "<severity> <code> <location> <message>".
func FormatShort(d Diagnostic) string {
	loc := "unknown source"
	if !d.Location.IsUnknown() {
		loc = d.Location.String()
	}
	return fmt.Sprintf("%s %s %s %s", d.Severity, d.Code.ID(), loc, sanitizeMessage(d.Title()))
}

// FormatShortList renders diagnostics one per line, sorted by source,
// position, severity and code.
func FormatShortList(diags []Diagnostic) string {
	sorted := make([]Diagnostic, len(diags))
	copy(sorted, diags)
	sort.SliceStable(sorted, func(i, j int) bool {
		li, lj := sorted[i].Location, sorted[j].Location
		if li.Source != lj.Source {
			return li.Source < lj.Source
		}
		if li.Line != lj.Line {
			return li.Line < lj.Line
		}
		if li.Col != lj.Col {
			return li.Col < lj.Col
		}
		if sorted[i].Severity != sorted[j].Severity {
			return sorted[i].Severity > sorted[j].Severity
		}
		return sorted[i].Code < sorted[j].Code
	})
	lines := make([]string, 0, len(sorted))
	for _, d := range sorted {
		lines = append(lines, FormatShort(d))
	}
	return strings.Join(lines, "\n")
}

func writeShort(w io.Writer, d Diagnostic) error {
	_, err := fmt.Fprintln(w, FormatShort(d))
	return err
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
