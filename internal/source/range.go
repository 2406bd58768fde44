package source

import "fmt"

// Range is a start location, an optional inclusive end location and the
// source text between them.
type Range struct {
	Start   Location
	End     Location // KindUnknown when absent
	Content string
}

// HasEnd reports whether the range carries an end location.
func (r Range) HasEnd() bool {
	return !r.End.IsUnknown()
}

// Columns returns the 1-based start and end columns of the range.
// A range spanning several lines ends at its start column.
func (r Range) Columns() (start, end int) {
	start = int(r.Start.Col)
	end = start
	if r.HasEnd() && r.End.Line == r.Start.Line && r.End.Col >= r.Start.Col {
		end = int(r.End.Col)
	}
	return start, end
}

func (r Range) String() string {
	return fmt.Sprintf("%s - %s: %s", r.Start, r.End, r.Content)
}
