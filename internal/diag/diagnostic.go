package diag

import (
	"alef/internal/source"
)

// LabeledSpan marks the 1-based columns Start..End (inclusive) of a
// diagnostic's context text. Msg may be empty.
type LabeledSpan struct {
	Msg   string
	Start int
	End   int
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Location source.Location
	Context  string
	Labels   []LabeledSpan
	Reason   string
	Help     string
	Related  []Diagnostic
}

// Title returns Message, falling back to the code description.
func (d Diagnostic) Title() string {
	if d.Message != "" {
		return d.Message
	}
	return d.Code.Title()
}

func (d Diagnostic) Error() string {
	return d.Severity.String() + " " + d.Code.ID() + ": " + d.Title()
}
