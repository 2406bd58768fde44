package diag

import (
	"slices"

	"alef/internal/source"
)

func New(sev Severity, code Code, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
	}
}

func NewError(code Code, msg string) Diagnostic {
	return New(SevError, code, msg)
}

func NewWarning(code Code, msg string) Diagnostic {
	return New(SevWarning, code, msg)
}

func (d Diagnostic) At(loc source.Location) Diagnostic {
	d.Location = loc
	return d
}

func (d Diagnostic) WithContext(text string) Diagnostic {
	d.Context = text
	return d
}

func (d Diagnostic) WithLabel(start, end int, msg string) Diagnostic {
	d.Labels = append(slices.Clip(d.Labels), LabeledSpan{Msg: msg, Start: start, End: end})
	return d
}

func (d Diagnostic) WithReason(reason string) Diagnostic {
	d.Reason = reason
	return d
}

func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

func (d Diagnostic) WithRelated(rel ...Diagnostic) Diagnostic {
	d.Related = append(slices.Clip(d.Related), rel...)
	return d
}
