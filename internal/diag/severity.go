package diag

import (
	"fmt"
	"strings"
)

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
	// SevFatal marks faults after which later phases should not run.
	SevFatal
	sevCount
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	case SevFatal:
		return "fatal"
	}
	return "unknown"
}

// ParseSeverity accepts the lowercase names produced by String.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info", "":
		return SevInfo, nil
	case "warning", "warn":
		return SevWarning, nil
	case "error":
		return SevError, nil
	case "fatal":
		return SevFatal, nil
	}
	return SevInfo, fmt.Errorf("unknown severity %q (want info|warning|error|fatal)", s)
}
