// Package version holds build metadata for the alef CLI. The variables
// are plain strings so they can be set with -ldflags "-X".
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Version with major, minor and patch in distinct colors.
// Versions that are not dotted triples are returned as is.
func Colored(useColor bool) string {
	core, suffix := Version, ""
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core, suffix = core[:i], core[i:]
	}
	parts := strings.Split(core, ".")
	if !useColor || len(parts) != 3 {
		return Version
	}
	paint := func(c *color.Color, s string) string {
		c.EnableColor()
		return c.Sprint(s)
	}
	return paint(majorColor, parts[0]) + "." + paint(minorColor, parts[1]) + "." + paint(patchColor, parts[2]) + suffix
}

// Banner is the text printed by `alef version`.
func Banner(useColor bool) string {
	var b strings.Builder
	b.WriteString("alef ")
	b.WriteString(Colored(useColor))
	if GitCommit != "" {
		commit := GitCommit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		b.WriteString(" (" + commit + ")")
	}
	if BuildDate != "" {
		b.WriteString(" built " + BuildDate)
	}
	return b.String()
}
