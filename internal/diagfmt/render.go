package diagfmt

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"alef/internal/diag"
)

// DefaultWidth is the wrap column for reason and help text.
const DefaultWidth = 80

// Renderer draws a diagnostic in three parts: a header with the severity,
// code, message and reason; the source context with stacked labels; a help
// footer. It implements diag.Renderer.
type Renderer struct {
	Theme Theme
	Width int
	Color bool
}

// NewRenderer returns a Unicode renderer wrapping at DefaultWidth.
func NewRenderer(useColor bool) *Renderer {
	return &Renderer{Theme: UnicodeTheme(), Width: DefaultWidth, Color: useColor}
}

// Render writes d and its related diagnostics to w.
func (r *Renderer) Render(w io.Writer, d diag.Diagnostic) error {
	_, err := io.WriteString(w, r.RenderString(d))
	return err
}

// RenderString returns the rendered form of d.
func (r *Renderer) RenderString(d diag.Diagnostic) string {
	var b strings.Builder
	r.render(&b, d)
	return b.String()
}

func (r *Renderer) render(b *strings.Builder, d diag.Diagnostic) {
	b.WriteByte('\n')
	r.header(b, d)
	r.context(b, d)
	r.footer(b, d)
	for _, rel := range d.Related {
		r.render(b, rel)
	}
}

func (r *Renderer) header(b *strings.Builder, d diag.Diagnostic) {
	sev := r.severityStyle(d.Severity)
	fmt.Fprintf(b, "%s %s: %s\n",
		sev.Sprint(d.Severity.String()),
		r.style(color.Bold).Sprint(d.Code.ID()),
		r.style(color.Underline).Sprint(d.Title()),
	)
	b.WriteByte('\n')
	if d.Reason == "" {
		return
	}
	glyph := sev.Sprint(r.Theme.Glyph(d.Severity))
	b.WriteString(glyph)
	b.WriteByte(' ')
	b.WriteString(r.wrap(d.Reason, runewidth.StringWidth(r.Theme.Glyph(d.Severity))+1, "", "  "))
	b.WriteString("\n\n")
}

func (r *Renderer) footer(b *strings.Builder, d diag.Diagnostic) {
	if d.Help == "" {
		return
	}
	const marker = "help:"
	wrapped := r.wrap(marker+" "+d.Help, 2, "  ", "  ")
	b.WriteString(strings.Replace(wrapped, marker, r.style(color.Bold).Sprint(marker), 1))
	b.WriteByte('\n')
}

// wrap word-wraps s so that each line fits Width once indented. used is
// the width already taken on the first line.
func (r *Renderer) wrap(s string, used int, first, rest string) string {
	width := r.Width
	if width <= 0 {
		width = DefaultWidth
	}
	limit := max(width-max(used, len(rest)), 10)
	lines := strings.Split(wordwrap.String(s, limit), "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = first + lines[i]
		} else {
			lines[i] = rest + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// contextLine is a non-empty line of the snippet with the labels that fall
// inside it, re-based to the line's own columns.
type contextLine struct {
	text   string
	labels []diag.LabeledSpan
}

func (r *Renderer) context(b *strings.Builder, d diag.Diagnostic) {
	loc := "unknown source"
	if !d.Location.IsUnknown() {
		loc = d.Location.String()
	}
	if d.Context == "" {
		b.WriteString(loc)
		b.WriteByte('\n')
		return
	}

	first := 1
	if d.Location.IsConcrete() && d.Location.Line > 0 {
		first = int(d.Location.Line)
	}
	lines := splitContext(d.Context, sortedLabels(d.Labels))
	pad := strings.Repeat(" ", len(strconv.Itoa(first+len(lines)-1)))

	fmt.Fprintf(b, " %s %c%c %s\n", pad, r.Theme.LTop, r.Theme.HBar, loc)
	for i, line := range lines {
		num := fmt.Sprintf("%*d", len(pad), first+i)
		fmt.Fprintf(b, " %s %c %s\n", r.style(color.Bold).Sprint(num), r.Theme.VBar, line.text)
		if len(line.labels) == 0 {
			continue
		}
		labelStyle := r.style(color.FgRed, color.Bold)
		for _, row := range r.labelRows(line.text, line.labels) {
			fmt.Fprintf(b, " %s %c %s\n", pad, r.Theme.VBarBreak, labelStyle.Sprint(row))
		}
	}
	fmt.Fprintf(b, " %s %c%s\n", pad, r.Theme.LBot, strings.Repeat(string(r.Theme.HBar), 3))
}

// sortedLabels drops labels without a message and orders the rest by
// start column.
func sortedLabels(in []diag.LabeledSpan) []diag.LabeledSpan {
	out := make([]diag.LabeledSpan, 0, len(in))
	for _, l := range in {
		if l.Msg == "" {
			continue
		}
		l.Start = max(l.Start, 1)
		l.End = max(l.End, l.Start)
		out = append(out, l)
	}
	slices.SortStableFunc(out, func(a, b diag.LabeledSpan) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return out
}

// splitContext keeps the non-empty lines of text. Line k owns the columns
// base+1..base+len of the lines concatenated without separators.
func splitContext(text string, labels []diag.LabeledSpan) []contextLine {
	var out []contextLine
	base := 0
	for _, s := range strings.Split(text, "\n") {
		s = strings.TrimSuffix(s, "\r")
		if s == "" {
			continue
		}
		n := utf8.RuneCountInString(s)
		line := contextLine{text: s}
		for _, l := range labels {
			if l.Start > base && l.End <= base+n {
				l.Start -= base
				l.End -= base
				line.labels = append(line.labels, l)
			}
		}
		out = append(out, line)
		base += n
	}
	return out
}

// labelRows lays out labels under line: one connector row with an
// underline per label, then one row per label in which the last open label
// is terminated with its message and every earlier one keeps a vertical bar.
func (r *Renderer) labelRows(line string, labels []diag.LabeledSpan) []string {
	cells := []rune(line)
	blank := func(col int) string {
		if col < 1 || col > len(cells) {
			return " "
		}
		c := cells[col-1]
		if unicode.IsSpace(c) {
			return string(c)
		}
		return strings.Repeat(" ", max(runewidth.RuneWidth(c), 1))
	}

	rows := make([]string, 0, len(labels)+1)

	var conn strings.Builder
	col := 1
	for _, l := range labels {
		for ; col < l.Start; col++ {
			conn.WriteString(blank(col))
		}
		n := l.End - l.Start + 1
		for i := range n {
			if i == n/2 {
				conn.WriteRune(r.Theme.Underbar)
			} else {
				conn.WriteRune(r.Theme.Underline)
			}
			col++
		}
	}
	rows = append(rows, conn.String())

	for open := len(labels); open > 0; open-- {
		var row strings.Builder
		col := 1
		for i, l := range labels[:open] {
			for ; col < l.Start; col++ {
				row.WriteString(blank(col))
			}
			n := l.End - l.Start + 1
			if i < open-1 {
				for j := range n {
					if j == n/2 {
						row.WriteRune(r.Theme.VBar)
					} else {
						row.WriteString(blank(col))
					}
					col++
				}
				continue
			}
			for j := 0; j < n/2; j++ {
				row.WriteString(blank(col))
				col++
			}
			fmt.Fprintf(&row, "%c%c %s", r.Theme.LBot, r.Theme.HBar, l.Msg)
		}
		rows = append(rows, strings.TrimRight(row.String(), " "))
	}
	return rows
}

func (r *Renderer) severityStyle(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevFatal, diag.SevError:
		return r.style(color.FgRed, color.Bold)
	case diag.SevWarning:
		return r.style(color.FgYellow, color.Bold)
	default:
		return r.style(color.Bold)
	}
}

func (r *Renderer) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
