package diagfmt

import (
	"fmt"
	"strings"

	"alef/internal/diag"
)

// Theme is the set of glyphs used to draw a diagnostic.
type Theme struct {
	HBar      rune
	VBar      rune
	XBar      rune
	VBarBreak rune

	UArrow rune
	RArrow rune

	LTop rune
	MTop rune
	RTop rune
	LBot rune
	MBot rune
	RBot rune

	LBox rune
	RBox rune

	LCross rune
	RCross rune

	Underbar  rune
	Underline rune

	Fatal   string
	Error   string
	Warning string
	Info    string
}

// UnicodeTheme draws with box-drawing characters.
func UnicodeTheme() Theme {
	return Theme{
		HBar:      '─',
		VBar:      '│',
		XBar:      '┼',
		VBarBreak: '·',
		UArrow:    '▲',
		RArrow:    '▶',
		LTop:      '╭',
		MTop:      '┬',
		RTop:      '╮',
		LBot:      '╰',
		MBot:      '┴',
		RBot:      '╯',
		LBox:      '[',
		RBox:      ']',
		LCross:    '├',
		RCross:    '┤',
		Underbar:  '┬',
		Underline: '─',
		Fatal:     "☠",
		Error:     "×",
		Warning:   "⚠",
		Info:      "⚐",
	}
}

// ASCIITheme is for terminals without Unicode fonts.
func ASCIITheme() Theme {
	return Theme{
		HBar:      '-',
		VBar:      '|',
		XBar:      '+',
		VBarBreak: ':',
		UArrow:    '^',
		RArrow:    '>',
		LTop:      ',',
		MTop:      'v',
		RTop:      '.',
		LBot:      '`',
		MBot:      '^',
		RBot:      '\'',
		LBox:      '[',
		RBox:      ']',
		LCross:    '|',
		RCross:    '|',
		Underbar:  '|',
		Underline: '^',
		Fatal:     "!!",
		Error:     "x",
		Warning:   "!",
		Info:      "i",
	}
}

// ThemeByName resolves the --theme flag value.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "unicode":
		return UnicodeTheme(), nil
	case "ascii":
		return ASCIITheme(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (want unicode|ascii)", name)
}

// Glyph returns the reason marker for sev.
func (t Theme) Glyph(sev diag.Severity) string {
	switch sev {
	case diag.SevFatal:
		return t.Fatal
	case diag.SevWarning:
		return t.Warning
	case diag.SevInfo:
		return t.Info
	default:
		return t.Error
	}
}
