package lexer

import (
	"fmt"

	"alef/internal/diag"
	"alef/internal/source"
)

// fault builds a lexical diagnostic labelled at width columns from at,
// with the line holding at as context.
func (lx *Lexer) fault(sev diag.Severity, code diag.Code, at source.Location, width int, label string) diag.Diagnostic {
	col := int(at.Col)
	return diag.New(sev, code, "").
		At(at).
		WithContext(lx.buf.LineOf(at)).
		WithLabel(col, col+max(width, 1)-1, label)
}

func (lx *Lexer) strayDiagnostic(at source.Location, c rune) diag.Diagnostic {
	return lx.fault(diag.SevError, diag.LexStrayChar, at, 1, "not valid here").
		WithReason(fmt.Sprintf("the symbol %q is not valid.", c)).
		WithHelp(fmt.Sprintf("remove the symbol %q.", c))
}

func (lx *Lexer) ellipsisDiagnostic(at source.Location) diag.Diagnostic {
	return lx.fault(diag.SevError, diag.LexStrayChar, at, 2, "symbol '..'").
		WithReason(`unterminated "..."`).
		WithHelp(`write "..." or remove the dots.`)
}

func (lx *Lexer) literalDiagnostic(at source.Location, width int, label, reason, help string) diag.Diagnostic {
	return lx.fault(diag.SevError, diag.LexBadLiteral, at, width, label).
		WithReason(reason).
		WithHelp(help)
}

func (lx *Lexer) commentDiagnostic(at source.Location) diag.Diagnostic {
	return lx.fault(diag.SevError, diag.LexUnterminatedBlock, at, 2, "comment starts here").
		WithReason("the comment is never closed before the end of the file.").
		WithHelp(`add "*/" to close the comment.`)
}

func (lx *Lexer) preprocDiagnostic(at source.Location, width int) diag.Diagnostic {
	return lx.fault(diag.SevWarning, diag.LexPreprocessor, at, width, "directive").
		WithReason(`only line markers of the form # <line> "<file>" [flags] may remain after preprocessing; this line is ignored.`).
		WithHelp("run the source through the preprocessor before lexing it.")
}

func readFaultDiagnostic(err *source.ReadError) diag.Diagnostic {
	return diag.NewError(diag.LexSourceRead, "").
		At(err.Loc).
		WithReason(err.Error())
}

func encodingDiagnostic(name string, replaced int) diag.Diagnostic {
	return diag.NewWarning(diag.LexInvalidEncoding, "").
		WithReason(fmt.Sprintf("%s: %d invalid UTF-8 sequence(s) were replaced with U+FFFD.", name, replaced)).
		WithHelp("save the file as UTF-8.")
}
