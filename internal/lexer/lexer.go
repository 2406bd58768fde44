package lexer

import (
	"alef/internal/diag"
	"alef/internal/source"
	"alef/internal/token"
	"alef/internal/trace"
)

// Lexer turns a Buffer into tokens. It is not safe for concurrent use.
type Lexer struct {
	buf    *source.Buffer
	opts   Options
	pub    diag.Publisher
	tracer trace.Tracer

	queue []token.Token // буфер lookahead для Peek
	head  int
	end   *token.Token // закэшированный End

	prev        source.Location // позиция последнего съеденного символа
	broken      bool            // чтение сломалось окончательно
	encodingMsg bool
	traceTokens bool
	produced    int
}

// New returns a Lexer reading buf from its current position.
func New(buf *source.Buffer, opts Options) *Lexer {
	lx := &Lexer{
		buf:    buf,
		opts:   opts,
		pub:    opts.publisher(),
		tracer: opts.tracer(),
	}
	lx.traceTokens = trace.Enabled(lx.tracer, trace.ScopeToken)
	return lx
}

// Buffer returns the buffer being scanned.
func (lx *Lexer) Buffer() *source.Buffer { return lx.buf }

// Produced returns how many tokens were scanned so far, End included once.
func (lx *Lexer) Produced() int { return lx.produced }

// Next возвращает следующий токен, сначала из буфера lookahead.
// После End всегда возвращает тот же End.
func (lx *Lexer) Next() token.Token {
	if lx.head < len(lx.queue) {
		tok := lx.queue[lx.head]
		lx.head++
		if lx.head == len(lx.queue) {
			lx.queue = lx.queue[:0]
			lx.head = 0
		}
		return tok
	}
	return lx.make()
}

// Peek returns the k-th token that Next has not returned yet (0 is the one
// the next call to Next returns), scanning ahead as needed.
func (lx *Lexer) Peek(k int) token.Token {
	k = max(k, 0)
	for len(lx.queue)-lx.head <= k {
		if n := len(lx.queue); n > lx.head && lx.queue[n-1].IsEnd() {
			return lx.queue[n-1]
		}
		lx.queue = append(lx.queue, lx.make())
	}
	return lx.queue[lx.head+k]
}

// All drains the lexer and returns every remaining token, End included.
func (lx *Lexer) All() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.IsEnd() {
			return out
		}
	}
}

// make scans one token, skipping whitespace, comments and preprocessor
// lines in between.
func (lx *Lexer) make() token.Token {
	if lx.end != nil {
		return *lx.end
	}
	lx.checkEncoding()

	for {
		c := lx.pch(0)
		switch {
		case lx.eofAt(c):
			here := lx.loc()
			end := token.Token{Kind: token.End, Range: lx.buf.Range(here, here), Valid: true}
			lx.end = &end
			lx.emitted(end)
			return end
		case isSpace(c):
			lx.ch()
			continue
		case c == '#':
			lx.skipPreproc()
			continue
		case c == '/' && (lx.pch(1) == '/' || lx.pch(1) == '*'):
			lx.skipComment()
			continue
		case c == '.' && lx.pch(1) == '.' && lx.pch(2) != '.':
			lx.strayEllipsis()
			continue
		}

		tok := lx.scan(c)
		lx.emitted(tok)
		return tok
	}
}

// scan classifies on the first character of a token.
func (lx *Lexer) scan(c rune) token.Token {
	switch {
	case c == '.':
		if isDec(lx.pch(1)) {
			return lx.scanNumber()
		}
		return lx.scanDot()
	case isDec(c):
		return lx.scanNumber()
	case c == '\'':
		return lx.scanChar()
	case c == '"':
		return lx.scanString(token.String)
	case c == '$' && lx.pch(1) == '"':
		return lx.scanString(token.Runestring)
	case isIdentStart(c):
		return lx.scanIdentOrKeyword()
	}
	if tok, ok := lx.scanOperator(); ok {
		return tok
	}
	if tok, ok := lx.scanDelimiter(c); ok {
		return tok
	}
	return lx.scanStray()
}

func (lx *Lexer) emitted(tok token.Token) {
	lx.produced++
	if lx.traceTokens {
		trace.Point(lx.tracer, trace.ScopeToken, "token", tok.Loc().String()+" "+tok.String(), lx.opts.TraceParent)
	}
}

func (lx *Lexer) publish(d diag.Diagnostic) {
	if lx.traceTokens {
		trace.Point(lx.tracer, trace.ScopeToken, "diagnostic", diag.FormatShort(d), lx.opts.TraceParent)
	}
	lx.pub.Publish(d)
}

// checkEncoding reports once that invalid UTF-8 was replaced.
func (lx *Lexer) checkEncoding() {
	if lx.encodingMsg {
		return
	}
	lx.encodingMsg = true
	if n := lx.buf.Replacements(); n > 0 {
		lx.publish(encodingDiagnostic(lx.buf.Name(), n))
	}
}
