package driver

import (
	"context"
	"strconv"
	"time"

	"alef/internal/diag"
	"alef/internal/lexer"
	"alef/internal/observ"
	"alef/internal/source"
	"alef/internal/token"
	"alef/internal/trace"
)

// Options configures a lex session.
type Options struct {
	// Diagnostics receives every published diagnostic. nil selects
	// diag.Default().
	Diagnostics diag.Publisher
	// Comments turns on comment collection.
	Comments bool
	// Jobs bounds LexFiles parallelism; 0 means GOMAXPROCS.
	Jobs int
	// Progress receives per-file events. Optional.
	Progress ProgressSink
	// Timer records load and lex phases. Optional.
	Timer *observ.Timer
}

func (o Options) publisher() diag.Publisher {
	if o.Diagnostics != nil {
		return o.Diagnostics
	}
	return diag.Default()
}

// Result is one lexed file.
type Result struct {
	Path     string
	Buffer   *source.Buffer
	Tokens   []token.Token
	Comments []token.Comment
	// Errors counts error and fatal diagnostics raised for this file.
	Errors int
	// Err is set when the file could not be loaded.
	Err error
}

// Lex loads path and scans it to End.
func Lex(ctx context.Context, path string, opts Options) (*Result, error) {
	res := lexPath(ctx, path, opts)
	if res.Err != nil {
		return nil, res.Err
	}
	return res, nil
}

// LexSource scans in-memory text under name.
func LexSource(ctx context.Context, name, text string, opts Options) *Result {
	return lexBuffer(ctx, name, source.NewBuffer(name, text), opts)
}

func lexPath(ctx context.Context, path string, opts Options) *Result {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "load", trace.CurrentSpan(ctx)).With("file", path)

	emit(opts.Progress, path, StageLoad, StatusWorking, nil, 0)
	phase := opts.Timer.Begin("load " + path)
	start := time.Now()
	buf, err := source.LoadFile(path)
	opts.Timer.End(phase, "")
	span.End("")
	if err != nil {
		emit(opts.Progress, path, StageLoad, StatusError, err, time.Since(start))
		opts.publisher().Publish(diag.NewError(diag.LexSourceRead, "failed to load file").
			WithReason(err.Error()))
		return &Result{Path: path, Errors: 1, Err: err}
	}
	return lexBuffer(ctx, path, buf, opts)
}

func lexBuffer(ctx context.Context, path string, buf *source.Buffer, opts Options) *Result {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "lex", trace.CurrentSpan(ctx)).With("file", path)

	emit(opts.Progress, path, StageLex, StatusWorking, nil, 0)
	phase := opts.Timer.Begin("lex " + path)
	start := time.Now()

	// сессия владеет счётчиком, блокировка не нужна
	next, errors := opts.publisher(), 0
	counter := diag.PublisherFunc(func(d diag.Diagnostic) {
		if d.Severity >= diag.SevError {
			errors++
		}
		next.Publish(d)
	})
	lopts := lexer.Options{
		Diagnostics: counter,
		Tracer:      tracer,
		TraceParent: span.ID(),
	}
	var comments *lexer.CommentList
	if opts.Comments {
		comments = lexer.NewCommentList()
		lopts.Comments = comments
	}

	lx := lexer.New(buf, lopts)
	res := &Result{Path: path, Buffer: buf}
	for {
		if ctx.Err() != nil {
			res.Err = ctx.Err()
			break
		}
		tok := lx.Next()
		res.Tokens = append(res.Tokens, tok)
		if tok.IsEnd() {
			break
		}
	}
	if comments != nil {
		res.Comments = comments.List()
	}
	res.Errors = errors

	note := strconv.Itoa(len(res.Tokens)) + " tokens"
	opts.Timer.End(phase, note)
	span.With("tokens", strconv.Itoa(len(res.Tokens))).End("")

	status := StatusDone
	if res.Errors > 0 || res.Err != nil {
		status = StatusError
	}
	emit(opts.Progress, path, StageLex, status, res.Err, time.Since(start))
	return res
}
