package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"alef/internal/trace"
)

// LexFiles lexes paths in parallel, at most opts.Jobs at a time. Results
// keep the order of paths. A file that fails to load yields a Result with
// Err set; only cancellation of ctx is returned as an error.
func LexFiles(ctx context.Context, paths []string, opts Options) ([]*Result, error) {
	results := make([]*Result, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "lex-files", trace.CurrentSpan(ctx))
	defer span.End("")
	ctx = trace.WithSpan(ctx, span)

	for _, path := range paths {
		emit(opts.Progress, path, StageLoad, StatusQueued, nil, 0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// индекс i уникален для горутины, мьютекс не нужен
			results[i] = lexPath(gctx, path, opts)
			if err := results[i].Err; err != nil && gctx.Err() != nil {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// HasErrors reports whether any result failed to load or raised an error
// diagnostic.
func HasErrors(results []*Result) bool {
	for _, r := range results {
		if r != nil && (r.Err != nil || r.Errors > 0) {
			return true
		}
	}
	return false
}
