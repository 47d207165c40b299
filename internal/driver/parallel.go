package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"tern/internal/eval"
)

// RunAll evaluates several encoded programs concurrently, one evaluator
// per program, bounded by jobs workers (0 means GOMAXPROCS). Results come
// back in input order; the first load failure cancels the remaining work.
func RunAll(ctx context.Context, paths []string, opts eval.Options, jobs int) ([]*Result, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(paths), 1)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Run(path, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
