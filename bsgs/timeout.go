package bsgs

import (
	"context"

	"github.com/katalvlaran/symarch/perm"
	"golang.org/x/sync/errgroup"
)

// buildWithTimeout runs buildDispatch on a worker goroutine bounded by
// o.Timeout, cancelling the worker's context the moment the deadline
// expires. buildDispatch (and everything it calls) polls ctx.Err() at each
// Schreier-generator queue step and product-replacement draw, so a blown
// deadline unwinds promptly rather than merely being ignored.
func buildWithTimeout(parent context.Context, degree int, generators perm.Set, o Options) (*BSGS, error) {
	ctx, cancel := context.WithTimeout(parent, o.Timeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	var result *BSGS
	g.Go(func() error {
		r, err := buildDispatch(gctx, degree, generators, o)
		if err != nil {
			return err
		}
		result = r
		return nil
	})

	if err := g.Wait(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrTimeout
		}
		return nil, err
	}
	return result, nil
}
