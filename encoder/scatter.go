// SPDX-License-Identifier: MIT

package encoder

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ScatterRows calls fn once for every block in [0, blocks), running at most
// workers calls at a time. Each call must write a disjoint set of rows of the
// shared output, so no locking is needed. The first error cancels ctx for the
// remaining blocks and is returned.
//
// With workers <= 1 the blocks run in order on the calling goroutine.
func ScatterRows(ctx context.Context, blocks, workers int, fn func(ctx context.Context, block int) error) error {
	if workers <= 1 || blocks <= 1 {
		for b := 0; b < blocks; b++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, b); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for b := 0; b < blocks; b++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, b)
		})
	}

	return g.Wait()
}
