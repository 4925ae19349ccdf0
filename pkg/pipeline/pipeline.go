/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package pipeline provides the bounded worker pool that §5 permits, but does not require, for
// fanning out per-source PSF deposits across disjoint footprint tiles.
package pipeline

/*****************************************************************************************************************/

import (
	"context"

	"golang.org/x/sync/errgroup"
)

/*****************************************************************************************************************/

// Run calls worker(ctx, i) once for every i in [0, n), running at most concurrency calls at a
// time. It returns the first error any worker returns; the context passed to the remaining
// workers is cancelled at that point. concurrency <= 0 is treated as 1 (fully sequential).
func Run(ctx context.Context, concurrency, n int, worker func(ctx context.Context, i int) error) error {
	if concurrency <= 0 {
		concurrency = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := 0; i < n; i++ {
		i := i

		g.Go(func() error {
			return worker(ctx, i)
		})
	}

	return g.Wait()
}

/*****************************************************************************************************************/
