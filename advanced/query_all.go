package advanced

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Result of one query in a batch
type Sample struct {
	X, Y  float64
	Z     float64
	Found bool
}

// Query many points at once, spreading the work across up to workers
// goroutines (GOMAXPROCS when workers <= 0). Results are in the same order as
// coords. Only context cancellation produces an error; points outside the
// mesh just come back with Found unset.
func (m *Mesh) QueryAll(ctx context.Context, coords [][2]float64, workers int) ([]Sample, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	// Give each goroutine a contiguous chunk so that tiny batches don't pay for
	// a goroutine per point.
	chunk := (len(coords) + workers - 1) / workers
	if chunk == 0 {
		return []Sample{}, nil
	}

	samples := make([]Sample, len(coords))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(coords); start += chunk {
		start := start
		end := start + chunk
		if end > len(coords) {
			end = len(coords)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				x, y := coords[i][0], coords[i][1]
				z, ok := m.Query(x, y)
				samples[i] = Sample{X: x, Y: y, Z: z, Found: ok}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return samples, nil
}
