package spectral

import (
	"fmt"
	"sync"

	algofft "github.com/cwbudde/algo-fft"
	"golang.org/x/sync/errgroup"
)

// workerState holds per-goroutine FFT state so concurrent frames never share
// a plan or scratch buffer.
type workerState struct {
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
	pow  []float64
}

func (a *Analyzer) newWorkerState() (*workerState, error) {
	plan, err := algofft.NewPlan64(a.size)
	if err != nil {
		return nil, fmt.Errorf("spectral: create worker fft plan: %w", err)
	}

	return &workerState{
		plan: plan,
		in:   make([]complex128, a.size),
		out:  make([]complex128, a.size),
		pow:  make([]float64, a.size/2),
	}, nil
}

// analyzeParallel fans frames out over a bounded worker group. Each result
// is written at its frame index, preserving input order regardless of
// completion order.
func (a *Analyzer) analyzeParallel(frames [][]float64) (*Series, error) {
	workers := a.parallelism
	if workers > len(frames) {
		workers = len(frames)
	}

	series := newSeries(len(frames))

	statePool := sync.Pool{
		New: func() any {
			state, err := a.newWorkerState()
			if err != nil {
				return err
			}
			return state
		},
	}

	var g errgroup.Group
	g.SetLimit(workers)

	for i, f := range frames {
		g.Go(func() error {
			v := statePool.Get()
			state, ok := v.(*workerState)
			if !ok {
				return v.(error)
			}
			defer statePool.Put(state)

			feat, err := a.analyzeFrame(f, state.plan, state.in, state.out, state.pow)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}

			series.set(i, feat)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return series, nil
}
