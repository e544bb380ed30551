package xanthos

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/gosuri/uiprogress"
)

// resolveWorkers maps the jobs setting to a worker count: -1 all cores, -2
// all but one, n>1 exactly n, anything else serial.
func resolveWorkers(jobs int) int {
	switch {
	case jobs == -1:
		return runtime.NumCPU()
	case jobs == -2:
		if n := runtime.NumCPU() - 1; n > 1 {
			return n
		}
		return 1
	case jobs > 1:
		return jobs
	default:
		return 1
	}
}

// Evaluate runs spin-up and simulation for every basin, batches dispatched
// across resolveWorkers(cfg.Jobs) workers, and reassembles the outputs into
// the original cell ordering. A failed batch never corrupts sibling results;
// all failures are collected and reported together, attributed to their
// basins, and no partial output is returned.
func (ev *Evaluator) Evaluate() (*Results, error) {
	nw := resolveWorkers(ev.cfg.Jobs)
	if nw == 1 {
		return ev.EvaluateSerial()
	}

	batches := ev.dom.batches(ev.batch)
	var bar *uiprogress.Bar
	if ev.prog {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(batches)).AppendCompleted().PrependElapsed()
		defer uiprogress.Stop()
	}

	type done struct {
		idx  []int
		res  *Results
		err  error
		bids []int
	}
	jobs := make(chan []int)
	out := make(chan done)

	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for bids := range jobs {
				idx, res, err := ev.runBatch(bids)
				out <- done{idx, res, err, bids}
			}
		}()
	}
	go func() {
		for _, b := range batches {
			jobs <- b
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(out)
	}()

	nc, _ := ev.frc.Dims()
	full := newResults(nc, ev.cfg.Steps)
	var errs []error
	for d := range out {
		if bar != nil {
			bar.Incr()
		}
		if d.err != nil {
			ev.lg.Errorw("basin batch failed", "basins", d.bids, "error", d.err)
			errs = append(errs, d.err)
			continue
		}
		ev.lg.Debugw("basin batch complete", "basins", d.bids, "cells", len(d.idx))
		full.scatter(d.idx, d.res)
	}
	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
		return nil, errors.Join(errs...)
	}
	return full, nil
}

// runBatch evaluates one set of whole basins: order-preserving cell
// selection, an independent model instance, spin-up then simulation.
func (ev *Evaluator) runBatch(bids []int) ([]int, *Results, error) {
	idx := ev.dom.cellsOf(bids)
	bsn := make([]int, len(idx))
	for j, i := range idx {
		bsn[j] = ev.dom.Bsn[i]
	}
	m := newModel(ev.par.subset(idx), ev.frc.Subset(idx), bsn, ev.cfg.Steps, ev.cfg.SpinupSteps)
	st, err := m.emulate()
	if err != nil {
		return nil, nil, fmt.Errorf("basins %v: %w", bids, err)
	}
	return idx, m.results(st), nil
}
