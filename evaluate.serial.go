package xanthos

import (
	"errors"
	"fmt"

	"github.com/gosuri/uiprogress"
)

// EvaluateSerial is the single-worker twin of Evaluate: same batches, same
// results, one at a time.
func (ev *Evaluator) EvaluateSerial() (*Results, error) {
	batches := ev.dom.batches(ev.batch)

	var bar *uiprogress.Bar
	if ev.prog {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(batches)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return fmt.Sprintf("basin batch %d/%d", b.Current(), len(batches))
		})
		defer uiprogress.Stop()
	}

	nc, _ := ev.frc.Dims()
	full := newResults(nc, ev.cfg.Steps)
	var errs []error
	for _, bids := range batches {
		idx, res, err := ev.runBatch(bids)
		if bar != nil {
			bar.Incr()
		}
		if err != nil {
			ev.lg.Errorw("basin batch failed", "basins", bids, "error", err)
			errs = append(errs, err)
			continue
		}
		ev.lg.Debugw("basin batch complete", "basins", bids, "cells", len(idx))
		full.scatter(idx, res)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return full, nil
}
