package xanthos

import (
	"fmt"
	"sort"

	"github.com/maseology/mmaths"
)

// Domain fixes the basin membership for a run: one 1-based basin ID per grid
// cell. It determines both the parallel partitioning and the
// initial-condition grouping; every cell sharing a basin ID ends a spin-up
// with identical initial conditions.
type Domain struct {
	Nb  int   // number of basins (IDs run 1..Nb)
	Bsn []int // basin ID per cell, input ordering
}

// NewDomain validates the basin-ID map against the declared basin count.
func NewDomain(nb int, basinIDs []int) (*Domain, error) {
	if nb < 1 {
		return nil, fmt.Errorf("basin count %d: %w", nb, ErrConfig)
	}
	if len(basinIDs) == 0 {
		return nil, fmt.Errorf("empty basin-ID map: %w", ErrShape)
	}
	for i, b := range basinIDs {
		if b < 1 || b > nb {
			return nil, fmt.Errorf("cell %d: basin ID %d outside 1..%d: %w", i, b, nb, ErrConfig)
		}
	}
	return &Domain{Nb: nb, Bsn: basinIDs}, nil
}

// distinct returns the basin IDs actually present, ascending.
func (dom *Domain) distinct() []int {
	u := mmaths.UniqueInts(dom.Bsn)
	sort.Ints(u)
	return u
}

// cellsOf selects the cell indices belonging to the given basins, preserving
// the original cell ordering. The unit of selection is always whole basins;
// the spin-up rollover needs all of a basin's cells together.
func (dom *Domain) cellsOf(bids []int) []int {
	in := make(map[int]bool, len(bids))
	for _, b := range bids {
		in[b] = true
	}
	var idx []int
	for i, b := range dom.Bsn {
		if in[b] {
			idx = append(idx, i)
		}
	}
	return idx
}

// batches groups the populated basin IDs into work units of up to size whole
// basins each. Batch grouping never affects results; it only trades scheduling
// overhead against granularity.
func (dom *Domain) batches(size int) [][]int {
	if size < 1 {
		size = 1
	}
	ids := dom.distinct()
	var out [][]int
	for len(ids) > 0 {
		n := size
		if n > len(ids) {
			n = len(ids)
		}
		out = append(out, ids[:n])
		ids = ids[n:]
	}
	return out
}
