package xanthos

import "github.com/Fasikaw/xanthos/forcing"

// default initial conditions prior to spin-up
const (
	ro0 = 20.  // initial runoff [mm]
	sm0 = 100. // initial soil moisture storage [mm]
	gs0 = 500. // initial groundwater storage [mm]
)

// model is one independent per-basin-batch instance of the ABCD recurrence.
// It owns its parameter and climate slices and its initial-condition vectors;
// nothing is shared with sibling instances and nothing is retained between
// batches.
type model struct {
	par        *Parameter
	bsn        []int       // 1-based basin ID per local cell
	p, ep, tn  [][]float64 // [month][cell]; tn nil when snow disabled
	steps      int         // simulation months
	spinup     int         // spin-up months
	snow       bool
	ro, sm, gs []float64 // initial runoff, soil moisture, groundwater per cell
}

// newModel stages one basin batch: transposes the climate windows to
// [month][cell] and seeds the default initial conditions.
func newModel(par *Parameter, frc *forcing.Forcing, bsn []int, steps, spinup int) *model {
	nc := len(bsn)
	m := &model{
		par:    par,
		bsn:    bsn,
		p:      transpose(frc.P, steps),
		ep:     transpose(frc.Ep, steps),
		steps:  steps,
		spinup: spinup,
		snow:   frc.Snow(),
		ro:     fill(nc, ro0),
		sm:     fill(nc, sm0),
		gs:     fill(nc, gs0),
	}
	if m.snow {
		m.tn = transpose(frc.Tn, steps)
	}
	return m
}

// emulate runs the two-phase protocol: spin-up to equilibrium, then the full
// simulation from the rolled-over initial conditions.
func (m *model) emulate() (*state, error) {
	if err := m.runSpinup(); err != nil {
		return nil, err
	}
	return m.runSimulation()
}

// transpose flips a [cell][month] array to [month][cell], truncated to nt
// months.
func transpose(rows [][]float64, nt int) [][]float64 {
	nc := len(rows)
	t := make([][]float64, nt)
	for i := 0; i < nt; i++ {
		ti := make([]float64, nc)
		for k := 0; k < nc; k++ {
			ti[k] = rows[k][i]
		}
		t[i] = ti
	}
	return t
}

func fill(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}
