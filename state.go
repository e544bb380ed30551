package xanthos

// state holds the evolving per-phase arrays, all [month][cell]. Row i depends
// only on row i-1 (or the model's initial-condition vectors at i=0); cells are
// mutually independent within a row. A fresh state is allocated for spin-up,
// discarded, and reallocated for simulation.
type state struct {
	rain, snow [][]float64 // partitioned precipitation [mm]
	xs         [][]float64 // accumulated snow water equivalent [mm]
	snm        [][]float64 // snowmelt [mm]
	w          [][]float64 // available water [mm]
	y          [][]float64 // ET opportunity [mm]
	s          [][]float64 // soil moisture storage [mm]
	g          [][]float64 // groundwater storage [mm]
	ea         [][]float64 // actual evapotranspiration [mm]
	re         [][]float64 // direct runoff [mm]
	dr         [][]float64 // non-direct surplus, retained but unused downstream [mm]
	base       [][]float64 // base flow [mm]
	rsim       [][]float64 // total simulated runoff [mm]
}

// newState allocates and seeds the working arrays for an nt-month window over
// the climate slice p/tn: month-0 actual ET at 60% of precipitation,
// accumulated snow at 10%, simulated runoff at the current initial-runoff
// vector; everything else zero. Rain/snow are partitioned for the whole
// window up front.
func (m *model) newState(nt int, p, tn [][]float64) *state {
	nc := len(m.bsn)
	alloc := func() [][]float64 {
		a := make([][]float64, nt)
		for i := range a {
			a[i] = make([]float64, nc)
		}
		return a
	}
	st := &state{
		xs:   alloc(),
		snm:  alloc(),
		w:    alloc(),
		y:    alloc(),
		s:    alloc(),
		g:    alloc(),
		ea:   alloc(),
		re:   alloc(),
		dr:   alloc(),
		base: alloc(),
		rsim: alloc(),
	}
	st.rain, st.snow = partitionRainSnow(p, tn)
	for k := 0; k < nc; k++ {
		st.ea[0][k] = p[0][k] * .6
		st.xs[0][k] = p[0][k] / 10.
		st.rsim[0][k] = m.ro[k]
	}
	return st
}
