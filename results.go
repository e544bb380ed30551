package xanthos

// Results carries the four output grids, each [cell][month], cell ordering
// matching the input basin-ID array. PET is a pass-through of the input
// demand; the rest are simulated.
type Results struct {
	PET  [][]float64 // potential evapotranspiration [mm/month]
	AET  [][]float64 // actual evapotranspiration [mm/month]
	Rsim [][]float64 // total simulated runoff [mm/month]
	Sto  [][]float64 // soil moisture storage [mm]
}

func newResults(nc, nt int) *Results {
	alloc := func() [][]float64 {
		a := make([][]float64, nc)
		for i := range a {
			a[i] = make([]float64, nt)
		}
		return a
	}
	return &Results{PET: alloc(), AET: alloc(), Rsim: alloc(), Sto: alloc()}
}

// results transposes a finished simulation state back to [cell][month] output
// rows for this batch's local cell ordering.
func (m *model) results(st *state) *Results {
	nc := len(m.bsn)
	r := &Results{
		PET:  make([][]float64, nc),
		AET:  make([][]float64, nc),
		Rsim: make([][]float64, nc),
		Sto:  make([][]float64, nc),
	}
	for k := 0; k < nc; k++ {
		pet, aet, q, sto := make([]float64, m.steps), make([]float64, m.steps), make([]float64, m.steps), make([]float64, m.steps)
		for i := 0; i < m.steps; i++ {
			pet[i] = m.ep[i][k]
			aet[i] = st.ea[i][k]
			q[i] = st.rsim[i][k]
			sto[i] = st.s[i][k]
		}
		r.PET[k], r.AET[k], r.Rsim[k], r.Sto[k] = pet, aet, q, sto
	}
	return r
}

// scatter writes one batch's rows back into the full grids at their original
// cell indices. The join point after all parallel work; pure placement, no
// arithmetic.
func (r *Results) scatter(idx []int, batch *Results) {
	for j, i := range idx {
		r.PET[i] = batch.PET[j]
		r.AET[i] = batch.AET[j]
		r.Rsim[i] = batch.Rsim[j]
		r.Sto[i] = batch.Sto[j]
	}
}
