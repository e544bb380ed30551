// Package forcing holds the gridded monthly climate inputs consumed by the
// water-balance engine.
package forcing

// Forcing carries the monthly climate series for every grid cell, shaped
// [cell][month] as delivered by upstream readers (the engine transposes
// internally). Tn is optional; leaving it nil disables the snow sub-model for
// the whole run.
type Forcing struct {
	P  [][]float64 // precipitation [mm/month]
	Ep [][]float64 // potential evapotranspiration [mm/month]
	Tn [][]float64 // minimum temperature [°C], nil when unavailable
}

// Dims returns (cells, months) taken from the precipitation array.
func (frc *Forcing) Dims() (nc, nt int) {
	nc = len(frc.P)
	if nc > 0 {
		nt = len(frc.P[0])
	}
	return
}

// Snow reports whether the snow sub-model is active for this input set.
func (frc *Forcing) Snow() bool { return frc.Tn != nil }

// Subset selects the given cell rows, order preserved. Rows are shared, not
// copied; the engine treats forcings as read-only.
func (frc *Forcing) Subset(idx []int) *Forcing {
	sub := &Forcing{
		P:  make([][]float64, len(idx)),
		Ep: make([][]float64, len(idx)),
	}
	if frc.Snow() {
		sub.Tn = make([][]float64, len(idx))
	}
	for j, i := range idx {
		sub.P[j] = frc.P[i]
		sub.Ep[j] = frc.Ep[i]
		if frc.Snow() {
			sub.Tn[j] = frc.Tn[i]
		}
	}
	return sub
}
