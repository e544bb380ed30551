package xanthos

import (
	"fmt"
	"math"
)

const sn0 = 0. // antecedent snow water equivalent [mm]

// step advances every cell of the batch by one month. tn is the phase's
// [month][cell] minimum-temperature window (nil when snow is disabled). The
// recurrence is strictly first-order: row i reads only row i-1 and the
// initial-condition vectors at i=0.
func (m *model) step(st *state, tn [][]float64, i int) error {
	nc := len(m.bsn)
	for k := 0; k < nc; k++ {
		a, b, c, d := m.par.A[k], m.par.B[k], m.par.C[k], m.par.D[k]

		// snow accumulation and melt
		snm := 0.
		if m.snow {
			xs := st.snow[i][k]
			if i == 0 {
				xs += sn0
			} else {
				xs += st.xs[i-1][k]
			}
			snm = xs * m.par.M[k] * meltFraction(tn[i][k])
			st.xs[i][k] = xs - snm
			st.snm[i][k] = snm
		}

		// available water
		var w float64
		if i == 0 {
			w = st.rain[i][k] + m.sm[k]
		} else {
			w = st.rain[i][k] + st.s[i-1][k] + snm
		}

		// ET opportunity, principal root of the water-balance quadratic
		rpt := (w + b) / (2. * a)
		disc := rpt*rpt - w*b/a
		if disc < 0. {
			return fmt.Errorf("month %d cell %d: negative ET-opportunity discriminant (%g): %w", i, k, disc, ErrNumerical)
		}
		y := rpt - math.Sqrt(disc)

		s := y * math.Exp(-m.ep[i][k]/b)
		awet := w - y

		var g float64
		if i == 0 {
			g = (m.gs[k] + c*awet) / (1. + d)
		} else {
			g = (st.g[i-1][k] + c*awet) / (1. + d)
		}

		// clamp actual ET to [0, pet] and reconcile soil moisture with it
		ea := y - s
		if ea < 0. {
			ea = 0.
		}
		if ep := m.ep[i][k]; ea > ep {
			ea = ep
		}
		s = y - ea

		st.w[i][k] = w
		st.y[i][k] = y
		st.s[i][k] = s
		st.g[i][k] = g
		st.ea[i][k] = ea
		st.re[i][k] = c * awet
		st.dr[i][k] = (1. - c) * awet
		st.base[i][k] = d * g
		st.rsim[i][k] = (1.-c)*awet + d*g
	}
	return nil
}
