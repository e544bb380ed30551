package xanthos

import (
	"math"

	"github.com/Fasikaw/xanthos/forcing"
)

// testForcing builds a deterministic synthetic climate set, [cell][month]:
// seasonal precipitation and PET with a per-cell offset, and a minimum
// temperature cycling through all three snow bands.
func testForcing(nc, nt int, snow bool) *forcing.Forcing {
	frc := &forcing.Forcing{
		P:  make([][]float64, nc),
		Ep: make([][]float64, nc),
	}
	if snow {
		frc.Tn = make([][]float64, nc)
	}
	for k := 0; k < nc; k++ {
		p, ep, tn := make([]float64, nt), make([]float64, nt), make([]float64, nt)
		for i := 0; i < nt; i++ {
			ph := 2. * math.Pi * float64(i) / 12.
			p[i] = 40. + 25.*math.Sin(ph) + 3.*float64(k)
			ep[i] = 60. + 20.*math.Cos(ph) + 2.*float64(k)
			tn[i] = 6.*math.Sin(ph+float64(k)) - 1.
		}
		frc.P[k], frc.Ep[k] = p, ep
		if snow {
			frc.Tn[k] = tn
		}
	}
	return frc
}

// testParams builds valid per-cell coefficients, varied per cell.
func testParams(nc int) *Parameter {
	par := &Parameter{
		A: make([]float64, nc),
		B: make([]float64, nc),
		C: make([]float64, nc),
		D: make([]float64, nc),
		M: make([]float64, nc),
	}
	for k := 0; k < nc; k++ {
		par.A[k] = 0.90 + 0.01*float64(k%8)
		par.B[k] = 350. + 25.*float64(k%6) // already in mm
		par.C[k] = 0.30 + 0.02*float64(k%10)
		par.D[k] = 0.05 + 0.01*float64(k%5)
		par.M[k] = 0.30 + 0.05*float64(k%8)
	}
	return par
}
