package xanthos

import "github.com/maseology/objfunc"

// Skill summarizes goodness-of-fit of a simulated runoff series against an
// observed hydrograph.
type Skill struct{ KGE, NSE, Bias, RMSE float64 }

// Score computes the standard hydrograph skill scores; obs and sim must be
// equal-length monthly series.
func Score(obs, sim []float64) Skill {
	return Skill{
		KGE:  objfunc.KGE(obs, sim),
		NSE:  objfunc.NSE(obs, sim),
		Bias: objfunc.Bias(obs, sim),
		RMSE: objfunc.RMSE(obs, sim),
	}
}

// CellScore scores one cell's simulated runoff against an observed series.
func (r *Results) CellScore(cell int, obs []float64) Skill { return Score(obs, r.Rsim[cell]) }
