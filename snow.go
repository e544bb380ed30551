package xanthos

// rain/snow partitioning thresholds
const (
	train = 2.5 // [°C] above: all rain
	tsnow = 0.6 // [°C] below: all snow
)

// partitionRainSnow splits precipitation into rain and snow by minimum
// temperature, elementwise over [month][cell] windows. Three disjoint bands:
// all rain above train, all snow below tsnow, linear mix between. With tn nil
// (snow disabled) precipitation passes through as rain and snow is nil.
func partitionRainSnow(p, tn [][]float64) (rain, snow [][]float64) {
	if tn == nil {
		return p, nil
	}
	rain, snow = make([][]float64, len(p)), make([][]float64, len(p))
	for i, pr := range p {
		ri, si := make([]float64, len(pr)), make([]float64, len(pr))
		for k, pk := range pr {
			switch t := tn[i][k]; {
			case t > train:
				ri[k] = pk
			case t < tsnow:
				si[k] = pk
			default:
				si[k] = pk * (train - t) / (train - tsnow)
				ri[k] = pk - si[k]
			}
		}
		rain[i], snow[i] = ri, si
	}
	return
}

// meltFraction gives the fraction of the potential melt xs*m realized at
// minimum temperature t, per the same three temperature bands.
func meltFraction(t float64) float64 {
	switch {
	case t > train:
		return 1.
	case t < tsnow:
		return 0.
	default:
		return (train - t) / (train - tsnow)
	}
}
