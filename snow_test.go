package xanthos

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartitionRainSnowCompleteness(t *testing.T) {
	p := [][]float64{{50, 80, 0, 33.3, 120}}
	tn := [][]float64{{10, 2.5, -4, 1.2, 0.6}}

	rain, snow := partitionRainSnow(p, tn)
	for k := range p[0] {
		require.InDelta(t, p[0][k], rain[0][k]+snow[0][k], 1e-12, "cell %d", k)
		require.GreaterOrEqual(t, rain[0][k], 0.)
		require.GreaterOrEqual(t, snow[0][k], 0.)
	}
}

func TestPartitionRainSnowBands(t *testing.T) {
	p := [][]float64{{100, 100, 100}}
	tn := [][]float64{{5., -1., 1.55}} // all rain, all snow, mixed midpoint

	rain, snow := partitionRainSnow(p, tn)
	require.Equal(t, 100., rain[0][0])
	require.Equal(t, 0., snow[0][0])
	require.Equal(t, 0., rain[0][1])
	require.Equal(t, 100., snow[0][1])

	// mixed band: snow = p*(train-tn)/(train-tsnow)
	require.InDelta(t, 100.*(train-1.55)/(train-tsnow), snow[0][2], 1e-12)
	require.InDelta(t, 100.-snow[0][2], rain[0][2], 1e-12)
}

func TestPartitionRainSnowDisabled(t *testing.T) {
	p := [][]float64{{50, 0, 12}, {7, 7, 7}}
	rain, snow := partitionRainSnow(p, nil)
	require.Nil(t, snow)
	require.Equal(t, p, rain)
}

func TestMeltFraction(t *testing.T) {
	require.Equal(t, 1., meltFraction(3.))
	require.Equal(t, 0., meltFraction(0.))
	require.InDelta(t, 0.5, meltFraction((train+tsnow)/2.), 1e-12)
}
