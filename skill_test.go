package xanthos

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScorePerfectMatch(t *testing.T) {
	obs := []float64{12., 30., 8., 45., 22., 17.}
	sim := append([]float64{}, obs...)

	sk := Score(obs, sim)
	require.InDelta(t, 1., sk.KGE, 1e-9)
	require.InDelta(t, 1., sk.NSE, 1e-9)
	require.InDelta(t, 0., sk.RMSE, 1e-9)
}

func TestScoreDegradesWithError(t *testing.T) {
	obs := []float64{12., 30., 8., 45., 22., 17.}
	sim := []float64{20., 18., 15., 30., 30., 25.}

	sk := Score(obs, sim)
	require.Less(t, sk.NSE, 1.)
	require.Greater(t, sk.RMSE, 0.)
}
