package xanthos

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Parameter holds the five calibrated ABCD(M) coefficients, one entry per grid
// cell. B is stored in mm (the calibration tables carry it scaled down by 1000).
type Parameter struct{ A, B, C, D, M []float64 }

const bScale = 1000. // calibration-table b to internal mm

// ParamsFromRows ingests a per-cell calibration table, one row per grid cell,
// columns [a, b, c, d, m]. b is rescaled to mm on the way in.
func ParamsFromRows(rows [][]float64) (*Parameter, error) {
	nc := len(rows)
	par := &Parameter{
		A: make([]float64, nc),
		B: make([]float64, nc),
		C: make([]float64, nc),
		D: make([]float64, nc),
		M: make([]float64, nc),
	}
	for i, r := range rows {
		if len(r) != 5 {
			return nil, fmt.Errorf("parameter row %d has %d columns, need 5 [a b c d m]: %w", i, len(r), ErrShape)
		}
		par.A[i] = r[0]
		par.B[i] = r[1] * bScale
		par.C[i] = r[2]
		par.D[i] = r[3]
		par.M[i] = r[4]
	}
	return par, nil
}

// ParamsFromBasinTable expands a per-basin calibration table (one row per
// basin, columns [a b c d m]) to per-cell columns through the 1-based
// basin-ID map.
func ParamsFromBasinTable(table [][]float64, basinIDs []int) (*Parameter, error) {
	rows := make([][]float64, len(basinIDs))
	for i, bid := range basinIDs {
		if bid < 1 || bid > len(table) {
			return nil, fmt.Errorf("cell %d: basin ID %d outside calibration table (%d rows): %w", i, bid, len(table), ErrShape)
		}
		rows[i] = table[bid-1]
	}
	return ParamsFromRows(rows)
}

// check validates the calibrated ranges: a in (0,1], b>0 mm, c,d,m in [0,1].
func (par *Parameter) check() error {
	nc := len(par.A)
	if len(par.B) != nc || len(par.C) != nc || len(par.D) != nc || len(par.M) != nc {
		return fmt.Errorf("parameter columns have unequal lengths: %w", ErrShape)
	}
	for i := 0; i < nc; i++ {
		if !(par.A[i] > 0. && par.A[i] <= 1.) {
			return fmt.Errorf("cell %d: a = %g outside (0,1]: %w", i, par.A[i], ErrConfig)
		}
		if par.B[i] <= 0. {
			return fmt.Errorf("cell %d: b = %g mm, must be positive: %w", i, par.B[i], ErrConfig)
		}
		if par.C[i] < 0. || par.C[i] > 1. {
			return fmt.Errorf("cell %d: c = %g outside [0,1]: %w", i, par.C[i], ErrConfig)
		}
		if par.D[i] < 0. || par.D[i] > 1. {
			return fmt.Errorf("cell %d: d = %g outside [0,1]: %w", i, par.D[i], ErrConfig)
		}
		if par.M[i] < 0. || par.M[i] > 1. {
			return fmt.Errorf("cell %d: m = %g outside [0,1]: %w", i, par.M[i], ErrConfig)
		}
	}
	return nil
}

// subset selects the given cell indices, order preserved.
func (par *Parameter) subset(idx []int) *Parameter {
	n := len(idx)
	sub := &Parameter{
		A: make([]float64, n),
		B: make([]float64, n),
		C: make([]float64, n),
		D: make([]float64, n),
		M: make([]float64, n),
	}
	for j, i := range idx {
		sub.A[j] = par.A[i]
		sub.B[j] = par.B[i]
		sub.C[j] = par.C[i]
		sub.D[j] = par.D[i]
		sub.M[j] = par.M[i]
	}
	return sub
}

func (par *Parameter) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" Parameter.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(par); err != nil {
		return fmt.Errorf(" Parameter.SaveGob %v", err)
	}
	f.Close()
	return nil
}

func LoadGobParameter(fp string) (*Parameter, error) {
	var par Parameter
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	enc := gob.NewDecoder(f)
	err = enc.Decode(&par)
	if err != nil {
		return nil, err
	}
	f.Close()
	return &par, nil
}
