package xanthos

import (
	"github.com/maseology/mmio"
	"gonum.org/v1/gonum/stat"
)

// WriteMeansCSV writes one row per cell of time-averaged outputs
// (cell,pet,aet,rsim,sto) for quick inspection of a finished run.
func (r *Results) WriteMeansCSV(fp string) {
	nc := len(r.PET)
	cid := make([]interface{}, nc)
	pet, aet, q, sto := make([]interface{}, nc), make([]interface{}, nc), make([]interface{}, nc), make([]interface{}, nc)
	for i := 0; i < nc; i++ {
		cid[i] = i
		pet[i] = stat.Mean(r.PET[i], nil)
		aet[i] = stat.Mean(r.AET[i], nil)
		q[i] = stat.Mean(r.Rsim[i], nil)
		sto[i] = stat.Mean(r.Sto[i], nil)
	}
	mmio.WriteCSV(fp, "cell,pet,aet,rsim,sto", cid, pet, aet, q, sto)
}

// WriteCellCSV writes one cell's full monthly series (month,pet,aet,rsim,sto).
func (r *Results) WriteCellCSV(fp string, cell int) {
	nt := len(r.PET[cell])
	mo := make([]interface{}, nt)
	pet, aet, q, sto := make([]interface{}, nt), make([]interface{}, nt), make([]interface{}, nt), make([]interface{}, nt)
	for i := 0; i < nt; i++ {
		mo[i] = i
		pet[i] = r.PET[cell][i]
		aet[i] = r.AET[cell][i]
		q[i] = r.Rsim[cell][i]
		sto[i] = r.Sto[cell][i]
	}
	mmio.WriteCSV(fp, "month,pet,aet,rsim,sto", mo, pet, aet, q, sto)
}
