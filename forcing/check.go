package forcing

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CheckAndPrint summarizes the input set to stdout.
func (frc *Forcing) CheckAndPrint() {
	nc, nt := frc.Dims()
	fmt.Println("Forcing summary:")
	fmt.Printf(" %d cells, %d months", nc, nt)
	if frc.Snow() {
		fmt.Println(", snow sub-model active")
	} else {
		fmt.Println(", no minimum temperature given, snow sub-model disabled")
	}
	if nc == 0 || nt == 0 {
		return
	}

	cm := make([]float64, nc) // cell means
	for i, r := range frc.P {
		cm[i] = stat.Mean(r, nil)
	}
	fmt.Printf(" P  (mm/mo): mean %.2f  [%.2f, %.2f]\n", stat.Mean(cm, nil), floats.Min(cm), floats.Max(cm))
	for i, r := range frc.Ep {
		cm[i] = stat.Mean(r, nil)
	}
	fmt.Printf(" Ep (mm/mo): mean %.2f  [%.2f, %.2f]\n", stat.Mean(cm, nil), floats.Min(cm), floats.Max(cm))
	if frc.Snow() {
		for i, r := range frc.Tn {
			cm[i] = stat.Mean(r, nil)
		}
		fmt.Printf(" Tn (°C):    mean %.2f  [%.2f, %.2f]\n", stat.Mean(cm, nil), floats.Min(cm), floats.Max(cm))
	}
}
