package xanthos

import (
	"fmt"

	"github.com/Fasikaw/xanthos/forcing"
)

// checkPrerun validates parameters, climate arrays, basin map and run settings
// before any simulation work begins. Failures here are structural and fatal
// for the run; nothing is retried.
func checkPrerun(par *Parameter, frc *forcing.Forcing, dom *Domain, cfg Config) error {
	nc, nt := frc.Dims()
	if nc == 0 || nt == 0 {
		return fmt.Errorf("empty climate arrays: %w", ErrShape)
	}
	for i, r := range frc.P {
		if len(r) != nt {
			return fmt.Errorf("precipitation row %d has %d months, want %d: %w", i, len(r), nt, ErrShape)
		}
	}
	if len(frc.Ep) != nc {
		return fmt.Errorf("PET has %d cells, precipitation %d: %w", len(frc.Ep), nc, ErrShape)
	}
	for i, r := range frc.Ep {
		if len(r) != nt {
			return fmt.Errorf("PET row %d has %d months, want %d: %w", i, len(r), nt, ErrShape)
		}
	}
	if frc.Snow() {
		if len(frc.Tn) != nc {
			return fmt.Errorf("Tmin has %d cells, precipitation %d: %w", len(frc.Tn), nc, ErrShape)
		}
		for i, r := range frc.Tn {
			if len(r) != nt {
				return fmt.Errorf("Tmin row %d has %d months, want %d: %w", i, len(r), nt, ErrShape)
			}
		}
	}
	if len(dom.Bsn) != nc {
		return fmt.Errorf("basin-ID map covers %d cells, climate %d: %w", len(dom.Bsn), nc, ErrShape)
	}
	if len(par.A) != nc {
		return fmt.Errorf("parameter table covers %d cells, climate %d: %w", len(par.A), nc, ErrShape)
	}
	if err := par.check(); err != nil {
		return err
	}

	if cfg.Steps < 1 || cfg.Steps > nt {
		return fmt.Errorf("%d simulation months requested, %d available: %w", cfg.Steps, nt, ErrConfig)
	}
	if cfg.SpinupSteps < minSpinup {
		return fmt.Errorf("spin-up of %d months cannot cover three historical Decembers (need >= %d; at least 10 years recommended): %w",
			cfg.SpinupSteps, minSpinup, ErrConfig)
	}
	if cfg.SpinupSteps > cfg.Steps {
		return fmt.Errorf("spin-up of %d months exceeds the %d-month climate window: %w", cfg.SpinupSteps, cfg.Steps, ErrConfig)
	}
	return nil
}
