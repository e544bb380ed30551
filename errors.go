package xanthos

import "errors"

// Sentinel errors returned by the engine. Failures raised while processing one
// basin are wrapped with the offending basin ID(s) before being surfaced.
var (
	// ErrConfig is returned when run settings are structurally insufficient,
	// e.g. a spin-up window too short to extract three historical Decembers.
	ErrConfig = errors.New("invalid configuration")

	// ErrNumerical is returned when the water-balance arithmetic leaves its
	// valid range (negative ET-opportunity discriminant, division by zero).
	ErrNumerical = errors.New("numerical failure")

	// ErrShape is returned on mismatched dimensions between parameters,
	// climate arrays and the basin-ID map.
	ErrShape = errors.New("array shape mismatch")
)
