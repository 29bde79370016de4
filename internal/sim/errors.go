package sim

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed validation errors through errors.Is.
var (
	// ErrChamberSize indicates a chamber shorter than MinChamber or longer than MaxChamber.
	ErrChamberSize = errors.New("sim: chamber size out of range")

	// ErrForceRange indicates a force outside [MinForce, MaxForce].
	ErrForceRange = errors.New("sim: force out of range")

	// ErrInvalidSymbol indicates a chamber character other than Empty or Bomb.
	ErrInvalidSymbol = errors.New("sim: invalid chamber symbol")
)

// ChamberSizeError carries the rejected chamber length.
type ChamberSizeError struct {
	Length int
}

func (e *ChamberSizeError) Error() string {
	return fmt.Sprintf("chamber length is %d, must be %d to %d characters", e.Length, MinChamber, MaxChamber)
}

func (e *ChamberSizeError) Is(target error) bool { return target == ErrChamberSize }

// ForceRangeError carries the rejected force.
type ForceRangeError struct {
	Force int
}

func (e *ForceRangeError) Error() string {
	return fmt.Sprintf("force is %d, must be between %d and %d inclusive", e.Force, MinForce, MaxForce)
}

func (e *ForceRangeError) Is(target error) bool { return target == ErrForceRange }

// InvalidSymbolError reports the first foreign character in a chamber.
type InvalidSymbolError struct {
	Chamber string
	Symbol  rune
	Index   int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at index %d in chamber %q", e.Symbol, e.Index, e.Chamber)
}

func (e *InvalidSymbolError) Is(target error) bool { return target == ErrInvalidSymbol }
