package composite

import "fmt"

// The parse functions form the validation boundary between loosely-typed
// input (JSON strings) and the enumerated variants the engine works with.
// Anything that does not map cleanly onto a canonical label is rejected
// with an *InvalidInputError; there is no fuzzy matching and no silent
// defaulting. Matching is case-sensitive on the canonical labels.

// fiberOrder is the canonical listing order for fiber types.
var fiberOrder = []FiberType{
	FiberCarbon,
	FiberGlass,
	FiberAramid,
	FiberBasalt,
	FiberNatural,
}

// matrixOrder is the canonical listing order for matrix types.
var matrixOrder = []MatrixType{
	MatrixEpoxy,
	MatrixPolyester,
	MatrixVinylEster,
	MatrixPEEK,
	MatrixPA6,
}

var fiberSet = func() map[FiberType]bool {
	s := make(map[FiberType]bool, len(fiberOrder))
	for _, f := range fiberOrder {
		s[f] = true
	}
	return s
}()

var matrixSet = func() map[MatrixType]bool {
	s := make(map[MatrixType]bool, len(matrixOrder))
	for _, m := range matrixOrder {
		s[m] = true
	}
	return s
}()

// ParseFiberType converts an untyped string into a FiberType.
func ParseFiberType(s string) (FiberType, error) {
	f := FiberType(s)
	if !fiberSet[f] {
		return "", &InvalidInputError{
			Field:  "fiber_type",
			Reason: fmt.Sprintf("unknown fiber type %q", s),
		}
	}
	return f, nil
}

// ParseMatrixType converts an untyped string into a MatrixType.
func ParseMatrixType(s string) (MatrixType, error) {
	m := MatrixType(s)
	if !matrixSet[m] {
		return "", &InvalidInputError{
			Field:  "matrix_type",
			Reason: fmt.Sprintf("unknown matrix type %q", s),
		}
	}
	return m, nil
}

// ParseLayupConfig converts an untyped string into a LayupConfig.
func ParseLayupConfig(s string) (LayupConfig, error) {
	l := LayupConfig(s)
	if _, ok := layupFactors[l]; !ok {
		return "", &InvalidInputError{
			Field:  "layup",
			Reason: fmt.Sprintf("unknown layup configuration %q", s),
		}
	}
	return l, nil
}

// ParseManufacturingProcess converts an untyped string into a
// ManufacturingProcess.
func ParseManufacturingProcess(s string) (ManufacturingProcess, error) {
	p := ManufacturingProcess(s)
	if _, ok := manufacturingFactors[p]; !ok {
		return "", &InvalidInputError{
			Field:  "manufacturing",
			Reason: fmt.Sprintf("unknown manufacturing process %q", s),
		}
	}
	return p, nil
}
