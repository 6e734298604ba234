// Package composite predicts mechanical properties of fiber-reinforced
// composite laminates. Predictions come from a static literature-sourced
// material database corrected by three multiplicative factors: fiber volume
// fraction (rule of mixtures, normalized to the 0.6 reference), layup
// configuration, and manufacturing process.
package composite

import "fmt"

// Engine turns prediction requests into predicted property sets.
//
// The engine holds no mutable state: the material database and factor
// tables are initialized once and never change, so a single Engine is safe
// for arbitrarily many concurrent callers without locking.
type Engine struct{}

// NewEngine creates a prediction engine over the static material database.
func NewEngine() *Engine {
	return &Engine{}
}

// Predict computes the seven corrected properties for one request.
//
// Each property is base × vfFactor × layupFactor × manufacturingFactor,
// with vfFactor = vf / 0.6. The model is strictly linear-multiplicative
// and performs no rounding. Validation failures return *InvalidInputError;
// a missing fiber/matrix pair returns *NotFoundError unchanged.
func (en *Engine) Predict(req PredictionRequest) (*PredictionResult, error) {
	// The upper bound is 1.0 by definition of a volume fraction; realistic
	// fiber-packing limits (~0.78) are intentionally not enforced.
	if req.VolumeFraction <= 0 || req.VolumeFraction > 1 {
		return nil, &InvalidInputError{
			Field:  "fiber_volume_fraction",
			Reason: fmt.Sprintf("must be in (0, 1], got %g", req.VolumeFraction),
		}
	}
	vfFactor := req.VolumeFraction / ReferenceVolumeFraction

	layupFactor, err := LayupFactor(req.Layup)
	if err != nil {
		return nil, err
	}

	manufFactor, err := ManufacturingFactor(req.Process)
	if err != nil {
		return nil, err
	}

	base, err := Lookup(req.Fiber, req.Matrix)
	if err != nil {
		return nil, err
	}

	total := vfFactor * layupFactor * manufFactor

	return &PredictionResult{
		TensileStrength:     base.TensileStrength * total,
		TensileModulus:      base.TensileModulus * total,
		CompressiveStrength: base.CompressiveStrength * total,
		FlexuralStrength:    base.FlexuralStrength * total,
		FlexuralModulus:     base.FlexuralModulus * total,
		ILSS:                base.ILSS * total,
		ImpactEnergy:        base.ImpactEnergy * total,
		Factors: Factors{
			VolumeFraction: vfFactor,
			Layup:          layupFactor,
			Manufacturing:  manufFactor,
			Total:          total,
		},
	}, nil
}

// PredictBatch applies Predict independently to each request. The returned
// slice has the same length and order as the input; an invalid element
// occupies its own slot's Err and never aborts the rest.
func (en *Engine) PredictBatch(reqs []PredictionRequest) []BatchResult {
	results := make([]BatchResult, len(reqs))
	for i, req := range reqs {
		res, err := en.Predict(req)
		results[i] = BatchResult{Result: res, Err: err}
	}
	return results
}

// Options returns the enumerated input domains plus the advisory volume
// fraction range.
func (en *Engine) Options() Options {
	fibers := make([]FiberType, len(fiberOrder))
	copy(fibers, fiberOrder)
	matrices := make([]MatrixType, len(matrixOrder))
	copy(matrices, matrixOrder)
	layups := make([]LayupConfig, len(layupOrder))
	copy(layups, layupOrder)
	processes := make([]ManufacturingProcess, len(processOrder))
	copy(processes, processOrder)

	return Options{
		Fibers:    fibers,
		Matrices:  matrices,
		Layups:    layups,
		Processes: processes,
		VolumeFraction: VolumeFractionRange{
			Min:         0.3,
			Max:         0.7,
			Recommended: ReferenceVolumeFraction,
		},
	}
}

// Database returns the full material database in dump order.
func (en *Engine) Database() []MaterialEntry {
	return Records()
}
