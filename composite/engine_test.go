package composite

import (
	"errors"
	"reflect"
	"testing"
)

func referenceRequest() PredictionRequest {
	return PredictionRequest{
		Fiber:          FiberCarbon,
		Matrix:         MatrixEpoxy,
		VolumeFraction: 0.6,
		Layup:          LayupUD0,
		Process:        ProcessAutoclave,
	}
}

func properties(r *PredictionResult) [7]float64 {
	return [7]float64{
		r.TensileStrength,
		r.TensileModulus,
		r.CompressiveStrength,
		r.FlexuralStrength,
		r.FlexuralModulus,
		r.ILSS,
		r.ImpactEnergy,
	}
}

// At the reference volume fraction with reference layup and process all
// three factors are exactly 1.0, so the outputs must equal the base record
// bit for bit.
func TestPredictReferenceCase(t *testing.T) {
	en := NewEngine()

	result, err := en.Predict(referenceRequest())
	if err != nil {
		t.Fatalf("Predict() failed: %v", err)
	}

	want := [7]float64{1500.0, 130.0, 1200.0, 1400.0, 125.0, 75.0, 18.0}
	if got := properties(result); got != want {
		t.Errorf("reference case properties = %v, want %v", got, want)
	}

	f := result.Factors
	if f.VolumeFraction != 1.0 || f.Layup != 1.0 || f.Manufacturing != 1.0 || f.Total != 1.0 {
		t.Errorf("reference case factors = %+v, want all 1.0", f)
	}
}

// vf=0.3 gives a vf factor of exactly 0.5, so every output is exactly half
// of the reference case.
func TestPredictHalfVolumeFraction(t *testing.T) {
	en := NewEngine()

	req := referenceRequest()
	req.VolumeFraction = 0.3

	result, err := en.Predict(req)
	if err != nil {
		t.Fatalf("Predict() failed: %v", err)
	}

	want := [7]float64{750.0, 65.0, 600.0, 700.0, 62.5, 37.5, 9.0}
	if got := properties(result); got != want {
		t.Errorf("vf=0.3 properties = %v, want %v", got, want)
	}
	if result.Factors.VolumeFraction != 0.5 {
		t.Errorf("vf factor = %v, want 0.5", result.Factors.VolumeFraction)
	}
}

func TestPredictAppliesAllFactors(t *testing.T) {
	en := NewEngine()

	req := PredictionRequest{
		Fiber:          FiberGlass,
		Matrix:         MatrixPolyester,
		VolumeFraction: 0.6,
		Layup:          LayupWoven,
		Process:        ProcessHandLayup,
	}

	result, err := en.Predict(req)
	if err != nil {
		t.Fatalf("Predict() failed: %v", err)
	}

	layup, _ := LayupFactor(LayupWoven)
	manuf, _ := ManufacturingFactor(ProcessHandLayup)
	total := 1.0 * layup * manuf
	if result.Factors.Total != total {
		t.Errorf("total factor = %v, want %v", result.Factors.Total, total)
	}
	if want := 350.0 * total; result.TensileStrength != want {
		t.Errorf("tensile strength = %v, want %v", result.TensileStrength, want)
	}
	if want := 22.0 * total; result.ImpactEnergy != want {
		t.Errorf("impact energy = %v, want %v", result.ImpactEnergy, want)
	}
}

func TestPredictVolumeFractionBounds(t *testing.T) {
	en := NewEngine()

	testCases := []struct {
		name    string
		vf      float64
		wantErr bool
	}{
		{"Zero rejected", 0.0, true},
		{"Negative rejected", -0.5, true},
		{"Just above zero accepted", 0.001, false},
		{"Reference accepted", 0.6, false},
		{"Upper bound inclusive", 1.0, false},
		{"Above one rejected", 1.0001, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := referenceRequest()
			req.VolumeFraction = tc.vf

			_, err := en.Predict(req)
			if tc.wantErr {
				var invalid *InvalidInputError
				if !errors.As(err, &invalid) {
					t.Fatalf("Predict(vf=%v) error = %v, want *InvalidInputError", tc.vf, err)
				}
				if invalid.Field != "fiber_volume_fraction" {
					t.Errorf("error field = %q, want fiber_volume_fraction", invalid.Field)
				}
			} else if err != nil {
				t.Errorf("Predict(vf=%v) failed: %v", tc.vf, err)
			}
		})
	}
}

// All factors are positive and the vf factor scales linearly, so raising vf
// with everything else fixed must strictly raise every property.
func TestPredictMonotonicInVolumeFraction(t *testing.T) {
	en := NewEngine()

	fractions := []float64{0.1, 0.25, 0.4, 0.55, 0.7, 0.85, 1.0}
	var prev [7]float64

	for i, vf := range fractions {
		req := referenceRequest()
		req.VolumeFraction = vf

		result, err := en.Predict(req)
		if err != nil {
			t.Fatalf("Predict(vf=%v) failed: %v", vf, err)
		}

		cur := properties(result)
		if i > 0 {
			for p := range cur {
				if cur[p] <= prev[p] {
					t.Errorf("property %d not strictly increasing: %v (vf=%v) <= %v (vf=%v)",
						p, cur[p], vf, prev[p], fractions[i-1])
				}
			}
		}
		prev = cur
	}
}

func TestPredictUnknownLayup(t *testing.T) {
	en := NewEngine()

	req := referenceRequest()
	req.Layup = LayupConfig("[0/30/60]s")

	_, err := en.Predict(req)
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("Predict() error = %v, want *InvalidInputError", err)
	}
	if invalid.Field != "layup" {
		t.Errorf("error field = %q, want layup", invalid.Field)
	}
}

func TestPredictUnknownProcess(t *testing.T) {
	en := NewEngine()

	req := referenceRequest()
	req.Process = ManufacturingProcess("Spray_up")

	_, err := en.Predict(req)
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("Predict() error = %v, want *InvalidInputError", err)
	}
	if invalid.Field != "manufacturing" {
		t.Errorf("error field = %q, want manufacturing", invalid.Field)
	}
}

func TestPredictPropagatesNotFound(t *testing.T) {
	en := NewEngine()

	req := referenceRequest()
	req.Fiber = FiberType("Boron")

	_, err := en.Predict(req)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Predict() error = %v, want *NotFoundError", err)
	}
	if notFound.Fiber != "Boron" || notFound.Matrix != MatrixEpoxy {
		t.Errorf("NotFoundError = %+v, want Boron/Epoxy", notFound)
	}
}

// Predict is a pure function: the same request must produce bit-identical
// results on repeated calls.
func TestPredictIsPure(t *testing.T) {
	en := NewEngine()

	req := PredictionRequest{
		Fiber:          FiberAramid,
		Matrix:         MatrixPEEK,
		VolumeFraction: 0.47,
		Layup:          LayupQuasiIsotropic,
		Process:        ProcessVARTM,
	}

	first, err := en.Predict(req)
	if err != nil {
		t.Fatalf("Predict() failed: %v", err)
	}
	second, err := en.Predict(req)
	if err != nil {
		t.Fatalf("repeat Predict() failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}

func TestPredictBatchIsolation(t *testing.T) {
	en := NewEngine()

	valid := referenceRequest()
	bad := referenceRequest()
	bad.VolumeFraction = -1

	// The invalid element must fail in its own slot regardless of where it
	// sits in the batch.
	for badIdx := 0; badIdx < 3; badIdx++ {
		batch := []PredictionRequest{valid, valid, valid}
		batch[badIdx] = bad

		results := en.PredictBatch(batch)
		if len(results) != len(batch) {
			t.Fatalf("len(results) = %d, want %d", len(results), len(batch))
		}

		for i, r := range results {
			if i == badIdx {
				if r.Err == nil {
					t.Errorf("slot %d (bad at %d): expected error, got result", i, badIdx)
				}
				if r.Result != nil {
					t.Errorf("slot %d (bad at %d): partial result alongside error", i, badIdx)
				}
				continue
			}
			if r.Err != nil {
				t.Errorf("slot %d (bad at %d): unexpected error: %v", i, badIdx, r.Err)
			}
		}
	}
}

func TestPredictBatchPreservesOrder(t *testing.T) {
	en := NewEngine()

	batch := []PredictionRequest{
		{FiberCarbon, MatrixEpoxy, 0.6, LayupUD0, ProcessAutoclave},
		{FiberGlass, MatrixPolyester, 0.3, LayupUD0, ProcessAutoclave},
		{FiberNatural, MatrixPA6, 0.6, LayupUD90, ProcessAutoclave},
	}

	results := en.PredictBatch(batch)
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}

	for i, req := range batch {
		want, err := en.Predict(req)
		if err != nil {
			t.Fatalf("Predict(%d) failed: %v", i, err)
		}
		if !reflect.DeepEqual(results[i].Result, want) {
			t.Errorf("slot %d = %+v, want %+v", i, results[i].Result, want)
		}
	}
}

func TestOptionsDomainsComplete(t *testing.T) {
	en := NewEngine()
	opts := en.Options()

	if len(opts.Fibers) != 5 {
		t.Errorf("len(Fibers) = %d, want 5", len(opts.Fibers))
	}
	if len(opts.Matrices) != 5 {
		t.Errorf("len(Matrices) = %d, want 5", len(opts.Matrices))
	}
	if len(opts.Layups) != 7 {
		t.Errorf("len(Layups) = %d, want 7", len(opts.Layups))
	}
	if len(opts.Processes) != 7 {
		t.Errorf("len(Processes) = %d, want 7", len(opts.Processes))
	}
	if opts.VolumeFraction.Recommended != ReferenceVolumeFraction {
		t.Errorf("recommended vf = %v, want %v", opts.VolumeFraction.Recommended, ReferenceVolumeFraction)
	}

	// Every advertised combination must be predictable.
	for _, f := range opts.Fibers {
		for _, m := range opts.Matrices {
			if _, err := Lookup(f, m); err != nil {
				t.Errorf("advertised pair %s/%s has no record: %v", f, m, err)
			}
		}
	}
}
