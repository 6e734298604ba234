package composite

import "fmt"

// ReferenceVolumeFraction is the fiber volume fraction the database's base
// properties were measured at.
const ReferenceVolumeFraction = 0.6

// layupOrder is the canonical listing order for layup configurations.
var layupOrder = []LayupConfig{
	LayupUD0,
	LayupUD90,
	LayupWoven,
	LayupCross0902s,
	LayupQuadAxial,
	LayupAngle452s,
	LayupQuasiIsotropic,
}

// layupFactors maps each layup to its knockdown relative to UD 0°.
// All values lie in [0.4, 1.0].
var layupFactors = map[LayupConfig]float64{
	LayupUD0:            1.0,
	LayupUD90:           0.4,
	LayupWoven:          0.8,
	LayupCross0902s:     0.85,
	LayupQuadAxial:      0.75,
	LayupAngle452s:      0.65,
	LayupQuasiIsotropic: 0.7,
}

// processOrder is the canonical listing order for manufacturing processes.
var processOrder = []ManufacturingProcess{
	ProcessAutoclave,
	ProcessVARTM,
	ProcessRTM,
	ProcessPultrusion,
	ProcessFilamentWinding,
	ProcessCompressionMolding,
	ProcessHandLayup,
}

// manufacturingFactors maps each process to its quality factor relative to
// autoclave consolidation. All values lie in [0.85, 1.0].
var manufacturingFactors = map[ManufacturingProcess]float64{
	ProcessAutoclave:          1.0,
	ProcessVARTM:              0.95,
	ProcessRTM:                0.97,
	ProcessPultrusion:         0.98,
	ProcessFilamentWinding:    0.96,
	ProcessCompressionMolding: 0.93,
	ProcessHandLayup:          0.85,
}

// LayupFactor resolves the correction factor for a layup configuration.
func LayupFactor(layup LayupConfig) (float64, error) {
	f, ok := layupFactors[layup]
	if !ok {
		return 0, &InvalidInputError{
			Field:  "layup",
			Reason: fmt.Sprintf("unknown layup configuration %q", string(layup)),
		}
	}
	return f, nil
}

// ManufacturingFactor resolves the correction factor for a process.
func ManufacturingFactor(process ManufacturingProcess) (float64, error) {
	f, ok := manufacturingFactors[process]
	if !ok {
		return 0, &InvalidInputError{
			Field:  "manufacturing",
			Reason: fmt.Sprintf("unknown manufacturing process %q", string(process)),
		}
	}
	return f, nil
}

// LayupFactors returns a copy of the layup factor table for listing views.
func LayupFactors() map[LayupConfig]float64 {
	out := make(map[LayupConfig]float64, len(layupFactors))
	for k, v := range layupFactors {
		out[k] = v
	}
	return out
}

// ManufacturingFactors returns a copy of the process factor table.
func ManufacturingFactors() map[ManufacturingProcess]float64 {
	out := make(map[ManufacturingProcess]float64, len(manufacturingFactors))
	for k, v := range manufacturingFactors {
		out[k] = v
	}
	return out
}
