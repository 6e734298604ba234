package composite

// FiberType identifies the reinforcement fiber of a composite laminate.
// The string value is the canonical wire label.
type FiberType string

const (
	FiberCarbon  FiberType = "Carbon"
	FiberGlass   FiberType = "Glass"
	FiberAramid  FiberType = "Aramid"
	FiberBasalt  FiberType = "Basalt"
	FiberNatural FiberType = "Natural"
)

// MatrixType identifies the matrix resin system.
type MatrixType string

const (
	MatrixEpoxy      MatrixType = "Epoxy"
	MatrixPolyester  MatrixType = "Polyester"
	MatrixVinylEster MatrixType = "Vinyl_ester"
	MatrixPEEK       MatrixType = "PEEK"
	MatrixPA6        MatrixType = "PA6"
)

// LayupConfig identifies the stacking/orientation configuration of the plies.
type LayupConfig string

const (
	LayupUD0            LayupConfig = "UD 0°"
	LayupUD90           LayupConfig = "UD 90°"
	LayupWoven          LayupConfig = "Woven"
	LayupCross0902s     LayupConfig = "[0/90]2s"
	LayupQuadAxial      LayupConfig = "[0/45/90/-45]s"
	LayupAngle452s      LayupConfig = "[±45]2s"
	LayupQuasiIsotropic LayupConfig = "Quasi-isotropic"
)

// ManufacturingProcess identifies the process the laminate was made with.
type ManufacturingProcess string

const (
	ProcessAutoclave          ManufacturingProcess = "Autoclave"
	ProcessVARTM              ManufacturingProcess = "VARTM"
	ProcessRTM                ManufacturingProcess = "RTM"
	ProcessPultrusion         ManufacturingProcess = "Pultrusion"
	ProcessFilamentWinding    ManufacturingProcess = "Filament_winding"
	ProcessCompressionMolding ManufacturingProcess = "Compression_molding"
	ProcessHandLayup          ManufacturingProcess = "Hand_layup"
)

// MaterialRecord holds the seven base properties of one fiber/matrix
// combination, measured at the reference volume fraction (0.6), a UD 0°
// layup and autoclave processing. Values are literature-sourced.
// JSON keys are the short database keys used by the materials dump.
type MaterialRecord struct {
	TensileStrength     float64 `json:"ts"`   // MPa
	TensileModulus      float64 `json:"tm"`   // GPa
	CompressiveStrength float64 `json:"cs"`   // MPa
	FlexuralStrength    float64 `json:"fs"`   // MPa
	FlexuralModulus     float64 `json:"fm"`   // GPa
	ILSS                float64 `json:"ilss"` // MPa, interlaminar shear strength
	ImpactEnergy        float64 `json:"ie"`   // J
}

// MaterialEntry pairs a database key with its record, for ordered dumps.
type MaterialEntry struct {
	Fiber  FiberType      `json:"fiber_type"`
	Matrix MatrixType     `json:"matrix_type"`
	Record MaterialRecord `json:"properties"`
}

// PredictionRequest carries the five inputs of one prediction. It is a
// transient value; the engine keeps no reference to it after returning.
type PredictionRequest struct {
	Fiber          FiberType
	Matrix         MatrixType
	VolumeFraction float64
	Layup          LayupConfig
	Process        ManufacturingProcess
}

// Factors are the three resolved correction factors and their product,
// returned alongside predictions for transparency.
type Factors struct {
	VolumeFraction float64 `json:"vf_factor"`
	Layup          float64 `json:"layup_factor"`
	Manufacturing  float64 `json:"manufacturing_factor"`
	Total          float64 `json:"total_factor"`
}

// PredictionResult holds the seven corrected properties. No rounding is
// applied here; presentation rounding belongs to the transport layer.
type PredictionResult struct {
	TensileStrength     float64 `json:"tensile_strength_MPa"`
	TensileModulus      float64 `json:"tensile_modulus_GPa"`
	CompressiveStrength float64 `json:"compressive_strength_MPa"`
	FlexuralStrength    float64 `json:"flexural_strength_MPa"`
	FlexuralModulus     float64 `json:"flexural_modulus_GPa"`
	ILSS                float64 `json:"ILSS_MPa"`
	ImpactEnergy        float64 `json:"impact_energy_J"`
	Factors             Factors `json:"factors"`
}

// BatchResult is one slot of a batch prediction. Exactly one of Result and
// Err is set; an error in one slot never affects the others.
type BatchResult struct {
	Result *PredictionResult
	Err    error
}

// VolumeFractionRange is advisory metadata for clients. The engine itself
// accepts any fraction in (0, 1].
type VolumeFractionRange struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Recommended float64 `json:"recommended"`
}

// Options exposes the full enumerated domains for client-side validation
// and UI population.
type Options struct {
	Fibers         []FiberType            `json:"fiber_types"`
	Matrices       []MatrixType           `json:"matrix_types"`
	Layups         []LayupConfig          `json:"layups"`
	Processes      []ManufacturingProcess `json:"manufacturing"`
	VolumeFraction VolumeFractionRange    `json:"fiber_volume_fraction"`
}
