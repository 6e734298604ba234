package main

import "github.com/compositeml/predictor/composite"

// API request and response models.

// predictionInput is the loosely-typed request body of a single prediction.
// Pointer fields distinguish "omitted" (filled with the documented default)
// from "present but wrong" (rejected).
type predictionInput struct {
	FiberType           *string  `json:"fiber_type"`
	MatrixType          *string  `json:"matrix_type"`
	FiberVolumeFraction *float64 `json:"fiber_volume_fraction"`
	Layup               *string  `json:"layup"`
	Manufacturing       *string  `json:"manufacturing"`
}

// resolvedInput echoes back the inputs a prediction was computed from,
// defaults included.
type resolvedInput struct {
	FiberType           composite.FiberType            `json:"fiber_type"`
	MatrixType          composite.MatrixType           `json:"matrix_type"`
	FiberVolumeFraction float64                        `json:"fiber_volume_fraction"`
	Layup               composite.LayupConfig          `json:"layup"`
	Manufacturing       composite.ManufacturingProcess `json:"manufacturing"`
}

// predictions carries the seven outputs rounded to one decimal for
// presentation. Rounding happens only here, never in the engine.
type predictions struct {
	TensileStrength     float64 `json:"tensile_strength_MPa"`
	TensileModulus      float64 `json:"tensile_modulus_GPa"`
	CompressiveStrength float64 `json:"compressive_strength_MPa"`
	FlexuralStrength    float64 `json:"flexural_strength_MPa"`
	FlexuralModulus     float64 `json:"flexural_modulus_GPa"`
	ILSS                float64 `json:"ILSS_MPa"`
	ImpactEnergy        float64 `json:"impact_energy_J"`
}

type predictResponse struct {
	Success      bool              `json:"success"`
	PredictionID string            `json:"prediction_id"`
	Method       string            `json:"method"`
	Input        resolvedInput     `json:"input"`
	Predictions  predictions       `json:"predictions"`
	Factors      composite.Factors `json:"factors"`
	Units        map[string]string `json:"units"`
}

type batchRequest struct {
	Samples []predictionInput `json:"samples"`
}

// batchItem is one slot of a batch response. Error slots echo the raw
// sample; success slots echo the resolved input.
type batchItem struct {
	Index       int                `json:"index"`
	Input       any                `json:"input"`
	Success     bool               `json:"success"`
	Predictions *predictions       `json:"predictions,omitempty"`
	Factors     *composite.Factors `json:"factors,omitempty"`
	Error       string             `json:"error,omitempty"`
}

type batchResponse struct {
	Success bool        `json:"success"`
	Method  string      `json:"method"`
	Count   int         `json:"count"`
	Results []batchItem `json:"results"`
}

type materialsResponse struct {
	Success   bool                      `json:"success"`
	Note      string                    `json:"note"`
	Count     int                       `json:"count"`
	Materials []composite.MaterialEntry `json:"materials"`
	Units     map[string]string         `json:"units"`
}

type optionsResponse struct {
	Success bool              `json:"success"`
	Options composite.Options `json:"options"`
	Factors factorTables      `json:"factors"`
}

type factorTables struct {
	Layup         map[composite.LayupConfig]float64          `json:"layup"`
	Manufacturing map[composite.ManufacturingProcess]float64 `json:"manufacturing"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// predictionUnits are the unit annotations attached to prediction payloads.
var predictionUnits = map[string]string{
	"strength":      "MPa",
	"modulus":       "GPa",
	"ILSS":          "MPa",
	"impact_energy": "J",
}

// materialUnits explain the short database keys in the materials dump.
var materialUnits = map[string]string{
	"ts":   "MPa (Tensile Strength)",
	"tm":   "GPa (Tensile Modulus)",
	"cs":   "MPa (Compressive Strength)",
	"fs":   "MPa (Flexural Strength)",
	"fm":   "GPa (Flexural Modulus)",
	"ilss": "MPa (Interlaminar Shear Strength)",
	"ie":   "J (Impact Energy)",
}
